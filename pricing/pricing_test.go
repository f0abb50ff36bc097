package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backend/models"
)

func testProduct() models.Product {
	return models.Product{
		ID:        "m1",
		Typ:       "Presse",
		Name:      "Press 200",
		Group:     "presses",
		Category:  "forming",
		BasePrice: models.FixedMoney(1000),
		Options: []models.Option{
			{ID: "o1", Name: "Feeder", Price: models.FixedMoney(200)},
			{ID: "o2", Name: "Special tooling", Price: models.OnRequestMoney()},
		},
	}
}

func TestItemBreakdown(t *testing.T) {
	p := testProduct()
	b := ItemBreakdown(p, p.Options)

	assert.Equal(t, float64(1000), b.Base)
	assert.Equal(t, float64(1200), b.Subtotal)
	require.Len(t, b.Options, 2)

	require.NotNil(t, b.Options[0].Amount)
	assert.Equal(t, float64(200), *b.Options[0].Amount)

	// on request is nil, not 0
	assert.Equal(t, "o2", b.Options[1].ID)
	assert.Nil(t, b.Options[1].Amount)
}

func TestItemBreakdownNoOptions(t *testing.T) {
	p := testProduct()
	b := ItemBreakdown(p, nil)
	assert.Equal(t, float64(1000), b.Subtotal)
	assert.Empty(t, b.Options)
}

func TestItemBreakdownAllOnRequest(t *testing.T) {
	p := testProduct()
	p.BasePrice = models.OnRequestMoney()
	b := ItemBreakdown(p, []models.Option{p.Options[1]})
	assert.Equal(t, float64(0), b.Base)
	assert.Equal(t, float64(0), b.Subtotal)
}

func quoteFixture() ([]models.CartItem, []models.LaborSelection) {
	p := testProduct()
	items := []models.CartItem{
		{ItemID: "i1", ProductID: p.ID, OptionIDs: []string{"o1", "o2"}, Product: p, Selected: p.Options},
	}
	labor := []models.LaborSelection{
		{ID: "l1", Days: 3, Ref: models.LaborCost{ID: "l1", Title: "Commissioning", Category: "service", AvgDays: 3, DayRateEur: 500}},
	}
	return items, labor
}

func TestCartTotalsSelectiveDiscount(t *testing.T) {
	items, labor := quoteFixture()

	got := CartTotals(items, labor, 10, true, false)
	assert.Equal(t, float64(1200), got.SubtotalProducts)
	assert.Equal(t, float64(1500), got.SubtotalLabor)
	assert.Equal(t, float64(2700), got.Subtotal)
	// hardware only, independent of the labor subtotal
	assert.Equal(t, float64(1200), got.DiscountBase)
	assert.Equal(t, float64(120), got.Discount)
	assert.Equal(t, got.Subtotal-got.Discount, got.Final)

	both := CartTotals(items, labor, 10, true, true)
	assert.Equal(t, float64(2700), both.DiscountBase)

	none := CartTotals(items, labor, 10, false, false)
	assert.Equal(t, float64(0), none.Discount)
	assert.Equal(t, none.Subtotal, none.Final)
}

func TestCartTotalsClamp(t *testing.T) {
	items, labor := quoteFixture()

	over := CartTotals(items, labor, 150, true, true)
	hundred := CartTotals(items, labor, 100, true, true)
	assert.Equal(t, hundred, over)

	under := CartTotals(items, labor, -10, true, true)
	zero := CartTotals(items, labor, 0, true, true)
	assert.Equal(t, zero, under)
}

func TestCartTotalsDiscountFloor(t *testing.T) {
	p := testProduct()
	p.BasePrice = models.FixedMoney(999)
	p.Options = nil
	items := []models.CartItem{{ItemID: "i1", ProductID: p.ID, Product: p}}

	got := CartTotals(items, nil, 33, true, false)
	// floor(999 * 0.33) = floor(329.67) = 329
	assert.Equal(t, float64(329), got.Discount)
	assert.Equal(t, float64(999-329), got.Final)
}

func TestCartTotalsEmpty(t *testing.T) {
	got := CartTotals(nil, nil, 50, true, true)
	assert.Equal(t, Totals{}, got)
}

func TestCartTotalsIdempotent(t *testing.T) {
	items, labor := quoteFixture()
	a := CartTotals(items, labor, 7, true, true)
	b := CartTotals(items, labor, 7, true, true)
	assert.Equal(t, a, b)
}
