package cart

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backend/models"
)

// fakeSource serves one document set per language and can be told to fail.
type fakeSource struct {
	mu        sync.Mutex
	pricelist map[string]*models.PriceList
	labor     map[string]*models.LaborData
	fail      bool

	block   chan struct{} // when set, PriceList waits until closed
	started chan struct{} // closed once a blocked PriceList call is in flight
}

func (f *fakeSource) PriceList(ctx context.Context, lang string) (*models.PriceList, error) {
	f.mu.Lock()
	gate := f.block
	if gate != nil && f.started != nil {
		close(f.started)
		f.started = nil
	}
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return nil, errors.New("fetch failed")
	}
	if pl, ok := f.pricelist[lang]; ok {
		return pl, nil
	}
	return nil, errors.New("not found")
}

func (f *fakeSource) Labor(ctx context.Context, lang string) (*models.LaborData, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return nil, errors.New("fetch failed")
	}
	if ld, ok := f.labor[lang]; ok {
		return ld, nil
	}
	return nil, errors.New("not found")
}

func product(id, name string, optNames map[string]string) models.Product {
	p := models.Product{
		ID: id, Typ: "Presse", Name: name, Group: "presses", Category: "forming",
		BasePrice: models.FixedMoney(1000),
	}
	for oid, oname := range optNames {
		p.Options = append(p.Options, models.Option{ID: oid, Name: oname, Price: models.FixedMoney(100)})
	}
	return p
}

func newFixture() (*fakeSource, *Quote) {
	de := product("m1", "Presse 200", map[string]string{"o1": "Zufuehrung", "o2": "Werkzeug"})
	en := product("m1", "Press 200", map[string]string{"o1": "Feeder", "o2": "Tooling"})
	src := &fakeSource{
		pricelist: map[string]*models.PriceList{
			"de": {Currency: "EUR", Updated: "2025-06-01", Products: []models.Product{de}},
			"en": {Currency: "EUR", Updated: "2025-06-01", Products: []models.Product{en}},
		},
		labor: map[string]*models.LaborData{
			"de": {Currency: "EUR", Updated: "2025-06-01", Items: []models.LaborCost{
				{ID: "l1", Title: "Inbetriebnahme", Category: "service", AvgDays: 3, DayRateEur: 500},
			}},
			"en": {Currency: "EUR", Updated: "2025-06-01", Items: []models.LaborCost{
				{ID: "l1", Title: "Commissioning", Category: "service", AvgDays: 3, DayRateEur: 500},
			}},
		},
	}
	return src, NewQuote(src, "de")
}

func TestAddProductNeverMerges(t *testing.T) {
	_, q := newFixture()
	p := product("m1", "Presse 200", map[string]string{"o1": "Zufuehrung"})

	id1 := q.AddProduct(p, p.Options)
	id2 := q.AddProduct(p, p.Options)
	assert.NotEqual(t, id1, id2)
	require.Len(t, q.Items(), 2)

	q.RemoveItem(id1)
	items := q.Items()
	require.Len(t, items, 1)
	assert.Equal(t, id2, items[0].ItemID)

	q.RemoveItem("missing") // no-op
	assert.Len(t, q.Items(), 1)
}

func TestAddLaborDedupsById(t *testing.T) {
	_, q := newFixture()
	cost := models.LaborCost{ID: "l1", Title: "Inbetriebnahme", Category: "service", AvgDays: 3, DayRateEur: 500}

	q.AddLabor([]LaborRow{{Cost: cost, Days: 2}})
	q.AddLabor([]LaborRow{{Cost: cost, Days: 5}})

	labor := q.Labor()
	require.Len(t, labor, 1)
	assert.Equal(t, 5, labor[0].Days)
}

func TestAddLaborDefaultsToAvgDays(t *testing.T) {
	_, q := newFixture()
	cost := models.LaborCost{ID: "l1", Title: "Inbetriebnahme", Category: "service", AvgDays: 3, DayRateEur: 500}

	q.AddLabor([]LaborRow{{Cost: cost, Days: -1}})
	labor := q.Labor()
	require.Len(t, labor, 1)
	assert.Equal(t, 3, labor[0].Days)
}

func TestUpdateLaborDaysClamps(t *testing.T) {
	_, q := newFixture()
	cost := models.LaborCost{ID: "l1", Title: "Inbetriebnahme", Category: "service", AvgDays: 3, DayRateEur: 500}
	q.AddLabor([]LaborRow{{Cost: cost, Days: 2}})

	q.UpdateLaborDays("l1", -4)
	assert.Equal(t, 0, q.Labor()[0].Days)

	q.UpdateLaborDays("missing", 7) // no-op
	require.Len(t, q.Labor(), 1)

	q.RemoveLabor("l1")
	assert.Empty(t, q.Labor())
	q.RemoveLabor("l1") // no-op
}

func TestSwitchLanguageReplacesSnapshots(t *testing.T) {
	src, q := newFixture()
	de := src.pricelist["de"].Products[0]
	q.AddProduct(de, de.Options)
	q.AddLabor([]LaborRow{{Cost: src.labor["de"].Items[0], Days: 3}})

	require.NoError(t, q.SwitchLanguage(context.Background(), "en"))

	items := q.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Press 200", items[0].Product.Name)
	require.Len(t, items[0].Selected, 2)
	assert.Equal(t, "Commissioning", q.Labor()[0].Ref.Title)
	assert.Equal(t, "en", q.Language())
}

func TestSwitchLanguageMissingProductKeepsItem(t *testing.T) {
	src, q := newFixture()
	gone := product("m-gone", "Altmaschine", map[string]string{"o1": "A", "o2": "B"})
	q.AddProduct(gone, gone.Options)

	require.NoError(t, q.SwitchLanguage(context.Background(), "en"))

	items := q.Items()
	require.Len(t, items, 1)
	// stale snapshot retained unchanged, option ids untouched
	assert.Equal(t, "Altmaschine", items[0].Product.Name)
	assert.Len(t, items[0].Selected, 2)
	assert.Equal(t, []string{"o1", "o2"}, items[0].OptionIDs)
	_ = src
}

func TestSwitchLanguageMissingOptionDroppedFromSnapshotOnly(t *testing.T) {
	src, q := newFixture()
	de := src.pricelist["de"].Products[0]
	q.AddProduct(de, de.Options)

	// the English document lost option o2
	en := product("m1", "Press 200", map[string]string{"o1": "Feeder"})
	src.pricelist["en"] = &models.PriceList{Currency: "EUR", Updated: "2025-06-01", Products: []models.Product{en}}

	require.NoError(t, q.SwitchLanguage(context.Background(), "en"))

	items := q.Items()
	require.Len(t, items[0].Selected, 1)
	assert.Equal(t, "o1", items[0].Selected[0].ID)
	// preserved for future re-resolution
	assert.Equal(t, []string{"o1", "o2"}, items[0].OptionIDs)

	// switching back restores the dropped option
	src.mu.Lock()
	src.pricelist["en"] = &models.PriceList{Currency: "EUR", Updated: "2025-06-01",
		Products: []models.Product{product("m1", "Press 200", map[string]string{"o1": "Feeder", "o2": "Tooling"})}}
	src.mu.Unlock()
	require.NoError(t, q.SwitchLanguage(context.Background(), "en"))
	assert.Len(t, q.Items()[0].Selected, 2)
}

func TestSwitchLanguageFetchFailureKeepsState(t *testing.T) {
	src, q := newFixture()
	de := src.pricelist["de"].Products[0]
	q.AddProduct(de, de.Options)
	q.AddLabor([]LaborRow{{Cost: src.labor["de"].Items[0], Days: 3}})
	before := q.Items()

	src.mu.Lock()
	src.fail = true
	src.mu.Unlock()

	err := q.SwitchLanguage(context.Background(), "en")
	require.Error(t, err)
	assert.Equal(t, before, q.Items())
	assert.Equal(t, "Inbetriebnahme", q.Labor()[0].Ref.Title)
}

func TestSwitchLanguageLastRequestWins(t *testing.T) {
	src, q := newFixture()
	de := src.pricelist["de"].Products[0]
	q.AddProduct(de, de.Options)

	// first switch blocks in flight
	block := make(chan struct{})
	started := make(chan struct{})
	src.mu.Lock()
	src.block = block
	src.started = started
	src.mu.Unlock()

	done := make(chan error, 1)
	go func() {
		done <- q.SwitchLanguage(context.Background(), "en")
	}()
	<-started

	// second switch supersedes it and completes
	src.mu.Lock()
	src.block = nil
	src.mu.Unlock()
	require.NoError(t, q.SwitchLanguage(context.Background(), "de"))

	close(block)
	require.NoError(t, <-done)

	// the stale English result was discarded
	assert.Equal(t, "Presse 200", q.Items()[0].Product.Name)
	assert.Equal(t, "de", q.Language())
}
