// Package pricing computes per-item breakdowns and aggregate quote totals
// with selective per-category discounting.
package pricing

import (
	"math"

	"backend/models"
)

// OptionLine is one selected option in a breakdown. Amount is nil for
// "on request" options; callers must not treat nil as a zero price.
type OptionLine struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Amount *float64 `json:"amount"`
}

// Breakdown is the priced view of one product selection.
type Breakdown struct {
	Base     float64      `json:"base"`
	Options  []OptionLine `json:"options"`
	Subtotal float64      `json:"subtotal"`
}

// Totals is the derived quote total. Final is always Subtotal - Discount.
type Totals struct {
	SubtotalProducts float64 `json:"subtotalProducts"`
	SubtotalLabor    float64 `json:"subtotalLabor"`
	Subtotal         float64 `json:"subtotal"`
	DiscountBase     float64 `json:"discountBase"`
	Discount         float64 `json:"discount"`
	Final            float64 `json:"final"`
}

// ItemBreakdown prices one product with its selected options. On-request
// prices contribute 0 to the subtotal but appear with a nil amount.
func ItemBreakdown(p models.Product, selected []models.Option) Breakdown {
	base := p.BasePrice.Value()
	subtotal := base
	lines := make([]OptionLine, 0, len(selected))
	for _, o := range selected {
		line := OptionLine{ID: o.ID, Name: o.Name}
		if !o.Price.OnRequest() {
			amount := o.Price.Value()
			line.Amount = &amount
			subtotal += amount
		}
		lines = append(lines, line)
	}
	return Breakdown{Base: base, Options: lines, Subtotal: subtotal}
}

// LaborSubtotal sums days * day rate over the selected labor items.
func LaborSubtotal(labor []models.LaborSelection) float64 {
	var sum float64
	for _, l := range labor {
		sum += float64(l.Days) * l.Ref.DayRateEur
	}
	return sum
}

// CartTotals aggregates the whole quote. The discount percentage is
// clamped to [0,100] and applies only to the subtotals whose toggle is
// set. The discount is floored to whole euros; Final is computed from
// that same floored value so Final = Subtotal - Discount holds exactly.
func CartTotals(items []models.CartItem, labor []models.LaborSelection, discountPct float64, applyHardware, applyLabor bool) Totals {
	var subtotalProducts float64
	for _, it := range items {
		subtotalProducts += ItemBreakdown(it.Product, it.Selected).Subtotal
	}
	subtotalLabor := LaborSubtotal(labor)
	subtotal := subtotalProducts + subtotalLabor

	pct := math.Max(0, math.Min(100, discountPct))
	var discountBase float64
	if applyHardware {
		discountBase += subtotalProducts
	}
	if applyLabor {
		discountBase += subtotalLabor
	}
	discount := math.Floor(discountBase * pct / 100)

	return Totals{
		SubtotalProducts: subtotalProducts,
		SubtotalLabor:    subtotalLabor,
		Subtotal:         subtotal,
		DiscountBase:     discountBase,
		Discount:         discount,
		Final:            subtotal - discount,
	}
}
