// Package cart holds the composed quote: selected products with options
// and selected labor items. It is the single owner of that state; every
// consumer goes through the mutation API of Quote.
package cart

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"backend/models"
	"backend/pricing"
)

// CatalogSource yields the language-scoped documents the quote re-resolves
// against on a language switch. *catalog.Loader satisfies it.
type CatalogSource interface {
	PriceList(ctx context.Context, lang string) (*models.PriceList, error)
	Labor(ctx context.Context, lang string) (*models.LaborData, error)
}

// LaborRow is one input row for AddLabor.
type LaborRow struct {
	Cost models.LaborCost
	Days int
}

// Quote is the cart/quote state container.
type Quote struct {
	source CatalogSource

	mu           sync.Mutex
	lang         string
	gen          uint64
	items        []models.CartItem
	labor        []models.LaborSelection
	customerName string

	discountPct      float64
	discountHardware bool
	discountLabor    bool
}

// NewQuote returns an empty quote bound to a catalog source. The discount
// starts at 0 and applies to hardware only, matching the browsing UI.
func NewQuote(source CatalogSource, lang string) *Quote {
	return &Quote{
		source:           source,
		lang:             lang,
		discountHardware: true,
	}
}

// AddProduct appends a new line item for the product with the chosen
// options and returns its generated item id. Identical selections are
// never merged; each addition is individually removable.
func (q *Quote) AddProduct(p models.Product, opts []models.Option) string {
	itemID := "item-" + uuid.NewString()
	ids := make([]string, len(opts))
	selected := make([]models.Option, len(opts))
	for i, o := range opts {
		ids[i] = o.ID
		selected[i] = o
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, models.CartItem{
		ItemID:    itemID,
		ProductID: p.ID,
		OptionIDs: ids,
		Product:   p,
		Selected:  selected,
	})
	return itemID
}

// RemoveItem removes the line item with the given id. No-op if absent.
func (q *Quote) RemoveItem(itemID string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i, it := range q.items {
		if it.ItemID == itemID {
			q.items = append(q.items[:i], q.items[i+1:]...)
			return
		}
	}
}

// AddLabor upserts labor selections in one batch. A row whose cost id is
// already selected overwrites days and ref instead of duplicating.
// Negative days fall back to the item's average days.
func (q *Quote) AddLabor(rows []LaborRow) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, row := range rows {
		days := row.Days
		if days < 0 {
			days = row.Cost.AvgDays
		}
		if i := q.laborIndex(row.Cost.ID); i >= 0 {
			q.labor[i].Days = days
			q.labor[i].Ref = row.Cost
			continue
		}
		q.labor = append(q.labor, models.LaborSelection{ID: row.Cost.ID, Days: days, Ref: row.Cost})
	}
}

// UpdateLaborDays sets the day count of one labor selection, clamped to a
// non-negative value. No-op if the id is not selected.
func (q *Quote) UpdateLaborDays(id string, days int) {
	if days < 0 {
		days = 0
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if i := q.laborIndex(id); i >= 0 {
		q.labor[i].Days = days
	}
}

// RemoveLabor removes the labor selection with the given id. No-op if
// absent.
func (q *Quote) RemoveLabor(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if i := q.laborIndex(id); i >= 0 {
		q.labor = append(q.labor[:i], q.labor[i+1:]...)
	}
}

// laborIndex must be called with mu held.
func (q *Quote) laborIndex(id string) int {
	for i, l := range q.labor {
		if l.ID == id {
			return i
		}
	}
	return -1
}

// SetCustomerName sets the customer the quote is addressed to.
func (q *Quote) SetCustomerName(name string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.customerName = name
}

// CustomerName returns the customer the quote is addressed to.
func (q *Quote) CustomerName() string {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.customerName
}

// SetDiscount sets the discount percentage (clamped at totals time).
func (q *Quote) SetDiscount(pct float64) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.discountPct = pct
}

// SetDiscountHardware toggles discounting of the hardware subtotal.
func (q *Quote) SetDiscountHardware(on bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.discountHardware = on
}

// SetDiscountLabor toggles discounting of the labor subtotal.
func (q *Quote) SetDiscountLabor(on bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.discountLabor = on
}

// Language returns the active catalog language.
func (q *Quote) Language() string {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.lang
}

// Items returns a copy of the current line items.
func (q *Quote) Items() []models.CartItem {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]models.CartItem, len(q.items))
	copy(out, q.items)
	return out
}

// Labor returns a copy of the current labor selections.
func (q *Quote) Labor() []models.LaborSelection {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]models.LaborSelection, len(q.labor))
	copy(out, q.labor)
	return out
}

// Totals derives the quote totals from the current state.
func (q *Quote) Totals() pricing.Totals {
	q.mu.Lock()
	defer q.mu.Unlock()
	return pricing.CartTotals(q.items, q.labor, q.discountPct, q.discountHardware, q.discountLabor)
}

// SwitchLanguage sets the active language and re-resolves every held
// product, option and labor reference against the freshly fetched
// documents for that language. Existing state is never corrupted: if
// either fetch fails, all selections keep their previous snapshots, and
// results of a fetch superseded by a newer SwitchLanguage call are
// discarded. The returned error is informational only.
func (q *Quote) SwitchLanguage(ctx context.Context, lang string) error {
	q.mu.Lock()
	q.lang = lang
	q.gen++
	myGen := q.gen
	q.mu.Unlock()

	pl, err := q.source.PriceList(ctx, lang)
	if err != nil {
		return err
	}
	ld, err := q.source.Labor(ctx, lang)
	if err != nil {
		return err
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	if q.gen != myGen {
		// a newer language switch started while we were fetching
		return nil
	}
	q.reconcile(pl, ld)
	return nil
}

// reconcile must be called with mu held. A line item whose product id no
// longer resolves keeps its stale snapshot untouched; within a found
// product, options that no longer resolve are dropped from the snapshot
// but stay in OptionIDs for future re-resolution.
func (q *Quote) reconcile(pl *models.PriceList, ld *models.LaborData) {
	byProduct := make(map[string]models.Product, len(pl.Products))
	byOption := make(map[string]map[string]models.Option, len(pl.Products))
	for _, p := range pl.Products {
		byProduct[p.ID] = p
		opts := make(map[string]models.Option, len(p.Options))
		for _, o := range p.Options {
			opts[o.ID] = o
		}
		byOption[p.ID] = opts
	}

	for i, it := range q.items {
		p, ok := byProduct[it.ProductID]
		if !ok {
			continue
		}
		selected := make([]models.Option, 0, len(it.OptionIDs))
		for _, oid := range it.OptionIDs {
			if o, ok := byOption[it.ProductID][oid]; ok {
				selected = append(selected, o)
			}
		}
		q.items[i].Product = p
		q.items[i].Selected = selected
	}

	byLabor := make(map[string]models.LaborCost, len(ld.Items))
	for _, l := range ld.Items {
		byLabor[l.ID] = l
	}
	for i, l := range q.labor {
		if ref, ok := byLabor[l.ID]; ok {
			q.labor[i].Ref = ref
		}
	}
}
