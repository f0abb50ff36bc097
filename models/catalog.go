package models

// Option is one configurable add-on of a product. Options belong to
// exactly one product and are never shared.
type Option struct {
	ID    string `json:"id" example:"o-feed-4axis"`
	Name  string `json:"name" example:"4-Achs-Zufuehrung"`
	Price Money  `json:"price"`
}

// Product is one machine in the price list. A language switch produces a
// new Product value with the same id.
type Product struct {
	ID        string            `json:"id" example:"m-press-200"`
	Typ       string            `json:"typ" example:"Exzenterpresse"`
	Name      string            `json:"name" example:"Press 200"`
	Group     string            `json:"group" example:"presses"`
	Category  string            `json:"category" example:"forming"`
	BasePrice Money             `json:"basePrice"`
	Options   []Option          `json:"options"`
	SKU       string            `json:"sku,omitempty"`
	Short     string            `json:"short,omitempty"`
	Specs     map[string]string `json:"specs,omitempty"`
	Tags      []string          `json:"tags,omitempty"`
	Images    []string          `json:"images,omitempty"`
}

// PriceList is one per-language pricelist.<lang>.json document.
type PriceList struct {
	Currency string    `json:"currency" example:"EUR"`
	Updated  string    `json:"updated" example:"2025-06-01"`
	Products []Product `json:"products"`
}

// GroupInfoSection is one titled bullet block of a group description.
type GroupInfoSection struct {
	Title   string   `json:"title"`
	Bullets []string `json:"bullets"`
}

// GroupInfo is the editable description of one product group.
type GroupInfo struct {
	Title    string             `json:"title"`
	Sections []GroupInfoSection `json:"sections"`
}

// GroupInfoCategory groups GroupInfo entries under one category key.
type GroupInfoCategory struct {
	Groups map[string]GroupInfo `json:"groups"`
}

// GroupInfoData is one per-language groupinfo.<lang>.json document.
// Absence of an entry is not an error, it is optional enrichment data.
type GroupInfoData struct {
	Categories map[string]GroupInfoCategory `json:"categories"`
}

// LaborCost is one bookable labor line item (commissioning, training, ...).
type LaborCost struct {
	ID         string  `json:"id" example:"l-commissioning"`
	Title      string  `json:"title" example:"Inbetriebnahme"`
	Category   string  `json:"category" example:"service"`
	Group      string  `json:"group,omitempty"`
	Machine    string  `json:"machine,omitempty"`
	AvgDays    int     `json:"avgDays" example:"3"`
	DayRateEur float64 `json:"dayRateEur" example:"980"`
}

// LaborData is one per-language labor.<lang>.json document.
type LaborData struct {
	Currency string      `json:"currency" example:"EUR"`
	Updated  string      `json:"updated" example:"2025-06-01"`
	Items    []LaborCost `json:"items"`
}
