package models

// CartItem is one user selection of a product plus chosen options. Two
// additions of the same product are two independent items. The item owns
// the Product/Selected snapshots but keeps the originating ids so it can
// be re-resolved against a freshly loaded language document.
type CartItem struct {
	ItemID    string   `json:"itemId"`
	ProductID string   `json:"productId"`
	OptionIDs []string `json:"optionIds"`
	Product   Product  `json:"product"`
	Selected  []Option `json:"selected"`
}

// LaborSelection is one selected labor item. The id equals the referenced
// LaborCost id, which makes it the natural dedup key.
type LaborSelection struct {
	ID   string    `json:"id"`
	Days int       `json:"days"`
	Ref  LaborCost `json:"ref"`
}

// QuoteItemRequest carries one product selection of an exported quote.
type QuoteItemRequest struct {
	Product   Product  `json:"product" binding:"required"`
	OptionIDs []string `json:"optionIds"`
}

// QuoteLaborRequest carries one labor row of an exported quote.
type QuoteLaborRequest struct {
	Cost LaborCost `json:"cost" binding:"required"`
	Days int       `json:"days"`
}

// QuoteExportRequest is the composed quote as posted by the browsing UI
// to the PDF/XLSX export endpoints.
type QuoteExportRequest struct {
	CustomerName     string              `json:"customerName"`
	Lang             string              `json:"lang" example:"de"`
	Items            []QuoteItemRequest  `json:"items"`
	Labor            []QuoteLaborRequest `json:"labor"`
	DiscountPct      float64             `json:"discountPct"`
	DiscountHardware bool                `json:"discountHardware"`
	DiscountLabor    bool                `json:"discountLabor"`
}

// LoginRequest is the admin password exchange payload.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the short-lived admin token.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

// ErrorResponse is the generic error envelope.
type ErrorResponse struct {
	Error   string `json:"error" example:"Unauthorized"`
	File    string `json:"file,omitempty"`
	Detail  string `json:"detail,omitempty"`
	Details any    `json:"details,omitempty"`
}

// OkResponse is the generic success envelope.
type OkResponse struct {
	Ok   bool   `json:"ok" example:"true"`
	File string `json:"file,omitempty" example:"pricelist.de.json"`
}
