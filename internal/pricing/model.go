package pricing

// MarkeModel scopes a package or option package to a brand/model pair.
type MarkeModel struct {
	Marke string `json:"marke"`
	Model string `json:"model"`
}

// Package is a purchasable bundle with a base price and an optional
// campaign discount. Include holds a newline-delimited bullet list of
// everything the bundle covers.
type Package struct {
	ID          string       `json:"_id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Image       string       `json:"image,omitempty"`
	MarkeModels []MarkeModel `json:"markeModels"`
	Price       float64      `json:"price"`
	Discount    *float64     `json:"discount,omitempty"`
	EndDate     *string      `json:"endDate,omitempty"`
	Include     string       `json:"include"`
	Info        string       `json:"info,omitempty"`
}

// OptionItem is one selectable add-on inside an option package. Prices are
// string-encoded on the wire. Only items with IsSelected set contribute to
// an offer's totals.
type OptionItem struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Price           string  `json:"price"`
	DiscountPrice   *string `json:"discountPrice,omitempty"`
	IsActive        bool    `json:"isActive"`
	DiscountEndDate *string `json:"discountEndDate,omitempty"`
	IsSelected      bool    `json:"isSelected"`
}

// OptionPackage groups optional add-ons scoped to one or more brand/model
// pairs.
type OptionPackage struct {
	ID          string       `json:"_id"`
	Name        string       `json:"name"`
	MarkeModels []MarkeModel `json:"markeModels"`
	Info        string       `json:"info"`
	Options     []OptionItem `json:"options"`
}

// ManualProduct is a free-form line item entered directly on an offer. Its
// TotalPrice is computed at entry time and carried as data; the engine never
// re-derives it.
type ManualProduct struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Discount    float64 `json:"discount"`
	VAT         float64 `json:"vat"`
	TotalPrice  float64 `json:"totalPrice"`
}

// Totals is the monetary breakdown of an offer. All fields are rounded to
// whole currency units.
type Totals struct {
	Total              int64 `json:"total"`
	VATValue           int64 `json:"vatValue"`
	TotalWithoutVAT    int64 `json:"totalWithoutVat"`
	CampaignDiscount   int64 `json:"campaignDiscount"`
	AdditionalDiscount int64 `json:"additionalDiscount"`
}

// ManualTotalPrice computes the entry-time total of a manual product:
// discounted price plus its own VAT.
func ManualTotalPrice(price, discount, vat float64) float64 {
	discounted := price - discount
	return discounted + discounted*(vat/100)
}
