package offer

import "github.com/merhebia-finest/tilbud/internal/pricing"

// CreateRequest is the payload for saving a new offer. Catalog snapshots are
// carried whole so the saved record stays stable when catalog entries change
// later.
type CreateRequest struct {
	SelectedPackage     *pricing.Package        `json:"selectedPackage"`
	Marke               string                  `json:"marke" validate:"max=100"`
	Model               string                  `json:"model" validate:"max=100"`
	Info                string                  `json:"info" validate:"max=4000"`
	AddedOptionPackages []pricing.OptionPackage `json:"addedOptionPackages"`
	ManualProducts      []pricing.ManualProduct `json:"manualProducts"`
	Discount            string                  `json:"discount" validate:"max=10"`
	Terms               string                  `json:"terms" validate:"max=2000"`
	ValidDays           string                  `json:"validDays" validate:"max=10"`
}

// ListRequest paginates the offer index.
type ListRequest struct {
	Page  int
	Limit int
}

// ListResponse bundles a page of offers with the total count.
type ListResponse struct {
	Offers []Offer `json:"offers"`
	Total  int     `json:"total"`
}
