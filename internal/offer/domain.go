// Package offer implements the price offer aggregate: immutable saved
// quotations combining a package snapshot, selected add-ons and manual
// products, with server-side totals and PDF generation.
package offer

import (
	"time"

	"github.com/merhebia-finest/tilbud/internal/pricing"
	"github.com/merhebia-finest/tilbud/internal/users"
)

// Offer is a saved quotation. Records are immutable: editing an offer in the
// front office saves a brand new record with the next offer number.
type Offer struct {
	ID                  string                  `json:"_id"`
	OfferNo             int64                   `json:"offerNo"`
	SelectedPackage     *pricing.Package        `json:"selectedPackage"`
	Marke               string                  `json:"marke"`
	Model               string                  `json:"model"`
	Info                string                  `json:"info"`
	AddedOptionPackages []pricing.OptionPackage `json:"addedOptionPackages"`
	ManualProducts      []pricing.ManualProduct `json:"manualProducts"`
	Discount            string                  `json:"discount"`
	Terms               string                  `json:"terms"`
	ValidDays           string                  `json:"validDays"`
	Totals              pricing.Totals          `json:"totals"`
	CreatedBy           users.Ref               `json:"createdBy"`
	CreatedAt           time.Time               `json:"createdAt"`
}
