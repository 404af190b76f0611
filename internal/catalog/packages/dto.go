// Package packages manages the purchasable bundle catalog.
package packages

import "github.com/merhebia-finest/tilbud/internal/pricing"

// UpsertRequest creates or replaces a package.
type UpsertRequest struct {
	Name        string               `json:"name" validate:"required,max=200"`
	Description string               `json:"description" validate:"max=2000"`
	Image       string               `json:"image"`
	MarkeModels []pricing.MarkeModel `json:"markeModels" validate:"dive"`
	Price       float64              `json:"price" validate:"gte=0"`
	Discount    *float64             `json:"discount,omitempty"`
	EndDate     *string              `json:"endDate,omitempty"`
	Include     string               `json:"include"`
	Info        string               `json:"info"`
}

// Model converts the request into the shared package contract.
func (r UpsertRequest) Model() pricing.Package {
	return pricing.Package{
		Name:        r.Name,
		Description: r.Description,
		Image:       r.Image,
		MarkeModels: r.MarkeModels,
		Price:       r.Price,
		Discount:    r.Discount,
		EndDate:     r.EndDate,
		Include:     r.Include,
		Info:        r.Info,
	}
}
