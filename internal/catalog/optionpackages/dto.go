// Package optionpackages manages the add-on group catalog.
package optionpackages

import "github.com/merhebia-finest/tilbud/internal/pricing"

// UpsertRequest creates or replaces an option package.
type UpsertRequest struct {
	Name        string               `json:"name" validate:"required,max=200"`
	MarkeModels []pricing.MarkeModel `json:"markeModels" validate:"dive"`
	Info        string               `json:"info"`
	Options     []pricing.OptionItem `json:"options" validate:"dive"`
}

// Model converts the request into the shared contract. Selection state is a
// per-offer concern and is never persisted on the catalog entry.
func (r UpsertRequest) Model() pricing.OptionPackage {
	options := make([]pricing.OptionItem, len(r.Options))
	copy(options, r.Options)
	for i := range options {
		options[i].IsSelected = false
	}
	return pricing.OptionPackage{
		Name:        r.Name,
		MarkeModels: r.MarkeModels,
		Info:        r.Info,
		Options:     options,
	}
}
