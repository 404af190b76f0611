// Package settings stores the company profile printed on offer documents.
package settings

import (
	"github.com/merhebia-finest/tilbud/internal/offer/document"
)

// CompanySettings is the issuer profile. A single row exists per
// installation.
type CompanySettings struct {
	CompanyName        string `json:"companyName"`
	Address            string `json:"address"`
	PostalCode         string `json:"postalCode"`
	City               string `json:"city"`
	Country            string `json:"country"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	OrganizationNumber string `json:"organizationNumber"`
	ContactName        string `json:"contactName"`
	Logo               string `json:"logo,omitempty"`
}

// Defaults returns the out-of-the-box company profile.
func Defaults() CompanySettings {
	return CompanySettings{
		CompanyName:        "Merhebia Finest AS",
		Address:            "Vintergata 19",
		PostalCode:         "3048",
		City:               "Drammen",
		Country:            "NORGE",
		Email:              "post@merhebia.no",
		Phone:              "+47 90085591",
		OrganizationNumber: "929 922 013 MVA",
	}
}

// IssuerBlock converts the profile into the document header block.
func (c CompanySettings) IssuerBlock() document.IssuerBlock {
	return document.IssuerBlock{
		CompanyName:        c.CompanyName,
		AddressLines:       []string{c.Address, c.PostalCode + " " + c.City, c.Country},
		Email:              c.Email,
		Phone:              c.Phone,
		OrganizationNumber: c.OrganizationNumber,
	}
}
