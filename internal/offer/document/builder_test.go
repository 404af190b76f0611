package document

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/merhebia-finest/tilbud/internal/pricing"
)

func testIssuer() IssuerBlock {
	return IssuerBlock{
		CompanyName:        "Merhebia Finest AS",
		AddressLines:       []string{"Vintergata 19", "3048 Drammen", "NORGE"},
		Email:              "post@merhebia.no",
		Phone:              "+47 90085591",
		OrganizationNumber: "929 922 013 MVA",
	}
}

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	}
}

func TestBuildFullOffer(t *testing.T) {
	discount := 2000.0
	endDate := "2025-12-24"
	discountPrice := "300"
	optEnd := "24.12.2025"

	selected := &pricing.Package{
		ID:          "p1",
		Name:        "Vinterpakke",
		Description: "Komplett vinterklargjøring",
		Price:       10000,
		Discount:    &discount,
		EndDate:     &endDate,
		Include:     "• Dekkskift\n• Undervask\n\n•  Rustbeskyttelse",
	}
	added := []pricing.OptionPackage{
		{
			ID:   "op1",
			Name: "Tilleggspakke",
			Options: []pricing.OptionItem{
				{ID: "o1", Name: "Hengerfeste", Price: "1000", DiscountPrice: &discountPrice, DiscountEndDate: &optEnd, IsActive: true, IsSelected: true},
				{ID: "o2", Name: "Takstativ", Price: "500", IsActive: true, IsSelected: false},
				{ID: "o3", Name: "Gummimatter", Price: "400", IsActive: true, IsSelected: true},
			},
		},
	}
	manual := []pricing.ManualProduct{
		{Name: "Spesialfelger", Description: "18 tommer", Price: 1300, Discount: 0, VAT: 25, TotalPrice: 1625},
	}
	totals := pricing.Totals{Total: 10080, VATValue: 2430, TotalWithoutVAT: 7583, CampaignDiscount: 2430, AdditionalDiscount: 1120}

	builder := NewBuilder(testIssuer())
	builder.WithNow(fixedClock())

	doc := builder.Build(selected, added, manual, totals, Meta{
		OfferNo:         101,
		Date:            "2025-06-10",
		ValidDays:       "14",
		CreatedBy:       "Kari Selger",
		Info:            "Ola Nordmann\nVeien 1\n0123 Oslo",
		DiscountPercent: "10",
	})

	require.Equal(t, int64(101), doc.Header.OfferNo)
	require.Equal(t, "10/06/25", doc.Header.Date)
	require.Equal(t, "24/06/25", doc.Header.ValidUntil)
	require.Equal(t, "Kari Selger", doc.Header.CreatedBy)
	require.Equal(t, []string{"Ola Nordmann", "Veien 1", "0123 Oslo"}, doc.Header.CustomerLines)
	require.Equal(t, testIssuer(), doc.Header.Issuer)

	require.Len(t, doc.Lines, 3)

	pkg := doc.Lines[0]
	require.Equal(t, LineKindPackage, pkg.Kind)
	require.Equal(t, "Vinterpakke", pkg.Title)
	require.Equal(t, []string{"Dekkskift", "Undervask", "Rustbeskyttelse"}, pkg.Includes)
	require.Equal(t, "KAMPANJE 24/12/25", pkg.Campaign)
	require.NotNil(t, pkg.Discount)
	require.Equal(t, 2000.0, *pkg.Discount)
	require.Equal(t, 25.0, pkg.VATPercent)
	require.Equal(t, 8000.0, pkg.Amount.Value)
	require.NotNil(t, pkg.Amount.Original)
	require.Equal(t, 10000.0, *pkg.Amount.Original)

	opt := doc.Lines[1]
	require.Equal(t, LineKindOption, opt.Kind)
	require.Equal(t, "Tilleggspakke", opt.Title)
	require.Len(t, opt.Options, 2, "unselected items produce no option line")
	require.Equal(t, "Hengerfeste", opt.Options[0].Name)
	require.Equal(t, 300.0, opt.Options[0].Amount.Value)
	require.NotNil(t, opt.Options[0].Amount.Original)
	require.Equal(t, 1000.0, *opt.Options[0].Amount.Original)
	require.Equal(t, "KAMPANJE 24/12/25", opt.Options[0].Campaign)
	require.Equal(t, "Gummimatter", opt.Options[1].Name)
	require.Equal(t, 400.0, opt.Options[1].Amount.Value)
	require.Nil(t, opt.Options[1].Amount.Original)
	// 1000-300 for the discounted item plus 400 for the plain one.
	require.Equal(t, 1100.0, opt.Amount.Value)

	man := doc.Lines[2]
	require.Equal(t, LineKindManual, man.Kind)
	require.Equal(t, "Spesialfelger", man.Title)
	require.Nil(t, man.Discount)
	require.Equal(t, 25.0, man.VATPercent)
	require.Equal(t, 1625.0, man.Amount.Value)

	require.Equal(t, "10", doc.Totals.DiscountPercent)
	require.Equal(t, int64(1120), doc.Totals.AdditionalDiscount)
	require.Equal(t, int64(2430), doc.Totals.CampaignDiscount)
	require.Equal(t, int64(2430), doc.Totals.VATValue)
	require.Equal(t, int64(10080), doc.Totals.Total)

	require.Equal(t, DefaultTerms, doc.Terms)
	require.Equal(t, "Tilbud-101-Ola Nordmann.pdf", doc.FileName)
}

func TestBuildWithoutPackage(t *testing.T) {
	builder := NewBuilder(testIssuer())
	builder.WithNow(fixedClock())

	doc := builder.Build(nil, nil, nil, pricing.Totals{}, Meta{OfferNo: 5})

	require.Empty(t, doc.Lines)
	require.Empty(t, doc.Header.CustomerLines)
	require.Equal(t, "10/06/25", doc.Header.Date, "empty issue date falls back to today")
	require.Equal(t, "11/06/25", doc.Header.ValidUntil, "missing validDays defaults to one day")
	require.Equal(t, "0", doc.Totals.DiscountPercent)
	require.Equal(t, "Tilbud-5.pdf", doc.FileName)
}

func TestBuildOptionPackageWithNoSelectionIsSkipped(t *testing.T) {
	builder := NewBuilder(testIssuer())
	builder.WithNow(fixedClock())

	added := []pricing.OptionPackage{
		{ID: "op1", Name: "Tom pakke", Options: []pricing.OptionItem{
			{ID: "o1", Name: "Takstativ", Price: "500", IsActive: true, IsSelected: false},
		}},
	}
	doc := builder.Build(nil, added, nil, pricing.Totals{}, Meta{OfferNo: 6})
	require.Empty(t, doc.Lines)
}

func TestBuildKeepsExplicitZeroDiscountOnPackage(t *testing.T) {
	zero := 0.0
	selected := &pricing.Package{ID: "p1", Name: "Basispakke", Price: 5000, Discount: &zero}

	builder := NewBuilder(testIssuer())
	builder.WithNow(fixedClock())
	doc := builder.Build(selected, nil, nil, pricing.Totals{}, Meta{OfferNo: 7})

	row := doc.Lines[0]
	require.NotNil(t, row.Discount)
	require.Equal(t, 0.0, *row.Discount)
	require.Equal(t, 5000.0, row.Amount.Value)
	require.NotNil(t, row.Amount.Original)
	require.Empty(t, row.Campaign)
}

func TestBuildCustomTermsKept(t *testing.T) {
	builder := NewBuilder(testIssuer())
	doc := builder.Build(nil, nil, nil, pricing.Totals{}, Meta{OfferNo: 8, Terms: "Betales ved henting."})
	require.Equal(t, "Betales ved henting.", doc.Terms)
}

func TestBuildUnparseableDateKeptVerbatim(t *testing.T) {
	builder := NewBuilder(testIssuer())
	builder.WithNow(fixedClock())
	doc := builder.Build(nil, nil, nil, pricing.Totals{}, Meta{OfferNo: 9, Date: "snarest"})
	require.Equal(t, "snarest", doc.Header.Date)
}
