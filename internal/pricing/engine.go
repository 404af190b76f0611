// Package pricing implements the offer totals engine: packages, selectable
// option items and manual line items aggregated into a VAT/discount
// breakdown.
package pricing

import (
	"math"
	"strconv"
	"strings"
)

// VATRate is the fixed VAT applied to package and option amounts.
const VATRate = 0.25

// Calculate aggregates an offer's priced contents into Totals.
//
// The accumulation order is load-bearing: the 25% VAT split is taken over
// the package/option subtotal only, after which each manual product adds its
// precomputed total to the running total while contributing its own VAT and
// net amount separately. The overall discount percentage is then applied to
// total, VAT and net independently. The three quantities are deliberately
// not reconciled against each other; see the notes in DESIGN.md.
//
// Inputs are assumed validated (Validate* in this package). The only
// malformed input tolerated here is a non-numeric discountPercent, which is
// treated as zero so the caller can re-run the engine on partial input.
func Calculate(selected *Package, added []OptionPackage, manual []ManualProduct, discountPercent string) Totals {
	var total, campaignDiscount float64

	if selected != nil {
		if selected.Discount != nil {
			total += selected.Price - *selected.Discount
			campaignDiscount += *selected.Discount
		} else {
			total += selected.Price
		}
	}

	for _, pkg := range added {
		for _, opt := range pkg.Options {
			if !opt.IsSelected {
				continue
			}
			price := parseAmount(opt.Price)
			if opt.DiscountPrice != nil {
				// The discounted price itself, not the discount amount, is
				// what accumulates into the campaign discount here.
				discountPrice := parseAmount(*opt.DiscountPrice)
				total += price - discountPrice
				campaignDiscount += discountPrice
			} else {
				total += price
			}
		}
	}

	vatValue := total * VATRate
	totalWithoutVAT := total - vatValue

	for _, product := range manual {
		total += product.TotalPrice
		vatValue += (product.VAT / 100) * (product.Price - product.Discount)
		totalWithoutVAT += product.Price - product.Discount
	}

	pct := parsePercent(discountPercent)

	additionalDiscount := total * pct / 100
	total -= additionalDiscount

	totalWithoutVAT -= totalWithoutVAT * pct / 100
	vatValue -= vatValue * pct / 100

	return Totals{
		Total:              round(total),
		VATValue:           round(vatValue),
		TotalWithoutVAT:    round(totalWithoutVAT),
		CampaignDiscount:   round(campaignDiscount),
		AdditionalDiscount: round(additionalDiscount),
	}
}

func round(v float64) int64 {
	return int64(math.Round(v))
}

// parseAmount reads a string-encoded currency amount. Option item prices go
// through validation before reaching the engine, so a parse failure here is
// only ever a programming error; zero keeps the arithmetic defined.
func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// parsePercent reads the overall discount percentage, treating absent or
// non-numeric input as zero.
func parsePercent(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
