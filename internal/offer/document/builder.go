// Package document builds the renderable representation of a saved offer:
// a header with issuer and customer details, one row per priced entity and a
// totals block, ready for the HTML/PDF renderer.
package document

import (
	"strconv"
	"strings"
	"time"

	"github.com/merhebia-finest/tilbud/internal/pricing"
)

// DefaultTerms is used when an offer carries no payment terms of its own.
const DefaultTerms = "Please pay within 15 days from the date of invoice."

// LineKind tags the origin of a line row.
type LineKind string

const (
	LineKindPackage LineKind = "package"
	LineKindOption  LineKind = "option"
	LineKindManual  LineKind = "manual"
)

// Amount is a displayable price. Original is set when the amount is a
// campaign price, in which case Value holds the reduced figure and Original
// the struck-through base price.
type Amount struct {
	Value    float64
	Original *float64
}

// OptionLine is one selected add-on rendered as a bullet under its option
// package row.
type OptionLine struct {
	Name     string
	Campaign string
	Amount   Amount
}

// LineRow is one row of the line-items section.
type LineRow struct {
	Kind        LineKind
	Title       string
	Description string
	Includes    []string
	Campaign    string
	Discount    *float64
	VATPercent  float64
	Amount      Amount
	Options     []OptionLine
}

// IssuerBlock is the static business info printed in the document header.
type IssuerBlock struct {
	CompanyName        string
	AddressLines       []string
	Email              string
	Phone              string
	OrganizationNumber string
}

// HeaderSection combines issuer info, offer metadata and the customer block.
type HeaderSection struct {
	Issuer        IssuerBlock
	CustomerLines []string
	OfferNo       int64
	Date          string
	ValidUntil    string
	CreatedBy     string
}

// TotalsSection mirrors the totals record for display. DiscountPercent is
// the raw offer field, never recomputed from the amounts.
type TotalsSection struct {
	DiscountPercent    string
	AdditionalDiscount int64
	CampaignDiscount   int64
	VATValue           int64
	Total              int64
}

// Document is the full renderable offer tree. Plain data, serialisable,
// no behaviour.
type Document struct {
	Header   HeaderSection
	Lines    []LineRow
	Terms    string
	Totals   TotalsSection
	FileName string
}

// Meta carries the offer metadata that is not part of the priced contents.
type Meta struct {
	OfferNo         int64
	Date            string
	ValidDays       string
	CreatedBy       string
	Terms           string
	Info            string
	DiscountPercent string
}

// Builder assembles offer documents. The clock is injectable so validity
// dates stay deterministic in tests.
type Builder struct {
	issuer IssuerBlock
	now    func() time.Time
}

// NewBuilder constructs a Builder for the given issuer.
func NewBuilder(issuer IssuerBlock) *Builder {
	return &Builder{issuer: issuer, now: time.Now}
}

// WithNow overrides the clock.
func (b *Builder) WithNow(now func() time.Time) {
	if now != nil {
		b.now = now
	}
}

// Build transforms an offer's priced contents, its totals and its metadata
// into a Document. It performs no I/O and no validation; a missing package
// simply produces no package row.
func (b *Builder) Build(selected *pricing.Package, added []pricing.OptionPackage, manual []pricing.ManualProduct, totals pricing.Totals, meta Meta) Document {
	header := HeaderSection{
		Issuer:        b.issuer,
		CustomerLines: SplitLines(meta.Info),
		OfferNo:       meta.OfferNo,
		Date:          b.issueDate(meta.Date),
		ValidUntil:    ValidUntilDate(meta.ValidDays, b.now()).Format(displayLayout),
		CreatedBy:     meta.CreatedBy,
	}

	lines := make([]LineRow, 0, 1+len(added)+len(manual))
	if selected != nil {
		lines = append(lines, packageRow(*selected))
	}
	for _, pkg := range added {
		if row, ok := optionRow(pkg); ok {
			lines = append(lines, row)
		}
	}
	for _, product := range manual {
		lines = append(lines, manualRow(product))
	}

	terms := strings.TrimSpace(meta.Terms)
	if terms == "" {
		terms = DefaultTerms
	}

	return Document{
		Header: header,
		Lines:  lines,
		Terms:  terms,
		Totals: TotalsSection{
			DiscountPercent:    displayPercent(meta.DiscountPercent),
			AdditionalDiscount: totals.AdditionalDiscount,
			CampaignDiscount:   totals.CampaignDiscount,
			VATValue:           totals.VATValue,
			Total:              totals.Total,
		},
		FileName: FileName(meta.OfferNo, meta.Info),
	}
}

func (b *Builder) issueDate(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return b.now().Format(displayLayout)
	}
	return FormatDate(raw)
}

func packageRow(pkg pricing.Package) LineRow {
	row := LineRow{
		Kind:        LineKindPackage,
		Title:       pkg.Name,
		Description: pkg.Description,
		Includes:    ParseBulletList(pkg.Include),
		Discount:    pkg.Discount,
		VATPercent:  100 * pricing.VATRate,
		Amount:      Amount{Value: pkg.Price},
	}
	if pkg.EndDate != nil {
		row.Campaign = "KAMPANJE " + FormatDate(*pkg.EndDate)
	}
	if pkg.Discount != nil {
		original := pkg.Price
		row.Amount = Amount{Value: pkg.Price - *pkg.Discount, Original: &original}
	}
	return row
}

// optionRow renders an option package with its selected items bulleted.
// Packages without any selected item produce no row at all.
func optionRow(pkg pricing.OptionPackage) (LineRow, bool) {
	row := LineRow{
		Kind:       LineKindOption,
		Title:      pkg.Name,
		VATPercent: 100 * pricing.VATRate,
	}
	var sum float64
	for _, opt := range pkg.Options {
		if !opt.IsSelected {
			continue
		}
		line := OptionLine{Name: opt.Name}
		price := parseDisplayAmount(opt.Price)
		if opt.DiscountPrice != nil {
			discounted := parseDisplayAmount(*opt.DiscountPrice)
			original := price
			line.Amount = Amount{Value: discounted, Original: &original}
			sum += price - discounted
		} else {
			line.Amount = Amount{Value: price}
			sum += price
		}
		if opt.DiscountEndDate != nil {
			line.Campaign = "KAMPANJE " + FormatDate(*opt.DiscountEndDate)
		}
		row.Options = append(row.Options, line)
	}
	if len(row.Options) == 0 {
		return LineRow{}, false
	}
	row.Amount = Amount{Value: sum}
	return row, true
}

func manualRow(product pricing.ManualProduct) LineRow {
	row := LineRow{
		Kind:        LineKindManual,
		Title:       product.Name,
		Description: product.Description,
		VATPercent:  product.VAT,
		Amount:      Amount{Value: product.TotalPrice},
	}
	if product.Discount != 0 {
		discount := product.Discount
		row.Discount = &discount
	}
	return row
}

func parseDisplayAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

func displayPercent(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "0"
	}
	return raw
}
