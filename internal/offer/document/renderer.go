package document

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"math"
	"strings"

	"github.com/merhebia-finest/tilbud/web"
)

// PDFClient exposes the subset of the report client used by the renderer.
type PDFClient interface {
	RenderHTML(ctx context.Context, html string) ([]byte, error)
}

// RenderResult bundles the rendered artefacts.
type RenderResult struct {
	HTML   string
	PDF    []byte
	Length int64
}

// Renderer transforms a Document into PDF artefacts via html/template + PDF
// conversion.
type Renderer struct {
	tpl    *template.Template
	client PDFClient
}

// NewRenderer parses the offer PDF template and wires the PDF client.
func NewRenderer(client PDFClient) (*Renderer, error) {
	if client == nil {
		return nil, fmt.Errorf("offer renderer: pdf client required")
	}
	funcMap := template.FuncMap{
		"formatPrice":   formatPriceValue,
		"formatPercent": formatPercent,
	}
	tpl, err := template.New("offer_pdf.html").Funcs(funcMap).ParseFS(web.Templates, "templates/offer_pdf.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{tpl: tpl, client: client}, nil
}

// HTML executes the template without converting to PDF.
func (r *Renderer) HTML(doc Document) (string, error) {
	if r == nil || r.tpl == nil {
		return "", fmt.Errorf("offer renderer not initialised")
	}
	buf := &bytes.Buffer{}
	if err := r.tpl.Execute(buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Render executes the template and converts the HTML to PDF bytes.
func (r *Renderer) Render(ctx context.Context, doc Document) (RenderResult, error) {
	if r == nil || r.tpl == nil || r.client == nil {
		return RenderResult{}, fmt.Errorf("offer renderer not initialised")
	}
	html, err := r.HTML(doc)
	if err != nil {
		return RenderResult{}, err
	}
	pdf, err := r.client.RenderHTML(ctx, html)
	if err != nil {
		return RenderResult{}, err
	}
	return RenderResult{HTML: html, PDF: pdf, Length: int64(len(pdf))}, nil
}

// FormatPrice renders a monetary amount in the Norwegian house style:
// rounded to whole kroner, thousands separated by spaces.
func FormatPrice(v float64) string {
	n := int64(math.Round(v))
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	digits := fmt.Sprintf("%d", n)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)
	return sign + strings.Join(groups, " ")
}

// formatPriceValue adapts FormatPrice for templates, which hand over both
// int64 totals and float64 line amounts. A nil pointer renders as 0.
func formatPriceValue(v any) string {
	switch t := v.(type) {
	case int64:
		return FormatPrice(float64(t))
	case int:
		return FormatPrice(float64(t))
	case float64:
		return FormatPrice(t)
	case *float64:
		if t == nil {
			return FormatPrice(0)
		}
		return FormatPrice(*t)
	default:
		return "0"
	}
}

func formatPercent(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%d %%", int64(v))
	}
	return fmt.Sprintf("%g %%", v)
}
