package document

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Norwegian letters stay; anything else outside the ASCII word range is
// replaced before the name ends up in a Content-Disposition header.
var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9æøåÆØÅ\s-]`)

// FileName builds the download name for an offer PDF: Tilbud-{offerNo}.pdf,
// suffixed with the sanitised customer name taken from the first line of the
// customer info block when one exists.
func FileName(offerNo int64, info string) string {
	customer := ""
	if lines := strings.Split(info, "\n"); len(lines) > 0 {
		customer = strings.TrimSpace(lines[0])
	}
	if customer == "" {
		return fmt.Sprintf("Tilbud-%d.pdf", offerNo)
	}
	customer = norm.NFC.String(customer)
	safe := unsafeFilenameChars.ReplaceAllString(customer, "_")
	return fmt.Sprintf("Tilbud-%d-%s.pdf", offerNo, safe)
}
