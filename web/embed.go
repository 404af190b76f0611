package web

import "embed"

// Templates embeds the offer document HTML templates.
//
//go:embed templates/*.html
var Templates embed.FS
