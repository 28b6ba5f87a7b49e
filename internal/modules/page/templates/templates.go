package templates

import "embed"

// FS holds the page templates
//
//go:embed *.html
var FS embed.FS
