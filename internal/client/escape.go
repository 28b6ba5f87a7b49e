package client

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML escapes text for insertion into markup. The entity set is fixed;
// html.EscapeString uses &#39; for the apostrophe.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
