// Package extract implements the email-to-order extraction engine:
// text normalisation, per-field pattern rules, order date resolution
// and the assembler that combines them into a complete order record.
package extract

import (
	"regexp"
	"strings"
)

var (
	entityReplacer = strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#39;", "'",
	)

	// Structural tags become a space so words on either side of a
	// table cell or line break stay separated.
	structuralTagRe = regexp.MustCompile(`(?i)<br\s*/?>|<p[^>]*>|</p>|<td[^>]*>|</td>|<tr[^>]*>|</tr>`)
	anyTagRe        = regexp.MustCompile(`<[^>]+>`)
	whitespaceRe    = regexp.MustCompile(`\s+`)
)

// Normalize converts an email body (HTML or plain text) into a
// single-spaced plain-text string suitable for pattern matching. It
// is total: malformed or unterminated markup never fails, the worst
// case is leftover text.
func Normalize(body string) string {
	body = entityReplacer.Replace(body)
	body = structuralTagRe.ReplaceAllString(body, " ")
	body = anyTagRe.ReplaceAllString(body, "")
	body = whitespaceRe.ReplaceAllString(body, " ")
	return strings.TrimSpace(body)
}
