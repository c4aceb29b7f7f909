package xmlbuilder

import "strings"

// The ampersand rule must come before the others so that the entity
// text produced for them is never itself re-escaped.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"'", "&apos;",
	"<", "&lt;",
	">", "&gt;",
)

// EscapeString replaces the five reserved XML characters in s with
// their entity references. Element applies it once to every attribute
// value and text payload as it is added, so callers must not pre-escape
// input that goes through AddAttribute or AddText; doing so escapes the
// entities a second time.
func EscapeString(s string) string {
	return escaper.Replace(s)
}
