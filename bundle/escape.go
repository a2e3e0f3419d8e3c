package bundle

import "strings"

// Escape makes raw text safe to embed inside a backtick-delimited template
// literal. The backslash pass must run first so that the backslashes added
// by the later passes are not doubled.
func Escape(raw string) string {
	escaped := strings.ReplaceAll(raw, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, "`", "\\`")
	return strings.ReplaceAll(escaped, "${", `\${`)
}
