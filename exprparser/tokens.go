/*
File    : barescript/exprparser/tokens.go

Token-shape regexes. Every pattern is anchored at the start of the remaining
input and absorbs its own leading whitespace, so callers never need to skip
space between tokens themselves.
*/
package exprparser

import "regexp"

var (
	numberPattern    = regexp.MustCompile(`^\s*([+-]?\d+(\.\d*)?([eE][+-]?\d+)?)`)
	sglstrPattern    = regexp.MustCompile(`^\s*'((?:\\.|[^'\\])*)'`)
	dblstrPattern    = regexp.MustCompile(`^\s*"((?:\\.|[^"\\])*)"`)
	identPattern     = regexp.MustCompile(`^\s*([A-Za-z_][A-Za-z0-9_]*)`)
	bracketPattern   = regexp.MustCompile(`^\s*\[((?:\\.|[^\]\\])*)\]`)
	lparenPattern    = regexp.MustCompile(`^\s*\(`)
	rparenPattern    = regexp.MustCompile(`^\s*\)`)
	commaPattern     = regexp.MustCompile(`^\s*,`)
	prefixOpPattern  = regexp.MustCompile(`^\s*([!-])`)
)

// binaryOpPatterns is tried in order, longest operator text first so that,
// e.g., "**" is not mistaken for two "*" tokens and "<=" is not mistaken for
// "<" followed by "=". Each entry's op is the exact text matched.
var binaryOpPatterns = []struct {
	pattern *regexp.Regexp
	op      string
}{
	{regexp.MustCompile(`^\s*\*\*`), "**"},
	{regexp.MustCompile(`^\s*<=`), "<="},
	{regexp.MustCompile(`^\s*>=`), ">="},
	{regexp.MustCompile(`^\s*==`), "=="},
	{regexp.MustCompile(`^\s*!=`), "!="},
	{regexp.MustCompile(`^\s*&&`), "&&"},
	{regexp.MustCompile(`^\s*\|\|`), "||"},
	{regexp.MustCompile(`^\s*\*`), "*"},
	{regexp.MustCompile(`^\s*/`), "/"},
	{regexp.MustCompile(`^\s*%`), "%"},
	{regexp.MustCompile(`^\s*\+`), "+"},
	{regexp.MustCompile(`^\s*-`), "-"},
	{regexp.MustCompile(`^\s*<`), "<"},
	{regexp.MustCompile(`^\s*>`), ">"},
}

// unescape replaces \\ with \ and \<quote> with <quote> — the only two
// escapes recognized for quoted strings and bracketed identifiers (with
// quote set to ']' for the latter).
func unescape(s string, quote byte) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && (s[i+1] == '\\' || s[i+1] == quote) {
			out = append(out, s[i+1])
			i++
			continue
		}
		out = append(out, s[i])
	}
	return string(out)
}
