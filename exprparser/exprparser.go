/*
File    : barescript/exprparser/exprparser.go

Package exprparser implements the expression parser: recursive descent over
a single expression string, returning a parsed expression tree; any
non-whitespace left unconsumed is a syntax error. Operator precedence is not layered
into separate recursive-descent levels; instead parseBinary builds a
left-leaning tree one operator at a time and re-associates it on the fly
(see precedence.go).

go-mix tokenizes with a character-cursor lexer feeding a classic Pratt
parser (lexer/lexer.go, parser/parser_precedence.go's precedence-climbing
loop). This module instead matches tokens directly off a remaining-input
cursor with anchored regexes (`^\s*...`), since the token shapes and
re-association algorithm needed here are defined in those terms. The "one
struct carrying all mutable state, narrow exported entry point" shape is
kept from go-mix's parser.
*/
package exprparser

import (
	"strings"

	"github.com/barescript-go/barescript/ast"
	"github.com/barescript-go/barescript/perror"
)

// exprParser holds the cursor over the remaining input. pos is a byte offset
// into text, always advanced forward; nothing here is shared across Parse
// calls.
type exprParser struct {
	text string
	pos  int
}

// Parse parses text as a single expression, rejecting any trailing
// non-whitespace.
func Parse(text string) (ast.Expression, error) {
	p := &exprParser{text: text}
	expr, err := p.parseBinary()
	if err != nil {
		return nil, err
	}
	if rest := p.skipSpace(); strings.TrimSpace(p.text[rest:]) != "" {
		return nil, p.errorAt("Syntax error", rest)
	}
	return expr, nil
}

// errorAt builds a *perror.ParserError anchored at this parser's full input
// text and the given byte offset, converted to a 1-based column. Byte
// offsets equal rune offsets here because every token regex operates on
// ASCII punctuation and the identifier/number/operator character classes are
// themselves ASCII; only string and bracketed-identifier contents may carry
// arbitrary runes, and those are never the position of a syntax error since
// they are consumed atomically by their own regex.
func (p *exprParser) errorAt(description string, offset int) *perror.ParserError {
	return perror.New(description, p.text, offset+1)
}

// skipSpace advances pos past leading whitespace and returns the new pos.
func (p *exprParser) skipSpace() int {
	for p.pos < len(p.text) && isSpace(p.text[p.pos]) {
		p.pos++
	}
	return p.pos
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}
