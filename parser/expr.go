/*
File    : barescript/parser/expr.go

Bridges the statement parser into package exprparser for every embedded
expression substring, converting any resulting error's column so the caret
lands on the offending position within the original source line rather than
within the expression substring.
*/
package parser

import (
	"github.com/barescript-go/barescript/ast"
	"github.com/barescript-go/barescript/exprparser"
	"github.com/barescript-go/barescript/perror"
)

// parseEmbeddedExpr parses text — a substring of line.text starting at the
// given 0-based byte offset — as a full expression (no trailing content
// allowed) and remaps any error onto line.
func (p *Parser) parseEmbeddedExpr(line effectiveLine, offset int, text string) (ast.Expression, error) {
	expr, err := exprparser.Parse(text)
	if err != nil {
		return nil, p.remapExprErr(line, offset, err)
	}
	return expr, nil
}

// remapExprErr converts an error from package exprparser — whose Line and
// ColumnNumber are relative to the embedded substring — into one anchored at
// the full source line and carrying this parser's line number.
func (p *Parser) remapExprErr(line effectiveLine, offset int, err error) error {
	pe, ok := err.(*perror.ParserError)
	if !ok {
		return err
	}
	adjusted := pe.WithColumnOffset(offset)
	adjusted.Line = line.text
	return adjusted.WithLineNumber(p.lineNumber(line))
}
