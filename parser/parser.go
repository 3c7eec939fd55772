/*
File    : barescript/parser/parser.go

Package parser implements the statement parser for a small embedded
scripting language: it splits input into logical lines, dispatches each
against an ordered set of line patterns, lowers function, if/else, while,
and foreach blocks into a flat sequence of labeled jumps, and calls into
package exprparser for every embedded expression.

go-mix builds a token-stream Pratt parser behind a Parser struct that
carries a lexer, a token lookahead pair, and parsing function tables keyed
by token type. This module is line-oriented rather than token-oriented —
there is no shared token stream between statements — so the Parser here
instead carries the line list, the current line cursor, the open-block
stack, the open function slot, and the label allocator. The overall shape
(a struct holding all mutable parse state, a table of per-construct parsing
methods, one error value returned on first failure) is kept from go-mix's
parser; the token-table dispatch is replaced with ordered regex dispatch.
*/
package parser

import (
	"fmt"

	"github.com/barescript-go/barescript/ast"
	"github.com/barescript-go/barescript/perror"
)

// Parser holds the mutable state of a single ParseScript invocation. It is
// not safe for concurrent use by multiple goroutines, but distinct Parser
// values are fully independent: there is no package-level
// mutable state in this package or in package exprparser.
type Parser struct {
	lines           []effectiveLine
	pos             int
	startLineNumber int
	labels          labelAllocator
	blockStack      []blockContext
	currentFunction *functionContext
	script          *ast.Script
}

// ParseScript parses an ordered sequence of text blobs into a Script.
// startLineNumber is added to each zero-based line index when reporting
// errors (default 1 via ParseScriptString).
func ParseScript(blobs []string, startLineNumber int) (*ast.Script, error) {
	p := &Parser{
		lines:           joinContinuations(splitBlobs(blobs)),
		startLineNumber: startLineNumber,
		script:          &ast.Script{Statements: []ast.Statement{}},
	}
	if err := p.run(); err != nil {
		return nil, err
	}
	return p.script, nil
}

// ParseScriptString parses a single text blob, defaulting startLineNumber
// to 1.
func ParseScriptString(text string) (*ast.Script, error) {
	return ParseScript([]string{text}, 1)
}

// run drives the dispatch loop until the line list is exhausted, then
// checks that every opened block was closed.
func (p *Parser) run() error {
	for p.pos < len(p.lines) {
		line := p.lines[p.pos]
		if err := p.dispatch(line); err != nil {
			return err
		}
		p.pos++
	}

	if len(p.blockStack) > 0 {
		top := p.blockStack[len(p.blockStack)-1]
		return p.errorAt(fmt.Sprintf("Missing end%s statement", blockKindName(top)), top.openLine(), 1).
			WithLineNumber(p.startLineNumber + top.openLineNumber())
	}
	if p.currentFunction != nil {
		return p.errorAt("Missing endfunction statement", p.currentFunction.line, 1).
			WithLineNumber(p.startLineNumber + p.currentFunction.lineNumber)
	}
	return nil
}

func blockKindName(c blockContext) string {
	switch c.(type) {
	case *ifContext:
		return "if"
	case *whileContext:
		return "while"
	case *foreachContext:
		return "foreach"
	default:
		return "block"
	}
}

// errorAt is a convenience constructor for a *perror.ParserError anchored at
// the given line text and 1-based column, with no line number set yet (the
// caller attaches one via WithLineNumber once it is known).
func (p *Parser) errorAt(description string, line string, column int) *perror.ParserError {
	return perror.New(description, line, column)
}

// appendStatement appends stmt to whichever list is currently open: the
// pending function definition's body, or the script's top level. While a
// function definition is open, every subsequent statement appends to that
// function's body instead of the script's top level.
func (p *Parser) appendStatement(stmt ast.Statement) {
	if p.currentFunction != nil {
		p.currentFunction.stmt.Statements = append(p.currentFunction.stmt.Statements, stmt)
		return
	}
	p.script.Statements = append(p.script.Statements, stmt)
}

// topBlock returns the innermost open if/while/foreach context, or nil.
func (p *Parser) topBlock() blockContext {
	if len(p.blockStack) == 0 {
		return nil
	}
	return p.blockStack[len(p.blockStack)-1]
}

func (p *Parser) pushBlock(c blockContext) {
	p.blockStack = append(p.blockStack, c)
}

// popBlock removes and returns the innermost block context.
func (p *Parser) popBlock() blockContext {
	n := len(p.blockStack)
	c := p.blockStack[n-1]
	p.blockStack = p.blockStack[:n-1]
	return c
}

// findLoopContext scans the block stack top to bottom for the first entry
// that is not an ifContext: break and continue both ignore if-then contexts
// so they always act on the innermost enclosing loop.
func (p *Parser) findLoopContext() blockContext {
	for i := len(p.blockStack) - 1; i >= 0; i-- {
		if _, isIf := p.blockStack[i].(*ifContext); !isIf {
			return p.blockStack[i]
		}
	}
	return nil
}

// lineNumber converts an effectiveLine's zero-based index into the
// 1-(or startLineNumber-)based number reported in errors.
func (p *Parser) lineNumber(l effectiveLine) int {
	return p.startLineNumber + l.index
}
