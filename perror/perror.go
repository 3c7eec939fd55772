/*
File    : barescript/perror/perror.go

Package perror defines the single error kind raised by this module's parsers.

The statement parser (package parser) and the expression parser (package
exprparser) never panic and never return a partial result: on the first
offending line or column they construct a *ParserError and return it through
a normal Go error return. ParserError carries enough position information —
the offending line's text, a 1-based column, and an optional source line
number — to render a three- or four-line caret display on demand, the way
compiler diagnostics traditionally do (generalizing go-mix's
`[%d:%d] PARSER ERROR: ...` convention in parser.expectNext into a reusable,
renderable value instead of a one-off formatted string).
*/
package perror

import (
	"fmt"
	"strings"
)

// maxRenderWidth bounds how much of a long offending line is shown around
// the caret. Lines longer than this are truncated to a window centered on
// the reported column.
const maxRenderWidth = 120

// ParserError is the single error kind raised by this module's parsers.
//
// Err is the human-readable description (e.g. "Syntax error",
// "No matching if-then statement"). Line is the offending line exactly as it
// appeared in the source (untrimmed). ColumnNumber is 1-based and defaults to
// 1 when unset. LineNumber is optional: the expression parser, operating on
// a bare expression string with no notion of a containing script, leaves it
// nil; the statement parser always sets it. Prefix, when non-empty, is
// rendered as a leading line above the diagnostic.
type ParserError struct {
	Err          string
	Line         string
	ColumnNumber int
	LineNumber   *int
	Prefix       string
}

// New builds a ParserError with ColumnNumber defaulted to 1.
func New(err string, line string, column int) *ParserError {
	if column <= 0 {
		column = 1
	}
	return &ParserError{Err: err, Line: line, ColumnNumber: column}
}

// WithLineNumber returns a copy of e with LineNumber set. The statement
// parser calls this once it knows which source line an error (possibly
// bubbled up from the expression parser) belongs to.
func (e *ParserError) WithLineNumber(n int) *ParserError {
	cp := *e
	cp.LineNumber = &n
	return &cp
}

// WithPrefix returns a copy of e with Prefix set.
func (e *ParserError) WithPrefix(prefix string) *ParserError {
	cp := *e
	cp.Prefix = prefix
	return &cp
}

// WithColumnOffset returns a copy of e with ColumnNumber shifted right by
// offset. The statement parser uses this to convert a column reported by the
// expression parser — relative to the start of an embedded expression
// substring — into a column relative to the full source line, so the caret
// in the rendered error still lands under the right character instead of
// under a position inside the isolated substring.
func (e *ParserError) WithColumnOffset(offset int) *ParserError {
	cp := *e
	cp.ColumnNumber += offset
	return &cp
}

// Error implements the error interface by rendering the diagnostic.
func (e *ParserError) Error() string {
	return e.Render()
}

// Render produces the three-line (or four-line, with Prefix) caret display:
//
//	[prefix line]
//	<error>[, line number <n>]:
//	<possibly-truncated offending line>
//	<caret positioned under the offending column>
func (e *ParserError) Render() string {
	var b strings.Builder
	if e.Prefix != "" {
		b.WriteString(e.Prefix)
		b.WriteByte('\n')
	}

	b.WriteString(e.Err)
	if e.LineNumber != nil {
		fmt.Fprintf(&b, ", line number %d", *e.LineNumber)
	}
	b.WriteString(":\n")

	line, column := e.renderedLineAndColumn()
	b.WriteString(line)
	b.WriteByte('\n')
	if column > 0 {
		b.WriteString(strings.Repeat(" ", column-1))
	}
	b.WriteByte('^')
	return b.String()
}

// renderedLineAndColumn truncates e.Line to a maxRenderWidth-wide window
// centered on e.ColumnNumber when the line is longer than that, adjusting
// the returned column so the caret still lines up. The stored Line and
// ColumnNumber are never mutated — only the rendering is affected.
func (e *ParserError) renderedLineAndColumn() (string, int) {
	line := e.Line
	column := e.ColumnNumber
	if column <= 0 {
		column = 1
	}

	if len(line) <= maxRenderWidth {
		return line, column
	}

	// Center a maxRenderWidth window on column (0-based index column-1).
	idx := column - 1
	half := maxRenderWidth / 2
	start := idx - half
	end := start + maxRenderWidth

	truncatedLeft := start > 0
	if start < 0 {
		start = 0
		end = maxRenderWidth
	}
	if end > len(line) {
		end = len(line)
		start = end - maxRenderWidth
		if start < 0 {
			start = 0
		}
	}
	truncatedRight := end < len(line)

	window := line[start:end]
	newColumn := column - start

	if truncatedLeft {
		window = "... " + window
		newColumn += len("... ")
	}
	if truncatedRight {
		window = window + " ..."
	}
	return window, newColumn
}
