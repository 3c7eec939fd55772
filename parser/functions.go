/*
File    : barescript/parser/functions.go

Function begin and end. Function definitions never nest, so
functionContext is a single optional slot on Parser rather than part of
the block stack.
*/
package parser

import (
	"fmt"
	"strings"

	"github.com/barescript-go/barescript/ast"
)

func (p *Parser) dispatchFunctionBegin(line effectiveLine, m []int) error {
	if p.currentFunction != nil {
		return p.errorAt("Nested function definition", line.text, 1).WithLineNumber(p.lineNumber(line))
	}

	async := m[2] != -1
	name := line.text[m[4]:m[5]]
	var argsText string
	if m[6] != -1 {
		argsText = line.text[m[6]:m[7]]
	}

	args, err := parseArgNames(argsText)
	if err != nil {
		return p.errorAt(err.Error(), line.text, 1).WithLineNumber(p.lineNumber(line))
	}

	stmt := &ast.FunctionStatement{
		Name:       ast.Identifier(name),
		Args:       args,
		Statements: []ast.Statement{},
		Async:      async,
	}
	p.appendStatement(stmt)
	p.currentFunction = &functionContext{stmt: stmt, line: line.text, lineNumber: line.index}
	return nil
}

func (p *Parser) dispatchFunctionEnd(line effectiveLine) error {
	if p.currentFunction == nil {
		return p.errorAt("No matching function definition", line.text, 1).WithLineNumber(p.lineNumber(line))
	}
	p.currentFunction = nil
	return nil
}

// parseArgNames splits a function's parenthesized argument text on commas,
// trimming each name; an empty (or all-whitespace) argsText yields no args.
// functionBeginPattern captures the whole argument blob as one unchecked
// group, so each split-out name is validated here against the identifier
// grammar.
func parseArgNames(argsText string) ([]ast.Identifier, error) {
	trimmed := strings.TrimSpace(argsText)
	if trimmed == "" {
		return []ast.Identifier{}, nil
	}
	parts := strings.Split(trimmed, ",")
	args := make([]ast.Identifier, 0, len(parts))
	for _, part := range parts {
		name := strings.TrimSpace(part)
		if !ast.IsValidIdentifier(name) {
			return nil, fmt.Errorf("Invalid argument name %q", name)
		}
		args = append(args, ast.Identifier(name))
	}
	return args, nil
}
