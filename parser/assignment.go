/*
File    : barescript/parser/assignment.go

Assignment and bare-expression fallthrough — the two line patterns that
bottom out in a plain `expr` statement, differing only in whether a name is
captured.
*/
package parser

import "github.com/barescript-go/barescript/ast"

// dispatchAssignment handles `<name> = <expr>`. m is assignmentPattern's
// submatch index set: group 1 is the name, group 2 is the expression text.
func (p *Parser) dispatchAssignment(line effectiveLine, m []int) error {
	name := line.text[m[2]:m[3]]
	exprText := line.text[m[4]:m[5]]
	expr, err := p.parseEmbeddedExpr(line, m[4], exprText)
	if err != nil {
		return err
	}
	p.appendStatement(&ast.ExprStatement{Name: ast.Identifier(name), Expr: expr})
	return nil
}

// dispatchFallthrough handles the case where the line matched none of the
// preceding patterns: it is parsed whole as a bare expression statement.
func (p *Parser) dispatchFallthrough(line effectiveLine) error {
	expr, err := p.parseEmbeddedExpr(line, 0, line.text)
	if err != nil {
		return err
	}
	p.appendStatement(&ast.ExprStatement{Expr: expr})
	return nil
}
