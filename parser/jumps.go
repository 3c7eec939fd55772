/*
File    : barescript/parser/jumps.go

Label, jump/jumpif, return, and single/double-quoted include.
*/
package parser

import "github.com/barescript-go/barescript/ast"

func (p *Parser) dispatchLabel(line effectiveLine, m []int) error {
	name := ast.Identifier(line.text[m[2]:m[3]])
	p.appendStatement(&ast.LabelStatement{Name: name})
	return nil
}

func (p *Parser) dispatchJump(line effectiveLine, m []int) error {
	name := ast.Identifier(line.text[m[2]:m[3]])
	p.appendStatement(&ast.JumpStatement{Label: name})
	return nil
}

func (p *Parser) dispatchJumpIf(line effectiveLine, m []int) error {
	exprText := line.text[m[2]:m[3]]
	cond, err := p.parseEmbeddedExpr(line, m[2], exprText)
	if err != nil {
		return err
	}
	name := ast.Identifier(line.text[m[4]:m[5]])
	p.appendStatement(&ast.JumpStatement{Label: name, Expr: cond})
	return nil
}

func (p *Parser) dispatchReturn(line effectiveLine, m []int) error {
	if m[2] == -1 {
		p.appendStatement(&ast.ReturnStatement{})
		return nil
	}
	exprText := line.text[m[2]:m[3]]
	expr, err := p.parseEmbeddedExpr(line, m[2], exprText)
	if err != nil {
		return err
	}
	p.appendStatement(&ast.ReturnStatement{Expr: expr})
	return nil
}

func (p *Parser) dispatchInclude(line effectiveLine, m []int, quote byte) error {
	raw := line.text[m[2]:m[3]]
	p.appendStatement(&ast.IncludeStatement{URL: unescapeInclude(raw, quote)})
	return nil
}

// unescapeInclude replaces \\ with \ and \<quote> with <quote> — the only
// two escapes an include URL recognizes, mirroring package exprparser's
// string-literal unescape rule.
func unescapeInclude(s string, quote byte) string {
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
