/*
File    : barescript/exprparser/unary.go

The `unary` production and its alternatives: group, number, prefix unary,
call, single/double-quoted string, identifier, bracketed identifier.

Number is tried BEFORE prefix unary, not after: "-3" must parse as a signed
NUMBER literal, while "-x" must parse as unary-minus applied to a variable.
Trying prefix-unary first would swallow the leading '-' of "-3" as a unary
operator before the number alternative ever saw it, losing the signed
literal reading entirely.
*/
package exprparser

import (
	"strconv"
	"strings"

	"github.com/barescript-go/barescript/ast"
)

func (p *exprParser) remaining() string {
	return p.text[p.pos:]
}

func (p *exprParser) parseUnary() (ast.Expression, error) {
	if idx := lparenPattern.FindStringIndex(p.remaining()); idx != nil {
		p.pos += idx[1]
		inner, err := p.parseBinary()
		if err != nil {
			return nil, err
		}
		rp := rparenPattern.FindStringIndex(p.remaining())
		if rp == nil {
			return nil, p.errorAt("Unmatched parenthesis", p.pos)
		}
		p.pos += rp[1]
		return &ast.GroupExpr{Expr: inner}, nil
	}

	if m := numberPattern.FindStringSubmatchIndex(p.remaining()); m != nil {
		text := p.remaining()[m[2]:m[3]]
		val, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, p.errorAt("Syntax error", p.pos)
		}
		p.pos += m[1]
		return &ast.NumberExpr{Value: val}, nil
	}

	if m := prefixOpPattern.FindStringSubmatchIndex(p.remaining()); m != nil {
		opText := p.remaining()[m[2]:m[3]]
		p.pos += m[1]
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Op: ast.UnaryOp(opText), Expr: operand}, nil
	}

	if m := identPattern.FindStringSubmatchIndex(p.remaining()); m != nil {
		name := p.remaining()[m[2]:m[3]]
		afterIdent := p.remaining()[m[1]:]
		if lp := lparenPattern.FindStringIndex(afterIdent); lp != nil {
			p.pos += m[1] + lp[1]
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			return &ast.CallExpr{Name: ast.Identifier(name), Args: args}, nil
		}
	}

	if m := sglstrPattern.FindStringSubmatchIndex(p.remaining()); m != nil {
		raw := p.remaining()[m[2]:m[3]]
		p.pos += m[1]
		return &ast.StringExpr{Value: unescape(raw, '\'')}, nil
	}

	if m := dblstrPattern.FindStringSubmatchIndex(p.remaining()); m != nil {
		raw := p.remaining()[m[2]:m[3]]
		p.pos += m[1]
		return &ast.StringExpr{Value: unescape(raw, '"')}, nil
	}

	if m := identPattern.FindStringSubmatchIndex(p.remaining()); m != nil {
		name := p.remaining()[m[2]:m[3]]
		p.pos += m[1]
		return &ast.VariableExpr{Name: ast.Identifier(name)}, nil
	}

	if m := bracketPattern.FindStringSubmatchIndex(p.remaining()); m != nil {
		raw := p.remaining()[m[2]:m[3]]
		p.pos += m[1]
		name := strings.TrimSpace(unescape(raw, ']'))
		return &ast.VariableExpr{Name: ast.Identifier(name)}, nil
	}

	return nil, p.errorAt("Syntax error", p.skipSpace())
}

// parseArgs parses a call's comma-separated argument list up to and
// including the closing ')' — the opening '(' has already been consumed by
// the caller.
func (p *exprParser) parseArgs() ([]ast.Expression, error) {
	if idx := rparenPattern.FindStringIndex(p.remaining()); idx != nil {
		p.pos += idx[1]
		return []ast.Expression{}, nil
	}

	var args []ast.Expression
	for {
		arg, err := p.parseBinary()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if idx := commaPattern.FindStringIndex(p.remaining()); idx != nil {
			p.pos += idx[1]
			continue
		}
		break
	}

	idx := rparenPattern.FindStringIndex(p.remaining())
	if idx == nil {
		return nil, p.errorAt("Unmatched parenthesis", p.pos)
	}
	p.pos += idx[1]
	return args, nil
}
