/*
File    : barescript/parser/conditionals.go

if-then begin, else-if-then, else-then, endif. The running if-then context's
jump is mutated in place (via the pointer-aliasing trick documented on
ifContext in blocks.go) as else-if-then and endif retarget it.
*/
package parser

import "github.com/barescript-go/barescript/ast"

func (p *Parser) dispatchIfBegin(line effectiveLine, m []int) error {
	exprText := line.text[m[2]:m[3]]
	cond, err := p.parseEmbeddedExpr(line, m[2], exprText)
	if err != nil {
		return err
	}

	ifLabel, doneLabel := p.labels.ifLabels()
	jump := &ast.JumpStatement{Label: ifLabel, Expr: negate(cond)}
	p.appendStatement(jump)
	p.pushBlock(&ifContext{jump: jump, doneLabel: doneLabel, line: line.text, lineNumber: line.index})
	return nil
}

func (p *Parser) dispatchElseIf(line effectiveLine, m []int) error {
	ctx, ok := p.topBlock().(*ifContext)
	if !ok {
		return p.errorAt("No matching if-then statement", line.text, 1).WithLineNumber(p.lineNumber(line))
	}
	if ctx.hasElse {
		return p.errorAt("Else-if-then statement following else-then statement", line.text, 1).WithLineNumber(p.lineNumber(line))
	}

	exprText := line.text[m[2]:m[3]]
	cond, err := p.parseEmbeddedExpr(line, m[2], exprText)
	if err != nil {
		return err
	}

	prevLabel := ctx.jump.Label
	newLabel := p.labels.elseIfLabel()
	newJump := &ast.JumpStatement{Label: newLabel, Expr: negate(cond)}

	p.appendStatement(&ast.JumpStatement{Label: ctx.doneLabel})
	p.appendStatement(&ast.LabelStatement{Name: prevLabel})
	p.appendStatement(newJump)

	ctx.jump = newJump
	return nil
}

func (p *Parser) dispatchElseThen(line effectiveLine) error {
	ctx, ok := p.topBlock().(*ifContext)
	if !ok {
		return p.errorAt("No matching if-then statement", line.text, 1).WithLineNumber(p.lineNumber(line))
	}
	if ctx.hasElse {
		return p.errorAt("Multiple else-then statements", line.text, 1).WithLineNumber(p.lineNumber(line))
	}

	ctx.hasElse = true
	prevLabel := ctx.jump.Label
	p.appendStatement(&ast.JumpStatement{Label: ctx.doneLabel})
	p.appendStatement(&ast.LabelStatement{Name: prevLabel})
	return nil
}

func (p *Parser) dispatchEndif(line effectiveLine) error {
	ctx, ok := p.topBlock().(*ifContext)
	if !ok {
		return p.errorAt("No matching if-then statement", line.text, 1).WithLineNumber(p.lineNumber(line))
	}
	p.popBlock()

	// No else-then was seen: the last if/else-if jump's "false" target
	// becomes done directly instead of falling into a branch body.
	if !ctx.hasElse {
		ctx.jump.Label = ctx.doneLabel
	}
	p.appendStatement(&ast.LabelStatement{Name: ctx.doneLabel})
	return nil
}

func negate(expr ast.Expression) ast.Expression {
	return &ast.UnaryExpr{Op: ast.OpNot, Expr: expr}
}
