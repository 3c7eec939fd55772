/*
File    : barescript/parser/loops.go

while-do begin and end.
*/
package parser

import "github.com/barescript-go/barescript/ast"

func (p *Parser) dispatchWhileBegin(line effectiveLine, m []int) error {
	exprText := line.text[m[2]:m[3]]
	cond, err := p.parseEmbeddedExpr(line, m[2], exprText)
	if err != nil {
		return err
	}

	loopLabel, doneLabel := p.labels.whileLabels()
	p.appendStatement(&ast.JumpStatement{Label: doneLabel, Expr: negate(cond)})
	p.appendStatement(&ast.LabelStatement{Name: loopLabel})
	p.pushBlock(&whileContext{
		loopLabel:  loopLabel,
		doneLabel:  doneLabel,
		cond:       cond,
		line:       line.text,
		lineNumber: line.index,
	})
	return nil
}

func (p *Parser) dispatchEndwhile(line effectiveLine) error {
	ctx, ok := p.topBlock().(*whileContext)
	if !ok {
		return p.errorAt("No matching while-do statement", line.text, 1).WithLineNumber(p.lineNumber(line))
	}
	p.popBlock()

	p.appendStatement(&ast.JumpStatement{Label: ctx.loopLabel, Expr: ctx.cond})
	p.appendStatement(&ast.LabelStatement{Name: ctx.doneLabel})
	return nil
}
