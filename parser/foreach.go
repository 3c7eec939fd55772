/*
File    : barescript/parser/foreach.go

foreach-do begin and end. foreach-do is the most elaborate lowering: it
introduces three synthetic variables (values, length, and — unless the
source named one — index) on top of the loop/continue/done labels every
other block gets.
*/
package parser

import "github.com/barescript-go/barescript/ast"

func (p *Parser) dispatchForeachBegin(line effectiveLine, m []int) error {
	valueName := ast.Identifier(line.text[m[2]:m[3]])
	hasExplicitIndex := m[4] != -1
	var explicitIndex ast.Identifier
	if hasExplicitIndex {
		explicitIndex = ast.Identifier(line.text[m[4]:m[5]])
	}
	valuesExprText := line.text[m[6]:m[7]]
	valuesExpr, err := p.parseEmbeddedExpr(line, m[6], valuesExprText)
	if err != nil {
		return err
	}

	loopLabel, continueLabel, doneLabel, valuesVar, lengthVar, syntheticIndex := p.labels.foreachLabels()
	indexVar := syntheticIndex
	if hasExplicitIndex {
		indexVar = explicitIndex
	}

	p.appendStatement(&ast.ExprStatement{Name: valuesVar, Expr: valuesExpr})
	p.appendStatement(&ast.ExprStatement{
		Name: lengthVar,
		Expr: &ast.CallExpr{Name: "arrayLength", Args: []ast.Expression{&ast.VariableExpr{Name: valuesVar}}},
	})
	p.appendStatement(&ast.JumpStatement{Label: doneLabel, Expr: negate(&ast.VariableExpr{Name: lengthVar})})
	p.appendStatement(&ast.ExprStatement{Name: indexVar, Expr: &ast.NumberExpr{Value: 0}})
	p.appendStatement(&ast.LabelStatement{Name: loopLabel})
	p.appendStatement(&ast.ExprStatement{
		Name: valueName,
		Expr: &ast.CallExpr{Name: "arrayGet", Args: []ast.Expression{&ast.VariableExpr{Name: valuesVar}, &ast.VariableExpr{Name: indexVar}}},
	})

	p.pushBlock(&foreachContext{
		loopLabel:     loopLabel,
		continueLabel: continueLabel,
		doneLabel:     doneLabel,
		valuesName:    valuesVar,
		lengthName:    lengthVar,
		indexName:     indexVar,
		valueName:     valueName,
		line:          line.text,
		lineNumber:    line.index,
	})
	return nil
}

func (p *Parser) dispatchEndforeach(line effectiveLine) error {
	ctx, ok := p.topBlock().(*foreachContext)
	if !ok {
		return p.errorAt("No matching foreach statement", line.text, 1).WithLineNumber(p.lineNumber(line))
	}
	p.popBlock()

	if ctx.hasContinue {
		p.appendStatement(&ast.LabelStatement{Name: ctx.continueLabel})
	}
	p.appendStatement(&ast.ExprStatement{
		Name: ctx.indexName,
		Expr: &ast.BinaryExpr{Op: ast.OpAdd, Left: &ast.VariableExpr{Name: ctx.indexName}, Right: &ast.NumberExpr{Value: 1}},
	})
	p.appendStatement(&ast.JumpStatement{
		Label: ctx.loopLabel,
		Expr:  &ast.BinaryExpr{Op: ast.OpLt, Left: &ast.VariableExpr{Name: ctx.indexName}, Right: &ast.VariableExpr{Name: ctx.lengthName}},
	})
	p.appendStatement(&ast.LabelStatement{Name: ctx.doneLabel})
	return nil
}
