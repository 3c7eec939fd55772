/*
File    : barescript/parser/controls.go

Break and continue. Both search the block stack the same way — only
continue additionally flags the found loop context as having an internal
continue, which decides whether endforeach needs to emit the continue
label (a while loop's continue label is already the loop label, emitted
unconditionally).
*/
package parser

import "github.com/barescript-go/barescript/ast"

func (p *Parser) dispatchBreak(line effectiveLine) error {
	ctx := p.findLoopContext()
	if ctx == nil {
		return p.errorAt("Break statement outside of loop", line.text, 1).WithLineNumber(p.lineNumber(line))
	}
	label, _ := loopDoneLabel(ctx)
	p.appendStatement(&ast.JumpStatement{Label: label})
	return nil
}

func (p *Parser) dispatchContinue(line effectiveLine) error {
	ctx := p.findLoopContext()
	if ctx == nil {
		return p.errorAt("Continue statement outside of loop", line.text, 1).WithLineNumber(p.lineNumber(line))
	}
	markContinued(ctx)
	label, _ := loopContinueLabel(ctx)
	p.appendStatement(&ast.JumpStatement{Label: label})
	return nil
}
