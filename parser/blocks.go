/*
File    : barescript/parser/blocks.go

The statement parser keeps a stack of open block contexts while lowering
if/while/foreach into flat jumps and labels, modeled as a discriminated
union rather than one struct with unused nullable fields. Function
definitions are tracked separately (functions never nest, so a single
optional slot suffices) and are not part of this stack: only if/while/foreach
participate in the break/continue search.
*/
package parser

import "github.com/barescript-go/barescript/ast"

// blockContext is implemented by exactly ifContext, whileContext, and
// foreachContext.
type blockContext interface {
	openLine() string
	openLineNumber() int
}

// ifContext tracks an open if-then/else-if-then/else-then chain.
//
// jump is a pointer into the *already emitted* JumpStatement guarding entry
// to the current branch. Because Go interfaces holding a pointer alias the
// same underlying struct, mutating jump.Label here is visible through the
// Script's Statements slice too — this is how else-if-then replaces the
// context's jump, and how a no-else endif retargets it to the done label.
type ifContext struct {
	jump       *ast.JumpStatement
	doneLabel  ast.Identifier
	hasElse    bool
	line       string
	lineNumber int
}

func (c *ifContext) openLine() string { return c.line }
func (c *ifContext) openLineNumber() int { return c.lineNumber }

// whileContext tracks an open while-do loop. Its continue label always
// equals its loop label.
type whileContext struct {
	loopLabel  ast.Identifier
	doneLabel  ast.Identifier
	cond       ast.Expression
	line       string
	lineNumber int
}

func (c *whileContext) openLine() string { return c.line }
func (c *whileContext) openLineNumber() int { return c.lineNumber }

// foreachContext tracks an open foreach-do loop. hasContinue records
// whether any `continue` inside this loop targeted it, which decides
// whether endforeach needs to emit the continue label.
type foreachContext struct {
	loopLabel     ast.Identifier
	continueLabel ast.Identifier
	doneLabel     ast.Identifier
	valuesName    ast.Identifier
	lengthName    ast.Identifier
	indexName     ast.Identifier
	valueName     ast.Identifier
	hasContinue   bool
	line          string
	lineNumber    int
}

func (c *foreachContext) openLine() string { return c.line }
func (c *foreachContext) openLineNumber() int { return c.lineNumber }

// functionContext tracks the single open function definition, if any.
// Function definitions never nest, so there is no stack — just an optional
// slot.
type functionContext struct {
	stmt       *ast.FunctionStatement
	line       string
	lineNumber int
}

// loopContinueLabel returns the continue label of c when c is a
// whileContext or foreachContext, and ok=false otherwise. break/continue search the block stack from top to
// bottom for the first entry that is not an ifContext: if contexts do not
// count.
func loopContinueLabel(c blockContext) (label ast.Identifier, ok bool) {
	switch v := c.(type) {
	case *whileContext:
		return v.loopLabel, true
	case *foreachContext:
		return v.continueLabel, true
	default:
		return "", false
	}
}

func loopDoneLabel(c blockContext) (label ast.Identifier, ok bool) {
	switch v := c.(type) {
	case *whileContext:
		return v.doneLabel, true
	case *foreachContext:
		return v.doneLabel, true
	default:
		return "", false
	}
}

// markContinued flags a foreachContext as having an internal `continue`.
// while loops need no equivalent flag: their continue label is the loop
// label, already emitted unconditionally at while-begin, so there is
// nothing extra to emit at endwhile.
func markContinued(c blockContext) {
	if fe, ok := c.(*foreachContext); ok {
		fe.hasContinue = true
	}
}
