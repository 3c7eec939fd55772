/*
File    : barescript/parser/labels.go

Synthetic label generation. Every label used to lower a block carries the
same monotonically increasing counter value for all the labels allocated at
that block's opening.
*/
package parser

import (
	"fmt"

	"github.com/barescript-go/barescript/ast"
)

// labelAllocator hands out reserved-namespace label names, keyed by a
// single monotonic counter shared across every block kind — an if-then and
// a later while-do do not reset or share counters, they simply both draw
// from the same sequence.
type labelAllocator struct {
	next int
}

func (a *labelAllocator) take() int {
	n := a.next
	a.next++
	return n
}

func (a *labelAllocator) ifLabels() (ifLabel, doneLabel ast.Identifier) {
	n := a.take()
	return ast.Identifier(fmt.Sprintf("__scriptIf%d", n)), ast.Identifier(fmt.Sprintf("__scriptDone%d", n))
}

// elseIfLabel allocates just a new IF_m for an else-if-then clause; the
// done label is inherited from the enclosing ifContext.
func (a *labelAllocator) elseIfLabel() ast.Identifier {
	n := a.take()
	return ast.Identifier(fmt.Sprintf("__scriptIf%d", n))
}

func (a *labelAllocator) whileLabels() (loopLabel, doneLabel ast.Identifier) {
	n := a.take()
	return ast.Identifier(fmt.Sprintf("__scriptLoop%d", n)), ast.Identifier(fmt.Sprintf("__scriptDone%d", n))
}

// foreachLabels allocates every synthetic name a foreach-do needs off of a
// single counter value: loop/continue/done labels plus the synthetic
// values/length/index variable names. indexName is only used by the caller
// when the source did not name an explicit index variable.
func (a *labelAllocator) foreachLabels() (loopLabel, continueLabel, doneLabel, valuesName, lengthName, indexName ast.Identifier) {
	n := a.take()
	return ast.Identifier(fmt.Sprintf("__scriptLoop%d", n)),
		ast.Identifier(fmt.Sprintf("__scriptContinue%d", n)),
		ast.Identifier(fmt.Sprintf("__scriptDone%d", n)),
		ast.Identifier(fmt.Sprintf("__scriptValues%d", n)),
		ast.Identifier(fmt.Sprintf("__scriptLength%d", n)),
		ast.Identifier(fmt.Sprintf("__scriptIndex%d", n))
}
