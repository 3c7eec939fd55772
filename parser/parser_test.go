package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/barescript-go/barescript/ast"
)

func TestParseScriptString_AssignmentPrecedence(t *testing.T) {
	script, err := ParseScriptString("x = 1 + 2 * 3 ** 4")
	assert.NoError(t, err)
	assert.Len(t, script.Statements, 1)

	stmt, ok := script.Statements[0].(*ast.ExprStatement)
	assert.True(t, ok)
	assert.Equal(t, ast.Identifier("x"), stmt.Name)

	plus, ok := stmt.Expr.(*ast.BinaryExpr)
	assert.True(t, ok)
	assert.Equal(t, ast.OpAdd, plus.Op)
}

func TestParseScriptString_CommentsAndBlankLinesIgnored(t *testing.T) {
	script, err := ParseScriptString("# a comment\n\nx = 1\n   \n# trailing")
	assert.NoError(t, err)
	assert.Len(t, script.Statements, 1)
}

func TestParseScriptString_ComparisonNotMisreadAsAssignment(t *testing.T) {
	script, err := ParseScriptString("x == y")
	assert.NoError(t, err)
	assert.Len(t, script.Statements, 1)

	stmt, ok := script.Statements[0].(*ast.ExprStatement)
	assert.True(t, ok)
	assert.Equal(t, ast.Identifier(""), stmt.Name)
	bin, ok := stmt.Expr.(*ast.BinaryExpr)
	assert.True(t, ok)
	assert.Equal(t, ast.OpEq, bin.Op)
}

func TestParseScriptString_IfElseIfElseLowering(t *testing.T) {
	src := "if a then\n" +
		"b = 1\n" +
		"else if c then\n" +
		"b = 2\n" +
		"else then\n" +
		"b = 3\n" +
		"endif\n"
	script, err := ParseScriptString(src)
	assert.NoError(t, err)

	var kinds []string
	for _, s := range script.Statements {
		kinds = append(kinds, s.Kind())
	}
	assert.Equal(t, []string{
		"jump", "expr", "jump", "label", "jump", "expr", "jump", "label", "expr", "label",
	}, kinds)

	firstJump := script.Statements[0].(*ast.JumpStatement)
	ifLabel := firstJump.Label
	un, ok := firstJump.Expr.(*ast.UnaryExpr)
	assert.True(t, ok)
	assert.Equal(t, ast.OpNot, un.Op)

	doneJump := script.Statements[2].(*ast.JumpStatement)
	assert.Nil(t, doneJump.Expr)
	doneLabel := doneJump.Label

	firstLabel := script.Statements[3].(*ast.LabelStatement)
	assert.Equal(t, ifLabel, firstLabel.Name)

	elseIfJump := script.Statements[4].(*ast.JumpStatement)
	secondLabel := script.Statements[7].(*ast.LabelStatement)
	assert.Equal(t, elseIfJump.Label, secondLabel.Name)

	finalLabel := script.Statements[9].(*ast.LabelStatement)
	assert.Equal(t, doneLabel, finalLabel.Name)
}

func TestParseScriptString_ForeachExplicitIndexAndContinue(t *testing.T) {
	src := "foreach v, i in items do\n" +
		"continue\n" +
		"endforeach\n"
	script, err := ParseScriptString(src)
	assert.NoError(t, err)

	var kinds []string
	for _, s := range script.Statements {
		kinds = append(kinds, s.Kind())
	}
	assert.Equal(t, []string{
		"expr", "expr", "jump", "expr", "label", "expr", "jump", "label", "expr", "jump", "label",
	}, kinds)

	indexAssign := script.Statements[3].(*ast.ExprStatement)
	assert.Equal(t, ast.Identifier("i"), indexAssign.Name)

	valueAssign := script.Statements[5].(*ast.ExprStatement)
	assert.Equal(t, ast.Identifier("v"), valueAssign.Name)
	call, ok := valueAssign.Expr.(*ast.CallExpr)
	assert.True(t, ok)
	assert.Equal(t, ast.Identifier("arrayGet"), call.Name)

	continueJump := script.Statements[6].(*ast.JumpStatement)
	continueLabel := script.Statements[7].(*ast.LabelStatement)
	assert.Equal(t, continueJump.Label, continueLabel.Name)
}

func TestParseScriptString_LineContinuation(t *testing.T) {
	script, err := ParseScriptString("x = 1 + \\\n   2")
	assert.NoError(t, err)
	assert.Len(t, script.Statements, 1)

	stmt := script.Statements[0].(*ast.ExprStatement)
	bin, ok := stmt.Expr.(*ast.BinaryExpr)
	assert.True(t, ok)
	assert.Equal(t, 1.0, bin.Left.(*ast.NumberExpr).Value)
	assert.Equal(t, 2.0, bin.Right.(*ast.NumberExpr).Value)
}

func TestParseScriptString_DanglingWhileIsParserError(t *testing.T) {
	_, err := ParseScriptString("while true do")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Missing endwhile statement")
}

func TestParseScriptString_ExpressionErrorColumnWithinStatement(t *testing.T) {
	_, err := ParseScriptString("x = 1 + * 2")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Syntax error")
	// The caret should land under the '*' at 0-based index 8 (column 9).
	assert.Contains(t, err.Error(), "\nx = 1 + * 2\n")
	assert.Contains(t, err.Error(), "\n        ^")
}

func TestParseScriptString_BreakOutsideLoopIsError(t *testing.T) {
	_, err := ParseScriptString("break")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Break statement outside of loop")
}

func TestParseScriptString_NestedFunctionIsError(t *testing.T) {
	src := "function outer()\n" +
		"function inner()\n" +
		"endfunction\n" +
		"endfunction\n"
	_, err := ParseScriptString(src)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Nested function definition")
}

func TestParseScriptString_FunctionInvalidArgNameIsError(t *testing.T) {
	src := "function f(1bad)\n" +
		"endfunction\n"
	_, err := ParseScriptString(src)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid argument name")
}

func TestParseScriptString_FunctionBodyAppendsToFunction(t *testing.T) {
	src := "function add(a, b)\n" +
		"return a + b\n" +
		"endfunction\n" +
		"y = add(1, 2)\n"
	script, err := ParseScriptString(src)
	assert.NoError(t, err)
	assert.Len(t, script.Statements, 2)

	fn, ok := script.Statements[0].(*ast.FunctionStatement)
	assert.True(t, ok)
	assert.Equal(t, []ast.Identifier{"a", "b"}, fn.Args)
	assert.Len(t, fn.Statements, 1)
	_, ok = fn.Statements[0].(*ast.ReturnStatement)
	assert.True(t, ok)
}

func TestParseScriptString_IncludeUnescapes(t *testing.T) {
	script, err := ParseScriptString(`include 'a\'b\\c'`)
	assert.NoError(t, err)
	inc, ok := script.Statements[0].(*ast.IncludeStatement)
	assert.True(t, ok)
	assert.Equal(t, `a'b\c`, inc.URL)
}

func TestParseScriptString_IdempotentOnTrailingBlankLines(t *testing.T) {
	a, err := ParseScriptString("x = 1")
	assert.NoError(t, err)
	b, err := ParseScriptString("x = 1\n\n# trailing comment\n")
	assert.NoError(t, err)
	assert.Equal(t, a, b)
}
