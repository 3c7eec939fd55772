package exprparser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"

	"github.com/barescript-go/barescript/ast"
)

func TestParse_NumberLiteral(t *testing.T) {
	expr, err := Parse("12")
	assert.NoError(t, err)
	num, ok := expr.(*ast.NumberExpr)
	assert.True(t, ok)
	assert.Equal(t, 12.0, num.Value)
}

func TestParse_NegativeNumberVsUnaryMinus(t *testing.T) {
	// "-3" is a signed number literal.
	expr, err := Parse("-3")
	assert.NoError(t, err)
	num, ok := expr.(*ast.NumberExpr)
	assert.True(t, ok)
	assert.Equal(t, -3.0, num.Value)

	// "-x" is unary-minus applied to a variable.
	expr, err = Parse("-x")
	assert.NoError(t, err)
	un, ok := expr.(*ast.UnaryExpr)
	assert.True(t, ok)
	assert.Equal(t, ast.OpNegate, un.Op)
	v, ok := un.Expr.(*ast.VariableExpr)
	assert.True(t, ok)
	assert.Equal(t, ast.Identifier("x"), v.Name)

	// "-(x)" is unary-minus applied to a group.
	expr, err = Parse("-(x)")
	assert.NoError(t, err)
	un, ok = expr.(*ast.UnaryExpr)
	assert.True(t, ok)
	_, ok = un.Expr.(*ast.GroupExpr)
	assert.True(t, ok)
}

func TestParse_PrecedenceReassociation(t *testing.T) {
	// 1 + 2 * 3 ** 4 => +(1, *(2, **(3, 4)))
	expr, err := Parse("1 + 2 * 3 ** 4")
	assert.NoError(t, err)

	plus, ok := expr.(*ast.BinaryExpr)
	assert.True(t, ok)
	assert.Equal(t, ast.OpAdd, plus.Op)
	assert.Equal(t, 1.0, plus.Left.(*ast.NumberExpr).Value)

	star, ok := plus.Right.(*ast.BinaryExpr)
	assert.True(t, ok)
	assert.Equal(t, ast.OpMul, star.Op)
	assert.Equal(t, 2.0, star.Left.(*ast.NumberExpr).Value)

	pow, ok := star.Right.(*ast.BinaryExpr)
	assert.True(t, ok)
	assert.Equal(t, ast.OpPow, pow.Op)
	assert.Equal(t, 3.0, pow.Left.(*ast.NumberExpr).Value)
	assert.Equal(t, 4.0, pow.Right.(*ast.NumberExpr).Value)
}

func TestParse_SameRankStaysLeftAssociative(t *testing.T) {
	// 1 - 2 - 3 => -(-(1,2),3)
	expr, err := Parse("1 - 2 - 3")
	assert.NoError(t, err)

	outer, ok := expr.(*ast.BinaryExpr)
	assert.True(t, ok)
	assert.Equal(t, ast.OpSub, outer.Op)
	assert.Equal(t, 3.0, outer.Right.(*ast.NumberExpr).Value)

	inner, ok := outer.Left.(*ast.BinaryExpr)
	assert.True(t, ok)
	assert.Equal(t, ast.OpSub, inner.Op)
	assert.Equal(t, 1.0, inner.Left.(*ast.NumberExpr).Value)
	assert.Equal(t, 2.0, inner.Right.(*ast.NumberExpr).Value)
}

// TestParse_PrecedenceReassociationFullTree diffs the whole tree in one shot
// with cmp.Diff rather than unwrapping each level by hand, and dumps the got
// tree with kr/pretty on failure — the same pairing cue-lang/cue's table
// tests use for structural mismatches (see e.g.
// encoding/openapi/decode_test.go, internal/encoding/yaml/encode_test.go).
func TestParse_PrecedenceReassociationFullTree(t *testing.T) {
	got, err := Parse("1 + 2 * 3 ** 4")
	assert.NoError(t, err)

	want := &ast.BinaryExpr{
		Op:   ast.OpAdd,
		Left: &ast.NumberExpr{Value: 1},
		Right: &ast.BinaryExpr{
			Op:   ast.OpMul,
			Left: &ast.NumberExpr{Value: 2},
			Right: &ast.BinaryExpr{
				Op:    ast.OpPow,
				Left:  &ast.NumberExpr{Value: 3},
				Right: &ast.NumberExpr{Value: 4},
			},
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected tree (-want +got):\n%s\ngot dump:\n%s", diff, pretty.Sprint(got))
	}
}

func TestParse_WhitespaceIdempotent(t *testing.T) {
	a, err := Parse("1+2*3")
	assert.NoError(t, err)
	b, err := Parse("  1 + 2 * 3  ")
	assert.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestParse_Call(t *testing.T) {
	expr, err := Parse("arrayGet(values, index)")
	assert.NoError(t, err)
	call, ok := expr.(*ast.CallExpr)
	assert.True(t, ok)
	assert.Equal(t, ast.Identifier("arrayGet"), call.Name)
	assert.Len(t, call.Args, 2)
}

func TestParse_CallNoArgs(t *testing.T) {
	expr, err := Parse("now()")
	assert.NoError(t, err)
	call, ok := expr.(*ast.CallExpr)
	assert.True(t, ok)
	assert.Len(t, call.Args, 0)
}

func TestParse_Strings(t *testing.T) {
	expr, err := Parse(`'it\'s'`)
	assert.NoError(t, err)
	assert.Equal(t, &ast.StringExpr{Value: "it's"}, expr)

	expr, err = Parse(`"say \"hi\""`)
	assert.NoError(t, err)
	assert.Equal(t, &ast.StringExpr{Value: `say "hi"`}, expr)
}

func TestParse_BracketedIdentifier(t *testing.T) {
	expr, err := Parse(`[my var]`)
	assert.NoError(t, err)
	v, ok := expr.(*ast.VariableExpr)
	assert.True(t, ok)
	assert.Equal(t, ast.Identifier("my var"), v.Name)
}

func TestParse_MissingOperandIsSyntaxError(t *testing.T) {
	_, err := Parse("1 + * 2")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Syntax error")
}

func TestParse_UnmatchedParenthesis(t *testing.T) {
	_, err := Parse("(1 + 2")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Unmatched parenthesis")
}

func TestParse_ComparisonAndLogical(t *testing.T) {
	expr, err := Parse("a < b && c >= d")
	assert.NoError(t, err)
	and, ok := expr.(*ast.BinaryExpr)
	assert.True(t, ok)
	assert.Equal(t, ast.OpAnd, and.Op)
	lt, ok := and.Left.(*ast.BinaryExpr)
	assert.True(t, ok)
	assert.Equal(t, ast.OpLt, lt.Op)
	ge, ok := and.Right.(*ast.BinaryExpr)
	assert.True(t, ok)
	assert.Equal(t, ast.OpGe, ge.Op)
}
