/*
File    : barescript/exprparser/precedence.go

Left-to-right precedence re-association. parseBinary builds a left-leaning
tree one operator at a time; combine consults a fixed "lower precedence set"
for the new operator and, if the current left tree's root operator is in
that set, splices the new operator into the bottom of the tree's right
spine instead of wrapping a new root around the whole thing.
*/
package exprparser

import "github.com/barescript-go/barescript/ast"

// opRank orders operators highest to lowest:
// ** > * / % > + - > <= < >= > > == != > && > ||.
var opRank = map[string]int{
	"**": 6,
	"*":  5, "/": 5, "%": 5,
	"+": 4, "-": 4,
	"<=": 3, "<": 3, ">=": 3, ">": 3,
	"==": 2, "!=": 2,
	"&&": 1,
	"||": 0,
}

// lowerPrecedenceSets[op] is the set of operators of strictly lower
// precedence than op — the set combine descends into when splicing op into
// an existing tree. Same-rank operators are never in their own set, so
// same-rank chains stay left-associative at the top.
var lowerPrecedenceSets = buildLowerPrecedenceSets()

func buildLowerPrecedenceSets() map[string]map[string]bool {
	sets := make(map[string]map[string]bool, len(opRank))
	for op, rank := range opRank {
		set := make(map[string]bool)
		for other, otherRank := range opRank {
			if otherRank < rank {
				set[other] = true
			}
		}
		sets[op] = set
	}
	return sets
}

// parseBinary parses `unary (binop unary)*` left to right, re-associating
// each new operator into the tree built so far via combine.
func (p *exprParser) parseBinary() (ast.Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		idx, op := p.matchBinaryOp()
		if idx == nil {
			break
		}
		p.pos += idx[1]
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = combine(left, op, right)
	}
	return left, nil
}

func (p *exprParser) matchBinaryOp() ([]int, string) {
	rem := p.remaining()
	for _, candidate := range binaryOpPatterns {
		if idx := candidate.pattern.FindStringIndex(rem); idx != nil {
			return idx, candidate.op
		}
	}
	return nil, ""
}

// combine splices (op, right) into leftExpr: if leftExpr is itself a binary
// node whose operator sits in op's lower-precedence set,
// descend leftExpr's right spine while each visited right child is a binary
// node whose operator is also in that set, then replace the final right
// child R with binary{op, left: R, right}. Otherwise wrap a new root around
// the whole of leftExpr.
func combine(leftExpr ast.Expression, op string, right ast.Expression) ast.Expression {
	set := lowerPrecedenceSets[op]
	root, ok := leftExpr.(*ast.BinaryExpr)
	if !ok || !set[string(root.Op)] {
		return &ast.BinaryExpr{Op: ast.BinaryOp(op), Left: leftExpr, Right: right}
	}

	cur := root
	for {
		child, ok := cur.Right.(*ast.BinaryExpr)
		if !ok || !set[string(child.Op)] {
			break
		}
		cur = child
	}
	cur.Right = &ast.BinaryExpr{Op: ast.BinaryOp(op), Left: cur.Right, Right: right}
	return leftExpr
}
