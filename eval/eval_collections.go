/*
File    : go-monkey/eval/eval_collections.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/go-monkey/parser"
	"github.com/akashmaji946/go-monkey/std"
)

// evalArrayExpression evaluates an array literal.
// Elements are evaluated left-to-right, short-circuiting on the first
// error.
//
// Parameters:
//   - n: The array literal node
//
// Returns:
//   - std.MonkeyObject: An Array value, or the first element Error
func (e *Evaluator) evalArrayExpression(n *parser.ArrayExpressionNode) std.MonkeyObject {
	elements, errObj := e.evalExpressions(n.Elements)
	if errObj != nil {
		return errObj
	}
	return &std.Array{Elements: elements}
}

// evalAccessExpression evaluates an array element access: arr[index].
//
// The array expression is evaluated first, then the index. The access is
// valid only when the left operand is an array and the index an integer.
// An index outside the array bounds yields nil - a value, not an error.
//
// Parameters:
//   - n: The access expression node
//
// Returns:
//   - std.MonkeyObject: The element at the index, nil when out of bounds,
//     or an Error object
func (e *Evaluator) evalAccessExpression(n *parser.AccessExpressionNode) std.MonkeyObject {
	left := e.Eval(n.Left)
	if IsError(left) {
		return left
	}
	index := e.Eval(n.Index)
	if IsError(index) {
		return index
	}

	arr, ok := left.(*std.Array)
	if !ok {
		return createError("unknow access operation for %s", left.ToObject())
	}

	idx, ok := index.(*std.Integer)
	if !ok {
		return createError("cannot access array using %s", index.ToObject())
	}

	if idx.Value < 0 || idx.Value >= int64(len(arr.Elements)) {
		return NIL
	}

	return arr.Elements[idx.Value]
}
