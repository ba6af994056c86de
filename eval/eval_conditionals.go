/*
File    : go-monkey/eval/eval_conditionals.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/go-monkey/parser"
	"github.com/akashmaji946/go-monkey/std"
)

// evalIfExpression evaluates a conditional expression.
//
// The condition is evaluated and tested for truthiness: only false and
// nil are falsy, every other value (including 0, "" and []) is truthy.
// A truthy condition evaluates the then-block; otherwise the else-block
// is evaluated, or nil is produced when there is no else branch.
//
// Conditionals are expressions: 'let x = if (c) { 1 } else { 2 };' binds
// the value of whichever branch ran.
//
// Parameters:
//   - n: The if expression node
//
// Returns:
//   - std.MonkeyObject: The chosen branch's outcome, nil for an untaken
//     absent else, or an Error from the condition
func (e *Evaluator) evalIfExpression(n *parser.IfExpressionNode) std.MonkeyObject {
	condition := e.Eval(n.Condition)
	if IsError(condition) {
		return condition
	}

	if IsTruthy(condition) {
		return e.Eval(n.ThenBlock)
	} else if n.ElseBlock != nil {
		return e.Eval(n.ElseBlock)
	}

	return NIL
}
