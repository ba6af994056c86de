/*
File    : go-monkey/eval/eval_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/go-monkey/parser"
	"github.com/akashmaji946/go-monkey/std"
)

// evalRootNode evaluates the statements of a program in source order.
//
// Errors short-circuit the program. A ReturnValue reaching program level
// is unwrapped into its plain value: 'return 10;' at the top level yields
// 10, not a propagating wrapper. Otherwise the program's result is the
// outcome of its last statement (nil for an empty program).
//
// Parameters:
//   - n: The program root node
//
// Returns:
//   - std.MonkeyObject: The program outcome
func (e *Evaluator) evalRootNode(n *parser.RootNode) std.MonkeyObject {
	var result std.MonkeyObject = NIL

	for _, stmt := range n.Statements {
		result = e.Eval(stmt)

		switch result := result.(type) {
		case *std.ReturnValue:
			return result.Value
		case *std.Error:
			return result
		}
	}

	return result
}

// evalBlockStatement evaluates a sequence of statements within a block.
//
// Blocks short-circuit on errors AND on ReturnValues - but unlike the
// program root, a block does not unwrap the ReturnValue. The wrapper keeps
// propagating outward through every enclosing block, which is how a
// return inside a nested if exits the enclosing function.
//
// Note: blocks do NOT create a new scope. A let inside a block writes to
// the enclosing function frame, so nested blocks never shadow.
//
// Parameters:
//   - n: The block statement node
//
// Returns:
//   - std.MonkeyObject: The result of the last statement, a propagating
//     ReturnValue, or an Error
func (e *Evaluator) evalBlockStatement(n *parser.BlockStatementNode) std.MonkeyObject {
	var result std.MonkeyObject = NIL

	for _, stmt := range n.Statements {
		result = e.Eval(stmt)

		if result != nil {
			if result.GetType() == std.ReturnValueType || result.GetType() == std.ErrorType {
				return result
			}
		}
	}

	return result
}

// evalLetStatement evaluates a variable binding.
//
// The bound expression is evaluated first; on success the name is bound
// in the current scope. The statement itself yields nil - a let is a
// binding, not a value.
//
// Parameters:
//   - n: The let statement node
//
// Returns:
//   - std.MonkeyObject: NIL on success, or the expression's Error
func (e *Evaluator) evalLetStatement(n *parser.LetStatementNode) std.MonkeyObject {
	val := e.Eval(n.Expr)
	if IsError(val) {
		return val
	}

	e.Scp.Bind(n.Identifier.Name, val)
	return NIL
}

// evalReturnStatement evaluates a return statement.
//
// The inner expression is evaluated and the result is wrapped in a
// ReturnValue so that enclosing blocks stop evaluating and the value
// propagates out to the nearest function call boundary (or the program
// root).
//
// Parameters:
//   - n: The return statement node
//
// Returns:
//   - std.MonkeyObject: A ReturnValue wrapper, or the expression's Error
func (e *Evaluator) evalReturnStatement(n *parser.ReturnStatementNode) std.MonkeyObject {
	val := e.Eval(n.Expr)
	if IsError(val) {
		return val
	}

	return &std.ReturnValue{Value: val}
}
