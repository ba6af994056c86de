/*
File    : go-monkey/eval/eval_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/go-monkey/function"
	"github.com/akashmaji946/go-monkey/parser"
	"github.com/akashmaji946/go-monkey/std"
)

// Eval is the main evaluation dispatcher. It examines the node's concrete
// type and routes it to its appropriate evaluation handler.
//
// Evaluation produces one of three outcomes, all encoded as objects:
// an ordinary value, a propagating ReturnValue wrapper, or an Error.
// Errors short-circuit the current statement and every enclosing block;
// ReturnValues escape blocks and are unwrapped at the program root and at
// function call sites.
//
// Parameters:
//   - n: The AST node to evaluate
//
// Returns:
//   - std.MonkeyObject: The outcome of evaluating the node
func (e *Evaluator) Eval(n parser.Node) std.MonkeyObject {
	switch n := n.(type) {

	// Statements
	case *parser.RootNode:
		return e.evalRootNode(n)
	case *parser.BlockStatementNode:
		return e.evalBlockStatement(n)
	case *parser.LetStatementNode:
		return e.evalLetStatement(n)
	case *parser.ReturnStatementNode:
		return e.evalReturnStatement(n)

	// Literals
	case *parser.IntegerLiteralExpressionNode:
		return &std.Integer{Value: n.Value}
	case *parser.BooleanLiteralExpressionNode:
		return nativeBoolToBooleanObject(n.Value)
	case *parser.StringLiteralExpressionNode:
		return &std.String{Value: n.Value}

	// Expressions
	case *parser.IdentifierExpressionNode:
		return e.evalIdentifierExpression(n)
	case *parser.UnaryExpressionNode:
		return e.evalUnaryExpression(n)
	case *parser.BinaryExpressionNode:
		return e.evalBinaryExpression(n)
	case *parser.IfExpressionNode:
		return e.evalIfExpression(n)
	case *parser.FunctionLiteralNode:
		return e.evalFunctionLiteral(n)
	case *parser.CallExpressionNode:
		return e.evalCallExpression(n)
	case *parser.ArrayExpressionNode:
		return e.evalArrayExpression(n)
	case *parser.AccessExpressionNode:
		return e.evalAccessExpression(n)

	case nil:
		return NIL

	default:
		return createError("unknown node kind: %s", n.Literal())
	}
}

// evalIdentifierExpression resolves an identifier.
// The scope chain is searched first; a name with no binding falls back to
// the builtin registry, and only then becomes an error.
//
// Parameters:
//   - n: The identifier node to resolve
//
// Returns:
//   - std.MonkeyObject: The bound value, a builtin function object, or an
//     "identifier not found" error
func (e *Evaluator) evalIdentifierExpression(n *parser.IdentifierExpressionNode) std.MonkeyObject {
	if obj, ok := e.Scp.LookUp(n.Name); ok {
		return obj
	}
	if e.IsBuiltin(n.Name) {
		return e.Builtins[n.Name]
	}
	return createError("identifier not found: %s", n.Name)
}

// evalUnaryExpression evaluates a prefix operation: !expr or -expr.
//
// '!' negates the truthiness of any operand. '-' is valid only for
// integer operands; applying it to anything else is an error.
//
// Parameters:
//   - n: The unary expression node
//
// Returns:
//   - std.MonkeyObject: The operation result, or an Error object
func (e *Evaluator) evalUnaryExpression(n *parser.UnaryExpressionNode) std.MonkeyObject {
	right := e.Eval(n.Right)
	if IsError(right) {
		return right
	}

	switch n.Operation.Literal {
	case "!":
		return nativeBoolToBooleanObject(!IsTruthy(right))
	case "-":
		if integer, ok := right.(*std.Integer); ok {
			return &std.Integer{Value: -integer.Value}
		}
		return createError("unknown operator: - for %s", right.ToObject())
	default:
		return createError("unknown operator: %s for %s", n.Operation.Literal, right.ToObject())
	}
}

// evalBinaryExpression evaluates a binary (infix) operation.
// Operands are evaluated strictly left-to-right, each short-circuiting on
// error. The operator table is:
//   - integer op integer: full arithmetic and comparison set
//   - string + string: concatenation
//   - == and != on anything: structural equality on matching variants
//     (values of different types are never equal)
//   - everything else: unknown operator error
//
// Parameters:
//   - n: The binary expression node
//
// Returns:
//   - std.MonkeyObject: The operation result, or an Error object
func (e *Evaluator) evalBinaryExpression(n *parser.BinaryExpressionNode) std.MonkeyObject {
	left := e.Eval(n.Left)
	if IsError(left) {
		return left
	}
	right := e.Eval(n.Right)
	if IsError(right) {
		return right
	}

	operator := n.Operation.Literal

	switch {
	case left.GetType() == std.IntegerType && right.GetType() == std.IntegerType:
		return evalIntegerBinaryExpression(operator, left.(*std.Integer), right.(*std.Integer))

	case left.GetType() == std.StringType && right.GetType() == std.StringType && operator == "+":
		return &std.String{Value: left.(*std.String).Value + right.(*std.String).Value}

	case operator == "==":
		return nativeBoolToBooleanObject(structuralEquals(left, right))

	case operator == "!=":
		return nativeBoolToBooleanObject(!structuralEquals(left, right))

	default:
		return createError("unknown operator: %s for left: %s and right: %s",
			operator, left.ToObject(), right.ToObject())
	}
}

// evalIntegerBinaryExpression applies a binary operator to two integer
// operands. Division is truncated integer division; dividing by zero is a
// concrete evaluation error.
//
// Parameters:
//   - operator: The operator lexeme (+ - * / < > == !=)
//   - left, right: The integer operands
//
// Returns:
//   - std.MonkeyObject: An Integer or Boolean result, or an Error object
func evalIntegerBinaryExpression(operator string, left *std.Integer, right *std.Integer) std.MonkeyObject {
	switch operator {
	case "+":
		return &std.Integer{Value: left.Value + right.Value}
	case "-":
		return &std.Integer{Value: left.Value - right.Value}
	case "*":
		return &std.Integer{Value: left.Value * right.Value}
	case "/":
		if right.Value == 0 {
			return createError("division by zero")
		}
		return &std.Integer{Value: left.Value / right.Value}
	case "<":
		return nativeBoolToBooleanObject(left.Value < right.Value)
	case ">":
		return nativeBoolToBooleanObject(left.Value > right.Value)
	case "==":
		return nativeBoolToBooleanObject(left.Value == right.Value)
	case "!=":
		return nativeBoolToBooleanObject(left.Value != right.Value)
	default:
		return createError("unknown operator: %s for left: %s and right: %s",
			operator, left.ToObject(), right.ToObject())
	}
}

// structuralEquals reports whether two values are structurally equal.
// Values of different types are never equal. Integers, booleans and
// strings compare by value; nil equals nil; arrays compare elementwise,
// recursively. Functions and builtins carry no structural content and
// compare by identity.
//
// Parameters:
//   - left, right: The values to compare
//
// Returns:
//   - bool: true if the values are structurally equal
func structuralEquals(left std.MonkeyObject, right std.MonkeyObject) bool {
	if left.GetType() != right.GetType() {
		return false
	}

	switch left := left.(type) {
	case *std.Integer:
		return left.Value == right.(*std.Integer).Value
	case *std.Boolean:
		return left.Value == right.(*std.Boolean).Value
	case *std.String:
		return left.Value == right.(*std.String).Value
	case *std.Nil:
		return true
	case *std.Array:
		rightArr := right.(*std.Array)
		if len(left.Elements) != len(rightArr.Elements) {
			return false
		}
		for i, elem := range left.Elements {
			if !structuralEquals(elem, rightArr.Elements[i]) {
				return false
			}
		}
		return true
	default:
		// Functions and builtins: identity
		return left == right
	}
}

// evalFunctionLiteral produces a function value from a function literal.
// The current scope is captured by reference, making the value a closure:
// it sees its defining bindings (and later additions to that same frame)
// wherever it is eventually called.
//
// Parameters:
//   - n: The function literal node
//
// Returns:
//   - std.MonkeyObject: The function value
func (e *Evaluator) evalFunctionLiteral(n *parser.FunctionLiteralNode) std.MonkeyObject {
	return &function.Function{
		Params: n.Params,
		Body:   n.Body,
		Scp:    e.Scp, // Reference the current scope directly, not a copy
	}
}

// evalCallExpression evaluates a function call.
// The callee is evaluated first, then the arguments left-to-right. An
// error in any argument aborts the call with an args-evaluation error.
// The callee must be a user-defined function or a builtin; calling any
// other value is an error.
//
// Parameters:
//   - n: The call expression node
//
// Returns:
//   - std.MonkeyObject: The call result, or an Error object
func (e *Evaluator) evalCallExpression(n *parser.CallExpressionNode) std.MonkeyObject {
	callee := e.Eval(n.Function)
	if IsError(callee) {
		return callee
	}

	args, errObj := e.evalExpressions(n.Arguments)
	if errObj != nil {
		return createError("error evaluating function args: %s", errObj.Message)
	}

	switch callee := callee.(type) {
	case *function.Function:
		return e.CallFunction(callee, args...)
	case *std.Builtin:
		return callee.Callback(e.Writer, args...)
	default:
		return createError("%s is not a function", callee.ToObject())
	}
}

// evalExpressions evaluates a list of expressions left-to-right,
// short-circuiting on the first error.
//
// Parameters:
//   - expressions: The expressions to evaluate, in order
//
// Returns:
//   - []std.MonkeyObject: The evaluated values (nil when an error occurred)
//   - *std.Error: The first error encountered, or nil on success
func (e *Evaluator) evalExpressions(expressions []parser.ExpressionNode) ([]std.MonkeyObject, *std.Error) {
	results := make([]std.MonkeyObject, 0, len(expressions))
	for _, expression := range expressions {
		result := e.Eval(expression)
		if IsError(result) {
			return nil, result.(*std.Error)
		}
		results = append(results, result)
	}
	return results, nil
}
