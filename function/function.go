/*
File    : go-monkey/function/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package function

import (
	"github.com/akashmaji946/go-monkey/parser"
	"github.com/akashmaji946/go-monkey/scope"
	"github.com/akashmaji946/go-monkey/std"
)

// Function represents a user-defined function value in Monkey.
// Monkey functions are anonymous literals; a function captures its
// parameter list, body, and the scope in which it was defined.
//
// Fields:
//   - Params: A slice of identifier nodes representing the function's
//     parameter names. These are bound to argument values positionally
//     when the function is called.
//   - Body: A block statement node containing the function's executable
//     statements. This is evaluated when the function is invoked.
//   - Scp: A pointer to the scope in which the function was defined.
//     This enables closure behavior: the function reads variables from
//     its enclosing scope even after that scope's activation has finished
//     executing. The scope is captured by reference, not copied, so later
//     bindings in the same frame are visible to the closure.
type Function struct {
	Params []*parser.IdentifierExpressionNode // Function parameter names
	Body   *parser.BlockStatementNode         // Function body (statements to execute)
	Scp    *scope.Scope                       // Captured scope for closures
}

// GetType returns the type identifier for this Function object.
// This implements the std.MonkeyObject interface.
// The function type is represented as "func" in the Monkey type system.
func (f *Function) GetType() std.MonkeyType {
	return std.FunctionType
}

// ToString returns the display form of the function: the parameter list
// followed by the printed body on the next line.
//
// Example:
//
//	For fn(x, y) { x + y; } this returns:
//	"fn(x, y)\n{ (x + y) }"
func (f *Function) ToString() string {
	params := ""
	for i, param := range f.Params {
		if i > 0 {
			params += ", "
		}
		params += param.Name
	}
	return "fn(" + params + ")\n" + f.Body.Literal()
}

// ToObject returns the diagnostic form of the function, identical to the
// display form.
func (f *Function) ToObject() string {
	return f.ToString()
}
