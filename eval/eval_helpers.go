/*
File    : go-monkey/eval/eval_helpers.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/go-monkey/std"
)

// Shared singleton objects for the values that carry no state of their
// own. Interning them keeps allocation out of the hot path.
var (
	TRUE  = &std.Boolean{Value: true}
	FALSE = &std.Boolean{Value: false}
	NIL   = &std.Nil{}
)

// nativeBoolToBooleanObject converts a Go bool to the corresponding
// interned Boolean object.
//
// Parameters:
//   - value: The native boolean value
//
// Returns:
//   - *std.Boolean: TRUE or FALSE
func nativeBoolToBooleanObject(value bool) *std.Boolean {
	if value {
		return TRUE
	}
	return FALSE
}

// IsError checks whether an evaluation outcome is an Error object.
// Evaluation handlers call this after every sub-evaluation so that errors
// short-circuit instead of flowing into further operations.
//
// Parameters:
//   - obj: The outcome to check (may be nil)
//
// Returns:
//   - bool: true if obj is an Error object
func IsError(obj std.MonkeyObject) bool {
	return obj != nil && obj.GetType() == std.ErrorType
}

// IsTruthy reports the truthiness of a value.
// Only false and nil are falsy; every other value is truthy, including
// 0, the empty string, and the empty array.
//
// Parameters:
//   - obj: The value to test
//
// Returns:
//   - bool: The value's truthiness
func IsTruthy(obj std.MonkeyObject) bool {
	switch obj := obj.(type) {
	case *std.Nil:
		return false
	case *std.Boolean:
		return obj.Value
	default:
		return true
	}
}

// UnwrapReturnValue extracts the actual value from a ReturnValue wrapper.
//
// During evaluation, return statements create ReturnValue wrappers so that
// enclosing blocks stop evaluating. Once the wrapper reaches the function
// call boundary the caller only cares about the value itself. If the
// object is not a ReturnValue it is returned unchanged.
//
// Parameters:
//   - obj: The outcome to unwrap
//
// Returns:
//   - std.MonkeyObject: The unwrapped value, or obj itself
//
// Example:
//
//	fn(a, b) { return a + b; }  // body evaluates to ReturnValue(Integer(8))
//	add(5, 3)                   // UnwrapReturnValue extracts Integer(8)
func UnwrapReturnValue(obj std.MonkeyObject) std.MonkeyObject {
	if retVal, isReturn := obj.(*std.ReturnValue); isReturn {
		return retVal.Value
	}
	return obj
}

// createError creates a new Error object with a formatted message.
// The format string and arguments follow fmt.Sprintf conventions.
//
// Parameters:
//   - format: A format string following fmt.Sprintf conventions
//   - a: Variable arguments to be formatted into the error message
//
// Returns:
//   - *std.Error: An Error object carrying the formatted message
func createError(format string, a ...interface{}) *std.Error {
	return &std.Error{Message: fmt.Sprintf(format, a...)}
}
