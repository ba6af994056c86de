/*
File    : go-monkey/std/common.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package std

// This file defines the builtin functions of the Monkey language:
// len for strings, the array helpers first/last/rest/push, and puts
// for output. Each builtin validates its own arity and argument types
// and reports failures as Error objects.
import (
	"fmt"
	"io"
	"unicode/utf8"
)

// commonMethods is the slice of builtin functions that are always available.
var commonMethods = []*Builtin{
	{Name: "len", Callback: lengthFunc},  // Returns the length of a string in characters
	{Name: "first", Callback: firstFunc}, // Returns the first element of an array
	{Name: "last", Callback: lastFunc},   // Returns the last element of an array
	{Name: "rest", Callback: restFunc},   // Returns a new array without the first element
	{Name: "push", Callback: pushFunc},   // Returns a new array with an element appended
	{Name: "puts", Callback: putsFunc},   // Prints arguments, one per line
}

// init registers the common builtin methods by appending them to the
// global Builtins slice. This function runs automatically when the
// package is initialized.
func init() {
	Builtins = append(Builtins, commonMethods...)
}

// createError is a utility function to create an Error object with a
// formatted message. It takes a format string and variadic arguments,
// similar to fmt.Sprintf, and returns a pointer to an Error struct with
// the formatted message.
func createError(format string, a ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, a...)}
}

// lengthFunc implements len(x).
// For a string argument it returns the length in characters (not bytes),
// so multi-byte UTF-8 text is counted by rune. Every other argument type
// is unsupported.
//
// Examples:
//
//	len("Hello")  -> 5
//	len(1)        -> ERROR: argument for len not supported
func lengthFunc(writer io.Writer, args ...MonkeyObject) MonkeyObject {
	if len(args) != 1 {
		return createError("unexpected number of args for len")
	}
	switch arg := args[0].(type) {
	case *String:
		// Characters, not bytes
		return &Integer{Value: int64(utf8.RuneCountInString(arg.Value))}
	default:
		return createError("argument for len not supported")
	}
}

// firstFunc implements first(arr).
// Returns the first element of an array, or nil when the array is empty.
func firstFunc(writer io.Writer, args ...MonkeyObject) MonkeyObject {
	if len(args) != 1 {
		return createError("unexpected number of args for first")
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return createError("argument for first not supported")
	}
	if len(arr.Elements) == 0 {
		return &Nil{}
	}
	return arr.Elements[0]
}

// lastFunc implements last(arr).
// Returns the last element of an array, or nil when the array is empty.
func lastFunc(writer io.Writer, args ...MonkeyObject) MonkeyObject {
	if len(args) != 1 {
		return createError("unexpected number of args for last")
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return createError("argument for last not supported")
	}
	if len(arr.Elements) == 0 {
		return &Nil{}
	}
	return arr.Elements[len(arr.Elements)-1]
}

// restFunc implements rest(arr).
// Returns a new array holding every element but the first, or nil when
// the array is empty. The input array is never modified.
func restFunc(writer io.Writer, args ...MonkeyObject) MonkeyObject {
	if len(args) != 1 {
		return createError("unexpected number of args for rest")
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return createError("argument for rest not supported")
	}
	if len(arr.Elements) == 0 {
		return &Nil{}
	}
	elements := make([]MonkeyObject, len(arr.Elements)-1)
	copy(elements, arr.Elements[1:])
	return &Array{Elements: elements}
}

// pushFunc implements push(arr, value).
// Returns a new array with the value appended. The input array is never
// modified, so existing bindings keep their old contents.
func pushFunc(writer io.Writer, args ...MonkeyObject) MonkeyObject {
	if len(args) != 2 {
		return createError("unexpected number of args for push")
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return createError("argument for push not supported")
	}
	elements := make([]MonkeyObject, len(arr.Elements), len(arr.Elements)+1)
	copy(elements, arr.Elements)
	elements = append(elements, args[1])
	return &Array{Elements: elements}
}

// putsFunc implements puts(args...).
// Prints the display form of each argument on its own line and returns
// nil. Accepts any number of arguments, including none.
func putsFunc(writer io.Writer, args ...MonkeyObject) MonkeyObject {
	for _, arg := range args {
		fmt.Fprintln(writer, arg.ToString())
	}
	return &Nil{}
}
