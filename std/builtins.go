/*
File    : go-monkey/std/builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package std - builtins.go
// This file defines the plumbing for builtin functions available in the
// Monkey language. Builtins are host-provided functions registered in a
// fixed registry keyed by name. They receive an evaluated argument list
// and return a result object (or an Error object); they never see or
// mutate the environment.
package std

import (
	"io" // io.Writer is used for output operations in builtin functions
)

// CallbackFunc is the function signature for builtin functions.
// It takes an io.Writer for output (e.g., console) and a variadic list of
// MonkeyObject arguments, returning a MonkeyObject result (or an Error if
// something goes wrong).
type CallbackFunc func(writer io.Writer, args ...MonkeyObject) MonkeyObject

// Builtin represents a builtin function with a name and its implementation
// callback. Builtins are first-class values: an identifier that resolves
// to no binding falls back to this registry, so a builtin can be passed
// around and called like any function.
type Builtin struct {
	Name     string       // The name of the builtin function (e.g., "len")
	Callback CallbackFunc // The function that implements the builtin behavior
}

// GetType returns the type identifier for builtin function objects.
func (b *Builtin) GetType() MonkeyType {
	return BuiltinType
}

// ToString returns the display form of a builtin, e.g. "<builtin[len]>".
func (b *Builtin) ToString() string {
	return "<builtin[" + b.Name + "]>"
}

// ToObject returns the diagnostic form of a builtin.
func (b *Builtin) ToObject() string {
	return b.ToString()
}

// Builtins is a global slice of pointers to Builtin structs.
// It holds all the builtin functions available in the Monkey language.
// Functions are added to this slice during package initialization.
var Builtins = make([]*Builtin, 0)
