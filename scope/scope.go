/*
File    : go-monkey/scope/scope.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package scope

import "github.com/akashmaji946/go-monkey/std"

// Scope defines a lexical scope boundary for variable lifetime and accessibility.
//
// Scope implements a hierarchical scope chain that enables lexical scoping and
// closures. Each scope maintains its own variable bindings and can read
// variables from parent scopes. This structure supports:
// - Closures: functions capture their defining scope by reference and keep it
//   alive for as long as the function value is reachable
// - Shared parents: multiple closures created in the same scope share that
//   frame, so the chain forms a DAG rather than a tree
//
// The scope chain is traversed upward (from child to parent) during variable
// lookup, implementing standard lexical scoping rules. Binding always writes
// the current frame and never walks up.
type Scope struct {
	// Variables maps variable names to their current values in this scope
	Variables map[string]std.MonkeyObject

	// Parent points to the enclosing scope, forming a scope chain
	// nil indicates this is the global (root) scope
	Parent *Scope
}

// NewScope creates and initializes a new Scope with the specified parent scope.
//
// This constructor initializes the bindings map and establishes the
// parent-child relationship in the scope chain. The parent parameter
// determines the scope's position in the hierarchy:
// - parent == nil: Creates a global (root) scope with no parent
// - parent != nil: Creates a nested scope that can read parent variables
//
// Parameters:
//   - parent: The enclosing scope, or nil for a global scope
//
// Returns:
//   - *Scope: A fully initialized scope ready for variable bindings
//
// Example usage:
//
//	globalScope := NewScope(nil)           // Create global scope
//	callScope := NewScope(capturedScope)   // Create function call scope
func NewScope(parent *Scope) *Scope {
	return &Scope{
		Variables: make(map[string]std.MonkeyObject),
		Parent:    parent,
	}
}

// LookUp searches for a variable by name in this scope and all parent scopes.
//
// This method implements the core variable resolution algorithm for lexical
// scoping:
// 1. First checks the current scope's Variables map
// 2. If not found and a parent scope exists, recursively searches the parent
// 3. Continues up the scope chain until the variable is found or the root is
//    reached
//
// This traversal order ensures that variables in inner scopes shadow those in
// outer scopes and that the most recent binding is always returned.
//
// The method is safe to call even if Variables map is nil (lazy initialization).
//
// Parameters:
//   - varName: The name of the variable to look up
//
// Returns:
//   - std.MonkeyObject: The value bound to the variable (if found)
//   - bool: true if the variable was found in this scope or any parent
//
// Example:
//
//	let x = 10;                 // Bound in the outer scope
//	let f = fn(y) { x + y; };   // LookUp finds x in the parent, y locally
func (s *Scope) LookUp(varName string) (std.MonkeyObject, bool) {
	if s.Variables == nil {
		s.Variables = make(map[string]std.MonkeyObject)
	}
	obj, ok := s.Variables[varName]
	if !ok && s.Parent != nil {
		obj, ok = s.Parent.LookUp(varName)
	}
	return obj, ok
}

// Bind creates a new variable binding in the current scope.
//
// This method adds or updates a variable binding in the current scope only,
// without affecting parent scopes. Binding never walks the chain: a let for a
// name that also exists in a parent frame writes the current frame, leaving
// the outer binding untouched.
//
// The method is safe to call even if Variables map is nil (lazy initialization).
//
// Parameters:
//   - varName: The name of the variable to bind
//   - obj: The value to bind to the variable
//
// Returns:
//   - string: The variable name (echoed back)
//   - bool: true if the variable already existed in the current scope
//
// Example:
//
//	scope.Bind("x", &std.Integer{Value: 10})  // New binding, returns ("x", false)
//	scope.Bind("x", &std.Integer{Value: 20})  // Rebinding, returns ("x", true)
func (s *Scope) Bind(varName string, obj std.MonkeyObject) (string, bool) {
	if s.Variables == nil {
		s.Variables = make(map[string]std.MonkeyObject)
	}
	_, has := s.Variables[varName]
	s.Variables[varName] = obj
	return varName, has
}
