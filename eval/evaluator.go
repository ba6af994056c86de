/*
File    : go-monkey/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"io"
	"os"

	"github.com/akashmaji946/go-monkey/function"
	"github.com/akashmaji946/go-monkey/scope"
	"github.com/akashmaji946/go-monkey/std"
)

// Evaluator holds the state for evaluating Monkey AST nodes, including the
// current scope, the builtin registry, and the output writer. It serves as
// the main execution engine for the Monkey interpreter.
//
// Evaluation is single-threaded and synchronous: one Eval invocation runs
// to completion (or error) before returning control. The evaluator owns a
// root scope that persists across Eval calls, which is what gives the REPL
// its session state.
type Evaluator struct {
	Scp      *scope.Scope            // Current scope for variable bindings and lexical scoping
	Builtins map[string]*std.Builtin // Map of builtin functions (e.g., len, puts, push)
	Writer   io.Writer               // Output writer for builtin functions (default: os.Stdout)
}

// NewEvaluator creates and initializes a new Evaluator instance with
// default configuration.
//
// This constructor performs the following initialization:
// - Creates a new root scope with no parent (global scope)
// - Registers all available builtin functions from the std package
// - Sets the output writer to os.Stdout for default console output
//
// Returns:
//   - *Evaluator: A fully initialized evaluator ready to execute Monkey code
//
// Example usage:
//
//	ev := NewEvaluator()
//	result := ev.Eval(parser.NewParser(src).Parse())
func NewEvaluator() *Evaluator {
	ev := &Evaluator{
		Scp:      scope.NewScope(nil),
		Builtins: make(map[string]*std.Builtin),
		Writer:   os.Stdout, // Default to stdout
	}
	for _, builtin := range std.Builtins {
		ev.Builtins[builtin.Name] = builtin
	}
	return ev
}

// SetWriter configures the output destination for the evaluator's builtin
// functions.
//
// This method allows redirecting output from builtins (like puts) to any
// io.Writer implementation. This is particularly useful for:
// - Testing: capturing output to verify program behavior
// - Custom output handling: sending output to buffers, files, etc.
//
// Parameters:
//   - w: An io.Writer implementation that will receive builtin output
//
// Example usage:
//
//	var buf bytes.Buffer
//	ev.SetWriter(&buf)  // Redirect output to buffer for testing
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// IsBuiltin checks if a given identifier name corresponds to a registered
// builtin function.
//
// This is used during identifier resolution: a name with no binding in the
// scope chain falls back to the builtin registry before becoming an
// "identifier not found" error.
//
// Parameters:
//   - name: The identifier name to check (e.g., "len", "puts")
//
// Returns:
//   - bool: true if the name matches a registered builtin function
func (e *Evaluator) IsBuiltin(name string) bool {
	_, ok := e.Builtins[name]
	return ok
}

// CallFunction executes a user-defined function value with the provided
// arguments.
//
// The call builds a fresh scope whose parent is the function's captured
// (definition-time) scope - not the caller's scope - which is what makes
// closures work. Parameters are bound positionally in the fresh scope, the
// body is evaluated there, and a propagating ReturnValue is unwrapped into
// the call's plain result.
//
// Parameters:
//   - fn: The function object to call
//   - args: The evaluated argument values, in order
//
// Returns:
//   - std.MonkeyObject: The function's result, or an Error object when the
//     argument count does not match the parameter count
func (e *Evaluator) CallFunction(fn *function.Function, args ...std.MonkeyObject) std.MonkeyObject {
	if len(args) != len(fn.Params) {
		return createError("wrong number of arguments: expected %d, got %d", len(fn.Params), len(args))
	}

	callSiteScope := scope.NewScope(fn.Scp)
	for i, param := range fn.Params {
		callSiteScope.Bind(param.Name, args[i])
	}

	oldScope := e.Scp
	e.Scp = callSiteScope
	result := e.Eval(fn.Body)
	e.Scp = oldScope

	return UnwrapReturnValue(result)
}
