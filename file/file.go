/*
File    : go-monkey/file/file.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package file implements the script execution mode of the Go-Monkey
// interpreter. It reads a Monkey source file from disk, parses it, and
// evaluates the whole program against a fresh top-level scope.
//
// Unlike the REPL, file mode is all-or-nothing: parser errors or a
// top-level evaluation error abort the run with a non-zero status.
package file

import (
	"io"
	"os"
	"strings"

	"github.com/akashmaji946/go-monkey/eval"
	"github.com/akashmaji946/go-monkey/parser"
	"github.com/akashmaji946/go-monkey/std"
	"github.com/fatih/color"
)

// Color definitions for file execution output
var (
	redColor = color.New(color.FgRed)
)

// Run reads, parses and evaluates a Monkey source file.
//
// The pipeline is the same as the REPL's: lex, parse, check parser errors,
// evaluate. Program output happens through puts; the final program value
// is not printed (a script that wants output says so).
//
// Parameters:
//
//	path   - Path of the Monkey source file to execute
//	writer - Output destination for program output and errors
//
// Returns:
//
//	int - The process exit code: 0 on success, 1 when the file cannot be
//	      read, the parse fails, or evaluation ends in an error
func Run(path string, writer io.Writer) int {
	// Read the entire source file
	src, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(writer, "cannot read file: %s\n", path)
		return 1
	}

	// Parse the source into an AST
	par := parser.NewParser(string(src))
	rootNode := par.Parse()

	// A program with parser errors is never evaluated
	if par.HasErrors() {
		redColor.Fprintf(writer, "Parser errors: %s\n", strings.Join(par.GetErrors(), "\n"))
		return 1
	}

	// Evaluate against a fresh top-level scope
	evaluator := eval.NewEvaluator()
	evaluator.SetWriter(writer)

	result := evaluator.Eval(rootNode)
	if result != nil && result.GetType() == std.ErrorType {
		redColor.Fprintf(writer, "%s\n", result.ToString())
		return 1
	}

	return 0
}

// RunAndExit runs a Monkey source file and exits the process with the
// resulting status code. This is the entry point used by the command line.
//
// Parameters:
//
//	path - Path of the Monkey source file to execute
func RunAndExit(path string) {
	os.Exit(Run(path, os.Stdout))
}
