/*
File    : go-monkey/main/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the Go-Monkey interpreter.
It provides two modes of operation:
1. REPL Mode (default): Interactive Read-Eval-Print Loop for live coding
2. File Mode: Execute Monkey source files from the command line

The interpreter uses a lexer-parser-evaluator pipeline to process Monkey code.
*/
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/go-monkey/file"
	"github.com/akashmaji946/go-monkey/repl"
	"github.com/fatih/color"
)

// VERSION represents the current version of the Go-Monkey interpreter
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the interpreter's author
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENCE specifies the software license (MIT License)
var LICENCE = "MIT"

// PROMPT is the command prompt displayed in REPL mode
var PROMPT = ">> "

// BANNER is the ASCII art logo displayed when starting the REPL
// It shows "Monkey" in stylized ASCII characters
var BANNER = `
 ▄▄       ▄▄                       ▄▄
 ███▄   ▄███                       ██
 ██▀██▄██▀██  ▄████▄   ██▄████▄    ██ ▄██▀   ▄████▄  ▀██  ██▀
 ██  ▀█▀  ██ ██▀  ▀██  ██▀   ██    ██▄██    ██▄▄▄▄██   ████
 ██       ██ ██    ██  ██    ██    ██▀██▄   ██▀▀▀▀▀▀   ▄██▄
 ██       ██ ▀██▄▄██▀  ██    ██    ██  ▀█▄  ▀██▄▄▄▄   ▄█▀▀█▄
 ▀▀       ▀▀   ▀▀▀▀    ▀▀    ▀▀    ▀▀   ▀▀▀   ▀▀▀▀▀  ▀▀▀  ▀▀▀
`

// LINE is a separator line used for visual formatting in the REPL
var LINE = "----------------------------------------------------------------"

// Color definitions for command line output
var (
	cyanColor = color.New(color.FgCyan)
)

// main is the entry point of the Go-Monkey interpreter.
// It determines the operating mode based on command-line arguments:
//
// Usage:
//
//	go-monkey              - Start in REPL (interactive) mode
//	go-monkey <filename>   - Execute the specified Monkey source file
//	go-monkey --help       - Display help information
//	go-monkey --version    - Display version information
//
// The function delegates to either file.RunAndExit() for file execution
// or starts the REPL for interactive programming.
func main() {

	// No arguments: start the interactive REPL
	if len(os.Args) < 2 {
		r := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
		r.Start(os.Stdin, os.Stdout)
		return
	}

	switch os.Args[1] {
	case "--help", "-h":
		printHelp()
	case "--version", "-v":
		fmt.Printf("Go-Monkey %s\n", VERSION)
	default:
		// Treat the argument as a source file to execute
		file.RunAndExit(os.Args[1])
	}
}

// printHelp displays usage information for the Go-Monkey command line.
func printHelp() {
	cyanColor.Println("Go-Monkey - a tree-walking interpreter for the Monkey language")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  go-monkey              Start the interactive REPL")
	fmt.Println("  go-monkey <filename>   Execute a Monkey source file")
	fmt.Println("  go-monkey --help       Show this help")
	fmt.Println("  go-monkey --version    Show the version")
}
