/*
File    : go-monkey/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

/*
Package parser implements a Pratt parser (also known as top-down operator
precedence parser) for the Monkey programming language.

The parser converts a stream of tokens from the lexer into an Abstract Syntax
Tree (AST). It handles:
- Expressions (binary, unary, literals, identifiers, grouping)
- Statements (let bindings, returns, expression statements, blocks)
- Function literals and calls
- Conditionals (if/else)
- Arrays (literals and element access)
- Operator precedence and associativity

Key Features:
- Pratt parsing algorithm for efficient expression parsing
- Error collection (doesn't panic or stop on first error)
- Statement-boundary synchronization after a failed parse, so one mistake
  produces one error instead of a cascade
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/go-monkey/lexer"
)

// Parser represents the parser state and configuration.
// It maintains all the information needed to parse Monkey source code
// into an Abstract Syntax Tree (AST).
type Parser struct {
	Lex       lexer.Lexer // Lexer instance for tokenizing source code
	CurrToken lexer.Token // Current token being processed
	NextToken lexer.Token // Next token (for lookahead)

	// Function maps for Pratt parsing
	// These maps associate token types with their parsing functions
	UnaryFuncs  map[lexer.TokenType]unaryParseFunction  // Prefix operators and expression starters
	BinaryFuncs map[lexer.TokenType]binaryParseFunction // Infix operators

	// Collect parsing errors instead of panicking
	// This allows reporting multiple errors in a single parse
	Errors []string
}

// NewParser creates and initializes a new Parser instance.
// This is the main entry point for creating a parser.
//
// Parameters:
//
//	src - The Monkey source code to parse
//
// Returns:
//
//	A pointer to a fully initialized Parser instance
//
// The parser is ready to use immediately after creation.
// Call Parse() to begin parsing the source code.
func NewParser(src string) *Parser {
	// Create a lexer for the source code
	lex := lexer.NewLexer(src)

	// Create the parser with the lexer
	par := &Parser{
		Lex: lex,
	}

	// Initialize all parser state (maps, tokens, etc.)
	par.init()

	return par
}

// init initializes the parser's internal state.
// This function sets up:
// 1. Function maps for Pratt parsing
// 2. Error collection
// 3. Initial token lookahead
//
// The function registers parsing functions for all supported token types,
// establishing the grammar of the Monkey language. Each token type maps to
// at most one prefix handler and at most one infix handler.
func (par *Parser) init() {
	// Initialize all maps
	par.UnaryFuncs = make(map[lexer.TokenType]unaryParseFunction)
	par.BinaryFuncs = make(map[lexer.TokenType]binaryParseFunction)
	par.Errors = make([]string, 0)

	// Register unary/prefix parsing functions
	// These handle tokens that can start an expression

	// Identifiers: variable names, function names
	par.registerUnaryFuncs(par.parseIdentifierExpression, lexer.IDENTIFIER_ID)

	// Integer literals: 42
	par.registerUnaryFuncs(par.parseIntegerLiteral, lexer.INT_LIT)

	// Boolean literals: true, false
	par.registerUnaryFuncs(par.parseBooleanLiteral, lexer.TRUE_KEY, lexer.FALSE_KEY)

	// String literals: "hello"
	par.registerUnaryFuncs(par.parseStringLiteral, lexer.STRING_LIT)

	// Unary operators: !, -
	par.registerUnaryFuncs(par.parseUnaryExpression, lexer.NOT_OP, lexer.MINUS_OP)

	// Parenthesized expressions: (expr)
	par.registerUnaryFuncs(par.parseGroupExpression, lexer.LEFT_PAREN)

	// Conditionals: if (cond) { ... } else { ... }
	par.registerUnaryFuncs(par.parseIfExpression, lexer.IF_KEY)

	// Function literals: fn(params) { body }
	par.registerUnaryFuncs(par.parseFunctionLiteral, lexer.FUNC_KEY)

	// Array literals: [1, 2, 3]
	par.registerUnaryFuncs(par.parseArrayExpression, lexer.LEFT_BRACKET)

	// Register binary/infix parsing functions
	// These handle operators that appear between two expressions

	// Binary operators: +, -, *, /, <, >, ==, !=
	par.registerBinaryFuncs(par.parseBinaryExpression,
		lexer.PLUS_OP, lexer.MINUS_OP, lexer.MUL_OP, lexer.DIV_OP,
		lexer.LT_OP, lexer.GT_OP, lexer.EQ_OP, lexer.NE_OP)

	// Function calls: callee(args)
	par.registerBinaryFuncs(par.parseCallExpression, lexer.LEFT_PAREN)

	// Array element access: arr[index]
	par.registerBinaryFuncs(par.parseAccessExpression, lexer.LEFT_BRACKET)

	// Prime the token lookahead by advancing twice
	// After this, CurrToken and NextToken are both valid
	par.advance()
	par.advance()
}

// advance moves the parser forward by one token.
// This implements the token lookahead mechanism:
// - CurrToken becomes NextToken
// - NextToken is fetched from the lexer
//
// This two-token lookahead allows the parser to make decisions
// based on the current token and peek at what's coming next.
func (par *Parser) advance() {
	par.CurrToken = par.NextToken
	par.NextToken = par.Lex.NextToken()
}

// expectAdvance checks if the next token matches the expected type,
// and if so, advances the parser.
//
// Parameters:
//
//	expected - The token type we expect to see next
//
// Returns:
//
//	true if the next token matches and we advanced, false otherwise
//
// This is a common pattern in parsing: "I expect a closing brace next,
// and if it's there, move past it."
func (par *Parser) expectAdvance(expected lexer.TokenType) bool {
	if !par.expectNext(expected) {
		return false
	}
	par.advance()
	return true
}

// expectNext checks if the next token matches the expected type.
// If not, it adds an error message to the error list.
//
// Parameters:
//
//	expected - The token type we expect to see next
//
// Returns:
//
//	true if the next token matches, false otherwise
//
// This function doesn't advance the parser, it only checks.
// Use expectAdvance() if you want to check and advance in one step.
func (par *Parser) expectNext(expected lexer.TokenType) bool {
	if par.NextToken.Type != expected {
		msg := fmt.Sprintf("[%d:%d] expected %s, got %s",
			par.NextToken.Line, par.NextToken.Column, expected, par.NextToken.Type)
		par.addError(msg)
		return false
	}
	return true
}

// addError adds an error message to the parser's error list.
// The parser collects errors instead of panicking, allowing it to
// report multiple errors in a single parse.
//
// Parameters:
//
//	msg - The error message to add
func (par *Parser) addError(msg string) {
	par.Errors = append(par.Errors, msg)
}

// HasErrors returns true if there are parsing errors.
// This should be checked after parsing to determine if the parse was successful.
//
// Returns:
//
//	true if there are any errors, false if parsing was successful
func (par *Parser) HasErrors() bool {
	return len(par.Errors) > 0
}

// GetErrors returns all parsing errors collected during parsing.
// This allows the caller to display all errors to the user.
//
// Returns:
//
//	A slice of error message strings
func (par *Parser) GetErrors() []string {
	return par.Errors
}

// Parse is the main parsing function that converts source code into an AST.
// It repeatedly parses statements until reaching the end of the file (EOF),
// building up a RootNode that contains all the parsed statements.
//
// Parsing is error-accumulating, never fail-fast: a statement that cannot
// be parsed records an error and the parser resumes at the next statement
// boundary, so the returned program always covers the whole input.
//
// Returns:
//
//	A pointer to a RootNode containing all parsed statements and every
//	error collected along the way (Errors is empty iff the parse was clean)
func (par *Parser) Parse() *RootNode {

	// Create the root node that will hold all statements
	root := &RootNode{}
	root.Statements = make([]StatementNode, 0)

	// Parse statements until we reach the end of file
	for par.CurrToken.Type != lexer.EOF_TYPE {
		stmt := par.parseStatement()
		if stmt != nil {
			root.Statements = append(root.Statements, stmt)
		}
		par.advance()
	}

	// The program carries its own errors so callers that only hold the
	// AST can still refuse to evaluate a broken parse
	root.Errors = par.Errors

	return root
}
