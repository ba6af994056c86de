/*
File    : go-monkey/parser/parser_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/go-monkey/lexer"
)

// parseStatement parses one statement, dispatching on the current token:
// 'let' starts a let statement, 'return' starts a return statement, and
// everything else is an expression statement (an expression parsed at the
// lowest precedence with an optional trailing semicolon).
//
// Returns:
//
//	StatementNode - The parsed statement, or nil if parsing failed
//	(in which case an error has been recorded and the parser has been
//	synchronized to the next statement boundary)
func (par *Parser) parseStatement() StatementNode {
	switch par.CurrToken.Type {
	case lexer.LET_KEY:
		return par.parseLetStatement()
	case lexer.RETURN_KEY:
		return par.parseReturnStatement()
	default:
		return par.parseExpressionStatement()
	}
}

// parseLetStatement parses a variable binding of the form:
//
//	let <identifier> = <expression>;
//
// The trailing semicolon is optional. On a mismatch the error describing
// the expected vs. actual token is recorded and the parser skips ahead to
// the next statement boundary (see synchronize).
//
// Returns:
//
//	StatementNode - The parsed let statement, or nil on failure
func (par *Parser) parseLetStatement() StatementNode {
	stmt := &LetStatementNode{LetToken: par.CurrToken}

	// The binding name
	if !par.expectAdvance(lexer.IDENTIFIER_ID) {
		par.synchronize()
		return nil
	}
	stmt.Identifier = IdentifierExpressionNode{Token: par.CurrToken, Name: par.CurrToken.Literal}

	// The '=' sign
	if !par.expectAdvance(lexer.ASSIGN_OP) {
		par.synchronize()
		return nil
	}

	// The bound expression, at lowest precedence
	par.advance()
	stmt.Expr = par.parseExpression(MINIMUM_PRIORITY)
	if stmt.Expr == nil {
		par.synchronize()
		return nil
	}

	// Optional trailing semicolon
	if par.NextToken.Type == lexer.SEMICOLON_DELIM {
		par.advance()
	}

	return stmt
}

// parseReturnStatement parses a return of the form:
//
//	return <expression>;
//
// The trailing semicolon is optional.
//
// Returns:
//
//	StatementNode - The parsed return statement, or nil on failure
func (par *Parser) parseReturnStatement() StatementNode {
	stmt := &ReturnStatementNode{ReturnToken: par.CurrToken}

	// The returned expression, at lowest precedence
	par.advance()
	stmt.Expr = par.parseExpression(MINIMUM_PRIORITY)
	if stmt.Expr == nil {
		par.synchronize()
		return nil
	}

	// Optional trailing semicolon
	if par.NextToken.Type == lexer.SEMICOLON_DELIM {
		par.advance()
	}

	return stmt
}

// parseExpressionStatement parses an expression appearing in statement
// position. The expression is parsed at the lowest precedence and an
// optional trailing semicolon is consumed.
//
// Returns:
//
//	StatementNode - The expression itself (every expression is a
//	statement), or nil if no expression could be parsed
func (par *Parser) parseExpressionStatement() StatementNode {
	expr := par.parseExpression(MINIMUM_PRIORITY)
	if expr == nil {
		par.synchronize()
		return nil
	}

	// Optional trailing semicolon
	if par.NextToken.Type == lexer.SEMICOLON_DELIM {
		par.advance()
	}

	return expr
}

// parseBlockStatement parses a brace-delimited block of statements.
// The caller has already positioned the parser on the opening '{'.
// Statements are parsed until the closing '}' or end of input; a missing
// closing brace is an error.
//
// Returns:
//
//	*BlockStatementNode - The parsed block (never nil; on a missing '}'
//	the block holds whatever statements were parsed and an error is
//	recorded)
func (par *Parser) parseBlockStatement() *BlockStatementNode {
	block := &BlockStatementNode{BraceToken: par.CurrToken}
	block.Statements = make([]StatementNode, 0)

	// Move past the opening brace
	par.advance()

	for par.CurrToken.Type != lexer.RIGHT_BRACE && par.CurrToken.Type != lexer.EOF_TYPE {
		stmt := par.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		par.advance()
	}

	// Require the closing brace
	if par.CurrToken.Type != lexer.RIGHT_BRACE {
		msg := fmt.Sprintf("[%d:%d] expected %s to close block, got %s",
			par.CurrToken.Line, par.CurrToken.Column, lexer.RIGHT_BRACE, par.CurrToken.Type)
		par.addError(msg)
	}

	return block
}

// synchronize skips tokens after a failed statement-level parse so that
// parsing can resume at the next statement boundary. The boundary rule is:
// stop when the current token is a ';' (the main loop then advances past
// it) or EOF, or when the next token is a statement-starter keyword
// ('let' or 'return').
//
// This keeps error counts stable: one broken statement produces one error,
// not a cascade of follow-on errors from its remaining tokens.
func (par *Parser) synchronize() {
	for par.CurrToken.Type != lexer.SEMICOLON_DELIM && par.CurrToken.Type != lexer.EOF_TYPE {
		if par.NextToken.Type == lexer.LET_KEY || par.NextToken.Type == lexer.RETURN_KEY {
			return
		}
		par.advance()
	}
}
