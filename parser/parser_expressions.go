/*
File    : go-monkey/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"
	"strconv"

	"github.com/akashmaji946/go-monkey/lexer"
)

// parseExpression is the heart of the Pratt parsing algorithm.
// It parses an expression at the given precedence level:
//
//  1. Look up the prefix handler for the current token. If none exists,
//     the token cannot start an expression and an error is recorded.
//  2. Let left be the result of the prefix handler.
//  3. While the next token is not ';', has higher precedence than the
//     given level, and has an infix handler: advance onto the operator and
//     apply the infix handler with left as its left operand.
//  4. Return left.
//
// Parameters:
//
//	priority - The precedence level to parse at (operators at or below
//	           this level are left for the caller to consume)
//
// Returns:
//
//	ExpressionNode - The parsed expression, or nil on failure
func (par *Parser) parseExpression(priority int) ExpressionNode {
	unaryFunc, ok := par.UnaryFuncs[par.CurrToken.Type]
	if !ok {
		msg := fmt.Sprintf("no prefix parse fn for '%s' found", par.CurrToken.Literal)
		par.addError(msg)
		return nil
	}

	left := unaryFunc()
	if left == nil {
		return nil
	}

	for par.NextToken.Type != lexer.SEMICOLON_DELIM && priority < getPrecedence(&par.NextToken) {
		binaryFunc, ok := par.BinaryFuncs[par.NextToken.Type]
		if !ok {
			return left
		}
		par.advance()
		left = binaryFunc(left)
		if left == nil {
			return nil
		}
	}

	return left
}

// parseIdentifierExpression parses the current token as an identifier.
//
// Returns:
//
//	ExpressionNode - An identifier node carrying the token's lexeme
func (par *Parser) parseIdentifierExpression() ExpressionNode {
	return &IdentifierExpressionNode{Token: par.CurrToken, Name: par.CurrToken.Literal}
}

// parseIntegerLiteral parses the current token as an integer literal.
// The lexeme is converted to an int64; a lexeme that does not fit records
// an error.
//
// Returns:
//
//	ExpressionNode - An integer literal node, or nil on conversion failure
func (par *Parser) parseIntegerLiteral() ExpressionNode {
	value, err := strconv.ParseInt(par.CurrToken.Literal, 10, 64)
	if err != nil {
		msg := fmt.Sprintf("[%d:%d] could not parse '%s' as integer",
			par.CurrToken.Line, par.CurrToken.Column, par.CurrToken.Literal)
		par.addError(msg)
		return nil
	}
	return &IntegerLiteralExpressionNode{Token: par.CurrToken, Value: value}
}

// parseBooleanLiteral parses the current token (true or false) as a
// boolean literal.
//
// Returns:
//
//	ExpressionNode - A boolean literal node with the corresponding value
func (par *Parser) parseBooleanLiteral() ExpressionNode {
	return &BooleanLiteralExpressionNode{
		Token: par.CurrToken,
		Value: par.CurrToken.Type == lexer.TRUE_KEY,
	}
}

// parseStringLiteral parses the current token as a string literal.
//
// Returns:
//
//	ExpressionNode - A string literal node carrying the string content
func (par *Parser) parseStringLiteral() ExpressionNode {
	return &StringLiteralExpressionNode{Token: par.CurrToken, Value: par.CurrToken.Literal}
}

// parseUnaryExpression parses a prefix operation: !expr or -expr.
// The operand is parsed at PREFIX_PRIORITY so that prefix operators bind
// tighter than any binary operator: -a * b parses as ((-a) * b).
//
// Returns:
//
//	ExpressionNode - A unary expression node, or nil on failure
func (par *Parser) parseUnaryExpression() ExpressionNode {
	node := &UnaryExpressionNode{Operation: par.CurrToken}

	par.advance()
	node.Right = par.parseExpression(PREFIX_PRIORITY)
	if node.Right == nil {
		return nil
	}

	return node
}

// parseGroupExpression parses a parenthesized expression: (expr).
// Grouping exists only to override precedence; no wrapper node is
// produced, the inner expression is returned directly.
//
// Returns:
//
//	ExpressionNode - The inner expression, or nil when the closing
//	parenthesis is missing
func (par *Parser) parseGroupExpression() ExpressionNode {
	// Move past the opening parenthesis
	par.advance()

	expr := par.parseExpression(MINIMUM_PRIORITY)
	if expr == nil {
		return nil
	}

	if par.NextToken.Type != lexer.RIGHT_PAREN {
		par.addError("unmatched '(' in group expression")
		return nil
	}
	par.advance()

	return expr
}

// parseIfExpression parses a conditional expression of the form:
//
//	if (<condition>) { <then> } else { <else> }
//
// The else branch is optional. The condition must be parenthesized and
// both branches must be brace-delimited blocks.
//
// Returns:
//
//	ExpressionNode - An if expression node, or nil on failure
func (par *Parser) parseIfExpression() ExpressionNode {
	node := &IfExpressionNode{IfToken: par.CurrToken}

	// The parenthesized condition
	if !par.expectAdvance(lexer.LEFT_PAREN) {
		return nil
	}
	par.advance()
	node.Condition = par.parseExpression(MINIMUM_PRIORITY)
	if node.Condition == nil {
		return nil
	}
	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}

	// The then branch
	if !par.expectAdvance(lexer.LEFT_BRACE) {
		return nil
	}
	node.ThenBlock = par.parseBlockStatement()

	// The optional else branch
	if par.NextToken.Type == lexer.ELSE_KEY {
		par.advance()
		if !par.expectAdvance(lexer.LEFT_BRACE) {
			return nil
		}
		node.ElseBlock = par.parseBlockStatement()
	}

	return node
}

// parseFunctionLiteral parses an anonymous function literal of the form:
//
//	fn(<param>, <param>, ...) { <body> }
//
// The parameter list may be empty. Functions are first-class values; the
// evaluator later pairs the literal with its defining environment to form
// a closure.
//
// Returns:
//
//	ExpressionNode - A function literal node, or nil on failure
func (par *Parser) parseFunctionLiteral() ExpressionNode {
	node := &FunctionLiteralNode{FuncToken: par.CurrToken}

	if !par.expectAdvance(lexer.LEFT_PAREN) {
		return nil
	}
	node.Params = par.parseFunctionParams()
	if node.Params == nil {
		return nil
	}

	if !par.expectAdvance(lexer.LEFT_BRACE) {
		return nil
	}
	node.Body = par.parseBlockStatement()

	return node
}

// parseFunctionParams parses the comma-separated identifier list of a
// function literal, up to and including the closing parenthesis.
//
// Returns:
//
//	[]*IdentifierExpressionNode - The parameter identifiers (possibly
//	empty), or nil on failure
func (par *Parser) parseFunctionParams() []*IdentifierExpressionNode {
	params := make([]*IdentifierExpressionNode, 0)

	// Empty parameter list: fn()
	if par.NextToken.Type == lexer.RIGHT_PAREN {
		par.advance()
		return params
	}

	// First parameter
	if !par.expectAdvance(lexer.IDENTIFIER_ID) {
		return nil
	}
	params = append(params, &IdentifierExpressionNode{Token: par.CurrToken, Name: par.CurrToken.Literal})

	// Remaining parameters
	for par.NextToken.Type == lexer.COMMA_DELIM {
		par.advance()
		if !par.expectAdvance(lexer.IDENTIFIER_ID) {
			return nil
		}
		params = append(params, &IdentifierExpressionNode{Token: par.CurrToken, Name: par.CurrToken.Literal})
	}

	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}

	return params
}

// parseArrayExpression parses an array literal of the form:
//
//	[<expr>, <expr>, ...]
//
// The element list may be empty.
//
// Returns:
//
//	ExpressionNode - An array literal node, or nil on failure
func (par *Parser) parseArrayExpression() ExpressionNode {
	node := &ArrayExpressionNode{BracketToken: par.CurrToken}

	elements := make([]ExpressionNode, 0)

	// Empty array: []
	if par.NextToken.Type == lexer.RIGHT_BRACKET {
		par.advance()
		node.Elements = elements
		return node
	}

	// First element
	par.advance()
	elem := par.parseExpression(MINIMUM_PRIORITY)
	if elem == nil {
		return nil
	}
	elements = append(elements, elem)

	// Remaining elements
	for par.NextToken.Type == lexer.COMMA_DELIM {
		par.advance()
		par.advance()
		elem := par.parseExpression(MINIMUM_PRIORITY)
		if elem == nil {
			return nil
		}
		elements = append(elements, elem)
	}

	if !par.expectAdvance(lexer.RIGHT_BRACKET) {
		return nil
	}

	node.Elements = elements
	return node
}

// parseBinaryExpression parses a binary (infix) operation. The left
// operand has already been parsed; the right-hand side is parsed at the
// operator's own precedence, which makes all binary operators
// left-associative: a - b - c parses as ((a - b) - c).
//
// Parameters:
//
//	left - The already-parsed left operand
//
// Returns:
//
//	ExpressionNode - A binary expression node, or nil on failure
func (par *Parser) parseBinaryExpression(left ExpressionNode) ExpressionNode {
	node := &BinaryExpressionNode{
		Operation: par.CurrToken,
		Left:      left,
	}

	priority := getPrecedence(&par.CurrToken)
	par.advance()
	node.Right = par.parseExpression(priority)
	if node.Right == nil {
		return nil
	}

	return node
}

// parseCallExpression parses a function call. The callee (an identifier,
// a function literal, or any expression evaluating to a function) has
// already been parsed as the left operand of the '(' infix token.
//
// Parameters:
//
//	left - The already-parsed callee expression
//
// Returns:
//
//	ExpressionNode - A call expression node, or nil on failure
func (par *Parser) parseCallExpression(left ExpressionNode) ExpressionNode {
	node := &CallExpressionNode{ParenToken: par.CurrToken, Function: left}

	node.Arguments = par.parseCallArguments()
	if node.Arguments == nil {
		return nil
	}

	return node
}

// parseCallArguments parses the comma-separated argument expressions of a
// function call, up to and including the closing parenthesis. An argument
// list that is never closed is malformed.
//
// Returns:
//
//	[]ExpressionNode - The argument expressions (possibly empty), or nil
//	on failure
func (par *Parser) parseCallArguments() []ExpressionNode {
	args := make([]ExpressionNode, 0)

	// Empty argument list: callee()
	if par.NextToken.Type == lexer.RIGHT_PAREN {
		par.advance()
		return args
	}

	// First argument
	par.advance()
	arg := par.parseExpression(MINIMUM_PRIORITY)
	if arg == nil {
		return nil
	}
	args = append(args, arg)

	// Remaining arguments
	for par.NextToken.Type == lexer.COMMA_DELIM {
		par.advance()
		par.advance()
		arg := par.parseExpression(MINIMUM_PRIORITY)
		if arg == nil {
			return nil
		}
		args = append(args, arg)
	}

	if par.NextToken.Type != lexer.RIGHT_PAREN {
		par.addError("malformed function call missing ')'")
		return nil
	}
	par.advance()

	return args
}

// parseAccessExpression parses an array element access. The array
// expression has already been parsed as the left operand of the '[' infix
// token; one index expression is parsed at the lowest precedence and the
// closing bracket is required.
//
// Parameters:
//
//	left - The already-parsed array expression
//
// Returns:
//
//	ExpressionNode - An access expression node, or nil on failure
func (par *Parser) parseAccessExpression(left ExpressionNode) ExpressionNode {
	node := &AccessExpressionNode{BracketToken: par.CurrToken, Left: left}

	par.advance()
	node.Index = par.parseExpression(MINIMUM_PRIORITY)
	if node.Index == nil {
		return nil
	}

	if !par.expectAdvance(lexer.RIGHT_BRACKET) {
		return nil
	}

	return node
}
