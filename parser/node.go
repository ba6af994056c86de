/*
File    : go-monkey/parser/node.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/go-monkey/lexer"
)

// Node: base interface for all nodes of the AST
// Literal(): returns the canonical string representation of the node
type Node interface {
	Literal() string
}

// StatementNode: base interface for all statement nodes
// Node: every statement node is a node
// Statement(): marker method for statement nodes
type StatementNode interface {
	Node
	Statement()
}

// ExpressionNode: base interface for all expression nodes
// Node: every expression node is a node
// StatementNode: every expression is also a statement
// Expression(): marker method for expression nodes
type ExpressionNode interface {
	Node
	StatementNode
	Expression()
}

// RootNode: represents the root of the AST (the program node)
// Statements: list of statements in the program, in source order
// Errors: parser errors collected while producing this program
type RootNode struct {
	Statements []StatementNode // every line of code is a statement
	Errors     []string        // empty iff every token parsed cleanly
}

// RootNode.Literal(): string representation of the whole program
func (root *RootNode) Literal() string {
	res := ""
	for _, stmt := range root.Statements {
		res += stmt.Literal()
	}
	return res
}

// IdentifierExpressionNode: represents a variable or function identifier
// Example: x, myVar, add
type IdentifierExpressionNode struct {
	Token lexer.Token // The identifier token
	Name  string      // The identifier name
}

// IdentifierExpressionNode.Literal(): string representation of the node
func (node *IdentifierExpressionNode) Literal() string {
	return node.Name
}

// IdentifierExpressionNode.Statement(): every expression is also a statement
func (node *IdentifierExpressionNode) Statement() {

}

// IdentifierExpressionNode.Expression(): every expression node is a node
func (node *IdentifierExpressionNode) Expression() {

}

// IntegerLiteralExpressionNode: represents an integer number literal
// Example: 42, 0, 1500
type IntegerLiteralExpressionNode struct {
	Token lexer.Token // The integer token with its literal text
	Value int64       // The parsed integer value
}

// IntegerLiteralExpressionNode.Literal(): string representation of the node
func (node *IntegerLiteralExpressionNode) Literal() string {
	return node.Token.Literal
}

// IntegerLiteralExpressionNode.Statement(): every expression is also a statement
func (node *IntegerLiteralExpressionNode) Statement() {

}

// IntegerLiteralExpressionNode.Expression(): every expression node is a node
func (node *IntegerLiteralExpressionNode) Expression() {

}

// BooleanLiteralExpressionNode: represents a boolean literal value
// Example: true or false
type BooleanLiteralExpressionNode struct {
	Token lexer.Token // The boolean token (true/false)
	Value bool        // The boolean value
}

// BooleanLiteralExpressionNode.Literal(): string representation of the node
func (node *BooleanLiteralExpressionNode) Literal() string {
	return node.Token.Literal
}

// BooleanLiteralExpressionNode.Statement(): every expression is also a statement
func (node *BooleanLiteralExpressionNode) Statement() {

}

// BooleanLiteralExpressionNode.Expression(): every expression node is a node
func (node *BooleanLiteralExpressionNode) Expression() {

}

// StringLiteralExpressionNode: represents a string literal in the source code
// Example: "hello world"
type StringLiteralExpressionNode struct {
	Token lexer.Token // The string token with its literal value
	Value string      // The string content (without quotes)
}

// StringLiteralExpressionNode.Literal(): string representation of the node.
// Quotes are kept so that the printed form lexes back to the same token.
func (node *StringLiteralExpressionNode) Literal() string {
	return "\"" + node.Value + "\""
}

// StringLiteralExpressionNode.Statement(): every expression is also a statement
func (node *StringLiteralExpressionNode) Statement() {

}

// StringLiteralExpressionNode.Expression(): every expression node is a node
func (node *StringLiteralExpressionNode) Expression() {

}

// UnaryExpressionNode: represents a prefix operation expression with one operand
// Example: -x, !flag
type UnaryExpressionNode struct {
	Operation lexer.Token    // The prefix operator token (- or !)
	Right     ExpressionNode // The operand expression
}

// UnaryExpressionNode.Literal(): string representation of the node.
// The printed form is fully parenthesized: (!(-a))
func (node *UnaryExpressionNode) Literal() string {
	return "(" + node.Operation.Literal + node.Right.Literal() + ")"
}

// UnaryExpressionNode.Statement(): every expression is also a statement
func (node *UnaryExpressionNode) Statement() {

}

// UnaryExpressionNode.Expression(): every expression node is a node
func (node *UnaryExpressionNode) Expression() {

}

// BinaryExpressionNode: represents a binary (infix) operation expression
// Example: 2 + 3, x * y, a < b, a == b
type BinaryExpressionNode struct {
	Operation lexer.Token    // The binary operator token (+ - * / < > == !=)
	Left      ExpressionNode // Left operand expression
	Right     ExpressionNode // Right operand expression
}

// BinaryExpressionNode.Literal(): string representation of the node.
// The printed form is fully parenthesized: (a + (b * c))
func (node *BinaryExpressionNode) Literal() string {
	return "(" + node.Left.Literal() + " " + node.Operation.Literal + " " + node.Right.Literal() + ")"
}

// BinaryExpressionNode.Statement(): every expression is also a statement
func (node *BinaryExpressionNode) Statement() {

}

// BinaryExpressionNode.Expression(): every expression node is a node
func (node *BinaryExpressionNode) Expression() {

}

// BlockStatementNode: represents a block of statements enclosed in braces
// Example: { stmt1; stmt2; stmt3; }
type BlockStatementNode struct {
	BraceToken lexer.Token     // The opening '{' token
	Statements []StatementNode // List of statements in the block, in source order
}

// BlockStatementNode.Literal(): string representation of the node
func (node *BlockStatementNode) Literal() string {
	str := "{ "
	for _, stmt := range node.Statements {
		str += stmt.Literal()
	}
	str += " }"
	return str
}

// BlockStatementNode.Statement(): every block is a statement
func (node *BlockStatementNode) Statement() {

}

// IfExpressionNode: represents an if-else conditional expression
// Example: if (x > 0) { a } else { b }
type IfExpressionNode struct {
	IfToken   lexer.Token         // The 'if' keyword token
	Condition ExpressionNode      // The condition expression to evaluate
	ThenBlock *BlockStatementNode // Block to evaluate if condition is truthy
	ElseBlock *BlockStatementNode // Block to evaluate otherwise (nil if absent)
}

// IfExpressionNode.Literal(): string representation of the node
func (node *IfExpressionNode) Literal() string {
	res := "if" + node.Condition.Literal() + " " + node.ThenBlock.Literal()
	if node.ElseBlock != nil {
		res += "else " + node.ElseBlock.Literal()
	}
	return res
}

// IfExpressionNode.Statement(): every expression is also a statement
func (node *IfExpressionNode) Statement() {

}

// IfExpressionNode.Expression(): every expression node is a node
func (node *IfExpressionNode) Expression() {

}

// FunctionLiteralNode: represents an anonymous function literal
// Example: fn(x, y) { x + y; }
type FunctionLiteralNode struct {
	FuncToken lexer.Token                 // The 'fn' keyword token
	Params    []*IdentifierExpressionNode // List of parameter identifiers
	Body      *BlockStatementNode         // The function body block
}

// FunctionLiteralNode.Literal(): string representation of the node
func (node *FunctionLiteralNode) Literal() string {
	params := ""
	for i, param := range node.Params {
		if i > 0 {
			params += ", "
		}
		params += param.Literal()
	}
	return node.FuncToken.Literal + "(" + params + ") " + node.Body.Literal()
}

// FunctionLiteralNode.Statement(): every expression is also a statement
func (node *FunctionLiteralNode) Statement() {

}

// FunctionLiteralNode.Expression(): every expression node is a node
func (node *FunctionLiteralNode) Expression() {

}

// CallExpressionNode: represents a function call expression
// Example: add(1, 2) or fn(x) { x; }(5)
type CallExpressionNode struct {
	ParenToken lexer.Token      // The '(' token opening the argument list
	Function   ExpressionNode   // The callee (identifier or function literal)
	Arguments  []ExpressionNode // List of argument expressions
}

// CallExpressionNode.Literal(): string representation of the node
func (node *CallExpressionNode) Literal() string {
	args := ""
	for i, arg := range node.Arguments {
		if i > 0 {
			args += ", "
		}
		args += arg.Literal()
	}
	return node.Function.Literal() + "(" + args + ")"
}

// CallExpressionNode.Statement(): every expression is also a statement
func (node *CallExpressionNode) Statement() {

}

// CallExpressionNode.Expression(): every expression node is a node
func (node *CallExpressionNode) Expression() {

}

// ArrayExpressionNode: represents an array literal expression
// Example: [1, 2, 3] or ["a", true, 2 + 2]
type ArrayExpressionNode struct {
	BracketToken lexer.Token      // The opening '[' token
	Elements     []ExpressionNode // List of element expressions
}

// ArrayExpressionNode.Literal(): string representation of the node
func (node *ArrayExpressionNode) Literal() string {
	res := "["
	for i, elem := range node.Elements {
		if i > 0 {
			res += ", "
		}
		res += elem.Literal()
	}
	res += "]"
	return res
}

// ArrayExpressionNode.Statement(): every expression is also a statement
func (node *ArrayExpressionNode) Statement() {

}

// ArrayExpressionNode.Expression(): every expression node is a node
func (node *ArrayExpressionNode) Expression() {

}

// AccessExpressionNode: represents array element access
// Example: arr[0], list[i + 1]
type AccessExpressionNode struct {
	BracketToken lexer.Token    // The '[' token opening the index
	Left         ExpressionNode // The array expression being accessed
	Index        ExpressionNode // The index expression
}

// AccessExpressionNode.Literal(): string representation of the node.
// The printed form is parenthesized: (arr[i])
func (node *AccessExpressionNode) Literal() string {
	return "(" + node.Left.Literal() + "[" + node.Index.Literal() + "])"
}

// AccessExpressionNode.Statement(): every expression is also a statement
func (node *AccessExpressionNode) Statement() {

}

// AccessExpressionNode.Expression(): every expression node is a node
func (node *AccessExpressionNode) Expression() {

}

// LetStatementNode: represents a variable binding statement
// Example: let x = 10;
type LetStatementNode struct {
	LetToken   lexer.Token              // The 'let' keyword token
	Identifier IdentifierExpressionNode // The name being bound
	Expr       ExpressionNode           // The bound expression
}

// LetStatementNode.Literal(): string representation of the node
func (node *LetStatementNode) Literal() string {
	return "let " + node.Identifier.Literal() + " = " + node.Expr.Literal() + ";"
}

// LetStatementNode.Statement(): every let binding is a statement
func (node *LetStatementNode) Statement() {

}

// ReturnStatementNode: represents a return statement in a function
// Example: return x + 5;
type ReturnStatementNode struct {
	ReturnToken lexer.Token    // The 'return' keyword token
	Expr        ExpressionNode // The expression to return
}

// ReturnStatementNode.Literal(): string representation of the node
func (node *ReturnStatementNode) Literal() string {
	return "return " + node.Expr.Literal() + ";"
}

// ReturnStatementNode.Statement(): every return is a statement
func (node *ReturnStatementNode) Statement() {

}
