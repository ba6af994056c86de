/*
File    : go-monkey/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParser_Parse_OneNumberExpression(t *testing.T) {

	src := `12`
	par := NewParser(src)
	root := par.Parse()
	// root should not be nil
	assert.NotNil(t, root)
	assert.False(t, par.HasErrors())

	// must: root has 1 statement
	assert.Equal(t, 1, len(root.Statements))

	exp, can := root.Statements[0].(*IntegerLiteralExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "12", exp.Literal())
	const expectedVal int64 = 12
	assert.Equal(t, expectedVal, exp.Value)
}

func TestParser_Parse_BooleanAndStringLiterals(t *testing.T) {

	par := NewParser(`true; false; "hello world";`)
	root := par.Parse()
	assert.False(t, par.HasErrors())
	assert.Equal(t, 3, len(root.Statements))

	boolExp, can := root.Statements[0].(*BooleanLiteralExpressionNode)
	assert.True(t, can)
	assert.True(t, boolExp.Value)

	boolExp, can = root.Statements[1].(*BooleanLiteralExpressionNode)
	assert.True(t, can)
	assert.False(t, boolExp.Value)

	strExp, can := root.Statements[2].(*StringLiteralExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "hello world", strExp.Value)
	assert.Equal(t, `"hello world"`, strExp.Literal())
}

func TestParser_Parse_AddExpression(t *testing.T) {

	src := `12 + 13`
	par := NewParser(src)
	root := par.Parse()
	// root should not be nil
	assert.NotNil(t, root)
	assert.False(t, par.HasErrors())

	// must: root has 1 statement
	assert.Equal(t, 1, len(root.Statements))

	exp, can := root.Statements[0].(*BinaryExpressionNode)
	assert.True(t, can)
	left, can := exp.Left.(*IntegerLiteralExpressionNode)
	assert.True(t, can)
	right, can := exp.Right.(*IntegerLiteralExpressionNode)
	assert.True(t, can)

	assert.Equal(t, int64(12), left.Value)
	assert.Equal(t, int64(13), right.Value)
	assert.Equal(t, "(12 + 13)", exp.Literal())
}

// TestParser_Parse_OperatorPrecedence verifies that the Pratt parser
// groups operators correctly by comparing against the canonical
// fully-parenthesized printed form.
func TestParser_Parse_OperatorPrecedence(t *testing.T) {

	tests := []struct {
		input    string
		expected string
	}{
		{"-a * b", "((-a) * b)"},
		{"!-a", "(!(-a))"},
		{"a + b + c", "((a + b) + c)"},
		{"a + b - c", "((a + b) - c)"},
		{"a * b * c", "((a * b) * c)"},
		{"a * b / c", "((a * b) / c)"},
		{"a + b / c", "(a + (b / c))"},
		{"a + b * c + d / e - f", "(((a + (b * c)) + (d / e)) - f)"},
		{"a + b * c - d / e - f", "(((a + (b * c)) - (d / e)) - f)"},
		{"3 + 4; -5 * 5", "(3 + 4)((-5) * 5)"},
		{"5 > 4 == 3 < 4", "((5 > 4) == (3 < 4))"},
		{"5 < 4 != 3 > 4", "((5 < 4) != (3 > 4))"},
		{"3 + 4 * 5 == 3 * 1 + 4 * 5", "((3 + (4 * 5)) == ((3 * 1) + (4 * 5)))"},
		{"true", "true"},
		{"false", "false"},
		{"3 > 5 == false", "((3 > 5) == false)"},
		{"1 + (2 + 3) + 4", "((1 + (2 + 3)) + 4)"},
		{"(5 + 5) * 2", "((5 + 5) * 2)"},
		{"2 / (5 + 5)", "(2 / (5 + 5))"},
		{"-(5 + 5)", "(-(5 + 5))"},
		{"!(true == true)", "(!(true == true))"},
		{"a + add(b * c) + d", "((a + add((b * c))) + d)"},
		{"add(a, b, add(6 * 7))", "add(a, b, add((6 * 7)))"},
		{"add(a + b + c * d / f + g)", "add((((a + b) + ((c * d) / f)) + g))"},
		{"a * [1, 2, 3, 4][b * c] * d", "((a * ([1, 2, 3, 4][(b * c)])) * d)"},
		{"add(a * b[2], b[1], 2 * [1, 2][1])", "add((a * (b[2])), (b[1]), (2 * ([1, 2][1])))"},
	}

	for _, tt := range tests {
		par := NewParser(tt.input)
		root := par.Parse()
		assert.False(t, par.HasErrors(), "input: %s, errors: %v", tt.input, par.GetErrors())
		assert.Equal(t, tt.expected, root.Literal(), "input: %s", tt.input)
	}
}

func TestParser_Parse_LetStatements(t *testing.T) {

	tests := []struct {
		input        string
		expectedName string
		expectedExpr string
	}{
		{"let x = 5;", "x", "5"},
		{"let y = true;", "y", "true"},
		{"let foobar = y;", "foobar", "y"},
		{"let total = a + b * c;", "total", "(a + (b * c))"},
	}

	for _, tt := range tests {
		par := NewParser(tt.input)
		root := par.Parse()
		assert.False(t, par.HasErrors(), "input: %s, errors: %v", tt.input, par.GetErrors())
		assert.Equal(t, 1, len(root.Statements))

		stmt, can := root.Statements[0].(*LetStatementNode)
		assert.True(t, can)
		assert.Equal(t, tt.expectedName, stmt.Identifier.Name)
		assert.Equal(t, tt.expectedExpr, stmt.Expr.Literal())
		assert.Equal(t, "let "+tt.expectedName+" = "+tt.expectedExpr+";", stmt.Literal())
	}
}

func TestParser_Parse_ReturnStatements(t *testing.T) {

	tests := []struct {
		input        string
		expectedExpr string
	}{
		{"return 5;", "5"},
		{"return true;", "true"},
		{"return a + b;", "(a + b)"},
	}

	for _, tt := range tests {
		par := NewParser(tt.input)
		root := par.Parse()
		assert.False(t, par.HasErrors(), "input: %s, errors: %v", tt.input, par.GetErrors())
		assert.Equal(t, 1, len(root.Statements))

		stmt, can := root.Statements[0].(*ReturnStatementNode)
		assert.True(t, can)
		assert.Equal(t, tt.expectedExpr, stmt.Expr.Literal())
		assert.Equal(t, "return "+tt.expectedExpr+";", stmt.Literal())
	}
}

func TestParser_Parse_IfExpression(t *testing.T) {

	par := NewParser(`if (x < y) { x }`)
	root := par.Parse()
	assert.False(t, par.HasErrors(), "errors: %v", par.GetErrors())
	assert.Equal(t, 1, len(root.Statements))

	exp, can := root.Statements[0].(*IfExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "(x < y)", exp.Condition.Literal())
	assert.Equal(t, 1, len(exp.ThenBlock.Statements))
	assert.Nil(t, exp.ElseBlock)
	assert.Equal(t, "if(x < y) { x }", exp.Literal())
}

func TestParser_Parse_IfElseExpression(t *testing.T) {

	par := NewParser(`if (x < y) { x } else { y }`)
	root := par.Parse()
	assert.False(t, par.HasErrors(), "errors: %v", par.GetErrors())
	assert.Equal(t, 1, len(root.Statements))

	exp, can := root.Statements[0].(*IfExpressionNode)
	assert.True(t, can)
	assert.NotNil(t, exp.ElseBlock)
	assert.Equal(t, 1, len(exp.ElseBlock.Statements))
	assert.Equal(t, "if(x < y) { x }else { y }", exp.Literal())
}

func TestParser_Parse_FunctionLiteral(t *testing.T) {

	par := NewParser(`fn(x, y) { x + y; }`)
	root := par.Parse()
	assert.False(t, par.HasErrors(), "errors: %v", par.GetErrors())
	assert.Equal(t, 1, len(root.Statements))

	fun, can := root.Statements[0].(*FunctionLiteralNode)
	assert.True(t, can)
	assert.Equal(t, 2, len(fun.Params))
	assert.Equal(t, "x", fun.Params[0].Name)
	assert.Equal(t, "y", fun.Params[1].Name)
	assert.Equal(t, 1, len(fun.Body.Statements))
	assert.Equal(t, "fn(x, y) { (x + y) }", fun.Literal())
}

func TestParser_Parse_FunctionParams(t *testing.T) {

	tests := []struct {
		input    string
		expected []string
	}{
		{"fn() {}", []string{}},
		{"fn(x) {}", []string{"x"}},
		{"fn(x, y, z) {}", []string{"x", "y", "z"}},
	}

	for _, tt := range tests {
		par := NewParser(tt.input)
		root := par.Parse()
		assert.False(t, par.HasErrors(), "input: %s, errors: %v", tt.input, par.GetErrors())

		fun, can := root.Statements[0].(*FunctionLiteralNode)
		assert.True(t, can)
		assert.Equal(t, len(tt.expected), len(fun.Params))
		for i, name := range tt.expected {
			assert.Equal(t, name, fun.Params[i].Name)
		}
	}
}

func TestParser_Parse_CallExpression(t *testing.T) {

	par := NewParser(`add(1, 2 * 3, 4 + 5)`)
	root := par.Parse()
	assert.False(t, par.HasErrors(), "errors: %v", par.GetErrors())
	assert.Equal(t, 1, len(root.Statements))

	call, can := root.Statements[0].(*CallExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "add", call.Function.Literal())
	assert.Equal(t, 3, len(call.Arguments))
	assert.Equal(t, "1", call.Arguments[0].Literal())
	assert.Equal(t, "(2 * 3)", call.Arguments[1].Literal())
	assert.Equal(t, "(4 + 5)", call.Arguments[2].Literal())
}

func TestParser_Parse_ArrayLiteral(t *testing.T) {

	par := NewParser(`[1, 2 * 2, "foo", true]`)
	root := par.Parse()
	assert.False(t, par.HasErrors(), "errors: %v", par.GetErrors())

	arr, can := root.Statements[0].(*ArrayExpressionNode)
	assert.True(t, can)
	assert.Equal(t, 4, len(arr.Elements))
	assert.Equal(t, `[1, (2 * 2), "foo", true]`, arr.Literal())

	// empty array literal
	par = NewParser(`[]`)
	root = par.Parse()
	assert.False(t, par.HasErrors())
	arr, can = root.Statements[0].(*ArrayExpressionNode)
	assert.True(t, can)
	assert.Equal(t, 0, len(arr.Elements))
}

func TestParser_Parse_AccessExpression(t *testing.T) {

	par := NewParser(`arr[i + 1]`)
	root := par.Parse()
	assert.False(t, par.HasErrors(), "errors: %v", par.GetErrors())

	acc, can := root.Statements[0].(*AccessExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "arr", acc.Left.Literal())
	assert.Equal(t, "(i + 1)", acc.Index.Literal())
	assert.Equal(t, "(arr[(i + 1)])", acc.Literal())
}

// TestParser_Parse_PinnedErrors verifies the exact error strings for the
// failure cases whose wording is part of the parser's contract.
func TestParser_Parse_PinnedErrors(t *testing.T) {

	tests := []struct {
		input    string
		expected string
	}{
		{"@", "no prefix parse fn for '@' found"},
		{"5 +;", "no prefix parse fn for ';' found"},
		{"(1 + 2", "unmatched '(' in group expression"},
		{"add(1, 2", "malformed function call missing ')'"},
	}

	for _, tt := range tests {
		par := NewParser(tt.input)
		root := par.Parse()
		assert.True(t, par.HasErrors(), "input: %s", tt.input)
		assert.Contains(t, par.GetErrors(), tt.expected, "input: %s", tt.input)
		// the program carries its errors too
		assert.Equal(t, par.GetErrors(), root.Errors)
	}
}

// TestParser_Parse_ErrorRecovery verifies the synchronization rule: a
// broken statement records one error and parsing resumes at the next
// statement boundary, so the rest of the input still parses.
func TestParser_Parse_ErrorRecovery(t *testing.T) {

	par := NewParser(`let = 5; let y = 10;`)
	root := par.Parse()

	assert.Equal(t, 1, len(par.GetErrors()))
	assert.Equal(t, 1, len(root.Statements))

	stmt, can := root.Statements[0].(*LetStatementNode)
	assert.True(t, can)
	assert.Equal(t, "y", stmt.Identifier.Name)

	// two broken statements, two errors, the good one in between survives
	par = NewParser(`let 5; let z = 1; return ;`)
	root = par.Parse()
	assert.Equal(t, 2, len(par.GetErrors()))
	assert.Equal(t, 1, len(root.Statements))
}

// TestParser_Parse_ErrorsEmptyOnCleanParse verifies the invariant that
// Errors is empty iff every token was consumed into a well-formed AST.
func TestParser_Parse_ErrorsEmptyOnCleanParse(t *testing.T) {

	par := NewParser(`let a = [1, 2]; if (a[0] > 1) { a } else { [] }`)
	root := par.Parse()
	assert.False(t, par.HasErrors(), "errors: %v", par.GetErrors())
	assert.Equal(t, 0, len(root.Errors))
}

// TestParser_Parse_CanonicalFormRoundTrip verifies that parsing the
// canonical printed form of an expression yields the same AST again
// (compared through the printed form, which is injective on these nodes).
func TestParser_Parse_CanonicalFormRoundTrip(t *testing.T) {

	inputs := []string{
		"a + b * c - d / e - f",
		"-a * b",
		"!-a",
		"add(a, b, add(6 * 7))",
		`let x = 1 + 2 * 3;`,
		`return fn(x) { x };`,
		`[1, 2, "three"][2]`,
		`if (a < b) { a } else { b }`,
	}

	for _, input := range inputs {
		first := NewParser(input).Parse()
		par := NewParser(first.Literal())
		second := par.Parse()
		assert.False(t, par.HasErrors(), "printed form: %s, errors: %v", first.Literal(), par.GetErrors())
		assert.Equal(t, first.Literal(), second.Literal(), "input: %s", input)
	}
}
