/*
File: go-monkey/lexer/lexer_utils.go
Author: Akash Maji
Contact: akashmaji(@iisc.ac.in)
*/
package lexer

// isWhitespace checks if the given byte is a whitespace character.
// Whitespace in Monkey is space, tab, newline, and carriage return.
//
// Parameters:
//   - curr: The byte to check
//
// Returns:
//   - bool: true if curr is whitespace, false otherwise
func isWhitespace(curr byte) bool {
	return curr == ' ' || curr == '\t' || curr == '\n' || curr == '\r'
}

// isNumeric checks if the given byte is an ASCII decimal digit (0-9).
// This is used in the hot path for number scanning.
//
// Parameters:
//   - curr: The byte to check
//
// Returns:
//   - bool: true if curr is a digit, false otherwise
func isNumeric(curr byte) bool {
	return curr >= '0' && curr <= '9'
}

// isAlpha checks if the given byte is an ASCII letter (a-z, A-Z).
// Identifiers in Monkey are runs of ASCII letters only; digits and
// underscores are not part of identifiers.
//
// Parameters:
//   - curr: The byte to check
//
// Returns:
//   - bool: true if curr is an ASCII letter, false otherwise
func isAlpha(curr byte) bool {
	return (curr >= 'a' && curr <= 'z') || (curr >= 'A' && curr <= 'Z')
}

// readStringLiteral reads and tokenizes a string literal from the source.
// String literals are enclosed in double quotes ("). There are no escape
// sequences: every byte between the opening and closing quote is taken
// verbatim. The closing quote is consumed but not part of the lexeme.
// An unterminated string consumes everything up to the end of the input.
//
// Parameters:
//   - lex: Pointer to the lexer instance, positioned on the opening quote
//
// Returns:
//   - Token: A STRING_LIT token whose literal is the string content
//
// Example:
//
//	Source: "hello world"
//	Returns: Token{Type: STRING_LIT, Literal: "hello world"}
func readStringLiteral(lex *Lexer) Token {
	line, column := lex.Line, lex.Column

	// Skip the opening quote
	lex.Advance()

	start := lex.Position
	for lex.Current != '"' && lex.Current != 0 {
		// Keep line tracking correct across newlines inside the string
		if lex.Current == '\n' {
			lex.Line++
			lex.Column = 0
		}
		lex.Advance()
	}
	literal := lex.Src[start:lex.Position]

	// Consume the closing quote if the string is terminated
	if lex.Current == '"' {
		lex.Advance()
	}

	return NewTokenWithMetadata(STRING_LIT, literal, line, column)
}

// readNumber reads and tokenizes an integer literal from the source.
// An integer literal is a maximal run of ASCII decimal digits.
//
// Parameters:
//   - lex: Pointer to the lexer instance, positioned on the first digit
//
// Returns:
//   - Token: An INT_LIT token with the digit run as its literal
//
// Example:
//
//	Source: 1234
//	Returns: Token{Type: INT_LIT, Literal: "1234"}
func readNumber(lex *Lexer) Token {
	line, column := lex.Line, lex.Column

	start := lex.Position
	for isNumeric(lex.Current) {
		lex.Advance()
	}
	literal := lex.Src[start:lex.Position]

	return NewTokenWithMetadata(INT_LIT, literal, line, column)
}

// readIdentifier reads and tokenizes an identifier or keyword from the
// source. An identifier is a maximal run of ASCII letters. If the lexeme
// matches a reserved word it becomes the corresponding keyword token,
// otherwise an identifier token.
//
// Parameters:
//   - lex: Pointer to the lexer instance, positioned on the first letter
//
// Returns:
//   - Token: A keyword token or an IDENTIFIER_ID token
//
// Example:
//
//	Source: return
//	Returns: Token{Type: RETURN_KEY, Literal: "return"}
//	Source: counter
//	Returns: Token{Type: IDENTIFIER_ID, Literal: "counter"}
func readIdentifier(lex *Lexer) Token {
	line, column := lex.Line, lex.Column

	start := lex.Position
	for isAlpha(lex.Current) {
		lex.Advance()
	}
	literal := lex.Src[start:lex.Position]

	return NewTokenWithMetadata(lookupIdent(literal), literal, line, column)
}
