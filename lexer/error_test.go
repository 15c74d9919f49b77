package lexer

import (
	"fmt"
	"gql/util"
	"strings"
	"testing"
)

func TestSyntaxError_rendersCaretUnderColumn(t *testing.T) {
	// Act
	_, err := lexOne(t, "?")

	// Assert
	util.AssertError(t, "Syntax Error GraphQL (1:1) Unexpected character \"?\".\n"+
		"\n"+
		"1: ?\n"+
		"   ^\n", err)
}

func TestSyntaxError_usesSourceName(t *testing.T) {
	// Arrange
	lexer := NewLexer(NewSource("?", "MyQuery.graphql"))

	// Act
	_, err := lexer.Next()

	// Assert
	util.AssertError(t, "Syntax Error MyQuery.graphql (1:1) Unexpected character \"?\".\n"+
		"\n"+
		"1: ?\n"+
		"   ^\n", err)
}

func TestSyntaxError_rendersIncompleteSpread(t *testing.T) {
	// Act
	_, err := lexOne(t, "..")

	// Assert
	util.AssertError(t, "Syntax Error GraphQL (1:3) Unexpected character \"EOF\".\n"+
		"\n"+
		"1: ..\n"+
		"     ^\n", err)
}

func TestSyntaxError_rendersFollowingLineOfUnterminatedString(t *testing.T) {
	// Act
	_, err := lexOne(t, "\"multi\nline\"")

	// Assert
	util.AssertError(t, "Syntax Error GraphQL (1:7) Unterminated string.\n"+
		"\n"+
		"1: \"multi\n"+
		"         ^\n"+
		"2: line\"\n", err)
}

func TestSyntaxError_rendersSurroundingLines(t *testing.T) {
	// Arrange
	lexer := NewLexer(NewSource("{\n  ?\n}", ""))

	// Act
	token, err := lexer.Next()
	util.AssertNil(t, err)
	util.AssertEqual(t, TokenKindOpeningBrace, token.Kind)
	_, err = lexer.Next()

	// Assert
	util.AssertError(t, "Syntax Error GraphQL (2:3) Unexpected character \"?\".\n"+
		"\n"+
		"1: {\n"+
		"2:   ?\n"+
		"     ^\n"+
		"3: }\n", err)
}

func TestSyntaxError_padsLineNumbersToEqualWidth(t *testing.T) {
	// Arrange: the error sits on line 9, so the prefix of the following line 10 is one character wider.
	lexer := NewLexer(NewSource(strings.Repeat("\n", 8)+"?\nfoo", ""))

	// Act
	_, err := lexer.Next()

	// Assert
	util.AssertError(t, "Syntax Error GraphQL (9:1) Unexpected character \"?\".\n"+
		"\n"+
		" 8: \n"+
		" 9: ?\n"+
		"    ^\n"+
		"10: foo\n", err)
}

func TestSyntaxError_carriesPositionAndDescription(t *testing.T) {
	// Act
	_, err := lexOne(t, "ab ?")

	// Assert
	syntaxError, ok := err.(*SyntaxError)
	util.AssertTrue(t, ok)
	util.AssertEqual(t, 3, syntaxError.Position)
	util.AssertEqual(t, "Unexpected character \"?\".", syntaxError.Description)
}

func TestSyntaxError_formatVerbs(t *testing.T) {
	// Act
	_, err := lexOne(t, "?")

	// Assert
	syntaxError := err.(*SyntaxError)
	util.AssertEqual(t, syntaxError.Message, fmt.Sprintf("%s", syntaxError))
	// The %v verb appends the stack trace of the error creation.
	util.AssertTrue(t, strings.HasPrefix(fmt.Sprintf("%v", syntaxError), syntaxError.Message+"\n"))
	util.AssertTrue(t, strings.Contains(fmt.Sprintf("%v", syntaxError), "gql/lexer."))
}
