package lexer

import (
	"fmt"
)

type TokenKind int

const (
	TokenKindEOF TokenKind = iota

	TokenKindBang
	TokenKindDollar
	TokenKindOpeningParenthesis
	TokenKindClosingParenthesis
	TokenKindSpread
	TokenKindColon
	TokenKindEquals
	TokenKindAt
	TokenKindOpeningBracket
	TokenKindClosingBracket
	TokenKindOpeningBrace
	TokenKindPipe
	TokenKindClosingBrace

	TokenKindName
	// TokenKindVariable is reserved for the grammar on top of this lexer. No reader produces it, variables appear
	// as a TokenKindDollar followed by a TokenKindName.
	TokenKindVariable
	TokenKindInt
	TokenKindFloat
	TokenKindString
)

func (k TokenKind) String() string {
	switch k {
	case TokenKindEOF:
		return "TokenKindEOF"
	case TokenKindBang:
		return "TokenKindBang"
	case TokenKindDollar:
		return "TokenKindDollar"
	case TokenKindOpeningParenthesis:
		return "TokenKindOpeningParenthesis"
	case TokenKindClosingParenthesis:
		return "TokenKindClosingParenthesis"
	case TokenKindSpread:
		return "TokenKindSpread"
	case TokenKindColon:
		return "TokenKindColon"
	case TokenKindEquals:
		return "TokenKindEquals"
	case TokenKindAt:
		return "TokenKindAt"
	case TokenKindOpeningBracket:
		return "TokenKindOpeningBracket"
	case TokenKindClosingBracket:
		return "TokenKindClosingBracket"
	case TokenKindOpeningBrace:
		return "TokenKindOpeningBrace"
	case TokenKindPipe:
		return "TokenKindPipe"
	case TokenKindClosingBrace:
		return "TokenKindClosingBrace"
	case TokenKindName:
		return "TokenKindName"
	case TokenKindVariable:
		return "TokenKindVariable"
	case TokenKindInt:
		return "TokenKindInt"
	case TokenKindFloat:
		return "TokenKindFloat"
	case TokenKindString:
		return "TokenKindString"
	}
	return fmt.Sprintf("!! INVALID TOKEN KIND %d !!", k)
}

// Description returns the fixed human-readable form of the token kind used in diagnostic messages.
func (k TokenKind) Description() string {
	switch k {
	case TokenKindEOF:
		return "EOF"
	case TokenKindBang:
		return "!"
	case TokenKindDollar:
		return "$"
	case TokenKindOpeningParenthesis:
		return "("
	case TokenKindClosingParenthesis:
		return ")"
	case TokenKindSpread:
		return "..."
	case TokenKindColon:
		return ":"
	case TokenKindEquals:
		return "="
	case TokenKindAt:
		return "@"
	case TokenKindOpeningBracket:
		return "["
	case TokenKindClosingBracket:
		return "]"
	case TokenKindOpeningBrace:
		return "{"
	case TokenKindPipe:
		return "|"
	case TokenKindClosingBrace:
		return "}"
	case TokenKindName:
		return "Name"
	case TokenKindVariable:
		return "Variable"
	case TokenKindInt:
		return "Int"
	case TokenKindFloat:
		return "Float"
	case TokenKindString:
		return "String"
	}
	return fmt.Sprintf("!! INVALID TOKEN KIND %d !!", k)
}

// Token is a classified span of the source. Start is inclusive, End exclusive. Value is only set for the kinds
// Name, Int, Float and String; for strings it contains the unescaped content without the surrounding quotes.
type Token struct {
	Kind  TokenKind
	Start int
	End   int
	Value string
}

func (t Token) String() string {
	if t.Value != "" {
		return fmt.Sprintf("%s %q (%d:%d)", t.Kind, t.Value, t.Start, t.End)
	}
	return fmt.Sprintf("%s (%d:%d)", t.Kind, t.Start, t.End)
}
