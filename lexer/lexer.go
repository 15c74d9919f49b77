package lexer

import (
	"fmt"
	"github.com/hauke96/sigolo/v2"
	"unicode/utf16"
)

// Lexer is a stateful token source over a single Source. The only mutable state is the cursor, which is the end
// offset of the most recently returned token. A Lexer must not be shared between goroutines, but independent Lexer
// instances over the same Source are fine since the Source is read-only.
type Lexer struct {
	source           *Source
	previousPosition int
}

func NewLexer(source *Source) *Lexer {
	return &Lexer{
		source: source,
	}
}

// Next returns the token following the previously returned one. At the end of the input every further call returns
// an EOF token at the terminal offset. On a syntax error the cursor is left unchanged and lexing must not continue.
func (l *Lexer) Next() (Token, error) {
	return l.NextAt(l.previousPosition)
}

// NextAt resets the cursor to the given offset and returns the token found at or after it. Lexing is deterministic,
// so re-reading from a previously seen offset yields the same token again.
func (l *Lexer) NextAt(position int) (Token, error) {
	if position < 0 {
		position = 0
	}
	if position > l.source.Length() {
		position = l.source.Length()
	}

	token, err := readToken(l.source, position)
	if err != nil {
		return Token{}, err
	}

	l.previousPosition = token.End
	l.tracef("Found token %s", token)
	return token, nil
}

/*
Approach:

Skip all ignored characters (whitespace, commas and comments), then look at the next character and dispatch to the
reader responsible for it. Each reader takes care of the offsets itself and either returns a complete token or a
SyntaxError pointing at the exact offending character.
*/
func readToken(source *Source, fromPosition int) (Token, error) {
	position := skipIgnored(source, fromPosition)
	if position >= source.Length() {
		return Token{Kind: TokenKindEOF, Start: position, End: position}, nil
	}

	char := source.charAt(position)

	// Raw control characters are never valid at a token start. Tab, linefeed and carriage return were already
	// skipped as whitespace above.
	if char < 0x20 && char != '\t' && char != '\n' && char != '\r' {
		return Token{}, newSyntaxError(source, position, fmt.Sprintf("Invalid character %s.", printableChar(char)))
	}

	switch char {
	case '!':
		return singleCharToken(TokenKindBang, position), nil
	case '$':
		return singleCharToken(TokenKindDollar, position), nil
	case '(':
		return singleCharToken(TokenKindOpeningParenthesis, position), nil
	case ')':
		return singleCharToken(TokenKindClosingParenthesis, position), nil
	case '.':
		return readSpread(source, position)
	case ':':
		return singleCharToken(TokenKindColon, position), nil
	case '=':
		return singleCharToken(TokenKindEquals, position), nil
	case '@':
		return singleCharToken(TokenKindAt, position), nil
	case '[':
		return singleCharToken(TokenKindOpeningBracket, position), nil
	case ']':
		return singleCharToken(TokenKindClosingBracket, position), nil
	case '{':
		return singleCharToken(TokenKindOpeningBrace, position), nil
	case '|':
		return singleCharToken(TokenKindPipe, position), nil
	case '}':
		return singleCharToken(TokenKindClosingBrace, position), nil
	case '"':
		return readString(source, position)
	}

	if isNameStart(char) {
		return readName(source, position), nil
	}
	if char == '-' || isDigit(char) {
		return readNumber(source, position)
	}

	return Token{}, newSyntaxError(source, position, fmt.Sprintf("Unexpected character %s.", printableChar(char)))
}

// skipIgnored advances over all trivia: tab, space, linefeed, carriage return, comma and the byte-order-mark, as
// well as comments starting with '#' up to (but not including) the next line terminator. Returns the offset of the
// first non-trivia character or the end of the input.
func skipIgnored(source *Source, fromPosition int) int {
	position := fromPosition

	for position < source.Length() {
		char := source.charAt(position)
		if char == '\t' || char == ' ' || char == '\n' || char == '\r' || char == ',' || char == '\ufeff' {
			position++
		} else if char == '#' {
			position++
			for position < source.Length() && !isLineTerminator(source.charAt(position)) {
				position++
			}
		} else {
			break
		}
	}

	return position
}

func singleCharToken(tokenKind TokenKind, position int) Token {
	return Token{Kind: tokenKind, Start: position, End: position + 1}
}

// readSpread reads the three-character operator "..." starting at the given '.' character.
func readSpread(source *Source, position int) (Token, error) {
	for i := 1; i <= 2; i++ {
		char := source.charAt(position + i)
		if char != '.' {
			return Token{}, newSyntaxError(source, position+i, fmt.Sprintf("Unexpected character %s.", printableChar(char)))
		}
	}
	return Token{Kind: TokenKindSpread, Start: position, End: position + 3}, nil
}

// readName reads a name matching [_A-Za-z][_0-9A-Za-z]* starting at the given offset. The caller already made sure
// the first character is a valid name start, so this cannot fail.
func readName(source *Source, start int) Token {
	position := start + 1
	for position < source.Length() && isNamePart(source.charAt(position)) {
		position++
	}
	return Token{
		Kind:  TokenKindName,
		Start: start,
		End:   position,
		Value: source.Text(start, position),
	}
}

// readNumber reads an int or float matching -?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)? starting at the given
// '-' or digit.
func readNumber(source *Source, start int) (Token, error) {
	position := start
	char := source.charAt(position)
	isFloat := false

	if char == '-' {
		position++
		char = source.charAt(position)
	}

	if char == '0' {
		position++
		char = source.charAt(position)
		// A leading zero must stand alone: "01" is no valid number. A second zero ends the token instead, it
		// starts a new "0" token of its own.
		if char >= '1' && char <= '9' {
			return Token{}, newSyntaxError(source, position, fmt.Sprintf("Invalid number, unexpected digit after 0: %s.", printableChar(char)))
		}
	} else {
		var err error
		position, err = readDigits(source, position)
		if err != nil {
			return Token{}, err
		}
		char = source.charAt(position)
	}

	if char == '.' {
		isFloat = true
		position++

		var err error
		position, err = readDigits(source, position)
		if err != nil {
			return Token{}, err
		}
		char = source.charAt(position)
	}

	if char == 'e' || char == 'E' {
		isFloat = true
		position++
		char = source.charAt(position)
		if char == '+' || char == '-' {
			position++
		}

		var err error
		position, err = readDigits(source, position)
		if err != nil {
			return Token{}, err
		}
	}

	kind := TokenKindInt
	if isFloat {
		kind = TokenKindFloat
	}
	return Token{
		Kind:  kind,
		Start: start,
		End:   position,
		Value: source.Text(start, position),
	}, nil
}

// readDigits consumes a non-empty run of digits and returns the offset behind it.
func readDigits(source *Source, fromPosition int) (int, error) {
	position := fromPosition
	if !isDigit(source.charAt(position)) {
		return 0, newSyntaxError(source, position, fmt.Sprintf("Invalid number, expected digit but got: %s.", printableChar(source.charAt(position))))
	}
	for isDigit(source.charAt(position)) {
		position++
	}
	return position, nil
}

// readString reads a quoted string starting at the given '"'. The token value is the unescaped content without the
// surrounding quotes. The value is collected as UTF-16 code units and decoded once at the end, so two \u escapes
// forming a surrogate pair combine into a single code point.
func readString(source *Source, start int) (Token, error) {
	position := start + 1
	chunkStart := position
	var value []uint16

	for position < source.Length() {
		char := source.charAt(position)
		if char == '"' || isLineTerminator(char) {
			break
		}
		if char < 0x20 && char != '\t' {
			return Token{}, newSyntaxError(source, position, fmt.Sprintf("Invalid character within String: %s.", printableChar(char)))
		}

		position++
		if char != '\\' {
			continue
		}

		// Escape sequence: the raw chunk before the backslash is copied as-is, the escape contributes its decoded
		// code unit.
		value = append(value, source.body[chunkStart:position-1]...)
		char = source.charAt(position)
		switch char {
		case '"':
			value = append(value, '"')
		case '/':
			value = append(value, '/')
		case '\\':
			value = append(value, '\\')
		case 'b':
			value = append(value, '\b')
		case 'f':
			value = append(value, '\f')
		case 'n':
			value = append(value, '\n')
		case 'r':
			value = append(value, '\r')
		case 't':
			value = append(value, '\t')
		case 'u':
			charCode := hexValue(source.charAt(position+1))<<12 |
				hexValue(source.charAt(position+2))<<8 |
				hexValue(source.charAt(position+3))<<4 |
				hexValue(source.charAt(position+4))
			if charCode < 0 {
				return Token{}, newSyntaxError(source, position, fmt.Sprintf("Invalid character escape sequence: \\u%s.", textUpTo(source, position+1, position+5)))
			}
			value = append(value, uint16(charCode))
			position += 4
		default:
			return Token{}, newSyntaxError(source, position, fmt.Sprintf("Invalid character escape sequence: \\%s.", string(char)))
		}
		position++
		chunkStart = position
	}

	if source.charAt(position) != '"' {
		return Token{}, newSyntaxError(source, position, "Unterminated string.")
	}

	value = append(value, source.body[chunkStart:position]...)
	return Token{
		Kind:  TokenKindString,
		Start: start,
		End:   position + 1,
		Value: string(utf16.Decode(value)),
	}, nil
}

// textUpTo returns the text of [start, end), clamped to the length of the source.
func textUpTo(source *Source, start int, end int) string {
	if end > source.Length() {
		end = source.Length()
	}
	if start > end {
		start = end
	}
	return source.Text(start, end)
}

func (l *Lexer) tracef(format string, args ...any) {
	formattedMessage := format
	if len(args) > 0 {
		formattedMessage = fmt.Sprintf(format, args...)
	}
	sigolo.Traceb(1, "[%d] %s", l.previousPosition, formattedMessage)
}
