package lexer

import (
	"fmt"
)

func isDigit(char rune) bool {
	return char >= '0' && char <= '9'
}

func isNameStart(char rune) bool {
	return char == '_' || (char >= 'A' && char <= 'Z') || (char >= 'a' && char <= 'z')
}

func isNamePart(char rune) bool {
	return isNameStart(char) || isDigit(char)
}

func isLineTerminator(char rune) bool {
	return char == '\n' || char == '\r' || char == '\u2028' || char == '\u2029'
}

// hexValue returns the numeric value of a hex digit (case-insensitive) or -1 for any other rune.
func hexValue(char rune) int {
	switch {
	case char >= '0' && char <= '9':
		return int(char - '0')
	case char >= 'A' && char <= 'F':
		return int(char-'A') + 10
	case char >= 'a' && char <= 'f':
		return int(char-'a') + 10
	}
	return -1
}

var escapedChars = map[rune]string{
	'"':  `\"`,
	'/':  `\/`,
	'\\': `\\`,
	'\b': `\b`,
	'\f': `\f`,
	'\n': `\n`,
	'\r': `\r`,
	'\t': `\t`,
}

// printableChar renders a code point for diagnostic messages: the end-of-input sentinel as "EOF", special characters
// as their escape mnemonic, printable ASCII as the quoted literal character and everything else as a zero-padded
// uppercase \uXXXX escape.
func printableChar(char rune) string {
	if char == eof {
		return `"EOF"`
	}
	if escaped, ok := escapedChars[char]; ok {
		return `"` + escaped + `"`
	}
	if char >= 0x20 && char <= 0x7e {
		return fmt.Sprintf(`"%c"`, char)
	}
	return fmt.Sprintf(`"\u%04X"`, char)
}
