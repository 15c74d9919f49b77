package lexer

import (
	"unicode/utf16"
)

const eof rune = -1

// Source is an immutable wrapper around the text of a query document. The body is held as UTF-16 code units, so all
// offsets (token boundaries, error positions) count code units and a character outside the Basic Multilingual Plane
// occupies two offsets. The name is only used in diagnostic messages and defaults to "GraphQL".
type Source struct {
	body []uint16
	name string
}

func NewSource(body string, name string) *Source {
	if name == "" {
		name = "GraphQL"
	}
	return &Source{
		body: utf16.Encode([]rune(body)),
		name: name,
	}
}

func (s *Source) Name() string {
	return s.name
}

func (s *Source) Length() int {
	return len(s.body)
}

// Text returns the substring covering the half-open code-unit range [start, end). Surrogate pairs within the range
// combine back into their code point.
func (s *Source) Text(start int, end int) string {
	return string(utf16.Decode(s.body[start:end]))
}

// charAt returns the code unit at the given offset or the sentinel '-1' if the offset is outside the body. A
// character outside the Basic Multilingual Plane shows up as its two surrogate halves.
func (s *Source) charAt(position int) rune {
	if position < 0 || position >= len(s.body) {
		return eof
	}
	return rune(s.body[position])
}

// Location computes the 1-based line and column of the given offset. A "\r\n" pair counts as a single line break,
// every other line terminator (see isLineTerminator) counts on its own.
func (s *Source) Location(position int) (int, int) {
	line := 1
	lineStart := 0

	for i := 0; i < position && i < len(s.body); {
		char := s.charAt(i)
		if char == '\r' && s.charAt(i+1) == '\n' {
			i += 2
		} else if isLineTerminator(char) {
			i++
		} else {
			i++
			continue
		}
		line++
		lineStart = i
	}

	return line, position - lineStart + 1
}

// lines splits the body into its lines, without the terminating line-break characters. The result always contains
// at least one (possibly empty) entry.
func (s *Source) lines() []string {
	var result []string
	start := 0

	for i := 0; i < len(s.body); {
		char := s.charAt(i)
		if char == '\r' && s.charAt(i+1) == '\n' {
			result = append(result, s.Text(start, i))
			i += 2
			start = i
		} else if isLineTerminator(char) {
			result = append(result, s.Text(start, i))
			i++
			start = i
		} else {
			i++
		}
	}

	return append(result, s.Text(start, len(s.body)))
}
