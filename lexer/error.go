package lexer

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
)

type stack *[]uintptr

// getCurrentStack creates a new stack without the last three frames, because they are from the internal calls (e.g. to
// this function) and therefore irrelevant to the function creating the error.
func getCurrentStack() stack {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(3, pcs[:])
	var st = pcs[0:n]
	return &st
}

func getPrintableStackTrace(stack stack) string {
	var sb strings.Builder

	for _, pc := range *stack {
		f := runtime.FuncForPC(pc)
		file, line := f.FileLine(pc)
		sb.WriteString(fmt.Sprintf("%s\n\t%s:%d\n", f.Name(), file, line))
	}

	return sb.String()
}

// SyntaxError models a failure to lex the source at a specific offset. The message contains the position as 1-based
// line:column and an excerpt of the offending line(s) with a caret below the reported column.
type SyntaxError struct {
	Message     string `json:"message"`
	Position    int    `json:"position"`
	Description string `json:"description"`
	stack       stack
}

func newSyntaxError(source *Source, position int, description string) *SyntaxError {
	line, column := source.Location(position)
	message := fmt.Sprintf("Syntax Error %s (%d:%d) %s\n\n%s", source.Name(), line, column, description, highlightLocation(source, line, column))
	return &SyntaxError{
		Message:     message,
		Position:    position,
		Description: description,
		stack:       getCurrentStack(),
	}
}

func (e *SyntaxError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		fmt.Fprintf(s, "%s\n%s", e.Error(), getPrintableStackTrace(e.stack))
	case 's':
		fmt.Fprintf(s, "%s", e.Error())
	}
}

func (e *SyntaxError) Error() string {
	return e.Message
}

// highlightLocation renders the line of the given 1-based location with a caret below the column, preceded by the
// previous line (when there is one) and followed by the next line (when there is one). The line-number prefixes are
// padded to equal width.
func highlightLocation(source *Source, line int, column int) string {
	lines := source.lines()
	padLen := len(strconv.Itoa(line + 1))
	var sb strings.Builder

	if line >= 2 {
		sb.WriteString(lineNumberPrefix(line-1, padLen) + lines[line-2] + "\n")
	}
	sb.WriteString(lineNumberPrefix(line, padLen) + lines[line-1] + "\n")
	sb.WriteString(strings.Repeat(" ", padLen+1+column) + "^\n")
	if line < len(lines) {
		sb.WriteString(lineNumberPrefix(line+1, padLen) + lines[line] + "\n")
	}

	return sb.String()
}

func lineNumberPrefix(line int, padLen int) string {
	number := strconv.Itoa(line)
	return strings.Repeat(" ", padLen-len(number)) + number + ": "
}
