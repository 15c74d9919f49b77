package lexer

import (
	"gql/util"
	"testing"
)

func TestSource_nameDefaultsToGraphQL(t *testing.T) {
	// Act & Assert
	util.AssertEqual(t, "GraphQL", NewSource("{}", "").Name())
	util.AssertEqual(t, "MyQuery.graphql", NewSource("{}", "MyQuery.graphql").Name())
}

func TestSource_charAt(t *testing.T) {
	// Arrange
	source := NewSource("ab", "")

	// Act & Assert
	util.AssertEqual(t, 'a', source.charAt(0))
	util.AssertEqual(t, 'b', source.charAt(1))
	util.AssertEqual(t, eof, source.charAt(2))
	util.AssertEqual(t, eof, source.charAt(-1))
}

func TestSource_location(t *testing.T) {
	// Arrange: lines separated by \n, \r\n, \r and U+2028.
	source := NewSource("ab\ncd\r\nef\rgh\u2028ij", "")

	expectedLocations := map[int][2]int{
		0:  {1, 1},
		1:  {1, 2},
		2:  {1, 3}, // the line terminator belongs to the line it ends
		3:  {2, 1},
		5:  {2, 3},
		7:  {3, 1}, // \r\n counts as a single break
		9:  {3, 3},
		10: {4, 1},
		12: {4, 3},
		13: {5, 1},
		15: {5, 3}, // one behind the last character
	}

	for position, expected := range expectedLocations {
		// Act
		line, column := source.Location(position)

		// Assert
		util.AssertEqual(t, expected, [2]int{line, column})
	}
}

func TestSource_lines(t *testing.T) {
	// Act & Assert
	util.AssertEqual(t, []string{""}, NewSource("", "").lines())
	util.AssertEqual(t, []string{"a"}, NewSource("a", "").lines())
	util.AssertEqual(t, []string{"a", ""}, NewSource("a\n", "").lines())
	util.AssertEqual(t, []string{"a", "b", "c", "d"}, NewSource("a\nb\r\nc\rd", "").lines())
	util.AssertEqual(t, []string{"a", "b", "c"}, NewSource("a\u2028b\u2029c", "").lines())
}

func TestSource_text(t *testing.T) {
	// Arrange
	source := NewSource("foo bar", "")

	// Act & Assert
	util.AssertEqual(t, "foo", source.Text(0, 3))
	util.AssertEqual(t, "bar", source.Text(4, 7))
	util.AssertEqual(t, "", source.Text(2, 2))
}
