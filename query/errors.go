package query

import (
	"errors"
	"fmt"
)

// ErrEmptyQuery is returned when the input is empty or whitespace-only.
// It is reported before tokenization is attempted.
var ErrEmptyQuery = errors.New("query is empty")

// SyntaxError describes a lexical or grammatical malformation:
// unbalanced parentheses, an unterminated phrase, an operator missing
// an operand, or a field marker with no value. Pos is the byte offset
// of the offending token in the original input.
type SyntaxError struct {
	Msg string
	Pos int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at position %d: %s", e.Pos, e.Msg)
}

// RenderError is returned when a renderer encounters a node shape it
// does not recognize. It cannot occur for trees produced by Parse, but
// renderers accepting externally supplied trees guard against it.
type RenderError struct {
	Node Node
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("cannot render node of type %T", e.Node)
}
