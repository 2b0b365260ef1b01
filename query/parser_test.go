package query

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("simple term", func(t *testing.T) {
		root, err := Parse("test")
		require.NoError(t, err)
		assert.Equal(t, &Term{Value: "test"}, root)
	})

	t.Run("phrase keeps quotes verbatim", func(t *testing.T) {
		root, err := Parse(`"Machine Learning"`)
		require.NoError(t, err)
		assert.Equal(t, &Phrase{Value: `"Machine Learning"`}, root)
	})

	t.Run("field with phrase value", func(t *testing.T) {
		root, err := Parse(`title:"Machine Learning"`)
		require.NoError(t, err)
		assert.Equal(t, &Field{Name: "title", Value: &Phrase{Value: `"Machine Learning"`}}, root)
	})

	t.Run("field with term value", func(t *testing.T) {
		root, err := Parse("status:published")
		require.NoError(t, err)
		assert.Equal(t, &Field{Name: "status", Value: &Term{Value: "published"}}, root)
	})

	t.Run("field with grouped value", func(t *testing.T) {
		root, err := Parse("status:(draft OR published)")
		require.NoError(t, err)
		field, ok := root.(*Field)
		require.True(t, ok)
		assert.Equal(t, "status", field.Name)

		group, ok := field.Value.(*Group)
		require.True(t, ok)
		require.Len(t, group.Children, 1)

		or, ok := group.Children[0].(*Or)
		require.True(t, ok)
		assert.Equal(t, []Node{&Term{Value: "draft"}, &Term{Value: "published"}}, or.Children)
	})

	t.Run("and collects operands in order", func(t *testing.T) {
		root, err := Parse("c AND b AND a")
		require.NoError(t, err)
		assert.Equal(t, &And{Children: []Node{
			&Term{Value: "c"}, &Term{Value: "b"}, &Term{Value: "a"},
		}}, root)
	})

	t.Run("and binds tighter than or", func(t *testing.T) {
		root, err := Parse("a OR b AND c")
		require.NoError(t, err)
		assert.Equal(t, &Or{Children: []Node{
			&Term{Value: "a"},
			&And{Children: []Node{&Term{Value: "b"}, &Term{Value: "c"}}},
		}}, root)
	})

	t.Run("not binds tighter than and", func(t *testing.T) {
		root, err := Parse("NOT a AND b")
		require.NoError(t, err)
		assert.Equal(t, &And{Children: []Node{
			&Not{Children: []Node{&Term{Value: "a"}}},
			&Term{Value: "b"},
		}}, root)
	})

	t.Run("not is right-associative", func(t *testing.T) {
		root, err := Parse("NOT NOT a")
		require.NoError(t, err)
		assert.Equal(t, &Not{Children: []Node{
			&Not{Children: []Node{&Term{Value: "a"}}},
		}}, root)
	})

	t.Run("juxtaposed clauses wrap in Unknown", func(t *testing.T) {
		root, err := Parse("alpha beta")
		require.NoError(t, err)
		assert.Equal(t, &Unknown{Children: []Node{
			&Term{Value: "alpha"}, &Term{Value: "beta"},
		}}, root)
	})

	t.Run("group is preserved as an explicit node", func(t *testing.T) {
		root, err := Parse("(a OR b)")
		require.NoError(t, err)
		group, ok := root.(*Group)
		require.True(t, ok)
		require.Len(t, group.Children, 1)
		assert.IsType(t, &Or{}, group.Children[0])
	})

	t.Run("group keeps juxtaposed children", func(t *testing.T) {
		root, err := Parse("(alpha beta)")
		require.NoError(t, err)
		assert.Equal(t, &Group{Children: []Node{
			&Term{Value: "alpha"}, &Term{Value: "beta"},
		}}, root)
	})

	t.Run("or group followed by not", func(t *testing.T) {
		root, err := Parse(`("H.B. Fuller" OR "Arkema") NOT "Albemarle County"`)
		require.NoError(t, err)

		unknown, ok := root.(*Unknown)
		require.True(t, ok)
		require.Len(t, unknown.Children, 2)

		group, ok := unknown.Children[0].(*Group)
		require.True(t, ok)
		require.Len(t, group.Children, 1)
		or, ok := group.Children[0].(*Or)
		require.True(t, ok)
		assert.Equal(t, []Node{
			&Phrase{Value: `"H.B. Fuller"`},
			&Phrase{Value: `"Arkema"`},
		}, or.Children)

		not, ok := unknown.Children[1].(*Not)
		require.True(t, ok)
		assert.Equal(t, []Node{&Phrase{Value: `"Albemarle County"`}}, not.Children)
	})

	t.Run("deeply nested groups", func(t *testing.T) {
		root, err := Parse("((a OR (b AND c)))")
		require.NoError(t, err)
		outer, ok := root.(*Group)
		require.True(t, ok)
		inner, ok := outer.Children[0].(*Group)
		require.True(t, ok)
		assert.IsType(t, &Or{}, inner.Children[0])
	})
}

func TestParseErrors(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		_, err := Parse("")
		assert.ErrorIs(t, err, ErrEmptyQuery)

		var syntaxErr *SyntaxError
		assert.False(t, errors.As(err, &syntaxErr))
	})

	t.Run("whitespace-only input", func(t *testing.T) {
		_, err := Parse("   \t\n")
		assert.ErrorIs(t, err, ErrEmptyQuery)
	})

	t.Run("unbalanced open parentheses", func(t *testing.T) {
		_, err := Parse("((unclosed")
		var syntaxErr *SyntaxError
		require.ErrorAs(t, err, &syntaxErr)
		assert.Contains(t, syntaxErr.Msg, "unbalanced parentheses")
	})

	t.Run("unexpected closing parenthesis", func(t *testing.T) {
		_, err := Parse("a)")
		var syntaxErr *SyntaxError
		require.ErrorAs(t, err, &syntaxErr)
		assert.Contains(t, syntaxErr.Msg, "unbalanced parentheses")
		assert.Equal(t, 1, syntaxErr.Pos)
	})

	t.Run("unterminated phrase", func(t *testing.T) {
		_, err := Parse(`title:"unclosed`)
		var syntaxErr *SyntaxError
		require.ErrorAs(t, err, &syntaxErr)
		assert.Equal(t, "unterminated phrase", syntaxErr.Msg)
		assert.Equal(t, 6, syntaxErr.Pos)
	})

	t.Run("operator missing an operand", func(t *testing.T) {
		for _, input := range []string{"a AND", "OR b", "NOT", "a OR ()"} {
			_, err := Parse(input)
			var syntaxErr *SyntaxError
			assert.ErrorAs(t, err, &syntaxErr, "input %q", input)
		}
	})

	t.Run("field marker with no value", func(t *testing.T) {
		_, err := Parse("title:")
		var syntaxErr *SyntaxError
		require.ErrorAs(t, err, &syntaxErr)
		assert.Contains(t, syntaxErr.Msg, `field "title" has no value`)
	})

	t.Run("field marker with no name", func(t *testing.T) {
		_, err := Parse(":value")
		var syntaxErr *SyntaxError
		require.ErrorAs(t, err, &syntaxErr)
		assert.Contains(t, syntaxErr.Msg, "no field name")
	})

	t.Run("empty group", func(t *testing.T) {
		_, err := Parse("()")
		var syntaxErr *SyntaxError
		require.ErrorAs(t, err, &syntaxErr)
		assert.Contains(t, syntaxErr.Msg, "empty group")
	})

	t.Run("error message carries position", func(t *testing.T) {
		_, err := Parse("a AND")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "position")
	})
}

func TestParseTokens(t *testing.T) {
	t.Run("empty token stream", func(t *testing.T) {
		_, err := ParseTokens([]Token{{Type: TokenEOF}})
		assert.ErrorIs(t, err, ErrEmptyQuery)
	})

	t.Run("parses an external stream", func(t *testing.T) {
		root, err := ParseTokens(Tokenize("a OR b"))
		require.NoError(t, err)
		assert.IsType(t, &Or{}, root)
	})
}
