package luq

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lucidsearch/luq/query"
)

func TestParse(t *testing.T) {
	t.Run("simple term", func(t *testing.T) {
		result, err := Parse("test")
		require.NoError(t, err)

		assert.Equal(t, "test", result.Query)
		assert.Equal(t, "test", result.DeterministicText)
		assert.Equal(t, "Search for documents containing test.", result.NarrativeText)
		require.NotNil(t, result.ASTJSON)
		assert.Equal(t, "Term", result.ASTJSON.Type)
	})

	t.Run("field query", func(t *testing.T) {
		result, err := Parse(`title:"Machine Learning"`)
		require.NoError(t, err)

		assert.Contains(t, result.DeterministicText, `title:"Machine Learning"`)
		assert.Equal(t, "Field", result.ASTJSON.Type)
		require.NotNil(t, result.ASTJSON.Value)
		assert.Equal(t, "title", *result.ASTJSON.Value)
	})

	t.Run("or group followed by not", func(t *testing.T) {
		result, err := Parse(`("H.B. Fuller" OR "Arkema") NOT "Albemarle County"`)
		require.NoError(t, err)

		assert.Equal(t,
			`Include items that match ANY of: ("H.B. Fuller"; "Arkema") EXCLUDE items where: ("Albemarle County")`,
			result.DeterministicText)
		assert.Equal(t,
			`Search for documents containing any of the following: "H.B. Fuller", "Arkema" but exclude documents where "Albemarle County".`,
			result.NarrativeText)
		assert.Equal(t, "Unknown", result.ASTJSON.Type)
	})

	t.Run("original query is kept unmodified", func(t *testing.T) {
		input := "  a   AND\tb "
		result, err := Parse(input)
		require.NoError(t, err)
		assert.Equal(t, input, result.Query)
	})

	t.Run("empty query", func(t *testing.T) {
		_, err := Parse("")
		assert.ErrorIs(t, err, query.ErrEmptyQuery)
	})

	t.Run("malformed query", func(t *testing.T) {
		_, err := Parse("((unclosed")
		var syntaxErr *query.SyntaxError
		require.True(t, errors.As(err, &syntaxErr))
		assert.Contains(t, syntaxErr.Msg, "unbalanced parentheses")
	})

	t.Run("identical input produces identical results", func(t *testing.T) {
		first, err := Parse(`status:(draft OR published) NOT "archived"`)
		require.NoError(t, err)
		second, err := Parse(`status:(draft OR published) NOT "archived"`)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("logger does not affect output", func(t *testing.T) {
		quiet, err := New().Parse("a AND b")
		require.NoError(t, err)
		loud, err := New(WithLogger(zap.NewExample())).Parse("a AND b")
		require.NoError(t, err)
		assert.Equal(t, quiet, loud)
	})
}

func TestQueryResultToMapping(t *testing.T) {
	result, err := Parse("a AND b")
	require.NoError(t, err)

	mapping := result.ToMapping()
	assert.Equal(t, "a AND b", mapping["query"])
	assert.Equal(t, result.NarrativeText, mapping["narrative_text"])
	assert.Equal(t, result.DeterministicText, mapping["deterministic_text"])
	assert.Equal(t, result.ASTJSON, mapping["ast_json"])
}

func TestQueryResultASTRoundTrip(t *testing.T) {
	result, err := Parse(`("H.B. Fuller" OR "Arkema") NOT "Albemarle County"`)
	require.NoError(t, err)

	data, err := result.ASTJSON.JSON()
	require.NoError(t, err)

	rebuilt, err := query.Unmarshal(data)
	require.NoError(t, err)

	original, err := query.Parse(result.Query)
	require.NoError(t, err)
	assert.True(t, query.Equal(original, rebuilt))
}

func TestNormalize(t *testing.T) {
	got := Normalize(`Include items that match ANY of: ("Python"; "Java")`)
	assert.Equal(t, `Search for documents containing any of the following: "Python", "Java".`, got)
}
