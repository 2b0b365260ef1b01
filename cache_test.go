package luq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucidsearch/luq/query"
)

func TestCachedParser(t *testing.T) {
	t.Run("repeated queries hit the cache", func(t *testing.T) {
		parser, err := NewCached(8)
		require.NoError(t, err)

		first, err := parser.Parse("a AND b")
		require.NoError(t, err)
		second, err := parser.Parse("a AND b")
		require.NoError(t, err)

		assert.Same(t, first, second)
		assert.Equal(t, 1, parser.Len())
	})

	t.Run("failed parses are not cached", func(t *testing.T) {
		parser, err := NewCached(8)
		require.NoError(t, err)

		_, err = parser.Parse("((unclosed")
		var syntaxErr *query.SyntaxError
		require.ErrorAs(t, err, &syntaxErr)
		assert.Equal(t, 0, parser.Len())
	})

	t.Run("cache is keyed by the exact input string", func(t *testing.T) {
		parser, err := NewCached(8)
		require.NoError(t, err)

		_, err = parser.Parse("a AND b")
		require.NoError(t, err)
		_, err = parser.Parse("a  AND b")
		require.NoError(t, err)
		assert.Equal(t, 2, parser.Len())
	})

	t.Run("eviction respects the size bound", func(t *testing.T) {
		parser, err := NewCached(2)
		require.NoError(t, err)

		for _, q := range []string{"a", "b", "c"} {
			_, err := parser.Parse(q)
			require.NoError(t, err)
		}
		assert.Equal(t, 2, parser.Len())
	})

	t.Run("purge empties the cache", func(t *testing.T) {
		parser, err := NewCached(8)
		require.NoError(t, err)

		_, err = parser.Parse("a")
		require.NoError(t, err)
		parser.Purge()
		assert.Equal(t, 0, parser.Len())
	})
}
