package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourism/shared/search"
)

var destinations = []string{"Paro", "Punakha", "Phobjikha Valley", "Thimphu", "Bumthang", "Haa Valley"}

func TestRank(t *testing.T) {
	t.Run("typo still finds the destination", func(t *testing.T) {
		matches := search.Rank("Punaka", destinations, 3)

		require.NotEmpty(t, matches)
		assert.Equal(t, "Punakha", matches[0].Value)
	})

	t.Run("prefix ranks first", func(t *testing.T) {
		matches := search.Rank("thim", destinations, 2)

		require.NotEmpty(t, matches)
		assert.Equal(t, "Thimphu", matches[0].Value)
	})

	t.Run("scores are ordered and bounded", func(t *testing.T) {
		matches := search.Rank("valley", destinations, 5)

		require.GreaterOrEqual(t, len(matches), 2)
		assert.LessOrEqual(t, len(matches), 5)

		for i := 1; i < len(matches); i++ {
			assert.GreaterOrEqual(t, matches[i-1].Score, matches[i].Score)
		}

		for _, match := range matches {
			assert.GreaterOrEqual(t, match.Score, 0.0)
			assert.LessOrEqual(t, match.Score, 1.0)
		}
	})

	t.Run("empty query", func(t *testing.T) {
		assert.Empty(t, search.Rank("  ", destinations, 5))
	})
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, search.Similarity("Café", "cafe"), 1e-9)
	assert.Less(t, search.Similarity("Paro", "Bumthang"), 0.5)
}
