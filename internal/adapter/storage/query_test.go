package storage

import (
	"testing"

	"github.com/aqline/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPredicates(t *testing.T) {
	t.Run("NoPredicates", func(t *testing.T) {
		clause, args := listPredicates(domain.CatalogQuery{}, 1)
		assert.Empty(t, clause)
		assert.Empty(t, args)
	})

	t.Run("ExactMatchDimensions", func(t *testing.T) {
		q := domain.CatalogQuery{
			Categories:    []string{"Glassware", "Flatware"},
			Manufacturers: []string{"Steelite"},
		}
		clause, args := listPredicates(q, 1)
		assert.Equal(
			t,
			"WHERE category IN ($1, $2) AND manufacturer IN ($3)",
			clause,
		)
		assert.Equal(t, []any{"Glassware", "Flatware", "Steelite"}, args)
	})

	t.Run("PatternsCarryPrefix", func(t *testing.T) {
		q := domain.CatalogQuery{Patterns: []string{"Floral", "Geo"}}
		clause, args := listPredicates(q, 1)
		assert.Equal(
			t, "WHERE (tags LIKE $1 OR tags LIKE $2)", clause,
		)
		assert.Equal(t, []any{"%PATTERN\\_Floral%", "%PATTERN\\_Geo%"}, args)
	})

	t.Run("SingleTagUngrouped", func(t *testing.T) {
		q := domain.CatalogQuery{Tags: []string{"Eco"}}
		clause, args := listPredicates(q, 1)
		assert.Equal(t, "WHERE tags LIKE $1", clause)
		assert.Equal(t, []any{"%Eco%"}, args)
	})

	t.Run("SearchSingleArg", func(t *testing.T) {
		q := domain.CatalogQuery{Search: "tumbler"}
		clause, args := listPredicates(q, 1)
		assert.Equal(
			t,
			"WHERE (title ILIKE $1 OR description ILIKE $1"+
				" OR sku ILIKE $1 OR manufacturer ILIKE $1)",
			clause,
		)
		assert.Equal(t, []any{"%tumbler%"}, args)
	})

	t.Run("PlaceholdersContinueFromArgIdx", func(t *testing.T) {
		q := domain.CatalogQuery{Categories: []string{"Glassware"}}
		clause, _ := listPredicates(q, 3)
		assert.Equal(t, "WHERE category IN ($3)", clause)
	})

	t.Run("DimensionsJoinWithAND", func(t *testing.T) {
		q := domain.CatalogQuery{
			Categories: []string{"Glassware"},
			Patterns:   []string{"Floral"},
			Search:     "vase",
		}
		clause, args := listPredicates(q, 1)
		require.Len(t, args, 3)
		assert.Equal(
			t,
			"WHERE category IN ($1) AND tags LIKE $2"+
				" AND (title ILIKE $3 OR description ILIKE $3"+
				" OR sku ILIKE $3 OR manufacturer ILIKE $3)",
			clause,
		)
	})
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `c\\d`, escapeLike(`c\d`))
	assert.Equal(t, "plain", escapeLike("plain"))
}

func TestPlaceholdersCast(t *testing.T) {
	assert.Equal(t, "$1::numeric, $2::numeric", placeholdersCast(2, 1, "::numeric"))
	assert.Equal(t, "$4, $5, $6", placeholdersCast(3, 4, ""))
}
