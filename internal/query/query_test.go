package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"game-library/internal/catalog"
)

func TestParseEmpty(t *testing.T) {
	q, err := Parse("")
	require.NoError(t, err)
	assert.Equal(t, catalog.SelectAll(), q.Selection)
	assert.False(t, q.HasFilter)
	assert.Empty(t, q.TitleTerms)
}

func TestParseFreeText(t *testing.T) {
	q, err := Parse("super mario world")
	require.NoError(t, err)
	assert.False(t, q.HasFilter)
	assert.Equal(t, "super mario world", q.TitleText())
}

func TestParseLabelFields(t *testing.T) {
	q, err := Parse("genre:RPG")
	require.NoError(t, err)
	assert.True(t, q.HasFilter)
	assert.Equal(t, catalog.SelectGenre("RPG"), q.Selection)

	q, err = Parse(`platform:"Game Boy"`)
	require.NoError(t, err)
	assert.Equal(t, catalog.SelectLabel(catalog.FilterPlatform, "Game Boy"), q.Selection)
}

func TestParseYearAndDecade(t *testing.T) {
	q, err := Parse("year:1998")
	require.NoError(t, err)
	require.NotNil(t, q.Selection.Year)
	assert.Equal(t, 1998, *q.Selection.Year)

	q, err = Parse("decade:1990s")
	require.NoError(t, err)
	require.NotNil(t, q.Selection.Decade)
	assert.Equal(t, 1990, *q.Selection.Decade)

	// mid-decade years round down
	q, err = Parse("decade:1995")
	require.NoError(t, err)
	assert.Equal(t, 1990, *q.Selection.Decade)

	_, err = Parse("year:ninetyeight")
	assert.Error(t, err)
}

func TestParseAgeRatingKey(t *testing.T) {
	q, err := Parse("rating:2-18")
	require.NoError(t, err)
	require.NotNil(t, q.Selection.AgeRating)
	assert.Equal(t, catalog.AgeRatingKey{Category: 2, Rating: 18}, *q.Selection.AgeRating)

	q, err = Parse("age:2-18")
	require.NoError(t, err)
	require.NotNil(t, q.Selection.AgeRating)
	assert.Equal(t, catalog.AgeRatingKey{Category: 2, Rating: 18}, *q.Selection.AgeRating)
}

func TestParseSortAndOrder(t *testing.T) {
	q, err := Parse("sort:year order:asc")
	require.NoError(t, err)
	assert.True(t, q.HasSort)
	assert.Equal(t, catalog.SortYear, q.SortField)
	assert.True(t, q.HasOrder)
	assert.True(t, q.Ascending)

	q, err = Parse("sort:released order:desc")
	require.NoError(t, err)
	assert.Equal(t, catalog.SortReleaseDate, q.SortField)
	assert.False(t, q.Ascending)

	_, err = Parse("sort:alphabet")
	assert.Error(t, err)

	_, err = Parse("order:sideways")
	assert.Error(t, err)
}

func TestParseMixedTermsLastFilterWins(t *testing.T) {
	q, err := Parse("genre:RPG zelda year:1998 sort:stars")
	require.NoError(t, err)

	// one dimension at a time: year replaced genre
	assert.Equal(t, catalog.FilterYear, q.Selection.Kind)
	assert.Equal(t, []string{"zelda"}, q.TitleTerms)
	assert.Equal(t, catalog.SortStars, q.SortField)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("bogus:value")
	assert.Error(t, err)

	_, err = Parse(`platform:"Game Boy`)
	assert.Error(t, err, "unterminated quote")
}
