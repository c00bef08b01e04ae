package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"game-library/internal/domain"
)

func intPtr(v int) *int { return &v }

func testGames() []*domain.Game {
	return []*domain.Game{
		{
			ID: "1", Title: "Zelda", Year: intPtr(1998),
			Genre:     domain.TagList{{Name: "Adventure"}},
			Platforms: domain.TagList{{Name: "N64"}},
			AgeRatings: []domain.AgeRating{
				{Category: 1, Rating: 1},
			},
		},
		{
			ID: "2", Title: "Mario", Year: intPtr(1985),
			Genre:     domain.TagList{{Name: "Platformer"}},
			Platforms: domain.TagList{{Name: "NES"}},
		},
		{
			ID: "3", Title: "Unknown Gem",
			Genre: domain.TagList{{Name: "Adventure"}},
		},
	}
}

func filterIDs(games []*domain.Game, sel Selection, members map[string]bool) []string {
	pred := Predicate(sel, members)
	var ids []string
	for _, g := range games {
		if pred(g) {
			ids = append(ids, g.ID)
		}
	}
	return ids
}

func TestPredicateAll(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3"}, filterIDs(testGames(), SelectAll(), nil))
}

func TestPredicateGenre(t *testing.T) {
	assert.Equal(t, []string{"1", "3"}, filterIDs(testGames(), SelectGenre("Adventure"), nil))

	// exact, case-sensitive
	assert.Empty(t, filterIDs(testGames(), SelectGenre("adventure"), nil))
}

func TestPredicateYear(t *testing.T) {
	// nil year selection admits exactly the games that have any year
	assert.Equal(t, []string{"1", "2"}, filterIDs(testGames(), SelectYear(nil), nil))

	assert.Equal(t, []string{"1"}, filterIDs(testGames(), SelectYear(intPtr(1998)), nil))
	assert.Empty(t, filterIDs(testGames(), SelectYear(intPtr(2001)), nil))
}

func TestPredicateDecade(t *testing.T) {
	// an unset decade matches nothing, no "any decade" fallback
	assert.Empty(t, filterIDs(testGames(), SelectDecade(nil), nil))

	assert.Equal(t, []string{"1"}, filterIDs(testGames(), SelectDecade(intPtr(1990)), nil))
	assert.Equal(t, []string{"2"}, filterIDs(testGames(), SelectDecade(intPtr(1980)), nil))
}

func TestPredicateCollection(t *testing.T) {
	members := map[string]bool{"2": true, "3": true}

	assert.Equal(t, []string{"2", "3"}, filterIDs(testGames(), SelectCollection("c1"), members))

	// no collection selected matches nothing
	assert.Empty(t, filterIDs(testGames(), SelectCollection(""), members))
	assert.Empty(t, filterIDs(testGames(), SelectCollection("c1"), nil))
}

func TestPredicateAgeRating(t *testing.T) {
	key := &AgeRatingKey{Category: 1, Rating: 1}
	assert.Equal(t, []string{"1"}, filterIDs(testGames(), SelectAgeRating(key), nil))

	assert.Empty(t, filterIDs(testGames(), SelectAgeRating(nil), nil))
	assert.Empty(t, filterIDs(testGames(), SelectAgeRating(&AgeRatingKey{Category: 1, Rating: 2}), nil))
}

func TestPredicateTagDimensions(t *testing.T) {
	assert.Equal(t, []string{"1"}, filterIDs(testGames(), SelectLabel(FilterPlatform, "N64"), nil))
	assert.Empty(t, filterIDs(testGames(), SelectLabel(FilterTheme, "Horror"), nil))
}

func TestParseAgeRatingKey(t *testing.T) {
	key, err := ParseAgeRatingKey("2-18")
	require.NoError(t, err)
	assert.Equal(t, AgeRatingKey{Category: 2, Rating: 18}, key)
	assert.Equal(t, "2-18", key.String())

	_, err = ParseAgeRatingKey("esrb")
	assert.Error(t, err)

	_, err = ParseAgeRatingKey("2-mature")
	assert.Error(t, err)
}
