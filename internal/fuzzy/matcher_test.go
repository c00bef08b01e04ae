package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"game-library/internal/domain"
)

func TestMatchExact(t *testing.T) {
	assert.Equal(t, 100, Match("zelda", "Zelda"))
	assert.Equal(t, 100, Match("Pokémon", "pokemon"))
}

func TestMatchSubsequence(t *testing.T) {
	assert.Positive(t, Match("poke", "Pokémon Snap"))
	assert.Positive(t, Match("mario", "Super Mario World"))
	assert.Zero(t, Match("zelda", "Super Mario World"))
	assert.Zero(t, Match("oiram", "Mario"), "order matters")
}

func TestMatchEmptyInputs(t *testing.T) {
	assert.Zero(t, Match("", "Zelda"))
	assert.Zero(t, Match("zelda", ""))
	assert.Zero(t, Match("longer than title", "short"))
}

func TestMatchPrefersPrefixes(t *testing.T) {
	prefix := Match("mario", "Mario Kart")
	infix := Match("mario", "Dr. Mario and Friends")
	assert.Greater(t, prefix, infix)
}

func TestMatchGamesRanksAndFilters(t *testing.T) {
	games := []*domain.Game{
		{ID: "1", Title: "Super Mario World"},
		{ID: "2", Title: "Mario Kart"},
		{ID: "3", Title: "Zelda"},
	}

	results := MatchGames("mario", games, 30)
	assert.Len(t, results, 2)
	for _, r := range results {
		assert.NotEqual(t, "3", r.Game.ID)
	}
	assert.GreaterOrEqual(t, results[0].Score, results[1].Score)
}

func TestMatchGamesEmptyPattern(t *testing.T) {
	games := []*domain.Game{{ID: "1", Title: "Zelda"}}
	assert.Empty(t, MatchGames("", games, 1))
}
