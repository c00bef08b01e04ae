package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestGameValidate(t *testing.T) {
	tests := []struct {
		name    string
		game    *Game
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid game",
			game: &Game{ID: "g1", Title: "Chrono Trigger", Year: intPtr(1995)},
		},
		{
			name:    "empty id",
			game:    &Game{Title: "Chrono Trigger"},
			wantErr: true,
			errMsg:  "game id cannot be empty",
		},
		{
			name:    "empty title",
			game:    &Game{ID: "g1", Title: "   "},
			wantErr: true,
			errMsg:  "game title cannot be empty",
		},
		{
			name:    "year out of range",
			game:    &Game{ID: "g1", Title: "X", Year: intPtr(1800)},
			wantErr: true,
			errMsg:  "game year out of range",
		},
		{
			name:    "month out of range",
			game:    &Game{ID: "g1", Title: "X", Month: intPtr(13)},
			wantErr: true,
			errMsg:  "game month out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.game.Validate()
			if tt.wantErr {
				assert.EqualError(t, err, tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGameDecade(t *testing.T) {
	g := &Game{ID: "g1", Title: "Zelda", Year: intPtr(1998)}
	decade, ok := g.Decade()
	assert.True(t, ok)
	assert.Equal(t, 1990, decade)

	noYear := &Game{ID: "g2", Title: "Unknown"}
	_, ok = noYear.Decade()
	assert.False(t, ok)
}

func TestGameMaxRatingSeverity(t *testing.T) {
	g := &Game{
		ID:    "g1",
		Title: "Doom",
		AgeRatings: []AgeRating{
			{Category: 1, Rating: 4},
			{Category: 2, Rating: 18},
		},
	}

	severity, ok := g.MaxRatingSeverity()
	assert.True(t, ok)
	assert.Equal(t, 2018, severity)

	unrated := &Game{ID: "g2", Title: "Tetris"}
	_, ok = unrated.MaxRatingSeverity()
	assert.False(t, ok)
}

func TestGameHasAgeRating(t *testing.T) {
	g := &Game{
		ID:         "g1",
		Title:      "Doom",
		AgeRatings: []AgeRating{{Category: 1, Rating: 4}},
	}

	assert.True(t, g.HasAgeRating(1, 4))
	assert.False(t, g.HasAgeRating(1, 3))
	assert.False(t, g.HasAgeRating(2, 4))
}

func TestCollectionMemberSet(t *testing.T) {
	c := &Collection{ID: "c1", Title: "Favorites", GameIDs: []string{"g1", "g2"}}

	set := c.MemberSet()
	assert.True(t, set["g1"])
	assert.True(t, set["g2"])
	assert.False(t, set["g3"])
}
