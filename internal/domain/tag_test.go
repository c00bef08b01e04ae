package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagListUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  TagList
	}{
		{
			name:  "null",
			input: `null`,
			want:  nil,
		},
		{
			name:  "bare string",
			input: `"RPG"`,
			want:  TagList{{Name: "RPG"}},
		},
		{
			name:  "empty string",
			input: `""`,
			want:  TagList{},
		},
		{
			name:  "string array",
			input: `["RPG","Adventure"]`,
			want:  TagList{{Name: "RPG"}, {Name: "Adventure"}},
		},
		{
			name:  "object array",
			input: `[{"id":"12","name":"RPG"},{"id":"31","name":"Adventure"}]`,
			want:  TagList{{ID: "12", Name: "RPG"}, {ID: "31", Name: "Adventure"}},
		},
		{
			name:  "single object",
			input: `{"id":"12","name":"RPG"}`,
			want:  TagList{{ID: "12", Name: "RPG"}},
		},
		{
			name:  "mixed array",
			input: `["RPG",{"id":"31","name":"Adventure"}]`,
			want:  TagList{{Name: "RPG"}, {ID: "31", Name: "Adventure"}},
		},
		{
			name:  "empty array",
			input: `[]`,
			want:  TagList{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got TagList
			require.NoError(t, json.Unmarshal([]byte(tt.input), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTagListContains(t *testing.T) {
	tl := TagList{{Name: "RPG"}, {ID: "9", Name: "Shooter"}}

	assert.True(t, tl.Contains("RPG"))
	assert.True(t, tl.Contains("Shooter"))
	assert.False(t, tl.Contains("rpg"), "match is case-sensitive")
	assert.False(t, tl.Contains("Strategy"))
}

func TestTagListNames(t *testing.T) {
	tl := TagList{{Name: "RPG"}, {Name: "Adventure"}}
	assert.Equal(t, []string{"RPG", "Adventure"}, tl.Names())
}

func TestGameUnmarshalHeterogeneousGenre(t *testing.T) {
	// older payloads store genre as a scalar, newer ones as object arrays
	var legacy Game
	require.NoError(t, json.Unmarshal([]byte(`{"id":"1","title":"Myst","genre":"Puzzle"}`), &legacy))
	assert.Equal(t, TagList{{Name: "Puzzle"}}, legacy.Genre)

	var current Game
	require.NoError(t, json.Unmarshal([]byte(`{"id":"1","title":"Myst","genre":[{"id":"2","name":"Puzzle"}]}`), &current))
	assert.Equal(t, TagList{{ID: "2", Name: "Puzzle"}}, current.Genre)
}
