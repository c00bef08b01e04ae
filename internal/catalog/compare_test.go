package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Zelda", "zelda"},
		{"diacritics", "Café", "cafe"},
		{"punctuation", "Baldur's Gate: II!", "baldurs gate ii"},
		{"empty", "", ""},
		{"mixed case accents", "Pokémon SNAP", "pokemon snap"},
		{"digits kept", "Half-Life 2", "halflife 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTitle(tt.input))
		})
	}
}

func TestCompareTitlesAntisymmetry(t *testing.T) {
	pairs := [][2]string{
		{"Mario", "Zelda"},
		{"Café", "cafe"},
		{"", "Anything"},
		{"same", "same"},
	}

	for _, p := range pairs {
		ab := CompareTitles(p[0], p[1])
		ba := CompareTitles(p[1], p[0])
		assert.Equal(t, -ba, ab, "compare(%q,%q) must negate compare(%q,%q)", p[0], p[1], p[1], p[0])
	}
}

func TestCompareTitlesReflexive(t *testing.T) {
	for _, s := range []string{"", "Mario", "Café"} {
		assert.Zero(t, CompareTitles(s, s))
	}
}

func TestCompareTitlesDiacriticInsensitive(t *testing.T) {
	assert.Zero(t, CompareTitles("Café", "cafe"))
	assert.Zero(t, CompareTitles("Pokémon", "Pokemon"))
}

func TestCompareTitlesEmptySortsFirst(t *testing.T) {
	assert.Negative(t, CompareTitles("", "Aardvark"))
}
