package display

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"game-library/internal/domain"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestFormatReleaseDate(t *testing.T) {
	assert.Equal(t, "-", FormatReleaseDate(&domain.Game{}))
	assert.Equal(t, "1998", FormatReleaseDate(&domain.Game{Year: intPtr(1998)}))
	assert.Equal(t, "1998-11", FormatReleaseDate(&domain.Game{Year: intPtr(1998), Month: intPtr(11)}))
	assert.Equal(t, "1998-11-21", FormatReleaseDate(&domain.Game{Year: intPtr(1998), Month: intPtr(11), Day: intPtr(21)}))
}

func TestFormatStars(t *testing.T) {
	assert.Equal(t, "-", FormatStars(nil))
	assert.Equal(t, "★★★☆☆", FormatStars(floatPtr(3)))
	assert.Equal(t, "★★★★★", FormatStars(floatPtr(5)))
	assert.Equal(t, "★★★★☆", FormatStars(floatPtr(3.6)))
	assert.Equal(t, "☆☆☆☆☆", FormatStars(floatPtr(0)))
}

func TestFormatAgeRating(t *testing.T) {
	assert.Equal(t, "-", FormatAgeRating(&domain.Game{}))

	g := &domain.Game{AgeRatings: []domain.AgeRating{
		{Category: 1, Rating: 4},
		{Category: 2, Rating: 18},
	}}
	assert.Equal(t, "PEGI 18", FormatAgeRating(g))

	unknown := &domain.Game{AgeRatings: []domain.AgeRating{{Category: 9, Rating: 3}}}
	assert.Equal(t, "board 9 3", FormatAgeRating(unknown))
}

func TestFormatTags(t *testing.T) {
	assert.Equal(t, "-", FormatTags(nil, 20))

	tags := domain.TagList{{Name: "RPG"}, {Name: "Adventure"}}
	assert.Equal(t, "RPG, Adventure", FormatTags(tags, 20))
	assert.Equal(t, "RPG, Adv...", FormatTags(tags, 11))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "a ve...", Truncate("a very long string", 7))
	assert.Equal(t, "xyz", Truncate("xyz", 3))
}
