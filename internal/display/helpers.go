package display

import (
	"fmt"
	"strings"

	"game-library/internal/domain"
)

// known rating boards, by server category code
var ratingCategories = map[int]string{
	1: "ESRB",
	2: "PEGI",
	3: "CERO",
	4: "USK",
	5: "GRAC",
}

// FormatReleaseDate renders whichever date parts the game has.
func FormatReleaseDate(g *domain.Game) string {
	if g.Year == nil {
		return "-"
	}
	if g.Month == nil {
		return fmt.Sprintf("%d", *g.Year)
	}
	if g.Day == nil {
		return fmt.Sprintf("%d-%02d", *g.Year, *g.Month)
	}
	return fmt.Sprintf("%d-%02d-%02d", *g.Year, *g.Month, *g.Day)
}

// FormatStars renders a five-star rating, e.g. "★★★☆☆".
func FormatStars(stars *float64) string {
	if stars == nil {
		return "-"
	}
	filled := int(*stars + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > 5 {
		filled = 5
	}
	return strings.Repeat("★", filled) + strings.Repeat("☆", 5-filled)
}

// FormatAgeRating renders the strictest rating entry, board first.
func FormatAgeRating(g *domain.Game) string {
	if len(g.AgeRatings) == 0 {
		return "-"
	}

	strictest := g.AgeRatings[0]
	for _, r := range g.AgeRatings[1:] {
		if r.Severity() > strictest.Severity() {
			strictest = r
		}
	}

	board, ok := ratingCategories[strictest.Category]
	if !ok {
		board = fmt.Sprintf("board %d", strictest.Category)
	}
	return fmt.Sprintf("%s %d", board, strictest.Rating)
}

// FormatAgeRatingKey renders a single board/rating pair, e.g. "PEGI 18".
func FormatAgeRatingKey(category, rating int) string {
	board, ok := ratingCategories[category]
	if !ok {
		board = fmt.Sprintf("board %d", category)
	}
	return fmt.Sprintf("%s %d", board, rating)
}

// FormatTags joins tag names, truncated to width.
func FormatTags(tags domain.TagList, width int) string {
	if len(tags) == 0 {
		return "-"
	}
	joined := strings.Join(tags.Names(), ", ")
	return Truncate(joined, width)
}

// Truncate cuts s to width runes with an ellipsis.
func Truncate(s string, width int) string {
	if width <= 3 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}
