package catalog

import (
	"game-library/internal/domain"
)

// SortField selects the field a game list is ordered by.
type SortField string

const (
	SortTitle        SortField = "title"
	SortYear         SortField = "year"
	SortStars        SortField = "stars"
	SortReleaseDate  SortField = "releaseDate"
	SortCriticRating SortField = "criticRating"
	SortUserRating   SortField = "userRating"
	SortAgeRating    SortField = "ageRating"
)

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func compareFloatDesc(a, b float64) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	default:
		return 0
	}
}

// year, then month, then day; first non-zero difference wins
func compareReleaseDateDesc(a, b *domain.Game) int {
	if d := intOrZero(b.Year) - intOrZero(a.Year); d != 0 {
		return sign(d)
	}
	if d := intOrZero(b.Month) - intOrZero(a.Month); d != 0 {
		return sign(d)
	}
	return sign(intOrZero(b.Day) - intOrZero(a.Day))
}

func sign(d int) int {
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	default:
		return 0
	}
}

// Comparator returns the ordering for sortField with the direction the
// user currently wants. Title is the only field whose natural order is
// ascending (A→Z); every other field defaults to high-to-low, and
// ascending=true inverts that default back to low-to-high. The translation
// from "wanted direction" to comparator sign is done here, per field, not
// as a uniform flip.
func Comparator(sortField SortField, ascending bool) func(a, b *domain.Game) int {
	switch sortField {
	case SortTitle:
		return func(a, b *domain.Game) int {
			d := CompareTitles(a.Title, b.Title)
			if !ascending {
				d = -d
			}
			return d
		}

	case SortYear:
		return invertIf(ascending, func(a, b *domain.Game) int {
			return sign(intOrZero(b.Year) - intOrZero(a.Year))
		})

	case SortStars:
		return invertIf(ascending, func(a, b *domain.Game) int {
			return compareFloatDesc(floatOrZero(a.Stars), floatOrZero(b.Stars))
		})

	case SortCriticRating:
		return invertIf(ascending, func(a, b *domain.Game) int {
			return compareFloatDesc(floatOrZero(a.CriticRating), floatOrZero(b.CriticRating))
		})

	case SortUserRating:
		return invertIf(ascending, func(a, b *domain.Game) int {
			return compareFloatDesc(floatOrZero(a.UserRating), floatOrZero(b.UserRating))
		})

	case SortReleaseDate:
		return invertIf(ascending, compareReleaseDateDesc)

	case SortAgeRating:
		return ageRatingComparator(ascending)

	default:
		return Comparator(SortTitle, ascending)
	}
}

// invertIf wraps a descending-by-default comparator so ascending=true
// yields ascending order.
func invertIf(ascending bool, cmp func(a, b *domain.Game) int) func(a, b *domain.Game) int {
	if !ascending {
		return cmp
	}
	return func(a, b *domain.Game) int { return -cmp(a, b) }
}

// Games with no ratings sort last regardless of direction, so the
// missing-value placement is applied after the inversion, not inside it.
func ageRatingComparator(ascending bool) func(a, b *domain.Game) int {
	return func(a, b *domain.Game) int {
		sa, oka := a.MaxRatingSeverity()
		sb, okb := b.MaxRatingSeverity()

		switch {
		case !oka && !okb:
			return 0
		case !oka:
			return 1
		case !okb:
			return -1
		}

		d := sign(sb - sa)
		if ascending {
			d = -d
		}
		return d
	}
}
