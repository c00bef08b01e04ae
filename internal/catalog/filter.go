package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"game-library/internal/domain"
)

// FilterKind is the active filter dimension. Exactly one dimension is
// active at a time; Selection is a tagged union so a stale value from a
// previously active dimension can never leak into the current one.
type FilterKind string

const (
	FilterAll         FilterKind = "all"
	FilterGenre       FilterKind = "genre"
	FilterYear        FilterKind = "year"
	FilterDecade      FilterKind = "decade"
	FilterCollection  FilterKind = "collection"
	FilterAgeRating   FilterKind = "ageRating"
	FilterTheme       FilterKind = "theme"
	FilterPlatform    FilterKind = "platform"
	FilterGameMode    FilterKind = "gameMode"
	FilterPerspective FilterKind = "playerPerspective"
	FilterGameEngine  FilterKind = "gameEngine"
	FilterDeveloper   FilterKind = "developer"
	FilterPublisher   FilterKind = "publisher"
	FilterFranchise   FilterKind = "franchise"
	FilterSeries      FilterKind = "series"
	FilterKeyword     FilterKind = "keyword"
)

// AgeRatingKey is the composite "category-rating" selection value.
type AgeRatingKey struct {
	Category int `json:"category"`
	Rating   int `json:"rating"`
}

func (k AgeRatingKey) String() string {
	return fmt.Sprintf("%d-%d", k.Category, k.Rating)
}

// ParseAgeRatingKey parses the "category-rating" composite form.
func ParseAgeRatingKey(s string) (AgeRatingKey, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return AgeRatingKey{}, fmt.Errorf("invalid age rating key: %q", s)
	}
	category, err := strconv.Atoi(parts[0])
	if err != nil {
		return AgeRatingKey{}, fmt.Errorf("invalid age rating category: %q", s)
	}
	rating, err := strconv.Atoi(parts[1])
	if err != nil {
		return AgeRatingKey{}, fmt.Errorf("invalid age rating value: %q", s)
	}
	return AgeRatingKey{Category: category, Rating: rating}, nil
}

// Selection is the filter state: one kind plus the value for that kind
// only. Zero value means "all".
type Selection struct {
	Kind FilterKind `json:"kind"`

	// exactly one of these is meaningful, per Kind
	Label        string        `json:"label,omitempty"`        // genre / theme / platform / ... name
	Year         *int          `json:"year,omitempty"`         // nil = any game that has a year
	Decade       *int          `json:"decade,omitempty"`       // nil = match nothing
	CollectionID string        `json:"collectionId,omitempty"` // "" = match nothing
	AgeRating    *AgeRatingKey `json:"ageRating,omitempty"`    // nil = match nothing
}

func SelectAll() Selection { return Selection{Kind: FilterAll} }

func SelectGenre(name string) Selection {
	return Selection{Kind: FilterGenre, Label: name}
}

func SelectLabel(kind FilterKind, name string) Selection {
	return Selection{Kind: kind, Label: name}
}

func SelectYear(year *int) Selection {
	return Selection{Kind: FilterYear, Year: year}
}

func SelectDecade(decade *int) Selection {
	return Selection{Kind: FilterDecade, Decade: decade}
}

func SelectCollection(id string) Selection {
	return Selection{Kind: FilterCollection, CollectionID: id}
}

func SelectAgeRating(key *AgeRatingKey) Selection {
	return Selection{Kind: FilterAgeRating, AgeRating: key}
}

// labelList maps a tag dimension to the game field it tests.
func labelList(kind FilterKind, g *domain.Game) (domain.TagList, bool) {
	switch kind {
	case FilterGenre:
		return g.Genre, true
	case FilterTheme:
		return g.Themes, true
	case FilterPlatform:
		return g.Platforms, true
	case FilterGameMode:
		return g.GameModes, true
	case FilterPerspective:
		return g.PlayerPerspectives, true
	case FilterGameEngine:
		return g.GameEngines, true
	case FilterDeveloper:
		return g.Developers, true
	case FilterPublisher:
		return g.Publishers, true
	case FilterFranchise:
		return g.Franchise, true
	case FilterSeries:
		return g.Series, true
	case FilterKeyword:
		return g.Keywords, true
	default:
		return nil, false
	}
}

// Predicate builds the membership test for one game under the given
// selection. members is the precomputed id set of the selected collection
// and is only consulted for FilterCollection.
//
// Dimensions without an "any" fallback (decade, collection, age rating)
// deliberately match nothing while their value is unset: an unconfigured
// filter shows an empty list, which is distinct from year's
// "any game that has a year" behavior.
func Predicate(sel Selection, members map[string]bool) func(*domain.Game) bool {
	switch sel.Kind {
	case FilterYear:
		year := sel.Year
		return func(g *domain.Game) bool {
			if year == nil {
				return g.Year != nil
			}
			return g.Year != nil && *g.Year == *year
		}

	case FilterDecade:
		decade := sel.Decade
		return func(g *domain.Game) bool {
			if decade == nil {
				return false
			}
			d, ok := g.Decade()
			return ok && d == *decade
		}

	case FilterCollection:
		if sel.CollectionID == "" || members == nil {
			return func(*domain.Game) bool { return false }
		}
		return func(g *domain.Game) bool { return members[g.ID] }

	case FilterAgeRating:
		key := sel.AgeRating
		return func(g *domain.Game) bool {
			if key == nil {
				return false
			}
			return g.HasAgeRating(key.Category, key.Rating)
		}

	case FilterAll, "":
		return func(*domain.Game) bool { return true }

	default:
		label := sel.Label
		kind := sel.Kind
		return func(g *domain.Game) bool {
			list, ok := labelList(kind, g)
			if !ok {
				return true
			}
			return list.Contains(label)
		}
	}
}
