// Package query parses the search-bar mini language into a filter
// selection and sort state, e.g.
//
//	genre:RPG sort:year order:asc
//	platform:"Game Boy" zelda
//	decade:1990 rating:2-18
//
// Bare words become title search terms; field terms map onto the
// catalog's filter dimensions. Only one dimension can be active, so the
// last field term wins.
package query

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"game-library/internal/catalog"
)

// Query is the parsed form of one search input.
type Query struct {
	Selection  catalog.Selection
	HasFilter  bool
	SortField  catalog.SortField
	HasSort    bool
	Ascending  bool
	HasOrder   bool
	TitleTerms []string
}

// TitleText is the free-text remainder, used for fuzzy title matching.
func (q *Query) TitleText() string {
	return strings.Join(q.TitleTerms, " ")
}

type token struct {
	field string // empty for free text
	value string
}

// Parse splits the input into field:value terms and free text, honoring
// double quotes around values, then maps the fields.
func Parse(input string) (*Query, error) {
	q := &Query{
		Selection: catalog.SelectAll(),
		SortField: catalog.SortTitle,
		Ascending: true,
	}

	tokens, err := tokenize(input)
	if err != nil {
		return nil, err
	}

	for _, tok := range tokens {
		if tok.field == "" {
			q.TitleTerms = append(q.TitleTerms, tok.value)
			continue
		}
		if err := q.applyField(tok.field, tok.value); err != nil {
			return nil, err
		}
	}

	return q, nil
}

func tokenize(input string) ([]token, error) {
	var tokens []token
	runes := []rune(strings.TrimSpace(input))

	i := 0
	for i < len(runes) {
		if unicode.IsSpace(runes[i]) {
			i++
			continue
		}

		start := i
		field := ""
		for i < len(runes) && !unicode.IsSpace(runes[i]) && runes[i] != ':' && runes[i] != '"' {
			i++
		}
		word := string(runes[start:i])

		if i < len(runes) && runes[i] == ':' {
			field = word
			i++ // consume ':'
			value, next, err := readValue(runes, i)
			if err != nil {
				return nil, err
			}
			i = next
			tokens = append(tokens, token{field: field, value: value})
			continue
		}

		if word != "" {
			tokens = append(tokens, token{value: word})
		} else if i < len(runes) && runes[i] == '"' {
			value, next, err := readValue(runes, i)
			if err != nil {
				return nil, err
			}
			i = next
			tokens = append(tokens, token{value: value})
		}
	}

	return tokens, nil
}

func readValue(runes []rune, i int) (string, int, error) {
	if i < len(runes) && runes[i] == '"' {
		i++
		start := i
		for i < len(runes) && runes[i] != '"' {
			i++
		}
		if i == len(runes) {
			return "", 0, fmt.Errorf("unterminated quote in query")
		}
		return string(runes[start:i]), i + 1, nil
	}

	start := i
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	return string(runes[start:i]), i, nil
}

var labelFields = map[string]catalog.FilterKind{
	"genre":       catalog.FilterGenre,
	"theme":       catalog.FilterTheme,
	"platform":    catalog.FilterPlatform,
	"mode":        catalog.FilterGameMode,
	"perspective": catalog.FilterPerspective,
	"engine":      catalog.FilterGameEngine,
	"developer":   catalog.FilterDeveloper,
	"publisher":   catalog.FilterPublisher,
	"franchise":   catalog.FilterFranchise,
	"series":      catalog.FilterSeries,
	"keyword":     catalog.FilterKeyword,
}

var sortFields = map[string]catalog.SortField{
	"title":    catalog.SortTitle,
	"year":     catalog.SortYear,
	"stars":    catalog.SortStars,
	"released": catalog.SortReleaseDate,
	"critic":   catalog.SortCriticRating,
	"user":     catalog.SortUserRating,
	"rating":   catalog.SortAgeRating,
}

func (q *Query) applyField(field, value string) error {
	field = strings.ToLower(field)

	if kind, ok := labelFields[field]; ok {
		q.Selection = catalog.SelectLabel(kind, value)
		q.HasFilter = true
		return nil
	}

	switch field {
	case "year":
		year, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid year %q", value)
		}
		q.Selection = catalog.SelectYear(&year)
		q.HasFilter = true

	case "decade":
		decade, err := strconv.Atoi(strings.TrimSuffix(value, "s"))
		if err != nil {
			return fmt.Errorf("invalid decade %q", value)
		}
		decade = (decade / 10) * 10
		q.Selection = catalog.SelectDecade(&decade)
		q.HasFilter = true

	case "collection":
		q.Selection = catalog.SelectCollection(value)
		q.HasFilter = true

	case "rating", "age":
		key, err := catalog.ParseAgeRatingKey(value)
		if err != nil {
			return err
		}
		q.Selection = catalog.SelectAgeRating(&key)
		q.HasFilter = true

	case "sort":
		sf, ok := sortFields[strings.ToLower(value)]
		if !ok {
			return fmt.Errorf("unknown sort field %q", value)
		}
		q.SortField = sf
		q.HasSort = true

	case "order":
		switch strings.ToLower(value) {
		case "asc":
			q.Ascending = true
		case "desc":
			q.Ascending = false
		default:
			return fmt.Errorf("order must be asc or desc, got %q", value)
		}
		q.HasOrder = true

	default:
		return fmt.Errorf("unknown field %q", field)
	}

	return nil
}
