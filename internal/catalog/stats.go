package catalog

import (
	"game-library/internal/domain"
)

// Stats summarizes a catalog for the stats command.
type Stats struct {
	Total      int
	WithYear   int
	Rated      int
	ByGenre    map[string]int
	ByDecade   map[int]int
	ByPlatform map[string]int
}

func Summarize(games []*domain.Game) Stats {
	st := Stats{
		ByGenre:    make(map[string]int),
		ByDecade:   make(map[int]int),
		ByPlatform: make(map[string]int),
	}

	for _, g := range games {
		st.Total++

		if g.Year != nil {
			st.WithYear++
		}
		if d, ok := g.Decade(); ok {
			st.ByDecade[d]++
		}
		if len(g.AgeRatings) > 0 {
			st.Rated++
		}
		for _, t := range g.Genre {
			st.ByGenre[t.Name]++
		}
		for _, t := range g.Platforms {
			st.ByPlatform[t.Name]++
		}
	}

	return st
}
