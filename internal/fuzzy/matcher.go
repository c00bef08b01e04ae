// Package fuzzy scores game titles against a typed pattern for the
// search overlay. Matching is subsequence-based and diacritic-insensitive,
// so "poke" finds "Pokémon Snap".
package fuzzy

import (
	"sort"

	"game-library/internal/catalog"
	"game-library/internal/domain"
)

// Result is one title that met the threshold.
type Result struct {
	Game  *domain.Game
	Score int
}

// Match scores pattern against title on a 0..100 scale. Zero means no
// match: every pattern rune must appear in the title, in order.
func Match(pattern, title string) int {
	p := []rune(catalog.NormalizeTitle(pattern))
	t := []rune(catalog.NormalizeTitle(title))

	if len(p) == 0 || len(t) == 0 || len(p) > len(t) {
		return 0
	}

	positions := subsequencePositions(p, t)
	if positions == nil {
		return 0
	}

	return score(p, t, positions)
}

// MatchGames filters and ranks games by title match, best first. Ties
// keep the input order.
func MatchGames(pattern string, games []*domain.Game, threshold int) []Result {
	results := make([]Result, 0, len(games))
	for _, g := range games {
		if s := Match(pattern, g.Title); s >= threshold {
			results = append(results, Result{Game: g, Score: s})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

// subsequencePositions greedily locates each pattern rune in the title.
// nil when the pattern is not a subsequence.
func subsequencePositions(pattern, title []rune) []int {
	positions := make([]int, 0, len(pattern))
	ti := 0
	for _, pr := range pattern {
		for ti < len(title) && title[ti] != pr {
			ti++
		}
		if ti == len(title) {
			return nil
		}
		positions = append(positions, ti)
		ti++
	}
	return positions
}

func score(pattern, title []rune, positions []int) int {
	s := 40.0

	// exact and prefix matches dominate
	if len(pattern) == len(title) {
		return 100
	}
	if positions[0] == 0 {
		s += 15
	}

	// density: how much of the title the pattern covers
	s += 25 * float64(len(pattern)) / float64(len(title))

	// longest consecutive run relative to pattern length
	run := longestRun(positions)
	s += 20 * float64(run) / float64(len(pattern))

	// matches that start words read as intentional
	boundaries := 0
	for _, pos := range positions {
		if pos == 0 || title[pos-1] == ' ' {
			boundaries++
		}
	}
	s += 10 * float64(boundaries) / float64(len(pattern))

	// scattered single-rune hits are mostly noise
	if run == 1 && len(pattern) > 2 {
		s -= 15
	}

	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return int(s)
}

func longestRun(positions []int) int {
	best, cur := 1, 1
	for i := 1; i < len(positions); i++ {
		if positions[i] == positions[i-1]+1 {
			cur++
			if cur > best {
				best = cur
			}
		} else {
			cur = 1
		}
	}
	return best
}
