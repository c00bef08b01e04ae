package catalog

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// strips combining marks after canonical decomposition
var markStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var (
	collatorMu sync.Mutex
	collator   = collate.New(language.Und, collate.Loose)
)

// NormalizeTitle lower-cases, strips diacritics and drops everything that
// is not a letter, digit or space, so "Café: Réunion!" and "cafe reunion"
// normalize to the same key. Empty or undefined titles normalize to ""
// and sort first.
func NormalizeTitle(s string) string {
	lower := strings.ToLower(s)

	stripped, _, err := transform.String(markStripper, lower)
	if err != nil {
		stripped = lower
	}

	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' {
			return r
		}
		return -1
	}, stripped)
}

// CompareTitles orders two display titles by their normalized forms.
// The result is negative, zero or positive and antisymmetric, so it can
// back a stable total order.
func CompareTitles(a, b string) int {
	na := NormalizeTitle(a)
	nb := NormalizeTitle(b)

	// collators are not safe for concurrent use
	collatorMu.Lock()
	defer collatorMu.Unlock()
	return collator.CompareString(na, nb)
}
