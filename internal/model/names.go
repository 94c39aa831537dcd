package model

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/width"
)

// NormalizeName folds a user-supplied name into its lookup key:
// full-width characters become half-width, case is folded and
// spaces, hyphens and underscores are dropped ("Thick-Fat", "thick fat",
// "ＴＨＩＣＫ ＦＡＴ" all map to "thickfat"). CJK names pass through unchanged.
func NormalizeName(name string) string {
	s := width.Fold.String(strings.TrimSpace(name))
	// cases.Caser is stateful, a fresh one per call keeps this goroutine-safe.
	s = cases.Fold().String(s)
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_', '\'', '.':
			return -1
		}
		return r
	}, s)
}
