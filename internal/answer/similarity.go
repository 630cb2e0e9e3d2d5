package answer

import (
	"strings"

	"github.com/agext/levenshtein"
)

var levenshteinParams = levenshtein.NewParams()

// Similarity returns the percentage similarity (0-100) between two strings,
// derived from normalized Levenshtein edit distance. Comparison is
// case-insensitive. Two empty strings are 100% similar.
func Similarity(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	if a == b {
		return 100
	}
	return levenshtein.Similarity(a, b, levenshteinParams) * 100
}

// Normalize trims, case-folds, and collapses internal whitespace runs to a
// single space. This is the canonical form used for the overall
// correctness check.
func Normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
