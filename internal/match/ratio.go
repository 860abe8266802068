// Package match implements the fuzzy-matching core: a normalized
// Levenshtein similarity ratio plus best-match resolution of a token
// against an ordered candidate list, with an optional length-bucketed
// index for the hot path.
package match

import (
	"math"
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
)

// Ratio computes a normalized similarity score between two strings on a
// 0..100 scale: 100 for identical strings, 0 for no overlap under the
// edit-distance alignment.
//
//	ratio = round(100 * (1 - lev(a,b) / max(len(a), len(b), 1)))
//
// The primitive is case sensitive; callers uppercase tokens before
// scoring them against tickers.
func Ratio(a, b string) int {
	if a == b {
		return 100
	}

	la := utf8.RuneCountInString(a)
	lb := utf8.RuneCountInString(b)
	maxLen := la
	if lb > maxLen {
		maxLen = lb
	}
	if maxLen == 0 {
		return 100
	}

	dist := edlib.LevenshteinDistance(a, b)
	return int(math.Round(100 * float64(maxLen-dist) / float64(maxLen)))
}

// maxDistWithin returns the largest edit distance that can still reach
// threshold for strings of the given maximum length. Used by the index
// to rule out whole length buckets.
func maxDistWithin(maxLen, threshold int) int {
	if maxLen < 1 {
		maxLen = 1
	}
	// Largest d with round(100*(maxLen-d)/maxLen) >= threshold.
	for d := maxLen; d >= 0; d-- {
		if int(math.Round(100*float64(maxLen-d)/float64(maxLen))) >= threshold {
			return d
		}
	}
	return -1
}
