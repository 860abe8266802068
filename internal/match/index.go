package match

import (
	"sort"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
)

// exactFastPathLimit bounds the token length for the hashed exact-match
// shortcut. For tokens shorter than this, a score of 100 implies string
// equality, so the shortcut is exactly equivalent to the exhaustive
// scan. The bound matters: Ratio rounds 99.5 up, so distance 1 over max
// length 200 already scores 100. For a token of at most 198 runes an
// unequal candidate scoring 100 would need maxLen >= 200*dist, and the
// length gap to such a candidate forces dist past that bound again, so
// no unequal pair can reach 100.
const exactFastPathLimit = 199

// Index resolves best matches against a fixed candidate list with a
// closed lower score bound. Candidates are bucketed by rune length so
// that buckets whose minimum possible edit distance already misses the
// threshold are skipped without scoring, and exact hits short-circuit
// through a hash lookup.
//
// For any token, Best returns the same candidate as running BestMatch
// over the full list and applying the threshold; pruning only removes
// candidates that cannot reach it.
type Index struct {
	candidates []string
	threshold  int

	exact   map[uint64]int   // xxhash(candidate) -> earliest index
	buckets map[int][]int    // rune length -> candidate indexes, in list order
	lengths []int            // sorted bucket keys
}

// NewIndex builds an index over candidates for the given acceptance
// threshold (0..100, closed lower bound).
func NewIndex(candidates []string, threshold int) *Index {
	ix := &Index{
		candidates: candidates,
		threshold:  threshold,
		exact:      make(map[uint64]int, len(candidates)),
		buckets:    make(map[int][]int),
	}

	for i, c := range candidates {
		h := xxhash.Sum64String(c)
		if _, seen := ix.exact[h]; !seen {
			ix.exact[h] = i
		}
		n := utf8.RuneCountInString(c)
		ix.buckets[n] = append(ix.buckets[n], i)
	}

	ix.lengths = make([]int, 0, len(ix.buckets))
	for n := range ix.buckets {
		ix.lengths = append(ix.lengths, n)
	}
	sort.Ints(ix.lengths)

	return ix
}

// Threshold returns the acceptance threshold the index was built for.
func (ix *Index) Threshold() int {
	return ix.threshold
}

// Best returns the highest-scoring candidate for token, or ok=false when
// no candidate reaches the threshold. Ties keep the earliest candidate
// in the original list order.
func (ix *Index) Best(token string) (Match, bool) {
	if len(ix.candidates) == 0 {
		return Match{}, false
	}

	// Exact hit: score 100 beats everything, and the map stores the
	// earliest index for duplicate candidates.
	if utf8.RuneCountInString(token) < exactFastPathLimit {
		if i, ok := ix.exact[xxhash.Sum64String(token)]; ok && ix.candidates[i] == token {
			return Match{Candidate: ix.candidates[i], Index: i, Score: 100}, true
		}
	}

	n := utf8.RuneCountInString(token)
	best := Match{Index: -1, Score: -1}

	for _, m := range ix.lengths {
		if !ix.bucketFeasible(n, m) {
			continue
		}
		for _, i := range ix.buckets[m] {
			score := Ratio(token, ix.candidates[i])
			if score > best.Score || (score == best.Score && i < best.Index) {
				best = Match{Candidate: ix.candidates[i], Index: i, Score: score}
			}
		}
	}

	if best.Index < 0 || best.Score < ix.threshold {
		return Match{}, false
	}
	return best, true
}

// bucketFeasible reports whether a candidate of length m can score at or
// above the threshold against a token of length n. The length gap is a
// lower bound on edit distance, so a bucket failing this check contains
// no acceptable candidate.
func (ix *Index) bucketFeasible(n, m int) bool {
	maxLen := n
	if m > maxLen {
		maxLen = m
	}
	gap := n - m
	if gap < 0 {
		gap = -gap
	}
	return gap <= maxDistWithin(maxLen, ix.threshold)
}
