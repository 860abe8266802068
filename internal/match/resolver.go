package match

// Match is one resolved candidate with its similarity score.
type Match struct {
	Candidate string
	Index     int // position within the candidate list
	Score     int // 0..100
}

// BestMatch scores token against every candidate and returns the
// highest-scoring one. Ties keep the earliest candidate in list order,
// so resolution is deterministic for a fixed candidate list. The only
// time ok is false is an empty candidate list.
//
// This is the exhaustive reference resolver; Index.Best produces
// identical above-threshold results with bucket pruning.
func BestMatch(token string, candidates []string) (Match, bool) {
	if len(candidates) == 0 {
		return Match{}, false
	}

	best := Match{Candidate: candidates[0], Index: 0, Score: Ratio(token, candidates[0])}
	for i := 1; i < len(candidates); i++ {
		score := Ratio(token, candidates[i])
		if score > best.Score {
			best = Match{Candidate: candidates[i], Index: i, Score: score}
		}
	}
	return best, true
}
