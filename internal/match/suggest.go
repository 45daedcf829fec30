package match

// maxSuggestDistance caps how far a candidate may be from the unknown name
// before suggesting it does more harm than good.
const maxSuggestDistance = 3

// Suggest returns the candidate closest to name by edit distance, or ""
// when no candidate is close enough to be a plausible typo. Ties resolve to
// the earliest candidate, so callers passing sorted candidates get
// deterministic suggestions.
func Suggest(name string, candidates []string) string {
	best := ""
	bestDistance := maxSuggestDistance + 1

	for _, candidate := range candidates {
		d := Levenshtein(name, candidate)
		if d < bestDistance {
			best = candidate
			bestDistance = d
		}
	}

	return best
}
