package skills

// MatchRatio returns the fraction of required skills present in the candidate's skills.
// Both lists are compared case-insensitively as sets; the denominator is len(required).
// An empty requirement list yields 0: no requirement contributes no skill signal.
func MatchRatio(candidate, required []string) float64 {
	if len(required) == 0 {
		return 0
	}

	candidateSet := keySet(candidate)
	matches := 0
	for key := range keySet(required) {
		if candidateSet[key] {
			matches++
		}
	}

	return float64(matches) / float64(len(required))
}

// Matched returns the candidate's skills that appear in required, in the candidate's order
// and spelling.
func Matched(candidate, required []string) []string {
	requiredSet := keySet(required)
	matched := make([]string, 0)
	for _, skill := range candidate {
		if requiredSet[Key(skill)] {
			matched = append(matched, skill)
		}
	}
	return matched
}
