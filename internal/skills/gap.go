package skills

import (
	"math"

	"github.com/jonathan/internship-matcher/internal/types"
)

// Gap partitions required into skills the candidate has and skills they lack.
// Both partitions keep the order of required; MatchPercentage is 0 when required is empty.
func Gap(candidate, required []string) types.SkillGap {
	candidateSet := keySet(candidate)

	gap := types.SkillGap{
		Matched: make([]string, 0),
		Missing: make([]string, 0),
	}
	for _, skill := range required {
		if candidateSet[Key(skill)] {
			gap.Matched = append(gap.Matched, skill)
		} else {
			gap.Missing = append(gap.Missing, skill)
		}
	}

	if len(required) > 0 {
		gap.MatchPercentage = int(math.Round(float64(len(gap.Matched)) / float64(len(required)) * 100))
	}

	combined := make([]string, 0, len(candidate)+len(gap.Missing))
	combined = append(combined, candidate...)
	combined = append(combined, gap.Missing...)
	gap.Suggestions = SuggestRelated(combined)

	return gap
}

// Union returns every required skill across the postings, deduplicated case-insensitively
// in first-seen order.
func Union(postings []types.InternshipPosting) []string {
	var all []string
	for _, p := range postings {
		all = append(all, p.RequiredSkills...)
	}
	return Dedupe(all)
}

// DemandGap compares the candidate against every skill the postings ask for.
func DemandGap(candidate []string, postings []types.InternshipPosting) types.SkillGap {
	return Gap(candidate, Union(postings))
}
