// Package ranking scores internship postings against a candidate profile and returns
// an explained, ranked shortlist.
package ranking

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/jonathan/internship-matcher/internal/geo"
	"github.com/jonathan/internship-matcher/internal/skills"
	"github.com/jonathan/internship-matcher/internal/types"
)

// Reason strings
const (
	reasonEducationBelow = "Education level below requirement"
	reasonFirstGen       = "Priority for first-generation learners"
)

// ScorePosting computes the composite score and explanation for a single posting.
// It is a pure function of its arguments; the posting is copied, never modified.
func ScorePosting(candidate *types.CandidateProfile, posting *types.InternshipPosting, now time.Time, policy Policy) types.ScoredPosting {
	scored := types.ScoredPosting{
		InternshipPosting: *posting,
		Reasons:           []string{},
	}

	// Expired or undated postings are ineligible
	if !posting.IsOpen(now) {
		return scored
	}

	educationMet := candidate.EducationLevel.Meets(posting.RequiredEducation)
	educationBonus := 1.0
	if !educationMet {
		educationBonus = policy.EducationPenalty
	}

	skillScore := skills.MatchRatio(candidate.Skills, posting.RequiredSkills)

	distanceScore, distance, hasDistance := computeDistanceScore(candidate.Location, posting.Location, policy)

	priority := computePriorityMultiplier(candidate, policy)

	base := skillScore*policy.SkillWeight + distanceScore*policy.DistanceWeight
	final := base * priority * educationBonus

	scored.Score = final
	scored.MatchPercentage = toPercent(final)
	scored.Breakdown = types.ScoreBreakdown{
		SkillScore:         skillScore,
		DistanceScore:      distanceScore,
		EducationMet:       educationMet,
		EducationBonus:     educationBonus,
		PriorityMultiplier: priority,
		Base:               base,
	}
	if hasDistance {
		km := int(math.Round(distance))
		scored.DistanceKm = &km
	}
	scored.Reasons = generateReasons(candidate, posting, skillScore, educationMet, distance, hasDistance, policy)

	return scored
}

// computeDistanceScore maps the candidate-posting distance onto the policy's bands.
// When either side lacks coordinates the neutral score is returned and ok is false.
func computeDistanceScore(from *types.Coordinates, to *types.PostingLocation, policy Policy) (score, km float64, ok bool) {
	if from == nil {
		return policy.UnknownDistanceScore, 0, false
	}
	target, hasTarget := to.Coordinates()
	if !hasTarget {
		return policy.UnknownDistanceScore, 0, false
	}

	km = geo.Between(*from, target)
	switch {
	case km <= policy.NearRadiusKm:
		score = policy.NearScore
	case km <= policy.MidRadiusKm:
		score = policy.MidScore
	default:
		score = policy.FarScore
	}
	return score, km, true
}

// computePriorityMultiplier stacks the first-generation and gender boosts additively.
func computePriorityMultiplier(candidate *types.CandidateProfile, policy Policy) float64 {
	multiplier := 1.0
	if candidate.FirstGen {
		multiplier += policy.FirstGenBoost
	}
	multiplier += policy.genderBoost(candidate.Gender)
	return multiplier
}

// generateReasons explains the score in display order: skills, education, distance, priority.
func generateReasons(
	candidate *types.CandidateProfile,
	posting *types.InternshipPosting,
	skillScore float64,
	educationMet bool,
	distance float64,
	hasDistance bool,
	policy Policy,
) []string {
	reasons := []string{}

	if skillScore > 0 {
		matched := skills.Matched(candidate.Skills, posting.RequiredSkills)
		if len(matched) > 0 {
			reasons = append(reasons, fmt.Sprintf("Matched skills: %s - %d%%", strings.Join(matched, ", "), toPercent(skillScore)))
		}
	}
	if !educationMet {
		reasons = append(reasons, reasonEducationBelow)
	}
	if hasDistance && distance <= policy.MidRadiusKm {
		reasons = append(reasons, fmt.Sprintf("%dkm away", int(math.Round(distance))))
	}
	if candidate.FirstGen {
		reasons = append(reasons, reasonFirstGen)
	}

	return reasons
}

// toPercent converts a score to a whole percentage. The product is first rounded to
// six decimals so binary noise (0.455*100 = 45.4999...) does not flip the result.
func toPercent(score float64) int {
	p := math.Round(score*100*1e6) / 1e6
	return int(math.Round(p))
}
