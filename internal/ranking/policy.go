package ranking

import (
	"errors"
	"fmt"
	"strings"
)

// Policy holds every weight, radius and threshold used by the scoring function.
// DefaultPolicy reproduces the production numbers; deployments may override them from YAML.
type Policy struct {
	SkillWeight    float64 `yaml:"skill_weight" json:"skill_weight"`
	DistanceWeight float64 `yaml:"distance_weight" json:"distance_weight"`

	NearRadiusKm         float64 `yaml:"near_radius_km" json:"near_radius_km"`
	NearScore            float64 `yaml:"near_score" json:"near_score"`
	MidRadiusKm          float64 `yaml:"mid_radius_km" json:"mid_radius_km"`
	MidScore             float64 `yaml:"mid_score" json:"mid_score"`
	FarScore             float64 `yaml:"far_score" json:"far_score"`
	UnknownDistanceScore float64 `yaml:"unknown_distance_score" json:"unknown_distance_score"`

	// EducationPenalty multiplies the score when the candidate is below the required level.
	EducationPenalty float64 `yaml:"education_penalty" json:"education_penalty"`

	// FirstGenBoost and GenderBoosts are additive priority boosts on top of a 1.0 multiplier.
	// GenderBoosts keys are matched case-insensitively against the candidate's gender.
	FirstGenBoost float64            `yaml:"first_gen_boost" json:"first_gen_boost"`
	GenderBoosts  map[string]float64 `yaml:"gender_boosts" json:"gender_boosts"`

	// MinScore is exclusive: postings must score strictly above it.
	MinScore float64 `yaml:"min_score" json:"min_score"`
	Limit    int     `yaml:"limit" json:"limit"`
}

// MaxResults is the hard cap on recommendations returned per call.
const MaxResults = 5

// DefaultPolicy returns the standard scoring policy.
func DefaultPolicy() Policy {
	return Policy{
		SkillWeight:          0.6,
		DistanceWeight:       0.4,
		NearRadiusKm:         10,
		NearScore:            1.0,
		MidRadiusKm:          50,
		MidScore:             0.8,
		FarScore:             0.5,
		UnknownDistanceScore: 0.5,
		EducationPenalty:     0.7,
		FirstGenBoost:        0.2,
		GenderBoosts:         map[string]float64{"female": 0.1},
		MinScore:             0.1,
		Limit:                MaxResults,
	}
}

// Validate checks that the policy is internally consistent.
func (p *Policy) Validate() error {
	var errs []string

	nonNegative := map[string]float64{
		"skill_weight":           p.SkillWeight,
		"distance_weight":        p.DistanceWeight,
		"near_score":             p.NearScore,
		"mid_score":              p.MidScore,
		"far_score":              p.FarScore,
		"unknown_distance_score": p.UnknownDistanceScore,
		"education_penalty":      p.EducationPenalty,
		"first_gen_boost":        p.FirstGenBoost,
	}
	for _, name := range []string{
		"skill_weight", "distance_weight", "near_score", "mid_score", "far_score",
		"unknown_distance_score", "education_penalty", "first_gen_boost",
	} {
		if nonNegative[name] < 0 {
			errs = append(errs, fmt.Sprintf("%s must be >= 0", name))
		}
	}
	if p.SkillWeight+p.DistanceWeight == 0 {
		errs = append(errs, "skill_weight and distance_weight cannot both be 0")
	}
	if p.NearRadiusKm <= 0 || p.MidRadiusKm < p.NearRadiusKm {
		errs = append(errs, "radii must satisfy 0 < near_radius_km <= mid_radius_km")
	}
	for gender, boost := range p.GenderBoosts {
		if strings.TrimSpace(gender) == "" {
			errs = append(errs, "gender_boosts keys cannot be empty")
		}
		if boost < 0 {
			errs = append(errs, fmt.Sprintf("gender_boosts[%s] must be >= 0", gender))
		}
	}
	if p.MinScore < 0 || p.MinScore >= 1 {
		errs = append(errs, "min_score must be in [0, 1)")
	}
	if p.Limit < 1 || p.Limit > MaxResults {
		errs = append(errs, fmt.Sprintf("limit must be 1..%d", MaxResults))
	}

	if len(errs) > 0 {
		return errors.New("policy validation failed:\n- " + strings.Join(errs, "\n- "))
	}
	return nil
}

// genderBoost returns the boost for gender, matched case-insensitively.
func (p *Policy) genderBoost(gender string) float64 {
	key := strings.ToLower(strings.TrimSpace(gender))
	if key == "" {
		return 0
	}
	for g, boost := range p.GenderBoosts {
		if strings.ToLower(strings.TrimSpace(g)) == key {
			return boost
		}
	}
	return 0
}
