package types

// ScoreBreakdown records the components behind a posting's composite score.
type ScoreBreakdown struct {
	SkillScore         float64 `json:"skill_score"`
	DistanceScore      float64 `json:"distance_score"`
	EducationMet       bool    `json:"education_met"`
	EducationBonus     float64 `json:"education_bonus"`
	PriorityMultiplier float64 `json:"priority_multiplier"`
	Base               float64 `json:"base"`
}

// ScoredPosting is a posting enriched with its recommendation score and explanation.
type ScoredPosting struct {
	InternshipPosting
	Score           float64        `json:"score"`
	MatchPercentage int            `json:"match_percentage"`
	DistanceKm      *int           `json:"distance_km,omitempty"`
	Reasons         []string       `json:"reasons"`
	Breakdown       ScoreBreakdown `json:"breakdown"`
}

// SkillGap partitions a set of required skills by whether the candidate has them.
type SkillGap struct {
	Matched         []string `json:"matched"`
	Missing         []string `json:"missing"`
	MatchPercentage int      `json:"match_percentage"`
	Suggestions     []string `json:"suggestions"`
}

// Recommendations is the envelope written by the recommend command and API.
type Recommendations struct {
	CandidateID string          `json:"candidate_id"`
	Results     []ScoredPosting `json:"results"`
}
