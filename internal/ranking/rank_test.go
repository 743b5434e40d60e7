package ranking

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/internship-matcher/internal/types"
)

// buildCatalog returns n open postings whose skill overlap with the candidate varies.
func buildCatalog(n int) []types.InternshipPosting {
	pool := []string{"Excel", "Hindi", "English", "Python", "Sales", "Tally"}
	postings := make([]types.InternshipPosting, n)
	for i := range postings {
		postings[i] = types.InternshipPosting{
			ID:                fmt.Sprintf("int_%03d", i),
			Title:             fmt.Sprintf("Posting %d", i),
			RequiredSkills:    []string{pool[i%len(pool)], pool[(i+1)%len(pool)], pool[(i*7)%len(pool)]},
			RequiredEducation: types.EducationLevels[i%len(types.EducationLevels)],
			Deadline:          "2026-04-01",
			Location: &types.PostingLocation{
				Lat: floatPtr(28.6 + float64(i%9)*0.2),
				Lon: floatPtr(77.2),
			},
		}
	}
	return postings
}

func rankCandidate() *types.CandidateProfile {
	return &types.CandidateProfile{
		ID:             "cand_rank",
		EducationLevel: types.EducationGraduation,
		Skills:         []string{"Excel", "Hindi", "Tally"},
		Location:       &types.Coordinates{Lat: 28.6, Lon: 77.2},
	}
}

func TestRecommend_SortedLimitedAndAboveThreshold(t *testing.T) {
	results := Recommend(rankCandidate(), buildCatalog(20), testNow, Options{})

	require.Len(t, results, MaxResults)
	for i, r := range results {
		assert.Greater(t, r.Score, 0.1)
		if i > 0 {
			assert.GreaterOrEqual(t, results[i-1].Score, r.Score)
		}
	}
}

func TestRecommend_ExcludesExpiredPostings(t *testing.T) {
	postings := []types.InternshipPosting{
		*scenarioPosting(types.Education12th),
		*scenarioPosting(types.Education12th),
	}
	postings[0].ID = "expired"
	postings[0].Deadline = "2026-01-01"
	postings[1].ID = "open"

	results := Recommend(scenarioCandidate(), postings, testNow, Options{})

	require.Len(t, results, 1)
	assert.Equal(t, "open", results[0].ID)
}

func TestRecommend_ThresholdIsExclusive(t *testing.T) {
	// No skills and no coordinates score exactly 0.5*0.4 = 0.2
	policy := DefaultPolicy()
	policy.MinScore = 0.2

	postings := []types.InternshipPosting{
		{ID: "neutral", RequiredEducation: types.Education10th, Deadline: "2026-03-01"},
	}
	candidate := &types.CandidateProfile{EducationLevel: types.Education12th}

	assert.Empty(t, Recommend(candidate, postings, testNow, Options{Policy: &policy}))

	policy.MinScore = 0.1
	assert.Len(t, Recommend(candidate, postings, testNow, Options{Policy: &policy}), 1)
}

func TestRecommend_TiesKeepInputOrder(t *testing.T) {
	postings := make([]types.InternshipPosting, 3)
	for i := range postings {
		postings[i] = *scenarioPosting(types.Education12th)
		postings[i].ID = fmt.Sprintf("tie_%d", i)
	}

	results := Recommend(scenarioCandidate(), postings, testNow, Options{})

	require.Len(t, results, 3)
	assert.Equal(t, "tie_0", results[0].ID)
	assert.Equal(t, "tie_1", results[1].ID)
	assert.Equal(t, "tie_2", results[2].ID)
}

func TestRecommend_PolicyLimit(t *testing.T) {
	policy := DefaultPolicy()
	policy.Limit = 2

	results := Recommend(rankCandidate(), buildCatalog(10), testNow, Options{Policy: &policy})
	assert.Len(t, results, 2)
}

func TestRecommend_ParallelMatchesSequential(t *testing.T) {
	catalog := buildCatalog(300)

	sequential := Recommend(rankCandidate(), catalog, testNow, Options{Workers: 1})
	parallel := Recommend(rankCandidate(), catalog, testNow, Options{Workers: 8})

	assert.Equal(t, sequential, parallel)
}

func TestScoreAll_PreservesInputOrder(t *testing.T) {
	catalog := buildCatalog(parallelThreshold * 2)

	scored := ScoreAll(rankCandidate(), catalog, testNow, DefaultPolicy(), 4)

	require.Len(t, scored, len(catalog))
	for i := range catalog {
		assert.Equal(t, catalog[i].ID, scored[i].ID)
	}
}

func TestRecommend_NilCandidate(t *testing.T) {
	assert.NotPanics(t, func() {
		results := Recommend(nil, buildCatalog(3), testNow, Options{})
		for _, r := range results {
			assert.Equal(t, 0.0, r.Breakdown.SkillScore)
		}
	})
}

func TestRecommend_EmptyCatalog(t *testing.T) {
	results := Recommend(rankCandidate(), nil, testNow, Options{})
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestRecommend_Deterministic(t *testing.T) {
	catalog := buildCatalog(12)

	first := Recommend(rankCandidate(), catalog, testNow, Options{})
	second := Recommend(rankCandidate(), catalog, testNow, Options{})

	assert.Equal(t, first, second)
}
