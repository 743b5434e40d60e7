package ranking

import (
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/internship-matcher/internal/types"
)

// parallelThreshold is the catalog size below which scoring always runs sequentially.
const parallelThreshold = 64

// Options tunes a single Recommend call.
type Options struct {
	// Policy overrides DefaultPolicy when non-nil.
	Policy *Policy
	// Workers > 1 scores large catalogs concurrently. Output order does not depend on it.
	Workers int
}

func (o Options) policy() Policy {
	if o.Policy != nil {
		return *o.Policy
	}
	return DefaultPolicy()
}

// Recommend scores every posting for the candidate and returns the best matches:
// only scores strictly above the policy threshold, sorted descending (ties keep input order),
// at most Limit entries. A nil candidate is treated as an empty profile.
func Recommend(candidate *types.CandidateProfile, postings []types.InternshipPosting, now time.Time, opts Options) []types.ScoredPosting {
	policy := opts.policy()
	if candidate == nil {
		candidate = &types.CandidateProfile{}
	}
	limit := policy.Limit
	if limit <= 0 || limit > MaxResults {
		limit = MaxResults
	}

	scored := ScoreAll(candidate, postings, now, policy, opts.Workers)

	results := make([]types.ScoredPosting, 0, limit)
	for _, sp := range scored {
		if sp.Score > policy.MinScore {
			results = append(results, sp)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// ScoreAll scores every posting, unfiltered, in input order.
func ScoreAll(candidate *types.CandidateProfile, postings []types.InternshipPosting, now time.Time, policy Policy, workers int) []types.ScoredPosting {
	out := make([]types.ScoredPosting, len(postings))

	if workers <= 1 || len(postings) < parallelThreshold {
		for i := range postings {
			out[i] = ScorePosting(candidate, &postings[i], now, policy)
		}
		return out
	}

	// Each goroutine owns one slot of out, so no locking is needed
	var g errgroup.Group
	g.SetLimit(workers)
	for i := range postings {
		g.Go(func() error {
			out[i] = ScorePosting(candidate, &postings[i], now, policy)
			return nil
		})
	}
	_ = g.Wait()

	return out
}
