package main

import (
	"fmt"
	"os"

	"github.com/jonathan/internship-matcher/internal/catalog"
	"github.com/jonathan/internship-matcher/internal/config"
	"github.com/jonathan/internship-matcher/internal/observability"
	"github.com/jonathan/internship-matcher/internal/ranking"
	"github.com/jonathan/internship-matcher/internal/types"
	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank internships for a candidate profile",
	Long:  "Scores every posting in a catalog against a candidate profile and writes the top matches, with scores and reasons, as JSON.",
	RunE:  runRecommend,
}

var (
	recommendProfile string
	recommendCatalog string
	recommendPolicy  string
	recommendOutput  string
	recommendAsOf    string
	recommendLimit   int
	recommendWorkers int
	recommendVerbose bool
)

func init() {
	recommendCmd.Flags().StringVarP(&recommendProfile, "profile", "p", "", "Path to candidate profile JSON file (required)")
	recommendCmd.Flags().StringVarP(&recommendCatalog, "catalog", "c", "", "Path to internship catalog JSON file (required)")
	recommendCmd.Flags().StringVar(&recommendPolicy, "policy", "", "Path to scoring policy YAML (default: built-in policy)")
	recommendCmd.Flags().StringVarP(&recommendOutput, "out", "o", "", "Path to output JSON file (default: stdout)")
	recommendCmd.Flags().StringVar(&recommendAsOf, "as-of", "", "Evaluate deadlines as of this date, YYYY-MM-DD (default: now)")
	recommendCmd.Flags().IntVarP(&recommendLimit, "limit", "n", 0, fmt.Sprintf("Number of results, 1-%d (default: policy limit)", ranking.MaxResults))
	recommendCmd.Flags().IntVar(&recommendWorkers, "workers", 4, "Parallel scoring workers for large catalogs")
	recommendCmd.Flags().BoolVarP(&recommendVerbose, "verbose", "v", false, "Print a readable summary to stderr")

	if err := recommendCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}
	if err := recommendCmd.MarkFlagRequired("catalog"); err != nil {
		panic(fmt.Sprintf("failed to mark catalog flag as required: %v", err))
	}

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(_ *cobra.Command, _ []string) error {
	now, err := parseAsOf(recommendAsOf)
	if err != nil {
		return err
	}

	// 1. Load inputs
	profile, err := loadProfile(recommendProfile)
	if err != nil {
		return err
	}

	postings, err := catalog.Load(recommendCatalog)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	policy, err := config.LoadPolicy(recommendPolicy)
	if err != nil {
		return fmt.Errorf("failed to load policy: %w", err)
	}
	if recommendLimit != 0 {
		policy.Limit = recommendLimit
		if err := policy.Validate(); err != nil {
			return err
		}
	}

	// 2. Rank
	results := ranking.Recommend(profile, postings, now, ranking.Options{
		Policy:  policy,
		Workers: recommendWorkers,
	})

	if recommendVerbose {
		p := observability.NewPrinter(os.Stderr)
		p.PrintCandidate(profile)
		p.PrintRecommendations(results)
	}

	// 3. Write
	if err := writeJSON(recommendOutput, types.Recommendations{
		CandidateID: profile.ID,
		Results:     results,
	}); err != nil {
		return err
	}

	if recommendOutput != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Wrote %d recommendations to %s\n", len(results), recommendOutput)
	}
	return nil
}
