package main

import (
	"fmt"
	"os"

	"github.com/jonathan/internship-matcher/internal/catalog"
	"github.com/jonathan/internship-matcher/internal/observability"
	"github.com/jonathan/internship-matcher/internal/skills"
	"github.com/jonathan/internship-matcher/internal/types"
	"github.com/spf13/cobra"
)

var skillGapCmd = &cobra.Command{
	Use:   "skill-gap",
	Short: "Compare a candidate's skills with a posting or the whole catalog",
	Long:  "Reports matched and missing skills, the match percentage and related skills to learn. With --posting the comparison is against one posting; otherwise against every skill asked for by open postings.",
	RunE:  runSkillGap,
}

var (
	skillGapProfile string
	skillGapCatalog string
	skillGapPosting string
	skillGapOutput  string
	skillGapAsOf    string
	skillGapVerbose bool
)

func init() {
	skillGapCmd.Flags().StringVarP(&skillGapProfile, "profile", "p", "", "Path to candidate profile JSON file (required)")
	skillGapCmd.Flags().StringVarP(&skillGapCatalog, "catalog", "c", "", "Path to internship catalog JSON file (required)")
	skillGapCmd.Flags().StringVar(&skillGapPosting, "posting", "", "Posting intern_id to compare against (default: skills in demand)")
	skillGapCmd.Flags().StringVarP(&skillGapOutput, "out", "o", "", "Path to output JSON file (default: stdout)")
	skillGapCmd.Flags().StringVar(&skillGapAsOf, "as-of", "", "Evaluate deadlines as of this date, YYYY-MM-DD (default: now)")
	skillGapCmd.Flags().BoolVarP(&skillGapVerbose, "verbose", "v", false, "Print a readable summary to stderr")

	if err := skillGapCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}
	if err := skillGapCmd.MarkFlagRequired("catalog"); err != nil {
		panic(fmt.Sprintf("failed to mark catalog flag as required: %v", err))
	}

	rootCmd.AddCommand(skillGapCmd)
}

func runSkillGap(_ *cobra.Command, _ []string) error {
	now, err := parseAsOf(skillGapAsOf)
	if err != nil {
		return err
	}

	profile, err := loadProfile(skillGapProfile)
	if err != nil {
		return err
	}

	postings, err := catalog.Load(skillGapCatalog)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	var (
		gap   types.SkillGap
		title string
	)
	if skillGapPosting != "" {
		posting := findPosting(postings, skillGapPosting)
		if posting == nil {
			return fmt.Errorf("posting not found in catalog: %s", skillGapPosting)
		}
		gap = skills.Gap(profile.Skills, posting.RequiredSkills)
		title = "SKILL GAP: " + posting.Title
	} else {
		open := make([]types.InternshipPosting, 0, len(postings))
		for i := range postings {
			if postings[i].IsOpen(now) {
				open = append(open, postings[i])
			}
		}
		gap = skills.DemandGap(profile.Skills, open)
		title = fmt.Sprintf("SKILLS IN DEMAND (%d open postings)", len(open))
	}

	if skillGapVerbose {
		observability.NewPrinter(os.Stderr).PrintSkillGap(title, gap)
	}

	return writeJSON(skillGapOutput, gap)
}

func findPosting(postings []types.InternshipPosting, id string) *types.InternshipPosting {
	for i := range postings {
		if postings[i].ID == id {
			return &postings[i]
		}
	}
	return nil
}
