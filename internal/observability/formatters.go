// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/internship-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// printNotice prints a single-line box.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printNotice(message string) {
	fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, message)
	fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
}

// PrintCandidate outputs the profile the recommendations were computed for.
func (p *Printer) PrintCandidate(c *types.CandidateProfile) {
	if c == nil {
		return
	}

	var sb strings.Builder
	name := c.Name
	if name == "" {
		name = c.ID
	}
	sb.WriteString(fmt.Sprintf("Name:       %s\n", name))
	sb.WriteString(fmt.Sprintf("Education:  %s\n", c.EducationLevel))
	if c.District != "" {
		sb.WriteString(fmt.Sprintf("District:   %s\n", c.District))
	}
	if c.Location != nil {
		sb.WriteString(fmt.Sprintf("Location:   %.4f, %.4f\n", c.Location.Lat, c.Location.Lon))
	} else {
		sb.WriteString("Location:   unknown\n")
	}
	if c.FirstGen {
		sb.WriteString("First-generation learner\n")
	}
	sb.WriteString(fmt.Sprintf("Skills:     %s", strings.Join(c.Skills, ", ")))

	p.printBox("CANDIDATE PROFILE", sb.String())
}

// PrintRecommendations outputs the ranked postings with scores and reasons.
func (p *Printer) PrintRecommendations(results []types.ScoredPosting) {
	if len(results) == 0 {
		p.printNotice("NO MATCHING INTERNSHIPS")
		return
	}

	var sb strings.Builder
	for i, r := range results {
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, r.Title))
		sb.WriteString(fmt.Sprintf("    %s\n", r.Organization))
		sb.WriteString(fmt.Sprintf("    Match: %d%%  (score %.3f)", r.MatchPercentage, r.Score))
		if r.DistanceKm != nil {
			sb.WriteString(fmt.Sprintf("  %dkm", *r.DistanceKm))
		}
		sb.WriteString("\n")
		for _, reason := range r.Reasons {
			sb.WriteString(fmt.Sprintf("    • %s\n", reason))
		}
		if i < len(results)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox(fmt.Sprintf("TOP %d RECOMMENDATIONS", len(results)), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkillGap outputs which skills the candidate has, lacks, and might learn next.
func (p *Printer) PrintSkillGap(title string, gap types.SkillGap) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Match: %d%%\n\n", gap.MatchPercentage))

	writeList := func(label string, items []string) {
		if len(items) == 0 {
			return
		}
		sb.WriteString(label + ":\n")
		count := min(len(items), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
		}
		if len(items) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}
	writeList("Have", gap.Matched)
	writeList("Missing", gap.Missing)
	writeList("Suggested", gap.Suggestions)

	p.printBox(title, strings.TrimRight(sb.String(), "\n"))
}

// PrintTracker outputs a candidate's application counts and the status summary.
func (p *Printer) PrintTracker(view *types.TrackerView) {
	if view == nil {
		return
	}
	if len(view.Applications) == 0 {
		p.printNotice("NO APPLICATIONS YET")
		return
	}

	var sb strings.Builder
	for _, c := range view.Counts {
		sb.WriteString(fmt.Sprintf("%-12s %d\n", c.Status, c.Count))
	}
	sb.WriteString("\n")
	for _, line := range view.Summary {
		sb.WriteString(line + "\n")
	}

	p.printBox("APPLICATION TRACKER", strings.TrimSuffix(sb.String(), "\n"))
}
