// Package skills provides case-insensitive skill matching, gap analysis and related-skill suggestions.
package skills

import "strings"

// skillAliases maps common spelling variants to the canonical name shown to users.
var skillAliases = map[string]string{
	"ms excel":         "Excel",
	"microsoft excel":  "Excel",
	"ms word":          "Word",
	"microsoft word":   "Word",
	"ms powerpoint":    "PowerPoint",
	"ppt":              "PowerPoint",
	"ms-office":        "MS Office",
	"microsoft office": "MS Office",
	"golang":           "Go",
	"js":               "JavaScript",
	"nodejs":           "Node.js",
	"node":             "Node.js",
	"reactjs":          "React",
	"react.js":         "React",
	"ml":               "Machine Learning",
	"computer basic":   "Computer Basics",
}

// Key returns the identity used to compare skills: trimmed and lower-cased.
func Key(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}

// Canonical trims a skill name and replaces known aliases with their canonical spelling.
func Canonical(skill string) string {
	trimmed := strings.TrimSpace(skill)
	if canonical, ok := skillAliases[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return trimmed
}

// Dedupe canonicalizes a skill list and removes blanks and case-insensitive duplicates,
// keeping the first spelling seen.
func Dedupe(list []string) []string {
	out := make([]string, 0, len(list))
	seen := make(map[string]bool, len(list))
	for _, skill := range list {
		canonical := Canonical(skill)
		key := Key(canonical)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, canonical)
	}
	return out
}

// keySet builds the case-folded set of a skill list.
func keySet(list []string) map[string]bool {
	set := make(map[string]bool, len(list))
	for _, skill := range list {
		set[Key(skill)] = true
	}
	return set
}
