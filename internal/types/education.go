// Package types provides type definitions for structured data used throughout the internship matcher.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// EducationLevel is a candidate's highest completed education, or a posting's minimum requirement.
type EducationLevel string

// Education levels in ascending order.
const (
	Education10th           EducationLevel = "10th"
	Education12th           EducationLevel = "12th"
	EducationGraduation     EducationLevel = "Graduation"
	EducationPostGraduation EducationLevel = "Post-Graduation"
)

// EducationLevels lists every known level, lowest first.
var EducationLevels = []EducationLevel{
	Education10th,
	Education12th,
	EducationGraduation,
	EducationPostGraduation,
}

// Rank returns the position of the level in EducationLevels, or -1 if the level is unknown.
// Comparison is case-insensitive.
func (e EducationLevel) Rank() int {
	needle := strings.ToLower(strings.TrimSpace(string(e)))
	for i, level := range EducationLevels {
		if strings.ToLower(string(level)) == needle {
			return i
		}
	}
	return -1
}

// Valid reports whether the level is one of EducationLevels.
func (e EducationLevel) Valid() bool {
	return e.Rank() >= 0
}

// Meets reports whether a candidate at level e satisfies the required level.
// An unknown requirement ranks -1 and is therefore always met.
func (e EducationLevel) Meets(required EducationLevel) bool {
	return e.Rank() >= required.Rank()
}
