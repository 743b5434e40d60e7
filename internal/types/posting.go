package types

import (
	"strings"
	"time"
)

// deadlineLayouts are the accepted deadline formats, tried in order.
var deadlineLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// PostingLocation is where an internship takes place. Coordinates are optional:
// recruiter-posted jobs usually carry only a district and state.
type PostingLocation struct {
	Lat      *float64 `json:"lat,omitempty"`
	Lon      *float64 `json:"lon,omitempty"`
	District string   `json:"district,omitempty"`
	State    string   `json:"state,omitempty"`
}

// Coordinates returns the location's point and true when both latitude and longitude are set.
func (l *PostingLocation) Coordinates() (Coordinates, bool) {
	if l == nil || l.Lat == nil || l.Lon == nil {
		return Coordinates{}, false
	}
	return Coordinates{Lat: *l.Lat, Lon: *l.Lon}, true
}

// InternshipPosting is an internship opportunity, either from the static catalog or posted by a recruiter.
type InternshipPosting struct {
	ID                string           `json:"intern_id"`
	Title             string           `json:"title"`
	Organization      string           `json:"organization"`
	Description       string           `json:"description,omitempty"`
	Sector            string           `json:"sector,omitempty"`
	RequiredSkills    []string         `json:"required_skills"`
	RequiredEducation EducationLevel   `json:"required_education"`
	Deadline          string           `json:"deadline"`
	Location          *PostingLocation `json:"location,omitempty"`
	Stipend           int              `json:"stipend"`
	DurationWeeks     int              `json:"duration_weeks"`
	Remote            bool             `json:"remote_flag"`
	Tags              []string         `json:"tags,omitempty"`
	RecruiterID       string           `json:"recruiter_id,omitempty"`
	PostedAt          *time.Time       `json:"posted_at,omitempty"`
}

// DeadlineTime parses the deadline. The boolean is false when the deadline is empty or unparseable.
func (p *InternshipPosting) DeadlineTime() (time.Time, bool) {
	raw := strings.TrimSpace(p.Deadline)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// IsOpen reports whether applications are still accepted at now.
// An unparseable deadline counts as closed.
func (p *InternshipPosting) IsOpen(now time.Time) bool {
	deadline, ok := p.DeadlineTime()
	if !ok {
		return false
	}
	return now.Before(deadline)
}

// IsRecruiterPosted reports whether the posting was created through the recruiter API.
func (p *InternshipPosting) IsRecruiterPosted() bool {
	return p.RecruiterID != ""
}
