package types

import "time"

// Coordinates is a point on the earth's surface, in degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// CandidateProfile represents a job seeker.
type CandidateProfile struct {
	ID                 string         `json:"candidate_id"`
	Name               string         `json:"name"`
	Phone              string         `json:"phone,omitempty"`
	District           string         `json:"district,omitempty"`
	EducationLevel     EducationLevel `json:"education_level"`
	Skills             []string       `json:"skills"`
	FirstGen           bool           `json:"first_gen_flag"`
	Gender             string         `json:"gender,omitempty"`
	Location           *Coordinates   `json:"location,omitempty"` // nil when geolocation is unknown
	PreferredLocations []string       `json:"preferred_locations,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}
