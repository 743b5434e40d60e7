package types

import "time"

// ApplicationStatus is the stage of an application in the recruiter pipeline.
type ApplicationStatus string

// Application statuses, in display order.
const (
	StatusApplied     ApplicationStatus = "Applied"
	StatusInReview    ApplicationStatus = "In Review"
	StatusShortlisted ApplicationStatus = "Shortlisted"
	StatusRejected    ApplicationStatus = "Rejected"
	StatusOffer       ApplicationStatus = "Offer"
)

// ApplicationStatuses lists every status in display order.
var ApplicationStatuses = []ApplicationStatus{
	StatusApplied,
	StatusInReview,
	StatusShortlisted,
	StatusRejected,
	StatusOffer,
}

// Valid reports whether s is a known status.
func (s ApplicationStatus) Valid() bool {
	for _, status := range ApplicationStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Application is a candidate's application to a posting.
// Title and organization are snapshotted at apply time so the tracker survives posting deletion.
type Application struct {
	ID              string            `json:"id"`
	CandidateID     string            `json:"candidate_id"`
	PostingID       string            `json:"intern_id"`
	InternshipTitle string            `json:"internship_title"`
	Organization    string            `json:"organization"`
	RecruiterID     string            `json:"recruiter_id,omitempty"`
	Status          ApplicationStatus `json:"status"`
	AppliedAt       time.Time         `json:"applied_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// SavedPosting is a bookmark from a candidate to a posting.
type SavedPosting struct {
	CandidateID string    `json:"candidate_id"`
	PostingID   string    `json:"intern_id"`
	SavedAt     time.Time `json:"saved_at"`
}

// StatusCount is the number of applications in a given status.
type StatusCount struct {
	Status ApplicationStatus `json:"status"`
	Count  int               `json:"count"`
}

// TrackerView is a candidate's application dashboard.
type TrackerView struct {
	CandidateID  string        `json:"candidate_id"`
	Applications []Application `json:"applications"`
	Counts       []StatusCount `json:"counts"`
	Summary      []string      `json:"summary"`
}

// Applicant is an application as seen by a recruiter, with the applicant's profile attached.
type Applicant struct {
	Application
	CandidateName  string         `json:"candidate_name"`
	EducationLevel EducationLevel `json:"education_level,omitempty"`
	Skills         []string       `json:"skills"`
	District       string         `json:"district,omitempty"`
}
