package types

import (
	"github.com/go-playground/validator/v10"
)

// CreateCandidateRequest represents the request to create a candidate profile.
type CreateCandidateRequest struct {
	Name               string         `json:"name" validate:"required,min=1"`
	Phone              string         `json:"phone,omitempty" validate:"omitempty,min=6,max=20"`
	District           string         `json:"district,omitempty"`
	EducationLevel     EducationLevel `json:"education_level" validate:"required,oneof=10th 12th Graduation Post-Graduation"`
	Skills             []string       `json:"skills" validate:"required,min=1,dive,required"`
	FirstGen           bool           `json:"first_gen_flag"`
	Gender             string         `json:"gender,omitempty"`
	Location           *Coordinates   `json:"location,omitempty"`
	PreferredLocations []string       `json:"preferred_locations,omitempty"`
}

// UpdateCandidateRequest represents a partial profile update. Nil fields are left unchanged.
type UpdateCandidateRequest struct {
	Name           *string         `json:"name,omitempty" validate:"omitempty,min=1"`
	District       *string         `json:"district,omitempty"`
	EducationLevel *EducationLevel `json:"education_level,omitempty" validate:"omitempty,oneof=10th 12th Graduation Post-Graduation"`
	Skills         []string        `json:"skills,omitempty" validate:"omitempty,dive,required"`
	FirstGen       *bool           `json:"first_gen_flag,omitempty"`
	Gender         *string         `json:"gender,omitempty"`
	Location       *Coordinates    `json:"location,omitempty"`
}

// CreatePostingRequest represents a recruiter's new internship posting.
type CreatePostingRequest struct {
	RecruiterID       string           `json:"recruiter_id" validate:"required"`
	Title             string           `json:"title" validate:"required,min=1"`
	Organization      string           `json:"organization" validate:"required"`
	Description       string           `json:"description,omitempty"`
	Sector            string           `json:"sector,omitempty"`
	RequiredSkills    []string         `json:"required_skills" validate:"required,min=1,dive,required"`
	RequiredEducation EducationLevel   `json:"required_education" validate:"required,oneof=10th 12th Graduation Post-Graduation"`
	Deadline          string           `json:"deadline" validate:"required"`
	Location          *PostingLocation `json:"location,omitempty"`
	Stipend           int              `json:"stipend" validate:"gte=0"`
	DurationWeeks     int              `json:"duration_weeks" validate:"gte=1"`
	Remote            bool             `json:"remote_flag"`
}

// ApplyRequest represents a candidate applying to, or saving, a posting.
type ApplyRequest struct {
	PostingID string `json:"intern_id" validate:"required"`
}

// UpdateStatusRequest represents a status change on an application.
type UpdateStatusRequest struct {
	Status ApplicationStatus `json:"status" validate:"required,oneof=Applied 'In Review' Shortlisted Rejected Offer"`
}

// Validate validates the CreateCandidateRequest using the validator.
func (r *CreateCandidateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdateCandidateRequest using the validator.
func (r *UpdateCandidateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CreatePostingRequest using the validator.
// The deadline must also parse in one of the accepted layouts.
func (r *CreatePostingRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	p := InternshipPosting{Deadline: r.Deadline}
	if _, ok := p.DeadlineTime(); !ok {
		return &InvalidDeadlineError{Value: r.Deadline}
	}
	return nil
}

// Validate validates the ApplyRequest using the validator.
func (r *ApplyRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdateStatusRequest using the validator.
func (r *UpdateStatusRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// InvalidDeadlineError indicates a deadline that matches none of the accepted layouts.
type InvalidDeadlineError struct {
	Value string
}

func (e *InvalidDeadlineError) Error() string {
	return "invalid deadline: " + e.Value + " (want YYYY-MM-DD or RFC3339)"
}
