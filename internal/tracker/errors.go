package tracker

import "fmt"

// ErrCandidateNotFound indicates the candidate does not exist
type ErrCandidateNotFound struct {
	CandidateID string
}

func (e *ErrCandidateNotFound) Error() string {
	return fmt.Sprintf("candidate not found: %s", e.CandidateID)
}

// ErrPostingNotFound indicates the posting exists in neither the catalog nor the store
type ErrPostingNotFound struct {
	PostingID string
}

func (e *ErrPostingNotFound) Error() string {
	return fmt.Sprintf("posting not found: %s", e.PostingID)
}

// ErrApplicationNotFound indicates the application does not exist
type ErrApplicationNotFound struct {
	ApplicationID string
}

func (e *ErrApplicationNotFound) Error() string {
	return fmt.Sprintf("application not found: %s", e.ApplicationID)
}

// ErrAlreadyApplied indicates a second application to the same posting
type ErrAlreadyApplied struct {
	CandidateID string
	PostingID   string
}

func (e *ErrAlreadyApplied) Error() string {
	return fmt.Sprintf("candidate %s has already applied to %s", e.CandidateID, e.PostingID)
}

// ErrInvalidStatus indicates an unknown application status
type ErrInvalidStatus struct {
	Status string
}

func (e *ErrInvalidStatus) Error() string {
	return fmt.Sprintf("invalid application status: %q", e.Status)
}

// ErrStaticPosting indicates an attempt to delete a posting from the static catalog
type ErrStaticPosting struct {
	PostingID string
}

func (e *ErrStaticPosting) Error() string {
	return fmt.Sprintf("posting %s belongs to the static catalog and cannot be deleted", e.PostingID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}
