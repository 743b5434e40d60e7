package server

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/internship-matcher/internal/tracker"
	"github.com/jonathan/internship-matcher/internal/types"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		candidateNotFound   *tracker.ErrCandidateNotFound
		postingNotFound     *tracker.ErrPostingNotFound
		applicationNotFound *tracker.ErrApplicationNotFound
		alreadyApplied      *tracker.ErrAlreadyApplied
		invalidStatus       *tracker.ErrInvalidStatus
		staticPosting       *tracker.ErrStaticPosting
		validation          *tracker.ErrValidation
		invalidDeadline     *types.InvalidDeadlineError
		fieldErrors         validator.ValidationErrors
	)

	switch {
	case errors.As(err, &candidateNotFound),
		errors.As(err, &postingNotFound),
		errors.As(err, &applicationNotFound):
		return http.StatusNotFound
	case errors.As(err, &alreadyApplied):
		return http.StatusConflict
	case errors.As(err, &staticPosting):
		return http.StatusForbidden
	case errors.As(err, &invalidStatus),
		errors.As(err, &validation),
		errors.As(err, &invalidDeadline),
		errors.As(err, &fieldErrors):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
