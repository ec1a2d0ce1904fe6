package http

import (
	"errors"
	"net/http"

	"github.com/pops-math/popsmath-web/internal/scoring"
)

// writeError maps scoring errors onto statuses: unknown ids are 404,
// precondition violations 409, bad input 400, anything else (storage)
// 500. The message is the error text, teacher-style.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, scoring.ErrUnknownSection),
		errors.Is(err, scoring.ErrUnknownQuestion),
		errors.Is(err, scoring.ErrUnknownTest),
		errors.Is(err, scoring.ErrAttemptNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, scoring.ErrAlreadyChecked),
		errors.Is(err, scoring.ErrAlreadyRetried),
		errors.Is(err, scoring.ErrIncompleteSubmission):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, scoring.ErrInvalidSelection):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
