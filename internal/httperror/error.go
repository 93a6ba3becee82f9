// Package httperror maps errors to HTTP responses.
package httperror

import (
	"errors"
	"net/http"

	"github.com/snapspend/backend/internal/models"
)

type Error struct {
	Message string `json:"error" example:"there is no expense matching your query"`
}

func New(e error) Error {
	return Error{
		Message: e.Error(),
	}
}

// Status returns the appropriate HTTP status for an error. Unknown
// errors are the caller's fault by default; server side errors are
// wrapped in models.ErrGeneral by the database callbacks.
func Status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}
