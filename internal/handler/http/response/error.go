package response

import (
	"errors"
	"net/http"

	"github.com/andalanhr/hrops-backend-go/internal/domain/dashboard"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, dashboard.ErrInvalidCalendarMonth):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, dashboard.ErrInvalidCalendarYear):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
