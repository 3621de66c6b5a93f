package response

import (
	"errors"
	"net/http"

	"github.com/sriram315/project-dashboard-go/internal/domain/dashboard"
	"github.com/sriram315/project-dashboard-go/internal/domain/user"
	"github.com/sriram315/project-dashboard-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Identity errors
	case errors.Is(err, user.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrIdentityNotFound):
		Unauthorized(w, "Identity not found in token")
	case errors.Is(err, user.ErrUnknownRole):
		Unauthorized(w, "Unknown role")

	// Dashboard errors
	case errors.Is(err, dashboard.ErrAllSourcesFailed):
		BadGateway(w, "All dashboard data sources failed")
	case errors.Is(err, dashboard.ErrNoSnapshot):
		NotFound(w, "No dashboard snapshot available")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
