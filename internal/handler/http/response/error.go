package response

import (
	"errors"
	"net/http"

	"github.com/cliniquenova/timeclock-backend-go/internal/domain/attendance"
	"github.com/cliniquenova/timeclock-backend-go/internal/domain/auth"
	"github.com/cliniquenova/timeclock-backend-go/internal/domain/employee"
	"github.com/cliniquenova/timeclock-backend-go/internal/domain/user"
	"github.com/cliniquenova/timeclock-backend-go/internal/pkg/validator"
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
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already taken")
	case errors.Is(err, user.ErrSeedAdminProtected):
		Forbidden(w, "The seed administrator account cannot be deleted or deactivated")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		BadRequest(w, "Employee is not active", nil)
	case errors.Is(err, employee.ErrUnknownDepartment):
		BadRequest(w, "Unknown department", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Entry punch already recorded for today")
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		Conflict(w, "Exit punch already recorded for today")
	case errors.Is(err, attendance.ErrPunchNotFound):
		NotFound(w, "Punch not found")

	// Default: persistence and unexpected failures. State is as of the last
	// successful write; the client may retry the action.
	default:
		InternalServerError(w, "An unexpected error occurred; please retry")
	}
}
