package employee

import (
	"github.com/cliniquenova/timeclock-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	LastName   string  `json:"last_name"`
	FirstName  string  `json:"first_name"`
	Department string  `json:"department"`
	Shift      Shift   `json:"shift"`
	EntryTime  *string `json:"entry_time"` // defaults per shift when omitted
	ExitTime   *string `json:"exit_time"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	}

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}

	if !ValidShift(r.Shift) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift",
			Message: "shift must be day or night",
		})
	}

	if r.EntryTime != nil && !validator.IsValidClock(*r.EntryTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "entry_time",
			Message: "entry_time must be HH:MM",
		})
	}

	if r.ExitTime != nil && !validator.IsValidClock(*r.ExitTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "exit_time",
			Message: "exit_time must be HH:MM",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateEmployeeRequest carries a partial update; nil fields are left
// unchanged.
type UpdateEmployeeRequest struct {
	LastName   *string `json:"last_name"`
	FirstName  *string `json:"first_name"`
	Department *string `json:"department"`
	Shift      *Shift  `json:"shift"`
	EntryTime  *string `json:"entry_time"`
	ExitTime   *string `json:"exit_time"`
	Active     *bool   `json:"active"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Shift != nil && !ValidShift(*r.Shift) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift",
			Message: "shift must be day or night",
		})
	}

	if r.EntryTime != nil && !validator.IsValidClock(*r.EntryTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "entry_time",
			Message: "entry_time must be HH:MM",
		})
	}

	if r.ExitTime != nil && !validator.IsValidClock(*r.ExitTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "exit_time",
			Message: "exit_time must be HH:MM",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeFilter struct {
	Active     *bool
	Department *string
}

type EmployeeResponse struct {
	ID         int    `json:"id"`
	LastName   string `json:"last_name"`
	FirstName  string `json:"first_name"`
	Department string `json:"department"`
	EntryTime  string `json:"entry_time"`
	ExitTime   string `json:"exit_time"`
	Active     bool   `json:"active"`
	Shift      Shift  `json:"shift"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		LastName:   e.LastName,
		FirstName:  e.FirstName,
		Department: e.Department,
		EntryTime:  e.EntryTime,
		ExitTime:   e.ExitTime,
		Active:     e.Active,
		Shift:      e.Shift,
	}
}
