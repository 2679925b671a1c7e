package settings

import (
	"github.com/cliniquenova/timeclock-backend-go/internal/pkg/validator"
)

type UpdateSettingsRequest struct {
	DefaultEntryTime         string `json:"default_entry_time"`
	DefaultExitTime          string `json:"default_exit_time"`
	LatenessThresholdMinutes int    `json:"lateness_threshold_minutes"`
}

func (r *UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidClock(r.DefaultEntryTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "default_entry_time",
			Message: "default_entry_time must be HH:MM",
		})
	}

	if !validator.IsValidClock(r.DefaultExitTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "default_exit_time",
			Message: "default_exit_time must be HH:MM",
		})
	}

	if r.LatenessThresholdMinutes < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "lateness_threshold_minutes",
			Message: "lateness_threshold_minutes must be at least 1",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
