package attendance

import (
	"github.com/cliniquenova/timeclock-backend-go/internal/pkg/validator"
)

type ClockRequest struct {
	EmployeeID int `json:"employee_id"`
}

func (r *ClockRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MarkAbsenceRequest struct {
	EmployeeID    int         `json:"employee_id"`
	Date          string      `json:"date"`
	Type          AbsenceType `json:"type"`
	Justification string      `json:"justification"`
}

func (r *MarkAbsenceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be YYYY-MM-DD",
		})
	}

	if !ValidAbsenceType(r.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of sick, leave, other",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PunchFilter struct {
	EmployeeID *int
	Date       *string
	From       *string
	To         *string
	Kind       *PunchKind
}

type LatenessFilter struct {
	EmployeeID *int
	From       *string
	To         *string
}

type AbsenceFilter struct {
	EmployeeID *int
	Date       *string
}

type PunchResponse struct {
	ID         int       `json:"id"`
	EmployeeID int       `json:"employee_id"`
	LastName   string    `json:"last_name"`
	FirstName  string    `json:"first_name"`
	Department string    `json:"department"`
	Kind       PunchKind `json:"kind"`
	Time       *string   `json:"time"`
	Date       string    `json:"date"`
	Status     string    `json:"status"`

	// Lateness is set on entry punches that exceeded the threshold.
	Lateness *LatenessEventResponse `json:"lateness,omitempty"`
}

func ToPunchResponse(p Punch) PunchResponse {
	return PunchResponse{
		ID:         p.ID,
		EmployeeID: p.EmployeeID,
		LastName:   p.LastName,
		FirstName:  p.FirstName,
		Department: p.Department,
		Kind:       p.Kind,
		Time:       p.Time,
		Date:       p.Date,
		Status:     p.Status,
	}
}

type LatenessEventResponse struct {
	ID              int    `json:"id"`
	EmployeeID      int    `json:"employee_id"`
	LastName        string `json:"last_name"`
	FirstName       string `json:"first_name"`
	Department      string `json:"department"`
	ArrivalTime     string `json:"arrival_time"`
	ScheduledTime   string `json:"scheduled_time"`
	LatenessMinutes int    `json:"lateness_minutes"`
	LatenessDisplay string `json:"lateness_display"`
	Date            string `json:"date"`
}

func ToLatenessResponse(e LatenessEvent) LatenessEventResponse {
	return LatenessEventResponse{
		ID:              e.ID,
		EmployeeID:      e.EmployeeID,
		LastName:        e.LastName,
		FirstName:       e.FirstName,
		Department:      e.Department,
		ArrivalTime:     e.ArrivalTime,
		ScheduledTime:   e.ScheduledTime,
		LatenessMinutes: e.LatenessMinutes,
		LatenessDisplay: e.LatenessDisplay,
		Date:            e.Date,
	}
}

type AbsenceResponse struct {
	ID            int         `json:"id"`
	EmployeeID    int         `json:"employee_id"`
	LastName      string      `json:"last_name"`
	FirstName     string      `json:"first_name"`
	Department    string      `json:"department"`
	Date          string      `json:"date"`
	Type          AbsenceType `json:"type"`
	Justification string      `json:"justification"`
}

func ToAbsenceResponse(a Absence) AbsenceResponse {
	return AbsenceResponse{
		ID:            a.ID,
		EmployeeID:    a.EmployeeID,
		LastName:      a.LastName,
		FirstName:     a.FirstName,
		Department:    a.Department,
		Date:          a.Date,
		Type:          a.Type,
		Justification: a.Justification,
	}
}

type WorkHoursResponse struct {
	EmployeeID int         `json:"employee_id"`
	Date       string      `json:"date"`
	Policy     HoursPolicy `json:"policy"`
	Minutes    int         `json:"minutes"`
	Display    string      `json:"display"` // "8h30"
}

// MissingEmployee identifies an active employee in the missing-punch report.
type MissingEmployee struct {
	ID         int    `json:"id"`
	LastName   string `json:"last_name"`
	FirstName  string `json:"first_name"`
	Department string `json:"department"`
}

// MissingPunchesResponse partitions today's active employees into those who
// have not clocked in and those who clocked in but not out. Advisory only.
type MissingPunchesResponse struct {
	Date    string            `json:"date"`
	NoEntry []MissingEmployee `json:"no_entry"`
	NoExit  []MissingEmployee `json:"no_exit"`
}

type LatenessStats struct {
	Total          int            `json:"total"`
	AverageMinutes int            `json:"average_minutes"`
	MaxMinutes     int            `json:"max_minutes"`
	MostFrequent   string         `json:"most_frequent"` // "First Last (Department)"
	ByDepartment   map[string]int `json:"by_department"`
	ByDate         map[string]int `json:"by_date"`
}
