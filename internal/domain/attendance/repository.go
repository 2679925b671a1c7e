package attendance

import "context"

type PunchRepository interface {
	Create(ctx context.Context, p Punch) (Punch, error)
	List(ctx context.Context, filter PunchFilter) ([]Punch, error)
	// ExistsForDay reports whether the employee already has a punch of the
	// given kind on the given date.
	ExistsForDay(ctx context.Context, employeeID int, date string, kind PunchKind) (bool, error)
	// HasAnyForDay reports whether the employee has any punch on the date.
	HasAnyForDay(ctx context.Context, employeeID int, date string) (bool, error)
	Restore(ctx context.Context, punches []Punch) error
}

type LatenessRepository interface {
	Create(ctx context.Context, e LatenessEvent) (LatenessEvent, error)
	List(ctx context.Context, filter LatenessFilter) ([]LatenessEvent, error)
	Restore(ctx context.Context, events []LatenessEvent) error
}

type AbsenceRepository interface {
	Create(ctx context.Context, a Absence) (Absence, error)
	List(ctx context.Context, filter AbsenceFilter) ([]Absence, error)
	Restore(ctx context.Context, absences []Absence) error
}

type AttendanceService interface {
	// ClockIn records an entry punch for today and evaluates lateness.
	ClockIn(ctx context.Context, req ClockRequest) (PunchResponse, error)
	// ClockOut records an exit punch for today.
	ClockOut(ctx context.Context, req ClockRequest) (PunchResponse, error)
	ListPunches(ctx context.Context, filter PunchFilter) ([]Punch, error)
	// WorkHours computes the worked duration for an employee on a date under
	// the given policy (net-of-breaks when empty).
	WorkHours(ctx context.Context, employeeID int, date string, policy HoursPolicy) (WorkHoursResponse, error)
	MissingPunches(ctx context.Context, date string) (MissingPunchesResponse, error)
	MarkAbsence(ctx context.Context, req MarkAbsenceRequest) (Absence, error)
	ListAbsences(ctx context.Context, filter AbsenceFilter) ([]Absence, error)
	ListLateness(ctx context.Context, filter LatenessFilter) ([]LatenessEvent, error)
	Stats(ctx context.Context, filter LatenessFilter) (LatenessStats, error)
}
