package backup

import (
	"time"

	"github.com/cliniquenova/timeclock-backend-go/internal/domain/attendance"
	"github.com/cliniquenova/timeclock-backend-go/internal/domain/employee"
	"github.com/cliniquenova/timeclock-backend-go/internal/domain/settings"
	"github.com/cliniquenova/timeclock-backend-go/internal/domain/user"
)

// Snapshot is the full-database export: all five collections plus the
// persisted configuration. Importing a snapshot replaces the whole store
// atomically, record ids included. The record types below pin the file
// format; entity changes must not silently reshape exported snapshots.
type Snapshot struct {
	ID             string                `json:"id"`
	ExportedAt     string                `json:"exported_at"`
	Users          []UserRecord          `json:"users"`
	Employees      []EmployeeRecord      `json:"employees"`
	Punches        []PunchRecord         `json:"punches"`
	LatenessEvents []LatenessEventRecord `json:"lateness_events"`
	Absences       []AbsenceRecord       `json:"absences"`
	Settings       settings.Settings     `json:"settings"`
}

type UserRecord struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"`
	LastName     string    `json:"last_name"`
	FirstName    string    `json:"first_name"`
	Role         user.Role `json:"role"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewUserRecord(u user.User) UserRecord {
	return UserRecord{
		ID:           u.ID,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		LastName:     u.LastName,
		FirstName:    u.FirstName,
		Role:         u.Role,
		Active:       u.Active,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (r UserRecord) ToEntity() user.User {
	return user.User{
		ID:           r.ID,
		Username:     r.Username,
		PasswordHash: r.PasswordHash,
		LastName:     r.LastName,
		FirstName:    r.FirstName,
		Role:         r.Role,
		Active:       r.Active,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

type EmployeeRecord struct {
	ID         int            `json:"id"`
	LastName   string         `json:"last_name"`
	FirstName  string         `json:"first_name"`
	Department string         `json:"department"`
	EntryTime  string         `json:"entry_time"`
	ExitTime   string         `json:"exit_time"`
	Active     bool           `json:"active"`
	Shift      employee.Shift `json:"shift"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

func NewEmployeeRecord(e employee.Employee) EmployeeRecord {
	return EmployeeRecord{
		ID:         e.ID,
		LastName:   e.LastName,
		FirstName:  e.FirstName,
		Department: e.Department,
		EntryTime:  e.EntryTime,
		ExitTime:   e.ExitTime,
		Active:     e.Active,
		Shift:      e.Shift,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func (r EmployeeRecord) ToEntity() employee.Employee {
	return employee.Employee{
		ID:         r.ID,
		LastName:   r.LastName,
		FirstName:  r.FirstName,
		Department: r.Department,
		EntryTime:  r.EntryTime,
		ExitTime:   r.ExitTime,
		Active:     r.Active,
		Shift:      r.Shift,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

type PunchRecord struct {
	ID         int                  `json:"id"`
	EmployeeID int                  `json:"employee_id"`
	LastName   string               `json:"last_name"`
	FirstName  string               `json:"first_name"`
	Department string               `json:"department"`
	Kind       attendance.PunchKind `json:"kind"`
	Time       *string              `json:"time"`
	Date       string               `json:"date"`
	Status     string               `json:"status"`
}

func NewPunchRecord(p attendance.Punch) PunchRecord {
	return PunchRecord{
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

func (r PunchRecord) ToEntity() attendance.Punch {
	return attendance.Punch{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		LastName:   r.LastName,
		FirstName:  r.FirstName,
		Department: r.Department,
		Kind:       r.Kind,
		Time:       r.Time,
		Date:       r.Date,
		Status:     r.Status,
	}
}

type LatenessEventRecord struct {
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

func NewLatenessEventRecord(e attendance.LatenessEvent) LatenessEventRecord {
	return LatenessEventRecord{
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

func (r LatenessEventRecord) ToEntity() attendance.LatenessEvent {
	return attendance.LatenessEvent{
		ID:              r.ID,
		EmployeeID:      r.EmployeeID,
		LastName:        r.LastName,
		FirstName:       r.FirstName,
		Department:      r.Department,
		ArrivalTime:     r.ArrivalTime,
		ScheduledTime:   r.ScheduledTime,
		LatenessMinutes: r.LatenessMinutes,
		LatenessDisplay: r.LatenessDisplay,
		Date:            r.Date,
	}
}

type AbsenceRecord struct {
	ID            int                    `json:"id"`
	EmployeeID    int                    `json:"employee_id"`
	LastName      string                 `json:"last_name"`
	FirstName     string                 `json:"first_name"`
	Department    string                 `json:"department"`
	Date          string                 `json:"date"`
	Type          attendance.AbsenceType `json:"type"`
	Justification string                 `json:"justification"`
}

func NewAbsenceRecord(a attendance.Absence) AbsenceRecord {
	return AbsenceRecord{
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

func (r AbsenceRecord) ToEntity() attendance.Absence {
	return attendance.Absence{
		ID:            r.ID,
		EmployeeID:    r.EmployeeID,
		LastName:      r.LastName,
		FirstName:     r.FirstName,
		Department:    r.Department,
		Date:          r.Date,
		Type:          r.Type,
		Justification: r.Justification,
	}
}
