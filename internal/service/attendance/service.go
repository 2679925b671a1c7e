package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/cliniquenova/timeclock-backend-go/internal/domain/attendance"
	"github.com/cliniquenova/timeclock-backend-go/internal/domain/employee"
	"github.com/cliniquenova/timeclock-backend-go/internal/domain/settings"
	"github.com/cliniquenova/timeclock-backend-go/internal/pkg/database"
	"github.com/cliniquenova/timeclock-backend-go/internal/pkg/timeutil"
	"github.com/cliniquenova/timeclock-backend-go/internal/repository/sqlite"
)

const dateLayout = "2006-01-02"

// fallbackEntryClock guards against a malformed configured default; it
// matches the schema-seeded value.
var fallbackEntryClock = timeutil.Clock{Hour: 8, Minute: 0}

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.PunchRepository
	attendance.LatenessRepository
	attendance.AbsenceRepository
	employee.EmployeeRepository
	settings.SettingsRepository

	now func() time.Time
}

func NewAttendanceService(
	db *database.DB,
	punchRepository attendance.PunchRepository,
	latenessRepository attendance.LatenessRepository,
	absenceRepository attendance.AbsenceRepository,
	employeeRepository employee.EmployeeRepository,
	settingsRepository settings.SettingsRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                 db,
		PunchRepository:    punchRepository,
		LatenessRepository: latenessRepository,
		AbsenceRepository:  absenceRepository,
		EmployeeRepository: employeeRepository,
		SettingsRepository: settingsRepository,
		now:                time.Now,
	}
}

// ClockIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockRequest) (attendance.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.PunchResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.PunchResponse{}, err
	}
	if !emp.Active {
		return attendance.PunchResponse{}, employee.ErrEmployeeInactive
	}

	now := s.now()
	date := now.Format(dateLayout)
	arrival := timeutil.ClockFromTime(now)

	// The punch and its lateness event commit together or not at all.
	var punch attendance.Punch
	var lateness *attendance.LatenessEvent
	err = sqlite.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		exists, err := s.PunchRepository.ExistsForDay(ctx, emp.ID, date, attendance.KindEntry)
		if err != nil {
			return fmt.Errorf("failed to check today's entry punches: %w", err)
		}
		if exists {
			return attendance.ErrAlreadyClockedIn
		}

		timeStr := arrival.String()
		punch, err = s.PunchRepository.Create(ctx, attendance.Punch{
			EmployeeID: emp.ID,
			LastName:   emp.LastName,
			FirstName:  emp.FirstName,
			Department: emp.Department,
			Kind:       attendance.KindEntry,
			Time:       &timeStr,
			Date:       date,
			Status:     attendance.StatusPresent,
		})
		if err != nil {
			return fmt.Errorf("failed to record entry punch: %w", err)
		}

		lateness, err = s.evaluateLateness(ctx, emp, arrival, date)
		return err
	})
	if err != nil {
		return attendance.PunchResponse{}, err
	}

	resp := attendance.ToPunchResponse(punch)
	if lateness != nil {
		lr := attendance.ToLatenessResponse(*lateness)
		resp.Lateness = &lr
	}
	return resp, nil
}

// evaluateLateness compares the arrival time against the employee's scheduled
// entry time and records a lateness event when the configured threshold is
// strictly exceeded. Arriving exactly at the threshold is not late.
func (s *AttendanceServiceImpl) evaluateLateness(ctx context.Context, emp employee.Employee, arrival timeutil.Clock, date string) (*attendance.LatenessEvent, error) {
	cfg, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	defaultEntry := timeutil.ParseClockOr(cfg.DefaultEntryTime, fallbackEntryClock)

	scheduled, err := timeutil.ParseClock(emp.EntryTime)
	if err != nil {
		slog.Warn("employee has malformed scheduled entry time, using configured default",
			"employee_id", emp.ID, "entry_time", emp.EntryTime, "default", cfg.DefaultEntryTime)
		scheduled = defaultEntry
	}

	lateMinutes := timeutil.MinutesBetween(arrival, scheduled)
	if lateMinutes <= cfg.LatenessThresholdMinutes {
		return nil, nil
	}

	event, err := s.LatenessRepository.Create(ctx, attendance.LatenessEvent{
		EmployeeID:      emp.ID,
		LastName:        emp.LastName,
		FirstName:       emp.FirstName,
		Department:      emp.Department,
		ArrivalTime:     arrival.String(),
		ScheduledTime:   scheduled.String(),
		LatenessMinutes: lateMinutes,
		LatenessDisplay: timeutil.FormatLateness(lateMinutes),
		Date:            date,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record lateness event: %w", err)
	}
	return &event, nil
}

// ClockOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockRequest) (attendance.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.PunchResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.PunchResponse{}, err
	}
	if !emp.Active {
		return attendance.PunchResponse{}, employee.ErrEmployeeInactive
	}

	now := s.now()
	date := now.Format(dateLayout)

	exists, err := s.PunchRepository.ExistsForDay(ctx, emp.ID, date, attendance.KindExit)
	if err != nil {
		return attendance.PunchResponse{}, fmt.Errorf("failed to check today's exit punches: %w", err)
	}
	if exists {
		return attendance.PunchResponse{}, attendance.ErrAlreadyClockedOut
	}

	timeStr := timeutil.ClockFromTime(now).String()
	punch, err := s.PunchRepository.Create(ctx, attendance.Punch{
		EmployeeID: emp.ID,
		LastName:   emp.LastName,
		FirstName:  emp.FirstName,
		Department: emp.Department,
		Kind:       attendance.KindExit,
		Time:       &timeStr,
		Date:       date,
		Status:     attendance.StatusPresent,
	})
	if err != nil {
		return attendance.PunchResponse{}, fmt.Errorf("failed to record exit punch: %w", err)
	}

	return attendance.ToPunchResponse(punch), nil
}

// ListPunches implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListPunches(ctx context.Context, filter attendance.PunchFilter) ([]attendance.Punch, error) {
	return s.PunchRepository.List(ctx, filter)
}

// WorkHours implements attendance.AttendanceService. Entry and exit times are
// taken on the same nominal day; the default policy subtracts every
// exit/re-entry interval before the final exit as an unpaid break, the gross
// alternate keeps the first-entry..last-exit span.
func (s *AttendanceServiceImpl) WorkHours(ctx context.Context, employeeID int, date string, policy attendance.HoursPolicy) (attendance.WorkHoursResponse, error) {
	if policy == "" {
		policy = attendance.HoursNetOfBreaks
	}
	if !attendance.ValidHoursPolicy(policy) {
		return attendance.WorkHoursResponse{}, fmt.Errorf("unknown hours policy %q", policy)
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return attendance.WorkHoursResponse{}, err
	}

	punches, err := s.PunchRepository.List(ctx, attendance.PunchFilter{
		EmployeeID: &employeeID,
		Date:       &date,
	})
	if err != nil {
		return attendance.WorkHoursResponse{}, fmt.Errorf("failed to list punches: %w", err)
	}

	entries, exits := splitClockMinutes(punches)
	minutes := workedMinutes(entries, exits, policy)

	return attendance.WorkHoursResponse{
		EmployeeID: employeeID,
		Date:       date,
		Policy:     policy,
		Minutes:    minutes,
		Display:    timeutil.FormatDuration(minutes),
	}, nil
}

// splitClockMinutes collects entry and exit punch times as minutes since
// midnight, sorted ascending. Absence punches and unparsable times are
// skipped.
func splitClockMinutes(punches []attendance.Punch) (entries, exits []int) {
	for _, p := range punches {
		if p.Time == nil {
			continue
		}
		c, err := timeutil.ParseClock(*p.Time)
		if err != nil {
			slog.Warn("skipping punch with malformed time", "punch_id", p.ID, "time", *p.Time)
			continue
		}
		switch p.Kind {
		case attendance.KindEntry:
			entries = append(entries, c.Minutes())
		case attendance.KindExit:
			exits = append(exits, c.Minutes())
		}
	}
	sort.Ints(entries)
	sort.Ints(exits)
	return entries, exits
}

// workedMinutes computes the worked duration from sorted entry and exit
// minutes. Either list empty means zero, and malformed data never yields a
// negative result.
func workedMinutes(entries, exits []int, policy attendance.HoursPolicy) int {
	if len(entries) == 0 || len(exits) == 0 {
		return 0
	}

	worked := exits[len(exits)-1] - entries[0]

	if policy == attendance.HoursNetOfBreaks && len(entries) > 1 && len(exits) > 1 {
		pairs := len(entries)
		if len(exits) < pairs {
			pairs = len(exits)
		}
		for i := 1; i < pairs; i++ {
			worked -= entries[i] - exits[i-1]
		}
	}

	if worked < 0 {
		return 0
	}
	return worked
}

// MissingPunches implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MissingPunches(ctx context.Context, date string) (attendance.MissingPunchesResponse, error) {
	if date == "" {
		date = s.now().Format(dateLayout)
	}

	active := true
	employees, err := s.EmployeeRepository.List(ctx, employee.EmployeeFilter{Active: &active})
	if err != nil {
		return attendance.MissingPunchesResponse{}, fmt.Errorf("failed to list active employees: %w", err)
	}

	punches, err := s.PunchRepository.List(ctx, attendance.PunchFilter{Date: &date})
	if err != nil {
		return attendance.MissingPunchesResponse{}, fmt.Errorf("failed to list punches: %w", err)
	}

	hasEntry := make(map[int]bool)
	hasExit := make(map[int]bool)
	for _, p := range punches {
		switch p.Kind {
		case attendance.KindEntry:
			hasEntry[p.EmployeeID] = true
		case attendance.KindExit:
			hasExit[p.EmployeeID] = true
		}
	}

	resp := attendance.MissingPunchesResponse{
		Date:    date,
		NoEntry: []attendance.MissingEmployee{},
		NoExit:  []attendance.MissingEmployee{},
	}
	for _, e := range employees {
		me := attendance.MissingEmployee{
			ID:         e.ID,
			LastName:   e.LastName,
			FirstName:  e.FirstName,
			Department: e.Department,
		}
		switch {
		case !hasEntry[e.ID]:
			resp.NoEntry = append(resp.NoEntry, me)
		case !hasExit[e.ID]:
			resp.NoExit = append(resp.NoExit, me)
		}
	}
	return resp, nil
}

// MarkAbsence implements attendance.AttendanceService. When the employee has
// no punch at all for the date, a synthetic absence punch is created so the
// day shows up in history.
func (s *AttendanceServiceImpl) MarkAbsence(ctx context.Context, req attendance.MarkAbsenceRequest) (attendance.Absence, error) {
	if err := req.Validate(); err != nil {
		return attendance.Absence{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.Absence{}, err
	}

	absence, err := s.AbsenceRepository.Create(ctx, attendance.Absence{
		EmployeeID:    emp.ID,
		LastName:      emp.LastName,
		FirstName:     emp.FirstName,
		Department:    emp.Department,
		Date:          req.Date,
		Type:          req.Type,
		Justification: req.Justification,
	})
	if err != nil {
		return attendance.Absence{}, fmt.Errorf("failed to record absence: %w", err)
	}

	hasPunch, err := s.PunchRepository.HasAnyForDay(ctx, emp.ID, req.Date)
	if err != nil {
		return attendance.Absence{}, fmt.Errorf("failed to check existing punches: %w", err)
	}
	if !hasPunch {
		_, err = s.PunchRepository.Create(ctx, attendance.Punch{
			EmployeeID: emp.ID,
			LastName:   emp.LastName,
			FirstName:  emp.FirstName,
			Department: emp.Department,
			Kind:       attendance.KindAbsence,
			Time:       nil,
			Date:       req.Date,
			Status:     string(req.Type),
		})
		if err != nil {
			return attendance.Absence{}, fmt.Errorf("failed to record absence punch: %w", err)
		}
	}

	return absence, nil
}

// ListAbsences implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAbsences(ctx context.Context, filter attendance.AbsenceFilter) ([]attendance.Absence, error) {
	return s.AbsenceRepository.List(ctx, filter)
}

// ListLateness implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListLateness(ctx context.Context, filter attendance.LatenessFilter) ([]attendance.LatenessEvent, error) {
	return s.LatenessRepository.List(ctx, filter)
}

// Stats implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Stats(ctx context.Context, filter attendance.LatenessFilter) (attendance.LatenessStats, error) {
	events, err := s.LatenessRepository.List(ctx, filter)
	if err != nil {
		return attendance.LatenessStats{}, fmt.Errorf("failed to list lateness events: %w", err)
	}

	stats := attendance.LatenessStats{
		ByDepartment: make(map[string]int),
		ByDate:       make(map[string]int),
	}
	if len(events) == 0 {
		return stats, nil
	}

	total := 0
	perEmployee := make(map[int]int)
	label := make(map[int]string)
	for _, e := range events {
		stats.Total++
		total += e.LatenessMinutes
		if e.LatenessMinutes > stats.MaxMinutes {
			stats.MaxMinutes = e.LatenessMinutes
		}
		stats.ByDepartment[e.Department]++
		stats.ByDate[e.Date]++
		perEmployee[e.EmployeeID]++
		label[e.EmployeeID] = fmt.Sprintf("%s %s (%s)", e.FirstName, e.LastName, e.Department)
	}
	stats.AverageMinutes = total / stats.Total

	best := 0
	for id, count := range perEmployee {
		if count > best {
			best = count
			stats.MostFrequent = label[id]
		}
	}

	return stats, nil
}
