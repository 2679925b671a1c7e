package backup

import (
	"context"
	"fmt"
	"time"

	"github.com/cliniquenova/timeclock-backend-go/internal/domain/attendance"
	"github.com/cliniquenova/timeclock-backend-go/internal/domain/backup"
	"github.com/cliniquenova/timeclock-backend-go/internal/domain/employee"
	"github.com/cliniquenova/timeclock-backend-go/internal/domain/settings"
	"github.com/cliniquenova/timeclock-backend-go/internal/domain/user"
	"github.com/cliniquenova/timeclock-backend-go/internal/pkg/database"
	"github.com/cliniquenova/timeclock-backend-go/internal/repository/sqlite"
	"github.com/google/uuid"
)

type BackupServiceImpl struct {
	db *database.DB
	user.UserRepository
	employee.EmployeeRepository
	attendance.PunchRepository
	attendance.LatenessRepository
	attendance.AbsenceRepository
	settings.SettingsRepository
}

func NewBackupService(
	db *database.DB,
	userRepository user.UserRepository,
	employeeRepository employee.EmployeeRepository,
	punchRepository attendance.PunchRepository,
	latenessRepository attendance.LatenessRepository,
	absenceRepository attendance.AbsenceRepository,
	settingsRepository settings.SettingsRepository,
) backup.BackupService {
	return &BackupServiceImpl{
		db:                 db,
		UserRepository:     userRepository,
		EmployeeRepository: employeeRepository,
		PunchRepository:    punchRepository,
		LatenessRepository: latenessRepository,
		AbsenceRepository:  absenceRepository,
		SettingsRepository: settingsRepository,
	}
}

// Export implements backup.BackupService.
func (s *BackupServiceImpl) Export(ctx context.Context) (backup.Snapshot, error) {
	snapshot := backup.Snapshot{
		ID:         uuid.NewString(),
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
	}

	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return backup.Snapshot{}, fmt.Errorf("failed to export users: %w", err)
	}
	for _, u := range users {
		snapshot.Users = append(snapshot.Users, backup.NewUserRecord(u))
	}

	employees, err := s.EmployeeRepository.List(ctx, employee.EmployeeFilter{})
	if err != nil {
		return backup.Snapshot{}, fmt.Errorf("failed to export employees: %w", err)
	}
	for _, e := range employees {
		snapshot.Employees = append(snapshot.Employees, backup.NewEmployeeRecord(e))
	}

	punches, err := s.PunchRepository.List(ctx, attendance.PunchFilter{})
	if err != nil {
		return backup.Snapshot{}, fmt.Errorf("failed to export punches: %w", err)
	}
	for _, p := range punches {
		snapshot.Punches = append(snapshot.Punches, backup.NewPunchRecord(p))
	}

	latenessEvents, err := s.LatenessRepository.List(ctx, attendance.LatenessFilter{})
	if err != nil {
		return backup.Snapshot{}, fmt.Errorf("failed to export lateness events: %w", err)
	}
	for _, e := range latenessEvents {
		snapshot.LatenessEvents = append(snapshot.LatenessEvents, backup.NewLatenessEventRecord(e))
	}

	absences, err := s.AbsenceRepository.List(ctx, attendance.AbsenceFilter{})
	if err != nil {
		return backup.Snapshot{}, fmt.Errorf("failed to export absences: %w", err)
	}
	for _, a := range absences {
		snapshot.Absences = append(snapshot.Absences, backup.NewAbsenceRecord(a))
	}

	if snapshot.Settings, err = s.SettingsRepository.Get(ctx); err != nil {
		return backup.Snapshot{}, fmt.Errorf("failed to export settings: %w", err)
	}

	return snapshot, nil
}

// Import implements backup.BackupService. The whole restore runs in one
// transaction; a failure leaves the store untouched.
func (s *BackupServiceImpl) Import(ctx context.Context, snapshot backup.Snapshot) error {
	users := make([]user.User, 0, len(snapshot.Users))
	for _, r := range snapshot.Users {
		users = append(users, r.ToEntity())
	}
	employees := make([]employee.Employee, 0, len(snapshot.Employees))
	for _, r := range snapshot.Employees {
		employees = append(employees, r.ToEntity())
	}
	punches := make([]attendance.Punch, 0, len(snapshot.Punches))
	for _, r := range snapshot.Punches {
		punches = append(punches, r.ToEntity())
	}
	latenessEvents := make([]attendance.LatenessEvent, 0, len(snapshot.LatenessEvents))
	for _, r := range snapshot.LatenessEvents {
		latenessEvents = append(latenessEvents, r.ToEntity())
	}
	absences := make([]attendance.Absence, 0, len(snapshot.Absences))
	for _, r := range snapshot.Absences {
		absences = append(absences, r.ToEntity())
	}

	return sqlite.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.UserRepository.Restore(txCtx, users); err != nil {
			return fmt.Errorf("failed to restore users: %w", err)
		}
		if err := s.EmployeeRepository.Restore(txCtx, employees); err != nil {
			return fmt.Errorf("failed to restore employees: %w", err)
		}
		if err := s.PunchRepository.Restore(txCtx, punches); err != nil {
			return fmt.Errorf("failed to restore punches: %w", err)
		}
		if err := s.LatenessRepository.Restore(txCtx, latenessEvents); err != nil {
			return fmt.Errorf("failed to restore lateness events: %w", err)
		}
		if err := s.AbsenceRepository.Restore(txCtx, absences); err != nil {
			return fmt.Errorf("failed to restore absences: %w", err)
		}
		if err := s.SettingsRepository.Update(txCtx, snapshot.Settings); err != nil {
			return fmt.Errorf("failed to restore settings: %w", err)
		}
		return nil
	})
}
