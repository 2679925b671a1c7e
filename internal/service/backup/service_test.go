package backup

import (
	"context"
	"testing"

	"github.com/cliniquenova/timeclock-backend-go/internal/domain/attendance"
	"github.com/cliniquenova/timeclock-backend-go/internal/domain/backup"
	"github.com/cliniquenova/timeclock-backend-go/internal/domain/employee"
	"github.com/cliniquenova/timeclock-backend-go/internal/domain/settings"
	"github.com/cliniquenova/timeclock-backend-go/internal/domain/user"
	"github.com/cliniquenova/timeclock-backend-go/internal/repository/sqlite"
	"github.com/cliniquenova/timeclock-backend-go/internal/testfixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type backupTestEnv struct {
	service      backup.BackupService
	userRepo     user.UserRepository
	employeeRepo employee.EmployeeRepository
	punchRepo    attendance.PunchRepository
	settingsRepo settings.SettingsRepository
}

func newBackupTestEnv(t *testing.T) *backupTestEnv {
	t.Helper()
	db := testfixtures.NewTestDB(t)

	userRepo := sqlite.NewUserRepository(db)
	employeeRepo := sqlite.NewEmployeeRepository(db)
	punchRepo := sqlite.NewPunchRepository(db)
	latenessRepo := sqlite.NewLatenessRepository(db)
	absenceRepo := sqlite.NewAbsenceRepository(db)
	settingsRepo := sqlite.NewSettingsRepository(db)

	return &backupTestEnv{
		service:      NewBackupService(db, userRepo, employeeRepo, punchRepo, latenessRepo, absenceRepo, settingsRepo),
		userRepo:     userRepo,
		employeeRepo: employeeRepo,
		punchRepo:    punchRepo,
		settingsRepo: settingsRepo,
	}
}

func (e *backupTestEnv) seed(t *testing.T, ctx context.Context) {
	t.Helper()

	_, err := e.userRepo.Create(ctx, user.User{
		Username:     "admin",
		PasswordHash: "$2a$10$fakefakefakefakefakefakefakefakefakefakefakefakefake",
		LastName:     "Admin",
		FirstName:    "System",
		Role:         user.RoleAdmin,
		Active:       true,
	})
	require.NoError(t, err)

	emp := testfixtures.CreateEmployee(t, ctx, e.employeeRepo, "Durand", "Alice")

	timeStr := "08:20"
	_, err = e.punchRepo.Create(ctx, attendance.Punch{
		EmployeeID: emp.ID,
		LastName:   emp.LastName,
		FirstName:  emp.FirstName,
		Department: emp.Department,
		Kind:       attendance.KindEntry,
		Time:       &timeStr,
		Date:       testfixtures.TestDate,
		Status:     attendance.StatusPresent,
	})
	require.NoError(t, err)

	require.NoError(t, e.settingsRepo.Update(ctx, settings.Settings{
		DefaultEntryTime:         "09:00",
		DefaultExitTime:          "18:00",
		LatenessThresholdMinutes: 10,
	}))
}

func TestExportContainsAllCollections(t *testing.T) {
	ctx := context.Background()
	env := newBackupTestEnv(t)
	env.seed(t, ctx)

	snapshot, err := env.service.Export(ctx)
	require.NoError(t, err)

	assert.NotEmpty(t, snapshot.ID)
	assert.NotEmpty(t, snapshot.ExportedAt)
	assert.Len(t, snapshot.Users, 1)
	assert.Len(t, snapshot.Employees, 1)
	assert.Len(t, snapshot.Punches, 1)
	assert.Equal(t, "09:00", snapshot.Settings.DefaultEntryTime)
	assert.Equal(t, 10, snapshot.Settings.LatenessThresholdMinutes)
}

func TestImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	source := newBackupTestEnv(t)
	source.seed(t, ctx)

	snapshot, err := source.service.Export(ctx)
	require.NoError(t, err)

	target := newBackupTestEnv(t)
	require.NoError(t, target.service.Import(ctx, snapshot))

	restored, err := target.service.Export(ctx)
	require.NoError(t, err)

	assert.Equal(t, snapshot.Users, restored.Users)
	assert.Equal(t, snapshot.Employees, restored.Employees)
	assert.Equal(t, snapshot.Punches, restored.Punches)
	assert.Equal(t, snapshot.LatenessEvents, restored.LatenessEvents)
	assert.Equal(t, snapshot.Absences, restored.Absences)
	assert.Equal(t, snapshot.Settings, restored.Settings)
}

func TestImportReplacesExistingData(t *testing.T) {
	ctx := context.Background()
	source := newBackupTestEnv(t)
	source.seed(t, ctx)

	snapshot, err := source.service.Export(ctx)
	require.NoError(t, err)

	target := newBackupTestEnv(t)
	_, err = target.userRepo.Create(ctx, user.User{
		Username:     "leftover",
		PasswordHash: "x",
		LastName:     "Old",
		FirstName:    "Record",
		Role:         user.RoleUser,
		Active:       true,
	})
	require.NoError(t, err)

	require.NoError(t, target.service.Import(ctx, snapshot))

	users, err := target.userRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "admin", users[0].Username)
}

func TestImportKeepsRecordIDs(t *testing.T) {
	ctx := context.Background()
	source := newBackupTestEnv(t)

	created, err := source.userRepo.Create(ctx, user.User{
		ID:           7,
		Username:     "seven",
		PasswordHash: "x",
		LastName:     "Durand",
		FirstName:    "Alice",
		Role:         user.RoleUser,
		Active:       true,
	})
	require.NoError(t, err)
	require.Equal(t, 7, created.ID)

	snapshot, err := source.service.Export(ctx)
	require.NoError(t, err)

	target := newBackupTestEnv(t)
	require.NoError(t, target.service.Import(ctx, snapshot))

	restored, err := target.userRepo.GetByID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "seven", restored.Username)
}
