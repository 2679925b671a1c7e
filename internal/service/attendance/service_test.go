package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/cliniquenova/timeclock-backend-go/internal/domain/attendance"
	"github.com/cliniquenova/timeclock-backend-go/internal/domain/employee"
	"github.com/cliniquenova/timeclock-backend-go/internal/domain/settings"
	"github.com/cliniquenova/timeclock-backend-go/internal/pkg/database"
	"github.com/cliniquenova/timeclock-backend-go/internal/repository/sqlite"
	"github.com/cliniquenova/timeclock-backend-go/internal/testfixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type attendanceTestEnv struct {
	db           *database.DB
	service      *AttendanceServiceImpl
	employeeRepo employee.EmployeeRepository
	punchRepo    attendance.PunchRepository
	settingsRepo settings.SettingsRepository
}

func newAttendanceTestEnv(t *testing.T) *attendanceTestEnv {
	t.Helper()
	db := testfixtures.NewTestDB(t)

	punchRepo := sqlite.NewPunchRepository(db)
	latenessRepo := sqlite.NewLatenessRepository(db)
	absenceRepo := sqlite.NewAbsenceRepository(db)
	employeeRepo := sqlite.NewEmployeeRepository(db)
	settingsRepo := sqlite.NewSettingsRepository(db)

	svc := NewAttendanceService(db, punchRepo, latenessRepo, absenceRepo, employeeRepo, settingsRepo).(*AttendanceServiceImpl)

	return &attendanceTestEnv{
		db:           db,
		service:      svc,
		employeeRepo: employeeRepo,
		punchRepo:    punchRepo,
		settingsRepo: settingsRepo,
	}
}

func (e *attendanceTestEnv) freezeClock(hour, minute int) {
	e.service.now = func() time.Time { return testfixtures.FrozenTime(hour, minute) }
}

func TestClockInOnTime(t *testing.T) {
	ctx := context.Background()
	env := newAttendanceTestEnv(t)
	emp := testfixtures.CreateEmployee(t, ctx, env.employeeRepo, "Durand", "Alice")

	env.freezeClock(8, 0)
	punch, err := env.service.ClockIn(ctx, attendance.ClockRequest{EmployeeID: emp.ID})
	require.NoError(t, err)

	assert.Equal(t, attendance.KindEntry, punch.Kind)
	require.NotNil(t, punch.Time)
	assert.Equal(t, "08:00", *punch.Time)
	assert.Equal(t, testfixtures.TestDate, punch.Date)
	assert.Nil(t, punch.Lateness)
}

func TestClockInExactlyAtThresholdIsNotLate(t *testing.T) {
	ctx := context.Background()
	env := newAttendanceTestEnv(t)
	emp := testfixtures.CreateEmployee(t, ctx, env.employeeRepo, "Durand", "Alice")

	// Default threshold is 15 minutes; 08:15 is on the boundary.
	env.freezeClock(8, 15)
	punch, err := env.service.ClockIn(ctx, attendance.ClockRequest{EmployeeID: emp.ID})
	require.NoError(t, err)
	assert.Nil(t, punch.Lateness)

	events, err := env.service.ListLateness(ctx, attendance.LatenessFilter{})
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestClockInOneMinutePastThresholdIsLate(t *testing.T) {
	ctx := context.Background()
	env := newAttendanceTestEnv(t)
	emp := testfixtures.CreateEmployee(t, ctx, env.employeeRepo, "Durand", "Alice")

	env.freezeClock(8, 16)
	punch, err := env.service.ClockIn(ctx, attendance.ClockRequest{EmployeeID: emp.ID})
	require.NoError(t, err)

	require.NotNil(t, punch.Lateness)
	assert.Equal(t, 16, punch.Lateness.LatenessMinutes)
	assert.Equal(t, "16min", punch.Lateness.LatenessDisplay)
	assert.Equal(t, "08:16", punch.Lateness.ArrivalTime)
	assert.Equal(t, "08:00", punch.Lateness.ScheduledTime)
}

func TestClockInLateOverAnHourUsesHourDisplay(t *testing.T) {
	ctx := context.Background()
	env := newAttendanceTestEnv(t)
	emp := testfixtures.CreateEmployee(t, ctx, env.employeeRepo, "Durand", "Alice")

	env.freezeClock(9, 5)
	punch, err := env.service.ClockIn(ctx, attendance.ClockRequest{EmployeeID: emp.ID})
	require.NoError(t, err)

	require.NotNil(t, punch.Lateness)
	assert.Equal(t, 65, punch.Lateness.LatenessMinutes)
	assert.Equal(t, "1h05", punch.Lateness.LatenessDisplay)
}

func TestClockInTwiceSameDayRejected(t *testing.T) {
	ctx := context.Background()
	env := newAttendanceTestEnv(t)
	emp := testfixtures.CreateEmployee(t, ctx, env.employeeRepo, "Durand", "Alice")

	env.freezeClock(8, 0)
	_, err := env.service.ClockIn(ctx, attendance.ClockRequest{EmployeeID: emp.ID})
	require.NoError(t, err)

	env.freezeClock(8, 30)
	_, err = env.service.ClockIn(ctx, attendance.ClockRequest{EmployeeID: emp.ID})
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
}

func TestClockOutTwiceSameDayRejected(t *testing.T) {
	ctx := context.Background()
	env := newAttendanceTestEnv(t)
	emp := testfixtures.CreateEmployee(t, ctx, env.employeeRepo, "Durand", "Alice")

	env.freezeClock(17, 0)
	_, err := env.service.ClockOut(ctx, attendance.ClockRequest{EmployeeID: emp.ID})
	require.NoError(t, err)

	env.freezeClock(17, 30)
	_, err = env.service.ClockOut(ctx, attendance.ClockRequest{EmployeeID: emp.ID})
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedOut)
}

func TestClockInInactiveEmployeeRejected(t *testing.T) {
	ctx := context.Background()
	env := newAttendanceTestEnv(t)
	emp := testfixtures.CreateEmployee(t, ctx, env.employeeRepo, "Durand", "Alice")

	emp.Active = false
	require.NoError(t, env.employeeRepo.Update(ctx, emp))

	env.freezeClock(8, 0)
	_, err := env.service.ClockIn(ctx, attendance.ClockRequest{EmployeeID: emp.ID})
	assert.ErrorIs(t, err, employee.ErrEmployeeInactive)
}

func TestClockInUnknownEmployee(t *testing.T) {
	ctx := context.Background()
	env := newAttendanceTestEnv(t)

	env.freezeClock(8, 0)
	_, err := env.service.ClockIn(ctx, attendance.ClockRequest{EmployeeID: 999})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestLatenessUsesConfiguredThreshold(t *testing.T) {
	ctx := context.Background()
	env := newAttendanceTestEnv(t)
	emp := testfixtures.CreateEmployee(t, ctx, env.employeeRepo, "Durand", "Alice")

	err := env.settingsRepo.Update(ctx, settings.Settings{
		DefaultEntryTime:         "08:00",
		DefaultExitTime:          "17:00",
		LatenessThresholdMinutes: 30,
	})
	require.NoError(t, err)

	env.freezeClock(8, 25)
	punch, err := env.service.ClockIn(ctx, attendance.ClockRequest{EmployeeID: emp.ID})
	require.NoError(t, err)
	assert.Nil(t, punch.Lateness)
}

func clockPunch(t *testing.T, ctx context.Context, env *attendanceTestEnv, emp employee.Employee, kind attendance.PunchKind, clock string) {
	t.Helper()
	timeStr := clock
	_, err := env.punchRepo.Create(ctx, attendance.Punch{
		EmployeeID: emp.ID,
		LastName:   emp.LastName,
		FirstName:  emp.FirstName,
		Department: emp.Department,
		Kind:       kind,
		Time:       &timeStr,
		Date:       testfixtures.TestDate,
		Status:     attendance.StatusPresent,
	})
	require.NoError(t, err)
}

func TestWorkHoursNetOfBreaks(t *testing.T) {
	ctx := context.Background()
	env := newAttendanceTestEnv(t)
	emp := testfixtures.CreateEmployee(t, ctx, env.employeeRepo, "Durand", "Alice")

	clockPunch(t, ctx, env, emp, attendance.KindEntry, "08:00")
	clockPunch(t, ctx, env, emp, attendance.KindExit, "12:00")
	clockPunch(t, ctx, env, emp, attendance.KindEntry, "13:00")
	clockPunch(t, ctx, env, emp, attendance.KindExit, "17:00")

	hours, err := env.service.WorkHours(ctx, emp.ID, testfixtures.TestDate, "")
	require.NoError(t, err)

	assert.Equal(t, attendance.HoursNetOfBreaks, hours.Policy)
	assert.Equal(t, 8*60, hours.Minutes)
	assert.Equal(t, "8h00", hours.Display)
}

func TestWorkHoursGrossSpan(t *testing.T) {
	ctx := context.Background()
	env := newAttendanceTestEnv(t)
	emp := testfixtures.CreateEmployee(t, ctx, env.employeeRepo, "Durand", "Alice")

	clockPunch(t, ctx, env, emp, attendance.KindEntry, "08:00")
	clockPunch(t, ctx, env, emp, attendance.KindExit, "12:00")
	clockPunch(t, ctx, env, emp, attendance.KindEntry, "13:00")
	clockPunch(t, ctx, env, emp, attendance.KindExit, "17:00")

	hours, err := env.service.WorkHours(ctx, emp.ID, testfixtures.TestDate, attendance.HoursGrossSpan)
	require.NoError(t, err)

	assert.Equal(t, 9*60, hours.Minutes)
	assert.Equal(t, "9h00", hours.Display)
}

func TestWorkHoursWithoutExitIsZero(t *testing.T) {
	ctx := context.Background()
	env := newAttendanceTestEnv(t)
	emp := testfixtures.CreateEmployee(t, ctx, env.employeeRepo, "Durand", "Alice")

	clockPunch(t, ctx, env, emp, attendance.KindEntry, "08:00")

	hours, err := env.service.WorkHours(ctx, emp.ID, testfixtures.TestDate, "")
	require.NoError(t, err)
	assert.Equal(t, 0, hours.Minutes)
	assert.Equal(t, "0h00", hours.Display)
}

func TestWorkHoursNoPunchesIsZero(t *testing.T) {
	ctx := context.Background()
	env := newAttendanceTestEnv(t)
	emp := testfixtures.CreateEmployee(t, ctx, env.employeeRepo, "Durand", "Alice")

	hours, err := env.service.WorkHours(ctx, emp.ID, testfixtures.TestDate, "")
	require.NoError(t, err)
	assert.Equal(t, 0, hours.Minutes)
}

func TestWorkHoursUnknownEmployee(t *testing.T) {
	ctx := context.Background()
	env := newAttendanceTestEnv(t)

	_, err := env.service.WorkHours(ctx, 42, testfixtures.TestDate, "")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestMarkAbsenceCreatesSyntheticPunch(t *testing.T) {
	ctx := context.Background()
	env := newAttendanceTestEnv(t)
	emp := testfixtures.CreateEmployee(t, ctx, env.employeeRepo, "Durand", "Alice")

	absence, err := env.service.MarkAbsence(ctx, attendance.MarkAbsenceRequest{
		EmployeeID:    emp.ID,
		Date:          testfixtures.TestDate,
		Type:          attendance.AbsenceSick,
		Justification: "medical certificate",
	})
	require.NoError(t, err)
	assert.Equal(t, attendance.AbsenceSick, absence.Type)

	punches, err := env.service.ListPunches(ctx, attendance.PunchFilter{
		EmployeeID: &emp.ID,
		Date:       strPtr(testfixtures.TestDate),
	})
	require.NoError(t, err)
	require.Len(t, punches, 1)
	assert.Equal(t, attendance.KindAbsence, punches[0].Kind)
	assert.Nil(t, punches[0].Time)
	assert.Equal(t, string(attendance.AbsenceSick), punches[0].Status)
}

func TestMarkAbsenceWithExistingPunchSkipsSynthetic(t *testing.T) {
	ctx := context.Background()
	env := newAttendanceTestEnv(t)
	emp := testfixtures.CreateEmployee(t, ctx, env.employeeRepo, "Durand", "Alice")

	clockPunch(t, ctx, env, emp, attendance.KindEntry, "08:00")

	_, err := env.service.MarkAbsence(ctx, attendance.MarkAbsenceRequest{
		EmployeeID: emp.ID,
		Date:       testfixtures.TestDate,
		Type:       attendance.AbsenceLeave,
	})
	require.NoError(t, err)

	punches, err := env.service.ListPunches(ctx, attendance.PunchFilter{
		EmployeeID: &emp.ID,
		Date:       strPtr(testfixtures.TestDate),
	})
	require.NoError(t, err)
	require.Len(t, punches, 1)
	assert.Equal(t, attendance.KindEntry, punches[0].Kind)
}

func TestMissingPunchesPartitionsActiveEmployees(t *testing.T) {
	ctx := context.Background()
	env := newAttendanceTestEnv(t)
	noEntry := testfixtures.CreateEmployee(t, ctx, env.employeeRepo, "Durand", "Alice")
	noExit := testfixtures.CreateEmployee(t, ctx, env.employeeRepo, "Martin", "Bruno")
	complete := testfixtures.CreateEmployee(t, ctx, env.employeeRepo, "Petit", "Clara")
	inactive := testfixtures.CreateEmployee(t, ctx, env.employeeRepo, "Roux", "David")

	inactive.Active = false
	require.NoError(t, env.employeeRepo.Update(ctx, inactive))

	clockPunch(t, ctx, env, noExit, attendance.KindEntry, "08:00")
	clockPunch(t, ctx, env, complete, attendance.KindEntry, "08:00")
	clockPunch(t, ctx, env, complete, attendance.KindExit, "17:00")

	missing, err := env.service.MissingPunches(ctx, testfixtures.TestDate)
	require.NoError(t, err)

	require.Len(t, missing.NoEntry, 1)
	assert.Equal(t, noEntry.ID, missing.NoEntry[0].ID)
	require.Len(t, missing.NoExit, 1)
	assert.Equal(t, noExit.ID, missing.NoExit[0].ID)
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	env := newAttendanceTestEnv(t)
	alice := testfixtures.CreateEmployee(t, ctx, env.employeeRepo, "Durand", "Alice")
	bruno := testfixtures.CreateEmployee(t, ctx, env.employeeRepo, "Martin", "Bruno")

	env.freezeClock(8, 20)
	_, err := env.service.ClockIn(ctx, attendance.ClockRequest{EmployeeID: alice.ID})
	require.NoError(t, err)

	env.freezeClock(8, 40)
	_, err = env.service.ClockIn(ctx, attendance.ClockRequest{EmployeeID: bruno.ID})
	require.NoError(t, err)

	stats, err := env.service.Stats(ctx, attendance.LatenessFilter{})
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 30, stats.AverageMinutes)
	assert.Equal(t, 40, stats.MaxMinutes)
	assert.Equal(t, 2, stats.ByDepartment["Reception"])
	assert.Equal(t, 2, stats.ByDate[testfixtures.TestDate])
}

func TestStatsEmpty(t *testing.T) {
	ctx := context.Background()
	env := newAttendanceTestEnv(t)

	stats, err := env.service.Stats(ctx, attendance.LatenessFilter{})
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Total)
	assert.Empty(t, stats.MostFrequent)
}

func strPtr(s string) *string { return &s }
