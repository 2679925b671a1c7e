package employee

import (
	"context"
	"testing"

	"github.com/cliniquenova/timeclock-backend-go/internal/domain/attendance"
	"github.com/cliniquenova/timeclock-backend-go/internal/domain/employee"
	"github.com/cliniquenova/timeclock-backend-go/internal/pkg/database"
	"github.com/cliniquenova/timeclock-backend-go/internal/repository/sqlite"
	"github.com/cliniquenova/timeclock-backend-go/internal/testfixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEmployeeTestService(t *testing.T) (employee.EmployeeService, *database.DB) {
	t.Helper()
	db := testfixtures.NewTestDB(t)
	return NewEmployeeService(sqlite.NewEmployeeRepository(db)), db
}

func TestCreateEmployeeDayShiftDefaults(t *testing.T) {
	ctx := context.Background()
	svc, _ := newEmployeeTestService(t)

	created, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		LastName:   "Durand",
		FirstName:  "Alice",
		Department: "Reception",
		Shift:      employee.ShiftDay,
	})
	require.NoError(t, err)

	assert.Equal(t, "08:00", created.EntryTime)
	assert.Equal(t, "17:00", created.ExitTime)
	assert.True(t, created.Active)
}

func TestCreateEmployeeNightShiftDefaults(t *testing.T) {
	ctx := context.Background()
	svc, _ := newEmployeeTestService(t)

	created, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		LastName:   "Martin",
		FirstName:  "Bruno",
		Department: "Emergency",
		Shift:      employee.ShiftNight,
	})
	require.NoError(t, err)

	assert.Equal(t, "20:00", created.EntryTime)
	assert.Equal(t, "05:00", created.ExitTime)
}

func TestCreateEmployeeExplicitTimesWin(t *testing.T) {
	ctx := context.Background()
	svc, _ := newEmployeeTestService(t)

	entry, exit := "09:30", "18:30"
	created, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		LastName:   "Durand",
		FirstName:  "Alice",
		Department: "Reception",
		Shift:      employee.ShiftDay,
		EntryTime:  &entry,
		ExitTime:   &exit,
	})
	require.NoError(t, err)

	assert.Equal(t, "09:30", created.EntryTime)
	assert.Equal(t, "18:30", created.ExitTime)
}

func TestCreateEmployeeUnknownDepartment(t *testing.T) {
	ctx := context.Background()
	svc, _ := newEmployeeTestService(t)

	_, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		LastName:   "Durand",
		FirstName:  "Alice",
		Department: "Catering",
		Shift:      employee.ShiftDay,
	})
	assert.ErrorIs(t, err, employee.ErrUnknownDepartment)
}

func TestUpdateEmployeePartial(t *testing.T) {
	ctx := context.Background()
	svc, _ := newEmployeeTestService(t)

	created, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		LastName:   "Durand",
		FirstName:  "Alice",
		Department: "Reception",
		Shift:      employee.ShiftDay,
	})
	require.NoError(t, err)

	department := "Radiology"
	updated, err := svc.Update(ctx, created.ID, employee.UpdateEmployeeRequest{Department: &department})
	require.NoError(t, err)

	assert.Equal(t, "Radiology", updated.Department)
	assert.Equal(t, "Durand", updated.LastName)
	assert.Equal(t, "08:00", updated.EntryTime)
}

func TestUpdateUnknownEmployee(t *testing.T) {
	ctx := context.Background()
	svc, _ := newEmployeeTestService(t)

	name := "Ghost"
	_, err := svc.Update(ctx, 404, employee.UpdateEmployeeRequest{LastName: &name})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestDeleteMissingEmployeeIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc, _ := newEmployeeTestService(t)

	assert.NoError(t, svc.Delete(ctx, 404))
}

func TestDeleteEmployeeKeepsHistory(t *testing.T) {
	ctx := context.Background()
	svc, db := newEmployeeTestService(t)
	punchRepo := sqlite.NewPunchRepository(db)

	created, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		LastName:   "Durand",
		FirstName:  "Alice",
		Department: "Reception",
		Shift:      employee.ShiftDay,
	})
	require.NoError(t, err)

	timeStr := "08:00"
	_, err = punchRepo.Create(ctx, attendance.Punch{
		EmployeeID: created.ID,
		LastName:   created.LastName,
		FirstName:  created.FirstName,
		Department: created.Department,
		Kind:       attendance.KindEntry,
		Time:       &timeStr,
		Date:       testfixtures.TestDate,
		Status:     attendance.StatusPresent,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	punches, err := punchRepo.List(ctx, attendance.PunchFilter{EmployeeID: &created.ID})
	require.NoError(t, err)
	assert.Len(t, punches, 1)
}

func TestListEmployeesFilters(t *testing.T) {
	ctx := context.Background()
	svc, _ := newEmployeeTestService(t)

	_, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		LastName: "Durand", FirstName: "Alice", Department: "Reception", Shift: employee.ShiftDay,
	})
	require.NoError(t, err)
	bruno, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		LastName: "Martin", FirstName: "Bruno", Department: "Emergency", Shift: employee.ShiftNight,
	})
	require.NoError(t, err)

	inactive := false
	_, err = svc.Update(ctx, bruno.ID, employee.UpdateEmployeeRequest{Active: &inactive})
	require.NoError(t, err)

	active := true
	activeOnly, err := svc.List(ctx, employee.EmployeeFilter{Active: &active})
	require.NoError(t, err)
	require.Len(t, activeOnly, 1)
	assert.Equal(t, "Durand", activeOnly[0].LastName)

	department := "Emergency"
	emergency, err := svc.List(ctx, employee.EmployeeFilter{Department: &department})
	require.NoError(t, err)
	require.Len(t, emergency, 1)
	assert.Equal(t, "Martin", emergency[0].LastName)
}
