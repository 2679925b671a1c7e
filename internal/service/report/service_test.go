package report

import (
	"context"
	"testing"

	"github.com/cliniquenova/timeclock-backend-go/internal/domain/attendance"
	"github.com/cliniquenova/timeclock-backend-go/internal/repository/sqlite"
	"github.com/cliniquenova/timeclock-backend-go/internal/testfixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendanceWorkbook(t *testing.T) {
	ctx := context.Background()
	db := testfixtures.NewTestDB(t)
	punchRepo := sqlite.NewPunchRepository(db)
	employeeRepo := sqlite.NewEmployeeRepository(db)
	svc := NewReportService(punchRepo)

	emp := testfixtures.CreateEmployee(t, ctx, employeeRepo, "Durand", "Alice")

	entryTime := "08:20"
	_, err := punchRepo.Create(ctx, attendance.Punch{
		EmployeeID: emp.ID,
		LastName:   emp.LastName,
		FirstName:  emp.FirstName,
		Department: emp.Department,
		Kind:       attendance.KindEntry,
		Time:       &entryTime,
		Date:       testfixtures.TestDate,
		Status:     attendance.StatusPresent,
	})
	require.NoError(t, err)

	_, err = punchRepo.Create(ctx, attendance.Punch{
		EmployeeID: emp.ID,
		LastName:   emp.LastName,
		FirstName:  emp.FirstName,
		Department: emp.Department,
		Kind:       attendance.KindAbsence,
		Time:       nil,
		Date:       "2024-03-16",
		Status:     string(attendance.AbsenceSick),
	})
	require.NoError(t, err)

	workbook, err := svc.AttendanceWorkbook(ctx, attendance.PunchFilter{EmployeeID: &emp.ID})
	require.NoError(t, err)
	defer workbook.Close()

	rows, err := workbook.GetRows("Attendance")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Last Name", rows[0][2])
	assert.Equal(t, "Durand", rows[1][2])
	assert.Equal(t, "08:20", rows[1][6])
	assert.Equal(t, "entry", rows[1][5])
	assert.Equal(t, "sick", rows[2][8])
}

func TestAttendanceWorkbookEmpty(t *testing.T) {
	ctx := context.Background()
	db := testfixtures.NewTestDB(t)
	svc := NewReportService(sqlite.NewPunchRepository(db))

	workbook, err := svc.AttendanceWorkbook(ctx, attendance.PunchFilter{})
	require.NoError(t, err)
	defer workbook.Close()

	rows, err := workbook.GetRows("Attendance")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
