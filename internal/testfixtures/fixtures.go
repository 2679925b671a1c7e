// Package testfixtures provides shared helpers for service and repository
// tests: an in-memory store with the schema applied and a frozen clock.
package testfixtures

import (
	"context"
	"testing"
	"time"

	"github.com/cliniquenova/timeclock-backend-go/internal/domain/employee"
	"github.com/cliniquenova/timeclock-backend-go/internal/pkg/database"
)

// TestDate is the working day used by frozen-clock tests.
const TestDate = "2024-03-15"

// NewTestDB opens an in-memory SQLite store with the schema applied. The
// handle is closed when the test finishes.
func NewTestDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.NewSQLiteDB(":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// FrozenTime returns TestDate at the given wall-clock time.
func FrozenTime(hour, minute int) time.Time {
	return time.Date(2024, 3, 15, hour, minute, 0, 0, time.UTC)
}

// CreateEmployee inserts a day-shift employee with the default schedule and
// returns it.
func CreateEmployee(t *testing.T, ctx context.Context, repo employee.EmployeeRepository, lastName, firstName string) employee.Employee {
	t.Helper()
	e, err := repo.Create(ctx, employee.Employee{
		LastName:   lastName,
		FirstName:  firstName,
		Department: "Reception",
		EntryTime:  employee.DayDefaultEntryTime,
		ExitTime:   employee.DayDefaultExitTime,
		Active:     true,
		Shift:      employee.ShiftDay,
	})
	if err != nil {
		t.Fatalf("failed to create test employee: %v", err)
	}
	return e
}
