package sqlite

import (
	"context"
	"fmt"

	"github.com/cliniquenova/timeclock-backend-go/internal/domain/attendance"
	"github.com/cliniquenova/timeclock-backend-go/internal/pkg/database"
)

type latenessRepositoryImpl struct {
	db *database.DB
}

func NewLatenessRepository(db *database.DB) attendance.LatenessRepository {
	return &latenessRepositoryImpl{db: db}
}

const latenessColumns = `id, employee_id, last_name, first_name, department, arrival_time, scheduled_time, lateness_minutes, lateness_display, date`

func scanLateness(row interface{ Scan(dest ...any) error }) (attendance.LatenessEvent, error) {
	var e attendance.LatenessEvent
	err := row.Scan(
		&e.ID,
		&e.EmployeeID,
		&e.LastName,
		&e.FirstName,
		&e.Department,
		&e.ArrivalTime,
		&e.ScheduledTime,
		&e.LatenessMinutes,
		&e.LatenessDisplay,
		&e.Date,
	)
	return e, err
}

// Create implements attendance.LatenessRepository.
func (r *latenessRepositoryImpl) Create(ctx context.Context, e attendance.LatenessEvent) (attendance.LatenessEvent, error) {
	q := GetQuerier(ctx, r.db)

	if e.ID != 0 {
		_, err := q.ExecContext(ctx, `
			INSERT INTO lateness_events (id, employee_id, last_name, first_name, department, arrival_time, scheduled_time, lateness_minutes, lateness_display, date)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, e.ID, e.EmployeeID, e.LastName, e.FirstName, e.Department, e.ArrivalTime, e.ScheduledTime,
			e.LatenessMinutes, e.LatenessDisplay, e.Date)
		if err != nil {
			return attendance.LatenessEvent{}, err
		}
		return e, nil
	}

	res, err := q.ExecContext(ctx, `
		INSERT INTO lateness_events (employee_id, last_name, first_name, department, arrival_time, scheduled_time, lateness_minutes, lateness_display, date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, e.EmployeeID, e.LastName, e.FirstName, e.Department, e.ArrivalTime, e.ScheduledTime,
		e.LatenessMinutes, e.LatenessDisplay, e.Date)
	if err != nil {
		return attendance.LatenessEvent{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return attendance.LatenessEvent{}, fmt.Errorf("failed to read inserted lateness event id: %w", err)
	}
	e.ID = int(id)
	return e, nil
}

// List implements attendance.LatenessRepository.
func (r *latenessRepositoryImpl) List(ctx context.Context, filter attendance.LatenessFilter) ([]attendance.LatenessEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + latenessColumns + ` FROM lateness_events WHERE 1=1`
	var args []any
	if filter.EmployeeID != nil {
		query += ` AND employee_id = ?`
		args = append(args, *filter.EmployeeID)
	}
	if filter.From != nil {
		query += ` AND date >= ?`
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		query += ` AND date <= ?`
		args = append(args, *filter.To)
	}
	query += ` ORDER BY date, id`

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []attendance.LatenessEvent
	for rows.Next() {
		e, err := scanLateness(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// Restore implements attendance.LatenessRepository.
func (r *latenessRepositoryImpl) Restore(ctx context.Context, events []attendance.LatenessEvent) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.ExecContext(ctx, `DELETE FROM lateness_events`); err != nil {
		return err
	}
	for _, e := range events {
		if _, err := r.Create(ctx, e); err != nil {
			return err
		}
	}
	return nil
}
