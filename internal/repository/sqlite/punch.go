package sqlite

import (
	"context"
	"fmt"

	"github.com/cliniquenova/timeclock-backend-go/internal/domain/attendance"
	"github.com/cliniquenova/timeclock-backend-go/internal/pkg/database"
)

type punchRepositoryImpl struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) attendance.PunchRepository {
	return &punchRepositoryImpl{db: db}
}

const punchColumns = `id, employee_id, last_name, first_name, department, kind, time, date, status`

func scanPunch(row interface{ Scan(dest ...any) error }) (attendance.Punch, error) {
	var p attendance.Punch
	err := row.Scan(
		&p.ID,
		&p.EmployeeID,
		&p.LastName,
		&p.FirstName,
		&p.Department,
		&p.Kind,
		&p.Time,
		&p.Date,
		&p.Status,
	)
	return p, err
}

// Create implements attendance.PunchRepository.
func (r *punchRepositoryImpl) Create(ctx context.Context, p attendance.Punch) (attendance.Punch, error) {
	q := GetQuerier(ctx, r.db)

	if p.ID != 0 {
		_, err := q.ExecContext(ctx, `
			INSERT INTO punches (id, employee_id, last_name, first_name, department, kind, time, date, status)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, p.ID, p.EmployeeID, p.LastName, p.FirstName, p.Department, string(p.Kind), p.Time, p.Date, p.Status)
		if err != nil {
			return attendance.Punch{}, err
		}
		return p, nil
	}

	res, err := q.ExecContext(ctx, `
		INSERT INTO punches (employee_id, last_name, first_name, department, kind, time, date, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, p.EmployeeID, p.LastName, p.FirstName, p.Department, string(p.Kind), p.Time, p.Date, p.Status)
	if err != nil {
		return attendance.Punch{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return attendance.Punch{}, fmt.Errorf("failed to read inserted punch id: %w", err)
	}
	p.ID = int(id)
	return p, nil
}

// List implements attendance.PunchRepository.
func (r *punchRepositoryImpl) List(ctx context.Context, filter attendance.PunchFilter) ([]attendance.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + punchColumns + ` FROM punches WHERE 1=1`
	var args []any
	if filter.EmployeeID != nil {
		query += ` AND employee_id = ?`
		args = append(args, *filter.EmployeeID)
	}
	if filter.Date != nil {
		query += ` AND date = ?`
		args = append(args, *filter.Date)
	}
	if filter.From != nil {
		query += ` AND date >= ?`
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		query += ` AND date <= ?`
		args = append(args, *filter.To)
	}
	if filter.Kind != nil {
		query += ` AND kind = ?`
		args = append(args, string(*filter.Kind))
	}
	query += ` ORDER BY date, time, id`

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var punches []attendance.Punch
	for rows.Next() {
		p, err := scanPunch(rows)
		if err != nil {
			return nil, err
		}
		punches = append(punches, p)
	}
	return punches, rows.Err()
}

// ExistsForDay implements attendance.PunchRepository.
func (r *punchRepositoryImpl) ExistsForDay(ctx context.Context, employeeID int, date string, kind attendance.PunchKind) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM punches WHERE employee_id = ? AND date = ? AND kind = ?)`,
		employeeID, date, string(kind),
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// HasAnyForDay implements attendance.PunchRepository.
func (r *punchRepositoryImpl) HasAnyForDay(ctx context.Context, employeeID int, date string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM punches WHERE employee_id = ? AND date = ?)`,
		employeeID, date,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// Restore implements attendance.PunchRepository.
func (r *punchRepositoryImpl) Restore(ctx context.Context, punches []attendance.Punch) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.ExecContext(ctx, `DELETE FROM punches`); err != nil {
		return err
	}
	for _, p := range punches {
		if _, err := r.Create(ctx, p); err != nil {
			return err
		}
	}
	return nil
}
