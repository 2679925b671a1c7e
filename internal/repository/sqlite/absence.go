package sqlite

import (
	"context"
	"fmt"

	"github.com/cliniquenova/timeclock-backend-go/internal/domain/attendance"
	"github.com/cliniquenova/timeclock-backend-go/internal/pkg/database"
)

type absenceRepositoryImpl struct {
	db *database.DB
}

func NewAbsenceRepository(db *database.DB) attendance.AbsenceRepository {
	return &absenceRepositoryImpl{db: db}
}

const absenceColumns = `id, employee_id, last_name, first_name, department, date, type, justification`

func scanAbsence(row interface{ Scan(dest ...any) error }) (attendance.Absence, error) {
	var a attendance.Absence
	err := row.Scan(
		&a.ID,
		&a.EmployeeID,
		&a.LastName,
		&a.FirstName,
		&a.Department,
		&a.Date,
		&a.Type,
		&a.Justification,
	)
	return a, err
}

// Create implements attendance.AbsenceRepository.
func (r *absenceRepositoryImpl) Create(ctx context.Context, a attendance.Absence) (attendance.Absence, error) {
	q := GetQuerier(ctx, r.db)

	if a.ID != 0 {
		_, err := q.ExecContext(ctx, `
			INSERT INTO absences (id, employee_id, last_name, first_name, department, date, type, justification)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, a.ID, a.EmployeeID, a.LastName, a.FirstName, a.Department, a.Date, string(a.Type), a.Justification)
		if err != nil {
			return attendance.Absence{}, err
		}
		return a, nil
	}

	res, err := q.ExecContext(ctx, `
		INSERT INTO absences (employee_id, last_name, first_name, department, date, type, justification)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, a.EmployeeID, a.LastName, a.FirstName, a.Department, a.Date, string(a.Type), a.Justification)
	if err != nil {
		return attendance.Absence{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return attendance.Absence{}, fmt.Errorf("failed to read inserted absence id: %w", err)
	}
	a.ID = int(id)
	return a, nil
}

// List implements attendance.AbsenceRepository.
func (r *absenceRepositoryImpl) List(ctx context.Context, filter attendance.AbsenceFilter) ([]attendance.Absence, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + absenceColumns + ` FROM absences WHERE 1=1`
	var args []any
	if filter.EmployeeID != nil {
		query += ` AND employee_id = ?`
		args = append(args, *filter.EmployeeID)
	}
	if filter.Date != nil {
		query += ` AND date = ?`
		args = append(args, *filter.Date)
	}
	query += ` ORDER BY date, id`

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var absences []attendance.Absence
	for rows.Next() {
		a, err := scanAbsence(rows)
		if err != nil {
			return nil, err
		}
		absences = append(absences, a)
	}
	return absences, rows.Err()
}

// Restore implements attendance.AbsenceRepository.
func (r *absenceRepositoryImpl) Restore(ctx context.Context, absences []attendance.Absence) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.ExecContext(ctx, `DELETE FROM absences`); err != nil {
		return err
	}
	for _, a := range absences {
		if _, err := r.Create(ctx, a); err != nil {
			return err
		}
	}
	return nil
}
