package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cliniquenova/timeclock-backend-go/internal/domain/employee"
	"github.com/cliniquenova/timeclock-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, last_name, first_name, department, entry_time, exit_time, active, shift, created_at, updated_at`

func scanEmployee(row interface{ Scan(dest ...any) error }) (employee.Employee, error) {
	var e employee.Employee
	var createdAt, updatedAt string
	err := row.Scan(
		&e.ID,
		&e.LastName,
		&e.FirstName,
		&e.Department,
		&e.EntryTime,
		&e.ExitTime,
		&e.Active,
		&e.Shift,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}
	e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	e.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return e, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	now := time.Now().UTC()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = now
	}

	if e.ID != 0 {
		_, err := q.ExecContext(ctx, `
			INSERT INTO employees (id, last_name, first_name, department, entry_time, exit_time, active, shift, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, e.ID, e.LastName, e.FirstName, e.Department, e.EntryTime, e.ExitTime, e.Active,
			string(e.Shift), e.CreatedAt.Format(time.RFC3339), e.UpdatedAt.Format(time.RFC3339))
		if err != nil {
			return employee.Employee{}, err
		}
		return e, nil
	}

	res, err := q.ExecContext(ctx, `
		INSERT INTO employees (last_name, first_name, department, entry_time, exit_time, active, shift, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, e.LastName, e.FirstName, e.Department, e.EntryTime, e.ExitTime, e.Active,
		string(e.Shift), e.CreatedAt.Format(time.RFC3339), e.UpdatedAt.Format(time.RFC3339))
	if err != nil {
		return employee.Employee{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to read inserted employee id: %w", err)
	}
	e.ID = int(id)
	return e, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id int) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	row := q.QueryRowContext(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = ?`, id)
	e, err := scanEmployee(row)
	if errors.Is(err, sql.ErrNoRows) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, err
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, e employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	res, err := q.ExecContext(ctx, `
		UPDATE employees
		SET last_name = ?, first_name = ?, department = ?, entry_time = ?, exit_time = ?, active = ?, shift = ?, updated_at = ?
		WHERE id = ?
	`, e.LastName, e.FirstName, e.Department, e.EntryTime, e.ExitTime, e.Active, string(e.Shift),
		time.Now().UTC().Format(time.RFC3339), e.ID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// Delete implements employee.EmployeeRepository. Deleting a missing id is a
// no-op; dependent punch, lateness and absence rows are kept.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id int) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.ExecContext(ctx, `DELETE FROM employees WHERE id = ?`, id)
	return err
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE 1=1`
	var args []any
	if filter.Active != nil {
		query += ` AND active = ?`
		args = append(args, *filter.Active)
	}
	if filter.Department != nil {
		query += ` AND department = ?`
		args = append(args, *filter.Department)
	}
	query += ` ORDER BY id`

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

// Restore implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Restore(ctx context.Context, employees []employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.ExecContext(ctx, `DELETE FROM employees`); err != nil {
		return err
	}
	for _, e := range employees {
		if _, err := r.Create(ctx, e); err != nil {
			return err
		}
	}
	return nil
}
