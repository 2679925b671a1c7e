package employee

import "context"

type EmployeeRepository interface {
	// Create inserts an employee. A zero ID is assigned the next integer id;
	// a non-zero ID is kept (snapshot restore).
	Create(ctx context.Context, e Employee) (Employee, error)
	GetByID(ctx context.Context, id int) (Employee, error)
	Update(ctx context.Context, e Employee) error
	// Delete removes the employee with the given id. Deleting a missing id is
	// a no-op. Historical punches, lateness events and absences are kept.
	Delete(ctx context.Context, id int) error
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, error)
	// Restore replaces the whole collection, keeping record ids.
	Restore(ctx context.Context, employees []Employee) error
}

type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, id int, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id int) error
	Get(ctx context.Context, id int) (EmployeeResponse, error)
	List(ctx context.Context, filter EmployeeFilter) ([]EmployeeResponse, error)
}
