package employee

import (
	"context"
	"fmt"

	"github.com/cliniquenova/timeclock-backend-go/internal/domain/employee"
	"github.com/cliniquenova/timeclock-backend-go/internal/fixtures"
	"github.com/cliniquenova/timeclock-backend-go/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepository employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{EmployeeRepository: employeeRepository}
}

// Create implements employee.EmployeeService. Scheduled times default per
// shift unless explicitly provided.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if !validator.IsInSlice(req.Department, fixtures.Departments) {
		return employee.EmployeeResponse{}, employee.ErrUnknownDepartment
	}

	entryTime := employee.DefaultEntryTime(req.Shift)
	if req.EntryTime != nil {
		entryTime = *req.EntryTime
	}
	exitTime := employee.DefaultExitTime(req.Shift)
	if req.ExitTime != nil {
		exitTime = *req.ExitTime
	}

	created, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		LastName:   req.LastName,
		FirstName:  req.FirstName,
		Department: req.Department,
		EntryTime:  entryTime,
		ExitTime:   exitTime,
		Active:     true,
		Shift:      req.Shift,
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return employee.ToResponse(created), nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, id int, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	current, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Department != nil {
		if !validator.IsInSlice(*req.Department, fixtures.Departments) {
			return employee.EmployeeResponse{}, employee.ErrUnknownDepartment
		}
		current.Department = *req.Department
	}
	if req.LastName != nil {
		current.LastName = *req.LastName
	}
	if req.FirstName != nil {
		current.FirstName = *req.FirstName
	}
	if req.Shift != nil {
		current.Shift = *req.Shift
	}
	if req.EntryTime != nil {
		current.EntryTime = *req.EntryTime
	}
	if req.ExitTime != nil {
		current.ExitTime = *req.ExitTime
	}
	if req.Active != nil {
		current.Active = *req.Active
	}

	if err := s.EmployeeRepository.Update(ctx, current); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return employee.ToResponse(current), nil
}

// Delete implements employee.EmployeeService. Deleting a missing id is a
// no-op. Historical punch, lateness and absence rows for the employee are
// deliberately kept.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id int) error {
	return s.EmployeeRepository.Delete(ctx, id)
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id int) (employee.EmployeeResponse, error) {
	e, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(e), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.ToResponse(e))
	}
	return responses, nil
}
