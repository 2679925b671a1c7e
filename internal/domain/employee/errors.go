package employee

import "errors"

var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrEmployeeInactive  = errors.New("employee is not active")
	ErrUnknownDepartment = errors.New("unknown department")
)
