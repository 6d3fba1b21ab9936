package settings

import "errors"

var (
	ErrDepartmentNotFound = errors.New("department not found")
	ErrDepartmentExists   = errors.New("department with this name already exists")
	ErrHolidayNotFound    = errors.New("holiday not found")
	ErrLeaveTypeNotFound  = errors.New("leave type not found")
	ErrLeaveTypeExists    = errors.New("leave type with this name already exists")
)
