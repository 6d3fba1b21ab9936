package payroll

import "errors"

var (
	ErrPayrollNotFound = errors.New("payroll record not found")
	ErrPayrollExists   = errors.New("payroll already exists for this employee and month")
	ErrInvalidStatus   = errors.New("invalid payroll status")
	ErrNotAuthorized   = errors.New("not authorized to view this payroll")
)
