package shift

import "errors"

var (
	ErrShiftNotFound = errors.New("shift not found")
	ErrShiftExists   = errors.New("shift with this name already exists")
	ErrShiftInUse    = errors.New("shift is assigned to employees and cannot be deleted")
)
