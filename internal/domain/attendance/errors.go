package attendance

import "errors"

var (
	ErrAlreadyClockedIn   = errors.New("already clocked in for this date")
	ErrNoClockInRecord    = errors.New("no clock-in record found for this date")
	ErrAlreadyClockedOut  = errors.New("already clocked out for this date")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
