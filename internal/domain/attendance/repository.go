package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create inserts a new session. The (employee_id, date) unique constraint
	// is the authoritative duplicate guard; a violation surfaces as
	// ErrAlreadyClockedIn.
	Create(ctx context.Context, a Attendance) (Attendance, error)

	// GetByEmployeeAndDate returns nil when no record exists for the pair.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// Close stamps clock-out and hours worked on an open session.
	Close(ctx context.Context, id string, clockOut string, hoursWorked float64) (Attendance, error)

	// List returns records ordered by date descending.
	List(ctx context.Context, filter ListAttendanceFilter) ([]Attendance, int64, error)
}
