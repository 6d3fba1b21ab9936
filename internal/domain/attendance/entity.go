package attendance

import "time"

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusHalfDay Status = "half-day"
	StatusLate    Status = "late"
)

// Attendance is one session per (employee, date). The pair is unique at the
// storage layer; the date carries no time-of-day component. Clock times are
// stored as "HH:MM:SS" strings and combined with Date when durations are
// computed.
type Attendance struct {
	ID          string
	EmployeeID  string
	Date        time.Time
	ClockIn     string
	ClockOut    *string
	HoursWorked float64
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}

// IsClosed reports whether the session has been clocked out.
func (a *Attendance) IsClosed() bool {
	return a.ClockOut != nil
}
