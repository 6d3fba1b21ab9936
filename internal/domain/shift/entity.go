package shift

import "time"

type Shift struct {
	ID            string
	Name          string
	StartTime     string // "HH:MM"
	EndTime       string // "HH:MM"
	BreakDuration int    // minutes
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined fields
	EmployeeCount *int
}
