package leave

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

type LeaveRequest struct {
	ID         string
	EmployeeID string
	LeaveType  string
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
	Status     Status
	AppliedAt  time.Time
	ReviewedBy *string
	ReviewedAt *time.Time
	Comments   *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
	ReviewerName *string
}

// IsReviewed reports whether the request has left the pending state.
func (l *LeaveRequest) IsReviewed() bool {
	return l.Status != StatusPending
}

// Days counts the leave duration with both endpoints included: a single-day
// leave is 1 day, never 0.
func (l *LeaveRequest) Days() int {
	return DaysInclusive(l.StartDate, l.EndDate)
}

// DaysInclusive counts whole days from start to end, both endpoints included.
func DaysInclusive(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}
