package attendance

import "context"

// AttendanceService defines business logic for attendance sessions.
type AttendanceService interface {
	// ClockIn opens today's (or the given date's) session for the caller.
	ClockIn(ctx context.Context, req ClockInRequest) (AttendanceResponse, error)

	// ClockOut closes the open session and computes hours worked.
	ClockOut(ctx context.Context, req ClockOutRequest) (AttendanceResponse, error)

	// List returns attendance records; employee-role callers are scoped to
	// their own records regardless of the filter.
	List(ctx context.Context, filter ListAttendanceFilter) ([]AttendanceResponse, int64, error)
}
