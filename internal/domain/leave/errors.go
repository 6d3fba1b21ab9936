package leave

import "errors"

var (
	ErrLeaveNotFound        = errors.New("leave request not found")
	ErrLeaveAlreadyReviewed = errors.New("leave request has already been reviewed")
	ErrNotOwner             = errors.New("not authorized to access this leave request")
	ErrInvalidDateRange     = errors.New("end_date must not be before start_date")
)
