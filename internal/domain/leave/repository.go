package leave

import "context"

// LeaveRepository defines data access methods for leave requests.
type LeaveRepository interface {
	Create(ctx context.Context, l LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	List(ctx context.Context, filter ListLeavesFilter) ([]LeaveRequest, int64, error)
	ListApprovedByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	Update(ctx context.Context, l LeaveRequest) (LeaveRequest, error)
	Review(ctx context.Context, id string, status Status, reviewerID string, comments *string) (LeaveRequest, error)
	Delete(ctx context.Context, id string) error
}
