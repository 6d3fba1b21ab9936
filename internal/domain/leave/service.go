package leave

import "context"

// LeaveService defines the leave request workflow: pending → approved or
// rejected, one transition per request.
type LeaveService interface {
	Apply(ctx context.Context, req ApplyLeaveRequest) (LeaveResponse, error)
	Get(ctx context.Context, id string) (LeaveResponse, error)
	List(ctx context.Context, filter ListLeavesFilter) ([]LeaveResponse, int64, error)
	Review(ctx context.Context, req ReviewLeaveRequest) (LeaveResponse, error)
	Update(ctx context.Context, req UpdateLeaveRequest) (LeaveResponse, error)
	Delete(ctx context.Context, id string) error
	Balance(ctx context.Context, employeeID string) (BalanceResponse, error)
}
