package user

import "context"

// UserService defines admin-facing account management.
type UserService interface {
	List(ctx context.Context, filter ListUsersFilter) ([]UserResponse, int64, error)
	Get(ctx context.Context, id string) (UserResponse, error)
	UpdateRole(ctx context.Context, req UpdateRoleRequest) (UserResponse, error)
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (UserResponse, error)
	Delete(ctx context.Context, id string) error
}
