package settings

import "context"

type Repository interface {
	CreateDepartment(ctx context.Context, dept *Department) error
	ListDepartments(ctx context.Context) ([]Department, error)
	UpdateDepartment(ctx context.Context, dept *Department) error
	GetDepartmentByID(ctx context.Context, id string) (*Department, error)
	DeleteDepartment(ctx context.Context, id string) error

	CreateHoliday(ctx context.Context, holiday *Holiday) error
	ListHolidays(ctx context.Context, filter *ListHolidaysFilter) ([]Holiday, error)
	DeleteHoliday(ctx context.Context, id string) error

	CreateLeaveType(ctx context.Context, lt *LeaveType) error
	ListLeaveTypes(ctx context.Context) ([]LeaveType, error)
	GetLeaveTypeByID(ctx context.Context, id string) (*LeaveType, error)
	UpdateLeaveType(ctx context.Context, lt *LeaveType) error
	DeleteLeaveType(ctx context.Context, id string) error
}
