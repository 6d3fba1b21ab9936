package settings

import "context"

type Service interface {
	CreateDepartment(ctx context.Context, req *CreateDepartmentRequest) (*DepartmentResponse, error)
	ListDepartments(ctx context.Context) ([]DepartmentResponse, error)
	UpdateDepartment(ctx context.Context, id string, req *UpdateDepartmentRequest) (*DepartmentResponse, error)
	DeleteDepartment(ctx context.Context, id string) error

	CreateHoliday(ctx context.Context, req *CreateHolidayRequest) (*HolidayResponse, error)
	ListHolidays(ctx context.Context, filter *ListHolidaysFilter) ([]HolidayResponse, error)
	DeleteHoliday(ctx context.Context, id string) error

	CreateLeaveType(ctx context.Context, req *CreateLeaveTypeRequest) (*LeaveTypeResponse, error)
	ListLeaveTypes(ctx context.Context) ([]LeaveTypeResponse, error)
	UpdateLeaveType(ctx context.Context, id string, req *UpdateLeaveTypeRequest) (*LeaveTypeResponse, error)
	DeleteLeaveType(ctx context.Context, id string) error
}
