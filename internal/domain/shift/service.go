package shift

import (
	"context"

	"github.com/staffhub/ems-backend-go/internal/domain/employee"
)

type Service interface {
	Create(ctx context.Context, req *CreateShiftRequest) (*ShiftResponse, error)
	Get(ctx context.Context, id string) (*ShiftResponse, error)
	List(ctx context.Context) ([]ShiftResponse, error)
	Update(ctx context.Context, id string, req *UpdateShiftRequest) (*ShiftResponse, error)
	Delete(ctx context.Context, id string) error
	Assign(ctx context.Context, shiftID string, req *AssignShiftRequest) error
	ListEmployees(ctx context.Context, shiftID string) ([]employee.EmployeeResponse, error)
}
