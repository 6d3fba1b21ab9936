package employee

import "context"

// EmployeeRepository defines data access methods for employee records.
type EmployeeRepository interface {
	Create(ctx context.Context, e Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByUserID(ctx context.Context, userID string) (Employee, error)
	List(ctx context.Context, filter ListEmployeesFilter) ([]Employee, int64, error)
	Update(ctx context.Context, e Employee) (Employee, error)
	SetAvatarURL(ctx context.Context, id string, url string) error
	AppendDocument(ctx context.Context, id string, doc Document) (Employee, error)
	AssignShift(ctx context.Context, shiftID string, employeeIDs []string) (int64, error)
	ListByShift(ctx context.Context, shiftID string) ([]Employee, error)

	// Delete removes the employee record only. Historical attendance and
	// payroll rows keep their employee reference.
	Delete(ctx context.Context, id string) error
}
