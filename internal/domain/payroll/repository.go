package payroll

import "context"

// PayrollRepository defines data access methods for payroll records.
type PayrollRepository interface {
	// Create inserts a new payroll record. The (employee_id, month) unique
	// constraint is the authoritative duplicate guard; a violation surfaces
	// as ErrPayrollExists.
	Create(ctx context.Context, p PayrollRecord) (PayrollRecord, error)

	GetByID(ctx context.Context, id string) (PayrollRecord, error)

	// GetByEmployeeAndMonth returns nil when no record exists for the pair.
	GetByEmployeeAndMonth(ctx context.Context, employeeID string, month string) (*PayrollRecord, error)

	// List returns records ordered by month descending.
	List(ctx context.Context, filter ListPayrollFilter) ([]PayrollRecord, int64, error)

	UpdateStatus(ctx context.Context, id string, status Status) (PayrollRecord, error)
	SetPayslipURL(ctx context.Context, id string, url string) error
}
