package payroll

import "context"

// PayrollService defines business logic for payroll operations.
type PayrollService interface {
	// CalculateOnly runs the pure calculator without persisting anything.
	CalculateOnly(ctx context.Context, req CalculateRequest) (SalaryBreakdown, error)

	// Generate creates a payslip using the employee's stored base salary.
	Generate(ctx context.Context, req GeneratePayslipRequest) (PayrollResponse, error)

	// Create creates a payslip with an explicit basic salary.
	Create(ctx context.Context, req CreatePayrollRequest) (PayrollResponse, error)

	// DefineStructure stores the employee's base salary.
	DefineStructure(ctx context.Context, req DefineStructureRequest) (PayrollResponse, error)

	Get(ctx context.Context, id string) (PayrollResponse, error)
	List(ctx context.Context, filter ListPayrollFilter) ([]PayrollResponse, int64, error)
	ListByEmployee(ctx context.Context, employeeID string, page, limit int) ([]PayrollResponse, int64, error)

	// UpdateStatus transitions pending → paid (stamping paid date) or
	// cancelled; derived amounts are never recomputed.
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (PayrollResponse, error)
}
