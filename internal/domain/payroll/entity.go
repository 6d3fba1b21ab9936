package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
)

// PayrollRecord is one payslip per (employee, month); the pair is unique at
// the storage layer. Month is a "YYYY-MM" token. Inputs are immutable after
// creation; only Status (and PaidDate) change afterwards, and derived amounts
// are never recomputed.
type PayrollRecord struct {
	ID         string
	EmployeeID string
	Month      string

	// Inputs
	BasicSalary decimal.Decimal
	Allowances  decimal.Decimal
	Deductions  decimal.Decimal // manually entered, pre-tax
	Bonus       decimal.Decimal
	Overtime    decimal.Decimal

	// Derived
	GrossSalary     decimal.Decimal
	Tax             decimal.Decimal
	PF              decimal.Decimal
	ESI             decimal.Decimal
	TotalDeductions decimal.Decimal
	NetSalary       decimal.Decimal

	Status     Status
	PaidDate   *time.Time
	PayslipURL *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}
