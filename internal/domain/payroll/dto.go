package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/staffhub/ems-backend-go/internal/pkg/validator"
)

// CalculateRequest feeds the pure calculator; nothing is persisted. Missing
// values are treated as zero.
type CalculateRequest struct {
	BasicSalary float64 `json:"basic_salary"`
	Allowances  float64 `json:"allowances"`
	Deductions  float64 `json:"deductions"`
	Bonus       float64 `json:"bonus"`
	Overtime    float64 `json:"overtime"`
}

func (r *CalculateRequest) Validate() error {
	var errs validator.ValidationErrors

	for field, v := range map[string]float64{
		"basic_salary": r.BasicSalary,
		"allowances":   r.Allowances,
		"deductions":   r.Deductions,
		"bonus":        r.Bonus,
		"overtime":     r.Overtime,
	} {
		if v < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must not be negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// GeneratePayslipRequest creates a payslip from the employee's stored base
// salary plus the given adjustments.
type GeneratePayslipRequest struct {
	EmployeeID string  `json:"employee_id"`
	Month      string  `json:"month"` // YYYY-MM
	Allowances float64 `json:"allowances"`
	Deductions float64 `json:"deductions"`
	Bonus      float64 `json:"bonus"`
	Overtime   float64 `json:"overtime"`
}

func (r *GeneratePayslipRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month is required",
		})
	} else if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}
	for field, v := range map[string]float64{
		"allowances": r.Allowances,
		"deductions": r.Deductions,
		"bonus":      r.Bonus,
		"overtime":   r.Overtime,
	} {
		if v < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must not be negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CreatePayrollRequest creates a payslip with an explicit basic salary
// instead of the employee's stored one.
type CreatePayrollRequest struct {
	EmployeeID  string  `json:"employee_id"`
	Month       string  `json:"month"` // YYYY-MM
	BasicSalary float64 `json:"basic_salary"`
	Allowances  float64 `json:"allowances"`
	Deductions  float64 `json:"deductions"`
	Bonus       float64 `json:"bonus"`
	Overtime    float64 `json:"overtime"`
}

func (r *CreatePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month is required",
		})
	} else if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}
	for field, v := range map[string]float64{
		"basic_salary": r.BasicSalary,
		"allowances":   r.Allowances,
		"deductions":   r.Deductions,
		"bonus":        r.Bonus,
		"overtime":     r.Overtime,
	} {
		if v < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must not be negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DefineStructureRequest stores an employee's base salary.
type DefineStructureRequest struct {
	EmployeeID  string  `json:"employee_id"`
	BasicSalary float64 `json:"basic_salary"`
	Allowances  float64 `json:"allowances"`
	Deductions  float64 `json:"deductions"`
}

func (r *DefineStructureRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if r.BasicSalary < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "basic_salary",
			Message: "basic_salary must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, []string{"pending", "paid", "cancelled"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: pending, paid, cancelled",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListPayrollFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Month      *string `json:"month,omitempty"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
}

func (f *ListPayrollFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 10
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.Month != nil && !validator.IsValidMonth(*f.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayrollResponse struct {
	ID              string          `json:"id"`
	EmployeeID      string          `json:"employee_id"`
	EmployeeName    *string         `json:"employee_name,omitempty"`
	EmployeeCode    *string         `json:"employee_code,omitempty"`
	Month           string          `json:"month"`
	BasicSalary     decimal.Decimal `json:"basic_salary"`
	Allowances      decimal.Decimal `json:"allowances"`
	Deductions      decimal.Decimal `json:"deductions"`
	Bonus           decimal.Decimal `json:"bonus"`
	Overtime        decimal.Decimal `json:"overtime"`
	GrossSalary     decimal.Decimal `json:"gross_salary"`
	Tax             decimal.Decimal `json:"tax"`
	PF              decimal.Decimal `json:"pf"`
	ESI             decimal.Decimal `json:"esi"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetSalary       decimal.Decimal `json:"net_salary"`
	Status          string          `json:"status"`
	PaidDate        *string         `json:"paid_date,omitempty"`
	PayslipURL      *string         `json:"payslip_url,omitempty"`
	CreatedAt       string          `json:"created_at"`
}

func ToResponse(p PayrollRecord) PayrollResponse {
	resp := PayrollResponse{
		ID:              p.ID,
		EmployeeID:      p.EmployeeID,
		EmployeeName:    p.EmployeeName,
		EmployeeCode:    p.EmployeeCode,
		Month:           p.Month,
		BasicSalary:     p.BasicSalary,
		Allowances:      p.Allowances,
		Deductions:      p.Deductions,
		Bonus:           p.Bonus,
		Overtime:        p.Overtime,
		GrossSalary:     p.GrossSalary,
		Tax:             p.Tax,
		PF:              p.PF,
		ESI:             p.ESI,
		TotalDeductions: p.TotalDeductions,
		NetSalary:       p.NetSalary,
		Status:          string(p.Status),
		PayslipURL:      p.PayslipURL,
		CreatedAt:       p.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if p.PaidDate != nil {
		s := p.PaidDate.Format("2006-01-02")
		resp.PaidDate = &s
	}
	return resp
}
