package payroll

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/staffhub/ems-backend-go/internal/domain/employee"
	"github.com/staffhub/ems-backend-go/internal/domain/payroll"
	"github.com/staffhub/ems-backend-go/internal/domain/user"
	"github.com/staffhub/ems-backend-go/internal/pkg/email"
	"github.com/staffhub/ems-backend-go/internal/pkg/pdf"
	"github.com/staffhub/ems-backend-go/internal/pkg/storage"
)

type PayrollServiceImpl struct {
	payrollRepo  payroll.PayrollRepository
	employeeRepo employee.EmployeeRepository
	pdfGenerator pdf.Generator
	fileStorage  storage.FileStorage
	emailService email.EmailService
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	pdfGenerator pdf.Generator,
	fileStorage storage.FileStorage,
	emailService email.EmailService,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
		pdfGenerator: pdfGenerator,
		fileStorage:  fileStorage,
		emailService: emailService,
	}
}

type caller struct {
	UserID     string
	Role       user.Role
	EmployeeID *string
}

func callerFromContext(ctx context.Context) (caller, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return caller{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	c := caller{}
	c.UserID, _ = claims["user_id"].(string)
	if role, ok := claims["role"].(string); ok {
		c.Role = user.Role(role)
	}
	if employeeID, ok := claims["employee_id"].(string); ok && employeeID != "" {
		c.EmployeeID = &employeeID
	}

	return c, nil
}

// CalculateOnly implements payroll.PayrollService.
func (s *PayrollServiceImpl) CalculateOnly(ctx context.Context, req payroll.CalculateRequest) (payroll.SalaryBreakdown, error) {
	if err := req.Validate(); err != nil {
		return payroll.SalaryBreakdown{}, err
	}

	return payroll.Calculate(
		decimal.NewFromFloat(req.BasicSalary),
		decimal.NewFromFloat(req.Allowances),
		decimal.NewFromFloat(req.Deductions),
		decimal.NewFromFloat(req.Bonus),
		decimal.NewFromFloat(req.Overtime),
	), nil
}

// Generate implements payroll.PayrollService. The basic salary comes from
// the employee record.
func (s *PayrollServiceImpl) Generate(ctx context.Context, req payroll.GeneratePayslipRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	e, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	return s.createRecord(ctx, e, req.Month,
		e.Salary,
		decimal.NewFromFloat(req.Allowances),
		decimal.NewFromFloat(req.Deductions),
		decimal.NewFromFloat(req.Bonus),
		decimal.NewFromFloat(req.Overtime),
	)
}

// Create implements payroll.PayrollService.
func (s *PayrollServiceImpl) Create(ctx context.Context, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	e, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	return s.createRecord(ctx, e, req.Month,
		decimal.NewFromFloat(req.BasicSalary),
		decimal.NewFromFloat(req.Allowances),
		decimal.NewFromFloat(req.Deductions),
		decimal.NewFromFloat(req.Bonus),
		decimal.NewFromFloat(req.Overtime),
	)
}

func (s *PayrollServiceImpl) createRecord(ctx context.Context, e employee.Employee, month string, basic, allowances, deductions, bonus, overtime decimal.Decimal) (payroll.PayrollResponse, error) {
	existing, err := s.payrollRepo.GetByEmployeeAndMonth(ctx, e.ID, month)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	if existing != nil {
		return payroll.PayrollResponse{}, payroll.ErrPayrollExists
	}

	breakdown := payroll.Calculate(basic, allowances, deductions, bonus, overtime)

	id, err := uuid.NewV7()
	if err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to generate payroll id: %w", err)
	}

	created, err := s.payrollRepo.Create(ctx, payroll.PayrollRecord{
		ID:              id.String(),
		EmployeeID:      e.ID,
		Month:           month,
		BasicSalary:     basic,
		Allowances:      allowances,
		Deductions:      deductions,
		Bonus:           bonus,
		Overtime:        overtime,
		GrossSalary:     breakdown.GrossSalary,
		Tax:             breakdown.Tax,
		PF:              breakdown.PF,
		ESI:             breakdown.ESI,
		TotalDeductions: breakdown.TotalDeductions,
		NetSalary:       breakdown.NetSalary,
		Status:          payroll.StatusPending,
	})
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	// Payslip rendering is best effort; the record stands without it.
	if url, err := s.renderPayslip(ctx, e, created); err != nil {
		slog.Error("failed to render payslip", "payroll_id", created.ID, "error", err)
	} else {
		created.PayslipURL = &url
		if s.emailService != nil {
			if err := s.emailService.SendPayslipReady(e.Email, e.Name, created.Month, url); err != nil {
				slog.Error("failed to send payslip notification", "payroll_id", created.ID, "error", err)
			}
		}
	}

	created.EmployeeName = &e.Name
	created.EmployeeCode = &e.EmployeeCode
	return payroll.ToResponse(created), nil
}

func (s *PayrollServiceImpl) renderPayslip(ctx context.Context, e employee.Employee, p payroll.PayrollRecord) (string, error) {
	rendered, err := s.pdfGenerator.RenderPayslip(&pdf.PayslipData{
		EmployeeName:    e.Name,
		EmployeeCode:    e.EmployeeCode,
		Position:        e.Designation,
		Department:      e.Department,
		Month:           p.Month,
		BasicSalary:     p.BasicSalary,
		Allowances:      p.Allowances,
		Bonus:           p.Bonus,
		Overtime:        p.Overtime,
		Deductions:      p.Deductions,
		Tax:             p.Tax,
		PF:              p.PF,
		ESI:             p.ESI,
		GrossSalary:     p.GrossSalary,
		TotalDeductions: p.TotalDeductions,
		NetSalary:       p.NetSalary,
	})
	if err != nil {
		return "", err
	}

	path := fmt.Sprintf("payslips/%s/%s.pdf", e.ID, p.Month)
	stored, err := s.fileStorage.Upload(ctx, bytes.NewReader(rendered), path, "application/pdf")
	if err != nil {
		return "", err
	}

	url, err := s.fileStorage.GetURL(ctx, stored, 0)
	if err != nil {
		return "", err
	}

	if err := s.payrollRepo.SetPayslipURL(ctx, p.ID, url); err != nil {
		return "", err
	}

	return url, nil
}

// DefineStructure implements payroll.PayrollService. It stores the base
// salary on the employee record and reports the resulting breakdown without
// creating a payslip.
func (s *PayrollServiceImpl) DefineStructure(ctx context.Context, req payroll.DefineStructureRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	e, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	basic := decimal.NewFromFloat(req.BasicSalary)
	e.Salary = basic
	if _, err := s.employeeRepo.Update(ctx, e); err != nil {
		return payroll.PayrollResponse{}, err
	}

	breakdown := payroll.Calculate(basic,
		decimal.NewFromFloat(req.Allowances),
		decimal.NewFromFloat(req.Deductions),
		decimal.Zero, decimal.Zero,
	)

	return payroll.PayrollResponse{
		EmployeeID:      e.ID,
		EmployeeName:    &e.Name,
		EmployeeCode:    &e.EmployeeCode,
		BasicSalary:     basic,
		Allowances:      decimal.NewFromFloat(req.Allowances),
		Deductions:      decimal.NewFromFloat(req.Deductions),
		GrossSalary:     breakdown.GrossSalary,
		Tax:             breakdown.Tax,
		PF:              breakdown.PF,
		ESI:             breakdown.ESI,
		TotalDeductions: breakdown.TotalDeductions,
		NetSalary:       breakdown.NetSalary,
	}, nil
}

// Get implements payroll.PayrollService. Employee-role callers can only read
// their own records.
func (s *PayrollServiceImpl) Get(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	c, err := callerFromContext(ctx)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	p, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	if c.Role == user.RoleEmployee {
		if c.EmployeeID == nil || *c.EmployeeID != p.EmployeeID {
			return payroll.PayrollResponse{}, payroll.ErrPayrollNotFound
		}
	}

	return payroll.ToResponse(p), nil
}

// List implements payroll.PayrollService. Employee-role callers are scoped
// to their own records.
func (s *PayrollServiceImpl) List(ctx context.Context, filter payroll.ListPayrollFilter) ([]payroll.PayrollResponse, int64, error) {
	if err := filter.Validate(); err != nil {
		return nil, 0, err
	}

	c, err := callerFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	if c.Role == user.RoleEmployee {
		if c.EmployeeID == nil {
			return nil, 0, employee.ErrNoEmployeeRecord
		}
		filter.EmployeeID = c.EmployeeID
	}

	records, total, err := s.payrollRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]payroll.PayrollResponse, 0, len(records))
	for _, p := range records {
		responses = append(responses, payroll.ToResponse(p))
	}

	return responses, total, nil
}

// ListByEmployee implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListByEmployee(ctx context.Context, employeeID string, page, limit int) ([]payroll.PayrollResponse, int64, error) {
	c, err := callerFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	if c.Role == user.RoleEmployee {
		if c.EmployeeID == nil || *c.EmployeeID != employeeID {
			return nil, 0, payroll.ErrNotAuthorized
		}
	}

	filter := payroll.ListPayrollFilter{
		EmployeeID: &employeeID,
		Page:       page,
		Limit:      limit,
	}
	if err := filter.Validate(); err != nil {
		return nil, 0, err
	}

	records, total, err := s.payrollRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]payroll.PayrollResponse, 0, len(records))
	for _, p := range records {
		responses = append(responses, payroll.ToResponse(p))
	}

	return responses, total, nil
}

// UpdateStatus implements payroll.PayrollService.
func (s *PayrollServiceImpl) UpdateStatus(ctx context.Context, req payroll.UpdateStatusRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	updated, err := s.payrollRepo.UpdateStatus(ctx, req.ID, payroll.Status(req.Status))
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	return payroll.ToResponse(updated), nil
}
