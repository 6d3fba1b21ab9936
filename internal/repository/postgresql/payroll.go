package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/staffhub/ems-backend-go/internal/domain/payroll"
	"github.com/staffhub/ems-backend-go/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

const payrollColumns = `
	p.id, p.employee_id, p.month, p.basic_salary, p.allowances, p.deductions,
	p.bonus, p.overtime, p.gross_salary, p.tax, p.pf, p.esi, p.total_deductions,
	p.net_salary, p.status, p.paid_date, p.payslip_url, p.created_at, p.updated_at
`

func scanPayroll(row pgx.Row, withEmployee bool) (payroll.PayrollRecord, error) {
	var p payroll.PayrollRecord

	dest := []interface{}{
		&p.ID, &p.EmployeeID, &p.Month, &p.BasicSalary, &p.Allowances, &p.Deductions,
		&p.Bonus, &p.Overtime, &p.GrossSalary, &p.Tax, &p.PF, &p.ESI, &p.TotalDeductions,
		&p.NetSalary, &p.Status, &p.PaidDate, &p.PayslipURL, &p.CreatedAt, &p.UpdatedAt,
	}
	if withEmployee {
		dest = append(dest, &p.EmployeeName, &p.EmployeeCode)
	}

	if err := row.Scan(dest...); err != nil {
		return payroll.PayrollRecord{}, err
	}

	return p, nil
}

// Create implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Create(ctx context.Context, p payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_records (id, employee_id, month, basic_salary, allowances, deductions,
		                             bonus, overtime, gross_salary, tax, pf, esi, total_deductions,
		                             net_salary, status, paid_date, payslip_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id, employee_id, month, basic_salary, allowances, deductions,
		          bonus, overtime, gross_salary, tax, pf, esi, total_deductions,
		          net_salary, status, paid_date, payslip_url, created_at, updated_at
	`

	created, err := scanPayroll(q.QueryRow(ctx, query,
		p.ID, p.EmployeeID, p.Month, p.BasicSalary, p.Allowances, p.Deductions,
		p.Bonus, p.Overtime, p.GrossSalary, p.Tax, p.PF, p.ESI, p.TotalDeductions,
		p.NetSalary, p.Status, p.PaidDate, p.PayslipURL,
	), false)
	if err != nil {
		if isUniqueViolation(err, "payroll_records_employee_id_month_key") {
			return payroll.PayrollRecord{}, payroll.ErrPayrollExists
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return created, nil
}

// GetByID implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetByID(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `,
		       e.name AS employee_name, e.employee_code
		FROM payroll_records p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1
	`

	p, err := scanPayroll(q.QueryRow(ctx, query, id), true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRecord{}, payroll.ErrPayrollNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return p, nil
}

// GetByEmployeeAndMonth implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetByEmployeeAndMonth(ctx context.Context, employeeID string, month string) (*payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM payroll_records p
		WHERE p.employee_id = $1 AND p.month = $2
	`

	p, err := scanPayroll(q.QueryRow(ctx, query, employeeID, month), false)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return &p, nil
}

// List implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) List(ctx context.Context, filter payroll.ListPayrollFilter) ([]payroll.PayrollRecord, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND p.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Month != nil && *filter.Month != "" {
		baseWhere += fmt.Sprintf(" AND p.month = $%d", argIdx)
		args = append(args, *filter.Month)
		argIdx++
	}

	countQuery := `SELECT COUNT(*) FROM payroll_records p WHERE ` + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll records: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT `+payrollColumns+`,
		       e.name AS employee_name, e.employee_code
		FROM payroll_records p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE `+baseWhere+`
		ORDER BY p.month DESC, p.created_at DESC
		LIMIT $%d OFFSET $%d
	`, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		p, err := scanPayroll(rows, true)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, p)
	}

	return records, total, nil
}

// UpdateStatus implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) UpdateStatus(ctx context.Context, id string, status payroll.Status) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	// paid_date is stamped when the record transitions to paid and cleared otherwise.
	query := `
		UPDATE payroll_records
		SET status = $1,
		    paid_date = CASE WHEN $1 = 'paid' THEN NOW() ELSE NULL END,
		    updated_at = NOW()
		WHERE id = $2
		RETURNING id, employee_id, month, basic_salary, allowances, deductions,
		          bonus, overtime, gross_salary, tax, pf, esi, total_deductions,
		          net_salary, status, paid_date, payslip_url, created_at, updated_at
	`

	updated, err := scanPayroll(q.QueryRow(ctx, query, status, id), false)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRecord{}, payroll.ErrPayrollNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to update payroll status: %w", err)
	}

	return updated, nil
}

// SetPayslipURL implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) SetPayslipURL(ctx context.Context, id string, url string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE payroll_records SET payslip_url = $1, updated_at = NOW() WHERE id = $2`, url, id)
	if err != nil {
		return fmt.Errorf("failed to set payslip url: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollNotFound
	}

	return nil
}
