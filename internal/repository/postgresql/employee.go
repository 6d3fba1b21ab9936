package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/staffhub/ems-backend-go/internal/domain/employee"
	"github.com/staffhub/ems-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	e.id, e.employee_code, e.name, e.email, e.phone, e.department, e.designation,
	e.joining_date, e.salary, e.avatar_url, e.documents, e.status, e.user_id,
	e.shift_id, e.created_at, e.updated_at
`

func scanEmployee(row pgx.Row, withShiftName bool) (employee.Employee, error) {
	var e employee.Employee
	var docs []byte

	dest := []interface{}{
		&e.ID, &e.EmployeeCode, &e.Name, &e.Email, &e.Phone, &e.Department,
		&e.Designation, &e.JoiningDate, &e.Salary, &e.AvatarURL, &docs,
		&e.Status, &e.UserID, &e.ShiftID, &e.CreatedAt, &e.UpdatedAt,
	}
	if withShiftName {
		dest = append(dest, &e.ShiftName)
	}

	if err := row.Scan(dest...); err != nil {
		return employee.Employee{}, err
	}
	if docs != nil {
		if err := json.Unmarshal(docs, &e.Documents); err != nil {
			return employee.Employee{}, fmt.Errorf("failed to decode documents: %w", err)
		}
	}

	return e, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	docs, err := json.Marshal(e.Documents)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to encode documents: %w", err)
	}

	insertQuery := `
		INSERT INTO employees (id, employee_code, name, email, phone, department, designation,
		                       joining_date, salary, avatar_url, documents, status, user_id, shift_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, employee_code, name, email, phone, department, designation,
		          joining_date, salary, avatar_url, documents, status, user_id,
		          shift_id, created_at, updated_at
	`

	created, err := scanEmployee(q.QueryRow(ctx, insertQuery,
		e.ID, e.EmployeeCode, e.Name, e.Email, e.Phone, e.Department, e.Designation,
		e.JoiningDate, e.Salary, e.AvatarURL, docs, e.Status, e.UserID, e.ShiftID,
	), false)
	if err != nil {
		if isUniqueViolation(err, "employees_employee_code_key") {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
		if isUniqueViolation(err, "employees_email_key") {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `, s.name AS shift_name
		FROM employees e
		LEFT JOIN shifts s ON s.id = e.shift_id
		WHERE e.id = $1
	`

	e, err := scanEmployee(q.QueryRow(ctx, query, id), true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return e, nil
}

// GetByUserID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `, s.name AS shift_name
		FROM employees e
		LEFT JOIN shifts s ON s.id = e.shift_id
		WHERE e.user_id = $1
	`

	e, err := scanEmployee(q.QueryRow(ctx, query, userID), true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrNoEmployeeRecord
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by user id: %w", err)
	}

	return e, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.ListEmployeesFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.Search != nil && *filter.Search != "" {
		baseWhere += fmt.Sprintf(" AND (e.name ILIKE $%d OR e.email ILIKE $%d OR e.employee_code ILIKE $%d)", argIdx, argIdx, argIdx)
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}
	if filter.Department != nil && *filter.Department != "" {
		baseWhere += fmt.Sprintf(" AND e.department = $%d", argIdx)
		args = append(args, *filter.Department)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND e.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	countQuery := `SELECT COUNT(*) FROM employees e WHERE ` + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT `+employeeColumns+`, s.name AS shift_name
		FROM employees e
		LEFT JOIN shifts s ON s.id = e.shift_id
		WHERE `+baseWhere+`
		ORDER BY e.created_at DESC
		LIMIT $%d OFFSET $%d
	`, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows, true)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, total, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET name = $1, email = $2, phone = $3, department = $4, designation = $5,
		    joining_date = $6, salary = $7, status = $8, shift_id = $9, updated_at = NOW()
		WHERE id = $10
		RETURNING id, employee_code, name, email, phone, department, designation,
		          joining_date, salary, avatar_url, documents, status, user_id,
		          shift_id, created_at, updated_at
	`

	updated, err := scanEmployee(q.QueryRow(ctx, query,
		e.Name, e.Email, e.Phone, e.Department, e.Designation,
		e.JoiningDate, e.Salary, e.Status, e.ShiftID, e.ID,
	), false)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		if isUniqueViolation(err, "employees_email_key") {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return updated, nil
}

// SetAvatarURL implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) SetAvatarURL(ctx context.Context, id string, url string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE employees SET avatar_url = $1, updated_at = NOW() WHERE id = $2`, url, id)
	if err != nil {
		return fmt.Errorf("failed to set avatar url: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// AppendDocument implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) AppendDocument(ctx context.Context, id string, doc employee.Document) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	encoded, err := json.Marshal(doc)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to encode document: %w", err)
	}

	query := `
		UPDATE employees
		SET documents = COALESCE(documents, '[]'::jsonb) || $1::jsonb, updated_at = NOW()
		WHERE id = $2
		RETURNING id, employee_code, name, email, phone, department, designation,
		          joining_date, salary, avatar_url, documents, status, user_id,
		          shift_id, created_at, updated_at
	`

	updated, err := scanEmployee(q.QueryRow(ctx, query, encoded, id), false)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to append document: %w", err)
	}

	return updated, nil
}

// AssignShift implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) AssignShift(ctx context.Context, shiftID string, employeeIDs []string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE employees SET shift_id = $1, updated_at = NOW() WHERE id = ANY($2)`,
		shiftID, employeeIDs,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to assign shift: %w", err)
	}

	return tag.RowsAffected(), nil
}

// ListByShift implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListByShift(ctx context.Context, shiftID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `, s.name AS shift_name
		FROM employees e
		LEFT JOIN shifts s ON s.id = e.shift_id
		WHERE e.shift_id = $1
		ORDER BY e.name ASC
	`

	rows, err := q.Query(ctx, query, shiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees by shift: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows, true)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
