package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/staffhub/ems-backend-go/internal/domain/settings"
	"github.com/staffhub/ems-backend-go/internal/pkg/database"
)

type settingsRepositoryImpl struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.Repository {
	return &settingsRepositoryImpl{db: db}
}

// CreateDepartment implements settings.Repository.
func (r *settingsRepositoryImpl) CreateDepartment(ctx context.Context, dept *settings.Department) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO departments (id, name, head)
		VALUES ($1, $2, $3)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, dept.ID, dept.Name, dept.Head).Scan(&dept.CreatedAt, &dept.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, "departments_name_key") {
			return settings.ErrDepartmentExists
		}
		return fmt.Errorf("failed to create department: %w", err)
	}

	return nil
}

// ListDepartments implements settings.Repository.
func (r *settingsRepositoryImpl) ListDepartments(ctx context.Context) ([]settings.Department, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, head, created_at, updated_at FROM departments ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	var departments []settings.Department
	for rows.Next() {
		var d settings.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.Head, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, d)
	}

	return departments, nil
}

// GetDepartmentByID implements settings.Repository.
func (r *settingsRepositoryImpl) GetDepartmentByID(ctx context.Context, id string) (*settings.Department, error) {
	q := GetQuerier(ctx, r.db)

	var d settings.Department
	err := q.QueryRow(ctx, `SELECT id, name, head, created_at, updated_at FROM departments WHERE id = $1`, id).
		Scan(&d.ID, &d.Name, &d.Head, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, settings.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("failed to get department: %w", err)
	}

	return &d, nil
}

// UpdateDepartment implements settings.Repository.
func (r *settingsRepositoryImpl) UpdateDepartment(ctx context.Context, dept *settings.Department) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE departments
		SET name = $1, head = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query, dept.Name, dept.Head, dept.ID).Scan(&dept.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return settings.ErrDepartmentNotFound
		}
		if isUniqueViolation(err, "departments_name_key") {
			return settings.ErrDepartmentExists
		}
		return fmt.Errorf("failed to update department: %w", err)
	}

	return nil
}

// DeleteDepartment implements settings.Repository.
func (r *settingsRepositoryImpl) DeleteDepartment(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return settings.ErrDepartmentNotFound
	}

	return nil
}

// CreateHoliday implements settings.Repository.
func (r *settingsRepositoryImpl) CreateHoliday(ctx context.Context, holiday *settings.Holiday) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holidays (id, name, date, type)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, holiday.ID, holiday.Name, holiday.Date, holiday.Type).
		Scan(&holiday.CreatedAt, &holiday.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create holiday: %w", err)
	}

	return nil
}

// ListHolidays implements settings.Repository.
func (r *settingsRepositoryImpl) ListHolidays(ctx context.Context, filter *settings.ListHolidaysFilter) ([]settings.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.Year > 0 {
		baseWhere += fmt.Sprintf(" AND EXTRACT(YEAR FROM date) = $%d", argIdx)
		args = append(args, filter.Year)
		argIdx++
	}
	if filter.Type != "" {
		baseWhere += fmt.Sprintf(" AND type = $%d", argIdx)
		args = append(args, filter.Type)
		argIdx++
	}

	query := `
		SELECT id, name, date, type, created_at, updated_at
		FROM holidays
		WHERE ` + baseWhere + `
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []settings.Holiday
	for rows.Next() {
		var h settings.Holiday
		if err := rows.Scan(&h.ID, &h.Name, &h.Date, &h.Type, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}

	return holidays, nil
}

// DeleteHoliday implements settings.Repository.
func (r *settingsRepositoryImpl) DeleteHoliday(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return settings.ErrHolidayNotFound
	}

	return nil
}

// CreateLeaveType implements settings.Repository.
func (r *settingsRepositoryImpl) CreateLeaveType(ctx context.Context, lt *settings.LeaveType) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_types (id, name, days, carry_forward)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, lt.ID, lt.Name, lt.Days, lt.CarryForward).
		Scan(&lt.CreatedAt, &lt.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, "leave_types_name_key") {
			return settings.ErrLeaveTypeExists
		}
		return fmt.Errorf("failed to create leave type: %w", err)
	}

	return nil
}

// ListLeaveTypes implements settings.Repository.
func (r *settingsRepositoryImpl) ListLeaveTypes(ctx context.Context) ([]settings.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, days, carry_forward, created_at, updated_at FROM leave_types ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave types: %w", err)
	}
	defer rows.Close()

	var leaveTypes []settings.LeaveType
	for rows.Next() {
		var lt settings.LeaveType
		if err := rows.Scan(&lt.ID, &lt.Name, &lt.Days, &lt.CarryForward, &lt.CreatedAt, &lt.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan leave type: %w", err)
		}
		leaveTypes = append(leaveTypes, lt)
	}

	return leaveTypes, nil
}

// GetLeaveTypeByID implements settings.Repository.
func (r *settingsRepositoryImpl) GetLeaveTypeByID(ctx context.Context, id string) (*settings.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	var lt settings.LeaveType
	err := q.QueryRow(ctx, `SELECT id, name, days, carry_forward, created_at, updated_at FROM leave_types WHERE id = $1`, id).
		Scan(&lt.ID, &lt.Name, &lt.Days, &lt.CarryForward, &lt.CreatedAt, &lt.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, settings.ErrLeaveTypeNotFound
		}
		return nil, fmt.Errorf("failed to get leave type: %w", err)
	}

	return &lt, nil
}

// UpdateLeaveType implements settings.Repository.
func (r *settingsRepositoryImpl) UpdateLeaveType(ctx context.Context, lt *settings.LeaveType) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_types
		SET name = $1, days = $2, carry_forward = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query, lt.Name, lt.Days, lt.CarryForward, lt.ID).Scan(&lt.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return settings.ErrLeaveTypeNotFound
		}
		if isUniqueViolation(err, "leave_types_name_key") {
			return settings.ErrLeaveTypeExists
		}
		return fmt.Errorf("failed to update leave type: %w", err)
	}

	return nil
}

// DeleteLeaveType implements settings.Repository.
func (r *settingsRepositoryImpl) DeleteLeaveType(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM leave_types WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete leave type: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return settings.ErrLeaveTypeNotFound
	}

	return nil
}
