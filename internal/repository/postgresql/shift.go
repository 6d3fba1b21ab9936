package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/staffhub/ems-backend-go/internal/domain/shift"
	"github.com/staffhub/ems-backend-go/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.Repository {
	return &shiftRepositoryImpl{db: db}
}

// Create implements shift.Repository.
func (r *shiftRepositoryImpl) Create(ctx context.Context, s *shift.Shift) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (id, name, start_time, end_time, break_duration)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, s.ID, s.Name, s.StartTime, s.EndTime, s.BreakDuration).
		Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, "shifts_name_key") {
			return shift.ErrShiftExists
		}
		return fmt.Errorf("failed to create shift: %w", err)
	}

	return nil
}

// GetByID implements shift.Repository.
func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id string) (*shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.name, s.start_time, s.end_time, s.break_duration,
		       s.created_at, s.updated_at,
		       COUNT(e.id) AS employee_count
		FROM shifts s
		LEFT JOIN employees e ON e.shift_id = s.id
		WHERE s.id = $1
		GROUP BY s.id
	`

	var s shift.Shift
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.StartTime, &s.EndTime, &s.BreakDuration,
		&s.CreatedAt, &s.UpdatedAt, &s.EmployeeCount,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, shift.ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}

	return &s, nil
}

// List implements shift.Repository.
func (r *shiftRepositoryImpl) List(ctx context.Context) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.name, s.start_time, s.end_time, s.break_duration,
		       s.created_at, s.updated_at,
		       COUNT(e.id) AS employee_count
		FROM shifts s
		LEFT JOIN employees e ON e.shift_id = s.id
		GROUP BY s.id
		ORDER BY s.start_time ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		var s shift.Shift
		if err := rows.Scan(
			&s.ID, &s.Name, &s.StartTime, &s.EndTime, &s.BreakDuration,
			&s.CreatedAt, &s.UpdatedAt, &s.EmployeeCount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}

	return shifts, nil
}

// Update implements shift.Repository.
func (r *shiftRepositoryImpl) Update(ctx context.Context, s *shift.Shift) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET name = $1, start_time = $2, end_time = $3, break_duration = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query, s.Name, s.StartTime, s.EndTime, s.BreakDuration, s.ID).
		Scan(&s.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.ErrShiftNotFound
		}
		if isUniqueViolation(err, "shifts_name_key") {
			return shift.ErrShiftExists
		}
		return fmt.Errorf("failed to update shift: %w", err)
	}

	return nil
}

// Delete implements shift.Repository.
func (r *shiftRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	var inUse bool
	if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM employees WHERE shift_id = $1)`, id).Scan(&inUse); err != nil {
		return fmt.Errorf("failed to check shift usage: %w", err)
	}
	if inUse {
		return shift.ErrShiftInUse
	}

	tag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}
