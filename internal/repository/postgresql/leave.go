package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/staffhub/ems-backend-go/internal/domain/leave"
	"github.com/staffhub/ems-backend-go/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

const leaveColumns = `
	l.id, l.employee_id, l.leave_type, l.start_date, l.end_date, l.reason,
	l.status, l.applied_at, l.reviewed_by, l.reviewed_at, l.comments,
	l.created_at, l.updated_at
`

func scanLeave(row pgx.Row, withJoins bool) (leave.LeaveRequest, error) {
	var l leave.LeaveRequest

	dest := []interface{}{
		&l.ID, &l.EmployeeID, &l.LeaveType, &l.StartDate, &l.EndDate, &l.Reason,
		&l.Status, &l.AppliedAt, &l.ReviewedBy, &l.ReviewedAt, &l.Comments,
		&l.CreatedAt, &l.UpdatedAt,
	}
	if withJoins {
		dest = append(dest, &l.EmployeeName, &l.EmployeeCode, &l.ReviewerName)
	}

	if err := row.Scan(dest...); err != nil {
		return leave.LeaveRequest{}, err
	}

	return l, nil
}

// Create implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, l leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (id, employee_id, leave_type, start_date, end_date, reason, status, applied_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, employee_id, leave_type, start_date, end_date, reason,
		          status, applied_at, reviewed_by, reviewed_at, comments,
		          created_at, updated_at
	`

	created, err := scanLeave(q.QueryRow(ctx, query,
		l.ID, l.EmployeeID, l.LeaveType, l.StartDate, l.EndDate, l.Reason, l.Status, l.AppliedAt,
	), false)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return created, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `,
		       e.name AS employee_name, e.employee_code, u.name AS reviewer_name
		FROM leave_requests l
		LEFT JOIN employees e ON e.id = l.employee_id
		LEFT JOIN users u ON u.id = l.reviewed_by
		WHERE l.id = $1
	`

	l, err := scanLeave(q.QueryRow(ctx, query, id), true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return l, nil
}

// List implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) List(ctx context.Context, filter leave.ListLeavesFilter) ([]leave.LeaveRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND l.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND l.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	countQuery := `SELECT COUNT(*) FROM leave_requests l WHERE ` + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT `+leaveColumns+`,
		       e.name AS employee_name, e.employee_code, u.name AS reviewer_name
		FROM leave_requests l
		LEFT JOIN employees e ON e.id = l.employee_id
		LEFT JOIN users u ON u.id = l.reviewed_by
		WHERE `+baseWhere+`
		ORDER BY l.applied_at DESC
		LIMIT $%d OFFSET $%d
	`, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var leaves []leave.LeaveRequest
	for rows.Next() {
		l, err := scanLeave(rows, true)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan leave request: %w", err)
		}
		leaves = append(leaves, l)
	}

	return leaves, total, nil
}

// ListApprovedByEmployee implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListApprovedByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests l
		WHERE l.employee_id = $1 AND l.status = 'approved'
		ORDER BY l.start_date ASC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leaves: %w", err)
	}
	defer rows.Close()

	var leaves []leave.LeaveRequest
	for rows.Next() {
		l, err := scanLeave(rows, false)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		leaves = append(leaves, l)
	}

	return leaves, nil
}

// Update implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Update(ctx context.Context, l leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET leave_type = $1, start_date = $2, end_date = $3, reason = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING id, employee_id, leave_type, start_date, end_date, reason,
		          status, applied_at, reviewed_by, reviewed_at, comments,
		          created_at, updated_at
	`

	updated, err := scanLeave(q.QueryRow(ctx, query,
		l.LeaveType, l.StartDate, l.EndDate, l.Reason, l.ID,
	), false)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	return updated, nil
}

// Review implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Review(ctx context.Context, id string, status leave.Status, reviewerID string, comments *string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	// The status guard makes the first review win under concurrency.
	query := `
		UPDATE leave_requests
		SET status = $1, reviewed_by = $2, reviewed_at = NOW(), comments = $3, updated_at = NOW()
		WHERE id = $4 AND status = 'pending'
		RETURNING id, employee_id, leave_type, start_date, end_date, reason,
		          status, applied_at, reviewed_by, reviewed_at, comments,
		          created_at, updated_at
	`

	reviewed, err := scanLeave(q.QueryRow(ctx, query, status, reviewerID, comments, id), false)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveAlreadyReviewed
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to review leave request: %w", err)
	}

	return reviewed, nil
}

// Delete implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM leave_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete leave request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}

	return nil
}
