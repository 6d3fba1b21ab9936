package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/staffhub/ems-backend-go/internal/domain/performance"
	"github.com/staffhub/ems-backend-go/internal/pkg/database"
)

type performanceRepositoryImpl struct {
	db *database.DB
}

func NewPerformanceRepository(db *database.DB) performance.Repository {
	return &performanceRepositoryImpl{db: db}
}

const reviewColumns = `
	r.id, r.employee_id, r.period, r.rating, r.goals, r.feedback,
	r.strengths, r.improvement_areas, r.reviewer_id, r.review_date,
	r.created_at, r.updated_at
`

func scanReview(row pgx.Row, withJoins bool) (performance.Review, error) {
	var rv performance.Review

	dest := []interface{}{
		&rv.ID, &rv.EmployeeID, &rv.Period, &rv.Rating, &rv.Goals, &rv.Feedback,
		&rv.Strengths, &rv.ImprovementAreas, &rv.ReviewerID, &rv.ReviewDate,
		&rv.CreatedAt, &rv.UpdatedAt,
	}
	if withJoins {
		dest = append(dest, &rv.EmployeeName, &rv.ReviewerName)
	}

	if err := row.Scan(dest...); err != nil {
		return performance.Review{}, err
	}

	return rv, nil
}

// Create implements performance.Repository.
func (r *performanceRepositoryImpl) Create(ctx context.Context, review *performance.Review) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO performance_reviews (id, employee_id, period, rating, goals, feedback,
		                                 strengths, improvement_areas, reviewer_id, review_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		review.ID, review.EmployeeID, review.Period, review.Rating, review.Goals,
		review.Feedback, review.Strengths, review.ImprovementAreas, review.ReviewerID,
		review.ReviewDate,
	).Scan(&review.CreatedAt, &review.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create performance review: %w", err)
	}

	return nil
}

// GetByID implements performance.Repository.
func (r *performanceRepositoryImpl) GetByID(ctx context.Context, id string) (*performance.Review, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + reviewColumns + `,
		       e.name AS employee_name, u.name AS reviewer_name
		FROM performance_reviews r
		LEFT JOIN employees e ON e.id = r.employee_id
		LEFT JOIN users u ON u.id = r.reviewer_id
		WHERE r.id = $1
	`

	rv, err := scanReview(q.QueryRow(ctx, query, id), true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, performance.ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to get performance review: %w", err)
	}

	return &rv, nil
}

// List implements performance.Repository.
func (r *performanceRepositoryImpl) List(ctx context.Context, filter *performance.ListReviewsFilter) ([]performance.Review, int, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND r.employee_id = $%d", argIdx)
		args = append(args, filter.EmployeeID)
		argIdx++
	}
	if filter.Period != "" {
		baseWhere += fmt.Sprintf(" AND r.period = $%d", argIdx)
		args = append(args, filter.Period)
		argIdx++
	}

	countQuery := `SELECT COUNT(*) FROM performance_reviews r WHERE ` + baseWhere
	var total int
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count performance reviews: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT `+reviewColumns+`,
		       e.name AS employee_name, u.name AS reviewer_name
		FROM performance_reviews r
		LEFT JOIN employees e ON e.id = r.employee_id
		LEFT JOIN users u ON u.id = r.reviewer_id
		WHERE `+baseWhere+`
		ORDER BY r.review_date DESC
		LIMIT $%d OFFSET $%d
	`, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list performance reviews: %w", err)
	}
	defer rows.Close()

	var reviews []performance.Review
	for rows.Next() {
		rv, err := scanReview(rows, true)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan performance review: %w", err)
		}
		reviews = append(reviews, rv)
	}

	return reviews, total, nil
}

// Update implements performance.Repository.
func (r *performanceRepositoryImpl) Update(ctx context.Context, review *performance.Review) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE performance_reviews
		SET rating = $1, goals = $2, feedback = $3, strengths = $4,
		    improvement_areas = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		review.Rating, review.Goals, review.Feedback, review.Strengths,
		review.ImprovementAreas, review.ID,
	).Scan(&review.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return performance.ErrReviewNotFound
		}
		return fmt.Errorf("failed to update performance review: %w", err)
	}

	return nil
}

// Delete implements performance.Repository.
func (r *performanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM performance_reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete performance review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return performance.ErrReviewNotFound
	}

	return nil
}
