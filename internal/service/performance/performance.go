package performance

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"

	"github.com/staffhub/ems-backend-go/internal/domain/employee"
	"github.com/staffhub/ems-backend-go/internal/domain/performance"
	"github.com/staffhub/ems-backend-go/internal/domain/user"
)

type PerformanceServiceImpl struct {
	reviewRepo   performance.Repository
	employeeRepo employee.EmployeeRepository
}

func NewPerformanceService(reviewRepo performance.Repository, employeeRepo employee.EmployeeRepository) performance.Service {
	return &PerformanceServiceImpl{
		reviewRepo:   reviewRepo,
		employeeRepo: employeeRepo,
	}
}

// Create implements performance.Service. The reviewer is the caller.
func (s *PerformanceServiceImpl) Create(ctx context.Context, req *performance.CreateReviewRequest) (*performance.ReviewResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	reviewerID, _ := claims["user_id"].(string)

	e, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	reviewDate := time.Now().UTC()
	if req.ReviewDate != "" {
		reviewDate, _ = time.Parse("2006-01-02", req.ReviewDate)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate review id: %w", err)
	}

	review := &performance.Review{
		ID:               id.String(),
		EmployeeID:       e.ID,
		Period:           req.Period,
		Rating:           req.Rating,
		Goals:            req.Goals,
		Feedback:         req.Feedback,
		Strengths:        req.Strengths,
		ImprovementAreas: req.ImprovementAreas,
		ReviewerID:       reviewerID,
		ReviewDate:       reviewDate,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	resp := performance.ToReviewResponse(review)
	resp.EmployeeName = &e.Name
	return &resp, nil
}

// Get implements performance.Service. Employee-role callers can only read
// their own reviews.
func (s *PerformanceServiceImpl) Get(ctx context.Context, id string) (*performance.ReviewResponse, error) {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	if role, _ := claims["role"].(string); user.Role(role) == user.RoleEmployee {
		employeeID, _ := claims["employee_id"].(string)
		if employeeID != review.EmployeeID {
			return nil, performance.ErrReviewNotFound
		}
	}

	resp := performance.ToReviewResponse(review)
	return &resp, nil
}

// List implements performance.Service. Employee-role callers are scoped to
// their own reviews.
func (s *PerformanceServiceImpl) List(ctx context.Context, filter *performance.ListReviewsFilter) ([]performance.ReviewResponse, int, error) {
	if err := filter.Validate(); err != nil {
		return nil, 0, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	if role, _ := claims["role"].(string); user.Role(role) == user.RoleEmployee {
		employeeID, _ := claims["employee_id"].(string)
		filter.EmployeeID = employeeID
	}

	reviews, total, err := s.reviewRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]performance.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, performance.ToReviewResponse(&reviews[i]))
	}

	return responses, total, nil
}

// Update implements performance.Service.
func (s *PerformanceServiceImpl) Update(ctx context.Context, id string, req *performance.UpdateReviewRequest) (*performance.ReviewResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.Goals != nil {
		review.Goals = req.Goals
	}
	if req.Feedback != nil {
		review.Feedback = *req.Feedback
	}
	if req.Strengths != nil {
		review.Strengths = req.Strengths
	}
	if req.ImprovementAreas != nil {
		review.ImprovementAreas = req.ImprovementAreas
	}

	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}

	resp := performance.ToReviewResponse(review)
	return &resp, nil
}

// Delete implements performance.Service.
func (s *PerformanceServiceImpl) Delete(ctx context.Context, id string) error {
	return s.reviewRepo.Delete(ctx, id)
}
