package performance

import (
	"time"

	"github.com/staffhub/ems-backend-go/internal/pkg/validator"
)

type CreateReviewRequest struct {
	EmployeeID       string   `json:"employee_id"`
	Period           string   `json:"period"`
	Rating           float64  `json:"rating"`
	Goals            []string `json:"goals"`
	Feedback         string   `json:"feedback"`
	Strengths        []string `json:"strengths"`
	ImprovementAreas []string `json:"improvement_areas"`
	ReviewDate       string   `json:"review_date"`
}

func (r *CreateReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	} else if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id must be a valid UUID"})
	}
	if validator.IsEmpty(r.Period) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "period is required"})
	}
	if r.Rating < 1 || r.Rating > 5 {
		errs = append(errs, validator.ValidationError{Field: "rating", Message: "rating must be between 1 and 5"})
	}
	if r.ReviewDate != "" {
		if _, ok := validator.IsValidDate(r.ReviewDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "review_date", Message: "review_date must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateReviewRequest struct {
	Rating           *float64 `json:"rating"`
	Goals            []string `json:"goals"`
	Feedback         *string  `json:"feedback"`
	Strengths        []string `json:"strengths"`
	ImprovementAreas []string `json:"improvement_areas"`
}

func (r *UpdateReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Rating != nil && (*r.Rating < 1 || *r.Rating > 5) {
		errs = append(errs, validator.ValidationError{Field: "rating", Message: "rating must be between 1 and 5"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListReviewsFilter struct {
	EmployeeID string
	Period     string
	Page       int
	Limit      int
}

func (f *ListReviewsFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.EmployeeID != "" && !validator.IsValidUUID(f.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id must be a valid UUID"})
	}
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = 10
	}
	if f.Limit > 100 {
		f.Limit = 100
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReviewResponse struct {
	ID               string    `json:"id"`
	EmployeeID       string    `json:"employee_id"`
	EmployeeName     *string   `json:"employee_name,omitempty"`
	Period           string    `json:"period"`
	Rating           float64   `json:"rating"`
	Goals            []string  `json:"goals"`
	Feedback         string    `json:"feedback"`
	Strengths        []string  `json:"strengths"`
	ImprovementAreas []string  `json:"improvement_areas"`
	ReviewerID       string    `json:"reviewer_id"`
	ReviewerName     *string   `json:"reviewer_name,omitempty"`
	ReviewDate       time.Time `json:"review_date"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func ToReviewResponse(r *Review) ReviewResponse {
	return ReviewResponse{
		ID:               r.ID,
		EmployeeID:       r.EmployeeID,
		EmployeeName:     r.EmployeeName,
		Period:           r.Period,
		Rating:           r.Rating,
		Goals:            r.Goals,
		Feedback:         r.Feedback,
		Strengths:        r.Strengths,
		ImprovementAreas: r.ImprovementAreas,
		ReviewerID:       r.ReviewerID,
		ReviewerName:     r.ReviewerName,
		ReviewDate:       r.ReviewDate,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}
