package settings

import (
	"time"

	"github.com/staffhub/ems-backend-go/internal/pkg/validator"
)

type CreateDepartmentRequest struct {
	Name string  `json:"name"`
	Head *string `json:"head"`
}

func (r *CreateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateDepartmentRequest struct {
	Name *string `json:"name"`
	Head *string `json:"head"`
}

func (r *UpdateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not be empty"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateHolidayRequest struct {
	Name string `json:"name"`
	Date string `json:"date"`
	Type string `json:"type"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date is required"})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}
	if r.Type != "" && !IsValidHolidayType(r.Type) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type must be one of National, Regional, Company"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateLeaveTypeRequest struct {
	Name         string `json:"name"`
	Days         int    `json:"days"`
	CarryForward bool   `json:"carry_forward"`
}

func (r *CreateLeaveTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if r.Days < 0 {
		errs = append(errs, validator.ValidationError{Field: "days", Message: "days must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateLeaveTypeRequest struct {
	Name         *string `json:"name"`
	Days         *int    `json:"days"`
	CarryForward *bool   `json:"carry_forward"`
}

func (r *UpdateLeaveTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not be empty"})
	}
	if r.Days != nil && *r.Days < 0 {
		errs = append(errs, validator.ValidationError{Field: "days", Message: "days must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListHolidaysFilter struct {
	Year int
	Type string
}

func (f *ListHolidaysFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Type != "" && !IsValidHolidayType(f.Type) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type must be one of National, Regional, Company"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DepartmentResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Head      *string   `json:"head,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToDepartmentResponse(d *Department) DepartmentResponse {
	return DepartmentResponse{
		ID:        d.ID,
		Name:      d.Name,
		Head:      d.Head,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type HolidayResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Date      string    `json:"date"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToHolidayResponse(h *Holiday) HolidayResponse {
	return HolidayResponse{
		ID:        h.ID,
		Name:      h.Name,
		Date:      h.Date.Format("2006-01-02"),
		Type:      string(h.Type),
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}

type LeaveTypeResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Days         int       `json:"days"`
	CarryForward bool      `json:"carry_forward"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ToLeaveTypeResponse(lt *LeaveType) LeaveTypeResponse {
	return LeaveTypeResponse{
		ID:           lt.ID,
		Name:         lt.Name,
		Days:         lt.Days,
		CarryForward: lt.CarryForward,
		CreatedAt:    lt.CreatedAt,
		UpdatedAt:    lt.UpdatedAt,
	}
}
