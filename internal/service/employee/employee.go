package employee

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/staffhub/ems-backend-go/internal/domain/employee"
	"github.com/staffhub/ems-backend-go/internal/domain/user"
	"github.com/staffhub/ems-backend-go/internal/pkg/storage"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	fileStorage  storage.FileStorage
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, fileStorage storage.FileStorage) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		fileStorage:  fileStorage,
	}
}

// caller identifies the requester from JWT claims.
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

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	joiningDate, _ := time.Parse("2006-01-02", req.JoiningDate)

	id, err := uuid.NewV7()
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to generate employee id: %w", err)
	}

	status := employee.StatusActive
	if req.Status != nil {
		status = employee.Status(*req.Status)
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		ID:           id.String(),
		EmployeeCode: req.EmployeeCode,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Department:   req.Department,
		Designation:  req.Designation,
		JoiningDate:  joiningDate,
		Salary:       decimal.NewFromFloat(req.Salary),
		Documents:    employee.Documents{},
		Status:       status,
		UserID:       req.UserID,
		ShiftID:      req.ShiftID,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(created), nil
}

// Get implements employee.EmployeeService. Employee-role callers can only
// read their own record.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	c, err := callerFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if c.Role == user.RoleEmployee {
		if c.EmployeeID == nil || *c.EmployeeID != id {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
	}

	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(e), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.ListEmployeesFilter) ([]employee.EmployeeResponse, int64, error) {
	if err := filter.Validate(); err != nil {
		return nil, 0, err
	}

	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.ToResponse(e))
	}

	return responses, total, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	e, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Name != nil {
		e.Name = *req.Name
	}
	if req.Email != nil {
		e.Email = *req.Email
	}
	if req.Phone != nil {
		e.Phone = *req.Phone
	}
	if req.Department != nil {
		e.Department = *req.Department
	}
	if req.Designation != nil {
		e.Designation = *req.Designation
	}
	if req.JoiningDate != nil {
		joiningDate, _ := time.Parse("2006-01-02", *req.JoiningDate)
		e.JoiningDate = joiningDate
	}
	if req.Salary != nil {
		e.Salary = decimal.NewFromFloat(*req.Salary)
	}
	if req.Status != nil {
		e.Status = employee.Status(*req.Status)
	}
	if req.ShiftID != nil {
		if *req.ShiftID == "" {
			e.ShiftID = nil
		} else {
			e.ShiftID = req.ShiftID
		}
	}

	updated, err := s.employeeRepo.Update(ctx, e)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(updated), nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}

// UploadAvatar implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UploadAvatar(ctx context.Context, req employee.UploadAvatarRequest) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	ext := filepath.Ext(req.FileHeader.Filename)
	path := fmt.Sprintf("avatars/%s%s", e.ID, ext)

	stored, err := s.fileStorage.Upload(ctx, req.File, path, req.FileHeader.Header.Get("Content-Type"))
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to store avatar: %w", err)
	}

	url, err := s.fileStorage.GetURL(ctx, stored, 0)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to resolve avatar url: %w", err)
	}

	if err := s.employeeRepo.SetAvatarURL(ctx, e.ID, url); err != nil {
		return employee.EmployeeResponse{}, err
	}

	e.AvatarURL = &url
	return employee.ToResponse(e), nil
}

// UploadDocument implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UploadDocument(ctx context.Context, req employee.UploadDocumentRequest) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	docID, err := uuid.NewV7()
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to generate document id: %w", err)
	}

	ext := filepath.Ext(req.FileHeader.Filename)
	path := fmt.Sprintf("documents/%s/%s%s", e.ID, docID.String(), ext)

	stored, err := s.fileStorage.Upload(ctx, req.File, path, req.FileHeader.Header.Get("Content-Type"))
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to store document: %w", err)
	}

	url, err := s.fileStorage.GetURL(ctx, stored, 0)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to resolve document url: %w", err)
	}

	name := req.Name
	if name == "" {
		name = req.FileHeader.Filename
	}

	updated, err := s.employeeRepo.AppendDocument(ctx, e.ID, employee.Document{
		Name:       name,
		Type:       req.Type,
		URL:        url,
		UploadedAt: time.Now().UTC(),
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(updated), nil
}
