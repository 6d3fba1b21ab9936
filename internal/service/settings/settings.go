package settings

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/staffhub/ems-backend-go/internal/domain/settings"
)

type SettingsServiceImpl struct {
	settingsRepo settings.Repository
}

func NewSettingsService(settingsRepo settings.Repository) settings.Service {
	return &SettingsServiceImpl{settingsRepo: settingsRepo}
}

func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate id: %w", err)
	}
	return id.String(), nil
}

// CreateDepartment implements settings.Service.
func (s *SettingsServiceImpl) CreateDepartment(ctx context.Context, req *settings.CreateDepartmentRequest) (*settings.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}

	dept := &settings.Department{
		ID:   id,
		Name: req.Name,
		Head: req.Head,
	}
	if err := s.settingsRepo.CreateDepartment(ctx, dept); err != nil {
		return nil, err
	}

	resp := settings.ToDepartmentResponse(dept)
	return &resp, nil
}

// ListDepartments implements settings.Service.
func (s *SettingsServiceImpl) ListDepartments(ctx context.Context) ([]settings.DepartmentResponse, error) {
	departments, err := s.settingsRepo.ListDepartments(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]settings.DepartmentResponse, 0, len(departments))
	for i := range departments {
		responses = append(responses, settings.ToDepartmentResponse(&departments[i]))
	}

	return responses, nil
}

// UpdateDepartment implements settings.Service.
func (s *SettingsServiceImpl) UpdateDepartment(ctx context.Context, id string, req *settings.UpdateDepartmentRequest) (*settings.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	dept, err := s.settingsRepo.GetDepartmentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		dept.Name = *req.Name
	}
	if req.Head != nil {
		dept.Head = req.Head
	}

	if err := s.settingsRepo.UpdateDepartment(ctx, dept); err != nil {
		return nil, err
	}

	resp := settings.ToDepartmentResponse(dept)
	return &resp, nil
}

// DeleteDepartment implements settings.Service.
func (s *SettingsServiceImpl) DeleteDepartment(ctx context.Context, id string) error {
	return s.settingsRepo.DeleteDepartment(ctx, id)
}

// CreateHoliday implements settings.Service.
func (s *SettingsServiceImpl) CreateHoliday(ctx context.Context, req *settings.CreateHolidayRequest) (*settings.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	holidayType := settings.HolidayCompany
	if req.Type != "" {
		holidayType = settings.HolidayType(req.Type)
	}

	holiday := &settings.Holiday{
		ID:   id,
		Name: req.Name,
		Date: date,
		Type: holidayType,
	}
	if err := s.settingsRepo.CreateHoliday(ctx, holiday); err != nil {
		return nil, err
	}

	resp := settings.ToHolidayResponse(holiday)
	return &resp, nil
}

// ListHolidays implements settings.Service.
func (s *SettingsServiceImpl) ListHolidays(ctx context.Context, filter *settings.ListHolidaysFilter) ([]settings.HolidayResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	holidays, err := s.settingsRepo.ListHolidays(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]settings.HolidayResponse, 0, len(holidays))
	for i := range holidays {
		responses = append(responses, settings.ToHolidayResponse(&holidays[i]))
	}

	return responses, nil
}

// DeleteHoliday implements settings.Service.
func (s *SettingsServiceImpl) DeleteHoliday(ctx context.Context, id string) error {
	return s.settingsRepo.DeleteHoliday(ctx, id)
}

// CreateLeaveType implements settings.Service.
func (s *SettingsServiceImpl) CreateLeaveType(ctx context.Context, req *settings.CreateLeaveTypeRequest) (*settings.LeaveTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}

	lt := &settings.LeaveType{
		ID:           id,
		Name:         req.Name,
		Days:         req.Days,
		CarryForward: req.CarryForward,
	}
	if err := s.settingsRepo.CreateLeaveType(ctx, lt); err != nil {
		return nil, err
	}

	resp := settings.ToLeaveTypeResponse(lt)
	return &resp, nil
}

// ListLeaveTypes implements settings.Service.
func (s *SettingsServiceImpl) ListLeaveTypes(ctx context.Context) ([]settings.LeaveTypeResponse, error) {
	leaveTypes, err := s.settingsRepo.ListLeaveTypes(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]settings.LeaveTypeResponse, 0, len(leaveTypes))
	for i := range leaveTypes {
		responses = append(responses, settings.ToLeaveTypeResponse(&leaveTypes[i]))
	}

	return responses, nil
}

// UpdateLeaveType implements settings.Service.
func (s *SettingsServiceImpl) UpdateLeaveType(ctx context.Context, id string, req *settings.UpdateLeaveTypeRequest) (*settings.LeaveTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	lt, err := s.settingsRepo.GetLeaveTypeByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		lt.Name = *req.Name
	}
	if req.Days != nil {
		lt.Days = *req.Days
	}
	if req.CarryForward != nil {
		lt.CarryForward = *req.CarryForward
	}

	if err := s.settingsRepo.UpdateLeaveType(ctx, lt); err != nil {
		return nil, err
	}

	resp := settings.ToLeaveTypeResponse(lt)
	return &resp, nil
}

// DeleteLeaveType implements settings.Service.
func (s *SettingsServiceImpl) DeleteLeaveType(ctx context.Context, id string) error {
	return s.settingsRepo.DeleteLeaveType(ctx, id)
}
