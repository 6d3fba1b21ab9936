package shift

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/staffhub/ems-backend-go/internal/domain/employee"
	"github.com/staffhub/ems-backend-go/internal/domain/shift"
	"github.com/staffhub/ems-backend-go/internal/pkg/database"
	"github.com/staffhub/ems-backend-go/internal/repository/postgresql"
)

const defaultBreakMinutes = 60

type ShiftServiceImpl struct {
	db           *database.DB
	shiftRepo    shift.Repository
	employeeRepo employee.EmployeeRepository
}

func NewShiftService(db *database.DB, shiftRepo shift.Repository, employeeRepo employee.EmployeeRepository) shift.Service {
	return &ShiftServiceImpl{
		db:           db,
		shiftRepo:    shiftRepo,
		employeeRepo: employeeRepo,
	}
}

// Create implements shift.Service.
func (s *ShiftServiceImpl) Create(ctx context.Context, req *shift.CreateShiftRequest) (*shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate shift id: %w", err)
	}

	breakDuration := defaultBreakMinutes
	if req.BreakDuration != nil {
		breakDuration = *req.BreakDuration
	}

	sh := &shift.Shift{
		ID:            id.String(),
		Name:          req.Name,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		BreakDuration: breakDuration,
	}
	if err := s.shiftRepo.Create(ctx, sh); err != nil {
		return nil, err
	}

	resp := shift.ToShiftResponse(sh)
	return &resp, nil
}

// Get implements shift.Service.
func (s *ShiftServiceImpl) Get(ctx context.Context, id string) (*shift.ShiftResponse, error) {
	sh, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := shift.ToShiftResponse(sh)
	return &resp, nil
}

// List implements shift.Service.
func (s *ShiftServiceImpl) List(ctx context.Context) ([]shift.ShiftResponse, error) {
	shifts, err := s.shiftRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for i := range shifts {
		responses = append(responses, shift.ToShiftResponse(&shifts[i]))
	}

	return responses, nil
}

// Update implements shift.Service.
func (s *ShiftServiceImpl) Update(ctx context.Context, id string, req *shift.UpdateShiftRequest) (*shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sh, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		sh.Name = *req.Name
	}
	if req.StartTime != nil {
		sh.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		sh.EndTime = *req.EndTime
	}
	if req.BreakDuration != nil {
		sh.BreakDuration = *req.BreakDuration
	}

	if err := s.shiftRepo.Update(ctx, sh); err != nil {
		return nil, err
	}

	resp := shift.ToShiftResponse(sh)
	return &resp, nil
}

// Delete implements shift.Service. Shifts still assigned to employees are
// not deletable.
func (s *ShiftServiceImpl) Delete(ctx context.Context, id string) error {
	return s.shiftRepo.Delete(ctx, id)
}

// Assign implements shift.Service.
func (s *ShiftServiceImpl) Assign(ctx context.Context, shiftID string, req *shift.AssignShiftRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	// The existence checks and the assignment run in one transaction so a
	// concurrent shift delete cannot slip between them.
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if _, err := s.shiftRepo.GetByID(txCtx, shiftID); err != nil {
			return err
		}
		if _, err := s.employeeRepo.GetByID(txCtx, req.EmployeeID); err != nil {
			return err
		}

		_, err := s.employeeRepo.AssignShift(txCtx, shiftID, []string{req.EmployeeID})
		return err
	})
}

// ListEmployees implements shift.Service.
func (s *ShiftServiceImpl) ListEmployees(ctx context.Context, shiftID string) ([]employee.EmployeeResponse, error) {
	if _, err := s.shiftRepo.GetByID(ctx, shiftID); err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.ListByShift(ctx, shiftID)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.ToResponse(e))
	}

	return responses, nil
}
