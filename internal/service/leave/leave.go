package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"

	"github.com/staffhub/ems-backend-go/internal/domain/employee"
	"github.com/staffhub/ems-backend-go/internal/domain/leave"
	"github.com/staffhub/ems-backend-go/internal/domain/user"
	"github.com/staffhub/ems-backend-go/internal/pkg/email"
)

type LeaveServiceImpl struct {
	leaveRepo    leave.LeaveRepository
	employeeRepo employee.EmployeeRepository
	emailService email.EmailService

	// defaultBalance is the flat annual pool every employee draws from.
	defaultBalance int

	now func() time.Time
}

func NewLeaveService(leaveRepo leave.LeaveRepository, employeeRepo employee.EmployeeRepository, emailService email.EmailService, defaultBalance int) *LeaveServiceImpl {
	return &LeaveServiceImpl{
		leaveRepo:      leaveRepo,
		employeeRepo:   employeeRepo,
		emailService:   emailService,
		defaultBalance: defaultBalance,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

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

func (c caller) isReviewer() bool {
	return c.Role == user.RoleAdmin || c.Role == user.RoleHR
}

func (s *LeaveServiceImpl) callerEmployeeID(ctx context.Context, c caller) (string, error) {
	if c.EmployeeID != nil {
		return *c.EmployeeID, nil
	}
	e, err := s.employeeRepo.GetByUserID(ctx, c.UserID)
	if err != nil {
		return "", err
	}
	return e.ID, nil
}

// Apply implements leave.LeaveService. The request is always filed for the
// caller's own employee record.
func (s *LeaveServiceImpl) Apply(ctx context.Context, req leave.ApplyLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	c, err := callerFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	employeeID, err := s.callerEmployeeID(ctx, c)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	id, err := uuid.NewV7()
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to generate leave id: %w", err)
	}

	created, err := s.leaveRepo.Create(ctx, leave.LeaveRequest{
		ID:         id.String(),
		EmployeeID: employeeID,
		LeaveType:  req.LeaveType,
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
		AppliedAt:  s.now(),
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return leave.ToResponse(created), nil
}

// Get implements leave.LeaveService.
func (s *LeaveServiceImpl) Get(ctx context.Context, id string) (leave.LeaveResponse, error) {
	c, err := callerFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	l, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	if !c.isReviewer() {
		own, err := s.callerEmployeeID(ctx, c)
		if err != nil || own != l.EmployeeID {
			return leave.LeaveResponse{}, leave.ErrNotOwner
		}
	}

	return leave.ToResponse(l), nil
}

// List implements leave.LeaveService. Employee-role callers see only their
// own requests regardless of the filter.
func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.ListLeavesFilter) ([]leave.LeaveResponse, int64, error) {
	if err := filter.Validate(); err != nil {
		return nil, 0, err
	}

	c, err := callerFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	if !c.isReviewer() {
		own, err := s.callerEmployeeID(ctx, c)
		if err != nil {
			return nil, 0, err
		}
		filter.EmployeeID = &own
	}

	leaves, total, err := s.leaveRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]leave.LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		responses = append(responses, leave.ToResponse(l))
	}

	return responses, total, nil
}

// Review implements leave.LeaveService. The first decision wins: once a
// request leaves pending it is locked.
func (s *LeaveServiceImpl) Review(ctx context.Context, req leave.ReviewLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	c, err := callerFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	l, err := s.leaveRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if l.IsReviewed() {
		return leave.LeaveResponse{}, leave.ErrLeaveAlreadyReviewed
	}

	reviewed, err := s.leaveRepo.Review(ctx, req.ID, leave.Status(req.Status), c.UserID, req.Comments)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	s.notifyDecision(ctx, reviewed, req.Comments)

	return s.Get(ctx, reviewed.ID)
}

// notifyDecision emails the employee about the review outcome. Delivery
// failures are logged, never surfaced to the reviewer.
func (s *LeaveServiceImpl) notifyDecision(ctx context.Context, l leave.LeaveRequest, comments *string) {
	if s.emailService == nil {
		return
	}

	e, err := s.employeeRepo.GetByID(ctx, l.EmployeeID)
	if err != nil {
		slog.Error("failed to look up employee for leave notification", "leave_id", l.ID, "error", err)
		return
	}

	commentText := ""
	if comments != nil {
		commentText = *comments
	}
	if err := s.emailService.SendLeaveDecision(
		e.Email,
		e.Name,
		l.LeaveType,
		l.StartDate.Format("2006-01-02"),
		l.EndDate.Format("2006-01-02"),
		string(l.Status),
		commentText,
	); err != nil {
		slog.Error("failed to send leave decision email", "leave_id", l.ID, "error", err)
	}
}

// Update implements leave.LeaveService. Only the owner may edit, and only
// while the request is still pending.
func (s *LeaveServiceImpl) Update(ctx context.Context, req leave.UpdateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	c, err := callerFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	l, err := s.leaveRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if l.IsReviewed() {
		return leave.LeaveResponse{}, leave.ErrLeaveAlreadyReviewed
	}

	if c.Role != user.RoleAdmin {
		own, err := s.callerEmployeeID(ctx, c)
		if err != nil || own != l.EmployeeID {
			return leave.LeaveResponse{}, leave.ErrNotOwner
		}
	}

	if req.LeaveType != nil {
		l.LeaveType = *req.LeaveType
	}
	if req.StartDate != nil {
		startDate, _ := time.Parse("2006-01-02", *req.StartDate)
		l.StartDate = startDate
	}
	if req.EndDate != nil {
		endDate, _ := time.Parse("2006-01-02", *req.EndDate)
		l.EndDate = endDate
	}
	if req.Reason != nil {
		l.Reason = *req.Reason
	}

	if l.EndDate.Before(l.StartDate) {
		return leave.LeaveResponse{}, leave.ErrInvalidDateRange
	}

	updated, err := s.leaveRepo.Update(ctx, l)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return leave.ToResponse(updated), nil
}

// Delete implements leave.LeaveService. Admins may delete any request;
// owners only their own, and only while pending.
func (s *LeaveServiceImpl) Delete(ctx context.Context, id string) error {
	c, err := callerFromContext(ctx)
	if err != nil {
		return err
	}

	l, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if c.Role != user.RoleAdmin {
		if l.IsReviewed() {
			return leave.ErrLeaveAlreadyReviewed
		}
		own, err := s.callerEmployeeID(ctx, c)
		if err != nil || own != l.EmployeeID {
			return leave.ErrNotOwner
		}
	}

	return s.leaveRepo.Delete(ctx, id)
}

// Balance implements leave.LeaveService. Every approved leave draws from one
// flat annual pool; the balance never goes below zero.
func (s *LeaveServiceImpl) Balance(ctx context.Context, employeeID string) (leave.BalanceResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return leave.BalanceResponse{}, err
	}

	approved, err := s.leaveRepo.ListApprovedByEmployee(ctx, e.ID)
	if err != nil {
		return leave.BalanceResponse{}, err
	}

	totalDays := 0
	for _, l := range approved {
		totalDays += l.Days()
	}

	balance := s.defaultBalance - totalDays
	if balance < 0 {
		balance = 0
	}

	return leave.BalanceResponse{
		EmployeeID:     e.ID,
		TotalLeaves:    len(approved),
		TotalDaysTaken: totalDays,
		Balance:        balance,
		DefaultBalance: s.defaultBalance,
	}, nil
}
