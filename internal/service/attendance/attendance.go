package attendance

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"

	"github.com/staffhub/ems-backend-go/internal/domain/attendance"
	"github.com/staffhub/ems-backend-go/internal/domain/employee"
	"github.com/staffhub/ems-backend-go/internal/domain/user"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository

	// now is swapped out in tests.
	now func() time.Time
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, employeeRepo employee.EmployeeRepository) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
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

// resolveEmployeeID decides whose session is affected. Reviewers may act on
// behalf of another employee via the request override; everyone else acts on
// their own record.
func (s *AttendanceServiceImpl) resolveEmployeeID(ctx context.Context, c caller, override *string) (string, error) {
	if override != nil && *override != "" && c.Role != user.RoleEmployee {
		e, err := s.employeeRepo.GetByID(ctx, *override)
		if err != nil {
			return "", err
		}
		return e.ID, nil
	}

	if c.EmployeeID != nil {
		return *c.EmployeeID, nil
	}

	e, err := s.employeeRepo.GetByUserID(ctx, c.UserID)
	if err != nil {
		return "", err
	}
	return e.ID, nil
}

// sessionDate normalizes the requested date to midnight UTC; no request date
// means today.
func (s *AttendanceServiceImpl) sessionDate(requested *string) time.Time {
	if requested != nil && *requested != "" {
		d, err := time.Parse("2006-01-02", *requested)
		if err == nil {
			return d
		}
	}
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// ClockIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	c, err := callerFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	employeeID, err := s.resolveEmployeeID(ctx, c, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date := s.sessionDate(req.Date)

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedIn
	}

	id, err := uuid.NewV7()
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to generate attendance id: %w", err)
	}

	created, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		ID:         id.String(),
		EmployeeID: employeeID,
		Date:       date,
		ClockIn:    s.now().Format("15:04:05"),
		Status:     attendance.StatusPresent,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(created), nil
}

// ClockOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	c, err := callerFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	employeeID, err := s.resolveEmployeeID(ctx, c, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date := s.sessionDate(req.Date)

	session, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if session == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNoClockInRecord
	}
	if session.IsClosed() {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedOut
	}

	clockOut := s.now().Format("15:04:05")
	hoursWorked, err := hoursBetween(session.ClockIn, clockOut)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	closed, err := s.attendanceRepo.Close(ctx, session.ID, clockOut, hoursWorked)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(closed), nil
}

// hoursBetween computes worked hours from the two time-of-day stamps. A
// clock-out earlier than the clock-in means the shift ran past midnight, so a
// day is added. The result is rounded to two decimals.
func hoursBetween(clockIn, clockOut string) (float64, error) {
	in, err := time.Parse("15:04:05", clockIn)
	if err != nil {
		return 0, fmt.Errorf("invalid clock-in time %q: %w", clockIn, err)
	}
	out, err := time.Parse("15:04:05", clockOut)
	if err != nil {
		return 0, fmt.Errorf("invalid clock-out time %q: %w", clockOut, err)
	}

	if out.Before(in) {
		out = out.Add(24 * time.Hour)
	}

	hours := out.Sub(in).Hours()
	return math.Round(hours*100) / 100, nil
}

// List implements attendance.AttendanceService. Employee-role callers are
// always scoped to their own records.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.ListAttendanceFilter) ([]attendance.AttendanceResponse, int64, error) {
	if err := filter.Validate(); err != nil {
		return nil, 0, err
	}

	c, err := callerFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	if c.Role == user.RoleEmployee {
		if c.EmployeeID == nil {
			e, err := s.employeeRepo.GetByUserID(ctx, c.UserID)
			if err != nil {
				return nil, 0, err
			}
			filter.EmployeeID = &e.ID
		} else {
			filter.EmployeeID = c.EmployeeID
		}
	}

	records, total, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, a := range records {
		responses = append(responses, attendance.ToResponse(a))
	}

	return responses, total, nil
}
