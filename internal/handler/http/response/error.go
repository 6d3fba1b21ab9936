package response

import (
	"errors"
	"net/http"

	"github.com/staffhub/ems-backend-go/internal/domain/attendance"
	"github.com/staffhub/ems-backend-go/internal/domain/auth"
	"github.com/staffhub/ems-backend-go/internal/domain/employee"
	"github.com/staffhub/ems-backend-go/internal/domain/leave"
	"github.com/staffhub/ems-backend-go/internal/domain/payroll"
	"github.com/staffhub/ems-backend-go/internal/domain/performance"
	"github.com/staffhub/ems-backend-go/internal/domain/settings"
	"github.com/staffhub/ems-backend-go/internal/domain/shift"
	"github.com/staffhub/ems-backend-go/internal/domain/user"
	"github.com/staffhub/ems-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrAccountInactive):
		Unauthorized(w, "Account is inactive")
	case errors.Is(err, auth.ErrOAuthNotLinked):
		Unauthorized(w, "No account linked to this Google identity")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrInvalidRole):
		BadRequest(w, "Invalid role", nil)
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrCannotDeleteSelf):
		Forbidden(w, "Cannot delete your own account")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrNoEmployeeRecord):
		NotFound(w, "No employee record linked to this account")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in for this date")
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		Conflict(w, "Already clocked out for this date")
	case errors.Is(err, attendance.ErrNoClockInRecord):
		BadRequest(w, "No clock-in record found for this date", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveAlreadyReviewed):
		Conflict(w, "Leave request has already been reviewed")
	case errors.Is(err, leave.ErrNotOwner):
		Forbidden(w, "Not authorized to access this leave request")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "End date must not be before start date", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrPayrollExists):
		Conflict(w, "Payroll already exists for this employee and month")
	case errors.Is(err, payroll.ErrInvalidStatus):
		BadRequest(w, "Invalid payroll status", nil)
	case errors.Is(err, payroll.ErrNotAuthorized):
		Forbidden(w, "Not authorized to view this payroll")

	// Performance domain errors
	case errors.Is(err, performance.ErrReviewNotFound):
		NotFound(w, "Performance review not found")
	case errors.Is(err, performance.ErrInvalidRating):
		BadRequest(w, "Rating must be between 1 and 5", nil)

	// Settings domain errors
	case errors.Is(err, settings.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, settings.ErrDepartmentExists):
		Conflict(w, "Department with this name already exists")
	case errors.Is(err, settings.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, settings.ErrLeaveTypeNotFound):
		NotFound(w, "Leave type not found")
	case errors.Is(err, settings.ErrLeaveTypeExists):
		Conflict(w, "Leave type with this name already exists")

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrShiftExists):
		Conflict(w, "Shift with this name already exists")
	case errors.Is(err, shift.ErrShiftInUse):
		Conflict(w, "Shift is assigned to employees and cannot be deleted")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
