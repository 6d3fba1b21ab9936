package user

type Permission string

const (
	// Employee Management
	PermissionEmployeeView   Permission = "employee.view"
	PermissionEmployeeManage Permission = "employee.manage"
	PermissionEmployeeDelete Permission = "employee.delete"

	// Attendance Management
	PermissionAttendanceClock   Permission = "attendance.clock"
	PermissionAttendanceViewOwn Permission = "attendance.view_own"
	PermissionAttendanceViewAll Permission = "attendance.view_all"

	// Leave Management
	PermissionLeaveApply   Permission = "leave.apply"
	PermissionLeaveViewOwn Permission = "leave.view_own"
	PermissionLeaveViewAll Permission = "leave.view_all"
	PermissionLeaveReview  Permission = "leave.review"

	// Payroll Management
	PermissionPayrollViewOwn  Permission = "payroll.view_own"
	PermissionPayrollViewAll  Permission = "payroll.view_all"
	PermissionPayrollGenerate Permission = "payroll.generate"
	PermissionPayrollManage   Permission = "payroll.manage"

	// Performance Management
	PermissionPerformanceView   Permission = "performance.view"
	PermissionPerformanceManage Permission = "performance.manage"
	PermissionPerformanceDelete Permission = "performance.delete"

	// Settings (departments, holidays, leave types)
	PermissionSettingsView   Permission = "settings.view"
	PermissionSettingsManage Permission = "settings.manage"

	// Shift Management
	PermissionShiftView   Permission = "shift.view"
	PermissionShiftManage Permission = "shift.manage"
	PermissionShiftDelete Permission = "shift.delete"

	// User Administration
	PermissionUserManage Permission = "user.manage"
)

// RolePermissions is the capability table: every role-gated endpoint names one
// permission and this table decides which roles hold it. Handlers never compare
// role strings directly.
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionEmployeeView,
		PermissionEmployeeManage,
		PermissionEmployeeDelete,
		PermissionAttendanceClock,
		PermissionAttendanceViewOwn,
		PermissionAttendanceViewAll,
		PermissionLeaveApply,
		PermissionLeaveViewOwn,
		PermissionLeaveViewAll,
		PermissionLeaveReview,
		PermissionPayrollViewOwn,
		PermissionPayrollViewAll,
		PermissionPayrollGenerate,
		PermissionPayrollManage,
		PermissionPerformanceView,
		PermissionPerformanceManage,
		PermissionPerformanceDelete,
		PermissionSettingsView,
		PermissionSettingsManage,
		PermissionShiftView,
		PermissionShiftManage,
		PermissionShiftDelete,
		PermissionUserManage,
	},
	RoleHR: {
		PermissionEmployeeView,
		PermissionEmployeeManage,
		PermissionAttendanceClock,
		PermissionAttendanceViewOwn,
		PermissionAttendanceViewAll,
		PermissionLeaveApply,
		PermissionLeaveViewOwn,
		PermissionLeaveViewAll,
		PermissionLeaveReview,
		PermissionPayrollViewOwn,
		PermissionPayrollViewAll,
		PermissionPayrollGenerate,
		PermissionPerformanceView,
		PermissionPerformanceManage,
		PermissionSettingsView,
		PermissionSettingsManage,
		PermissionShiftView,
		PermissionShiftManage,
	},
	RoleEmployee: {
		PermissionAttendanceClock,
		PermissionAttendanceViewOwn,
		PermissionLeaveApply,
		PermissionLeaveViewOwn,
		PermissionPayrollViewOwn,
		PermissionPerformanceView,
		PermissionSettingsView,
		PermissionShiftView,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
