package user

import "testing"

func TestHasPermission(t *testing.T) {
	cases := []struct {
		role       Role
		permission Permission
		want       bool
	}{
		{RoleAdmin, PermissionEmployeeDelete, true},
		{RoleAdmin, PermissionPayrollManage, true},
		{RoleHR, PermissionLeaveReview, true},
		{RoleHR, PermissionPayrollGenerate, true},
		{RoleHR, PermissionPayrollManage, false},
		{RoleHR, PermissionEmployeeDelete, false},
		{RoleHR, PermissionShiftDelete, false},
		{RoleEmployee, PermissionLeaveApply, true},
		{RoleEmployee, PermissionLeaveViewAll, false},
		{RoleEmployee, PermissionLeaveReview, false},
		{RoleEmployee, PermissionAttendanceViewAll, false},
		{Role("unknown"), PermissionLeaveApply, false},
	}
	for _, c := range cases {
		if got := HasPermission(c.role, c.permission); got != c.want {
			t.Errorf("HasPermission(%q, %q) = %v, want %v", c.role, c.permission, got, c.want)
		}
	}
}

func TestIsValidRole(t *testing.T) {
	for _, r := range []string{"admin", "hr", "employee"} {
		if !IsValidRole(r) {
			t.Errorf("IsValidRole(%q) = false, want true", r)
		}
	}
	for _, r := range []string{"owner", "manager", "", "Admin"} {
		if IsValidRole(r) {
			t.Errorf("IsValidRole(%q) = true, want false", r)
		}
	}
}
