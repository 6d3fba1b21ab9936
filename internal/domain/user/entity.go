package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Full access, including destructive operations
	RoleHR       Role = "hr"       // Can manage employees and review requests
	RoleEmployee Role = "employee" // Regular employee, self-scoped access
)

// ValidRoles lists every role the system accepts.
var ValidRoles = []Role{RoleAdmin, RoleHR, RoleEmployee}

func IsValidRole(r string) bool {
	for _, role := range ValidRoles {
		if string(role) == r {
			return true
		}
	}
	return false
}

type User struct {
	ID              string
	Name            string
	Email           string
	PasswordHash    *string
	Role            Role
	IsActive        bool
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO / Join
	EmployeeID *string
}

// IsAdmin checks if user is an administrator
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsReviewer checks if user may approve or reject requests
func (u *User) IsReviewer() bool {
	return u.Role == RoleAdmin || u.Role == RoleHR
}
