package models

// Role represents a user's role on the platform
//
// Roles are ordered: a higher value carries every permission of the lower
// ones where endpoints are gated by minimum role.
const (
	RoleInstructor = 1
	RoleAdmin      = 2
)

// User is a read-only projection of an account managed by the identity
// provider; this service never creates or mutates users.
type User struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     int    `json:"role"`
}

// Principal is the authenticated caller of a request
//
// Anonymous callers are represented by a nil *Principal.
type Principal struct {
	UserID int
	Role   int
}

// IsAdmin reports whether the principal carries the admin role
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}

// IsInstructor reports whether the principal carries the instructor role
func (p *Principal) IsInstructor() bool {
	return p != nil && p.Role == RoleInstructor
}
