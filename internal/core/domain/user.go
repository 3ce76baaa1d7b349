package domain

import "time"

// Role is the operating role of a user on the marketplace.
type Role string

const (
	RolePoster   Role = "poster"
	RoleProvider Role = "provider"
	RoleBoth     Role = "both"
)

// ValidPreferred reports whether r may be stored as a user's preferred role.
func (r Role) ValidPreferred() bool {
	return r == RolePoster || r == RoleProvider || r == RoleBoth
}

// ValidSession reports whether r may be selected for a session.
func (r Role) ValidSession() bool {
	return r == RolePoster || r == RoleProvider
}

// Allows reports whether acting under r permits operations reserved for target.
func (r Role) Allows(target Role) bool {
	return r == target || r == RoleBoth
}

// User models a registered marketplace member.
type User struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	City          string    `json:"city"`
	PreferredRole Role      `json:"preferred_role"`
	PasswordHash  string    `json:"-"`
	Rating        float64   `json:"rating"`
	TotalTasks    int       `json:"total_tasks"`
	CreatedAt     time.Time `json:"created_at"`
}
