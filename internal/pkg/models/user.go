package models

import "time"

// Role values carried in the access token
const (
	RoleDriver    = "driver"
	RoleRider     = "rider"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"
)

// Actor is the authenticated identity attached to a connection.
// It is consumed read-only; account management lives outside this service.
type Actor struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

// IsPrivileged reports whether the actor holds a moderation role
func (a Actor) IsPrivileged() bool {
	return a.Role == RoleModerator || a.Role == RoleAdmin
}

// UserPresence is the read-side view of an identity's connectivity.
// LastSeen is nil while the identity is online or has never connected.
type UserPresence struct {
	UserID   string     `json:"user_id"`
	Online   bool       `json:"online"`
	LastSeen *time.Time `json:"last_seen,omitempty"`
}
