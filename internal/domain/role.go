package domain

import "fmt"

// Role is the closed set of permission labels a user can hold on a board.
// Roles are checked by equality; there is no capability hierarchy.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleLeader Role = "LEADER"
	RoleUser   Role = "USER"
)

// ParseRole validates a role label from the wire.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleLeader, RoleUser:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// RoleAssignment grants a user a role on a board. A user holds at most one
// role per board; assigning again replaces the previous grant.
type RoleAssignment struct {
	BoardID int64
	UserID  int64
	Role    Role
}
