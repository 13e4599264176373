package model

import "fmt"

// Role is the closed set of platform roles. Anything outside it must be
// rejected at the boundary so the policy layer never sees a raw string.
type Role string

const (
	RoleParticipant Role = "Participant"
	RoleMentor      Role = "Mentor"
	RoleAdmin       Role = "Admin"
)

// Roles returns every recognized role.
func Roles() []Role {
	return []Role{RoleParticipant, RoleMentor, RoleAdmin}
}

// Valid reports whether r is one of the recognized roles.
func (r Role) Valid() bool {
	switch r {
	case RoleParticipant, RoleMentor, RoleAdmin:
		return true
	}
	return false
}

// ParseRole converts a stored or transmitted role string into a Role,
// failing on anything outside the enumeration.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}
