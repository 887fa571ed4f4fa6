package entity

import (
	"slices"
	"strings"
)

// Role grants access to a group of routes.
type Role string

const (
	// RolePlayer is granted to every registered account.
	RolePlayer Role = "player"
	// RoleAdmin can read the audit log.
	RoleAdmin Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return r == RolePlayer || r == RoleAdmin
}

type Roles []Role

func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// OrDefault returns rs, or just RolePlayer when rs is empty.
func (rs Roles) OrDefault() Roles {
	if len(rs) == 0 {
		return Roles{RolePlayer}
	}

	return rs
}

// ToStrings converts Roles to the []string form carried in JWT claims.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings keeps the known roles in ss, once each, in order.
// Surrounding whitespace is ignored.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(strings.TrimSpace(s))
		if role.IsValid() && !result.Contains(role) {
			result = append(result, role)
		}
	}

	return result
}
