// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role decides which profile variant an account has. An account holds exactly one.
type Role string

const (
	RolePersonal Role = "personal"
	// RoleBusiness accounts run a stall and can issue a contact QR code.
	RoleBusiness Role = "business"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RolePersonal, RoleBusiness:
		return true
	default:
		return false
	}
}

// Roles is the role list carried in access tokens.
type Roles []Role

func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings is the form stored in token claims.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings parses token claims, dropping unknown roles.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
