// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AccountKind tags which profile variant an account carries.
type AccountKind string

const (
	// AccountKindPersonal is an individual food lover.
	AccountKindPersonal AccountKind = "personal"
	// AccountKindBusiness is a hawker stall or restaurant.
	AccountKindBusiness AccountKind = "business"
)

// IsValid checks if the kind is a known variant.
func (k AccountKind) IsValid() bool {
	return k == AccountKindPersonal || k == AccountKindBusiness
}

// Role maps the account kind onto the authorization role carried in access tokens.
func (k AccountKind) Role() Role {
	if k == AccountKindBusiness {
		return RoleBusiness
	}

	return RolePersonal
}

// Account is a registered identity. Exactly one of Personal or Business is set, matching Kind.
type Account struct {
	ID        uuid.UUID        // The Global Unique Identifier (GUID) for the account.
	Kind      AccountKind      // Which variant this account is.
	Email     string           // Login identifier and contact email.
	Personal  *PersonalProfile // Set only when Kind is personal.
	Business  *BusinessProfile // Set only when Kind is business.
	CreatedAt time.Time        // Timestamp of when this account was created.
	UpdatedAt time.Time        // Timestamp of the last modification to this account.
}

// PersonalProfile holds data specific to a personal account.
type PersonalProfile struct {
	FullName            string
	ContactNumber       string
	Gender              string
	DateOfBirth         string // yyyy-mm-dd as entered by the user
	AvatarURL           string
	FoodAllergies       []string
	FoodPreferences     []string
	DietaryRestrictions []string
}

// BusinessProfile holds data specific to a business account.
type BusinessProfile struct {
	StallName     string
	Location      string
	OpeningHours  string
	ContactNumber string
	AvatarURL     string
}

// DisplayName returns the full name or stall name depending on the variant.
func (a *Account) DisplayName() string {
	switch {
	case a.Kind == AccountKindPersonal && a.Personal != nil:
		return a.Personal.FullName
	case a.Kind == AccountKindBusiness && a.Business != nil:
		return a.Business.StallName
	default:
		return ""
	}
}

// AvatarURL returns the avatar of whichever variant is set.
func (a *Account) AvatarURL() string {
	switch {
	case a.Kind == AccountKindPersonal && a.Personal != nil:
		return a.Personal.AvatarURL
	case a.Kind == AccountKindBusiness && a.Business != nil:
		return a.Business.AvatarURL
	default:
		return ""
	}
}

// SetAvatarURL updates the avatar on whichever variant is set.
func (a *Account) SetAvatarURL(url string) {
	switch {
	case a.Kind == AccountKindPersonal && a.Personal != nil:
		a.Personal.AvatarURL = url
	case a.Kind == AccountKindBusiness && a.Business != nil:
		a.Business.AvatarURL = url
	}
}
