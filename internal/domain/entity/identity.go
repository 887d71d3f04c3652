package entity

import "github.com/google/uuid"

// AnonymousName is shown for identifiers that belong to no known account.
const AnonymousName = "Anonymous"

// Identity is the resolved display information for an account identifier.
type Identity struct {
	AccountID   uuid.UUID   `json:"account_id"`
	Kind        AccountKind `json:"kind,omitempty"` // Empty for the anonymous fallback.
	DisplayName string      `json:"display_name"`
	AvatarURL   string      `json:"avatar_url,omitempty"`
}

// AnonymousIdentity is the fallback for an unknown identifier.
func AnonymousIdentity(id uuid.UUID) *Identity {
	return &Identity{AccountID: id, DisplayName: AnonymousName}
}

// IdentityOf builds the identity of a known account.
func IdentityOf(account *Account) *Identity {
	return &Identity{
		AccountID:   account.ID,
		Kind:        account.Kind,
		DisplayName: account.DisplayName(),
		AvatarURL:   account.AvatarURL(),
	}
}

// IsAnonymous reports whether this is the fallback identity.
func (i *Identity) IsAnonymous() bool {
	return i.Kind == ""
}
