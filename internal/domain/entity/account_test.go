package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAccount_DisplayName(t *testing.T) {
	personal := &Account{Kind: AccountKindPersonal, Personal: &PersonalProfile{FullName: "Siti Aminah", AvatarURL: "a.png"}}
	business := &Account{Kind: AccountKindBusiness, Business: &BusinessProfile{StallName: "Ah Seng Char Kuey Teow"}}
	mismatched := &Account{Kind: AccountKindBusiness, Personal: &PersonalProfile{FullName: "ghost"}}

	assert.Equal(t, "Siti Aminah", personal.DisplayName())
	assert.Equal(t, "a.png", personal.AvatarURL())
	assert.Equal(t, "Ah Seng Char Kuey Teow", business.DisplayName())
	assert.Empty(t, mismatched.DisplayName())
	assert.Equal(t, RoleBusiness, business.Kind.Role())
	assert.Equal(t, RolePersonal, personal.Kind.Role())
}

func TestIdentity(t *testing.T) {
	id := uuid.New()

	anon := AnonymousIdentity(id)
	assert.Equal(t, AnonymousName, anon.DisplayName)
	assert.Empty(t, anon.AvatarURL)
	assert.True(t, anon.IsAnonymous())

	known := IdentityOf(&Account{ID: id, Kind: AccountKindBusiness, Business: &BusinessProfile{StallName: "Kedai Kopi"}})
	assert.Equal(t, "Kedai Kopi", known.DisplayName)
	assert.False(t, known.IsAnonymous())
}
