package usecase

import (
	"context"

	"makan/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, accountID uuid.UUID) (*entity.Account, error)
	UpdatePersonalProfile(ctx context.Context, accountID uuid.UUID, input *UpdatePersonalProfileInput) (*entity.Account, error)
	UpdateBusinessProfile(ctx context.Context, accountID uuid.UUID, input *UpdateBusinessProfileInput) (*entity.Account, error)
	UploadAvatar(ctx context.Context, accountID uuid.UUID, image []byte) (*entity.Account, error)
	SearchAccounts(ctx context.Context, query string) ([]*entity.Identity, error)
	// ContactQRCode renders the PNG contact code of a business account.
	ContactQRCode(ctx context.Context, accountID uuid.UUID) ([]byte, error)
}

// --- Input DTOs ---

// UpdatePersonalProfileInput holds the editable personal fields. Nil fields are left unchanged.
type UpdatePersonalProfileInput struct {
	FullName            *string  `json:"full_name,omitempty"`
	ContactNumber       *string  `json:"contact_number,omitempty"`
	Gender              *string  `json:"gender,omitempty"`
	DateOfBirth         *string  `json:"date_of_birth,omitempty"`
	FoodAllergies       []string `json:"food_allergies,omitempty"`
	FoodPreferences     []string `json:"food_preferences,omitempty"`
	DietaryRestrictions []string `json:"dietary_restrictions,omitempty"`
}

// UpdateBusinessProfileInput holds the editable business fields. Nil fields are left unchanged.
type UpdateBusinessProfileInput struct {
	StallName     *string `json:"stall_name,omitempty"`
	Location      *string `json:"location,omitempty"`
	OpeningHours  *string `json:"opening_hours,omitempty"`
	ContactNumber *string `json:"contact_number,omitempty"`
}
