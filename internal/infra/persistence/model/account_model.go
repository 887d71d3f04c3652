package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. PostgreSQL generates UUIDs via gen_random_uuid().
type AccountModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Kind      string    `gorm:"type:varchar(20);not null"`
	Email     string    `gorm:"type:varchar(255);unique;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Personal *PersonalProfileModel `gorm:"foreignKey:AccountID"`
	Business *BusinessProfileModel `gorm:"foreignKey:AccountID"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// PersonalProfileModel mirrors the 'personal_profiles' table. AccountID references accounts.id (UUID).
type PersonalProfileModel struct {
	AccountID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName            string    `gorm:"type:varchar(100);not null;index"`
	ContactNumber       string    `gorm:"type:varchar(30)"`
	Gender              string    `gorm:"type:varchar(20)"`
	DateOfBirth         string    `gorm:"type:varchar(10)"`
	AvatarURL           string    `gorm:"type:text"`
	FoodAllergies       []string  `gorm:"type:jsonb;serializer:json"`
	FoodPreferences     []string  `gorm:"type:jsonb;serializer:json"`
	DietaryRestrictions []string  `gorm:"type:jsonb;serializer:json"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (PersonalProfileModel) TableName() string {
	return "personal_profiles"
}

// BusinessProfileModel mirrors the 'business_profiles' table. AccountID references accounts.id (UUID).
type BusinessProfileModel struct {
	AccountID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	StallName     string    `gorm:"type:varchar(100);not null;index"`
	Location      string    `gorm:"type:text"`
	OpeningHours  string    `gorm:"type:varchar(100)"`
	ContactNumber string    `gorm:"type:varchar(30)"`
	AvatarURL     string    `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (BusinessProfileModel) TableName() string {
	return "business_profiles"
}
