package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AuthAccount struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Email         string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Provider      string    `gorm:"type:varchar(20);not null"`
	PasswordHash  string    `gorm:"type:varchar(255)"`
	EmailVerified bool      `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// User has no gorm soft-delete column: rejection and removal hard-delete
// the profile row while the auth account survives.
type User struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	AccountID      uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null"`
	Email          string         `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name           string         `gorm:"type:varchar(100);not null"`
	Phone          string         `gorm:"type:varchar(20)"`
	Profession     string         `gorm:"type:varchar(100)"`
	Company        string         `gorm:"type:varchar(100)"`
	BloodGroup     string         `gorm:"type:varchar(10)"`
	Address        string         `gorm:"type:varchar(255)"`
	GraduationYear int
	PhotoURL       *string        `gorm:"type:varchar(500)"`
	Role           string         `gorm:"type:varchar(20);not null;default:'user'"`
	Status         string         `gorm:"type:varchar(20);not null;default:'pending';index"`
	Provider       string         `gorm:"type:varchar(20);not null"`
	Visibility     datatypes.JSON `gorm:"type:jsonb"`
	ApprovedBy     *uuid.UUID     `gorm:"type:uuid"`
	ApprovedAt     *time.Time
	LastLoginAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Account AuthAccount `gorm:"foreignKey:AccountID"`
}

type EmailVerification struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	AccountID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Token      string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	ExpiresAt  time.Time `gorm:"not null"`
	VerifiedAt *time.Time
	CreatedAt  time.Time
}
