package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Event struct {
	ID                   uuid.UUID      `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Title                string         `gorm:"type:varchar(200);not null"`
	Description          string         `gorm:"type:text"`
	LocationStreet       string         `gorm:"type:varchar(200)"`
	LocationCity         string         `gorm:"type:varchar(100)"`
	LocationPostcode     string         `gorm:"type:varchar(20)"`
	LocationCountry      string         `gorm:"type:varchar(100)"`
	StartDate            time.Time      `gorm:"not null;index"`
	EndDate              *time.Time
	RegistrationDeadline *time.Time
	ParticipantLimit     int            `gorm:"not null;default:0"`
	RegistrationFee      int64          `gorm:"not null;default:0"`
	PaymentMethods       datatypes.JSON `gorm:"type:jsonb"`
	ReceivingNumbers     datatypes.JSON `gorm:"type:jsonb"`
	ContactPersons       datatypes.JSON `gorm:"type:jsonb"`
	BannerURL            *string        `gorm:"type:varchar(500)"`
	Status               string         `gorm:"type:varchar(20);not null;index"`
	Public               bool           `gorm:"not null;default:true"`
	CurrentParticipants  int            `gorm:"not null;default:0"`
	CreatedBy            uuid.UUID      `gorm:"type:uuid;not null"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type Participant struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	EventID         uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_event_user"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_event_user"`
	Name            string     `gorm:"type:varchar(100);not null"`
	Email           string     `gorm:"type:varchar(255);not null"`
	Phone           string     `gorm:"type:varchar(20)"`
	Status          string     `gorm:"type:varchar(20);not null;index"`
	PaymentRequired bool       `gorm:"not null;default:false"`
	PaymentMethod   string     `gorm:"type:varchar(20)"`
	TransactionID   *string    `gorm:"type:varchar(100)"`
	SenderNumber    *string    `gorm:"type:varchar(20)"`
	ConfirmorName   *string    `gorm:"type:varchar(100)"`
	ConfirmorPhone  *string    `gorm:"type:varchar(20)"`
	PaymentVerified bool       `gorm:"not null;default:false"`
	ApprovedBy      *uuid.UUID `gorm:"type:uuid"`
	ApprovedAt      *time.Time
	AdminNotes      *string    `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Event Event `gorm:"foreignKey:EventID"`
}

type ArchivedEvent struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	EventID          uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title            string         `gorm:"type:varchar(200);not null"`
	Description      string         `gorm:"type:text"`
	Location         datatypes.JSON `gorm:"type:jsonb"`
	StartDate        time.Time      `gorm:"not null"`
	EndDate          *time.Time
	RegistrationFee  int64          `gorm:"not null;default:0"`
	Participants     datatypes.JSON `gorm:"type:jsonb"`
	ParticipantCount int            `gorm:"not null"`
	TotalRevenue     int64          `gorm:"not null"`
	ArchivedBy       uuid.UUID      `gorm:"type:uuid;not null"`
	ArchivedAt       time.Time      `gorm:"not null"`
}

type ActivityLog struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Type       string         `gorm:"type:varchar(50);not null;index"`
	ActorID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	ActorName  string         `gorm:"type:varchar(100)"`
	ActorEmail string         `gorm:"type:varchar(255)"`
	TargetID   string         `gorm:"type:varchar(100)"`
	TargetName string         `gorm:"type:varchar(200)"`
	Details    datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt  time.Time      `gorm:"index"`
}
