package entities

import (
	"time"

	"github.com/google/uuid"
)

// ArchivedParticipant is the slimmed participant snapshot kept inside an
// archive. Only approved participants survive archival.
type ArchivedParticipant struct {
	UserID        uuid.UUID     `json:"userId"`
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
	PaymentMethod PaymentMethod `json:"paymentMethod,omitempty"`
	TransactionID string        `json:"transactionId,omitempty"`
	ApprovedAt    time.Time     `json:"approvedAt"`
}

// ArchivedEvent is an immutable snapshot of a completed event and its
// approved participants. Created once; never updated or deleted.
type ArchivedEvent struct {
	ID               uuid.UUID             `json:"id"`
	EventID          uuid.UUID             `json:"eventId"`
	Title            string                `json:"title"`
	Description      string                `json:"description"`
	Location         Location              `json:"location"`
	StartDate        time.Time             `json:"startDate"`
	EndDate          *time.Time            `json:"endDate,omitempty"`
	RegistrationFee  int64                 `json:"registrationFee"`
	Participants     []ArchivedParticipant `json:"participants"`
	ParticipantCount int                   `json:"participantCount"`
	TotalRevenue     int64                 `json:"totalRevenue"`
	ArchivedBy       uuid.UUID             `json:"archivedBy"`
	ArchivedAt       time.Time             `json:"archivedAt"`
}
