package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ParticipantStatus represents the registration approval state
type ParticipantStatus string

const (
	ParticipantStatusPending  ParticipantStatus = "pending"
	ParticipantStatusApproved ParticipantStatus = "approved"
	ParticipantStatusRejected ParticipantStatus = "rejected"
)

// Participant represents a member's registration for one event. Contact
// fields are denormalized from the profile at join time so the record
// stays readable after profile changes.
type Participant struct {
	ID              uuid.UUID         `json:"id"`
	EventID         uuid.UUID         `json:"eventId"`
	UserID          uuid.UUID         `json:"userId"`
	Name            string            `json:"name"`
	Email           string            `json:"email"`
	Phone           string            `json:"phone"`
	Status          ParticipantStatus `json:"status"`
	PaymentRequired bool              `json:"paymentRequired"`
	PaymentMethod   PaymentMethod     `json:"paymentMethod,omitempty"`
	TransactionID   null.String       `json:"transactionId,omitempty"`
	SenderNumber    null.String       `json:"senderNumber,omitempty"`
	ConfirmorName   null.String       `json:"confirmorName,omitempty"`
	ConfirmorPhone  null.String       `json:"confirmorPhone,omitempty"`
	PaymentVerified bool              `json:"paymentVerified"`
	ApprovedBy      uuid.NullUUID     `json:"-"`
	ApprovedAt      null.Time         `json:"approvedAt,omitempty"`
	AdminNotes      null.String       `json:"adminNotes,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

// JoinEventInput represents input for joining an event. Payment fields are
// required or forbidden depending on the event's fee and the chosen method.
type JoinEventInput struct {
	PaymentMethod  PaymentMethod `json:"paymentMethod"`
	TransactionID  string        `json:"transactionId"`
	SenderNumber   string        `json:"senderNumber"`
	ConfirmorName  string        `json:"confirmorName"`
	ConfirmorPhone string        `json:"confirmorPhone"`
}

// JoinEventResponse is returned after a successful join. PayableTotal and
// CashoutCharge are advisory amounts for MFS payers; the persisted fee is
// unchanged.
type JoinEventResponse struct {
	Participant   *Participant `json:"participant"`
	PayableTotal  int64        `json:"payableTotal,omitempty"`
	CashoutCharge int64        `json:"cashoutCharge,omitempty"`
}

// RejectParticipantInput carries the admin notes recorded on rejection
type RejectParticipantInput struct {
	Notes string `json:"notes"`
}
