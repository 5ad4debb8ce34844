package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// EventStatus represents the stored event lifecycle state
type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusOngoing   EventStatus = "ongoing"
	EventStatusCompleted EventStatus = "completed"
	EventStatusCancelled EventStatus = "cancelled"
)

// PaymentMethod enumerates accepted registration payment channels
type PaymentMethod string

const (
	PaymentMethodBkash PaymentMethod = "bkash"
	PaymentMethodNagad PaymentMethod = "nagad"
	PaymentMethodCash  PaymentMethod = "cash"
)

// ValidPaymentMethod reports whether m is a known payment method.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentMethodBkash, PaymentMethodNagad, PaymentMethodCash:
		return true
	}
	return false
}

// MFSMethod reports whether m is a mobile financial service channel,
// which requires a transaction id for manual verification.
func (m PaymentMethod) MFSMethod() bool {
	return m == PaymentMethodBkash || m == PaymentMethodNagad
}

// Location is the structured event venue address
type Location struct {
	Street   string `json:"street"`
	City     string `json:"city" binding:"required_with=Street"`
	Postcode string `json:"postcode"`
	Country  string `json:"country"`
}

// ContactPerson is a name+phone pair shown on the event page
type ContactPerson struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

// Event represents an alumni event
type Event struct {
	ID                   uuid.UUID                   `json:"id"`
	Title                string                      `json:"title"`
	Description          string                      `json:"description"`
	Location             Location                    `json:"location"`
	StartDate            time.Time                   `json:"startDate"`
	EndDate              null.Time                   `json:"endDate,omitempty"`
	RegistrationDeadline null.Time                   `json:"registrationDeadline,omitempty"`
	ParticipantLimit     int                         `json:"participantLimit"` // 0 = unlimited
	RegistrationFee      int64                       `json:"registrationFee"`  // BDT, 0 = free
	PaymentMethods       []PaymentMethod             `json:"paymentMethods"`
	ReceivingNumbers     map[PaymentMethod][]string  `json:"receivingNumbers,omitempty"`
	ContactPersons       []ContactPerson             `json:"contactPersons,omitempty"`
	BannerURL            null.String                 `json:"bannerUrl,omitempty"`
	Status               EventStatus                 `json:"status"`
	Public               bool                        `json:"public"`
	CurrentParticipants  int                         `json:"currentParticipants"`
	CreatedBy            uuid.UUID                   `json:"createdBy"`
	CreatedAt            time.Time                   `json:"createdAt"`
	UpdatedAt            time.Time                   `json:"updatedAt"`
}

// Free reports whether registration requires no payment.
func (e *Event) Free() bool {
	return e.RegistrationFee == 0
}

// AcceptsMethod reports whether the event accepts the given payment method.
func (e *Event) AcceptsMethod(m PaymentMethod) bool {
	for _, pm := range e.PaymentMethods {
		if pm == m {
			return true
		}
	}
	return false
}

// LiveStatus derives the effective status from the clock. Draft and
// cancelled stay authoritative; everything else is recomputed from the
// event dates so a stale stored status cannot mislead readers.
func (e *Event) LiveStatus(now time.Time) EventStatus {
	if e.Status == EventStatusDraft || e.Status == EventStatusCancelled {
		return e.Status
	}
	end := e.StartDate
	if e.EndDate.Valid {
		end = e.EndDate.Time
	}
	switch {
	case now.Before(e.StartDate):
		return EventStatusUpcoming
	case now.After(end):
		return EventStatusCompleted
	default:
		return EventStatusOngoing
	}
}

// RegistrationOpen reports whether new joins are accepted at `now`. The
// deadline falls back to the event start when none is set.
func (e *Event) RegistrationOpen(now time.Time) bool {
	switch e.LiveStatus(now) {
	case EventStatusDraft, EventStatusCancelled, EventStatusCompleted:
		return false
	}
	deadline := e.StartDate
	if e.RegistrationDeadline.Valid {
		deadline = e.RegistrationDeadline.Time
	}
	return !now.After(deadline)
}

// CashoutCharge returns the advisory bKash/Nagad cashout surcharge of
// 1.85%, rounded up. It is shown to payers and never persisted.
func CashoutCharge(fee int64) int64 {
	return (fee*185 + 9999) / 10000
}

// CreateEventInput represents admin input for creating an event
type CreateEventInput struct {
	Title                string                     `json:"title" binding:"required,min=3,max=200"`
	Description          string                     `json:"description"`
	Location             Location                   `json:"location"`
	StartDate            time.Time                  `json:"startDate" binding:"required"`
	EndDate              *time.Time                 `json:"endDate"`
	RegistrationDeadline *time.Time                 `json:"registrationDeadline"`
	ParticipantLimit     int                        `json:"participantLimit" binding:"min=0"`
	RegistrationFee      int64                      `json:"registrationFee" binding:"min=0"`
	PaymentMethods       []PaymentMethod            `json:"paymentMethods"`
	ReceivingNumbers     map[PaymentMethod][]string `json:"receivingNumbers"`
	ContactPersons       []ContactPerson            `json:"contactPersons"`
	BannerURL            string                     `json:"bannerUrl"`
	Draft                bool                       `json:"draft"`
	Public               *bool                      `json:"public"`
}

// UpdateEventInput represents admin input for updating an event
type UpdateEventInput struct {
	Title                string                     `json:"title" binding:"omitempty,min=3,max=200"`
	Description          *string                    `json:"description"`
	Location             *Location                  `json:"location"`
	StartDate            *time.Time                 `json:"startDate"`
	EndDate              *time.Time                 `json:"endDate"`
	RegistrationDeadline *time.Time                 `json:"registrationDeadline"`
	ParticipantLimit     *int                       `json:"participantLimit"`
	RegistrationFee      *int64                     `json:"registrationFee"`
	PaymentMethods       []PaymentMethod            `json:"paymentMethods"`
	ReceivingNumbers     map[PaymentMethod][]string `json:"receivingNumbers"`
	ContactPersons       []ContactPerson            `json:"contactPersons"`
	BannerURL            *string                    `json:"bannerUrl"`
	Status               *EventStatus               `json:"status"`
	Public               *bool                      `json:"public"`
}
