package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"

	"alumni-connect.backend/internal/domain/entities"
	domainErrors "alumni-connect.backend/internal/domain/errors"
	"alumni-connect.backend/internal/domain/repositories"
	"alumni-connect.backend/pkg/email"
	"alumni-connect.backend/pkg/logger"
)

// RegistrationUsecase handles event joins and the payment verification
// queue. The join itself runs inside one transaction with the event row
// locked, so the capacity check, duplicate check, insert and counter
// increment cannot interleave with a concurrent join.
type RegistrationUsecase struct {
	eventRepo       repositories.EventRepository
	participantRepo repositories.ParticipantRepository
	userRepo        repositories.UserRepository
	uow             repositories.UnitOfWork
	recorder        *ActivityRecorder
	mailer          *email.Service
}

// NewRegistrationUsecase creates a new registration usecase
func NewRegistrationUsecase(
	eventRepo repositories.EventRepository,
	participantRepo repositories.ParticipantRepository,
	userRepo repositories.UserRepository,
	uow repositories.UnitOfWork,
	recorder *ActivityRecorder,
	mailer *email.Service,
) *RegistrationUsecase {
	return &RegistrationUsecase{
		eventRepo:       eventRepo,
		participantRepo: participantRepo,
		userRepo:        userRepo,
		uow:             uow,
		recorder:        recorder,
		mailer:          mailer,
	}
}

// Join registers the member for an event. Free events approve on the
// spot; paid events enter the pending queue until an admin verifies the
// payment. The returned cashout charge is advisory only.
func (u *RegistrationUsecase) Join(ctx context.Context, eventID, userID uuid.UUID, input *entities.JoinEventInput) (*entities.JoinEventResponse, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, domainErrors.NotFound("Profile not found")
	}
	if user.Status != entities.UserStatusApproved {
		return nil, domainErrors.ErrAccountPending
	}

	var resp *entities.JoinEventResponse
	err = u.uow.Do(ctx, func(ctx context.Context) error {
		event, err := u.eventRepo.GetForUpdate(ctx, eventID)
		if err != nil {
			return domainErrors.NotFound("Event not found")
		}
		if !event.Public && !user.IsAdmin() {
			return domainErrors.NotFound("Event not found")
		}
		if !event.RegistrationOpen(time.Now()) {
			return domainErrors.ErrRegistrationClosed
		}
		if event.ParticipantLimit > 0 && event.CurrentParticipants >= event.ParticipantLimit {
			return domainErrors.ErrEventFull
		}
		if existing, err := u.participantRepo.GetByEventAndUser(ctx, event.ID, user.ID); err == nil && existing != nil {
			return domainErrors.ErrAlreadyRegistered
		}

		participant, err := buildParticipant(event, user, input)
		if err != nil {
			return err
		}

		if err := u.participantRepo.Create(ctx, participant); err != nil {
			return err
		}
		if err := u.eventRepo.IncrementParticipants(ctx, event.ID, 1); err != nil {
			return err
		}

		resp = &entities.JoinEventResponse{Participant: participant}
		if participant.PaymentRequired && participant.PaymentMethod.MFSMethod() {
			charge := entities.CashoutCharge(event.RegistrationFee)
			resp.CashoutCharge = charge
			resp.PayableTotal = event.RegistrationFee + charge
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.sendJoinMail(ctx, user, resp.Participant)

	logger.Info(ctx, "event joined",
		zap.String("event_id", eventID.String()),
		zap.String("user_id", userID.String()),
		zap.String("status", string(resp.Participant.Status)))
	return resp, nil
}

// buildParticipant validates payment details against the event setup and
// assembles the registration record.
func buildParticipant(event *entities.Event, user *entities.User, input *entities.JoinEventInput) (*entities.Participant, error) {
	participant := &entities.Participant{
		ID:      uuid.New(),
		EventID: event.ID,
		UserID:  user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Phone:   user.Phone,
	}

	if event.Free() {
		participant.Status = entities.ParticipantStatusApproved
		participant.PaymentVerified = true
		participant.ApprovedAt = null.TimeFrom(time.Now())
		return participant, nil
	}

	if !entities.ValidPaymentMethod(input.PaymentMethod) || !event.AcceptsMethod(input.PaymentMethod) {
		return nil, domainErrors.ErrPaymentInfoInvalid
	}

	participant.Status = entities.ParticipantStatusPending
	participant.PaymentRequired = true
	participant.PaymentMethod = input.PaymentMethod

	if input.PaymentMethod.MFSMethod() {
		if input.TransactionID == "" || input.SenderNumber == "" {
			return nil, domainErrors.ErrPaymentInfoInvalid
		}
		participant.TransactionID = null.StringFrom(input.TransactionID)
		participant.SenderNumber = null.StringFrom(input.SenderNumber)
	} else {
		// Cash needs a reachable confirmor: a real name and a dialable number.
		if len(input.ConfirmorName) < 2 || len(input.ConfirmorPhone) < 8 {
			return nil, domainErrors.ErrPaymentInfoInvalid
		}
		participant.ConfirmorName = null.StringFrom(input.ConfirmorName)
		participant.ConfirmorPhone = null.StringFrom(input.ConfirmorPhone)
	}

	return participant, nil
}

// Approve verifies a pending registration's payment
func (u *RegistrationUsecase) Approve(ctx context.Context, admin *entities.User, participantID uuid.UUID) (*entities.Participant, error) {
	participant, err := u.participantRepo.GetByID(ctx, participantID)
	if err != nil {
		return nil, domainErrors.NotFound("Registration not found")
	}
	if participant.Status != entities.ParticipantStatusPending {
		return nil, domainErrors.Conflict("Registration is not awaiting verification")
	}

	participant.Status = entities.ParticipantStatusApproved
	participant.PaymentVerified = participant.PaymentRequired
	participant.ApprovedBy = uuid.NullUUID{UUID: admin.ID, Valid: true}
	participant.ApprovedAt = null.TimeFrom(time.Now())

	if err := u.participantRepo.Update(ctx, participant); err != nil {
		return nil, err
	}

	u.recorder.Record(ctx, admin, entities.ActivityParticipantApproved, participant.ID.String(), participant.Name, map[string]interface{}{
		"event_id": participant.EventID.String(),
	})
	return participant, nil
}

// Reject declines a registration and frees its capacity slot. Approved
// registrations can be rejected too, for payments that bounce on review.
func (u *RegistrationUsecase) Reject(ctx context.Context, admin *entities.User, participantID uuid.UUID, notes string) (*entities.Participant, error) {
	var participant *entities.Participant
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		var err error
		participant, err = u.participantRepo.GetByID(ctx, participantID)
		if err != nil {
			return domainErrors.NotFound("Registration not found")
		}
		if participant.Status == entities.ParticipantStatusRejected {
			return domainErrors.Conflict("Registration is already rejected")
		}

		participant.Status = entities.ParticipantStatusRejected
		participant.PaymentVerified = false
		if notes != "" {
			participant.AdminNotes = null.StringFrom(notes)
		}

		if err := u.participantRepo.Update(ctx, participant); err != nil {
			return err
		}
		return u.eventRepo.IncrementParticipants(ctx, participant.EventID, -1)
	})
	if err != nil {
		return nil, err
	}

	u.recorder.Record(ctx, admin, entities.ActivityParticipantRejected, participant.ID.String(), participant.Name, map[string]interface{}{
		"event_id": participant.EventID.String(),
		"notes":    notes,
	})
	return participant, nil
}

// ListByEvent returns an event's registrations, optionally by status
func (u *RegistrationUsecase) ListByEvent(ctx context.Context, eventID uuid.UUID, status entities.ParticipantStatus) ([]*entities.Participant, error) {
	return u.participantRepo.ListByEvent(ctx, eventID, status)
}

// ListByUser returns the member's own registrations
func (u *RegistrationUsecase) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Participant, error) {
	return u.participantRepo.ListByUser(ctx, userID)
}

func (u *RegistrationUsecase) sendJoinMail(ctx context.Context, user *entities.User, participant *entities.Participant) {
	if !u.mailer.Enabled() {
		return
	}
	event, err := u.eventRepo.GetByID(ctx, participant.EventID)
	if err != nil {
		return
	}
	pending := participant.Status == entities.ParticipantStatusPending
	if err := u.mailer.SendRegistrationConfirmation(user.Email, user.Name, event.Title, pending); err != nil {
		logger.Warn(ctx, "failed to send registration email",
			zap.String("recipient", user.Email),
			zap.Error(err))
	}
}
