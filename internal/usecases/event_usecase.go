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
	"alumni-connect.backend/pkg/logger"
	"alumni-connect.backend/pkg/utils"
)

// EventUsecase handles event CRUD and status synchronization
type EventUsecase struct {
	eventRepo       repositories.EventRepository
	participantRepo repositories.ParticipantRepository
	uow             repositories.UnitOfWork
	recorder        *ActivityRecorder
}

// NewEventUsecase creates a new event usecase
func NewEventUsecase(
	eventRepo repositories.EventRepository,
	participantRepo repositories.ParticipantRepository,
	uow repositories.UnitOfWork,
	recorder *ActivityRecorder,
) *EventUsecase {
	return &EventUsecase{
		eventRepo:       eventRepo,
		participantRepo: participantRepo,
		uow:             uow,
		recorder:        recorder,
	}
}

// Create creates a new event
func (u *EventUsecase) Create(ctx context.Context, admin *entities.User, input *entities.CreateEventInput) (*entities.Event, error) {
	if err := validatePaymentSetup(input.RegistrationFee, input.PaymentMethods, input.ReceivingNumbers); err != nil {
		return nil, err
	}
	if input.EndDate != nil && input.EndDate.Before(input.StartDate) {
		return nil, domainErrors.BadRequest("End date must not be before the start date")
	}

	event := &entities.Event{
		ID:               uuid.New(),
		Title:            input.Title,
		Description:      input.Description,
		Location:         input.Location,
		StartDate:        input.StartDate,
		ParticipantLimit: input.ParticipantLimit,
		RegistrationFee:  input.RegistrationFee,
		PaymentMethods:   input.PaymentMethods,
		ReceivingNumbers: input.ReceivingNumbers,
		ContactPersons:   input.ContactPersons,
		Status:           entities.EventStatusUpcoming,
		Public:           true,
		CreatedBy:        admin.ID,
	}
	if input.EndDate != nil {
		event.EndDate = null.TimeFromPtr(input.EndDate)
	}
	if input.RegistrationDeadline != nil {
		event.RegistrationDeadline = null.TimeFromPtr(input.RegistrationDeadline)
	}
	if input.BannerURL != "" {
		event.BannerURL = null.StringFrom(input.BannerURL)
	}
	if input.Draft {
		event.Status = entities.EventStatusDraft
	}
	if input.Public != nil {
		event.Public = *input.Public
	}

	if err := u.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	u.recorder.Record(ctx, admin, entities.ActivityEventCreated, event.ID.String(), event.Title, nil)
	logger.Info(ctx, "event created",
		zap.String("event_id", event.ID.String()),
		zap.String("title", event.Title))
	return event, nil
}

// Get returns one event with its clock-derived status
func (u *EventUsecase) Get(ctx context.Context, eventID uuid.UUID, includePrivate bool) (*entities.Event, error) {
	event, err := u.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, domainErrors.NotFound("Event not found")
	}
	if !includePrivate && (!event.Public || event.Status == entities.EventStatusDraft) {
		return nil, domainErrors.NotFound("Event not found")
	}
	event.Status = event.LiveStatus(time.Now())
	return event, nil
}

// List returns events with clock-derived statuses. Drafts and private
// events are only included for admins.
func (u *EventUsecase) List(ctx context.Context, includePrivate bool, page, limit int) ([]*entities.Event, utils.PaginationMeta, error) {
	params := utils.GetPaginationParams(page, limit)
	events, total, err := u.eventRepo.List(ctx, includePrivate, params.Limit, params.CalculateOffset())
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}

	now := time.Now()
	for _, event := range events {
		event.Status = event.LiveStatus(now)
	}
	return events, utils.CalculateMeta(total, params.Page, params.Limit), nil
}

// Update applies a partial event update
func (u *EventUsecase) Update(ctx context.Context, admin *entities.User, eventID uuid.UUID, input *entities.UpdateEventInput) (*entities.Event, error) {
	event, err := u.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, domainErrors.NotFound("Event not found")
	}

	if input.Title != "" {
		event.Title = input.Title
	}
	if input.Description != nil {
		event.Description = *input.Description
	}
	if input.Location != nil {
		event.Location = *input.Location
	}
	if input.StartDate != nil {
		event.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		event.EndDate = null.TimeFromPtr(input.EndDate)
	}
	if input.RegistrationDeadline != nil {
		event.RegistrationDeadline = null.TimeFromPtr(input.RegistrationDeadline)
	}
	if input.ParticipantLimit != nil {
		if *input.ParticipantLimit > 0 && *input.ParticipantLimit < event.CurrentParticipants {
			return nil, domainErrors.BadRequest("Participant limit cannot be below the current participant count")
		}
		event.ParticipantLimit = *input.ParticipantLimit
	}
	if input.RegistrationFee != nil {
		if event.CurrentParticipants > 0 && *input.RegistrationFee != event.RegistrationFee {
			return nil, domainErrors.BadRequest("Registration fee cannot change once members have registered")
		}
		event.RegistrationFee = *input.RegistrationFee
	}
	if input.PaymentMethods != nil {
		event.PaymentMethods = input.PaymentMethods
	}
	if input.ReceivingNumbers != nil {
		event.ReceivingNumbers = input.ReceivingNumbers
	}
	if input.ContactPersons != nil {
		event.ContactPersons = input.ContactPersons
	}
	if input.BannerURL != nil {
		event.BannerURL = null.StringFrom(*input.BannerURL)
	}
	if input.Public != nil {
		event.Public = *input.Public
	}
	if input.Status != nil {
		if err := validateStatusChange(event.Status, *input.Status); err != nil {
			return nil, err
		}
		event.Status = *input.Status
	}

	if err := validatePaymentSetup(event.RegistrationFee, event.PaymentMethods, event.ReceivingNumbers); err != nil {
		return nil, err
	}
	if event.EndDate.Valid && event.EndDate.Time.Before(event.StartDate) {
		return nil, domainErrors.BadRequest("End date must not be before the start date")
	}

	if err := u.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}

	u.recorder.Record(ctx, admin, entities.ActivityEventUpdated, event.ID.String(), event.Title, nil)
	return event, nil
}

// Delete removes an event and all of its participant records atomically
func (u *EventUsecase) Delete(ctx context.Context, admin *entities.User, eventID uuid.UUID) error {
	event, err := u.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return domainErrors.NotFound("Event not found")
	}

	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.participantRepo.DeleteByEvent(ctx, event.ID); err != nil {
			return err
		}
		return u.eventRepo.Delete(ctx, event.ID)
	})
	if err != nil {
		return err
	}

	u.recorder.Record(ctx, admin, entities.ActivityEventDeleted, event.ID.String(), event.Title, nil)
	logger.Info(ctx, "event deleted",
		zap.String("event_id", event.ID.String()),
		zap.String("deleted_by", admin.ID.String()))
	return nil
}

// SyncStatuses persists the date-derived statuses. Returns rows changed.
func (u *EventUsecase) SyncStatuses(ctx context.Context) (int64, error) {
	return u.eventRepo.SyncStatuses(ctx, time.Now())
}

// validatePaymentSetup checks that a paid event names its payment
// channels and that every MFS channel has a receiving number.
func validatePaymentSetup(fee int64, methods []entities.PaymentMethod, numbers map[entities.PaymentMethod][]string) error {
	if fee == 0 {
		return nil
	}
	if len(methods) == 0 {
		return domainErrors.BadRequest("Paid events need at least one payment method")
	}
	for _, m := range methods {
		if !entities.ValidPaymentMethod(m) {
			return domainErrors.BadRequest("Unknown payment method: " + string(m))
		}
		if m.MFSMethod() && len(numbers[m]) == 0 {
			return domainErrors.BadRequest("Missing receiving number for " + string(m))
		}
	}
	return nil
}

// validateStatusChange gates the stored statuses admins may set by hand.
// Date-derived states come from the clock, not from this endpoint.
func validateStatusChange(current, next entities.EventStatus) error {
	switch next {
	case entities.EventStatusDraft:
		if current != entities.EventStatusDraft {
			return domainErrors.BadRequest("A published event cannot go back to draft")
		}
	case entities.EventStatusCancelled:
		// Any state can be cancelled.
	case entities.EventStatusUpcoming:
		// Publishing a draft or reinstating a cancelled event.
		if current != entities.EventStatusDraft && current != entities.EventStatusCancelled {
			return domainErrors.BadRequest("Event status is derived from its dates")
		}
	default:
		return domainErrors.BadRequest("Event status is derived from its dates")
	}
	return nil
}
