package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"alumni-connect.backend/internal/domain/entities"
	domainErrors "alumni-connect.backend/internal/domain/errors"
	"alumni-connect.backend/internal/domain/repositories"
	"alumni-connect.backend/pkg/logger"
	"alumni-connect.backend/pkg/utils"
)

// ArchiveUsecase snapshots completed events into immutable archives.
// The snapshot, the participant purge and the event deletion commit
// together or not at all.
type ArchiveUsecase struct {
	eventRepo       repositories.EventRepository
	participantRepo repositories.ParticipantRepository
	archiveRepo     repositories.ArchiveRepository
	uow             repositories.UnitOfWork
	recorder        *ActivityRecorder
}

// NewArchiveUsecase creates a new archive usecase
func NewArchiveUsecase(
	eventRepo repositories.EventRepository,
	participantRepo repositories.ParticipantRepository,
	archiveRepo repositories.ArchiveRepository,
	uow repositories.UnitOfWork,
	recorder *ActivityRecorder,
) *ArchiveUsecase {
	return &ArchiveUsecase{
		eventRepo:       eventRepo,
		participantRepo: participantRepo,
		archiveRepo:     archiveRepo,
		uow:             uow,
		recorder:        recorder,
	}
}

// Archive snapshots a completed event and removes the live records. Only
// approved participants enter the snapshot; revenue is the fee times the
// approved head count.
func (u *ArchiveUsecase) Archive(ctx context.Context, admin *entities.User, eventID uuid.UUID) (*entities.ArchivedEvent, error) {
	var archive *entities.ArchivedEvent
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		event, err := u.eventRepo.GetForUpdate(ctx, eventID)
		if err != nil {
			return domainErrors.NotFound("Event not found")
		}
		if event.LiveStatus(time.Now()) != entities.EventStatusCompleted {
			return domainErrors.Conflict("Only completed events can be archived")
		}

		approved, err := u.participantRepo.ListByEvent(ctx, event.ID, entities.ParticipantStatusApproved)
		if err != nil {
			return err
		}

		archive = buildArchive(event, approved, admin.ID)
		if err := u.archiveRepo.Create(ctx, archive); err != nil {
			return err
		}
		if err := u.participantRepo.DeleteByEvent(ctx, event.ID); err != nil {
			return err
		}
		return u.eventRepo.Delete(ctx, event.ID)
	})
	if err != nil {
		return nil, err
	}

	u.recorder.Record(ctx, admin, entities.ActivityEventArchived, archive.EventID.String(), archive.Title, map[string]interface{}{
		"participant_count": archive.ParticipantCount,
		"total_revenue":     archive.TotalRevenue,
	})
	logger.Info(ctx, "event archived",
		zap.String("event_id", archive.EventID.String()),
		zap.Int("participants", archive.ParticipantCount))
	return archive, nil
}

// Get returns one archive
func (u *ArchiveUsecase) Get(ctx context.Context, archiveID uuid.UUID) (*entities.ArchivedEvent, error) {
	archive, err := u.archiveRepo.GetByID(ctx, archiveID)
	if err != nil {
		return nil, domainErrors.NotFound("Archive not found")
	}
	return archive, nil
}

// List returns archives, newest first
func (u *ArchiveUsecase) List(ctx context.Context, page, limit int) ([]*entities.ArchivedEvent, utils.PaginationMeta, error) {
	params := utils.GetPaginationParams(page, limit)
	archives, total, err := u.archiveRepo.List(ctx, params.Limit, params.CalculateOffset())
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}
	return archives, utils.CalculateMeta(total, params.Page, params.Limit), nil
}

func buildArchive(event *entities.Event, approved []*entities.Participant, adminID uuid.UUID) *entities.ArchivedEvent {
	snapshots := make([]entities.ArchivedParticipant, 0, len(approved))
	for _, p := range approved {
		snapshot := entities.ArchivedParticipant{
			UserID:        p.UserID,
			Name:          p.Name,
			Email:         p.Email,
			Phone:         p.Phone,
			PaymentMethod: p.PaymentMethod,
			TransactionID: p.TransactionID.String,
			ApprovedAt:    p.ApprovedAt.Time,
		}
		snapshots = append(snapshots, snapshot)
	}

	archive := &entities.ArchivedEvent{
		ID:               uuid.New(),
		EventID:          event.ID,
		Title:            event.Title,
		Description:      event.Description,
		Location:         event.Location,
		StartDate:        event.StartDate,
		RegistrationFee:  event.RegistrationFee,
		Participants:     snapshots,
		ParticipantCount: len(snapshots),
		TotalRevenue:     event.RegistrationFee * int64(len(snapshots)),
		ArchivedBy:       adminID,
		ArchivedAt:       time.Now(),
	}
	if event.EndDate.Valid {
		end := event.EndDate.Time
		archive.EndDate = &end
	}
	return archive
}
