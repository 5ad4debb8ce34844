package repositories

import (
	"context"

	"github.com/google/uuid"
	"alumni-connect.backend/internal/domain/entities"
)

// ParticipantRepository defines participant record operations
type ParticipantRepository interface {
	Create(ctx context.Context, p *entities.Participant) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Participant, error)
	GetByEventAndUser(ctx context.Context, eventID, userID uuid.UUID) (*entities.Participant, error)
	Update(ctx context.Context, p *entities.Participant) error
	ListByEvent(ctx context.Context, eventID uuid.UUID, status entities.ParticipantStatus) ([]*entities.Participant, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Participant, error)
	// DeleteByEvent removes every participant record for the event,
	// regardless of status. Used by event deletion and archival.
	DeleteByEvent(ctx context.Context, eventID uuid.UUID) error
	CountActive(ctx context.Context) (int64, error)
}
