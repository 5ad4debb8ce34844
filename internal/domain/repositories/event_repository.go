package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"alumni-connect.backend/internal/domain/entities"
)

// EventRepository defines event data operations
type EventRepository interface {
	Create(ctx context.Context, event *entities.Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Event, error)
	// GetForUpdate loads the event under a row lock so the capacity check
	// and counter increment cannot race inside a UnitOfWork transaction.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*entities.Event, error)
	Update(ctx context.Context, event *entities.Event) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, includePrivate bool, limit, offset int) ([]*entities.Event, int64, error)
	// IncrementParticipants adjusts the denormalized counter atomically.
	IncrementParticipants(ctx context.Context, id uuid.UUID, delta int) error
	// SyncStatuses persists the date-derived status for events whose stored
	// status is neither draft nor cancelled. Returns rows changed.
	SyncStatuses(ctx context.Context, now time.Time) (int64, error)
	CountByStatus(ctx context.Context) (map[entities.EventStatus]int64, error)
}
