package repositories

import (
	"context"

	"github.com/google/uuid"
	"alumni-connect.backend/internal/domain/entities"
)

// ArchiveRepository defines archived event operations. Archives are
// create/read only.
type ArchiveRepository interface {
	Create(ctx context.Context, archive *entities.ArchivedEvent) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.ArchivedEvent, error)
	List(ctx context.Context, limit, offset int) ([]*entities.ArchivedEvent, int64, error)
}
