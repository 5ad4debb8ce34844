package repositories

import (
	"context"

	"alumni-connect.backend/internal/domain/entities"
)

// ActivityLogRepository defines audit trail operations. Append and list
// only; entries are never mutated.
type ActivityLogRepository interface {
	Append(ctx context.Context, entry *entities.ActivityLog) error
	List(ctx context.Context, activityType entities.ActivityType, limit, offset int) ([]*entities.ActivityLog, int64, error)
}
