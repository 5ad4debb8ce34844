package usecases

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"alumni-connect.backend/internal/domain/entities"
	"alumni-connect.backend/internal/domain/repositories"
	"alumni-connect.backend/pkg/logger"
)

// ActivityRecorder appends audit trail entries. Recording is best-effort:
// a failed append must never fail the admin action it describes, so
// errors are logged and swallowed.
type ActivityRecorder struct {
	activityRepo repositories.ActivityLogRepository
}

// NewActivityRecorder creates a new activity recorder
func NewActivityRecorder(activityRepo repositories.ActivityLogRepository) *ActivityRecorder {
	return &ActivityRecorder{activityRepo: activityRepo}
}

// Record appends one audit entry for the given actor and target.
func (r *ActivityRecorder) Record(ctx context.Context, actor *entities.User, activityType entities.ActivityType, targetID, targetName string, details map[string]interface{}) {
	entry := &entities.ActivityLog{
		ID:         uuid.New(),
		Type:       activityType,
		ActorID:    actor.ID,
		ActorName:  actor.Name,
		ActorEmail: actor.Email,
		TargetID:   targetID,
		TargetName: targetName,
		Details:    details,
	}

	if err := r.activityRepo.Append(ctx, entry); err != nil {
		logger.Warn(ctx, "failed to record activity",
			zap.String("type", string(activityType)),
			zap.String("target_id", targetID),
			zap.Error(err))
	}
}

// List returns audit entries, newest first, optionally filtered by type.
func (r *ActivityRecorder) List(ctx context.Context, activityType entities.ActivityType, limit, offset int) ([]*entities.ActivityLog, int64, error) {
	return r.activityRepo.List(ctx, activityType, limit, offset)
}
