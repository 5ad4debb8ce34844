package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"
	"alumni-connect.backend/internal/domain/repositories"
	"alumni-connect.backend/pkg/logger"
)

// EventStatusSyncJob periodically persists the date-derived status of
// events. Reads always derive the live status themselves; this job keeps
// the stored column from drifting so queries that filter on it stay
// truthful.
type EventStatusSyncJob struct {
	repo     repositories.EventRepository
	interval time.Duration
	stop     chan struct{}
}

func NewEventStatusSyncJob(repo repositories.EventRepository, interval time.Duration) *EventStatusSyncJob {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &EventStatusSyncJob{
		repo:     repo,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

func (j *EventStatusSyncJob) Start(ctx context.Context) {
	logger.Info(ctx, "Starting event status sync job", zap.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Event status sync job stopped (context cancelled)")
			return
		case <-j.stop:
			logger.Info(ctx, "Event status sync job stopped")
			return
		case <-ticker.C:
			j.syncOnce(ctx)
		}
	}
}

func (j *EventStatusSyncJob) Stop() {
	close(j.stop)
}

func (j *EventStatusSyncJob) syncOnce(ctx context.Context) {
	changed, err := j.repo.SyncStatuses(ctx, time.Now())
	if err != nil {
		logger.Error(ctx, "Event status sync failed", zap.Error(err))
		return
	}
	if changed > 0 {
		logger.Info(ctx, "Event statuses synced", zap.Int64("changed", changed))
	}
}
