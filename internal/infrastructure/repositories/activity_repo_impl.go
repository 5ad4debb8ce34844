package repositories

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"alumni-connect.backend/internal/domain/entities"
	"alumni-connect.backend/internal/infrastructure/models"
)

// ActivityLogRepository implements the append-only audit trail
type ActivityLogRepository struct {
	db *gorm.DB
}

// NewActivityLogRepository creates a new activity log repository
func NewActivityLogRepository(db *gorm.DB) *ActivityLogRepository {
	return &ActivityLogRepository{db: db}
}

func (r *ActivityLogRepository) Append(ctx context.Context, entry *entities.ActivityLog) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	details, err := json.Marshal(entry.Details)
	if err != nil {
		return err
	}
	m := &models.ActivityLog{
		ID:         entry.ID,
		Type:       string(entry.Type),
		ActorID:    entry.ActorID,
		ActorName:  entry.ActorName,
		ActorEmail: entry.ActorEmail,
		TargetID:   entry.TargetID,
		TargetName: entry.TargetName,
		Details:    details,
	}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return err
	}
	entry.CreatedAt = m.CreatedAt
	return nil
}

func (r *ActivityLogRepository) List(ctx context.Context, activityType entities.ActivityType, limit, offset int) ([]*entities.ActivityLog, int64, error) {
	query := GetDB(ctx, r.db).Model(&models.ActivityLog{})
	if activityType != "" {
		query = query.Where("type = ?", string(activityType))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var logModels []models.ActivityLog
	if err := query.Find(&logModels).Error; err != nil {
		return nil, 0, err
	}

	entries := make([]*entities.ActivityLog, 0, len(logModels))
	for i := range logModels {
		m := &logModels[i]
		entry := &entities.ActivityLog{
			ID:         m.ID,
			Type:       entities.ActivityType(m.Type),
			ActorID:    m.ActorID,
			ActorName:  m.ActorName,
			ActorEmail: m.ActorEmail,
			TargetID:   m.TargetID,
			TargetName: m.TargetName,
			CreatedAt:  m.CreatedAt,
		}
		if len(m.Details) > 0 {
			_ = json.Unmarshal(m.Details, &entry.Details)
		}
		entries = append(entries, entry)
	}
	return entries, total, nil
}
