package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"alumni-connect.backend/internal/domain/entities"
	domainerrors "alumni-connect.backend/internal/domain/errors"
	"alumni-connect.backend/internal/infrastructure/models"
)

// ArchiveRepository implements archived event operations
type ArchiveRepository struct {
	db *gorm.DB
}

// NewArchiveRepository creates a new archive repository
func NewArchiveRepository(db *gorm.DB) *ArchiveRepository {
	return &ArchiveRepository{db: db}
}

func (r *ArchiveRepository) Create(ctx context.Context, archive *entities.ArchivedEvent) error {
	if archive.ID == uuid.Nil {
		archive.ID = uuid.New()
	}
	location, err := json.Marshal(archive.Location)
	if err != nil {
		return err
	}
	participants, err := json.Marshal(archive.Participants)
	if err != nil {
		return err
	}
	m := &models.ArchivedEvent{
		ID:               archive.ID,
		EventID:          archive.EventID,
		Title:            archive.Title,
		Description:      archive.Description,
		Location:         location,
		StartDate:        archive.StartDate,
		EndDate:          archive.EndDate,
		RegistrationFee:  archive.RegistrationFee,
		Participants:     participants,
		ParticipantCount: archive.ParticipantCount,
		TotalRevenue:     archive.TotalRevenue,
		ArchivedBy:       archive.ArchivedBy,
		ArchivedAt:       archive.ArchivedAt,
	}
	return GetDB(ctx, r.db).Create(m).Error
}

func (r *ArchiveRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.ArchivedEvent, error) {
	var m models.ArchivedEvent
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return archiveToEntity(&m), nil
}

func (r *ArchiveRepository) List(ctx context.Context, limit, offset int) ([]*entities.ArchivedEvent, int64, error) {
	query := GetDB(ctx, r.db).Model(&models.ArchivedEvent{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("archived_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var archiveModels []models.ArchivedEvent
	if err := query.Find(&archiveModels).Error; err != nil {
		return nil, 0, err
	}
	archives := make([]*entities.ArchivedEvent, 0, len(archiveModels))
	for i := range archiveModels {
		archives = append(archives, archiveToEntity(&archiveModels[i]))
	}
	return archives, total, nil
}

func archiveToEntity(m *models.ArchivedEvent) *entities.ArchivedEvent {
	a := &entities.ArchivedEvent{
		ID:               m.ID,
		EventID:          m.EventID,
		Title:            m.Title,
		Description:      m.Description,
		StartDate:        m.StartDate,
		EndDate:          m.EndDate,
		RegistrationFee:  m.RegistrationFee,
		ParticipantCount: m.ParticipantCount,
		TotalRevenue:     m.TotalRevenue,
		ArchivedBy:       m.ArchivedBy,
		ArchivedAt:       m.ArchivedAt,
	}
	if len(m.Location) > 0 {
		_ = json.Unmarshal(m.Location, &a.Location)
	}
	if len(m.Participants) > 0 {
		_ = json.Unmarshal(m.Participants, &a.Participants)
	}
	return a
}
