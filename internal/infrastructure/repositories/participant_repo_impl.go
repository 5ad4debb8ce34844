package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"alumni-connect.backend/internal/domain/entities"
	domainerrors "alumni-connect.backend/internal/domain/errors"
	"alumni-connect.backend/internal/infrastructure/models"
)

// ParticipantRepository implements participant record operations
type ParticipantRepository struct {
	db *gorm.DB
}

// NewParticipantRepository creates a new participant repository
func NewParticipantRepository(db *gorm.DB) *ParticipantRepository {
	return &ParticipantRepository{db: db}
}

func (r *ParticipantRepository) Create(ctx context.Context, p *entities.Participant) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	m := participantToModel(p)
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return err
	}
	p.CreatedAt = m.CreatedAt
	p.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *ParticipantRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Participant, error) {
	var m models.Participant
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return participantToEntity(&m), nil
}

func (r *ParticipantRepository) GetByEventAndUser(ctx context.Context, eventID, userID uuid.UUID) (*entities.Participant, error) {
	var m models.Participant
	err := GetDB(ctx, r.db).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return participantToEntity(&m), nil
}

func (r *ParticipantRepository) Update(ctx context.Context, p *entities.Participant) error {
	updates := map[string]interface{}{
		"status":           string(p.Status),
		"payment_verified": p.PaymentVerified,
		"admin_notes":      p.AdminNotes.Ptr(),
		"updated_at":       time.Now(),
	}
	if p.ApprovedBy.Valid {
		updates["approved_by"] = p.ApprovedBy.UUID
	}
	if p.ApprovedAt.Valid {
		updates["approved_at"] = p.ApprovedAt.Time
	}

	result := GetDB(ctx, r.db).Model(&models.Participant{}).Where("id = ?", p.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *ParticipantRepository) ListByEvent(ctx context.Context, eventID uuid.UUID, status entities.ParticipantStatus) ([]*entities.Participant, error) {
	query := GetDB(ctx, r.db).Where("event_id = ?", eventID).Order("created_at ASC")
	if status != "" {
		query = query.Where("status = ?", string(status))
	}
	var participantModels []models.Participant
	if err := query.Find(&participantModels).Error; err != nil {
		return nil, err
	}
	participants := make([]*entities.Participant, 0, len(participantModels))
	for i := range participantModels {
		participants = append(participants, participantToEntity(&participantModels[i]))
	}
	return participants, nil
}

func (r *ParticipantRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Participant, error) {
	var participantModels []models.Participant
	err := GetDB(ctx, r.db).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&participantModels).Error
	if err != nil {
		return nil, err
	}
	participants := make([]*entities.Participant, 0, len(participantModels))
	for i := range participantModels {
		participants = append(participants, participantToEntity(&participantModels[i]))
	}
	return participants, nil
}

func (r *ParticipantRepository) DeleteByEvent(ctx context.Context, eventID uuid.UUID) error {
	return GetDB(ctx, r.db).Delete(&models.Participant{}, "event_id = ?", eventID).Error
}

func (r *ParticipantRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&models.Participant{}).
		Where("status IN ?", []string{
			string(entities.ParticipantStatusPending),
			string(entities.ParticipantStatusApproved),
		}).
		Count(&count).Error
	return count, err
}

func participantToModel(p *entities.Participant) *models.Participant {
	m := &models.Participant{
		ID:              p.ID,
		EventID:         p.EventID,
		UserID:          p.UserID,
		Name:            p.Name,
		Email:           p.Email,
		Phone:           p.Phone,
		Status:          string(p.Status),
		PaymentRequired: p.PaymentRequired,
		PaymentMethod:   string(p.PaymentMethod),
		TransactionID:   p.TransactionID.Ptr(),
		SenderNumber:    p.SenderNumber.Ptr(),
		ConfirmorName:   p.ConfirmorName.Ptr(),
		ConfirmorPhone:  p.ConfirmorPhone.Ptr(),
		PaymentVerified: p.PaymentVerified,
		AdminNotes:      p.AdminNotes.Ptr(),
		ApprovedAt:      p.ApprovedAt.Ptr(),
	}
	if p.ApprovedBy.Valid {
		id := p.ApprovedBy.UUID
		m.ApprovedBy = &id
	}
	return m
}

func participantToEntity(m *models.Participant) *entities.Participant {
	p := &entities.Participant{
		ID:              m.ID,
		EventID:         m.EventID,
		UserID:          m.UserID,
		Name:            m.Name,
		Email:           m.Email,
		Phone:           m.Phone,
		Status:          entities.ParticipantStatus(m.Status),
		PaymentRequired: m.PaymentRequired,
		PaymentMethod:   entities.PaymentMethod(m.PaymentMethod),
		TransactionID:   null.StringFromPtr(m.TransactionID),
		SenderNumber:    null.StringFromPtr(m.SenderNumber),
		ConfirmorName:   null.StringFromPtr(m.ConfirmorName),
		ConfirmorPhone:  null.StringFromPtr(m.ConfirmorPhone),
		PaymentVerified: m.PaymentVerified,
		ApprovedAt:      null.TimeFromPtr(m.ApprovedAt),
		AdminNotes:      null.StringFromPtr(m.AdminNotes),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if m.ApprovedBy != nil {
		p.ApprovedBy = uuid.NullUUID{UUID: *m.ApprovedBy, Valid: true}
	}
	return p
}
