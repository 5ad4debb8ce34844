package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"alumni-connect.backend/internal/domain/entities"
	domainerrors "alumni-connect.backend/internal/domain/errors"
	"alumni-connect.backend/internal/infrastructure/models"
)

// EventRepository implements event data operations
type EventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, event *entities.Event) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	m, err := eventToModel(event)
	if err != nil {
		return err
	}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return err
	}
	event.CreatedAt = m.CreatedAt
	event.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Event, error) {
	var m models.Event
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return eventToEntity(&m), nil
}

// GetForUpdate locks the event row for the duration of the surrounding
// transaction. Callers must be inside a UnitOfWork.
func (r *EventRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*entities.Event, error) {
	var m models.Event
	err := GetDB(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return eventToEntity(&m), nil
}

func (r *EventRepository) Update(ctx context.Context, event *entities.Event) error {
	m, err := eventToModel(event)
	if err != nil {
		return err
	}
	updates := map[string]interface{}{
		"title":                 m.Title,
		"description":           m.Description,
		"location_street":       m.LocationStreet,
		"location_city":         m.LocationCity,
		"location_postcode":     m.LocationPostcode,
		"location_country":      m.LocationCountry,
		"start_date":            m.StartDate,
		"end_date":              m.EndDate,
		"registration_deadline": m.RegistrationDeadline,
		"participant_limit":     m.ParticipantLimit,
		"registration_fee":      m.RegistrationFee,
		"payment_methods":       m.PaymentMethods,
		"receiving_numbers":     m.ReceivingNumbers,
		"contact_persons":       m.ContactPersons,
		"banner_url":            m.BannerURL,
		"status":                m.Status,
		"public":                m.Public,
		"updated_at":            time.Now(),
	}
	result := GetDB(ctx, r.db).Model(&models.Event{}).Where("id = ?", event.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).Delete(&models.Event{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *EventRepository) List(ctx context.Context, includePrivate bool, limit, offset int) ([]*entities.Event, int64, error) {
	query := GetDB(ctx, r.db).Model(&models.Event{})
	if !includePrivate {
		query = query.Where("public = ? AND status <> ?", true, string(entities.EventStatusDraft))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("start_date DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var eventModels []models.Event
	if err := query.Find(&eventModels).Error; err != nil {
		return nil, 0, err
	}
	events := make([]*entities.Event, 0, len(eventModels))
	for i := range eventModels {
		events = append(events, eventToEntity(&eventModels[i]))
	}
	return events, total, nil
}

func (r *EventRepository) IncrementParticipants(ctx context.Context, id uuid.UUID, delta int) error {
	result := GetDB(ctx, r.db).Model(&models.Event{}).Where("id = ?", id).
		Update("current_participants", gorm.Expr("current_participants + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SyncStatuses rewrites the stored status from the event dates. Draft and
// cancelled rows are left alone; they are authoritative.
func (r *EventRepository) SyncStatuses(ctx context.Context, now time.Time) (int64, error) {
	db := GetDB(ctx, r.db)
	skip := []string{string(entities.EventStatusDraft), string(entities.EventStatusCancelled)}
	var changed int64

	res := db.Model(&models.Event{}).
		Where("status NOT IN ? AND status <> ? AND start_date > ?", skip, string(entities.EventStatusUpcoming), now).
		Update("status", string(entities.EventStatusUpcoming))
	if res.Error != nil {
		return changed, res.Error
	}
	changed += res.RowsAffected

	res = db.Model(&models.Event{}).
		Where("status NOT IN ? AND status <> ? AND COALESCE(end_date, start_date) < ?", skip, string(entities.EventStatusCompleted), now).
		Update("status", string(entities.EventStatusCompleted))
	if res.Error != nil {
		return changed, res.Error
	}
	changed += res.RowsAffected

	res = db.Model(&models.Event{}).
		Where("status NOT IN ? AND status <> ? AND start_date <= ? AND COALESCE(end_date, start_date) >= ?", skip, string(entities.EventStatusOngoing), now, now).
		Update("status", string(entities.EventStatusOngoing))
	if res.Error != nil {
		return changed, res.Error
	}
	changed += res.RowsAffected

	return changed, nil
}

func (r *EventRepository) CountByStatus(ctx context.Context) (map[entities.EventStatus]int64, error) {
	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	err := GetDB(ctx, r.db).Model(&models.Event{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[entities.EventStatus]int64, len(rows))
	for _, rw := range rows {
		counts[entities.EventStatus(rw.Status)] = rw.Count
	}
	return counts, nil
}

func eventToModel(e *entities.Event) (*models.Event, error) {
	methods, err := json.Marshal(e.PaymentMethods)
	if err != nil {
		return nil, err
	}
	numbers, err := json.Marshal(e.ReceivingNumbers)
	if err != nil {
		return nil, err
	}
	contacts, err := json.Marshal(e.ContactPersons)
	if err != nil {
		return nil, err
	}
	return &models.Event{
		ID:                   e.ID,
		Title:                e.Title,
		Description:          e.Description,
		LocationStreet:       e.Location.Street,
		LocationCity:         e.Location.City,
		LocationPostcode:     e.Location.Postcode,
		LocationCountry:      e.Location.Country,
		StartDate:            e.StartDate,
		EndDate:              e.EndDate.Ptr(),
		RegistrationDeadline: e.RegistrationDeadline.Ptr(),
		ParticipantLimit:     e.ParticipantLimit,
		RegistrationFee:      e.RegistrationFee,
		PaymentMethods:       methods,
		ReceivingNumbers:     numbers,
		ContactPersons:       contacts,
		BannerURL:            e.BannerURL.Ptr(),
		Status:               string(e.Status),
		Public:               e.Public,
		CurrentParticipants:  e.CurrentParticipants,
		CreatedBy:            e.CreatedBy,
	}, nil
}

func eventToEntity(m *models.Event) *entities.Event {
	e := &entities.Event{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Location: entities.Location{
			Street:   m.LocationStreet,
			City:     m.LocationCity,
			Postcode: m.LocationPostcode,
			Country:  m.LocationCountry,
		},
		StartDate:            m.StartDate,
		EndDate:              null.TimeFromPtr(m.EndDate),
		RegistrationDeadline: null.TimeFromPtr(m.RegistrationDeadline),
		ParticipantLimit:     m.ParticipantLimit,
		RegistrationFee:      m.RegistrationFee,
		BannerURL:            null.StringFromPtr(m.BannerURL),
		Status:               entities.EventStatus(m.Status),
		Public:               m.Public,
		CurrentParticipants:  m.CurrentParticipants,
		CreatedBy:            m.CreatedBy,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
	if len(m.PaymentMethods) > 0 {
		_ = json.Unmarshal(m.PaymentMethods, &e.PaymentMethods)
	}
	if len(m.ReceivingNumbers) > 0 {
		_ = json.Unmarshal(m.ReceivingNumbers, &e.ReceivingNumbers)
	}
	if len(m.ContactPersons) > 0 {
		_ = json.Unmarshal(m.ContactPersons, &e.ContactPersons)
	}
	return e
}
