package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"alumni-connect.backend/internal/domain/entities"
	domainerrors "alumni-connect.backend/internal/domain/errors"
)

func newParticipant(eventID, userID uuid.UUID, status entities.ParticipantStatus) *entities.Participant {
	return &entities.Participant{
		ID:      uuid.New(),
		EventID: eventID,
		UserID:  userID,
		Name:    "Karim Ahmed",
		Email:   "karim@example.com",
		Phone:   "01700000000",
		Status:  status,
	}
}

func TestParticipantRepository_BasicFlow(t *testing.T) {
	db := newTestDB(t)
	createEventTables(t, db)
	repo := NewParticipantRepository(db)
	ctx := context.Background()

	eventID := uuid.New()
	userID := uuid.New()

	p := newParticipant(eventID, userID, entities.ParticipantStatusPending)
	p.PaymentRequired = true
	p.PaymentMethod = entities.PaymentMethodBkash
	p.TransactionID = null.StringFrom("TX12345")
	p.SenderNumber = null.StringFrom("01712345678")
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetByEventAndUser(ctx, eventID, userID)
	require.NoError(t, err)
	require.Equal(t, p.ID, got.ID)
	require.Equal(t, "TX12345", got.TransactionID.String)
	require.False(t, got.PaymentVerified)

	adminID := uuid.New()
	got.Status = entities.ParticipantStatusApproved
	got.PaymentVerified = true
	got.ApprovedBy = uuid.NullUUID{UUID: adminID, Valid: true}
	got.ApprovedAt = null.TimeFrom(time.Now())
	require.NoError(t, repo.Update(ctx, got))

	updated, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, entities.ParticipantStatusApproved, updated.Status)
	require.True(t, updated.PaymentVerified)
	require.Equal(t, adminID, updated.ApprovedBy.UUID)
	require.True(t, updated.ApprovedAt.Valid)
}

func TestParticipantRepository_DuplicateJoinRejected(t *testing.T) {
	db := newTestDB(t)
	createEventTables(t, db)
	repo := NewParticipantRepository(db)
	ctx := context.Background()

	eventID := uuid.New()
	userID := uuid.New()

	require.NoError(t, repo.Create(ctx, newParticipant(eventID, userID, entities.ParticipantStatusPending)))
	require.Error(t, repo.Create(ctx, newParticipant(eventID, userID, entities.ParticipantStatusPending)))

	// Same user joining a different event is fine.
	require.NoError(t, repo.Create(ctx, newParticipant(uuid.New(), userID, entities.ParticipantStatusPending)))
}

func TestParticipantRepository_ListAndCount(t *testing.T) {
	db := newTestDB(t)
	createEventTables(t, db)
	repo := NewParticipantRepository(db)
	ctx := context.Background()

	eventID := uuid.New()
	userID := uuid.New()

	require.NoError(t, repo.Create(ctx, newParticipant(eventID, userID, entities.ParticipantStatusApproved)))
	require.NoError(t, repo.Create(ctx, newParticipant(eventID, uuid.New(), entities.ParticipantStatusPending)))
	require.NoError(t, repo.Create(ctx, newParticipant(eventID, uuid.New(), entities.ParticipantStatusRejected)))
	require.NoError(t, repo.Create(ctx, newParticipant(uuid.New(), userID, entities.ParticipantStatusApproved)))

	all, err := repo.ListByEvent(ctx, eventID, "")
	require.NoError(t, err)
	require.Len(t, all, 3)

	approved, err := repo.ListByEvent(ctx, eventID, entities.ParticipantStatusApproved)
	require.NoError(t, err)
	require.Len(t, approved, 1)

	mine, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, mine, 2)

	active, err := repo.CountActive(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(3), active)
}

func TestParticipantRepository_DeleteByEvent(t *testing.T) {
	db := newTestDB(t)
	createEventTables(t, db)
	repo := NewParticipantRepository(db)
	ctx := context.Background()

	eventID := uuid.New()
	require.NoError(t, repo.Create(ctx, newParticipant(eventID, uuid.New(), entities.ParticipantStatusApproved)))
	require.NoError(t, repo.Create(ctx, newParticipant(eventID, uuid.New(), entities.ParticipantStatusRejected)))
	other := newParticipant(uuid.New(), uuid.New(), entities.ParticipantStatusApproved)
	require.NoError(t, repo.Create(ctx, other))

	require.NoError(t, repo.DeleteByEvent(ctx, eventID))

	remaining, err := repo.ListByEvent(ctx, eventID, "")
	require.NoError(t, err)
	require.Empty(t, remaining)

	_, err = repo.GetByID(ctx, other.ID)
	require.NoError(t, err)
}

func TestParticipantRepository_NotFound(t *testing.T) {
	db := newTestDB(t)
	createEventTables(t, db)
	repo := NewParticipantRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.GetByEventAndUser(ctx, uuid.New(), uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	missing := newParticipant(uuid.New(), uuid.New(), entities.ParticipantStatusPending)
	require.ErrorIs(t, repo.Update(ctx, missing), domainerrors.ErrNotFound)
}
