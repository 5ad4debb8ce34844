package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"alumni-connect.backend/internal/domain/entities"
	domainerrors "alumni-connect.backend/internal/domain/errors"
)

func TestArchiveRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	createArchiveTable(t, db)
	repo := NewArchiveRepository(db)
	ctx := context.Background()

	archive := &entities.ArchivedEvent{
		ID:          uuid.New(),
		EventID:     uuid.New(),
		Title:       "Spring Picnic 2025",
		Description: "Family picnic",
		Location:    entities.Location{City: "Gazipur", Country: "Bangladesh"},
		StartDate:   time.Now().Add(-72 * time.Hour),
		Participants: []entities.ArchivedParticipant{
			{
				UserID:        uuid.New(),
				Name:          "Karim Ahmed",
				Email:         "karim@example.com",
				PaymentMethod: entities.PaymentMethodBkash,
				TransactionID: "TX999",
				ApprovedAt:    time.Now().Add(-96 * time.Hour),
			},
		},
		RegistrationFee:  300,
		ParticipantCount: 1,
		TotalRevenue:     300,
		ArchivedBy:       uuid.New(),
		ArchivedAt:       time.Now(),
	}
	require.NoError(t, repo.Create(ctx, archive))

	got, err := repo.GetByID(ctx, archive.ID)
	require.NoError(t, err)
	require.Equal(t, "Spring Picnic 2025", got.Title)
	require.Equal(t, "Gazipur", got.Location.City)
	require.Len(t, got.Participants, 1)
	require.Equal(t, "TX999", got.Participants[0].TransactionID)
	require.Equal(t, int64(300), got.TotalRevenue)

	_, err = repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestArchiveRepository_ListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	createArchiveTable(t, db)
	repo := NewArchiveRepository(db)
	ctx := context.Background()

	older := &entities.ArchivedEvent{
		ID:         uuid.New(),
		EventID:    uuid.New(),
		Title:      "Old Event",
		StartDate:  time.Now().Add(-200 * time.Hour),
		ArchivedBy: uuid.New(),
		ArchivedAt: time.Now().Add(-48 * time.Hour),
	}
	newer := &entities.ArchivedEvent{
		ID:         uuid.New(),
		EventID:    uuid.New(),
		Title:      "New Event",
		StartDate:  time.Now().Add(-100 * time.Hour),
		ArchivedBy: uuid.New(),
		ArchivedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	archives, total, err := repo.List(ctx, 10, 0)
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
	require.Len(t, archives, 2)
	require.Equal(t, "New Event", archives[0].Title)

	paged, total, err := repo.List(ctx, 1, 1)
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
	require.Len(t, paged, 1)
	require.Equal(t, "Old Event", paged[0].Title)
}
