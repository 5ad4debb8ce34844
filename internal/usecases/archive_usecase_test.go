package usecases_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"alumni-connect.backend/internal/domain/entities"
	domainerrors "alumni-connect.backend/internal/domain/errors"
	"alumni-connect.backend/internal/usecases"
)

type archiveFixture struct {
	eventRepo       *MockEventRepository
	participantRepo *MockParticipantRepository
	archiveRepo     *MockArchiveRepository
	uow             *MockUnitOfWork
	activityRepo    *MockActivityLogRepository
	uc              *usecases.ArchiveUsecase
}

func newArchiveFixture() *archiveFixture {
	f := &archiveFixture{
		eventRepo:       new(MockEventRepository),
		participantRepo: new(MockParticipantRepository),
		archiveRepo:     new(MockArchiveRepository),
		uow:             new(MockUnitOfWork),
		activityRepo:    new(MockActivityLogRepository),
	}
	f.uc = usecases.NewArchiveUsecase(f.eventRepo, f.participantRepo, f.archiveRepo, f.uow, usecases.NewActivityRecorder(f.activityRepo))
	return f
}

func completedEvent() *entities.Event {
	e := paidEvent()
	e.StartDate = time.Now().Add(-96 * time.Hour)
	e.EndDate = null.TimeFrom(time.Now().Add(-72 * time.Hour))
	return e
}

func TestArchive_SnapshotsApprovedParticipants(t *testing.T) {
	f := newArchiveFixture()
	admin := adminUser()
	ctx := context.Background()

	event := completedEvent()
	approved := []*entities.Participant{
		{
			ID:            uuid.New(),
			EventID:       event.ID,
			UserID:        uuid.New(),
			Name:          "Karim Ahmed",
			Email:         "karim@example.com",
			PaymentMethod: entities.PaymentMethodBkash,
			TransactionID: null.StringFrom("TXN1"),
			Status:        entities.ParticipantStatusApproved,
			ApprovedAt:    null.TimeFrom(time.Now().Add(-100 * time.Hour)),
		},
		{
			ID:         uuid.New(),
			EventID:    event.ID,
			UserID:     uuid.New(),
			Name:       "Rahim Uddin",
			Email:      "rahim@example.com",
			Status:     entities.ParticipantStatusApproved,
			ApprovedAt: null.TimeFrom(time.Now().Add(-99 * time.Hour)),
		},
	}

	f.uow.On("Do", ctx, mock.Anything).Return(nil)
	f.eventRepo.On("GetForUpdate", ctx, event.ID).Return(event, nil)
	f.participantRepo.On("ListByEvent", ctx, event.ID, entities.ParticipantStatusApproved).Return(approved, nil)
	f.archiveRepo.On("Create", ctx, mock.AnythingOfType("*entities.ArchivedEvent")).Return(nil)
	f.participantRepo.On("DeleteByEvent", ctx, event.ID).Return(nil)
	f.eventRepo.On("Delete", ctx, event.ID).Return(nil)
	f.activityRepo.On("Append", ctx, mock.Anything).Return(nil)

	archive, err := f.uc.Archive(ctx, admin, event.ID)
	require.NoError(t, err)
	assert.Equal(t, event.ID, archive.EventID)
	assert.Equal(t, event.Title, archive.Title)
	assert.Equal(t, 2, archive.ParticipantCount)
	// fee 500 x 2 approved
	assert.Equal(t, int64(1000), archive.TotalRevenue)
	require.Len(t, archive.Participants, 2)
	assert.Equal(t, "TXN1", archive.Participants[0].TransactionID)
	assert.Equal(t, admin.ID, archive.ArchivedBy)
	require.NotNil(t, archive.EndDate)
	f.participantRepo.AssertExpectations(t)
	f.eventRepo.AssertExpectations(t)
}

func TestArchive_OnlyCompletedEvents(t *testing.T) {
	ctx := context.Background()
	admin := adminUser()

	cases := []struct {
		name  string
		event func() *entities.Event
	}{
		{"upcoming", func() *entities.Event { return paidEvent() }},
		{"ongoing", func() *entities.Event {
			e := paidEvent()
			e.StartDate = time.Now().Add(-time.Hour)
			e.EndDate = null.TimeFrom(time.Now().Add(time.Hour))
			return e
		}},
		{"cancelled", func() *entities.Event {
			e := completedEvent()
			e.Status = entities.EventStatusCancelled
			return e
		}},
		{"draft", func() *entities.Event {
			e := completedEvent()
			e.Status = entities.EventStatusDraft
			return e
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newArchiveFixture()
			event := tc.event()
			f.uow.On("Do", ctx, mock.Anything).Return(nil)
			f.eventRepo.On("GetForUpdate", ctx, event.ID).Return(event, nil)

			_, err := f.uc.Archive(ctx, admin, event.ID)
			assert.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
			f.archiveRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			f.eventRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		})
	}
}

func TestArchive_EmptyEventStillArchives(t *testing.T) {
	f := newArchiveFixture()
	admin := adminUser()
	ctx := context.Background()
	event := completedEvent()

	f.uow.On("Do", ctx, mock.Anything).Return(nil)
	f.eventRepo.On("GetForUpdate", ctx, event.ID).Return(event, nil)
	f.participantRepo.On("ListByEvent", ctx, event.ID, entities.ParticipantStatusApproved).Return([]*entities.Participant{}, nil)
	f.archiveRepo.On("Create", ctx, mock.AnythingOfType("*entities.ArchivedEvent")).Return(nil)
	f.participantRepo.On("DeleteByEvent", ctx, event.ID).Return(nil)
	f.eventRepo.On("Delete", ctx, event.ID).Return(nil)
	f.activityRepo.On("Append", ctx, mock.Anything).Return(nil)

	archive, err := f.uc.Archive(ctx, admin, event.ID)
	require.NoError(t, err)
	assert.Zero(t, archive.ParticipantCount)
	assert.Zero(t, archive.TotalRevenue)
}

func TestArchive_AbortsWhenSnapshotFails(t *testing.T) {
	f := newArchiveFixture()
	admin := adminUser()
	ctx := context.Background()
	event := completedEvent()

	f.uow.On("Do", ctx, mock.Anything).Return(nil)
	f.eventRepo.On("GetForUpdate", ctx, event.ID).Return(event, nil)
	f.participantRepo.On("ListByEvent", ctx, event.ID, entities.ParticipantStatusApproved).Return([]*entities.Participant{}, nil)
	f.archiveRepo.On("Create", ctx, mock.Anything).Return(assert.AnError)

	_, err := f.uc.Archive(ctx, admin, event.ID)
	assert.ErrorIs(t, err, assert.AnError)
	f.participantRepo.AssertNotCalled(t, "DeleteByEvent", mock.Anything, mock.Anything)
	f.eventRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestArchiveList_Pagination(t *testing.T) {
	f := newArchiveFixture()
	ctx := context.Background()

	f.archiveRepo.On("List", ctx, 10, 10).Return([]*entities.ArchivedEvent{{ID: uuid.New()}}, int64(11), nil)

	archives, meta, err := f.uc.List(ctx, 2, 10)
	require.NoError(t, err)
	assert.Len(t, archives, 1)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, int64(11), meta.TotalCount)
	assert.Equal(t, 2, meta.TotalPages)
}
