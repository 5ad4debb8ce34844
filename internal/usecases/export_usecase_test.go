package usecases_test

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"alumni-connect.backend/internal/domain/entities"
	domainerrors "alumni-connect.backend/internal/domain/errors"
	"alumni-connect.backend/internal/usecases"
)

func newExportFixture() (*MockEventRepository, *MockParticipantRepository, *MockArchiveRepository, *usecases.ExportUsecase) {
	eventRepo := new(MockEventRepository)
	participantRepo := new(MockParticipantRepository)
	archiveRepo := new(MockArchiveRepository)
	return eventRepo, participantRepo, archiveRepo, usecases.NewExportUsecase(eventRepo, participantRepo, archiveRepo)
}

func TestParticipantsCSV(t *testing.T) {
	eventRepo, participantRepo, _, uc := newExportFixture()
	ctx := context.Background()

	event := paidEvent()
	event.Title = "Annual Reunion 2026!"
	participants := []*entities.Participant{
		{
			Name:            "Karim Ahmed",
			Email:           "karim@example.com",
			Phone:           "+8801712345678",
			Status:          entities.ParticipantStatusApproved,
			PaymentMethod:   entities.PaymentMethodBkash,
			TransactionID:   null.StringFrom("TXN1"),
			SenderNumber:    null.StringFrom("+8801812345678"),
			PaymentVerified: true,
			CreatedAt:       time.Now(),
		},
		{
			Name:      "Rahim Uddin",
			Email:     "rahim@example.com",
			Status:    entities.ParticipantStatusPending,
			CreatedAt: time.Now(),
		},
	}
	eventRepo.On("GetByID", ctx, event.ID).Return(event, nil)
	participantRepo.On("ListByEvent", ctx, event.ID, entities.ParticipantStatus("")).Return(participants, nil)

	data, filename, err := uc.ParticipantsCSV(ctx, event.ID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filename, "annual-reunion-2026-participants-"))
	assert.True(t, strings.HasSuffix(filename, ".csv"))

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"Name", "Email", "Phone", "Status", "Payment Method", "Transaction ID", "Sender Number", "Payment Verified", "Registered At"}, records[0])
	assert.Equal(t, "Karim Ahmed", records[1][0])
	assert.Equal(t, "TXN1", records[1][5])
	assert.Equal(t, "true", records[1][7])
	assert.Equal(t, "pending", records[2][3])
	assert.Equal(t, "false", records[2][7])
}

func TestParticipantsCSV_UnknownEvent(t *testing.T) {
	eventRepo, _, _, uc := newExportFixture()
	ctx := context.Background()
	id := uuid.New()

	eventRepo.On("GetByID", ctx, id).Return(nil, domainerrors.ErrNotFound)

	_, _, err := uc.ParticipantsCSV(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestArchiveCSV(t *testing.T) {
	_, _, archiveRepo, uc := newExportFixture()
	ctx := context.Background()

	archive := &entities.ArchivedEvent{
		ID:    uuid.New(),
		Title: "Spring Picnic",
		Participants: []entities.ArchivedParticipant{
			{
				Name:          "Karim Ahmed",
				Email:         "karim@example.com",
				PaymentMethod: entities.PaymentMethodNagad,
				TransactionID: "TXN9",
				ApprovedAt:    time.Now(),
			},
		},
	}
	archiveRepo.On("GetByID", ctx, archive.ID).Return(archive, nil)

	data, filename, err := uc.ArchiveCSV(ctx, archive.ID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filename, "spring-picnic-archive-"))

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "nagad", records[1][3])
	assert.Equal(t, "TXN9", records[1][4])
}

func TestReport_CountsAndRevenue(t *testing.T) {
	eventRepo, participantRepo, _, uc := newExportFixture()
	ctx := context.Background()

	event := paidEvent() // fee 500
	participants := []*entities.Participant{
		{Name: "A", Status: entities.ParticipantStatusApproved},
		{Name: "B", Status: entities.ParticipantStatusApproved},
		{Name: "C", Status: entities.ParticipantStatusPending},
		{Name: "D", Status: entities.ParticipantStatusRejected},
	}
	eventRepo.On("GetByID", ctx, event.ID).Return(event, nil)
	participantRepo.On("ListByEvent", ctx, event.ID, entities.ParticipantStatus("")).Return(participants, nil)

	report, err := uc.Report(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, report.ParticipantCount)
	assert.Equal(t, 2, report.ApprovedCount)
	assert.Equal(t, 1, report.PendingCount)
	assert.Equal(t, 1, report.RejectedCount)
	assert.Equal(t, int64(1000), report.TotalRevenue)
	require.Len(t, report.Invoices, 4)
	assert.Equal(t, int64(500), report.Invoices[0].Amount)
	assert.Zero(t, report.Invoices[2].Amount)
}
