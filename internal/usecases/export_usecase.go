package usecases

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"alumni-connect.backend/internal/domain/entities"
	domainErrors "alumni-connect.backend/internal/domain/errors"
	"alumni-connect.backend/internal/domain/repositories"
)

// EventReport is the downloadable settlement summary for one event
type EventReport struct {
	EventID          uuid.UUID       `json:"eventId"`
	Title            string          `json:"title"`
	StartDate        time.Time       `json:"startDate"`
	RegistrationFee  int64           `json:"registrationFee"`
	ParticipantCount int             `json:"participantCount"`
	ApprovedCount    int             `json:"approvedCount"`
	PendingCount     int             `json:"pendingCount"`
	RejectedCount    int             `json:"rejectedCount"`
	TotalRevenue     int64           `json:"totalRevenue"`
	Invoices         []ReportInvoice `json:"invoices"`
	GeneratedAt      time.Time       `json:"generatedAt"`
}

// ReportInvoice is one participant line in an event report
type ReportInvoice struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Status        string `json:"status"`
	PaymentMethod string `json:"paymentMethod,omitempty"`
	TransactionID string `json:"transactionId,omitempty"`
	Amount        int64  `json:"amount"`
}

// ExportUsecase produces CSV and report downloads for events and archives
type ExportUsecase struct {
	eventRepo       repositories.EventRepository
	participantRepo repositories.ParticipantRepository
	archiveRepo     repositories.ArchiveRepository
}

// NewExportUsecase creates a new export usecase
func NewExportUsecase(
	eventRepo repositories.EventRepository,
	participantRepo repositories.ParticipantRepository,
	archiveRepo repositories.ArchiveRepository,
) *ExportUsecase {
	return &ExportUsecase{
		eventRepo:       eventRepo,
		participantRepo: participantRepo,
		archiveRepo:     archiveRepo,
	}
}

// ParticipantsCSV renders an event's registrations as CSV. Returns the
// file contents and a suggested filename.
func (u *ExportUsecase) ParticipantsCSV(ctx context.Context, eventID uuid.UUID) ([]byte, string, error) {
	event, err := u.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, "", domainErrors.NotFound("Event not found")
	}
	participants, err := u.participantRepo.ListByEvent(ctx, eventID, "")
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"Name", "Email", "Phone", "Status", "Payment Method", "Transaction ID", "Sender Number", "Payment Verified", "Registered At"})
	for _, p := range participants {
		_ = w.Write([]string{
			p.Name,
			p.Email,
			p.Phone,
			string(p.Status),
			string(p.PaymentMethod),
			p.TransactionID.String,
			p.SenderNumber.String,
			strconv.FormatBool(p.PaymentVerified),
			p.CreatedAt.Format(time.RFC3339),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("%s-participants-%s.csv", slugify(event.Title), time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

// ArchiveCSV renders an archive's participant snapshot as CSV
func (u *ExportUsecase) ArchiveCSV(ctx context.Context, archiveID uuid.UUID) ([]byte, string, error) {
	archive, err := u.archiveRepo.GetByID(ctx, archiveID)
	if err != nil {
		return nil, "", domainErrors.NotFound("Archive not found")
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"Name", "Email", "Phone", "Payment Method", "Transaction ID", "Approved At"})
	for _, p := range archive.Participants {
		_ = w.Write([]string{
			p.Name,
			p.Email,
			p.Phone,
			string(p.PaymentMethod),
			p.TransactionID,
			p.ApprovedAt.Format(time.RFC3339),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("%s-archive-%s.csv", slugify(archive.Title), time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

// Report builds the settlement report for a live event. Revenue counts
// approved registrations only.
func (u *ExportUsecase) Report(ctx context.Context, eventID uuid.UUID) (*EventReport, error) {
	event, err := u.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, domainErrors.NotFound("Event not found")
	}
	participants, err := u.participantRepo.ListByEvent(ctx, eventID, "")
	if err != nil {
		return nil, err
	}

	report := &EventReport{
		EventID:         event.ID,
		Title:           event.Title,
		StartDate:       event.StartDate,
		RegistrationFee: event.RegistrationFee,
		GeneratedAt:     time.Now(),
	}

	for _, p := range participants {
		invoice := ReportInvoice{
			Name:          p.Name,
			Email:         p.Email,
			Status:        string(p.Status),
			PaymentMethod: string(p.PaymentMethod),
			TransactionID: p.TransactionID.String,
		}
		switch p.Status {
		case entities.ParticipantStatusApproved:
			report.ApprovedCount++
			invoice.Amount = event.RegistrationFee
			report.TotalRevenue += event.RegistrationFee
		case entities.ParticipantStatusPending:
			report.PendingCount++
		case entities.ParticipantStatusRejected:
			report.RejectedCount++
		}
		report.Invoices = append(report.Invoices, invoice)
	}
	report.ParticipantCount = len(participants)

	return report, nil
}

// slugify lowercases and hyphenates a title for use in filenames
func slugify(s string) string {
	out := make([]rune, 0, len(s))
	lastHyphen := true
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
			lastHyphen = false
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
			lastHyphen = false
		default:
			if !lastHyphen {
				out = append(out, '-')
				lastHyphen = true
			}
		}
	}
	for len(out) > 0 && out[len(out)-1] == '-' {
		out = out[:len(out)-1]
	}
	if len(out) == 0 {
		return "event"
	}
	return string(out)
}
