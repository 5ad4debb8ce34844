package usecases_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"alumni-connect.backend/internal/domain/entities"
	"alumni-connect.backend/pkg/google"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Called(ctx, fn)
	return fn(ctx)
}

// Mock AuthAccountRepository
type MockAuthAccountRepository struct {
	mock.Mock
}

func (m *MockAuthAccountRepository) Create(ctx context.Context, account *entities.AuthAccount) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAuthAccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.AuthAccount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.AuthAccount), args.Error(1)
}

func (m *MockAuthAccountRepository) GetByEmail(ctx context.Context, email string) (*entities.AuthAccount, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.AuthAccount), args.Error(1)
}

func (m *MockAuthAccountRepository) SetEmailVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	return m.Called(ctx, id, verified).Error(0)
}

func (m *MockAuthAccountRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}

func (m *MockAuthAccountRepository) List(ctx context.Context) ([]*entities.AuthAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.AuthAccount), args.Error(1)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByAccountID(ctx context.Context, accountID uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entities.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserRepository) TouchLastLogin(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, status entities.UserStatus, search string) ([]*entities.User, error) {
	args := m.Called(ctx, status, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

func (m *MockUserRepository) ListDirectory(ctx context.Context, q entities.DirectoryQuery) ([]*entities.User, int64, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) CountByStatus(ctx context.Context) (map[entities.UserStatus]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[entities.UserStatus]int64), args.Error(1)
}

// Mock EmailVerificationRepository
type MockEmailVerificationRepository struct {
	mock.Mock
}

func (m *MockEmailVerificationRepository) Create(ctx context.Context, accountID uuid.UUID, token string) error {
	return m.Called(ctx, accountID, token).Error(0)
}

func (m *MockEmailVerificationRepository) GetAccountByToken(ctx context.Context, token string) (*entities.AuthAccount, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.AuthAccount), args.Error(1)
}

func (m *MockEmailVerificationRepository) MarkVerified(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockEmailVerificationRepository) HasVerified(ctx context.Context, accountID uuid.UUID) (bool, error) {
	args := m.Called(ctx, accountID)
	return args.Bool(0), args.Error(1)
}

// Mock EventRepository
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Create(ctx context.Context, event *entities.Event) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockEventRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Event), args.Error(1)
}

func (m *MockEventRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*entities.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Event), args.Error(1)
}

func (m *MockEventRepository) Update(ctx context.Context, event *entities.Event) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockEventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockEventRepository) List(ctx context.Context, includePrivate bool, limit, offset int) ([]*entities.Event, int64, error) {
	args := m.Called(ctx, includePrivate, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Event), args.Get(1).(int64), args.Error(2)
}

func (m *MockEventRepository) IncrementParticipants(ctx context.Context, id uuid.UUID, delta int) error {
	return m.Called(ctx, id, delta).Error(0)
}

func (m *MockEventRepository) SyncStatuses(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEventRepository) CountByStatus(ctx context.Context) (map[entities.EventStatus]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[entities.EventStatus]int64), args.Error(1)
}

// Mock ParticipantRepository
type MockParticipantRepository struct {
	mock.Mock
}

func (m *MockParticipantRepository) Create(ctx context.Context, p *entities.Participant) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockParticipantRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Participant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Participant), args.Error(1)
}

func (m *MockParticipantRepository) GetByEventAndUser(ctx context.Context, eventID, userID uuid.UUID) (*entities.Participant, error) {
	args := m.Called(ctx, eventID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Participant), args.Error(1)
}

func (m *MockParticipantRepository) Update(ctx context.Context, p *entities.Participant) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockParticipantRepository) ListByEvent(ctx context.Context, eventID uuid.UUID, status entities.ParticipantStatus) ([]*entities.Participant, error) {
	args := m.Called(ctx, eventID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Participant), args.Error(1)
}

func (m *MockParticipantRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Participant, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Participant), args.Error(1)
}

func (m *MockParticipantRepository) DeleteByEvent(ctx context.Context, eventID uuid.UUID) error {
	return m.Called(ctx, eventID).Error(0)
}

func (m *MockParticipantRepository) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// Mock ArchiveRepository
type MockArchiveRepository struct {
	mock.Mock
}

func (m *MockArchiveRepository) Create(ctx context.Context, archive *entities.ArchivedEvent) error {
	return m.Called(ctx, archive).Error(0)
}

func (m *MockArchiveRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.ArchivedEvent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ArchivedEvent), args.Error(1)
}

func (m *MockArchiveRepository) List(ctx context.Context, limit, offset int) ([]*entities.ArchivedEvent, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.ArchivedEvent), args.Get(1).(int64), args.Error(2)
}

// Mock ActivityLogRepository
type MockActivityLogRepository struct {
	mock.Mock
}

func (m *MockActivityLogRepository) Append(ctx context.Context, entry *entities.ActivityLog) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockActivityLogRepository) List(ctx context.Context, activityType entities.ActivityType, limit, offset int) ([]*entities.ActivityLog, int64, error) {
	args := m.Called(ctx, activityType, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.ActivityLog), args.Get(1).(int64), args.Error(2)
}

// Mock Google token verifier
type MockTokenVerifier struct {
	mock.Mock
}

func (m *MockTokenVerifier) Verify(ctx context.Context, idToken string) (*google.Profile, error) {
	args := m.Called(ctx, idToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*google.Profile), args.Error(1)
}
