package handlers

import (
	"context"
	"time"

	"github.com/google/uuid"

	"alumni-connect.backend/internal/domain/entities"
	domainerrors "alumni-connect.backend/internal/domain/errors"
)

// Function-field stubs keep each test focused on the branch it drives;
// unset fields fall back to an empty success or not-found.

type eventRepoStub struct {
	createFn       func(ctx context.Context, event *entities.Event) error
	getByIDFn      func(ctx context.Context, id uuid.UUID) (*entities.Event, error)
	getForUpdateFn func(ctx context.Context, id uuid.UUID) (*entities.Event, error)
	updateFn       func(ctx context.Context, event *entities.Event) error
	deleteFn       func(ctx context.Context, id uuid.UUID) error
	listFn         func(ctx context.Context, includePrivate bool, limit, offset int) ([]*entities.Event, int64, error)
	incrementFn    func(ctx context.Context, id uuid.UUID, delta int) error
	syncFn         func(ctx context.Context, now time.Time) (int64, error)
	countFn        func(ctx context.Context) (map[entities.EventStatus]int64, error)
}

func (s *eventRepoStub) Create(ctx context.Context, event *entities.Event) error {
	if s.createFn != nil {
		return s.createFn(ctx, event)
	}
	return nil
}

func (s *eventRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.Event, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *eventRepoStub) GetForUpdate(ctx context.Context, id uuid.UUID) (*entities.Event, error) {
	if s.getForUpdateFn != nil {
		return s.getForUpdateFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *eventRepoStub) Update(ctx context.Context, event *entities.Event) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, event)
	}
	return nil
}

func (s *eventRepoStub) Delete(ctx context.Context, id uuid.UUID) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *eventRepoStub) List(ctx context.Context, includePrivate bool, limit, offset int) ([]*entities.Event, int64, error) {
	if s.listFn != nil {
		return s.listFn(ctx, includePrivate, limit, offset)
	}
	return []*entities.Event{}, 0, nil
}

func (s *eventRepoStub) IncrementParticipants(ctx context.Context, id uuid.UUID, delta int) error {
	if s.incrementFn != nil {
		return s.incrementFn(ctx, id, delta)
	}
	return nil
}

func (s *eventRepoStub) SyncStatuses(ctx context.Context, now time.Time) (int64, error) {
	if s.syncFn != nil {
		return s.syncFn(ctx, now)
	}
	return 0, nil
}

func (s *eventRepoStub) CountByStatus(ctx context.Context) (map[entities.EventStatus]int64, error) {
	if s.countFn != nil {
		return s.countFn(ctx)
	}
	return map[entities.EventStatus]int64{}, nil
}

type participantRepoStub struct {
	createFn         func(ctx context.Context, p *entities.Participant) error
	getByIDFn        func(ctx context.Context, id uuid.UUID) (*entities.Participant, error)
	getByEventUserFn func(ctx context.Context, eventID, userID uuid.UUID) (*entities.Participant, error)
	updateFn         func(ctx context.Context, p *entities.Participant) error
	listByEventFn    func(ctx context.Context, eventID uuid.UUID, status entities.ParticipantStatus) ([]*entities.Participant, error)
	listByUserFn     func(ctx context.Context, userID uuid.UUID) ([]*entities.Participant, error)
	deleteByEventFn  func(ctx context.Context, eventID uuid.UUID) error
	countActiveFn    func(ctx context.Context) (int64, error)
}

func (s *participantRepoStub) Create(ctx context.Context, p *entities.Participant) error {
	if s.createFn != nil {
		return s.createFn(ctx, p)
	}
	return nil
}

func (s *participantRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.Participant, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *participantRepoStub) GetByEventAndUser(ctx context.Context, eventID, userID uuid.UUID) (*entities.Participant, error) {
	if s.getByEventUserFn != nil {
		return s.getByEventUserFn(ctx, eventID, userID)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *participantRepoStub) Update(ctx context.Context, p *entities.Participant) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, p)
	}
	return nil
}

func (s *participantRepoStub) ListByEvent(ctx context.Context, eventID uuid.UUID, status entities.ParticipantStatus) ([]*entities.Participant, error) {
	if s.listByEventFn != nil {
		return s.listByEventFn(ctx, eventID, status)
	}
	return []*entities.Participant{}, nil
}

func (s *participantRepoStub) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Participant, error) {
	if s.listByUserFn != nil {
		return s.listByUserFn(ctx, userID)
	}
	return []*entities.Participant{}, nil
}

func (s *participantRepoStub) DeleteByEvent(ctx context.Context, eventID uuid.UUID) error {
	if s.deleteByEventFn != nil {
		return s.deleteByEventFn(ctx, eventID)
	}
	return nil
}

func (s *participantRepoStub) CountActive(ctx context.Context) (int64, error) {
	if s.countActiveFn != nil {
		return s.countActiveFn(ctx)
	}
	return 0, nil
}

type userRepoStub struct {
	createFn         func(ctx context.Context, user *entities.User) error
	getByIDFn        func(ctx context.Context, id uuid.UUID) (*entities.User, error)
	getByAccountIDFn func(ctx context.Context, accountID uuid.UUID) (*entities.User, error)
	getByEmailFn     func(ctx context.Context, email string) (*entities.User, error)
	updateFn         func(ctx context.Context, user *entities.User) error
	deleteFn         func(ctx context.Context, id uuid.UUID) error
	listFn           func(ctx context.Context, status entities.UserStatus, search string) ([]*entities.User, error)
	listDirectoryFn  func(ctx context.Context, q entities.DirectoryQuery) ([]*entities.User, int64, error)
	countFn          func(ctx context.Context) (map[entities.UserStatus]int64, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *entities.User) error {
	if s.createFn != nil {
		return s.createFn(ctx, user)
	}
	return nil
}

func (s *userRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) GetByAccountID(ctx context.Context, accountID uuid.UUID) (*entities.User, error) {
	if s.getByAccountIDFn != nil {
		return s.getByAccountIDFn(ctx, accountID)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	if s.getByEmailFn != nil {
		return s.getByEmailFn(ctx, email)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) Update(ctx context.Context, user *entities.User) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, user)
	}
	return nil
}

func (s *userRepoStub) Delete(ctx context.Context, id uuid.UUID) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *userRepoStub) TouchLastLogin(ctx context.Context, id uuid.UUID) error { return nil }

func (s *userRepoStub) List(ctx context.Context, status entities.UserStatus, search string) ([]*entities.User, error) {
	if s.listFn != nil {
		return s.listFn(ctx, status, search)
	}
	return []*entities.User{}, nil
}

func (s *userRepoStub) ListDirectory(ctx context.Context, q entities.DirectoryQuery) ([]*entities.User, int64, error) {
	if s.listDirectoryFn != nil {
		return s.listDirectoryFn(ctx, q)
	}
	return []*entities.User{}, 0, nil
}

func (s *userRepoStub) CountByStatus(ctx context.Context) (map[entities.UserStatus]int64, error) {
	if s.countFn != nil {
		return s.countFn(ctx)
	}
	return map[entities.UserStatus]int64{}, nil
}

type activityRepoStub struct {
	appendFn func(ctx context.Context, entry *entities.ActivityLog) error
	listFn   func(ctx context.Context, activityType entities.ActivityType, limit, offset int) ([]*entities.ActivityLog, int64, error)
}

func (s *activityRepoStub) Append(ctx context.Context, entry *entities.ActivityLog) error {
	if s.appendFn != nil {
		return s.appendFn(ctx, entry)
	}
	return nil
}

func (s *activityRepoStub) List(ctx context.Context, activityType entities.ActivityType, limit, offset int) ([]*entities.ActivityLog, int64, error) {
	if s.listFn != nil {
		return s.listFn(ctx, activityType, limit, offset)
	}
	return []*entities.ActivityLog{}, 0, nil
}

type archiveRepoStub struct {
	createFn  func(ctx context.Context, archive *entities.ArchivedEvent) error
	getByIDFn func(ctx context.Context, id uuid.UUID) (*entities.ArchivedEvent, error)
	listFn    func(ctx context.Context, limit, offset int) ([]*entities.ArchivedEvent, int64, error)
}

func (s *archiveRepoStub) Create(ctx context.Context, archive *entities.ArchivedEvent) error {
	if s.createFn != nil {
		return s.createFn(ctx, archive)
	}
	return nil
}

func (s *archiveRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.ArchivedEvent, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *archiveRepoStub) List(ctx context.Context, limit, offset int) ([]*entities.ArchivedEvent, int64, error) {
	if s.listFn != nil {
		return s.listFn(ctx, limit, offset)
	}
	return []*entities.ArchivedEvent{}, 0, nil
}

// uowStub runs the function inline so transactional paths execute
// against the stubs directly.
type uowStub struct{}

func (uowStub) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
