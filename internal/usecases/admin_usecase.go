package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"

	"alumni-connect.backend/internal/domain/entities"
	domainErrors "alumni-connect.backend/internal/domain/errors"
	"alumni-connect.backend/internal/domain/repositories"
	"alumni-connect.backend/pkg/email"
	"alumni-connect.backend/pkg/logger"
)

// AdminUsecase handles the approval queue, role management and dashboard
// statistics.
type AdminUsecase struct {
	userRepo        repositories.UserRepository
	eventRepo       repositories.EventRepository
	participantRepo repositories.ParticipantRepository
	archiveRepo     repositories.ArchiveRepository
	recorder        *ActivityRecorder
	mailer          *email.Service
}

// NewAdminUsecase creates a new admin usecase
func NewAdminUsecase(
	userRepo repositories.UserRepository,
	eventRepo repositories.EventRepository,
	participantRepo repositories.ParticipantRepository,
	archiveRepo repositories.ArchiveRepository,
	recorder *ActivityRecorder,
	mailer *email.Service,
) *AdminUsecase {
	return &AdminUsecase{
		userRepo:        userRepo,
		eventRepo:       eventRepo,
		participantRepo: participantRepo,
		archiveRepo:     archiveRepo,
		recorder:        recorder,
		mailer:          mailer,
	}
}

// ListUsers returns users filtered by status and free-text search
func (u *AdminUsecase) ListUsers(ctx context.Context, status entities.UserStatus, search string) ([]*entities.User, error) {
	return u.userRepo.List(ctx, status, search)
}

// GetUser returns one member by id
func (u *AdminUsecase) GetUser(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, domainErrors.NotFound("User not found")
	}
	return user, nil
}

// ApproveUser moves a pending member to approved
func (u *AdminUsecase) ApproveUser(ctx context.Context, admin *entities.User, userID uuid.UUID) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, domainErrors.NotFound("User not found")
	}
	if user.Status != entities.UserStatusPending {
		return nil, domainErrors.Conflict("User is not awaiting approval")
	}

	user.Status = entities.UserStatusApproved
	user.ApprovedBy = uuid.NullUUID{UUID: admin.ID, Valid: true}
	user.ApprovedAt = null.TimeFrom(time.Now())

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	u.recorder.Record(ctx, admin, entities.ActivityUserApproved, user.ID.String(), user.Name, nil)
	u.sendApprovalMail(ctx, user)
	return user, nil
}

// RejectUser declines a pending member. Rejection deletes the profile
// row outright; the auth account survives, so the member can register
// a fresh profile and re-enter the approval queue.
func (u *AdminUsecase) RejectUser(ctx context.Context, admin *entities.User, userID uuid.UUID) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, domainErrors.NotFound("User not found")
	}
	if user.Status != entities.UserStatusPending {
		return nil, domainErrors.Conflict("User is not awaiting approval")
	}

	user.Status = entities.UserStatusRejected
	if err := u.userRepo.Delete(ctx, user.ID); err != nil {
		return nil, err
	}

	u.recorder.Record(ctx, admin, entities.ActivityUserRejected, user.ID.String(), user.Name, nil)
	return user, nil
}

// RemoveUser hard-deletes a member profile. The auth account survives so
// the member can request re-approval later.
func (u *AdminUsecase) RemoveUser(ctx context.Context, admin *entities.User, userID uuid.UUID) error {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return domainErrors.NotFound("User not found")
	}
	if user.ID == admin.ID {
		return domainErrors.BadRequest("You cannot remove your own account")
	}
	if user.Role == entities.UserRoleSuperAdmin {
		return domainErrors.Forbidden("Super admin accounts cannot be removed")
	}
	if user.IsAdmin() && admin.Role != entities.UserRoleSuperAdmin {
		return domainErrors.Forbidden("Only a super admin can remove an admin")
	}

	if err := u.userRepo.Delete(ctx, user.ID); err != nil {
		return err
	}

	u.recorder.Record(ctx, admin, entities.ActivityUserRemoved, user.ID.String(), user.Name, map[string]interface{}{
		"email": user.Email,
	})
	logger.Info(ctx, "user removed",
		zap.String("user_id", user.ID.String()),
		zap.String("removed_by", admin.ID.String()))
	return nil
}

// ChangeRole sets a member's role. Super admin only; the super admin role
// itself is never assigned or revoked here.
func (u *AdminUsecase) ChangeRole(ctx context.Context, actor *entities.User, userID uuid.UUID, role entities.UserRole) (*entities.User, error) {
	if actor.Role != entities.UserRoleSuperAdmin {
		return nil, domainErrors.Forbidden("Only a super admin can change roles")
	}
	if role != entities.UserRoleUser && role != entities.UserRoleAdmin {
		return nil, domainErrors.BadRequest("Role must be user or admin")
	}
	if userID == actor.ID {
		return nil, domainErrors.BadRequest("You cannot change your own role")
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, domainErrors.NotFound("User not found")
	}
	if user.Role == entities.UserRoleSuperAdmin {
		return nil, domainErrors.Forbidden("Super admin roles cannot be changed")
	}

	previous := user.Role
	user.Role = role
	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	u.recorder.Record(ctx, actor, entities.ActivityRoleChanged, user.ID.String(), user.Name, map[string]interface{}{
		"from": string(previous),
		"to":   string(role),
	})
	return user, nil
}

// Stats builds the admin dashboard summary
func (u *AdminUsecase) Stats(ctx context.Context) (*entities.DashboardStats, error) {
	users, err := u.userRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	events, err := u.eventRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	active, err := u.participantRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	_, archived, err := u.archiveRepo.List(ctx, 1, 0)
	if err != nil {
		return nil, err
	}

	return &entities.DashboardStats{
		Users:              users,
		Events:             events,
		ActiveParticipants: active,
		ArchivedEvents:     archived,
	}, nil
}

func (u *AdminUsecase) sendApprovalMail(ctx context.Context, user *entities.User) {
	if !u.mailer.Enabled() {
		return
	}
	if err := u.mailer.SendApprovalNotice(user.Email, user.Name); err != nil {
		logger.Warn(ctx, "failed to send approval email",
			zap.String("recipient", user.Email),
			zap.Error(err))
	}
}
