package repositories

import (
	"context"

	"github.com/google/uuid"
	"alumni-connect.backend/internal/domain/entities"
)

// AuthAccountRepository defines auth principal data operations
type AuthAccountRepository interface {
	Create(ctx context.Context, account *entities.AuthAccount) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.AuthAccount, error)
	GetByEmail(ctx context.Context, email string) (*entities.AuthAccount, error)
	SetEmailVerified(ctx context.Context, id uuid.UUID, verified bool) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	List(ctx context.Context) ([]*entities.AuthAccount, error)
}

// UserRepository defines member profile data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByAccountID(ctx context.Context, accountID uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	// Delete removes the profile row for good; the auth account survives.
	Delete(ctx context.Context, id uuid.UUID) error
	TouchLastLogin(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, status entities.UserStatus, search string) ([]*entities.User, error)
	ListDirectory(ctx context.Context, q entities.DirectoryQuery) ([]*entities.User, int64, error)
	CountByStatus(ctx context.Context) (map[entities.UserStatus]int64, error)
}

// EmailVerificationRepository defines email verification token operations
type EmailVerificationRepository interface {
	Create(ctx context.Context, accountID uuid.UUID, token string) error
	GetAccountByToken(ctx context.Context, token string) (*entities.AuthAccount, error)
	MarkVerified(ctx context.Context, token string) error
	HasVerified(ctx context.Context, accountID uuid.UUID) (bool, error)
}
