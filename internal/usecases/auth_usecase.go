package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"alumni-connect.backend/internal/domain/entities"
	domainErrors "alumni-connect.backend/internal/domain/errors"
	"alumni-connect.backend/internal/domain/repositories"
	"alumni-connect.backend/pkg/crypto"
	"alumni-connect.backend/pkg/email"
	"alumni-connect.backend/pkg/google"
	"alumni-connect.backend/pkg/jwt"
	"alumni-connect.backend/pkg/logger"
	"alumni-connect.backend/pkg/redis"
)

// AuthUsecase handles registration, sign-in and the account lifecycle
type AuthUsecase struct {
	accountRepo      repositories.AuthAccountRepository
	userRepo         repositories.UserRepository
	verificationRepo repositories.EmailVerificationRepository
	uow              repositories.UnitOfWork
	jwtService       *jwt.JWTService
	sessions         *redis.SessionStore
	googleVerifier   google.TokenVerifier
	mailer           *email.Service
	frontendURL      string
	sessionExpiry    time.Duration
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	accountRepo repositories.AuthAccountRepository,
	userRepo repositories.UserRepository,
	verificationRepo repositories.EmailVerificationRepository,
	uow repositories.UnitOfWork,
	jwtService *jwt.JWTService,
	sessions *redis.SessionStore,
	googleVerifier google.TokenVerifier,
	mailer *email.Service,
	frontendURL string,
	sessionExpiry time.Duration,
) *AuthUsecase {
	return &AuthUsecase{
		accountRepo:      accountRepo,
		userRepo:         userRepo,
		verificationRepo: verificationRepo,
		uow:              uow,
		jwtService:       jwtService,
		sessions:         sessions,
		googleVerifier:   googleVerifier,
		mailer:           mailer,
		frontendURL:      frontendURL,
		sessionExpiry:    sessionExpiry,
	}
}

// Register creates an email/password account with a pending profile.
// The member cannot sign in until the email is verified and an admin
// approves the profile.
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.User, error) {
	existing, err := u.accountRepo.GetByEmail(ctx, input.Email)
	if err == nil && existing != nil {
		if existing.Provider != entities.ProviderEmail {
			return nil, domainErrors.ErrWrongProvider
		}
		if _, perr := u.userRepo.GetByAccountID(ctx, existing.ID); perr == nil {
			return nil, domainErrors.Conflict("An account with this email already exists")
		}
		// Account survives but the profile was removed; re-approval is
		// the only way back in.
		return nil, domainErrors.ErrAccountRemoved
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, domainErrors.InternalError(err)
	}

	account := &entities.AuthAccount{
		ID:           uuid.New(),
		Email:        input.Email,
		Provider:     entities.ProviderEmail,
		PasswordHash: passwordHash,
	}

	user := newPendingProfile(account, input.Name, input.Phone)
	user.Profession = input.Profession
	user.Company = input.Company
	user.BloodGroup = input.BloodGroup
	user.Address = input.Address
	user.GraduationYear = input.GraduationYear

	token, err := crypto.GenerateVerificationToken()
	if err != nil {
		return nil, domainErrors.InternalError(err)
	}

	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.accountRepo.Create(ctx, account); err != nil {
			return err
		}
		if err := u.userRepo.Create(ctx, user); err != nil {
			return err
		}
		return u.verificationRepo.Create(ctx, account.ID, token)
	})
	if err != nil {
		return nil, err
	}

	u.sendVerificationMail(ctx, account.Email, token)

	logger.Info(ctx, "user registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))
	return user, nil
}

// Login authenticates an email/password account. The gates run in a
// fixed order: removed profile first, then provider, then credentials
// and verification, so a removed member always gets the reapproval
// prompt.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	account, err := u.accountRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, domainErrors.ErrInvalidCredentials
	}

	user, err := u.userRepo.GetByAccountID(ctx, account.ID)
	if err != nil {
		return nil, domainErrors.ErrAccountRemoved
	}
	if account.Provider != entities.ProviderEmail {
		return nil, domainErrors.ErrWrongProvider
	}
	if !crypto.CheckPassword(input.Password, account.PasswordHash) {
		return nil, domainErrors.ErrInvalidCredentials
	}
	if !account.EmailVerified {
		return nil, domainErrors.ErrEmailNotVerified
	}

	switch user.Status {
	case entities.UserStatusPending:
		return nil, domainErrors.ErrAccountPending
	case entities.UserStatusRejected:
		return nil, domainErrors.ErrAccountRejected
	}

	return u.issueTokens(ctx, user, input.UseSession)
}

// GoogleSignIn authenticates or registers via a Google ID token. Unknown
// accounts are only created when RegisterIntent is set, so a mistyped
// sign-in does not silently create a pending profile.
func (u *AuthUsecase) GoogleSignIn(ctx context.Context, input *entities.GoogleSignInInput) (*entities.AuthResponse, error) {
	profile, err := u.googleVerifier.Verify(ctx, input.IDToken)
	if err != nil {
		return nil, domainErrors.Unauthorized("Google sign-in failed")
	}

	account, err := u.accountRepo.GetByEmail(ctx, profile.Email)
	if err != nil {
		if !input.RegisterIntent {
			return nil, domainErrors.ErrNoProfile
		}
		return u.registerGoogleAccount(ctx, profile, input)
	}

	if account.Provider != entities.ProviderGoogle {
		return nil, domainErrors.ErrWrongProvider
	}

	user, err := u.profileForAccount(ctx, account)
	if err != nil {
		return nil, err
	}

	return u.issueTokens(ctx, user, false)
}

func (u *AuthUsecase) registerGoogleAccount(ctx context.Context, profile *google.Profile, input *entities.GoogleSignInInput) (*entities.AuthResponse, error) {
	name := input.Name
	if name == "" {
		name = profile.Name
	}

	account := &entities.AuthAccount{
		ID:            uuid.New(),
		Email:         profile.Email,
		Provider:      entities.ProviderGoogle,
		EmailVerified: profile.EmailVerified,
	}

	user := newPendingProfile(account, name, input.Phone)
	user.GraduationYear = input.GraduationYear

	err := u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.accountRepo.Create(ctx, account); err != nil {
			return err
		}
		return u.userRepo.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "google account registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	// New profiles cannot sign in yet; surface the pending state.
	return nil, domainErrors.ErrAccountPending
}

// VerifyEmail consumes a verification token and marks the account verified
func (u *AuthUsecase) VerifyEmail(ctx context.Context, token string) error {
	account, err := u.verificationRepo.GetAccountByToken(ctx, token)
	if err != nil {
		return domainErrors.BadRequest("Verification link is invalid or expired")
	}

	return u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.verificationRepo.MarkVerified(ctx, token); err != nil {
			return err
		}
		return u.accountRepo.SetEmailVerified(ctx, account.ID, true)
	})
}

// RefreshToken exchanges a valid refresh token for a new token pair
func (u *AuthUsecase) RefreshToken(ctx context.Context, refreshToken string) (*entities.AuthResponse, error) {
	claims, err := u.jwtService.ValidateToken(refreshToken)
	if err != nil {
		if err == jwt.ErrExpiredToken {
			return nil, domainErrors.ErrTokenExpired
		}
		return nil, domainErrors.ErrUnauthorized
	}

	user, err := u.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, domainErrors.ErrAccountRemoved
	}
	if user.Status != entities.UserStatusApproved {
		return nil, domainErrors.ErrAccountPending
	}

	pair, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, domainErrors.InternalError(err)
	}

	return &entities.AuthResponse{
		AccessToken:       pair.AccessToken,
		RefreshToken:      pair.RefreshToken,
		User:              user,
		ProfileCompletion: user.ProfileCompletion(),
	}, nil
}

// RequestReapproval rebuilds a pending profile for an account whose
// previous profile was removed. Ownership is proven by password or
// Google ID token depending on the account's provider.
func (u *AuthUsecase) RequestReapproval(ctx context.Context, input *entities.ReapplyInput) (*entities.User, error) {
	account, err := u.accountRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, domainErrors.ErrNoProfile
	}

	switch account.Provider {
	case entities.ProviderEmail:
		if !crypto.CheckPassword(input.Password, account.PasswordHash) {
			return nil, domainErrors.ErrInvalidCredentials
		}
	case entities.ProviderGoogle:
		profile, verr := u.googleVerifier.Verify(ctx, input.IDToken)
		if verr != nil || profile.Email != account.Email {
			return nil, domainErrors.ErrInvalidCredentials
		}
	}

	if _, err := u.userRepo.GetByAccountID(ctx, account.ID); err == nil {
		return nil, domainErrors.Conflict("This account already has an active profile")
	}

	user := newPendingProfile(account, input.Name, input.Phone)
	user.Profession = input.Profession
	user.Company = input.Company
	user.BloodGroup = input.BloodGroup
	user.Address = input.Address
	user.GraduationYear = input.GraduationYear

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info(ctx, "re-approval requested",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))
	return user, nil
}

// ChangePassword updates the password of an email/password account
func (u *AuthUsecase) ChangePassword(ctx context.Context, userID uuid.UUID, input *entities.ChangePasswordInput) error {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return domainErrors.ErrNotFound
	}

	account, err := u.accountRepo.GetByID(ctx, user.AccountID)
	if err != nil {
		return domainErrors.ErrNotFound
	}
	if account.Provider != entities.ProviderEmail {
		return domainErrors.BadRequest("Password sign-in is not enabled for this account")
	}
	if !crypto.CheckPassword(input.CurrentPassword, account.PasswordHash) {
		return domainErrors.ErrInvalidCredentials
	}

	hash, err := crypto.HashPassword(input.NewPassword)
	if err != nil {
		return domainErrors.InternalError(err)
	}
	return u.accountRepo.UpdatePassword(ctx, account.ID, hash)
}

// Logout deletes the server-side session, if one exists
func (u *AuthUsecase) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" || u.sessions == nil {
		return nil
	}
	return u.sessions.DeleteSession(ctx, sessionID)
}

// profileForAccount loads the profile and applies the lifecycle gates
// shared by all sign-in paths.
func (u *AuthUsecase) profileForAccount(ctx context.Context, account *entities.AuthAccount) (*entities.User, error) {
	user, err := u.userRepo.GetByAccountID(ctx, account.ID)
	if err != nil {
		return nil, domainErrors.ErrAccountRemoved
	}

	switch user.Status {
	case entities.UserStatusPending:
		return nil, domainErrors.ErrAccountPending
	case entities.UserStatusRejected:
		return nil, domainErrors.ErrAccountRejected
	}
	return user, nil
}

func (u *AuthUsecase) issueTokens(ctx context.Context, user *entities.User, useSession bool) (*entities.AuthResponse, error) {
	pair, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, domainErrors.InternalError(err)
	}

	if err := u.userRepo.TouchLastLogin(ctx, user.ID); err != nil {
		logger.Warn(ctx, "failed to record last login", zap.Error(err))
	}

	resp := &entities.AuthResponse{
		User:              user,
		ProfileCompletion: user.ProfileCompletion(),
	}

	if useSession && u.sessions != nil {
		sessionID := uuid.NewString()
		data := &redis.SessionData{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken}
		if err := u.sessions.CreateSession(ctx, sessionID, data, u.sessionExpiry); err != nil {
			return nil, domainErrors.InternalError(err)
		}
		resp.SessionID = sessionID
		return resp, nil
	}

	resp.AccessToken = pair.AccessToken
	resp.RefreshToken = pair.RefreshToken
	return resp, nil
}

func (u *AuthUsecase) sendVerificationMail(ctx context.Context, recipient, token string) {
	if !u.mailer.Enabled() {
		return
	}
	if err := u.mailer.SendVerification(recipient, token, u.frontendURL); err != nil {
		logger.Warn(ctx, "failed to send verification email",
			zap.String("recipient", recipient),
			zap.Error(err))
	}
}

func newPendingProfile(account *entities.AuthAccount, name, phone string) *entities.User {
	return &entities.User{
		ID:         uuid.New(),
		AccountID:  account.ID,
		Email:      account.Email,
		Name:       name,
		Phone:      phone,
		Role:       entities.UserRoleUser,
		Status:     entities.UserStatusPending,
		Provider:   account.Provider,
		Visibility: entities.DefaultVisibility(),
	}
}
