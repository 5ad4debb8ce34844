package usecases

import (
	"context"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"alumni-connect.backend/internal/domain/entities"
	domainErrors "alumni-connect.backend/internal/domain/errors"
	"alumni-connect.backend/internal/domain/repositories"
)

// UserUsecase handles member profile operations
type UserUsecase struct {
	userRepo repositories.UserRepository
}

// NewUserUsecase creates a new user usecase
func NewUserUsecase(userRepo repositories.UserRepository) *UserUsecase {
	return &UserUsecase{userRepo: userRepo}
}

// GetProfile returns the member's own profile
func (u *UserUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, domainErrors.NotFound("Profile not found")
	}
	return user, nil
}

// UpdateProfile applies a partial profile update. Empty fields are left
// untouched; visibility replaces wholesale when provided.
func (u *UserUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, input *entities.UpdateProfileInput) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, domainErrors.NotFound("Profile not found")
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Phone != "" {
		user.Phone = input.Phone
	}
	if input.Profession != "" {
		user.Profession = input.Profession
	}
	if input.Company != "" {
		user.Company = input.Company
	}
	if input.BloodGroup != "" {
		user.BloodGroup = input.BloodGroup
	}
	if input.Address != "" {
		user.Address = input.Address
	}
	if input.GraduationYear != 0 {
		user.GraduationYear = input.GraduationYear
	}
	if input.PhotoURL != "" {
		user.PhotoURL = null.StringFrom(input.PhotoURL)
	}
	if input.Visibility != nil {
		user.Visibility = *input.Visibility
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
