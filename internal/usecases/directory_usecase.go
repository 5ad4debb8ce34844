package usecases

import (
	"context"

	"alumni-connect.backend/internal/domain/entities"
	"alumni-connect.backend/internal/domain/repositories"
	"alumni-connect.backend/pkg/utils"
)

// DirectoryUsecase serves the approved-member directory with per-field
// visibility applied.
type DirectoryUsecase struct {
	userRepo repositories.UserRepository
}

// NewDirectoryUsecase creates a new directory usecase
func NewDirectoryUsecase(userRepo repositories.UserRepository) *DirectoryUsecase {
	return &DirectoryUsecase{userRepo: userRepo}
}

// List returns approved members matching the query. Fields a member
// marked private are blanked unless the viewer is an admin.
func (u *DirectoryUsecase) List(ctx context.Context, viewer *entities.User, q entities.DirectoryQuery) ([]*entities.User, utils.PaginationMeta, error) {
	params := utils.GetPaginationParams(q.Page, q.Limit)
	q.Page = params.Page
	q.Limit = params.Limit

	users, total, err := u.userRepo.ListDirectory(ctx, q)
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}

	if viewer == nil || !viewer.IsAdmin() {
		for _, member := range users {
			applyVisibility(member)
		}
	}

	return users, utils.CalculateMeta(total, params.Page, params.Limit), nil
}

// applyVisibility blanks the fields the member chose to keep private.
func applyVisibility(member *entities.User) {
	if member.Visibility.Email == entities.VisibilityPrivate {
		member.Email = ""
	}
	if member.Visibility.Phone == entities.VisibilityPrivate {
		member.Phone = ""
	}
	if member.Visibility.Address == entities.VisibilityPrivate {
		member.Address = ""
	}
	if member.Visibility.BloodGroup == entities.VisibilityPrivate {
		member.BloodGroup = ""
	}
}
