package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"alumni-connect.backend/internal/domain/entities"
	domainerrors "alumni-connect.backend/internal/domain/errors"
	"alumni-connect.backend/internal/interfaces/http/middleware"
	"alumni-connect.backend/internal/interfaces/http/response"
	"alumni-connect.backend/internal/usecases"
)

// ProfileHandler handles the member's own profile endpoints
type ProfileHandler struct {
	userUsecase *usecases.UserUsecase
	authUsecase *usecases.AuthUsecase
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(userUsecase *usecases.UserUsecase, authUsecase *usecases.AuthUsecase) *ProfileHandler {
	return &ProfileHandler{
		userUsecase: userUsecase,
		authUsecase: authUsecase,
	}
}

// Me returns the authenticated member's profile
// GET /api/v1/profile
func (h *ProfileHandler) Me(c *gin.Context) {
	user, ok := middleware.GetUser(c)
	if !ok {
		response.Error(c, domainerrors.ErrUnauthorized)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":              user,
		"profileCompletion": user.ProfileCompletion(),
	})
}

// Update applies a partial profile update
// PUT /api/v1/profile
func (h *ProfileHandler) Update(c *gin.Context) {
	user, ok := middleware.GetUser(c)
	if !ok {
		response.Error(c, domainerrors.ErrUnauthorized)
		return
	}

	var input entities.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	updated, err := h.userUsecase.UpdateProfile(c.Request.Context(), user.ID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":              updated,
		"profileCompletion": updated.ProfileCompletion(),
	})
}

// ChangePassword updates the account password
// POST /api/v1/profile/change-password
func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	user, ok := middleware.GetUser(c)
	if !ok {
		response.Error(c, domainerrors.ErrUnauthorized)
		return
	}

	var input entities.ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.authUsecase.ChangePassword(c.Request.Context(), user.ID, &input); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Password changed"})
}
