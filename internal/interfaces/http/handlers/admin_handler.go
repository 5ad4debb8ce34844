package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"alumni-connect.backend/internal/domain/entities"
	domainerrors "alumni-connect.backend/internal/domain/errors"
	"alumni-connect.backend/internal/interfaces/http/middleware"
	"alumni-connect.backend/internal/interfaces/http/response"
	"alumni-connect.backend/internal/usecases"
)

// AdminHandler handles the approval queue, role management, the audit
// trail and dashboard statistics.
type AdminHandler struct {
	adminUsecase *usecases.AdminUsecase
	recorder     *usecases.ActivityRecorder
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminUsecase *usecases.AdminUsecase, recorder *usecases.ActivityRecorder) *AdminHandler {
	return &AdminHandler{
		adminUsecase: adminUsecase,
		recorder:     recorder,
	}
}

// ListUsers returns members filtered by status and search
// GET /api/v1/admin/users?status=pending&search=...
func (h *AdminHandler) ListUsers(c *gin.Context) {
	status := entities.UserStatus(c.Query("status"))
	search := c.Query("search")

	users, err := h.adminUsecase.ListUsers(c.Request.Context(), status, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, users)
}

// GetUser returns one member
// GET /api/v1/admin/users/:id
func (h *AdminHandler) GetUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid user id"))
		return
	}

	user, err := h.adminUsecase.GetUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, user)
}

// ApproveUser approves a pending member
// POST /api/v1/admin/users/:id/approve
func (h *AdminHandler) ApproveUser(c *gin.Context) {
	admin, ok := middleware.GetUser(c)
	if !ok {
		response.Error(c, domainerrors.ErrUnauthorized)
		return
	}

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid user id"))
		return
	}

	user, err := h.adminUsecase.ApproveUser(c.Request.Context(), admin, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, user)
}

// RejectUser rejects a pending member
// POST /api/v1/admin/users/:id/reject
func (h *AdminHandler) RejectUser(c *gin.Context) {
	admin, ok := middleware.GetUser(c)
	if !ok {
		response.Error(c, domainerrors.ErrUnauthorized)
		return
	}

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid user id"))
		return
	}

	user, err := h.adminUsecase.RejectUser(c.Request.Context(), admin, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, user)
}

// RemoveUser hard-deletes a member profile
// DELETE /api/v1/admin/users/:id
func (h *AdminHandler) RemoveUser(c *gin.Context) {
	admin, ok := middleware.GetUser(c)
	if !ok {
		response.Error(c, domainerrors.ErrUnauthorized)
		return
	}

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid user id"))
		return
	}

	if err := h.adminUsecase.RemoveUser(c.Request.Context(), admin, userID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "User removed"})
}

// ChangeRole sets a member's role (super admin only)
// PUT /api/v1/admin/users/:id/role
func (h *AdminHandler) ChangeRole(c *gin.Context) {
	actor, ok := middleware.GetUser(c)
	if !ok {
		response.Error(c, domainerrors.ErrUnauthorized)
		return
	}

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid user id"))
		return
	}

	var input struct {
		Role entities.UserRole `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.adminUsecase.ChangeRole(c.Request.Context(), actor, userID, input.Role)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, user)
}

// Stats returns the dashboard summary
// GET /api/v1/admin/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.adminUsecase.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, stats)
}

// Activity returns audit trail entries, newest first
// GET /api/v1/admin/activity?type=user_approved&limit=50&offset=0
func (h *AdminHandler) Activity(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	activityType := entities.ActivityType(c.Query("type"))

	entries, total, err := h.recorder.List(c.Request.Context(), activityType, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"entries": entries,
		"total":   total,
	})
}
