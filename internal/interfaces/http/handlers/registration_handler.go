package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"alumni-connect.backend/internal/domain/entities"
	domainerrors "alumni-connect.backend/internal/domain/errors"
	"alumni-connect.backend/internal/interfaces/http/middleware"
	"alumni-connect.backend/internal/interfaces/http/response"
	"alumni-connect.backend/internal/usecases"
)

// RegistrationHandler handles event join and verification endpoints
type RegistrationHandler struct {
	registrationUsecase *usecases.RegistrationUsecase
}

// NewRegistrationHandler creates a new registration handler
func NewRegistrationHandler(registrationUsecase *usecases.RegistrationUsecase) *RegistrationHandler {
	return &RegistrationHandler{registrationUsecase: registrationUsecase}
}

// Join registers the caller for an event
// POST /api/v1/events/:id/join
func (h *RegistrationHandler) Join(c *gin.Context) {
	user, ok := middleware.GetUser(c)
	if !ok {
		response.Error(c, domainerrors.ErrUnauthorized)
		return
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid event id"))
		return
	}

	var input entities.JoinEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	result, err := h.registrationUsecase.Join(c.Request.Context(), eventID, user.ID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, result)
}

// MyRegistrations returns the caller's registrations
// GET /api/v1/registrations
func (h *RegistrationHandler) MyRegistrations(c *gin.Context) {
	user, ok := middleware.GetUser(c)
	if !ok {
		response.Error(c, domainerrors.ErrUnauthorized)
		return
	}

	registrations, err := h.registrationUsecase.ListByUser(c.Request.Context(), user.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, registrations)
}

// ListByEvent returns an event's registrations (admin only)
// GET /api/v1/admin/events/:id/participants?status=pending
func (h *RegistrationHandler) ListByEvent(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid event id"))
		return
	}

	status := entities.ParticipantStatus(c.Query("status"))
	participants, err := h.registrationUsecase.ListByEvent(c.Request.Context(), eventID, status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, participants)
}

// Approve verifies a pending registration's payment (admin only)
// POST /api/v1/admin/participants/:id/approve
func (h *RegistrationHandler) Approve(c *gin.Context) {
	admin, ok := middleware.GetUser(c)
	if !ok {
		response.Error(c, domainerrors.ErrUnauthorized)
		return
	}

	participantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid participant id"))
		return
	}

	participant, err := h.registrationUsecase.Approve(c.Request.Context(), admin, participantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, participant)
}

// Reject declines a registration and frees its slot (admin only)
// POST /api/v1/admin/participants/:id/reject
func (h *RegistrationHandler) Reject(c *gin.Context) {
	admin, ok := middleware.GetUser(c)
	if !ok {
		response.Error(c, domainerrors.ErrUnauthorized)
		return
	}

	participantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid participant id"))
		return
	}

	var input entities.RejectParticipantInput
	if err := c.ShouldBindJSON(&input); err != nil && err.Error() != "EOF" {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	participant, err := h.registrationUsecase.Reject(c.Request.Context(), admin, participantID, input.Notes)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, participant)
}
