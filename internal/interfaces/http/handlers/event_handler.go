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

// EventHandler handles event endpoints
type EventHandler struct {
	eventUsecase *usecases.EventUsecase
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventUsecase *usecases.EventUsecase) *EventHandler {
	return &EventHandler{eventUsecase: eventUsecase}
}

// List returns events visible to the caller
// GET /api/v1/events
func (h *EventHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	viewer, _ := middleware.GetUser(c)
	includePrivate := viewer != nil && viewer.IsAdmin()

	events, meta, err := h.eventUsecase.List(c.Request.Context(), includePrivate, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, http.StatusOK, events, meta)
}

// Get returns one event
// GET /api/v1/events/:id
func (h *EventHandler) Get(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid event id"))
		return
	}

	viewer, _ := middleware.GetUser(c)
	includePrivate := viewer != nil && viewer.IsAdmin()

	event, err := h.eventUsecase.Get(c.Request.Context(), eventID, includePrivate)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, event)
}

// Create creates a new event (admin only)
// POST /api/v1/admin/events
func (h *EventHandler) Create(c *gin.Context) {
	admin, ok := middleware.GetUser(c)
	if !ok {
		response.Error(c, domainerrors.ErrUnauthorized)
		return
	}

	var input entities.CreateEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	event, err := h.eventUsecase.Create(c.Request.Context(), admin, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, event)
}

// Update applies a partial event update (admin only)
// PUT /api/v1/admin/events/:id
func (h *EventHandler) Update(c *gin.Context) {
	admin, ok := middleware.GetUser(c)
	if !ok {
		response.Error(c, domainerrors.ErrUnauthorized)
		return
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid event id"))
		return
	}

	var input entities.UpdateEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	event, err := h.eventUsecase.Update(c.Request.Context(), admin, eventID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, event)
}

// Delete removes an event and its registrations (admin only)
// DELETE /api/v1/admin/events/:id
func (h *EventHandler) Delete(c *gin.Context) {
	admin, ok := middleware.GetUser(c)
	if !ok {
		response.Error(c, domainerrors.ErrUnauthorized)
		return
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid event id"))
		return
	}

	if err := h.eventUsecase.Delete(c.Request.Context(), admin, eventID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Event deleted"})
}

// SyncStatuses persists clock-derived statuses on demand (admin only)
// POST /api/v1/admin/events/sync-statuses
func (h *EventHandler) SyncStatuses(c *gin.Context) {
	changed, err := h.eventUsecase.SyncStatuses(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"updated": changed})
}
