package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerrors "alumni-connect.backend/internal/domain/errors"
	"alumni-connect.backend/internal/interfaces/http/middleware"
	"alumni-connect.backend/internal/interfaces/http/response"
	"alumni-connect.backend/internal/usecases"
)

// ArchiveHandler handles archive endpoints
type ArchiveHandler struct {
	archiveUsecase *usecases.ArchiveUsecase
}

// NewArchiveHandler creates a new archive handler
func NewArchiveHandler(archiveUsecase *usecases.ArchiveUsecase) *ArchiveHandler {
	return &ArchiveHandler{archiveUsecase: archiveUsecase}
}

// Archive snapshots a completed event (admin only)
// POST /api/v1/admin/events/:id/archive
func (h *ArchiveHandler) Archive(c *gin.Context) {
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

	archive, err := h.archiveUsecase.Archive(c.Request.Context(), admin, eventID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, archive)
}

// List returns archives, newest first
// GET /api/v1/archives
func (h *ArchiveHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	archives, meta, err := h.archiveUsecase.List(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, http.StatusOK, archives, meta)
}

// Get returns one archive
// GET /api/v1/archives/:id
func (h *ArchiveHandler) Get(c *gin.Context) {
	archiveID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid archive id"))
		return
	}

	archive, err := h.archiveUsecase.Get(c.Request.Context(), archiveID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, archive)
}
