package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerrors "alumni-connect.backend/internal/domain/errors"
	"alumni-connect.backend/internal/interfaces/http/response"
	"alumni-connect.backend/internal/usecases"
)

// ExportHandler serves CSV and report downloads (admin only)
type ExportHandler struct {
	exportUsecase *usecases.ExportUsecase
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportUsecase *usecases.ExportUsecase) *ExportHandler {
	return &ExportHandler{exportUsecase: exportUsecase}
}

// ParticipantsCSV downloads an event's registrations as CSV
// GET /api/v1/admin/events/:id/export
func (h *ExportHandler) ParticipantsCSV(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid event id"))
		return
	}

	data, filename, err := h.exportUsecase.ParticipantsCSV(c.Request.Context(), eventID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", data)
}

// Report downloads an event's settlement report as JSON
// GET /api/v1/admin/events/:id/report
func (h *ExportHandler) Report(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid event id"))
		return
	}

	report, err := h.exportUsecase.Report(c.Request.Context(), eventID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, report)
}

// ArchiveCSV downloads an archive's participant snapshot as CSV
// GET /api/v1/admin/archives/:id/export
func (h *ExportHandler) ArchiveCSV(c *gin.Context) {
	archiveID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid archive id"))
		return
	}

	data, filename, err := h.exportUsecase.ArchiveCSV(c.Request.Context(), archiveID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", data)
}
