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

// DirectoryHandler serves the member directory
type DirectoryHandler struct {
	directoryUsecase *usecases.DirectoryUsecase
}

// NewDirectoryHandler creates a new directory handler
func NewDirectoryHandler(directoryUsecase *usecases.DirectoryUsecase) *DirectoryHandler {
	return &DirectoryHandler{directoryUsecase: directoryUsecase}
}

// List returns approved members with visibility applied
// GET /api/v1/directory
func (h *DirectoryHandler) List(c *gin.Context) {
	viewer, ok := middleware.GetUser(c)
	if !ok {
		response.Error(c, domainerrors.ErrUnauthorized)
		return
	}

	var query entities.DirectoryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	members, meta, err := h.directoryUsecase.List(c.Request.Context(), viewer, query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, http.StatusOK, members, meta)
}
