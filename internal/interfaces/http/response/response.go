package response

import (
	"github.com/gin-gonic/gin"

	domainerrors "alumni-connect.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response. The status and message come from the
// central domain error mapping so handlers never leak driver messages.
func Error(c *gin.Context, err error) {
	status, message := domainerrors.Status(err)
	c.JSON(status, gin.H{
		"error":   message,
		"message": message,
	})
}

// Paginated sends a list response with pagination metadata
func Paginated(c *gin.Context, status int, data interface{}, meta interface{}) {
	c.JSON(status, gin.H{
		"data":       data,
		"pagination": meta,
	})
}
