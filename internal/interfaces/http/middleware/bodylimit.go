package middleware

import (
	"net/http"

	"github.com/fieldstock/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// BodyLimit rejects bodies declared larger than maxBytes and caps streamed ones
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			abortWithError(c, dto.ErrCodeRequestTooLarge, "Request body exceeds maximum allowed size")
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
