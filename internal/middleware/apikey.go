package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	apperrors "cfcs/internal/errors"
)

// APIKeyHeader carries the export key.
const APIKeyHeader = "X-API-Key"

// APIKeyMiddleware validates the X-API-Key header against apiKey. An empty
// apiKey disables the routes it guards.
func APIKeyMiddleware(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			abortWithError(c, apperrors.ErrExportDisabled)
			return
		}
		key := c.GetHeader(APIKeyHeader)
		if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
			abortWithError(c, apperrors.ErrInvalidAPIKey)
			return
		}
		c.Next()
	}
}
