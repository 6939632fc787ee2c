package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "cfcs/internal/errors"
	"cfcs/internal/logger"
	"cfcs/internal/middleware"
	"cfcs/internal/models"
)

// getUser extracts the authenticated user from the Gin context.
// Returns ErrUnauthorized if not present.
func getUser(c *gin.Context) (models.User, error) {
	u, ok := middleware.CurrentUser(c)
	if !ok || u.Username == "" {
		return models.User{}, apperrors.ErrUnauthorized
	}
	return u, nil
}

// parseFlow parses the optional "flow" query parameter.
func parseFlow(c *gin.Context) (*models.Flow, error) {
	raw := c.Query("flow")
	if raw == "" {
		return nil, nil
	}
	flow := models.Flow(raw)
	if !flow.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "flow must be Income or Expense")
	}
	return &flow, nil
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
				"request_id", middleware.RequestID(c),
			)
		}
		c.JSON(appErr.StatusCode, ErrorResponse{Error: ErrorDetail{Code: appErr.Code, Message: appErr.Message}})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"request_id", middleware.RequestID(c),
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, ErrorResponse{Error: ErrorDetail{
		Code:    apperrors.ErrInternalServer.Code,
		Message: apperrors.ErrInternalServer.Message,
	}})
}

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
