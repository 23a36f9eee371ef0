package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
)

// getUserID extracts the authenticated principal's user ID from the Gin
// context. Returns ErrUnauthenticated if not present.
func getUserID(c *gin.Context) (uint, error) {
	userID, exists := c.Get("userID")
	if !exists {
		return 0, apperrors.ErrUnauthenticated
	}
	return userID.(uint), nil
}

// getUserEmail extracts the authenticated principal's email from the Gin context.
func getUserEmail(c *gin.Context) (string, error) {
	email, exists := c.Get("email")
	if !exists {
		return "", apperrors.ErrUnauthenticated
	}
	return email.(string), nil
}

// parsePathID parses a uint path parameter.
// Returns ErrInvalid if the parameter is not a valid positive integer.
func parsePathID(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		return 0, apperrors.WithMessage(apperrors.ErrInvalid, "Invalid "+param)
	}
	return uint(id), nil
}

// respondWithError writes the error message as a plain-text body with the
// status its kind maps to. Unexpected errors are logged and surface as a
// generic internal error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.String(appErr.StatusCode, appErr.Message)
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.String(apperrors.ErrInternal.StatusCode, apperrors.ErrInternal.Message)
}
