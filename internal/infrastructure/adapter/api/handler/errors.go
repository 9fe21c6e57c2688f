package handler

import (
	"errors"
	"net/http"

	errs "github.com/amirhossein-jamali/bookkeeper/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bookkeeper/internal/domain/port/core"
	"github.com/amirhossein-jamali/bookkeeper/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// statusFromError maps domain errors to HTTP status codes
func statusFromError(err error) int {
	switch {
	case errors.Is(err, errs.ErrUserExists):
		return http.StatusConflict
	case errors.Is(err, errs.ErrAuthenticationFailure):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrUserNotFound):
		return http.StatusNotFound
	case errs.IsValidationError(err):
		return http.StatusBadRequest
	case errs.IsStorageUnavailableError(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error body for err. Client errors carry the error text,
// server errors a fixed message.
func respondError(c *gin.Context, logger coreport.Logger, err error) {
	status := statusFromError(err)
	message := err.Error()

	switch status {
	case http.StatusServiceUnavailable:
		message = "Storage unavailable"
	case http.StatusInternalServerError:
		message = "Internal server error"
	case http.StatusNotFound:
		message = "User not found"
	}

	fields := map[string]any{
		"path":   c.Request.URL.Path,
		"status": status,
		"error":  err.Error(),
	}
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", fields)
	} else {
		logger.Debug("Request rejected", fields)
	}

	_ = c.Error(err)
	c.JSON(status, dto.ErrorResponse{
		Code:    errs.ErrorCode(err),
		Message: message,
	})
}

// respondBadRequest writes a 400 for a body that could not be decoded
func respondBadRequest(c *gin.Context, code int, err error) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    code,
		Message: "Invalid request format: " + err.Error(),
	})
}
