package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/cosmic/backend/internal/domain/shared"
	"github.com/cosmic/backend/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// parseID reads the :id path parameter. Anything that is not a positive
// integer cannot name a row, so callers treat ok == false as not found.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// Error sends an error body with the given status
func (h *BaseHandler) Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorResponse{Error: message})
}

// NotFound sends a 404 with the given message
func (h *BaseHandler) NotFound(c *gin.Context, message string) {
	h.Error(c, http.StatusNotFound, message)
}

// BadRequest sends a 400 with the given message
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, message)
}

// InternalError logs err with the request-scoped logger and sends a 500
func (h *BaseHandler) InternalError(c *gin.Context, err error) {
	_ = c.Error(err)
	logger.L(c.Request.Context()).Error("Request failed",
		zap.String("route", c.FullPath()),
		zap.Error(err),
	)
	h.Error(c, http.StatusInternalServerError, msgInternal)
}

// isClientError reports whether err was caused by the request content
// rather than by the server
func isClientError(err error) bool {
	return errors.Is(err, shared.ErrInvalidInput) ||
		errors.Is(err, shared.ErrAlreadyExists)
}

// rejectWith answers a client error with 400 and message. Server side
// failures are logged first, then reported the same way.
func (h *BaseHandler) rejectWith(c *gin.Context, err error, message string) {
	if !isClientError(err) {
		_ = c.Error(err)
		logger.L(c.Request.Context()).Error("Request failed, reported as validation error",
			zap.String("route", c.FullPath()),
			zap.Error(err),
		)
	}
	h.BadRequest(c, message)
}
