package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	explorationapp "github.com/cosmic/backend/internal/application/exploration"
	"github.com/cosmic/backend/internal/infrastructure/logger"
	"github.com/cosmic/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScientistHandler handles the /scientists endpoints
type ScientistHandler struct {
	BaseHandler
	scientistService *explorationapp.ScientistService
}

// NewScientistHandler creates a new ScientistHandler
func NewScientistHandler(scientistService *explorationapp.ScientistService) *ScientistHandler {
	return &ScientistHandler{
		scientistService: scientistService,
	}
}

// List handles GET /scientists
func (h *ScientistHandler) List(c *gin.Context) {
	scientists, err := h.scientistService.List(c.Request.Context())
	if err != nil {
		h.InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, scientists)
}

// Create handles POST /scientists
func (h *ScientistHandler) Create(c *gin.Context) {
	var req explorationapp.CreateScientistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.L(c.Request.Context()).Debug("Rejected scientist payload",
			zap.Strings("fields", middleware.ValidationFields(err)),
			zap.Error(err),
		)
		h.BadRequest(c, msgScientistValidation)
		return
	}

	scientist, err := h.scientistService.Create(c.Request.Context(), req)
	if err != nil {
		if isClientError(err) {
			h.BadRequest(c, msgScientistValidation)
			return
		}
		h.InternalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, scientist)
}

// GetByID handles GET /scientists/:id
func (h *ScientistHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.NotFound(c, msgScientistNotFound)
		return
	}

	scientist, err := h.scientistService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, explorationapp.ErrScientistNotFound) {
			h.NotFound(c, msgScientistNotFound)
			return
		}
		h.InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, scientist)
}

// Update handles PATCH /scientists/:id. Only name, field_of_study and avatar
// may be sent; any other key fails the request. An unknown id is reported
// before the body is looked at.
func (h *ScientistHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, msgPatchNotFound)
		return
	}
	if err := h.scientistService.EnsureExists(c.Request.Context(), id); err != nil {
		if errors.Is(err, explorationapp.ErrScientistNotFound) {
			h.BadRequest(c, msgPatchNotFound)
			return
		}
		h.InternalError(c, err)
		return
	}

	var req explorationapp.UpdateScientistRequest
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil || dec.More() {
		logger.L(c.Request.Context()).Debug("Rejected scientist patch", zap.Error(err))
		h.BadRequest(c, msgValidation)
		return
	}

	scientist, err := h.scientistService.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, explorationapp.ErrScientistNotFound) {
			h.BadRequest(c, msgPatchNotFound)
			return
		}
		h.rejectWith(c, err, msgValidation)
		return
	}
	c.JSON(http.StatusAccepted, scientist)
}

// Delete handles DELETE /scientists/:id
func (h *ScientistHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.NotFound(c, msgScientistNotFound)
		return
	}

	if err := h.scientistService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, explorationapp.ErrScientistNotFound) {
			h.NotFound(c, msgScientistNotFound)
			return
		}
		h.InternalError(c, err)
		return
	}
	// gin writes no body for a 204, clients only see the status
	c.JSON(http.StatusNoContent, MessageResponse{Message: msgScientistDeleted})
}

// ListPlanets handles GET /scientists/:id/planets
func (h *ScientistHandler) ListPlanets(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.NotFound(c, msgScientistNotFound)
		return
	}

	planets, err := h.scientistService.ListPlanets(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, explorationapp.ErrScientistNotFound) {
			h.NotFound(c, msgScientistNotFound)
			return
		}
		h.InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, planets)
}
