package handler

import (
	"net/http"

	explorationapp "github.com/cosmic/backend/internal/application/exploration"
	"github.com/cosmic/backend/internal/infrastructure/logger"
	"github.com/cosmic/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MissionHandler handles the /missions endpoints
type MissionHandler struct {
	BaseHandler
	missionService *explorationapp.MissionService
}

// NewMissionHandler creates a new MissionHandler
func NewMissionHandler(missionService *explorationapp.MissionService) *MissionHandler {
	return &MissionHandler{
		missionService: missionService,
	}
}

// Create handles POST /missions. On success the response is the planet the
// new mission targets, not the mission. Every failure is reported as a
// validation error.
func (h *MissionHandler) Create(c *gin.Context) {
	var req explorationapp.CreateMissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.L(c.Request.Context()).Debug("Rejected mission payload",
			zap.Strings("fields", middleware.ValidationFields(err)),
			zap.Error(err),
		)
		h.BadRequest(c, msgValidation)
		return
	}

	planet, err := h.missionService.Create(c.Request.Context(), req)
	if err != nil {
		h.rejectWith(c, err, msgValidation)
		return
	}
	c.JSON(http.StatusCreated, planet)
}
