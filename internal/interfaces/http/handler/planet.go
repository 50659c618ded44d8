package handler

import (
	"errors"
	"net/http"

	explorationapp "github.com/cosmic/backend/internal/application/exploration"
	"github.com/gin-gonic/gin"
)

// PlanetHandler handles the /planets endpoints
type PlanetHandler struct {
	BaseHandler
	planetService *explorationapp.PlanetService
}

// NewPlanetHandler creates a new PlanetHandler
func NewPlanetHandler(planetService *explorationapp.PlanetService) *PlanetHandler {
	return &PlanetHandler{
		planetService: planetService,
	}
}

// List handles GET /planets
func (h *PlanetHandler) List(c *gin.Context) {
	planets, err := h.planetService.List(c.Request.Context())
	if err != nil {
		h.InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, planets)
}

// ListScientists handles GET /planets/:id/scientists
func (h *PlanetHandler) ListScientists(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.NotFound(c, msgPlanetNotFound)
		return
	}

	scientists, err := h.planetService.ListScientists(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, explorationapp.ErrPlanetNotFound) {
			h.NotFound(c, msgPlanetNotFound)
			return
		}
		h.InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, scientists)
}
