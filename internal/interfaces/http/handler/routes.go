package handler

import (
	"github.com/cosmic/backend/internal/interfaces/http/router"
)

// ScientistRoutes creates the route group for /scientists
func ScientistRoutes(h *ScientistHandler) *router.DomainGroup {
	group := router.NewDomainGroup("scientists", "/scientists")

	group.GET("", h.List)
	group.POST("", h.Create)
	group.GET("/:id", h.GetByID)
	group.PATCH("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
	group.GET("/:id/planets", h.ListPlanets)

	return group
}

// PlanetRoutes creates the route group for /planets
func PlanetRoutes(h *PlanetHandler) *router.DomainGroup {
	group := router.NewDomainGroup("planets", "/planets")

	group.GET("", h.List)
	group.GET("/:id/scientists", h.ListScientists)

	return group
}

// MissionRoutes creates the route group for /missions
func MissionRoutes(h *MissionHandler) *router.DomainGroup {
	group := router.NewDomainGroup("missions", "/missions")

	group.POST("", h.Create)

	return group
}
