package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/shipra/internal/models"
	"github.com/example/shipra/internal/store"
)

// FleetHandler serves the read-only location and vehicle registry.
type FleetHandler struct {
	st *store.Store
}

// NewFleetHandler constructs a FleetHandler.
func NewFleetHandler(st *store.Store) *FleetHandler {
	return &FleetHandler{st: st}
}

// ListLocations returns every hub.
func (h *FleetHandler) ListLocations(c *fiber.Ctx) error {
	locations, err := h.st.Locations.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(locations)
}

// ListAvailableBirds returns birds that are ready to fly.
func (h *FleetHandler) ListAvailableBirds(c *fiber.Ctx) error {
	birds, err := h.st.Birds.ListByStatus(c.Context(), models.BirdStatusReady)
	if err != nil {
		return err
	}
	return c.JSON(birds)
}
