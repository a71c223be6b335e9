package handler

import (
	"go-inventory-tracker/internal/service"
	"go-inventory-tracker/internal/view"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// GetStats returns overview statistics
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.service.GetStats(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}

func (h *DashboardHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetCategories(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(categories)
}

// GetInventory returns the filtered listing with stats and facets.
// Query params: search, category (default "Todas")
func (h *DashboardHandler) GetInventory(c *fiber.Ctx) error {
	var filter view.Filter
	if err := c.QueryParser(&filter); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid query"})
	}

	inventory, err := h.service.GetInventory(c.UserContext(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(inventory)
}
