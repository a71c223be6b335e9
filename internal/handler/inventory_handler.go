package handler

import (
	"go-inventory-tracker/internal/model"
	"go-inventory-tracker/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InventoryHandler struct {
	service service.InventoryService
}

func NewInventoryHandler(s service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

type stockRequest struct {
	Delta *int `json:"delta"`
}

func (h *InventoryHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.service.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}

// GetRecentProducts returns the newest products.
// Query params: limit (default 5)
func (h *InventoryHandler) GetRecentProducts(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", service.DefaultRecentLimit)
	products, err := h.service.Recent(c.UserContext(), limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}

func (h *InventoryHandler) CreateProduct(c *fiber.Ctx) error {
	var draft model.ProductDraft
	if err := c.BodyParser(&draft); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	product, err := h.service.Add(c.UserContext(), &draft)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Product created", "data": product})
}

// UpdateProduct replaces a product. The id in the path wins over the body.
func (h *InventoryHandler) UpdateProduct(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	product.ID = c.Params("id")

	updated, err := h.service.Update(c.UserContext(), product)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"updated": updated})
}

func (h *InventoryHandler) DeleteProduct(c *fiber.Ctx) error {
	deleted, err := h.service.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": deleted})
}

// AdjustStock applies {"delta": n} to the product quantity, clamped at zero.
func (h *InventoryHandler) AdjustStock(c *fiber.Ctx) error {
	var req stockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.Delta == nil {
		return c.Status(400).JSON(fiber.Map{"error": "delta is required"})
	}

	product, found, err := h.service.AdjustStock(c.UserContext(), c.Params("id"), *req.Delta)
	if err != nil {
		return respondError(c, err)
	}
	if !found {
		return c.Status(404).JSON(fiber.Map{"error": "Product not found"})
	}

	return c.JSON(fiber.Map{"message": "Stock updated", "data": product})
}
