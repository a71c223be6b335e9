package handler

import (
	"context"
	"time"

	"go-inventory-tracker/internal/model"

	"github.com/gofiber/fiber/v2"
)

// StoreReader is anything that can read the product collection.
type StoreReader interface {
	List(ctx context.Context) ([]model.Product, error)
}

// Health reports "ok" when the product store answers within two seconds and
// "degraded" with 503 otherwise.
func Health(store StoreReader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		if _, err := store.List(ctx); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "store": "unreachable"})
		}
		return c.JSON(fiber.Map{"status": "ok", "store": "ok"})
	}
}
