package handler

import (
	"errors"

	"go-inventory-tracker/internal/repository"
	"go-inventory-tracker/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidProduct):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, repository.ErrStoreUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError writes err as {"error": ...}. Validation failures also list
// the offending fields; server-side failures are logged and not echoed.
func respondError(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	body := fiber.Map{"error": err.Error()}

	var verr *service.ValidationError
	if errors.As(err, &verr) {
		body["fields"] = verr.Fields
	}

	switch status {
	case fiber.StatusServiceUnavailable:
		zap.L().Warn("store unavailable", zap.String("path", c.Path()), zap.Error(err))
		body["error"] = "Store unavailable"
	case fiber.StatusInternalServerError:
		zap.L().Error("request failed", zap.String("path", c.Path()), zap.Error(err))
		body["error"] = "Internal Server Error"
	}
	return c.Status(status).JSON(body)
}
