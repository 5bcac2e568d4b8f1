package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"soundvibe/compatibility-api/internal/services"
)

type CompatibilityHandler struct {
	scorer services.CompatibilityService
}

func NewCompatibilityHandler(scorer services.CompatibilityService) *CompatibilityHandler {
	return &CompatibilityHandler{
		scorer: scorer,
	}
}

// HandleCalculate handles POST /compatibility
func (h *CompatibilityHandler) HandleCalculate(c *fiber.Ctx) error {
	// The body is decoded regardless of Content-Type; callers of the old
	// function endpoint do not always set it.
	req, err := services.DecodeCompatibilityRequest(c.Body())
	if err != nil {
		log.Printf("⚠️  Rejected compatibility request: %v\n", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	result := h.scorer.Score(*req.Profile1, *req.Profile2)

	return c.Status(fiber.StatusOK).JSON(result)
}
