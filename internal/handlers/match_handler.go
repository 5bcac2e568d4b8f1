package handlers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"soundvibe/compatibility-api/internal/models"
	"soundvibe/compatibility-api/internal/repositories"
	"soundvibe/compatibility-api/internal/services"
)

type MatchHandler struct {
	matcher      services.MatcherService
	defaultLimit int
	maxLimit     int
}

func NewMatchHandler(matcher services.MatcherService, defaultLimit, maxLimit int) *MatchHandler {
	if maxLimit < 1 {
		maxLimit = 1
	}
	return &MatchHandler{
		matcher:      matcher,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

// HandleGetMatches handles GET /profiles/:id/matches
func (h *MatchHandler) HandleGetMatches(c *fiber.Ctx) error {
	profileID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid profile ID format",
		})
	}

	limit := h.defaultLimit
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "limit must be an integer",
			})
		}
	}
	limit = max(1, min(limit, h.maxLimit))

	minScore := 0
	if raw := c.Query("min_score"); raw != "" {
		minScore, err = strconv.Atoi(raw)
		if err != nil || minScore < 0 || minScore > services.MaxTotalScore {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "min_score must be an integer between 0 and 100",
			})
		}
	}

	matches, err := h.matcher.FindMatches(c.UserContext(), profileID, services.MatchOptions{
		Limit:    limit,
		MinScore: minScore,
	})
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrProfileNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Profile not found",
			})
		case errors.Is(err, services.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		log.Printf("❌ Failed to find matches for %s: %v\n", profileID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to find matches",
		})
	}

	return c.JSON(models.MatchesResponse{
		ProfileID: profileID.String(),
		Matches:   matches,
	})
}
