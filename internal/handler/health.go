package handler

import (
	"gametop-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	catalogRepo *repository.CatalogRepository
	chatEnabled bool
}

func NewHealthHandler(catalogRepo *repository.CatalogRepository, chatEnabled bool) *HealthHandler {
	return &HealthHandler{catalogRepo: catalogRepo, chatEnabled: chatEnabled}
}

func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Ready reports the catalog size and whether the chat is degraded to the
// fallback reply (no API key configured).
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	chat := "ok"
	if !h.chatEnabled {
		chat = "degraded"
	}
	return c.JSON(fiber.Map{
		"status": "ready",
		"games":  h.catalogRepo.Count(),
		"chat":   chat,
	})
}
