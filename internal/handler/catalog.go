package handler

import (
	"errors"
	"strings"

	"gametop-backend/internal/i18n"
	"gametop-backend/internal/model"
	"gametop-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	catalogSvc *service.CatalogService
}

func NewCatalogHandler(catalogSvc *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogSvc: catalogSvc}
}

// GET /api/v1/catalog/games?search=&sort=
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	query := c.Query("search", "")
	key := model.SortKey(c.Query("sort", string(model.SortDefault)))

	games, err := h.catalogSvc.View(query, key)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSortKey) {
			return c.Status(400).JSON(fiber.Map{"error": "sort must be one of: default, name-asc, name-desc, packages"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "failed to list games"})
	}

	resp := fiber.Map{
		"games": games,
		"total": len(games),
	}
	if len(games) == 0 {
		// The grid must explain an empty result, query text included.
		resp["message"] = i18n.NoGamesFound(i18n.LanguageArabic, strings.TrimSpace(query))
	}
	return c.JSON(resp)
}

// GET /api/v1/catalog/games/:id
func (h *CatalogHandler) Get(c *fiber.Ctx) error {
	game, ok := h.catalogSvc.Get(c.Params("id"))
	if !ok {
		return c.Status(404).JSON(fiber.Map{"error": "game not found"})
	}
	return c.JSON(game)
}
