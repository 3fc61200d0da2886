package handler

import (
	"gametop-backend/internal/i18n"

	"github.com/gofiber/fiber/v2"
)

type I18nHandler struct{}

func NewI18nHandler() *I18nHandler {
	return &I18nHandler{}
}

// GET /api/v1/i18n/:lang
func (h *I18nHandler) Strings(c *fiber.Ctx) error {
	lang, ok := i18n.Parse(c.Params("lang"))
	if !ok {
		return c.Status(404).JSON(fiber.Map{"error": "unsupported language"})
	}
	table, _ := i18n.Strings(lang)
	return c.JSON(fiber.Map{"language": lang, "strings": table})
}
