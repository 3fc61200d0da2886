package handler

import (
	"errors"
	"log"

	"gametop-backend/internal/model"
	"gametop-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	orderSvc *service.OrderService
}

func NewOrderHandler(orderSvc *service.OrderService) *OrderHandler {
	return &OrderHandler{orderSvc: orderSvc}
}

// Validate checks a draft without dispatching it. The client uses this to
// drive the disabled state of the submit button.
// POST /api/v1/orders/validate
func (h *OrderHandler) Validate(c *fiber.Ctx) error {
	var draft model.OrderDraft
	if err := c.BodyParser(&draft); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}

	if _, _, err := h.orderSvc.Validate(&draft); err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "game not found"})
		}
		return c.JSON(fiber.Map{"valid": false, "error": err.Error()})
	}
	return c.JSON(fiber.Map{"valid": true})
}

// Dispatch renders a valid draft into the order message and its WhatsApp
// deep link. The draft itself is discarded afterwards.
// POST /api/v1/orders/dispatch
func (h *OrderHandler) Dispatch(c *fiber.Ctx) error {
	var draft model.OrderDraft
	if err := c.BodyParser(&draft); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}

	dispatch, err := h.orderSvc.Dispatch(&draft)
	if err != nil {
		return orderError(c, err)
	}

	log.Printf("[ORDER] dispatched: game=%s package=%s", draft.GameID, draft.PackageID)
	return c.JSON(dispatch)
}

func orderError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return c.Status(404).JSON(fiber.Map{"error": "game not found"})
	case errors.Is(err, service.ErrPackageRequired),
		errors.Is(err, service.ErrPackageUnknown),
		errors.Is(err, service.ErrGameNameRequired),
		errors.Is(err, service.ErrCountryRequired),
		errors.Is(err, service.ErrCityRequired),
		errors.Is(err, service.ErrEmailRequired):
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	default:
		log.Printf("[ORDER] dispatch error: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "internal server error"})
	}
}
