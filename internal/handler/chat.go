package handler

import (
	"errors"

	"gametop-backend/internal/model"
	"gametop-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ChatHandler struct {
	chatSvc *service.ChatService
}

func NewChatHandler(chatSvc *service.ChatService) *ChatHandler {
	return &ChatHandler{chatSvc: chatSvc}
}

// POST /api/v1/chat/sessions
func (h *ChatHandler) CreateSession(c *fiber.Ctx) error {
	id := h.chatSvc.CreateSession()
	return c.Status(201).JSON(fiber.Map{"session_id": id})
}

// GET /api/v1/chat/sessions/:id/messages
func (h *ChatHandler) GetMessages(c *fiber.Ctx) error {
	msgs, err := h.chatSvc.Messages(c.Params("id"))
	if err != nil {
		return chatError(c, err)
	}
	return c.JSON(fiber.Map{"messages": msgs})
}

// Send posts one user message and waits for the assistant reply. While a
// reply is outstanding further sends are rejected with 409; the client keeps
// its input disabled for the duration.
// POST /api/v1/chat/sessions/:id/messages
func (h *ChatHandler) Send(c *fiber.Ctx) error {
	var req model.ChatSendRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}

	reply, transcript, err := h.chatSvc.Send(c.Context(), c.Params("id"), req.Text)
	if err != nil {
		return chatError(c, err)
	}

	return c.JSON(model.ChatSendResponse{Reply: reply, Messages: transcript})
}

// DELETE /api/v1/chat/sessions/:id
func (h *ChatHandler) Close(c *fiber.Ctx) error {
	if err := h.chatSvc.Close(c.Params("id")); err != nil {
		return chatError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func chatError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return c.Status(404).JSON(fiber.Map{"error": "chat session not found"})
	case errors.Is(err, service.ErrSessionBusy):
		return c.Status(409).JSON(fiber.Map{"error": "a reply is still pending"})
	case errors.Is(err, service.ErrEmptyMessage):
		return c.Status(400).JSON(fiber.Map{"error": "text is required"})
	default:
		return c.Status(500).JSON(fiber.Map{"error": "internal server error"})
	}
}
