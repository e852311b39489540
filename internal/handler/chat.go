package handler

import (
	"disasterguard/internal/dto"
	"disasterguard/internal/middleware"
	"disasterguard/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ChatHandler handles learning-assistant chat requests
type ChatHandler struct {
	service service.ChatService
}

// NewChatHandler creates a new ChatHandler instance
func NewChatHandler(service service.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

// Ask godoc
// @Summary Ask the learning assistant
// @Description Sends a message and returns the assistant's reply. Completion
// @Description failures surface as a friendly fallback reply, never an error.
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "User message"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /chat [post]
func (h *ChatHandler) Ask(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "INVALID_REQUEST",
		})
	}

	response, err := h.service.Ask(c.Context(), middleware.SessionFromCtx(c), req.Message)
	if err != nil {
		return err
	}
	return c.JSON(response)
}

// History godoc
// @Summary Get the session's chat history
// @Tags chat
// @Produce json
// @Success 200 {object} dto.ChatHistoryResponse
// @Router /chat/history [get]
func (h *ChatHandler) History(c *fiber.Ctx) error {
	return c.JSON(h.service.History(middleware.SessionFromCtx(c)))
}

// Clear godoc
// @Summary Clear the session's chat history
// @Tags chat
// @Success 204
// @Router /chat/clear [post]
func (h *ChatHandler) Clear(c *fiber.Ctx) error {
	h.service.Clear(middleware.SessionFromCtx(c))
	return c.SendStatus(fiber.StatusNoContent)
}

// QuickQuestions godoc
// @Summary List the quick-question prompts
// @Tags chat
// @Produce json
// @Success 200 {object} dto.QuickQuestionsResponse
// @Router /chat/questions [get]
func (h *ChatHandler) QuickQuestions(c *fiber.Ctx) error {
	return c.JSON(h.service.QuickQuestions())
}
