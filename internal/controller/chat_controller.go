package controller

import (
	"errors"

	"faq-assistant-be/internal/dto"
	"faq-assistant-be/internal/pkg/logger"
	"faq-assistant-be/internal/pkg/serverutils"
	"faq-assistant-be/internal/service"
	"faq-assistant-be/pkg/knowledge"
	"faq-assistant-be/pkg/llm"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
}

type chatController struct {
	service   service.IChatService
	validate  *validator.Validate
	sysLogger logger.ILogger
}

func NewChatController(service service.IChatService, sysLogger logger.ILogger) IChatController {
	return &chatController{
		service:   service,
		validate:  validator.New(),
		sysLogger: sysLogger,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/bot")
	h.Post("/chat", c.Chat)
}

func (c *chatController) Chat(ctx *fiber.Ctx) error {
	var request dto.ChatRequest
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
	}

	// Absent max_references means "use the default"; an explicit value must
	// sit in [1,10].
	if request.MaxReferences == nil {
		def := dto.DefaultMaxReferences
		request.MaxReferences = &def
	}
	if err := c.validate.Struct(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.Ask(ctx.Context(), &request)
	if err != nil {
		return c.mapError(ctx, err)
	}
	return ctx.JSON(res)
}

// mapError keeps the taxonomy visible at the boundary: bad knowledge source
// and missing provider credential are both service-unavailable, everything
// else is a generic internal error without detail.
func (c *chatController) mapError(ctx *fiber.Ctx, err error) error {
	var loadErr *knowledge.LoadError
	if errors.As(err, &loadErr) {
		c.sysLogger.Error("CHATBOT", "Knowledge base unavailable", map[string]interface{}{
			"error": err.Error(),
		})
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(serverutils.ErrorResponse(503, err.Error()))
	}

	var confErr *llm.ConfigurationError
	if errors.As(err, &confErr) {
		c.sysLogger.Error("CHATBOT", "Generation provider not configured", map[string]interface{}{
			"error": err.Error(),
		})
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(serverutils.ErrorResponse(503, err.Error()))
	}

	c.sysLogger.Error("CHATBOT", "Unexpected error in chat endpoint", map[string]interface{}{
		"error": err.Error(),
	})
	return ctx.Status(fiber.StatusInternalServerError).
		JSON(serverutils.ErrorResponse(500, "Unexpected error while processing the chat request."))
}
