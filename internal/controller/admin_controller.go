package controller

import (
	"faq-assistant-be/internal/pkg/logger"
	"faq-assistant-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

// IAdminController exposes the structured log file for operators.
type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	GetLogs(ctx *fiber.Ctx) error
	GetLogById(ctx *fiber.Ctx) error
}

type adminController struct {
	sysLogger logger.ILogger
}

func NewAdminController(sysLogger logger.ILogger) IAdminController {
	return &adminController{sysLogger: sysLogger}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin", serverutils.JwtMiddleware)
	h.Get("/logs", c.GetLogs)
	h.Get("/logs/:id", c.GetLogById)
}

func (c *adminController) GetLogs(ctx *fiber.Ctx) error {
	level := ctx.Query("level", "")
	limit := ctx.QueryInt("limit", 50)
	offset := ctx.QueryInt("offset", 0)

	logs, err := c.sysLogger.GetLogs(level, limit, offset)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse(logs))
}

func (c *adminController) GetLogById(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "log id is required"))
	}

	entry, err := c.sysLogger.GetLogById(id)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "log not found"))
	}
	return ctx.JSON(serverutils.SuccessResponse(entry))
}
