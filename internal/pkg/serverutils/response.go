package serverutils

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// WebResponse is the envelope used for non-2xx results. Successful chat
// responses are returned as their DTO directly to keep the public API shape.
type WebResponse struct {
	Success bool        `json:"success"`
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func ErrorResponse(code int, message string) WebResponse {
	return WebResponse{
		Success: false,
		Code:    code,
		Message: message,
	}
}

func SuccessResponse(data interface{}) WebResponse {
	return WebResponse{
		Success: true,
		Code:    fiber.StatusOK,
		Message: "OK",
		Data:    data,
	}
}

// ErrorHandlerMiddleware converts panics and unhandled errors into a generic
// 500 envelope without leaking internals.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[ERROR] Recovered from panic: %v", r)
				_ = ctx.Status(fiber.StatusInternalServerError).
					JSON(ErrorResponse(fiber.StatusInternalServerError, "Internal server error"))
			}
		}()
		return ctx.Next()
	}
}
