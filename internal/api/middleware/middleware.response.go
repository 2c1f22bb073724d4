package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"vid_tube/internal/common"
)

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// HandleErrorResponse xử lý và trả về error response cho client.
// Tách riêng để tránh import cycle với handler package.
func HandleErrorResponse(c fiber.Ctx, err error) {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		JSONResponse(c, customErr.StatusCode, fiber.Map{
			"statusCode": customErr.StatusCode,
			"code":       customErr.Code.Code,
			"message":    customErr.Message,
			"details":    customErr.Details,
			"success":    false,
		})
		return
	}
	JSONResponse(c, common.StatusInternalServerError, fiber.Map{
		"statusCode": common.StatusInternalServerError,
		"code":       common.ErrCodeInternalServer.Code,
		"message":    err.Error(),
		"success":    false,
	})
}
