// Package basehdl chứa nền tảng chung cho các HTTP handler:
// chuẩn hóa response, parse/validate input, phân trang và viewer context.
package basehdl

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"runtime/debug"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vid_tube/internal/common"
	"vid_tube/internal/global"
	"vid_tube/internal/logger"
)

// BaseHandler cung cấp các phương thức dùng chung cho domain handlers
type BaseHandler struct{}

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// SafeHandler bọc các handler với recover để bắt panic và xử lý lỗi an toàn.
// Đảm bảo server luôn trả về response cho client, kể cả khi có panic xảy ra.
func (h *BaseHandler) SafeHandler(c fiber.Ctx, handler func() error) error {
	defer func() {
		if r := recover(); r != nil {
			debug.PrintStack()
			logger.WithRequest(c).Errorf("Panic trong handler: %v", r)

			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Lỗi hệ thống không mong muốn: %v", r),
				common.StatusInternalServerError,
				nil,
			))
		}
	}()
	return handler()
}

// HandleResponse xử lý và chuẩn hóa response trả về cho client.
// Thành công: {statusCode, data, message, success: true}.
// Lỗi: {statusCode, code, message, details, success: false}.
func (h *BaseHandler) HandleResponse(c fiber.Ctx, data interface{}, err error) {
	if err != nil {
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
		// Lỗi không thuộc taxonomy: internal server error
		JSONResponse(c, common.StatusInternalServerError, fiber.Map{
			"statusCode": common.StatusInternalServerError,
			"code":       common.ErrCodeInternalServer.Code,
			"message":    err.Error(),
			"success":    false,
		})
		return
	}

	JSONResponse(c, common.StatusOK, fiber.Map{
		"statusCode": common.StatusOK,
		"data":       data,
		"message":    common.MsgSuccess,
		"success":    true,
	})
}

// HandleCreated như HandleResponse nhưng trả về 201 khi thành công
func (h *BaseHandler) HandleCreated(c fiber.Ctx, data interface{}) {
	JSONResponse(c, common.StatusCreated, fiber.Map{
		"statusCode": common.StatusCreated,
		"data":       data,
		"message":    common.MsgCreated,
		"success":    true,
	})
}

// validateInput validate struct input bằng validator singleton
func (h *BaseHandler) validateInput(input interface{}) error {
	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationErr, common.StatusBadRequest, err.Error())
	}
	return nil
}

// ParseRequestBody parse và validate dữ liệu từ request body.
// Sử dụng json.Decoder với UseNumber() để xử lý chính xác các số.
func (h *BaseHandler) ParseRequestBody(c fiber.Ctx, input interface{}) error {
	body := c.Body()
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	if err := decoder.Decode(input); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgValidationErr, common.StatusBadRequest, err.Error())
	}

	return h.validateInput(input)
}

// ParsePagination đọc page/limit từ query string.
// Giá trị thiếu hoặc không parse được rơi về mặc định (1, 10) thay vì báo lỗi.
func (h *BaseHandler) ParsePagination(c fiber.Ctx) (int64, int64) {
	page, err := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	if err != nil || page <= 0 {
		page = 1
	}

	limit, err := strconv.ParseInt(c.Query("limit", "10"), 10, 64)
	if err != nil || limit <= 0 {
		limit = 10
	}

	return page, limit
}

// ParamObjectID đọc và validate một path param dạng ObjectID
func (h *BaseHandler) ParamObjectID(c fiber.Ctx, name string) (primitive.ObjectID, error) {
	id := c.Params(name)
	if !primitive.IsValidObjectID(id) {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", id),
			common.StatusBadRequest,
			nil,
		)
	}
	objectID, _ := primitive.ObjectIDFromHex(id)
	return objectID, nil
}

// GetViewerID trả về ObjectID của viewer hiện tại.
// Viewer ẩn danh (không đăng nhập) trả về NilObjectID — các flag isLiked/isSubscribed
// khi đó luôn là false.
func (h *BaseHandler) GetViewerID(c fiber.Ctx) primitive.ObjectID {
	userID := c.Locals("user_id")
	if userID == nil {
		return primitive.NilObjectID
	}
	uid, ok := userID.(string)
	if !ok || !primitive.IsValidObjectID(uid) {
		return primitive.NilObjectID
	}
	objectID, _ := primitive.ObjectIDFromHex(uid)
	return objectID
}

// RequireUserID trả về ObjectID của user đã xác thực, lỗi 401 nếu chưa đăng nhập.
// Dùng trong các mutation handler; middleware auth thường đã chặn trước.
func (h *BaseHandler) RequireUserID(c fiber.Ctx) (primitive.ObjectID, error) {
	viewerID := h.GetViewerID(c)
	if viewerID.IsZero() {
		return primitive.NilObjectID, common.ErrTokenMissing
	}
	return viewerID, nil
}
