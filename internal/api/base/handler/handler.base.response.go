package basehdl

import (
	"encoding/json"
	"runtime/debug"

	"meta_booking/internal/common"
	"meta_booking/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// JSONResponse ghi response ra client dưới dạng JSON với charset utf-8.
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		c.Status(common.StatusInternalServerError)
		c.Set("Content-Type", "application/json; charset=utf-8")
		return c.SendString(`{"code":500,"message":"Lỗi serialize dữ liệu","status":"error"}`)
	}

	c.Status(statusCode)
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Send(jsonData)
}

// HandleResponse xử lý response chung cho tất cả các handler.
// Nếu err là *common.Error thì trả về đúng mã lỗi và thông điệp của lỗi đó,
// ngược lại trả về lỗi hệ thống 500.
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleResponse(c fiber.Ctx, data interface{}, err error) error {
	return HandleResponse(c, data, err)
}

// HandleResponse bản dùng chung cho các handler không kế thừa BaseHandler.
func HandleResponse(c fiber.Ctx, data interface{}, err error) error {
	if err != nil {
		if customErr, ok := err.(*common.Error); ok {
			return JSONResponse(c, customErr.StatusCode, fiber.Map{
				"code":    customErr.Code.Code,
				"message": customErr.Message,
				"details": customErr.Details,
				"status":  "error",
			})
		}

		logger.GetAppLogger().WithError(err).Error("Lỗi không xác định khi xử lý request")
		return JSONResponse(c, common.StatusInternalServerError, fiber.Map{
			"code":    common.ErrCodeDatabase.Code,
			"message": err.Error(),
			"status":  "error",
		})
	}

	return JSONResponse(c, common.StatusOK, fiber.Map{
		"code":    common.StatusOK,
		"message": common.MsgSuccess,
		"data":    data,
		"status":  "success",
	})
}

// SafeHandler bọc handler với recover để tránh panic làm sập server.
func SafeHandler(c fiber.Ctx, fn func() error) error {
	defer func() {
		if r := recover(); r != nil {
			logger.GetAppLogger().Errorf("Panic trong handler: %v", r)
			debug.PrintStack()
			_ = JSONResponse(c, common.StatusInternalServerError, fiber.Map{
				"code":    common.ErrCodeDatabase.Code,
				"message": "Lỗi hệ thống không xác định",
				"status":  "error",
			})
		}
	}()
	return fn()
}

// SafeHandlerWrapper chuyển một handler thành handler an toàn với panic.
func SafeHandlerWrapper(fn func(c fiber.Ctx) error) fiber.Handler {
	return func(c fiber.Ctx) error {
		return SafeHandler(c, func() error {
			return fn(c)
		})
	}
}
