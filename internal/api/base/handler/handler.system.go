package basehdl

import (
	"context"
	"time"

	"meta_booking/internal/common"
	"meta_booking/internal/global"

	"github.com/gofiber/fiber/v3"
)

// SystemHandler xử lý các route hệ thống (health check).
type SystemHandler struct{}

// NewSystemHandler tạo mới SystemHandler
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

// HandleHealth kiểm tra tình trạng hệ thống.
// Ping MongoDB, nếu lỗi trả về 503 với trạng thái degraded.
func (h *SystemHandler) HandleHealth(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		mongoStatus := "ok"
		statusCode := common.StatusOK
		overall := "healthy"

		if global.MongoDB_Session == nil {
			mongoStatus = "not_connected"
			statusCode = common.StatusServiceUnavailable
			overall = "degraded"
		} else if err := global.MongoDB_Session.Ping(ctx, nil); err != nil {
			mongoStatus = "unreachable"
			statusCode = common.StatusServiceUnavailable
			overall = "degraded"
		}

		return JSONResponse(c, statusCode, fiber.Map{
			"status":    overall,
			"timestamp": time.Now().UnixMilli(),
			"services": fiber.Map{
				"mongodb": mongoStatus,
			},
		})
	})
}
