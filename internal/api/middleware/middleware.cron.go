package middleware

import (
	"strings"

	basehdl "meta_booking/internal/api/base/handler"
	"meta_booking/internal/common"
	"meta_booking/internal/global"
	"meta_booking/internal/logger"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// CronAuthMiddleware bảo vệ các endpoint cron bằng shared secret.
// Scheduler ngoài có thể gửi credential theo một trong các cách:
//   - query ?apiKey=<CRON_API_KEY>
//   - header X-Api-Key: <CRON_API_KEY>
//   - header Authorization: Bearer <CRON_SECRET>
//
// Thiếu hoặc sai credential thì từ chối ngay, không chạy bất kỳ công việc nào.
func CronAuthMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		cfg := global.ServerConfig

		apiKey := c.Query("apiKey")
		if apiKey == "" {
			apiKey = c.Get("X-Api-Key")
		}
		if apiKey != "" && cfg.CronAPIKey != "" && apiKey == cfg.CronAPIKey {
			return c.Next()
		}

		authHeader := c.Get("Authorization")
		if authHeader != "" && cfg.CronSecret != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" && parts[1] == cfg.CronSecret {
				return c.Next()
			}
		}

		logger.GetAppLogger().WithFields(logrus.Fields{
			"path":   c.Path(),
			"method": c.Method(),
		}).Warn("❌ [CRON] Invalid or missing scheduler credential")
		return basehdl.HandleResponse(c, nil, common.ErrCronUnauthorized)
	}
}
