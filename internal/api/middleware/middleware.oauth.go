// OAuthScopeMiddleware bảo vệ endpoint bằng access token kiểu OAuth:
// verify JWT, kiểm tra token_type và đủ scope yêu cầu, gắn chủ thể vào Locals.
package middleware

import (
	"strings"

	basehdl "meta_booking/internal/api/base/handler"
	oauthsvc "meta_booking/internal/api/oauth/services"
	"meta_booking/internal/common"
	"meta_booking/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// OAuthScopeMiddleware trả về middleware yêu cầu access token có đủ các scope chỉ định.
// Service được tạo một lần lúc đăng ký route.
func OAuthScopeMiddleware(requiredScopes ...string) fiber.Handler {
	oauthService, initErr := oauthsvc.NewOAuthService()

	return func(c fiber.Ctx) error {
		if initErr != nil {
			return basehdl.HandleResponse(c, nil, common.NewError(common.ErrCodeInternalServer, "Không thể khởi tạo oauth service", common.StatusInternalServerError, initErr))
		}

		authHeader := c.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return basehdl.HandleResponse(c, nil, common.ErrTokenMissing)
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		subject, err := oauthService.Authorize(c.UserContext(), token, requiredScopes)
		if err != nil {
			logger.GetAppLogger().WithError(err).Warn("❌ [AUTH] Access token bị từ chối")
			return basehdl.HandleResponse(c, nil, err)
		}

		c.Locals("oauth_subject_id", subject.ID.Hex())
		c.Locals("oauth_scopes", subject.Scopes)
		return c.Next()
	}
}
