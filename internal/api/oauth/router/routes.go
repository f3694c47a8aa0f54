// Package router đăng ký các route thuộc domain oauth.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	oauthhdl "meta_booking/internal/api/oauth/handlers"
	apirouter "meta_booking/internal/api/router"
)

// Register đăng ký route introspect lên v1.
// Introspect tự xác thực bằng chính token trong request, không cần middleware.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	oauthHandler, err := oauthhdl.NewOAuthHandler()
	if err != nil {
		return fmt.Errorf("failed to create oauth handler: %w", err)
	}

	v1.Post("/oauth/introspect", oauthHandler.HandleIntrospect)
	return nil
}
