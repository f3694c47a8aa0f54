// Package router đăng ký các route thuộc domain apikey.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	apikeyhdl "meta_booking/internal/api/apikey/handlers"
	"meta_booking/internal/api/middleware"
	apirouter "meta_booking/internal/api/router"
)

// Register đăng ký route khóa API lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	apiKeyHandler, err := apikeyhdl.NewApiKeyHandler()
	if err != nil {
		return fmt.Errorf("failed to create api key handler: %w", err)
	}

	apirouter.RegisterRouteWithMiddleware(v1, "/api-keys", "POST", "/", []fiber.Handler{middleware.AuthMiddleware("ApiKey.Insert")}, apiKeyHandler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(v1, "/api-keys", "GET", "/", []fiber.Handler{middleware.AuthMiddleware("ApiKey.Read")}, apiKeyHandler.HandleList)
	apirouter.RegisterRouteWithMiddleware(v1, "/api-keys", "DELETE", "/:id", []fiber.Handler{middleware.AuthMiddleware("ApiKey.Delete")}, apiKeyHandler.HandleDelete)
	return nil
}
