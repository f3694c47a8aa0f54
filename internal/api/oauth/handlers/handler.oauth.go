// Package oauthhdl - handler introspect access token kiểu OAuth.
package oauthhdl

import (
	"fmt"
	"strings"

	basehdl "meta_booking/internal/api/base/handler"
	oauthsvc "meta_booking/internal/api/oauth/services"
	"meta_booking/internal/common"

	"github.com/gofiber/fiber/v3"
)

// IntrospectInput đầu vào introspect: token trong body hoặc header Authorization
type IntrospectInput struct {
	Token  string   `json:"token"`
	Scopes []string `json:"scopes"`
}

// OAuthHandler xử lý route introspect
type OAuthHandler struct {
	OAuthService *oauthsvc.OAuthService
}

// NewOAuthHandler tạo instance mới của OAuthHandler
func NewOAuthHandler() (*OAuthHandler, error) {
	oauthService, err := oauthsvc.NewOAuthService()
	if err != nil {
		return nil, fmt.Errorf("failed to create oauth service: %v", err)
	}
	return &OAuthHandler{OAuthService: oauthService}, nil
}

// HandleIntrospect verify access token và trả về chủ thể được ủy quyền.
// Token lấy từ body hoặc header Authorization: Bearer.
func (h *OAuthHandler) HandleIntrospect(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		input := new(IntrospectInput)
		if len(c.Body()) > 0 {
			if err := c.Bind().Body(input); err != nil {
				return basehdl.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Body không hợp lệ", common.StatusBadRequest, err))
			}
		}

		token := input.Token
		if token == "" {
			authHeader := c.Get("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}
		if token == "" {
			return basehdl.HandleResponse(c, nil, common.ErrTokenMissing)
		}

		subject, err := h.OAuthService.Authorize(c.UserContext(), token, input.Scopes)
		return basehdl.HandleResponse(c, subject, err)
	})
}
