// Package apikeyhdl - handler khóa API: phát hành, liệt kê, thu hồi.
package apikeyhdl

import (
	"fmt"

	apikeydto "meta_booking/internal/api/apikey/dto"
	models "meta_booking/internal/api/apikey/models"
	apikeysvc "meta_booking/internal/api/apikey/services"
	authsvc "meta_booking/internal/api/auth/services"
	basehdl "meta_booking/internal/api/base/handler"
	"meta_booking/internal/common"
	"meta_booking/internal/utility"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ApiKeyHandler xử lý các route liên quan đến khóa API
type ApiKeyHandler struct {
	*basehdl.BaseHandler[models.ApiKey, apikeydto.ApiKeyCreateInput, apikeydto.ApiKeyCreateInput]
	ApiKeyService *apikeysvc.ApiKeyService
}

// NewApiKeyHandler tạo instance mới của ApiKeyHandler
func NewApiKeyHandler() (*ApiKeyHandler, error) {
	apiKeyService, err := apikeysvc.NewApiKeyService()
	if err != nil {
		return nil, fmt.Errorf("failed to create api key service: %v", err)
	}
	return &ApiKeyHandler{
		BaseHandler:   basehdl.NewBaseHandler[models.ApiKey, apikeydto.ApiKeyCreateInput, apikeydto.ApiKeyCreateInput](apiKeyService),
		ApiKeyService: apiKeyService,
	}, nil
}

// HandleCreate phát hành một khóa API mới cho user đang đăng nhập.
// Bản rõ của khóa chỉ xuất hiện trong response này, không lưu ở đâu khác.
func (h *ApiKeyHandler) HandleCreate(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		userIDStr, ok := c.Locals("user_id").(string)
		if !ok || userIDStr == "" {
			return h.HandleResponse(c, nil, common.ErrTokenMissing)
		}

		input := new(apikeydto.ApiKeyCreateInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			return h.HandleResponse(c, nil, err)
		}
		if err := h.ValidateInput(input); err != nil {
			return h.HandleResponse(c, nil, err)
		}

		created, plainKey, err := h.ApiKeyService.CreateKey(c.UserContext(), utility.String2ObjectID(userIDStr), input.Name)
		if err != nil {
			return h.HandleResponse(c, nil, err)
		}
		return h.HandleResponse(c, fiber.Map{
			"apiKey": created,
			"key":    plainKey,
		}, nil)
	})
}

// HandleList liệt kê khóa của user đang đăng nhập.
// Administrator có thể liệt kê khóa của user khác qua query ?userId=.
func (h *ApiKeyHandler) HandleList(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		userIDStr, ok := c.Locals("user_id").(string)
		if !ok || userIDStr == "" {
			return h.HandleResponse(c, nil, common.ErrTokenMissing)
		}
		ownerID := utility.String2ObjectID(userIDStr)

		if targetStr := c.Query("userId"); targetStr != "" && targetStr != userIDStr {
			isAdmin, err := authsvc.IsUserAdministrator(c.UserContext(), ownerID)
			if err != nil {
				return h.HandleResponse(c, nil, err)
			}
			if !isAdmin {
				return h.HandleResponse(c, nil, common.ErrPermissionDenied)
			}
			targetID, err := primitive.ObjectIDFromHex(targetStr)
			if err != nil {
				return h.HandleResponse(c, nil, common.ErrInvalidFormat)
			}
			ownerID = targetID
		}

		keys, err := h.ApiKeyService.ListForUser(c.UserContext(), ownerID)
		return h.HandleResponse(c, keys, err)
	})
}

// HandleDelete thu hồi một khóa API. User thường chỉ xóa được khóa của mình,
// Administrator xóa được khóa bất kỳ.
func (h *ApiKeyHandler) HandleDelete(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		userIDStr, ok := c.Locals("user_id").(string)
		if !ok || userIDStr == "" {
			return h.HandleResponse(c, nil, common.ErrTokenMissing)
		}

		keyID, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return h.HandleResponse(c, nil, common.ErrInvalidFormat)
		}

		ownerID := utility.String2ObjectID(userIDStr)
		filter := bson.M{"_id": keyID, "userId": ownerID}

		isAdmin, err := authsvc.IsUserAdministrator(c.UserContext(), ownerID)
		if err == nil && isAdmin {
			filter = bson.M{"_id": keyID}
		}

		err = h.ApiKeyService.DeleteOne(c.UserContext(), filter)
		return h.HandleResponse(c, fiber.Map{"deleted": true}, err)
	})
}
