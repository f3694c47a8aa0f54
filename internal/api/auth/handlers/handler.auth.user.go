// Package authhdl - handler người dùng: đăng ký, đăng nhập, đăng xuất, profile.
package authhdl

import (
	"fmt"

	authdto "meta_booking/internal/api/auth/dto"
	models "meta_booking/internal/api/auth/models"
	authsvc "meta_booking/internal/api/auth/services"
	basehdl "meta_booking/internal/api/base/handler"
	"meta_booking/internal/common"
	"meta_booking/internal/utility"

	"github.com/gofiber/fiber/v3"
)

// UserHandler xử lý các route liên quan đến người dùng
type UserHandler struct {
	*basehdl.BaseHandler[models.User, authdto.UserCreateInput, authdto.UserUpdateInput]
	UserService *authsvc.UserService
}

// NewUserHandler tạo instance mới của UserHandler
func NewUserHandler() (*UserHandler, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	return &UserHandler{
		BaseHandler: basehdl.NewBaseHandler[models.User, authdto.UserCreateInput, authdto.UserUpdateInput](userService),
		UserService: userService,
	}, nil
}

// HandleRegister đăng ký tài khoản mới
func (h *UserHandler) HandleRegister(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		input := new(authdto.UserRegisterInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			return h.HandleResponse(c, nil, err)
		}
		if err := h.ValidateInput(input); err != nil {
			return h.HandleResponse(c, nil, err)
		}

		user, err := h.UserService.Register(c.UserContext(), input)
		return h.HandleResponse(c, user, err)
	})
}

// HandleLogin đăng nhập bằng email + mật khẩu
func (h *UserHandler) HandleLogin(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		input := new(authdto.UserLoginInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			return h.HandleResponse(c, nil, err)
		}
		if err := h.ValidateInput(input); err != nil {
			return h.HandleResponse(c, nil, err)
		}

		user, err := h.UserService.Login(c.UserContext(), input)
		return h.HandleResponse(c, user, err)
	})
}

// HandleLogout đăng xuất thiết bị hiện tại (theo hwid)
func (h *UserHandler) HandleLogout(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		userIDStr, ok := c.Locals("user_id").(string)
		if !ok || userIDStr == "" {
			return h.HandleResponse(c, nil, common.ErrTokenMissing)
		}

		input := new(authdto.UserLogoutInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			return h.HandleResponse(c, nil, err)
		}
		if err := h.ValidateInput(input); err != nil {
			return h.HandleResponse(c, nil, err)
		}

		err := h.UserService.Logout(c.UserContext(), utility.String2ObjectID(userIDStr), input)
		return h.HandleResponse(c, nil, err)
	})
}

// HandleProfile trả về thông tin user đang đăng nhập
func (h *UserHandler) HandleProfile(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		userIDStr, ok := c.Locals("user_id").(string)
		if !ok || userIDStr == "" {
			return h.HandleResponse(c, nil, common.ErrTokenMissing)
		}

		user, err := h.UserService.FindOneById(c.UserContext(), utility.String2ObjectID(userIDStr))
		return h.HandleResponse(c, user, err)
	})
}

// HandleChangeInfo cập nhật thông tin cá nhân của user đang đăng nhập
func (h *UserHandler) HandleChangeInfo(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		userIDStr, ok := c.Locals("user_id").(string)
		if !ok || userIDStr == "" {
			return h.HandleResponse(c, nil, common.ErrTokenMissing)
		}

		input := new(authdto.UserChangeInfoInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			return h.HandleResponse(c, nil, err)
		}

		model, err := h.TransformUpdateInputToModel(&authdto.UserUpdateInput{Name: input.Name})
		if err != nil {
			return h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, err.Error(), common.StatusBadRequest, err))
		}

		user, err := h.UserService.UpdateById(c.UserContext(), utility.String2ObjectID(userIDStr), *model)
		return h.HandleResponse(c, user, err)
	})
}
