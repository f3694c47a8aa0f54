// Package authhdl - handler admin: khóa/mở khóa user, gán Administrator.
package authhdl

import (
	"context"
	"errors"
	"fmt"

	authdto "meta_booking/internal/api/auth/dto"
	authsvc "meta_booking/internal/api/auth/services"
	basehdl "meta_booking/internal/api/base/handler"
	basesvc "meta_booking/internal/api/base/service"
	models "meta_booking/internal/api/auth/models"
	"meta_booking/internal/common"
	"meta_booking/internal/utility"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
)

// AdminHandler xử lý các route quản trị người dùng
type AdminHandler struct {
	*basehdl.BaseHandler[models.User, authdto.UserCreateInput, authdto.UserUpdateInput]
	userCRUD     *authsvc.UserService
	roleCRUD     *authsvc.RoleService
	userRoleCRUD *authsvc.UserRoleService
}

// NewAdminHandler tạo instance mới của AdminHandler
func NewAdminHandler() (*AdminHandler, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	roleService, err := authsvc.NewRoleService()
	if err != nil {
		return nil, fmt.Errorf("failed to create role service: %v", err)
	}
	userRoleService, err := authsvc.NewUserRoleService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user role service: %v", err)
	}
	return &AdminHandler{
		BaseHandler:  basehdl.NewBaseHandler[models.User, authdto.UserCreateInput, authdto.UserUpdateInput](userService),
		userCRUD:     userService,
		roleCRUD:     roleService,
		userRoleCRUD: userRoleService,
	}, nil
}

// HandleBlockUser khóa một người dùng theo email
func (h *AdminHandler) HandleBlockUser(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		input := new(authdto.BlockUserInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			return h.HandleResponse(c, nil, err)
		}
		if err := h.ValidateInput(input); err != nil {
			return h.HandleResponse(c, nil, err)
		}

		user, err := h.userCRUD.FindOne(c.UserContext(), bson.M{"email": input.Email}, nil)
		if err != nil {
			return h.HandleResponse(c, nil, err)
		}

		updateData := &basesvc.UpdateData{Set: map[string]interface{}{
			"isBlock":   true,
			"blockNote": input.Note,
			"token":     "",
			"tokens":    []models.Token{},
		}}
		result, err := h.userCRUD.UpdateById(c.UserContext(), user.ID, updateData)
		return h.HandleResponse(c, result, err)
	})
}

// HandleUnBlockUser mở khóa một người dùng theo email
func (h *AdminHandler) HandleUnBlockUser(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		input := new(authdto.UnBlockUserInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			return h.HandleResponse(c, nil, err)
		}
		if err := h.ValidateInput(input); err != nil {
			return h.HandleResponse(c, nil, err)
		}

		user, err := h.userCRUD.FindOne(c.UserContext(), bson.M{"email": input.Email}, nil)
		if err != nil {
			return h.HandleResponse(c, nil, err)
		}

		updateData := &basesvc.UpdateData{Set: map[string]interface{}{
			"isBlock":   false,
			"blockNote": "",
		}}
		result, err := h.userCRUD.UpdateById(c.UserContext(), user.ID, updateData)
		return h.HandleResponse(c, result, err)
	})
}

// HandleSetAdministrator gán vai trò Administrator cho một user theo id
func (h *AdminHandler) HandleSetAdministrator(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id := h.GetIDFromContext(c)
		if id == "" {
			return h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, nil))
		}
		userID := utility.String2ObjectID(id)

		// Kiểm tra user tồn tại
		if _, err := h.userCRUD.FindOneById(c.UserContext(), userID); err != nil {
			return h.HandleResponse(c, nil, err)
		}

		adminRole, err := h.roleCRUD.FindOne(c.UserContext(), bson.M{"name": "Administrator"}, nil)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return h.HandleResponse(c, nil, common.NewError(common.ErrCodeBusinessState, "Vai trò Administrator chưa được khởi tạo", common.StatusBadRequest, nil))
			}
			return h.HandleResponse(c, nil, err)
		}

		// Idempotent: nếu đã có gán thì trả về bản ghi hiện có
		existing, err := h.userRoleCRUD.FindOne(c.UserContext(), bson.M{"userId": userID, "roleId": adminRole.ID}, nil)
		if err == nil {
			return h.HandleResponse(c, existing, nil)
		}
		if !errors.Is(err, common.ErrNotFound) {
			return h.HandleResponse(c, nil, err)
		}

		ctx := basesvc.WithSystemDataInsertAllowed(context.Background())
		userRole, err := h.userRoleCRUD.InsertOne(ctx, models.UserRole{
			UserID: userID,
			RoleID: adminRole.ID,
		})
		return h.HandleResponse(c, userRole, err)
	})
}
