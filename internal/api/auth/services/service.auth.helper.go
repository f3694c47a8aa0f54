// Package authsvc - helper context (userID, kiểm tra Administrator).
package authsvc

import (
	"context"
	"errors"
	"fmt"

	models "meta_booking/internal/api/auth/models"
	"meta_booking/internal/common"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type contextKey string

const userIDContextKey contextKey = "user_id"

// SetUserIDToContext lưu userID vào context
func SetUserIDToContext(ctx context.Context, userID primitive.ObjectID) context.Context {
	return context.WithValue(ctx, userIDContextKey, userID)
}

// GetUserIDFromContext lấy userID từ context
func GetUserIDFromContext(ctx context.Context) (primitive.ObjectID, bool) {
	userID, ok := ctx.Value(userIDContextKey).(primitive.ObjectID)
	return userID, ok
}

// IsUserAdministrator kiểm tra xem user có phải Administrator không
func IsUserAdministrator(ctx context.Context, userID primitive.ObjectID) (bool, error) {
	userRoleService, err := NewUserRoleService()
	if err != nil {
		return false, fmt.Errorf("failed to create user role service: %v", err)
	}
	roleService, err := NewRoleService()
	if err != nil {
		return false, fmt.Errorf("failed to create role service: %v", err)
	}

	adminRole, err := roleService.BaseServiceMongoImpl.FindOne(ctx, bson.M{"name": "Administrator"}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	var modelRole models.Role
	bsonBytes, _ := bson.Marshal(adminRole)
	if err := bson.Unmarshal(bsonBytes, &modelRole); err != nil {
		return false, err
	}

	_, err = userRoleService.BaseServiceMongoImpl.FindOne(ctx, bson.M{"userId": userID, "roleId": modelRole.ID}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// IsUserAdministratorFromContext kiểm tra user trong context có phải Administrator không
func IsUserAdministratorFromContext(ctx context.Context) (bool, error) {
	userID, ok := GetUserIDFromContext(ctx)
	if !ok {
		return false, nil
	}
	return IsUserAdministrator(ctx, userID)
}
