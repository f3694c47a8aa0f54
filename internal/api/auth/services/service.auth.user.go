// Package authsvc - service người dùng (User): đăng ký, đăng nhập, đăng xuất.
package authsvc

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	authdto "meta_booking/internal/api/auth/dto"
	models "meta_booking/internal/api/auth/models"
	basesvc "meta_booking/internal/api/base/service"
	"meta_booking/internal/common"
	"meta_booking/internal/global"

	"github.com/dgrijalva/jwt-go"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](userCollection),
	}, nil
}

// hashPassword băm mật khẩu với salt bằng SHA-256
func hashPassword(password string, salt string) string {
	hash := sha256.Sum256([]byte(password + salt))
	return hex.EncodeToString(hash[:])
}

// generateSalt sinh salt ngẫu nhiên 16 bytes
func generateSalt() (string, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	return hex.EncodeToString(salt), nil
}

// generateJwtToken sinh JWT token cho user với claims chuẩn
func generateJwtToken(userID primitive.ObjectID) (string, error) {
	randomBytes := make([]byte, 8)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", err
	}

	now := time.Now()
	claims := models.JwtToken{
		UserID:       userID.Hex(),
		Time:         strconv.FormatInt(now.UnixMilli(), 10),
		RandomNumber: hex.EncodeToString(randomBytes),
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(30 * 24 * time.Hour).Unix(),
			Subject:   userID.Hex(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(global.ServerConfig.JwtSecret))
}

// Register đăng ký tài khoản mới bằng email + mật khẩu
func (s *UserService) Register(ctx context.Context, input *authdto.UserRegisterInput) (*models.User, error) {
	// Kiểm tra email đã tồn tại chưa
	_, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err == nil {
		return nil, common.NewError(common.ErrCodeAuthCredentials, "Email đã được sử dụng", common.StatusConflict, nil)
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	salt, err := generateSalt()
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Không thể sinh salt", common.StatusInternalServerError, err)
	}

	newUser := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashPassword(input.Password, salt),
		Salt:     salt,
		Tokens:   []models.Token{},
	}

	user, err := s.BaseServiceMongoImpl.InsertOne(ctx, newUser)
	if err != nil {
		logrus.WithError(err).Error("Register: Lỗi khi tạo user")
		return nil, err
	}

	return &user, nil
}

// Login đăng nhập bằng email + mật khẩu, sinh JWT token theo hwid.
// Mỗi thiết bị (hwid) giữ một token riêng; token mới nhất đồng thời
// được ghi vào field "token" để tra cứu nhanh.
func (s *UserService) Login(ctx context.Context, input *authdto.UserLoginInput) (*models.User, error) {
	user, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if user.IsBlock {
		return nil, common.NewError(common.ErrCodeAuthCredentials, "Tài khoản đã bị khóa: "+user.BlockNote, common.StatusForbidden, nil)
	}

	if hashPassword(input.Password, user.Salt) != user.Password {
		return nil, common.ErrInvalidCredentials
	}

	jwtToken, err := generateJwtToken(user.ID)
	if err != nil {
		logrus.WithError(err).Error("Login: Lỗi khi sinh JWT token")
		return nil, common.NewError(common.ErrCodeInternalServer, "Không thể sinh token", common.StatusInternalServerError, err)
	}

	// Cập nhật token cho hwid: thay thế nếu đã tồn tại, thêm mới nếu chưa
	tokens := user.Tokens
	replaced := false
	for i, t := range tokens {
		if t.Hwid == input.Hwid {
			tokens[i].JwtToken = jwtToken
			replaced = true
			break
		}
	}
	if !replaced {
		tokens = append(tokens, models.Token{Hwid: input.Hwid, JwtToken: jwtToken})
	}

	updateData := &basesvc.UpdateData{Set: map[string]interface{}{
		"token":  jwtToken,
		"tokens": tokens,
	}}

	updatedUser, err := s.BaseServiceMongoImpl.UpdateById(ctx, user.ID, updateData)
	if err != nil {
		return nil, err
	}

	return &updatedUser, nil
}

// Logout đăng xuất: gỡ token của hwid ra khỏi danh sách tokens của user
func (s *UserService) Logout(ctx context.Context, userID primitive.ObjectID, input *authdto.UserLogoutInput) error {
	user, err := s.BaseServiceMongoImpl.FindOneById(ctx, userID)
	if err != nil {
		return err
	}

	tokens := make([]models.Token, 0, len(user.Tokens))
	for _, t := range user.Tokens {
		if t.Hwid != input.Hwid {
			tokens = append(tokens, t)
		}
	}

	updateData := &basesvc.UpdateData{Set: map[string]interface{}{
		"tokens": tokens,
		"token":  "",
	}}

	_, err = s.BaseServiceMongoImpl.UpdateById(ctx, userID, updateData)
	return err
}

// FindByToken tìm user theo JWT token (field token mới nhất trước, sau đó trong mảng tokens)
func (s *UserService) FindByToken(ctx context.Context, token string) (*models.User, error) {
	user, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"token": token}, nil)
	if err == nil {
		return &user, nil
	}

	user, err = s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"tokens.jwtToken": token}, nil)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
