// Package apikeysvc - sinh, băm và xác thực khóa API.
package apikeysvc

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	models "meta_booking/internal/api/apikey/models"
	basesvc "meta_booking/internal/api/base/service"
	"meta_booking/internal/common"
	"meta_booking/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// KeyPrefix tiền tố của khóa API phát hành
const KeyPrefix = "mbk_"

// ApiKeyService là cấu trúc chứa các phương thức liên quan đến khóa API
type ApiKeyService struct {
	*basesvc.BaseServiceMongoImpl[models.ApiKey]
}

// NewApiKeyService tạo mới ApiKeyService
func NewApiKeyService() (*ApiKeyService, error) {
	apiKeyCollection, exist := global.RegistryCollections.Get(global.ColNames.ApiKeys)
	if !exist {
		return nil, fmt.Errorf("failed to get api_keys collection: %v", common.ErrNotFound)
	}

	return &ApiKeyService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.ApiKey](apiKeyCollection),
	}, nil
}

// GenerateKey sinh khóa mới dạng mbk_<32 byte hex ngẫu nhiên>
func GenerateKey() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate api key: %v", err)
	}
	return KeyPrefix + hex.EncodeToString(raw), nil
}

// HashKey băm SHA-256 bản rõ của khóa để lưu trữ
func HashKey(plainKey string) string {
	sum := sha256.Sum256([]byte(plainKey))
	return hex.EncodeToString(sum[:])
}

// KeyPreview phần hiển thị lại của khóa sau khi đã phát hành: tiền tố + 4 ký tự đầu
func KeyPreview(plainKey string) string {
	body := strings.TrimPrefix(plainKey, KeyPrefix)
	if len(body) > 4 {
		body = body[:4]
	}
	return KeyPrefix + body + "…"
}

// CreateKey phát hành một khóa API mới cho người dùng.
// Trả về bản ghi đã lưu và bản rõ của khóa - bản rõ chỉ có ở đây.
func (s *ApiKeyService) CreateKey(ctx context.Context, userID primitive.ObjectID, name string) (models.ApiKey, string, error) {
	plainKey, err := GenerateKey()
	if err != nil {
		return models.ApiKey{}, "", err
	}

	created, err := s.InsertOne(ctx, models.ApiKey{
		UserID:     userID,
		Name:       name,
		KeyHash:    HashKey(plainKey),
		KeyPreview: KeyPreview(plainKey),
		CreatedAt:  time.Now().UnixMilli(),
		UpdatedAt:  time.Now().UnixMilli(),
	})
	if err != nil {
		return models.ApiKey{}, "", err
	}

	return created, plainKey, nil
}

// FindByPlainKey tra cứu khóa API theo bản rõ nhận từ request
func (s *ApiKeyService) FindByPlainKey(ctx context.Context, plainKey string) (models.ApiKey, error) {
	if !strings.HasPrefix(plainKey, KeyPrefix) {
		return models.ApiKey{}, common.ErrTokenInvalid
	}
	return s.FindOne(ctx, bson.M{"keyHash": HashKey(plainKey)}, nil)
}

// ListForUser liệt kê khóa của một người dùng
func (s *ApiKeyService) ListForUser(ctx context.Context, userID primitive.ObjectID) ([]models.ApiKey, error) {
	return s.Find(ctx, bson.M{"userId": userID}, nil)
}

// TouchLastUsed cập nhật dấu thời gian dùng gần nhất
func (s *ApiKeyService) TouchLastUsed(ctx context.Context, id primitive.ObjectID) error {
	updateData := &basesvc.UpdateData{Set: map[string]interface{}{"lastUsedAt": time.Now().UnixMilli()}}
	_, err := s.BaseServiceMongoImpl.UpdateById(ctx, id, updateData)
	return err
}
