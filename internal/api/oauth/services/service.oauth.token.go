// Package oauthsvc - xác thực access token kiểu OAuth: verify chữ ký JWT,
// kiểm tra token_type và scope, phân giải chủ thể (user).
package oauthsvc

import (
	"context"
	"fmt"

	authsvc "meta_booking/internal/api/auth/services"
	"meta_booking/internal/common"
	"meta_booking/internal/global"

	"github.com/dgrijalva/jwt-go"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AccessTokenType giá trị bắt buộc của claim token_type
const AccessTokenType = "Access Token"

// AccessTokenClaims payload của access token
type AccessTokenClaims struct {
	UserID    string   `json:"userId,omitempty"`
	Scope     []string `json:"scope"`
	TokenType string   `json:"token_type"`
	jwt.StandardClaims
}

// AuthorizedSubject chủ thể đã được xác thực qua access token
type AuthorizedSubject struct {
	ID     primitive.ObjectID `json:"id"`
	Name   string             `json:"name"`
	Scopes []string           `json:"scopes"`
}

// OAuthService là cấu trúc xác thực access token
type OAuthService struct {
	userService *authsvc.UserService
}

// NewOAuthService tạo mới OAuthService
func NewOAuthService() (*OAuthService, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	return &OAuthService{userService: userService}, nil
}

// HasAllScopes kiểm tra granted có chứa đủ mọi scope yêu cầu không
func HasAllScopes(granted []string, required []string) bool {
	grantedSet := make(map[string]struct{}, len(granted))
	for _, scope := range granted {
		grantedSet[scope] = struct{}{}
	}
	for _, scope := range required {
		if _, ok := grantedSet[scope]; !ok {
			return false
		}
	}
	return true
}

// ParseAccessToken verify chữ ký và các ràng buộc của access token.
// Token không hợp lệ, sai token_type hoặc thiếu scope đều trả về cùng
// một lỗi xác thực - không phân biệt nguyên nhân cho phía gọi.
func ParseAccessToken(tokenString string, requiredScopes []string) (*AccessTokenClaims, error) {
	claims := new(AccessTokenClaims)
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(global.ServerConfig.JwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, common.ErrTokenInvalid
	}

	if claims.TokenType != AccessTokenType {
		return nil, common.ErrTokenInvalid
	}
	if !HasAllScopes(claims.Scope, requiredScopes) {
		return nil, common.ErrScopeMissing
	}

	return claims, nil
}

// Authorize verify access token và phân giải chủ thể.
// Trả về lỗi xác thực nếu token không hợp lệ hoặc chủ thể không tồn tại.
func (s *OAuthService) Authorize(ctx context.Context, tokenString string, requiredScopes []string) (*AuthorizedSubject, error) {
	claims, err := ParseAccessToken(tokenString, requiredScopes)
	if err != nil {
		return nil, err
	}

	if claims.UserID == "" {
		return nil, common.ErrTokenInvalid
	}
	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, common.ErrTokenInvalid
	}

	user, err := s.userService.FindOneById(ctx, userID)
	if err != nil {
		return nil, common.ErrTokenInvalid
	}
	if user.IsBlock {
		return nil, common.ErrTokenInvalid
	}

	return &AuthorizedSubject{
		ID:     user.ID,
		Name:   user.Name,
		Scopes: claims.Scope,
	}, nil
}

// IssueAccessToken phát hành access token với scope cho một user.
// Dùng cho tích hợp máy-máy; thời hạn do phía gọi quyết định (expiresAt Unix giây).
func IssueAccessToken(userID primitive.ObjectID, scopes []string, issuedAt int64, expiresAt int64) (string, error) {
	claims := AccessTokenClaims{
		UserID:    userID.Hex(),
		Scope:     scopes,
		TokenType: AccessTokenType,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  issuedAt,
			ExpiresAt: expiresAt,
			Subject:   userID.Hex(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(global.ServerConfig.JwtSecret))
}
