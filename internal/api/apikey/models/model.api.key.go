// Package models - model khóa API thuộc domain apikey.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ApiKey khóa API của người dùng. Chỉ lưu hash SHA-256 của khóa,
// bản rõ chỉ trả về đúng một lần lúc tạo.
type ApiKey struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID     primitive.ObjectID `json:"userId" bson:"userId" index:"single:1"`
	Name       string             `json:"name" bson:"name"`
	KeyHash    string             `json:"-" bson:"keyHash" index:"unique"`
	KeyPreview string             `json:"keyPreview" bson:"keyPreview"` // vd: mbk_a1b2…
	LastUsedAt int64              `json:"lastUsedAt,omitempty" bson:"lastUsedAt,omitempty"`
	CreatedAt  int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64              `json:"updatedAt" bson:"updatedAt"`
}
