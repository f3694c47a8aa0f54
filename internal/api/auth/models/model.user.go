// Package models - model người dùng (User) thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User định nghĩa mô hình người dùng
// Token chứa token xác thực mới nhất của người dùng
// Tokens chứa danh sách các token, mỗi thiết bị khác nhau sẽ có một token riêng để xác thực (bằng hwid)
type User struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name"`
	Email         string             `json:"email,omitempty" bson:"email,omitempty" index:"unique,sparse"`
	Password      string             `json:"-" bson:"password,omitempty"`
	Salt          string             `json:"-" bson:"salt,omitempty"`
	EmailVerified bool               `json:"emailVerified" bson:"emailVerified"`
	AvatarURL     string             `json:"avatarUrl" bson:"avatarUrl"`
	Timezone      string             `json:"timezone" bson:"timezone"`
	Token         string             `json:"token" bson:"token"`
	Tokens        []Token            `json:"-" bson:"tokens"`
	IsBlock       bool               `json:"-" bson:"isBlock"`
	BlockNote     string             `json:"-" bson:"blockNote"`
	CreatedAt     int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt     int64              `json:"updatedAt" bson:"updatedAt"`
}
