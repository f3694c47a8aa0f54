// Package models - model thuộc domain calendarsync.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CalendarCredential credential OAuth kết nối tới calendar provider.
// Mỗi credential là một ranh giới tenant: cùng một externalId lịch có thể
// tồn tại dưới nhiều credential khác nhau và không được trộn lẫn.
type CalendarCredential struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID       primitive.ObjectID `json:"userId" bson:"userId" index:"single:1"`
	Provider     string             `json:"provider" bson:"provider" default:"google"`
	AccountEmail string             `json:"accountEmail" bson:"accountEmail"`
	AccessToken  string             `json:"-" bson:"accessToken"`
	RefreshToken string             `json:"-" bson:"refreshToken"`
	TokenExpiry  int64              `json:"tokenExpiry" bson:"tokenExpiry"`
	Invalid      bool               `json:"invalid" bson:"invalid"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}
