// Package models - Role thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role vai trò trong hệ thống.
type Role struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name" index:"unique"`
	Describe  string             `json:"describe" bson:"describe"`
	IsSystem  bool               `json:"-" bson:"isSystem" index:"single:1"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
