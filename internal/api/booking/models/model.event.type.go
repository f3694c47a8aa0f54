// Package models - model thuộc domain booking.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EventType loại sự kiện có thể đặt lịch của một người dùng
type EventType struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID      primitive.ObjectID `json:"userId" bson:"userId" index:"single:1;compound:user_slug_unique"`
	Title       string             `json:"title" bson:"title"`
	Slug        string             `json:"slug" bson:"slug" index:"compound:user_slug_unique"`
	Describe    string             `json:"describe,omitempty" bson:"describe,omitempty"`
	Length      int                `json:"length" bson:"length"` // phút
	Hidden      bool               `json:"hidden" bson:"hidden"`
	RequireNote bool               `json:"requireNote" bson:"requireNote"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
