// Package models - model thuộc domain billing.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WebhookLog lưu mọi webhook nhận được để đối soát và xử lý lại khi cần
type WebhookLog struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	// ===== SOURCE INFO =====
	Source    string `json:"source" bson:"source" index:"single:1"`       // Nguồn webhook: "stripe"
	EventType string `json:"eventType" bson:"eventType" index:"single:1"` // Loại event: checkout.session.completed, etc.
	EventID   string `json:"eventId,omitempty" bson:"eventId,omitempty" index:"unique,sparse"`

	// ===== REQUEST INFO =====
	RawBody   string `json:"rawBody,omitempty" bson:"rawBody,omitempty"`
	Signature string `json:"signature,omitempty" bson:"signature,omitempty"`
	IPAddress string `json:"ipAddress,omitempty" bson:"ipAddress,omitempty"`

	// ===== PROCESSING INFO =====
	Processed    bool   `json:"processed" bson:"processed" index:"single:1"`
	ProcessError string `json:"processError,omitempty" bson:"processError,omitempty"`
	ProcessedAt  int64  `json:"processedAt,omitempty" bson:"processedAt,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
