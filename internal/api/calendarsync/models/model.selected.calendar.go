// Package models - SelectedCalendar thuộc domain calendarsync.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SelectedCalendar một lịch ngoài mà user đã chọn để đồng bộ.
// CredentialID nullable: bản ghi không có credential không thể reconcile
// và luôn bị skip với lý do "missing-credential".
// WatchError/UnwatchError lưu lý do lỗi gần nhất của từng chiều; nil nghĩa là sạch.
type SelectedCalendar struct {
	ID           primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	UserID       primitive.ObjectID  `json:"userId" bson:"userId" index:"single:1"`
	EventTypeID  *primitive.ObjectID `json:"eventTypeId" bson:"eventTypeId,omitempty" index:"single:1,sparse"`
	CredentialID *primitive.ObjectID `json:"credentialId" bson:"credentialId,omitempty" index:"single:1,sparse"`
	ExternalID   string              `json:"externalId" bson:"externalId" index:"single:1"`

	// Trạng thái watch channel phía Google
	WatchEnabled           bool   `json:"watchEnabled" bson:"watchEnabled" default:"true" index:"single:1"`
	GoogleChannelID        string `json:"googleChannelId" bson:"googleChannelId"`
	GoogleResourceID       string `json:"googleResourceId" bson:"googleResourceId"`
	GoogleChannelExpiresAt int64  `json:"googleChannelExpiresAt" bson:"googleChannelExpiresAt"`

	WatchError   *string `json:"watchError" bson:"watchError,omitempty"`
	UnwatchError *string `json:"unwatchError" bson:"unwatchError,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
