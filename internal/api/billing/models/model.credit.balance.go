package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreditBalance số dư credit của một người dùng.
// limitReachedAt / warningSentAt được reset mỗi lần nạp thêm credit.
type CreditBalance struct {
	ID                primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID            primitive.ObjectID `json:"userId" bson:"userId" index:"unique,sparse"`
	AdditionalCredits int64              `json:"additionalCredits" bson:"additionalCredits"`
	LimitReachedAt    *int64             `json:"limitReachedAt,omitempty" bson:"limitReachedAt,omitempty"`
	WarningSentAt     *int64             `json:"warningSentAt,omitempty" bson:"warningSentAt,omitempty"`
	CreatedAt         int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt         int64              `json:"updatedAt" bson:"updatedAt"`
}
