package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreditPurchaseLog một lần nạp credit thành công
type CreditPurchaseLog struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CreditBalanceID primitive.ObjectID `json:"creditBalanceId" bson:"creditBalanceId" index:"single:1"`
	Credits         int64              `json:"credits" bson:"credits"`
	StripeSessionID string             `json:"stripeSessionId,omitempty" bson:"stripeSessionId,omitempty"`
	CreatedAt       int64              `json:"createdAt" bson:"createdAt"`
}
