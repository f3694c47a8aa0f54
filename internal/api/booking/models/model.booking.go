package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái của một booking
const (
	BookingStatusPending   = "pending"
	BookingStatusAccepted  = "accepted"
	BookingStatusCancelled = "cancelled"
	BookingStatusRejected  = "rejected"
)

// Booking một lượt đặt lịch trên một loại sự kiện
type Booking struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID        primitive.ObjectID `json:"userId" bson:"userId" index:"single:1"`
	EventTypeID   primitive.ObjectID `json:"eventTypeId" bson:"eventTypeId" index:"single:1"`
	Title         string             `json:"title" bson:"title"`
	Describe      string             `json:"describe,omitempty" bson:"describe,omitempty"`
	StartTime     int64              `json:"startTime" bson:"startTime" index:"single:1"`
	EndTime       int64              `json:"endTime" bson:"endTime"`
	Status        string             `json:"status" bson:"status" default:"pending"`
	AttendeeName  string             `json:"attendeeName" bson:"attendeeName"`
	AttendeeEmail string             `json:"attendeeEmail" bson:"attendeeEmail"`
	Location      string             `json:"location,omitempty" bson:"location,omitempty"`
	CancelReason  string             `json:"cancelReason,omitempty" bson:"cancelReason,omitempty"`
	CreatedAt     int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt     int64              `json:"updatedAt" bson:"updatedAt"`
}
