package bookingdto

// EventTypeCreateInput đầu vào tạo loại sự kiện.
type EventTypeCreateInput struct {
	UserID      string `json:"userId" validate:"required" transform:"str_objectid"`
	Title       string `json:"title" validate:"required" maxLength:"200"`
	Slug        string `json:"slug" validate:"required" maxLength:"100"`
	Describe    string `json:"describe,omitempty" maxLength:"1000"`
	Length      int    `json:"length" validate:"required,min=5,max=1440"`
	Hidden      bool   `json:"hidden"`
	RequireNote bool   `json:"requireNote"`
}

// EventTypeUpdateInput đầu vào cập nhật loại sự kiện.
type EventTypeUpdateInput struct {
	Title       string `json:"title,omitempty" maxLength:"200"`
	Describe    string `json:"describe,omitempty" maxLength:"1000"`
	Length      int    `json:"length,omitempty"`
	Hidden      bool   `json:"hidden,omitempty"`
	RequireNote bool   `json:"requireNote,omitempty"`
}

// BookingCreateInput đầu vào tạo booking.
type BookingCreateInput struct {
	UserID        string `json:"userId" validate:"required" transform:"str_objectid"`
	EventTypeID   string `json:"eventTypeId" validate:"required" transform:"str_objectid"`
	Title         string `json:"title" validate:"required" maxLength:"200"`
	Describe      string `json:"describe,omitempty" maxLength:"1000"`
	StartTime     int64  `json:"startTime" validate:"required"`
	EndTime       int64  `json:"endTime" validate:"required"`
	AttendeeName  string `json:"attendeeName" validate:"required" maxLength:"200"`
	AttendeeEmail string `json:"attendeeEmail" validate:"required,email"`
	Location      string `json:"location,omitempty" maxLength:"500"`
}

// BookingUpdateInput đầu vào cập nhật booking.
type BookingUpdateInput struct {
	Title        string `json:"title,omitempty" maxLength:"200"`
	Describe     string `json:"describe,omitempty" maxLength:"1000"`
	StartTime    int64  `json:"startTime,omitempty"`
	EndTime      int64  `json:"endTime,omitempty"`
	Status       string `json:"status,omitempty" validate:"omitempty,oneof=pending accepted cancelled rejected"`
	CancelReason string `json:"cancelReason,omitempty" maxLength:"500"`
}
