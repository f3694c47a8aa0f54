package calendarsyncdto

// CalendarCredentialCreateInput đầu vào kết nối credential lịch.
type CalendarCredentialCreateInput struct {
	UserID       string `json:"userId" validate:"required" transform:"str_objectid"`
	Provider     string `json:"provider"`
	AccountEmail string `json:"accountEmail" validate:"required,email"`
	AccessToken  string `json:"accessToken" validate:"required"`
	RefreshToken string `json:"refreshToken"`
	TokenExpiry  int64  `json:"tokenExpiry"`
}

// CalendarCredentialUpdateInput đầu vào cập nhật credential lịch.
type CalendarCredentialUpdateInput struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenExpiry  int64  `json:"tokenExpiry"`
	Invalid      bool   `json:"invalid"`
}

// SelectedCalendarCreateInput đầu vào chọn một lịch để đồng bộ.
type SelectedCalendarCreateInput struct {
	UserID       string `json:"userId" validate:"required" transform:"str_objectid"`
	EventTypeID  string `json:"eventTypeId" transform:"str_objectid_ptr,optional"`
	CredentialID string `json:"credentialId" transform:"str_objectid_ptr,optional"`
	ExternalID   string `json:"externalId" validate:"required"`
	WatchEnabled bool   `json:"watchEnabled"`
}

// SelectedCalendarUpdateInput đầu vào cập nhật lịch đã chọn.
type SelectedCalendarUpdateInput struct {
	WatchEnabled bool   `json:"watchEnabled"`
	CredentialID string `json:"credentialId" transform:"str_objectid_ptr,optional"`
}
