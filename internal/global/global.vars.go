package global

import (
	"meta_booking/config"
	"meta_booking/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// CollectionName chứa tên các collection trong MongoDB
type CollectionName struct {
	Users           string // Tên collection cho người dùng
	Permissions     string // Tên collection cho quyền
	Roles           string // Tên collection cho vai trò
	RolePermissions string // Tên collection cho vai trò và quyền
	UserRoles       string // Tên collection cho người dùng và vai trò
	ApiKeys         string // Tên collection cho API key

	// Booking Collections
	EventTypes string // Tên collection cho loại sự kiện
	Bookings   string // Tên collection cho lượt đặt lịch

	// Calendar Sync Collections
	CalendarCredentials string // Tên collection cho credential lịch bên thứ ba
	SelectedCalendars   string // Tên collection cho lịch được chọn để đồng bộ

	// Billing Collections
	WebhookLogs        string // Tên collection cho log webhook thanh toán
	CreditBalances     string // Tên collection cho số dư credit
	CreditPurchaseLogs string // Tên collection cho lịch sử mua credit
}

// Các biến toàn cục
var Validate *validator.Validate                // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client               // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration          // Cấu hình của server
var ColNames CollectionName = CollectionName{} // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases

// InitColNames gán tên thực tế cho từng collection.
func InitColNames() {
	ColNames.Users = "auth_users"
	ColNames.Permissions = "auth_permissions"
	ColNames.Roles = "auth_roles"
	ColNames.RolePermissions = "auth_role_permissions"
	ColNames.UserRoles = "auth_user_roles"
	ColNames.ApiKeys = "api_keys"
	ColNames.EventTypes = "event_types"
	ColNames.Bookings = "bookings"
	ColNames.CalendarCredentials = "calendar_credentials"
	ColNames.SelectedCalendars = "selected_calendars"
	ColNames.WebhookLogs = "webhook_logs"
	ColNames.CreditBalances = "credit_balances"
	ColNames.CreditPurchaseLogs = "credit_purchase_logs"
}
