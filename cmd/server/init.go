package main

import (
	"context"

	"meta_booking/config"
	apikeymodels "meta_booking/internal/api/apikey/models"
	authmodels "meta_booking/internal/api/auth/models"
	authsvc "meta_booking/internal/api/auth/services"
	basesvc "meta_booking/internal/api/base/service"
	billingmodels "meta_booking/internal/api/billing/models"
	bookingmodels "meta_booking/internal/api/booking/models"
	calendarsyncmodels "meta_booking/internal/api/calendarsync/models"
	"meta_booking/internal/database"
	"meta_booking/internal/global"

	"github.com/sirupsen/logrus"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
	initBaseService()      // Nối callback admin-check cho base service
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.InitColNames()
	logrus.Info("Initialized collection names")
}

// Hàm khởi tạo validator
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	// Khởi tạo các db và collections nếu chưa có
	database.EnsureDatabaseAndCollections(global.MongoDB_Session)
	logrus.Info("Ensured database and collections")

	// Khởi tạo các index cho các collection
	dbName := global.ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	ctx := context.TODO()

	database.CreateIndexes(ctx, db.Collection(global.ColNames.Users), authmodels.User{})
	database.CreateIndexes(ctx, db.Collection(global.ColNames.Permissions), authmodels.Permission{})
	database.CreateIndexes(ctx, db.Collection(global.ColNames.Roles), authmodels.Role{})
	database.CreateIndexes(ctx, db.Collection(global.ColNames.RolePermissions), authmodels.RolePermission{})
	database.CreateIndexes(ctx, db.Collection(global.ColNames.UserRoles), authmodels.UserRole{})
	database.CreateIndexes(ctx, db.Collection(global.ColNames.ApiKeys), apikeymodels.ApiKey{})

	database.CreateIndexes(ctx, db.Collection(global.ColNames.EventTypes), bookingmodels.EventType{})
	database.CreateIndexes(ctx, db.Collection(global.ColNames.Bookings), bookingmodels.Booking{})

	database.CreateIndexes(ctx, db.Collection(global.ColNames.CalendarCredentials), calendarsyncmodels.CalendarCredential{})
	database.CreateIndexes(ctx, db.Collection(global.ColNames.SelectedCalendars), calendarsyncmodels.SelectedCalendar{})

	database.CreateIndexes(ctx, db.Collection(global.ColNames.WebhookLogs), billingmodels.WebhookLog{})
	database.CreateIndexes(ctx, db.Collection(global.ColNames.CreditBalances), billingmodels.CreditBalance{})
	database.CreateIndexes(ctx, db.Collection(global.ColNames.CreditPurchaseLogs), billingmodels.CreditPurchaseLog{})
}

// initBaseService nối callback kiểm tra admin vào base service
// (tránh import cycle giữa base service và auth service)
func initBaseService() {
	basesvc.SetIsAdminFromContextFunc(authsvc.IsUserAdministratorFromContext)
	logrus.Info("Initialized base service admin callback")
}
