package main

import (
	authsvc "meta_booking/internal/api/auth/services"
	"meta_booking/internal/global"
	"meta_booking/internal/logger"
)

// InitDefaultData khởi tạo dữ liệu mặc định cho hệ thống:
// đồng bộ registry quyền vào collection permissions và đảm bảo
// role Administrator được gán quyền wildcard.
// Chỉ chạy khi INITMODE=true để tránh ghi đè dữ liệu production mỗi lần khởi động.
func InitDefaultData() {
	log := logger.GetAppLogger()

	if !global.ServerConfig.InitMode {
		log.Info("⏩ [INIT] InitMode tắt, bỏ qua khởi tạo dữ liệu mặc định")
		return
	}

	log.Info("🔄 [INIT] Bắt đầu khởi tạo dữ liệu mặc định...")

	initService, err := authsvc.NewInitService()
	if err != nil {
		log.Fatalf("❌ [INIT] Không thể khởi tạo InitService: %v", err)
	}

	if err := initService.InitPermission(); err != nil {
		log.Fatalf("❌ [INIT] Lỗi khi đồng bộ permissions: %v", err)
	}
	log.Info("✅ [INIT] Đồng bộ permissions thành công")

	if err := initService.CheckPermissionForAdministrator(); err != nil {
		log.Fatalf("❌ [INIT] Lỗi khi thiết lập quyền Administrator: %v", err)
	}
	log.Info("✅ [INIT] Thiết lập quyền Administrator thành công")
}
