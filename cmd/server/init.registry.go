package main

import (
	"meta_booking/config"
	"meta_booking/internal/global"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

func InitRegistry() {
	err := InitCollections(global.MongoDB_Session, global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to initialize collections: %v", err)
	}
	logrus.Info("Initialized collection registry")
}

// InitCollections khởi tạo và đăng ký các collections MongoDB
func InitCollections(client *mongo.Client, cfg *config.Configuration) error {
	db := client.Database(cfg.MongoDB_DBName)
	colNames := []string{
		global.ColNames.Users, global.ColNames.Permissions, global.ColNames.Roles,
		global.ColNames.RolePermissions, global.ColNames.UserRoles, global.ColNames.ApiKeys,
		global.ColNames.EventTypes, global.ColNames.Bookings,
		global.ColNames.CalendarCredentials, global.ColNames.SelectedCalendars,
		global.ColNames.WebhookLogs, global.ColNames.CreditBalances, global.ColNames.CreditPurchaseLogs,
	}

	for _, name := range colNames {
		registered, err := global.RegistryCollections.Register(name, db.Collection(name))
		if err != nil {
			logrus.Errorf("Failed to register collection %s: %v", name, err)
			return err
		}

		if registered {
			logrus.Infof("Collection %s registered successfully", name)
		} else {
			logrus.Errorf("Collection %s already registered", name)
		}
	}

	return nil
}
