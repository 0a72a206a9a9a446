package migration

import (
	"inventory-app/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserSession{},
		&models.PasswordReset{},
		&models.Item{},
		&models.Warehouse{},
		&models.Store{},
		&models.WarehouseItem{},
		&models.StoreItem{},
		&models.Purchase{},
		&models.TransferLog{},
	)
}
