package seed

import (
	"log"

	"inventory-app/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedAdminUser(db *gorm.DB) {
	var existing models.User
	if err := db.Where("email = ?", "admin@inventory.local").First(&existing).Error; err != gorm.ErrRecordNotFound {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("changethis"), bcrypt.DefaultCost)
	if err != nil {
		log.Println("Failed to hash admin password:", err)
		return
	}

	db.Create(&models.User{
		Email:       "admin@inventory.local",
		FullName:    "Administrator",
		Password:    string(hashed),
		IsActive:    true,
		IsSuperuser: true,
	})
}

func SeedItems(db *gorm.DB) {
	items := []models.Item{
		{Name: "Notebook", WarehousePrice: 1.5, RetailPrice: 3.0},
		{Name: "Ballpoint Pen", WarehousePrice: 0.4, RetailPrice: 1.2},
		{Name: "Stapler", WarehousePrice: 3.2, RetailPrice: 6.5},
	}

	for _, it := range items {
		var existing models.Item
		if err := db.Where("name = ?", it.Name).First(&existing).Error; err == gorm.ErrRecordNotFound {
			db.Create(&it)
		}
	}
}

func SeedLocations(db *gorm.DB) {
	warehouses := []models.Warehouse{
		{Name: "Central Warehouse", Location: "Jakarta"},
		{Name: "North Warehouse", Location: "Surabaya"},
	}
	for _, w := range warehouses {
		var existing models.Warehouse
		if err := db.Where("name = ?", w.Name).First(&existing).Error; err == gorm.ErrRecordNotFound {
			db.Create(&w)
		}
	}

	stores := []models.Store{
		{Name: "Downtown Store", Location: "Jakarta"},
		{Name: "Mall Store", Location: "Bandung"},
	}
	for _, s := range stores {
		var existing models.Store
		if err := db.Where("name = ?", s.Name).First(&existing).Error; err == gorm.ErrRecordNotFound {
			db.Create(&s)
		}
	}
}

func RunSeeders(db *gorm.DB) {
	SeedAdminUser(db)
	SeedItems(db)
	SeedLocations(db)
}
