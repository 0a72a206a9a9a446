package repositories

import (
	"inventory-app/models"

	"gorm.io/gorm"
)

type DashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{db}
}

func (r *DashboardRepository) GetAllStoreItems() ([]models.StoreItem, error) {
	var items []models.StoreItem
	if err := r.db.Order("store_id, item_id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *DashboardRepository) GetAllWarehouseItems() ([]models.WarehouseItem, error) {
	var items []models.WarehouseItem
	if err := r.db.Order("warehouse_id, item_id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *DashboardRepository) GetAllPurchases() ([]models.Purchase, error) {
	var purchases []models.Purchase
	if err := r.db.Order("id").Find(&purchases).Error; err != nil {
		return nil, err
	}
	return purchases, nil
}
