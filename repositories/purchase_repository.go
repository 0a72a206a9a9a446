package repositories

import (
	"inventory-app/models"

	"gorm.io/gorm"
)

type PurchaseRepository struct {
	db *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) *PurchaseRepository {
	return &PurchaseRepository{db}
}

func (r *PurchaseRepository) GetPurchases(skip, limit int) ([]models.Purchase, int64, error) {
	var count int64
	if err := r.db.Model(&models.Purchase{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var purchases []models.Purchase
	if err := r.db.Order("id").Offset(skip).Limit(limit).Find(&purchases).Error; err != nil {
		return nil, 0, err
	}

	return purchases, count, nil
}

// CreatePurchase appends a sale record without touching stock. The
// stock-decrementing path is StockRepository.Sell; this one exists for
// backfilling historical sales.
func (r *PurchaseRepository) CreatePurchase(purchase models.Purchase) (models.Purchase, error) {
	if purchase.Quantity <= 0 {
		return models.Purchase{}, ErrInvalidQuantity
	}
	if err := r.db.Create(&purchase).Error; err != nil {
		return models.Purchase{}, err
	}
	return purchase, nil
}

func (r *PurchaseRepository) DeletePurchase(id uint) error {
	res := r.db.Delete(&models.Purchase{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
