package repositories

import (
	"errors"
	"fmt"
	"time"

	"inventory-app/controllers/idgen"
	"inventory-app/models"
	"inventory-app/types"

	"gorm.io/gorm"
)

var (
	ErrVersionConflict   = errors.New("stock record changed since it was read")
	ErrInsufficientStock = errors.New("quantity exceeds available stock")
	ErrInvalidQuantity   = errors.New("quantity must be a positive integer")
)

type StockRepository struct {
	db *gorm.DB
}

func NewStockRepository(db *gorm.DB) *StockRepository {
	return &StockRepository{db}
}

func (r *StockRepository) GetWarehouseItems(warehouseID uint, skip, limit int) ([]models.WarehouseItem, int64, error) {
	var count int64
	if err := r.db.Model(&models.WarehouseItem{}).Where("warehouse_id = ?", warehouseID).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var items []models.WarehouseItem
	if err := r.db.Where("warehouse_id = ?", warehouseID).Order("id").Offset(skip).Limit(limit).Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, count, nil
}

func (r *StockRepository) GetStoreItems(storeID uint, skip, limit int) ([]models.StoreItem, int64, error) {
	var count int64
	if err := r.db.Model(&models.StoreItem{}).Where("store_id = ?", storeID).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var items []models.StoreItem
	if err := r.db.Where("store_id = ?", storeID).Order("id").Offset(skip).Limit(limit).Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, count, nil
}

// ReceiveWarehouseItem adds stock to a warehouse. An existing
// (warehouse, item) record gains the quantity, otherwise a new record
// is created.
func (r *StockRepository) ReceiveWarehouseItem(item models.WarehouseItem) (models.WarehouseItem, error) {
	if item.Quantity <= 0 {
		return models.WarehouseItem{}, ErrInvalidQuantity
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.WarehouseItem
		err := tx.Where("warehouse_id = ? AND item_id = ?", item.WarehouseID, item.ItemID).Take(&existing).Error
		if err == nil {
			res := tx.Model(&models.WarehouseItem{}).
				Where("id = ?", existing.ID).
				Updates(map[string]interface{}{
					"quantity": gorm.Expr("quantity + ?", item.Quantity),
					"version":  gorm.Expr("version + 1"),
				})
			if res.Error != nil {
				return res.Error
			}
			return tx.Take(&item, existing.ID).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(&item).Error
	})
	if err != nil {
		return models.WarehouseItem{}, err
	}

	return item, nil
}

// AddStoreItem is the store-side counterpart of ReceiveWarehouseItem.
func (r *StockRepository) AddStoreItem(item models.StoreItem) (models.StoreItem, error) {
	if item.Quantity <= 0 {
		return models.StoreItem{}, ErrInvalidQuantity
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		return upsertStoreItem(tx, &item)
	})
	if err != nil {
		return models.StoreItem{}, err
	}

	return item, nil
}

// upsertStoreItem adds item.Quantity to an existing (store, item)
// record or creates the record. On return item holds the stored row.
func upsertStoreItem(tx *gorm.DB, item *models.StoreItem) error {
	var existing models.StoreItem
	err := tx.Where("store_id = ? AND item_id = ?", item.StoreID, item.ItemID).Take(&existing).Error
	if err == nil {
		res := tx.Model(&models.StoreItem{}).
			Where("id = ?", existing.ID).
			Updates(map[string]interface{}{
				"quantity": gorm.Expr("quantity + ?", item.Quantity),
				"version":  gorm.Expr("version + 1"),
			})
		if res.Error != nil {
			return res.Error
		}
		return tx.Take(item, existing.ID).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return tx.Create(item).Error
}

// UpdateWarehouseItemQuantity sets the quantity of a warehouse stock
// record. The caller sends the version it read; a mismatch means the
// record changed underneath it and the update is rejected.
func (r *StockRepository) UpdateWarehouseItemQuantity(id uint, quantity, version int) (models.WarehouseItem, error) {
	var item models.WarehouseItem
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return setQuantityChecked(tx, &models.WarehouseItem{}, id, quantity, version, func() error {
			return tx.Take(&item, id).Error
		})
	})
	return item, err
}

func (r *StockRepository) UpdateStoreItemQuantity(id uint, quantity, version int) (models.StoreItem, error) {
	var item models.StoreItem
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return setQuantityChecked(tx, &models.StoreItem{}, id, quantity, version, func() error {
			return tx.Take(&item, id).Error
		})
	})
	return item, err
}

// setQuantityChecked performs the guarded write shared by both stock
// tables: quantity must stay non-negative and the stored version must
// still match the one the caller read.
func setQuantityChecked(tx *gorm.DB, model interface{}, id uint, quantity, version int, reload func() error) error {
	if quantity < 0 {
		return ErrInvalidQuantity
	}

	res := tx.Model(model).
		Where("id = ? AND version = ?", id, version).
		Updates(map[string]interface{}{
			"quantity": quantity,
			"version":  gorm.Expr("version + 1"),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
		return ErrVersionConflict
	}

	return reload()
}

func (r *StockRepository) DeleteWarehouseItem(id uint) error {
	res := r.db.Delete(&models.WarehouseItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *StockRepository) DeleteStoreItem(id uint) error {
	res := r.db.Delete(&models.StoreItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type TransferInput struct {
	RequestID string
	SourceID  uint
	Version   int
	StoreID   uint
	Quantity  int
}

type TransferResult struct {
	Source      models.WarehouseItem
	Destination models.StoreItem
	Reference   types.SnowflakeID
	Replayed    bool
}

// Transfer ships Quantity units from a warehouse stock record into a
// store stock record. Decrement, destination upsert and the transfer
// log row commit or roll back together, so a partial movement can
// never be observed. A replayed request id returns the recorded
// outcome without touching stock.
func (r *StockRepository) Transfer(input TransferInput) (*TransferResult, error) {
	if input.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	result := &TransferResult{}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var logEntry models.TransferLog
		err := tx.Where("request_id = ?", input.RequestID).Take(&logEntry).Error
		if err == nil {
			// Already applied, replay the recorded outcome.
			if err := tx.Take(&result.Source, logEntry.SourceID).Error; err != nil {
				return err
			}
			if err := tx.Take(&result.Destination, logEntry.ResultID).Error; err != nil {
				return err
			}
			result.Reference = logEntry.Reference
			result.Replayed = true
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var source models.WarehouseItem
		if err := tx.Take(&source, input.SourceID).Error; err != nil {
			return err
		}
		if source.Version != input.Version {
			return ErrVersionConflict
		}
		if input.Quantity > source.Quantity {
			return ErrInsufficientStock
		}

		res := tx.Model(&models.WarehouseItem{}).
			Where("id = ? AND version = ?", source.ID, source.Version).
			Updates(map[string]interface{}{
				"quantity": gorm.Expr("quantity - ?", input.Quantity),
				"version":  gorm.Expr("version + 1"),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrVersionConflict
		}

		destination := models.StoreItem{
			StoreID:        input.StoreID,
			ItemID:         source.ItemID,
			ItemName:       source.ItemName,
			WarehousePrice: source.WarehousePrice,
			RetailPrice:    source.RetailPrice,
			Quantity:       input.Quantity,
		}
		if err := upsertStoreItem(tx, &destination); err != nil {
			return err
		}

		logEntry = models.TransferLog{
			RequestID:     input.RequestID,
			Kind:          models.TransferKindShip,
			SourceID:      source.ID,
			DestinationID: input.StoreID,
			ItemID:        source.ItemID,
			Quantity:      input.Quantity,
			ResultID:      destination.ID,
			Reference:     types.SnowflakeID(idgen.GenerateID()),
		}
		if err := tx.Create(&logEntry).Error; err != nil {
			return err
		}

		if err := tx.Take(&result.Source, source.ID).Error; err != nil {
			return err
		}
		result.Destination = destination
		result.Reference = logEntry.Reference
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

type SellInput struct {
	RequestID string
	SourceID  uint
	Version   int
	Quantity  int
	Date      string
}

type SaleResult struct {
	Source    models.StoreItem
	Purchase  models.Purchase
	Reference types.SnowflakeID
	Replayed  bool
}

// Sell decrements a store stock record and appends the immutable
// purchase record, atomically and idempotently like Transfer.
func (r *StockRepository) Sell(input SellInput) (*SaleResult, error) {
	if input.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if input.Date == "" {
		input.Date = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", input.Date, err)
	}

	result := &SaleResult{}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var logEntry models.TransferLog
		err := tx.Where("request_id = ?", input.RequestID).Take(&logEntry).Error
		if err == nil {
			if err := tx.Take(&result.Source, logEntry.SourceID).Error; err != nil {
				return err
			}
			if err := tx.Take(&result.Purchase, logEntry.ResultID).Error; err != nil {
				return err
			}
			result.Reference = logEntry.Reference
			result.Replayed = true
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var source models.StoreItem
		if err := tx.Take(&source, input.SourceID).Error; err != nil {
			return err
		}
		if source.Version != input.Version {
			return ErrVersionConflict
		}
		if input.Quantity > source.Quantity {
			return ErrInsufficientStock
		}

		res := tx.Model(&models.StoreItem{}).
			Where("id = ? AND version = ?", source.ID, source.Version).
			Updates(map[string]interface{}{
				"quantity": gorm.Expr("quantity - ?", input.Quantity),
				"version":  gorm.Expr("version + 1"),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrVersionConflict
		}

		reference := types.SnowflakeID(idgen.GenerateID())
		purchase := models.Purchase{
			StoreID:        source.StoreID,
			ItemID:         source.ItemID,
			ItemName:       source.ItemName,
			Quantity:       input.Quantity,
			WarehousePrice: source.WarehousePrice,
			RetailPrice:    source.RetailPrice,
			Date:           input.Date,
			Reference:      reference,
		}
		if err := tx.Create(&purchase).Error; err != nil {
			return err
		}

		logEntry = models.TransferLog{
			RequestID:     input.RequestID,
			Kind:          models.TransferKindSale,
			SourceID:      source.ID,
			DestinationID: source.StoreID,
			ItemID:        source.ItemID,
			Quantity:      input.Quantity,
			ResultID:      purchase.ID,
			Reference:     reference,
		}
		if err := tx.Create(&logEntry).Error; err != nil {
			return err
		}

		if err := tx.Take(&result.Source, source.ID).Error; err != nil {
			return err
		}
		result.Purchase = purchase
		result.Reference = reference
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
