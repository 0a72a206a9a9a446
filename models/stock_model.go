package models

import "gorm.io/gorm"

// WarehouseItem is the stock record of one item at one warehouse.
// Version is bumped once per successful update; writers must send the
// version they read so stale updates are rejected instead of applied.
type WarehouseItem struct {
	gorm.Model
	ID             uint    `json:"id" gorm:"primaryKey"`
	WarehouseID    uint    `json:"warehouse_id" gorm:"uniqueIndex:idx_warehouse_item;not null"`
	ItemID         uint    `json:"item_id" gorm:"uniqueIndex:idx_warehouse_item;not null"`
	ItemName       string  `json:"item_name"`
	WarehousePrice float64 `json:"warehouse_price"`
	RetailPrice    float64 `json:"retail_price"`
	Quantity       int     `json:"quantity" gorm:"default:0"`
	Version        int     `json:"version" gorm:"default:1"`
}

// StoreItem is the stock record of one item at one store.
type StoreItem struct {
	gorm.Model
	ID             uint    `json:"id" gorm:"primaryKey"`
	StoreID        uint    `json:"store_id" gorm:"uniqueIndex:idx_store_item;not null"`
	ItemID         uint    `json:"item_id" gorm:"uniqueIndex:idx_store_item;not null"`
	ItemName       string  `json:"item_name"`
	WarehousePrice float64 `json:"warehouse_price"`
	RetailPrice    float64 `json:"retail_price"`
	Quantity       int     `json:"quantity" gorm:"default:0"`
	Version        int     `json:"version" gorm:"default:1"`
}
