package models

import (
	"inventory-app/types"

	"gorm.io/gorm"
)

// Purchase is an immutable sale record. Date is the calendar day of
// the sale, YYYY-MM-DD, no time component.
type Purchase struct {
	gorm.Model
	ID             uint              `json:"id" gorm:"primaryKey"`
	StoreID        uint              `json:"store_id" gorm:"index;not null"`
	ItemID         uint              `json:"item_id" gorm:"not null"`
	ItemName       string            `json:"item_name"`
	Quantity       int               `json:"quantity"`
	WarehousePrice float64           `json:"warehouse_price"`
	RetailPrice    float64           `json:"retail_price"`
	Date           string            `json:"date" gorm:"size:10"`
	Reference      types.SnowflakeID `json:"reference" gorm:"default:null"`
}

// TransferLog records every applied stock movement, keyed by the
// client-supplied request id. The unique index is what makes transfer
// and sale requests idempotent: a replay finds the row and returns the
// recorded outcome instead of re-applying the movement.
type TransferLog struct {
	gorm.Model
	RequestID     string            `json:"request_id" gorm:"uniqueIndex;size:64;not null"`
	Kind          string            `json:"kind" gorm:"size:10"` // ship or sale
	SourceID      uint              `json:"source_id"`
	DestinationID uint              `json:"destination_id"`
	ItemID        uint              `json:"item_id"`
	Quantity      int               `json:"quantity"`
	ResultID      uint              `json:"result_id"`
	Reference     types.SnowflakeID `json:"reference" gorm:"default:null"`
}

const (
	TransferKindShip = "ship"
	TransferKindSale = "sale"
)
