package models

import "gorm.io/gorm"

type Item struct {
	gorm.Model
	ID             uint    `json:"id" gorm:"primaryKey"`
	Name           string  `json:"name" gorm:"not null" validate:"required"`
	WarehousePrice float64 `json:"warehouse_price"`
	RetailPrice    float64 `json:"retail_price"`
}

type Warehouse struct {
	gorm.Model
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"not null" validate:"required"`
	Location string `json:"location"`
}

type Store struct {
	gorm.Model
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"not null" validate:"required"`
	Location string `json:"location"`
}
