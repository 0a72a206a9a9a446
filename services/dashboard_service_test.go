package services_test

import (
	"testing"

	"inventory-app/models"
	"inventory-app/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalesByStore(t *testing.T) {
	purchases := []models.Purchase{
		{StoreID: 3, ItemID: 9, Quantity: 2, WarehousePrice: 10, RetailPrice: 15},
		{StoreID: 3, ItemID: 9, Quantity: 1, WarehousePrice: 10, RetailPrice: 15},
		{StoreID: 1, ItemID: 4, Quantity: 5, WarehousePrice: 2.5, RetailPrice: 4},
	}

	sales := services.SalesByStore(purchases)

	require.Len(t, sales, 2)
	assert.Equal(t, uint(1), sales[0].StoreID)
	assert.InDelta(t, 20.0, sales[0].Revenue, 1e-9)
	assert.InDelta(t, 7.5, sales[0].Profit, 1e-9)
	assert.Equal(t, uint(3), sales[1].StoreID)
	assert.InDelta(t, 45.0, sales[1].Revenue, 1e-9)
	assert.InDelta(t, 15.0, sales[1].Profit, 1e-9)
}

func TestSalesByStore_CentsSurviveRepeatedAddition(t *testing.T) {
	// 0.1 added ten times drifts under float64 arithmetic
	purchases := make([]models.Purchase, 10)
	for i := range purchases {
		purchases[i] = models.Purchase{StoreID: 1, ItemID: 1, Quantity: 1, WarehousePrice: 0, RetailPrice: 0.1}
	}

	sales := services.SalesByStore(purchases)

	require.Len(t, sales, 1)
	assert.Equal(t, 1.0, sales[0].Revenue)
	assert.Equal(t, 1.0, sales[0].Profit)
}

func TestSalesByStore_Empty(t *testing.T) {
	assert.Empty(t, services.SalesByStore(nil))
}

func TestUnitsPerItem_SumsStoresAndWarehouses(t *testing.T) {
	storeItems := []models.StoreItem{
		{StoreID: 3, ItemID: 9, ItemName: "Notebook", Quantity: 20},
		{StoreID: 4, ItemID: 9, ItemName: "Notebook", Quantity: 5},
	}
	warehouseItems := []models.WarehouseItem{
		{WarehouseID: 1, ItemID: 9, ItemName: "Notebook", Quantity: 30},
		{WarehouseID: 1, ItemID: 2, ItemName: "Pen", Quantity: 100},
	}

	units := services.UnitsPerItem(storeItems, warehouseItems)

	require.Len(t, units, 2)
	assert.Equal(t, services.ItemUnits{ItemID: 2, ItemName: "Pen", Quantity: 100}, units[0])
	assert.Equal(t, services.ItemUnits{ItemID: 9, ItemName: "Notebook", Quantity: 55}, units[1])
}

func TestUnitsPerStore(t *testing.T) {
	storeItems := []models.StoreItem{
		{StoreID: 3, ItemID: 9, ItemName: "Notebook", Quantity: 20},
		{StoreID: 3, ItemID: 2, ItemName: "Pen", Quantity: 7},
		{StoreID: 4, ItemID: 9, ItemName: "Notebook", Quantity: 5},
	}

	perStore := services.UnitsPerStore(storeItems)

	require.Len(t, perStore, 2)
	assert.Equal(t, uint(3), perStore[0].LocationID)
	require.Len(t, perStore[0].Items, 2)
	assert.Equal(t, services.ItemUnits{ItemID: 2, ItemName: "Pen", Quantity: 7}, perStore[0].Items[0])
	assert.Equal(t, services.ItemUnits{ItemID: 9, ItemName: "Notebook", Quantity: 20}, perStore[0].Items[1])
	assert.Equal(t, uint(4), perStore[1].LocationID)
}

func TestUnitsPerWarehouse(t *testing.T) {
	warehouseItems := []models.WarehouseItem{
		{WarehouseID: 2, ItemID: 9, ItemName: "Notebook", Quantity: 30},
		{WarehouseID: 1, ItemID: 2, ItemName: "Pen", Quantity: 100},
	}

	perWarehouse := services.UnitsPerWarehouse(warehouseItems)

	require.Len(t, perWarehouse, 2)
	assert.Equal(t, uint(1), perWarehouse[0].LocationID)
	assert.Equal(t, uint(2), perWarehouse[1].LocationID)
}

func TestStoreValue_WholesaleAndRetail(t *testing.T) {
	storeItems := []models.StoreItem{
		{StoreID: 3, ItemID: 9, ItemName: "Notebook", WarehousePrice: 10, RetailPrice: 15, Quantity: 4},
		{StoreID: 3, ItemID: 2, ItemName: "Pen", WarehousePrice: 1.5, RetailPrice: 2, Quantity: 10},
	}

	wholesale := services.StoreValue(storeItems, false)
	require.Len(t, wholesale, 1)
	require.Len(t, wholesale[0].Items, 2)
	assert.InDelta(t, 15.0, wholesale[0].Items[0].Value, 1e-9)
	assert.InDelta(t, 40.0, wholesale[0].Items[1].Value, 1e-9)

	retail := services.StoreValue(storeItems, true)
	assert.InDelta(t, 20.0, retail[0].Items[0].Value, 1e-9)
	assert.InDelta(t, 60.0, retail[0].Items[1].Value, 1e-9)
}

func TestWarehouseValue(t *testing.T) {
	warehouseItems := []models.WarehouseItem{
		{WarehouseID: 1, ItemID: 9, ItemName: "Notebook", WarehousePrice: 10, RetailPrice: 15, Quantity: 3},
	}

	wholesale := services.WarehouseValue(warehouseItems, false)
	require.Len(t, wholesale, 1)
	assert.InDelta(t, 30.0, wholesale[0].Items[0].Value, 1e-9)
}
