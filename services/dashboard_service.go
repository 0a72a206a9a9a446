package services

import (
	"inventory-app/models"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Sales figures for one store, aggregated over its purchase records.
// Revenue is retail price times quantity sold, profit is revenue minus
// the wholesale cost of the same units. Sums run on decimals so cents
// survive repeated addition.
type StoreSales struct {
	StoreID uint    `json:"store_id"`
	Revenue float64 `json:"revenue"`
	Profit  float64 `json:"profit"`
}

func SalesByStore(purchases []models.Purchase) []StoreSales {
	type sums struct {
		revenue decimal.Decimal
		profit  decimal.Decimal
	}
	byStore := map[uint]*sums{}

	for _, p := range purchases {
		qty := decimal.NewFromInt(int64(p.Quantity))
		revenue := decimal.NewFromFloat(p.RetailPrice).Mul(qty)
		cost := decimal.NewFromFloat(p.WarehousePrice).Mul(qty)

		s, ok := byStore[p.StoreID]
		if !ok {
			s = &sums{}
			byStore[p.StoreID] = s
		}
		s.revenue = s.revenue.Add(revenue)
		s.profit = s.profit.Add(revenue.Sub(cost))
	}

	storeIDs := maps.Keys(byStore)
	slices.Sort(storeIDs)

	sales := make([]StoreSales, 0, len(storeIDs))
	for _, id := range storeIDs {
		sales = append(sales, StoreSales{
			StoreID: id,
			Revenue: byStore[id].revenue.InexactFloat64(),
			Profit:  byStore[id].profit.InexactFloat64(),
		})
	}
	return sales
}

type ItemUnits struct {
	ItemID   uint   `json:"item_id"`
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
}

type LocationUnits struct {
	LocationID uint        `json:"location_id"`
	Items      []ItemUnits `json:"items"`
}

// UnitsPerItem totals on-hand units per item across every store and
// warehouse stock record.
func UnitsPerItem(storeItems []models.StoreItem, warehouseItems []models.WarehouseItem) []ItemUnits {
	totals := map[uint]*ItemUnits{}

	add := func(itemID uint, name string, qty int) {
		u, ok := totals[itemID]
		if !ok {
			u = &ItemUnits{ItemID: itemID, ItemName: name}
			totals[itemID] = u
		}
		u.Quantity += qty
	}

	for _, it := range storeItems {
		add(it.ItemID, it.ItemName, it.Quantity)
	}
	for _, it := range warehouseItems {
		add(it.ItemID, it.ItemName, it.Quantity)
	}

	return sortedItemUnits(totals)
}

// UnitsPerStore breaks store stock down per store, per item.
func UnitsPerStore(storeItems []models.StoreItem) []LocationUnits {
	byStore := map[uint]map[uint]*ItemUnits{}
	for _, it := range storeItems {
		items, ok := byStore[it.StoreID]
		if !ok {
			items = map[uint]*ItemUnits{}
			byStore[it.StoreID] = items
		}
		u, ok := items[it.ItemID]
		if !ok {
			u = &ItemUnits{ItemID: it.ItemID, ItemName: it.ItemName}
			items[it.ItemID] = u
		}
		u.Quantity += it.Quantity
	}
	return sortedLocationUnits(byStore)
}

// UnitsPerWarehouse breaks warehouse stock down per warehouse, per item.
func UnitsPerWarehouse(warehouseItems []models.WarehouseItem) []LocationUnits {
	byWarehouse := map[uint]map[uint]*ItemUnits{}
	for _, it := range warehouseItems {
		items, ok := byWarehouse[it.WarehouseID]
		if !ok {
			items = map[uint]*ItemUnits{}
			byWarehouse[it.WarehouseID] = items
		}
		u, ok := items[it.ItemID]
		if !ok {
			u = &ItemUnits{ItemID: it.ItemID, ItemName: it.ItemName}
			items[it.ItemID] = u
		}
		u.Quantity += it.Quantity
	}
	return sortedLocationUnits(byWarehouse)
}

type ItemValue struct {
	ItemID   uint    `json:"item_id"`
	ItemName string  `json:"item_name"`
	Value    float64 `json:"value"`
}

type LocationValue struct {
	LocationID uint        `json:"location_id"`
	Items      []ItemValue `json:"items"`
}

type stockLine struct {
	locationID     uint
	itemID         uint
	itemName       string
	warehousePrice float64
	retailPrice    float64
	quantity       int
}

// StoreValue computes per-store stock value at either wholesale or
// retail unit price.
func StoreValue(storeItems []models.StoreItem, retail bool) []LocationValue {
	lines := make([]stockLine, 0, len(storeItems))
	for _, it := range storeItems {
		lines = append(lines, stockLine{it.StoreID, it.ItemID, it.ItemName, it.WarehousePrice, it.RetailPrice, it.Quantity})
	}
	return valueByLocation(lines, retail)
}

// WarehouseValue computes per-warehouse stock value at either
// wholesale or retail unit price.
func WarehouseValue(warehouseItems []models.WarehouseItem, retail bool) []LocationValue {
	lines := make([]stockLine, 0, len(warehouseItems))
	for _, it := range warehouseItems {
		lines = append(lines, stockLine{it.WarehouseID, it.ItemID, it.ItemName, it.WarehousePrice, it.RetailPrice, it.Quantity})
	}
	return valueByLocation(lines, retail)
}

func valueByLocation(lines []stockLine, retail bool) []LocationValue {
	byLocation := map[uint]map[uint]*struct {
		name  string
		value decimal.Decimal
	}{}

	for _, line := range lines {
		price := line.warehousePrice
		if retail {
			price = line.retailPrice
		}
		value := decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(line.quantity)))

		items, ok := byLocation[line.locationID]
		if !ok {
			items = map[uint]*struct {
				name  string
				value decimal.Decimal
			}{}
			byLocation[line.locationID] = items
		}
		entry, ok := items[line.itemID]
		if !ok {
			entry = &struct {
				name  string
				value decimal.Decimal
			}{name: line.itemName}
			items[line.itemID] = entry
		}
		entry.value = entry.value.Add(value)
	}

	locationIDs := maps.Keys(byLocation)
	slices.Sort(locationIDs)

	result := make([]LocationValue, 0, len(locationIDs))
	for _, locID := range locationIDs {
		itemIDs := maps.Keys(byLocation[locID])
		slices.Sort(itemIDs)

		items := make([]ItemValue, 0, len(itemIDs))
		for _, itemID := range itemIDs {
			entry := byLocation[locID][itemID]
			items = append(items, ItemValue{
				ItemID:   itemID,
				ItemName: entry.name,
				Value:    entry.value.InexactFloat64(),
			})
		}
		result = append(result, LocationValue{LocationID: locID, Items: items})
	}
	return result
}

func sortedItemUnits(totals map[uint]*ItemUnits) []ItemUnits {
	itemIDs := maps.Keys(totals)
	slices.Sort(itemIDs)

	units := make([]ItemUnits, 0, len(itemIDs))
	for _, id := range itemIDs {
		units = append(units, *totals[id])
	}
	return units
}

func sortedLocationUnits(byLocation map[uint]map[uint]*ItemUnits) []LocationUnits {
	locationIDs := maps.Keys(byLocation)
	slices.Sort(locationIDs)

	result := make([]LocationUnits, 0, len(locationIDs))
	for _, locID := range locationIDs {
		result = append(result, LocationUnits{
			LocationID: locID,
			Items:      sortedItemUnits(byLocation[locID]),
		})
	}
	return result
}
