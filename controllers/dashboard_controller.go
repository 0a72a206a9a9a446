package controllers

import (
	"fmt"
	"net/http"

	"inventory-app/repositories"
	"inventory-app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GetSales returns revenue and profit per store aggregated over all purchases.
func (c *DashboardController) GetSales(ctx *fiber.Ctx) error {
	repo := repositories.NewDashboardRepository(c.DB)
	purchases, err := repo.GetAllPurchases()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	sales := services.SalesByStore(purchases)
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": sales})
}

// GetInventory returns unit counts per item, per store and per warehouse.
func (c *DashboardController) GetInventory(ctx *fiber.Ctx) error {
	repo := repositories.NewDashboardRepository(c.DB)

	storeItems, err := repo.GetAllStoreItems()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	warehouseItems, err := repo.GetAllWarehouseItems()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": fiber.Map{
		"items":      services.UnitsPerItem(storeItems, warehouseItems),
		"stores":     services.UnitsPerStore(storeItems),
		"warehouses": services.UnitsPerWarehouse(warehouseItems),
	}})
}

// GetValue returns wholesale and retail stock value per location.
func (c *DashboardController) GetValue(ctx *fiber.Ctx) error {
	repo := repositories.NewDashboardRepository(c.DB)

	storeItems, err := repo.GetAllStoreItems()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	warehouseItems, err := repo.GetAllWarehouseItems()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": fiber.Map{
		"stores": fiber.Map{
			"wholesale": services.StoreValue(storeItems, false),
			"retail":    services.StoreValue(storeItems, true),
		},
		"warehouses": fiber.Map{
			"wholesale": services.WarehouseValue(warehouseItems, false),
			"retail":    services.WarehouseValue(warehouseItems, true),
		},
	}})
}

// Handler untuk generate dan kirim file Excel
func (c *DashboardController) ExportExcel(ctx *fiber.Ctx) error {

	repo := repositories.NewDashboardRepository(c.DB)
	purchases, err := repo.GetAllPurchases()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	// Buat file Excel baru
	f := excelize.NewFile()
	sheet := "Sheet1"

	// Buat header
	f.SetCellValue(sheet, "A1", "Date")
	f.SetCellValue(sheet, "B1", "Store ID")
	f.SetCellValue(sheet, "C1", "Item Name")
	f.SetCellValue(sheet, "D1", "Quantity")
	f.SetCellValue(sheet, "E1", "Warehouse Price")
	f.SetCellValue(sheet, "F1", "Retail Price")
	f.SetCellValue(sheet, "G1", "Reference")

	// Isi data ke dalam sheet
	for i, p := range purchases {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), p.Date)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), p.StoreID)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", i+2), p.ItemName)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", i+2), p.Quantity)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", i+2), p.WarehousePrice)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", i+2), p.RetailPrice)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", i+2), int64(p.Reference))
	}

	// Simpan file ke dalam response
	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="purchases.xlsx"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(http.StatusInternalServerError).SendString("Gagal generate Excel")
	}

	return nil
}
