package controllers

import (
	"strconv"

	"inventory-app/models"
	"inventory-app/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type WarehouseItemController struct {
	DB *gorm.DB
}

func NewWarehouseItemController(DB *gorm.DB) *WarehouseItemController {
	return &WarehouseItemController{DB: DB}
}

// GetWarehouseItems lists the stock records of one warehouse.
func (c *WarehouseItemController) GetWarehouseItems(ctx *fiber.Ctx) error {
	warehouseID, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid warehouse id"})
	}
	skip := ctx.QueryInt("skip", 0)
	limit := ctx.QueryInt("limit", 100)

	stockRepo := repositories.NewStockRepository(c.DB)
	items, count, err := stockRepo.GetWarehouseItems(uint(warehouseID), skip, limit)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    items,
		"count":   count,
	})
}

// ReceiveWarehouseItem adds stock to a warehouse. An existing
// (warehouse, item) record gains the quantity instead of duplicating.
func (c *WarehouseItemController) ReceiveWarehouseItem(ctx *fiber.Ctx) error {
	var input struct {
		WarehouseID    uint    `json:"warehouse_id" validate:"required"`
		ItemID         uint    `json:"item_id" validate:"required"`
		ItemName       string  `json:"item_name" validate:"required"`
		WarehousePrice float64 `json:"warehouse_price" validate:"gte=0"`
		RetailPrice    float64 `json:"retail_price" validate:"gte=0"`
		Quantity       int     `json:"quantity" validate:"required,gt=0"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return validationError(ctx, err.Error())
	}

	stockRepo := repositories.NewStockRepository(c.DB)
	item, err := stockRepo.ReceiveWarehouseItem(models.WarehouseItem{
		WarehouseID:    input.WarehouseID,
		ItemID:         input.ItemID,
		ItemName:       input.ItemName,
		WarehousePrice: input.WarehousePrice,
		RetailPrice:    input.RetailPrice,
		Quantity:       input.Quantity,
	})
	if err != nil {
		return stockError(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    item,
	})
}

// UpdateWarehouseItem sets a stock record's quantity. The request
// carries the version the caller read; a stale version gets 409 so
// the caller refreshes instead of overwriting someone else's change.
func (c *WarehouseItemController) UpdateWarehouseItem(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid record id"})
	}

	var input struct {
		Quantity int `json:"quantity" validate:"gte=0"`
		Version  int `json:"version" validate:"required,gt=0"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return validationError(ctx, err.Error())
	}

	stockRepo := repositories.NewStockRepository(c.DB)
	item, err := stockRepo.UpdateWarehouseItemQuantity(uint(id), input.Quantity, input.Version)
	if err != nil {
		return stockError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    item,
	})
}

func (c *WarehouseItemController) DeleteWarehouseItem(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid record id"})
	}

	stockRepo := repositories.NewStockRepository(c.DB)
	if err := stockRepo.DeleteWarehouseItem(uint(id)); err != nil {
		return stockError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Warehouse item deleted successfully",
	})
}
