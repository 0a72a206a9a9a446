package controllers

import (
	"strconv"

	"inventory-app/models"
	"inventory-app/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type StoreItemController struct {
	DB *gorm.DB
}

func NewStoreItemController(DB *gorm.DB) *StoreItemController {
	return &StoreItemController{DB: DB}
}

// GetStoreItems lists the stock records of one store.
func (c *StoreItemController) GetStoreItems(ctx *fiber.Ctx) error {
	storeID, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid store id"})
	}
	skip := ctx.QueryInt("skip", 0)
	limit := ctx.QueryInt("limit", 100)

	stockRepo := repositories.NewStockRepository(c.DB)
	items, count, err := stockRepo.GetStoreItems(uint(storeID), skip, limit)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    items,
		"count":   count,
	})
}

// AddStoreItem puts stock into a store directly, without going through
// a warehouse transfer.
func (c *StoreItemController) AddStoreItem(ctx *fiber.Ctx) error {
	var input struct {
		StoreID        uint    `json:"store_id" validate:"required"`
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
	item, err := stockRepo.AddStoreItem(models.StoreItem{
		StoreID:        input.StoreID,
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

// UpdateStoreItem sets a store stock record's quantity, guarded by the
// record version like the warehouse-side update.
func (c *StoreItemController) UpdateStoreItem(ctx *fiber.Ctx) error {
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
	item, err := stockRepo.UpdateStoreItemQuantity(uint(id), input.Quantity, input.Version)
	if err != nil {
		return stockError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    item,
	})
}

func (c *StoreItemController) DeleteStoreItem(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid record id"})
	}

	stockRepo := repositories.NewStockRepository(c.DB)
	if err := stockRepo.DeleteStoreItem(uint(id)); err != nil {
		return stockError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Store item deleted successfully",
	})
}
