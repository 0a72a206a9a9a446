package controllers

import (
	"time"

	"inventory-app/models"
	"inventory-app/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PurchaseController struct {
	DB *gorm.DB
}

func NewPurchaseController(DB *gorm.DB) *PurchaseController {
	return &PurchaseController{DB: DB}
}

func (c *PurchaseController) GetPurchases(ctx *fiber.Ctx) error {
	skip := ctx.QueryInt("skip", 0)
	limit := ctx.QueryInt("limit", 100)

	purchaseRepo := repositories.NewPurchaseRepository(c.DB)
	purchases, count, err := purchaseRepo.GetPurchases(skip, limit)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    purchases,
		"count":   count,
	})
}

// CreatePurchase appends a purchase record as-is, without touching
// stock. Sales that should decrement a store record go through
// TransferController.Sell instead.
func (c *PurchaseController) CreatePurchase(ctx *fiber.Ctx) error {
	var input struct {
		StoreID        uint    `json:"store_id" validate:"required"`
		ItemID         uint    `json:"item_id" validate:"required"`
		ItemName       string  `json:"item_name" validate:"required"`
		Quantity       int     `json:"quantity" validate:"required,gt=0"`
		WarehousePrice float64 `json:"warehouse_price" validate:"gte=0"`
		RetailPrice    float64 `json:"retail_price" validate:"gte=0"`
		Date           string  `json:"date"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return validationError(ctx, err.Error())
	}

	if input.Date == "" {
		input.Date = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		return validationError(ctx, "date must be formatted YYYY-MM-DD")
	}

	purchaseRepo := repositories.NewPurchaseRepository(c.DB)
	purchase, err := purchaseRepo.CreatePurchase(models.Purchase{
		StoreID:        input.StoreID,
		ItemID:         input.ItemID,
		ItemName:       input.ItemName,
		Quantity:       input.Quantity,
		WarehousePrice: input.WarehousePrice,
		RetailPrice:    input.RetailPrice,
		Date:           input.Date,
	})
	if err != nil {
		return stockError(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    purchase,
	})
}

func (c *PurchaseController) DeletePurchase(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var purchase models.Purchase
	if err := c.DB.First(&purchase, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Purchase not found"})
	}

	purchaseRepo := repositories.NewPurchaseRepository(c.DB)
	if err := purchaseRepo.DeletePurchase(purchase.ID); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Purchase deleted successfully",
	})
}
