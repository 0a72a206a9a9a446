package controllers

import (
	"time"

	"inventory-app/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type TransferController struct {
	DB *gorm.DB
}

func NewTransferController(DB *gorm.DB) *TransferController {
	return &TransferController{DB: DB}
}

// Ship moves stock from a warehouse record into a store record in one
// transaction. The request id makes retries safe: a replay returns the
// outcome recorded the first time.
func (c *TransferController) Ship(ctx *fiber.Ctx) error {
	var input struct {
		RequestID       string `json:"request_id" validate:"required"`
		WarehouseItemID uint   `json:"warehouse_item_id" validate:"required"`
		Version         int    `json:"version" validate:"required,gt=0"`
		StoreID         uint   `json:"store_id" validate:"required"`
		Quantity        int    `json:"quantity" validate:"required,gt=0"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return validationError(ctx, err.Error())
	}

	stockRepo := repositories.NewStockRepository(c.DB)
	result, err := stockRepo.Transfer(repositories.TransferInput{
		RequestID: input.RequestID,
		SourceID:  input.WarehouseItemID,
		Version:   input.Version,
		StoreID:   input.StoreID,
		Quantity:  input.Quantity,
	})
	if err != nil {
		return stockError(ctx, err)
	}

	status := fiber.StatusCreated
	if result.Replayed {
		status = fiber.StatusOK
	}

	return ctx.Status(status).JSON(fiber.Map{
		"success":   true,
		"replayed":  result.Replayed,
		"reference": result.Reference,
		"data": fiber.Map{
			"source":      result.Source,
			"destination": result.Destination,
		},
	})
}

// Sell decrements a store stock record and appends the purchase, with
// the same transactional and idempotency guarantees as Ship.
func (c *TransferController) Sell(ctx *fiber.Ctx) error {
	var input struct {
		RequestID   string `json:"request_id" validate:"required"`
		StoreItemID uint   `json:"store_item_id" validate:"required"`
		Version     int    `json:"version" validate:"required,gt=0"`
		Quantity    int    `json:"quantity" validate:"required,gt=0"`
		Date        string `json:"date"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return validationError(ctx, err.Error())
	}

	if input.Date != "" {
		if _, err := time.Parse("2006-01-02", input.Date); err != nil {
			return validationError(ctx, "date must be formatted YYYY-MM-DD")
		}
	}

	stockRepo := repositories.NewStockRepository(c.DB)
	result, err := stockRepo.Sell(repositories.SellInput{
		RequestID: input.RequestID,
		SourceID:  input.StoreItemID,
		Version:   input.Version,
		Quantity:  input.Quantity,
		Date:      input.Date,
	})
	if err != nil {
		return stockError(ctx, err)
	}

	status := fiber.StatusCreated
	if result.Replayed {
		status = fiber.StatusOK
	}

	return ctx.Status(status).JSON(fiber.Map{
		"success":   true,
		"replayed":  result.Replayed,
		"reference": result.Reference,
		"data": fiber.Map{
			"source":   result.Source,
			"purchase": result.Purchase,
		},
	})
}
