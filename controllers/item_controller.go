package controllers

import (
	"inventory-app/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ItemController struct {
	DB *gorm.DB
}

func NewItemController(DB *gorm.DB) *ItemController {
	return &ItemController{DB: DB}
}

func (c *ItemController) GetAllItems(ctx *fiber.Ctx) error {
	skip := ctx.QueryInt("skip", 0)
	limit := ctx.QueryInt("limit", 100)

	var count int64
	if err := c.DB.Model(&models.Item{}).Count(&count).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var items []models.Item
	if err := c.DB.Order("id").Offset(skip).Limit(limit).Find(&items).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    items,
		"count":   count,
	})
}

func (c *ItemController) GetItemByID(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var item models.Item
	if err := c.DB.First(&item, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Item not found"})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    item,
	})
}

func (c *ItemController) CreateItem(ctx *fiber.Ctx) error {
	var itemInput struct {
		Name           string  `json:"name" validate:"required"`
		WarehousePrice float64 `json:"warehouse_price" validate:"gte=0"`
		RetailPrice    float64 `json:"retail_price" validate:"gte=0"`
	}

	if err := ctx.BodyParser(&itemInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(itemInput); err != nil {
		return validationError(ctx, err.Error())
	}

	item := models.Item{
		Name:           itemInput.Name,
		WarehousePrice: itemInput.WarehousePrice,
		RetailPrice:    itemInput.RetailPrice,
	}

	if err := c.DB.Create(&item).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    item,
	})
}

func (c *ItemController) UpdateItem(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var itemInput struct {
		Name           *string  `json:"name"`
		WarehousePrice *float64 `json:"warehouse_price"`
		RetailPrice    *float64 `json:"retail_price"`
	}

	if err := ctx.BodyParser(&itemInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var item models.Item
	if err := c.DB.First(&item, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Item not found"})
	}

	if itemInput.Name != nil {
		item.Name = *itemInput.Name
	}
	if itemInput.WarehousePrice != nil {
		item.WarehousePrice = *itemInput.WarehousePrice
	}
	if itemInput.RetailPrice != nil {
		item.RetailPrice = *itemInput.RetailPrice
	}

	if err := c.DB.Save(&item).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    item,
	})
}

func (c *ItemController) DeleteItem(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	res := c.DB.Delete(&models.Item{}, id)
	if res.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": res.Error.Error()})
	}
	if res.RowsAffected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Item not found"})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Item deleted successfully",
	})
}
