package controllers

import (
	"inventory-app/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type WarehouseController struct {
	DB *gorm.DB
}

func NewWarehouseController(DB *gorm.DB) *WarehouseController {
	return &WarehouseController{DB: DB}
}

func (c *WarehouseController) GetAllWarehouses(ctx *fiber.Ctx) error {
	skip := ctx.QueryInt("skip", 0)
	limit := ctx.QueryInt("limit", 100)

	var count int64
	if err := c.DB.Model(&models.Warehouse{}).Count(&count).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var warehouses []models.Warehouse
	if err := c.DB.Order("id").Offset(skip).Limit(limit).Find(&warehouses).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    warehouses,
		"count":   count,
	})
}

func (c *WarehouseController) GetWarehouseByID(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var warehouse models.Warehouse
	if err := c.DB.First(&warehouse, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Warehouse not found"})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    warehouse,
	})
}

func (c *WarehouseController) CreateWarehouse(ctx *fiber.Ctx) error {
	var input struct {
		Name     string `json:"name" validate:"required"`
		Location string `json:"location"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return validationError(ctx, err.Error())
	}

	warehouse := models.Warehouse{Name: input.Name, Location: input.Location}
	if err := c.DB.Create(&warehouse).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    warehouse,
	})
}

func (c *WarehouseController) UpdateWarehouse(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var input struct {
		Name     *string `json:"name"`
		Location *string `json:"location"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var warehouse models.Warehouse
	if err := c.DB.First(&warehouse, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Warehouse not found"})
	}

	if input.Name != nil {
		warehouse.Name = *input.Name
	}
	if input.Location != nil {
		warehouse.Location = *input.Location
	}

	if err := c.DB.Save(&warehouse).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    warehouse,
	})
}

func (c *WarehouseController) DeleteWarehouse(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	res := c.DB.Delete(&models.Warehouse{}, id)
	if res.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": res.Error.Error()})
	}
	if res.RowsAffected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Warehouse not found"})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Warehouse deleted successfully",
	})
}
