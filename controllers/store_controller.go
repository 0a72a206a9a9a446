package controllers

import (
	"inventory-app/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type StoreController struct {
	DB *gorm.DB
}

func NewStoreController(DB *gorm.DB) *StoreController {
	return &StoreController{DB: DB}
}

func (c *StoreController) GetAllStores(ctx *fiber.Ctx) error {
	skip := ctx.QueryInt("skip", 0)
	limit := ctx.QueryInt("limit", 100)

	var count int64
	if err := c.DB.Model(&models.Store{}).Count(&count).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var stores []models.Store
	if err := c.DB.Order("id").Offset(skip).Limit(limit).Find(&stores).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    stores,
		"count":   count,
	})
}

func (c *StoreController) GetStoreByID(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var store models.Store
	if err := c.DB.First(&store, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Store not found"})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    store,
	})
}

func (c *StoreController) CreateStore(ctx *fiber.Ctx) error {
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

	store := models.Store{Name: input.Name, Location: input.Location}
	if err := c.DB.Create(&store).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    store,
	})
}

func (c *StoreController) UpdateStore(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var input struct {
		Name     *string `json:"name"`
		Location *string `json:"location"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var store models.Store
	if err := c.DB.First(&store, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Store not found"})
	}

	if input.Name != nil {
		store.Name = *input.Name
	}
	if input.Location != nil {
		store.Location = *input.Location
	}

	if err := c.DB.Save(&store).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    store,
	})
}

func (c *StoreController) DeleteStore(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	res := c.DB.Delete(&models.Store{}, id)
	if res.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": res.Error.Error()})
	}
	if res.RowsAffected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Store not found"})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Store deleted successfully",
	})
}
