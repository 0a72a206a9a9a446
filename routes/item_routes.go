package routes

import (
	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupItemRoutes(app *fiber.App, db *gorm.DB) {
	itemController := controllers.NewItemController(db)
	api := app.Group(config.MAIN_ROUTES+"/items", middleware.AuthMiddleware)

	api.Get("/", itemController.GetAllItems)
	api.Get("/:id", itemController.GetItemByID)
	api.Post("/", itemController.CreateItem)
	api.Put("/:id", itemController.UpdateItem)
	api.Delete("/:id", itemController.DeleteItem)
}
