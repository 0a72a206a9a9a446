package routes

import (
	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupStoreRoutes(app *fiber.App, db *gorm.DB) {
	storeController := controllers.NewStoreController(db)
	api := app.Group(config.MAIN_ROUTES+"/stores", middleware.AuthMiddleware)

	api.Get("/", storeController.GetAllStores)
	api.Get("/:id", storeController.GetStoreByID)
	api.Post("/", storeController.CreateStore)
	api.Put("/:id", storeController.UpdateStore)
	api.Delete("/:id", storeController.DeleteStore)

	storeItemController := controllers.NewStoreItemController(db)
	items := app.Group(config.MAIN_ROUTES+"/storeitems", middleware.AuthMiddleware)

	items.Get("/:id", storeItemController.GetStoreItems)
	items.Post("/", storeItemController.AddStoreItem)
	items.Put("/:id", storeItemController.UpdateStoreItem)
	items.Delete("/:id", storeItemController.DeleteStoreItem)
}
