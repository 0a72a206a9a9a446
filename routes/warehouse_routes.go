package routes

import (
	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupWarehouseRoutes(app *fiber.App, db *gorm.DB) {
	warehouseController := controllers.NewWarehouseController(db)
	api := app.Group(config.MAIN_ROUTES+"/warehouses", middleware.AuthMiddleware)

	api.Get("/", warehouseController.GetAllWarehouses)
	api.Get("/:id", warehouseController.GetWarehouseByID)
	api.Post("/", warehouseController.CreateWarehouse)
	api.Put("/:id", warehouseController.UpdateWarehouse)
	api.Delete("/:id", warehouseController.DeleteWarehouse)

	warehouseItemController := controllers.NewWarehouseItemController(db)
	items := app.Group(config.MAIN_ROUTES+"/warehouseitems", middleware.AuthMiddleware)

	items.Get("/:id", warehouseItemController.GetWarehouseItems)
	items.Post("/", warehouseItemController.ReceiveWarehouseItem)
	items.Put("/:id", warehouseItemController.UpdateWarehouseItem)
	items.Delete("/:id", warehouseItemController.DeleteWarehouseItem)
}
