package routes

import (
	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupPurchaseRoutes(app *fiber.App, db *gorm.DB) {
	purchaseController := controllers.NewPurchaseController(db)
	api := app.Group(config.MAIN_ROUTES+"/purchases", middleware.AuthMiddleware)

	api.Get("/", purchaseController.GetPurchases)
	api.Post("/", purchaseController.CreatePurchase)
	api.Delete("/:id", purchaseController.DeletePurchase)
}
