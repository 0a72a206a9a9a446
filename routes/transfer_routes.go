package routes

import (
	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupTransferRoutes(app *fiber.App, db *gorm.DB) {
	transferController := controllers.NewTransferController(db)

	transfers := app.Group(config.MAIN_ROUTES+"/transfers", middleware.AuthMiddleware)
	transfers.Post("/", transferController.Ship)

	sales := app.Group(config.MAIN_ROUTES+"/sales", middleware.AuthMiddleware)
	sales.Post("/", transferController.Sell)
}
