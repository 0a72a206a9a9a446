package routes

import (
	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {

	authController := controllers.NewAuthController(db)
	api := app.Group(config.MAIN_ROUTES + "/auth")
	api.Post("/login", authController.Login)
	api.Post("/password-recovery/:email", authController.RecoverPassword)
	api.Post("/reset-password", authController.ResetPassword)

	apiLogout := app.Group(config.MAIN_ROUTES+"/auth", middleware.AuthMiddleware)
	apiLogout.Get("/logout", authController.Logout)
}
