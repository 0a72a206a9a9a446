package routes

import (
	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupUserRoutes(app *fiber.App, db *gorm.DB) {
	userController := controllers.NewUserController(db)
	api := app.Group(config.MAIN_ROUTES+"/users", middleware.AuthMiddleware, middleware.RequireSuperuser)

	api.Post("/", userController.CreateUser)
	api.Get("/:id", userController.GetUserByID)
	api.Get("/", userController.GetAllUsers)
	api.Put("/:id", userController.UpdateUser)
	api.Delete("/:id", userController.DeleteUser)

	profile := app.Group(config.MAIN_ROUTES+"/user", middleware.AuthMiddleware)
	profile.Get("/profile", userController.GetProfile)
}
