package main

import (
	"fmt"
	"log"

	"inventory-app/config"
	"inventory-app/controllers/idgen"
	"inventory-app/middleware"
	"inventory-app/migration"
	"inventory-app/routes"
	seed "inventory-app/seeder"

	"github.com/gofiber/fiber/v2"
)

func main() {

	config.LoadConfig()

	app := fiber.New()

	// Connect to database
	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto migrate models
	if err := migration.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	idgen.Init()
	seed.RunSeeders(db)
	middleware.SetupAuth(db)

	// Setup CORS middleware
	config.SetupCORS(app)

	// Setup routes
	routes.SetupAuthRoutes(app, db)
	routes.SetupUserRoutes(app, db)
	routes.SetupItemRoutes(app, db)
	routes.SetupWarehouseRoutes(app, db)
	routes.SetupStoreRoutes(app, db)
	routes.SetupPurchaseRoutes(app, db)
	routes.SetupTransferRoutes(app, db)
	routes.SetupDashboardRoutes(app, db)

	port := config.APP_PORT
	fmt.Println("🚀 Server berjalan di port " + port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
