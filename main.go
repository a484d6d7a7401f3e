package main

import (
	"flag"
	"log"
	"os"

	"comanda/db"
	"comanda/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	seed := flag.Bool("seed", false, "load the demo dataset and exit")
	flag.Parse()

	// Initialize database
	db.InitDatabase()

	if *seed {
		if err := seedDemoData(); err != nil {
			log.Fatal("Failed to seed demo data:", err)
		}
		log.Println("Demo data loaded")
		return
	}

	uploadDir := os.Getenv("COMANDA_UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	if _, err := os.Stat(uploadDir); os.IsNotExist(err) {
		os.Mkdir(uploadDir, 0755)
	}
	routes.UploadDir = uploadDir

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Serve static files
	app.Static("/uploads", "./"+uploadDir)

	// Setup routes
	routes.SetupRoutes(app)

	addr := os.Getenv("COMANDA_ADDR")
	if addr == "" {
		addr = ":8000"
	}

	// Start server
	log.Fatal(app.Listen(addr))
}
