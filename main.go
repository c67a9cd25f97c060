package main

import (
	"certhub/config"
	"certhub/database"
	certificateRoutes "certhub/routers/certificateRoutes"
	facultyRoutes "certhub/routers/facultyRoutes"
	studentRoutes "certhub/routers/studentRoutes"
	"certhub/utils"

	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New(fiber.Config{
		BodyLimit: config.AppConfig.MaxUploadMB * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded certificates so the dashboard can link to them
	app.Static("/uploads", "./"+config.AppConfig.UploadDir)

	studentRoutes.SetupStudentRoutes(app)
	certificateRoutes.SetupCertificateRoutes(app)
	facultyRoutes.SetupFacultyRoutes(app)

	utils.StartCleanupScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
