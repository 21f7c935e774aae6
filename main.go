package main

import (
	"coursereg/config"
	"coursereg/database"
	adminRoutes "coursereg/routers/adminRoutes"
	authRoutes "coursereg/routers/authRoutes"
	courseRoutes "coursereg/routers/courseRoutes"
	studentRoutes "coursereg/routers/studentRoutes"
	"coursereg/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	// Credentials travel in a cookie, so the browser origin must be explicit
	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.AppConfig.ClientOrigin,
		AllowMethods:     "GET,POST,PUT,DELETE",
		AllowHeaders:     "Content-Type",
		AllowCredentials: true,
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve the built frontend from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	studentRoutes.SetupStudentRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	utils.StartNotificationScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
