package main

import (
	"log"

	"learntrack/config"
	"learntrack/database"
	authRoutes "learntrack/routers/authRoutes"
	courseRoutes "learntrack/routers/courseRoutes"
	quizRoutes "learntrack/routers/quizRoutes"
	userRoutes "learntrack/routers/userRoutes"
	"learntrack/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	courseRoutes.SetupAdminRoutes(app)
	quizRoutes.SetupQuizRoutes(app)

	utils.StartReportScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
