package userRoutes

import (
	authControllers "learntrack/controllers/auth"
	courseControllers "learntrack/controllers/course"
	quizControllers "learntrack/controllers/quiz"
	"learntrack/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes wires the authenticated learner's own views
func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user", middleware.JWTMiddleware)

	userGroup.Get("/me", authControllers.Me)
	userGroup.Get("/stats", quizControllers.UserStats)
	userGroup.Get("/quiz/history", quizControllers.QuizHistory)
	userGroup.Get("/courses", courseControllers.GetMyCourses)
}
