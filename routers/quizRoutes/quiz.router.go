package quizRoutes

import (
	controllers "learntrack/controllers/quiz"
	"learntrack/middleware"
	validators "learntrack/validators/quiz"

	"github.com/gofiber/fiber/v2"
)

func SetupQuizRoutes(app *fiber.App) {
	quizGroup := app.Group("/quiz", middleware.JWTMiddleware)

	quizGroup.Post("/submit", validators.SubmitQuiz(), controllers.SubmitQuiz)
	quizGroup.Get("/submission/:id", validators.QuizID(), controllers.GetSubmission)
	quizGroup.Get("/:id", validators.QuizID(), controllers.GetQuiz)
}
