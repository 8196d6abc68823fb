package courseRoutes

import (
	adminControllers "learntrack/controllers/admin"
	courseControllers "learntrack/controllers/course"
	quizControllers "learntrack/controllers/quiz"
	"learntrack/middleware"
	courseValidators "learntrack/validators/course"
	quizValidators "learntrack/validators/quiz"
	userValidators "learntrack/validators/user"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up all admin-only management routes
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.AdminOnly())

	// Course management
	adminGroup.Post("/courses", courseValidators.CreateCourse(), courseControllers.CreateCourse)
	adminGroup.Put("/courses/:id", courseValidators.CourseID(), courseValidators.UpdateCourse(), courseControllers.UpdateCourse)
	adminGroup.Delete("/courses/:id", courseValidators.CourseID(), courseControllers.DeleteCourse)

	// Resources
	adminGroup.Post("/courses/:id/resources", courseValidators.CourseID(), courseValidators.CreateResource(), courseControllers.CreateResource)
	adminGroup.Delete("/resources/:id", courseControllers.DeleteResource)

	// Course assignment
	adminGroup.Post("/assignments", courseValidators.AssignCourse(), courseControllers.AssignCourse)

	// Quiz management
	adminGroup.Post("/quizzes", quizValidators.CreateQuiz(), quizControllers.CreateQuiz)
	adminGroup.Put("/quizzes/:id", quizValidators.QuizID(), quizValidators.ReplaceQuestions(), quizControllers.ReplaceQuestions)
	adminGroup.Post("/courses/:id/quiz/generate", courseValidators.CourseID(), quizValidators.GenerateQuiz(), quizControllers.GenerateQuiz)

	// User management
	adminGroup.Get("/users", adminControllers.ListUsers)
	adminGroup.Put("/users/:id", userValidators.UserID(), userValidators.UpdateUser(), adminControllers.UpdateUser)
	adminGroup.Delete("/users/:id", userValidators.UserID(), adminControllers.DeleteUser)

	// Reporting
	adminGroup.Get("/recent-activity", adminControllers.RecentActivity)
	adminGroup.Get("/reports", adminControllers.UserReports)
	adminGroup.Get("/reports/:id", userValidators.UserID(), adminControllers.UserDetailedReport)
}
