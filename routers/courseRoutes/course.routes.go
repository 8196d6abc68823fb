package courseRoutes

import (
	controllers "learntrack/controllers/course"
	"learntrack/middleware"
	validators "learntrack/validators/course"
	progressValidators "learntrack/validators/progress"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all user-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course", middleware.JWTMiddleware)

	// Course listing and details
	courseGroup.Get("/list", controllers.GetAllCourses)
	courseGroup.Get("/:id", validators.CourseID(), controllers.GetCourseDetails)

	// Course resources
	courseGroup.Get("/:id/resources", validators.CourseID(), controllers.GetResources)

	// Progress tracking
	courseGroup.Get("/:id/progress", validators.CourseID(), controllers.GetUserProgress)
	courseGroup.Put("/:id/progress", validators.CourseID(), progressValidators.UpdateProgress(), controllers.UpdateUserProgress)
}
