package courseValidator

import (
	"strconv"
	"strings"

	"learntrack/middleware"

	"github.com/gofiber/fiber/v2"
)

type CreateCourseRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	VideoURL    string `json:"video_url"`
}

type UpdateCourseRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	VideoURL    *string `json:"video_url"`
}

type AssignCourseRequest struct {
	UserID   uint `json:"user_id"`
	CourseID uint `json:"course_id"`
}

type CreateResourceRequest struct {
	FileName string `json:"file_name"`
	FileSize string `json:"file_size"`
	FileURL  string `json:"file_url"`
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		} else if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if strings.TrimSpace(reqData.VideoURL) == "" {
			errors["video_url"] = "Video URL is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateCourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Title != nil && len(strings.TrimSpace(*reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		if reqData.VideoURL != nil && strings.TrimSpace(*reqData.VideoURL) == "" {
			errors["video_url"] = "Video URL cannot be empty!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

// CourseID validates the :id route parameter and stores it as an int
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
		}

		c.Locals("courseID", id)
		return c.Next()
	}
}

func AssignCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AssignCourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.UserID == 0 {
			errors["user_id"] = "User ID is required!"
		}
		if reqData.CourseID == 0 {
			errors["course_id"] = "Course ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAssignment", reqData)
		return c.Next()
	}
}

func CreateResource() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateResourceRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.FileName) == "" {
			errors["file_name"] = "File name is required!"
		}
		if strings.TrimSpace(reqData.FileURL) == "" {
			errors["file_url"] = "File URL is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedResource", reqData)
		return c.Next()
	}
}
