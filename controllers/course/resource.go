package courseController

import (
	"log"
	"strconv"

	"learntrack/database"
	"learntrack/middleware"
	"learntrack/models"
	courseValidator "learntrack/validators/course"

	"github.com/gofiber/fiber/v2"
)

func CreateResource(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedResource").(*courseValidator.CreateResourceRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	resource := models.Resource{
		CourseID: course.ID,
		FileName: reqData.FileName,
		FileSize: reqData.FileSize,
		FileURL:  reqData.FileURL,
	}

	if err := db.Create(&resource).Error; err != nil {
		log.Printf("Error creating resource: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create resource!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Resource created successfully!", resource)
}

func GetResources(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var resources []models.Resource
	if err := database.Database.Db.Where("course_id = ?", courseID).Order("id asc").Find(&resources).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch resources!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resources fetched successfully!", resources)
}

func DeleteResource(c *fiber.Ctx) error {
	resourceID, err := strconv.Atoi(c.Params("id"))
	if err != nil || resourceID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid resource ID!", nil)
	}

	db := database.Database.Db

	var resource models.Resource
	if err := db.First(&resource, resourceID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Resource not found!", nil)
	}

	if err := db.Delete(&resource).Error; err != nil {
		log.Printf("Error deleting resource %d: %v", resourceID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete resource!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resource deleted successfully!", resource)
}
