package courseController

import (
	"log"

	"learntrack/database"
	"learntrack/middleware"
	"learntrack/models"
	courseValidator "learntrack/validators/course"

	"github.com/gofiber/fiber/v2"
)

func CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CreateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := models.Course{
		Title:       reqData.Title,
		Description: reqData.Description,
		VideoURL:    reqData.VideoURL,
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		log.Printf("Error creating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

func UpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedCourseUpdate").(*courseValidator.UpdateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	updates := make(map[string]interface{})
	if reqData.Title != nil {
		updates["title"] = *reqData.Title
	}
	if reqData.Description != nil {
		updates["description"] = *reqData.Description
	}
	if reqData.VideoURL != nil {
		updates["video_url"] = *reqData.VideoURL
	}

	if len(updates) > 0 {
		if err := db.Model(&course).Updates(updates).Error; err != nil {
			log.Printf("Error updating course %d: %v", courseID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var quizzes []models.Quiz
	db.Where("course_id = ?", course.ID).Order("id asc").Find(&quizzes)

	var resources []models.Resource
	db.Where("course_id = ?", course.ID).Order("id asc").Find(&resources)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", fiber.Map{
		"course":    course,
		"quizzes":   quizzes,
		"resources": resources,
	})
}

func GetAllCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := database.Database.Db.Where("is_deleted = ?", false).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// GetMyCourses lists the courses assigned to the authenticated learner
func GetMyCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var courses []models.Course
	err := database.Database.Db.
		Joins("JOIN enrollments ON enrollments.course_id = courses.id").
		Where("enrollments.user_id = ? AND courses.is_deleted = ?", userID, false).
		Order("enrollments.created_at desc").
		Find(&courses).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled courses fetched!", courses)
}

// DeleteCourse soft deletes a course and removes its dependent records.
// Quizzes, submissions, resources, enrollments and progress are owned by the
// course and go with it.
func DeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	tx := db.Begin()

	var quizIDs []uint
	if err := tx.Model(&models.Quiz{}).Where("course_id = ?", course.ID).Pluck("id", &quizIDs).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	if len(quizIDs) > 0 {
		if err := tx.Where("quiz_id IN ?", quizIDs).Delete(&models.QuizSubmission{}).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
		}
		if err := tx.Where("id IN ?", quizIDs).Delete(&models.Quiz{}).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
		}
	}

	if err := tx.Where("course_id = ?", course.ID).Delete(&models.Resource{}).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	// Enrollment and progress rows go permanently so their (user, course)
	// unique indexes stay clear for a later re-assignment
	for _, model := range []interface{}{&models.Enrollment{}, &models.Progress{}} {
		if err := tx.Unscoped().Where("course_id = ?", course.ID).Delete(model).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
		}
	}

	if err := tx.Model(&course).Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	if err := tx.Commit().Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", course)
}
