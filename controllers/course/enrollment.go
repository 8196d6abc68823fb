package courseController

import (
	"log"

	"learntrack/database"
	"learntrack/middleware"
	"learntrack/models"
	"learntrack/utils"
	courseValidator "learntrack/validators/course"
	progressValidator "learntrack/validators/progress"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm/clause"
)

// AssignCourse enrolls a learner in a course. The enrollment and its zeroed
// progress row are created in one transaction; repeating the assignment
// returns the existing enrollment.
func AssignCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAssignment").(*courseValidator.AssignCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var learner models.User
	if err := db.Where("id = ? AND is_deleted = ?", reqData.UserID, false).First(&learner).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var existing models.Enrollment
	if err := db.Where("user_id = ? AND course_id = ?", learner.ID, course.ID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "User already enrolled in this course!", existing)
	}

	enrollment := models.Enrollment{UserID: learner.ID, CourseID: course.ID}
	progress := models.Progress{UserID: learner.ID, CourseID: course.ID}

	// A concurrent assign that slipped past the existence check lands on the
	// (user_id, course_id) unique indexes; treat it as already enrolled
	onConflict := clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "course_id"}},
		DoNothing: true,
	}

	tx := db.Begin()
	if err := tx.Clauses(onConflict).Create(&enrollment).Error; err != nil {
		tx.Rollback()
		log.Printf("Error creating enrollment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to assign course!", nil)
	}
	if err := tx.Clauses(onConflict).Create(&progress).Error; err != nil {
		tx.Rollback()
		log.Printf("Error creating progress: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to assign course!", nil)
	}
	if err := tx.Commit().Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to assign course!", nil)
	}

	go func(email, name, courseTitle string) {
		if err := utils.SendEnrollmentEmail(email, name, courseTitle); err != nil {
			log.Printf("Error sending enrollment email to %s: %v", email, err)
		}
	}(learner.Email, learner.FullName, course.Title)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course assigned successfully!", enrollment)
}

func GetUserProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var progress models.Progress
	err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&progress).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not assigned or progress not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", progress)
}

func UpdateUserProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedProgress").(*progressValidator.UpdateProgressRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var progress models.Progress
	if err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&progress).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Progress not found!", nil)
	}

	updates := map[string]interface{}{
		"is_completed":      reqData.IsCompleted,
		"playback_position": reqData.PlaybackPosition,
		"notes":             reqData.Notes,
	}

	if err := db.Model(&progress).Updates(updates).Error; err != nil {
		log.Printf("Error updating progress for user %d course %d: %v", userID, courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully!", progress)
}
