package adminController

import (
	"log"

	"learntrack/database"
	"learntrack/middleware"
	"learntrack/models"
	userValidator "learntrack/validators/user"

	"github.com/gofiber/fiber/v2"
)

func ListUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.Database.Db.Where("is_deleted = ?", false).Order("created_at desc").Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	for i := range users {
		users[i].Password = ""
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", users)
}

func UpdateUser(c *fiber.Ctx) error {
	targetID := c.Locals("targetUserID").(int)

	reqData, ok := c.Locals("validatedUserUpdate").(*userValidator.UpdateUserRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", targetID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	updates := make(map[string]interface{})
	if reqData.FullName != nil {
		updates["full_name"] = *reqData.FullName
	}
	if reqData.Email != nil {
		updates["email"] = *reqData.Email
	}
	if reqData.IsActive != nil {
		updates["is_active"] = *reqData.IsActive
	}
	// Promotion to ADMIN through the API is blocked to keep a single admin
	if reqData.Role != nil && *reqData.Role != "ADMIN" {
		updates["role"] = *reqData.Role
	}

	if len(updates) > 0 {
		if err := db.Model(&user).Updates(updates).Error; err != nil {
			log.Printf("Error updating user %d: %v", targetID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user!", nil)
		}
	}

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User updated successfully!", user)
}

// DeleteUser removes a learner account. Self-deletion and deleting another
// administrator are rejected.
func DeleteUser(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	targetID := c.Locals("targetUserID").(int)

	if uint(targetID) == userID {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Cannot delete yourself!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", targetID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if user.Role == "ADMIN" {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Cannot delete another administrator!", nil)
	}

	tx := db.Begin()

	// The learner's enrollment-owned records go with the account. Enrollment
	// and progress are removed permanently so their (user, course) unique
	// indexes never trip on a tombstone
	for _, model := range []interface{}{&models.Enrollment{}, &models.Progress{}} {
		if err := tx.Unscoped().Where("user_id = ?", user.ID).Delete(model).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
		}
	}
	if err := tx.Where("user_id = ?", user.ID).Delete(&models.QuizSubmission{}).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
	}

	if err := tx.Model(&user).Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
	}

	if err := tx.Commit().Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
	}

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted successfully!", user)
}

// RecentActivity lists the most recently registered learners
func RecentActivity(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 5)
	if limit < 1 || limit > 100 {
		limit = 5
	}

	var users []models.User
	err := database.Database.Db.
		Where("role = ? AND is_deleted = ?", "LEARNER", false).
		Order("created_at desc").
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch recent activity!", nil)
	}

	for i := range users {
		users[i].Password = ""
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Recent activity fetched!", users)
}
