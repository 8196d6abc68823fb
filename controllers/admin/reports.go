package adminController

import (
	"math"

	"learntrack/database"
	"learntrack/middleware"
	"learntrack/models"

	"github.com/gofiber/fiber/v2"
)

// UserReportItem is the per-learner summary row on the admin dashboard
type UserReportItem struct {
	UserID               uint    `json:"user_id"`
	FullName             string  `json:"full_name"`
	Email                string  `json:"email"`
	CoursesEnrolled      int     `json:"courses_enrolled"`
	CoursesCompleted     int     `json:"courses_completed"`
	CompletionPercentage float64 `json:"completion_percentage"`
}

// CourseProgressReport is one course row of a learner's detailed report
type CourseProgressReport struct {
	CourseID    uint   `json:"course_id"`
	CourseTitle string `json:"course_title"`
	VideoStatus string `json:"video_status"` // Not Started, Started
	QuizScore   *int   `json:"quiz_score"`   // best score, nil when the course has no quiz
	IsCompleted bool   `json:"is_completed"`
}

// UserReports summarizes every learner's enrollment and completion state.
// Completion percentage averages each course's progress, where a completed
// course counts as 1.0 and an in-flight one as its playback position.
func UserReports(c *fiber.Ctx) error {
	db := database.Database.Db

	var learners []models.User
	if err := db.Where("role = ? AND is_deleted = ?", "LEARNER", false).Order("created_at desc").Find(&learners).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reports!", nil)
	}

	reports := make([]UserReportItem, 0, len(learners))
	for _, learner := range learners {
		var progressRows []models.Progress
		if err := db.Where("user_id = ?", learner.ID).Find(&progressRows).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reports!", nil)
		}

		totalCourses := len(progressRows)
		completed := 0
		progressSum := 0.0
		for _, p := range progressRows {
			if p.IsCompleted {
				completed++
				progressSum += 1.0
			} else {
				progressSum += p.PlaybackPosition
			}
		}

		completionPercentage := 0.0
		if totalCourses > 0 {
			completionPercentage = math.Round(progressSum/float64(totalCourses)*1000) / 10
		}

		reports = append(reports, UserReportItem{
			UserID:               learner.ID,
			FullName:             learner.FullName,
			Email:                learner.Email,
			CoursesEnrolled:      totalCourses,
			CoursesCompleted:     completed,
			CompletionPercentage: completionPercentage,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reports fetched successfully!", reports)
}

// UserDetailedReport breaks down a single learner's standing per course
func UserDetailedReport(c *fiber.Ctx) error {
	targetID := c.Locals("targetUserID").(int)

	db := database.Database.Db

	var learner models.User
	if err := db.Where("id = ? AND is_deleted = ?", targetID, false).First(&learner).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	var enrollments []models.Enrollment
	if err := db.Where("user_id = ?", learner.ID).Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch report!", nil)
	}

	courseReports := make([]CourseProgressReport, 0, len(enrollments))
	for _, enrollment := range enrollments {
		var course models.Course
		if err := db.First(&course, enrollment.CourseID).Error; err != nil {
			continue
		}

		var progress models.Progress
		hasProgress := db.Where("user_id = ? AND course_id = ?", learner.ID, course.ID).First(&progress).Error == nil

		var quizIDs []uint
		db.Model(&models.Quiz{}).Where("course_id = ?", course.ID).Pluck("id", &quizIDs)

		var bestScore *int
		if len(quizIDs) > 0 {
			var best struct{ Max int }
			err := db.Model(&models.QuizSubmission{}).
				Select("COALESCE(MAX(score), 0) AS max").
				Where("user_id = ? AND quiz_id IN ?", learner.ID, quizIDs).
				Scan(&best).Error
			if err == nil {
				bestScore = &best.Max
			}
		}

		videoStatus := "Not Started"
		isCompleted := false
		if hasProgress {
			isCompleted = progress.IsCompleted
			if progress.PlaybackPosition > 0 {
				videoStatus = "Started"
			}
		}

		courseReports = append(courseReports, CourseProgressReport{
			CourseID:    course.ID,
			CourseTitle: course.Title,
			VideoStatus: videoStatus,
			QuizScore:   bestScore,
			IsCompleted: isCompleted,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Detailed report fetched!", fiber.Map{
		"user_id":   learner.ID,
		"full_name": learner.FullName,
		"email":     learner.Email,
		"courses":   courseReports,
	})
}
