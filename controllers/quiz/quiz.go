package quizController

import (
	"encoding/json"
	"errors"
	"log"

	"learntrack/config"
	"learntrack/database"
	"learntrack/middleware"
	"learntrack/models"
	"learntrack/scoring"
	"learntrack/utils"
	quizValidator "learntrack/validators/quiz"

	"github.com/gofiber/fiber/v2"
)

func CreateQuiz(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedQuiz").(*quizValidator.CreateQuizRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	raw, err := json.Marshal(reqData.Questions)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid question data!", nil)
	}

	quiz := models.Quiz{
		CourseID:  course.ID,
		Title:     reqData.Title,
		Questions: raw,
	}

	if err := db.Create(&quiz).Error; err != nil {
		log.Printf("Error creating quiz: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz created successfully!", quiz)
}

// ReplaceQuestions swaps a quiz's entire question set. Partial edits are not
// supported; historical submissions keep their captured response details.
func ReplaceQuestions(c *fiber.Ctx) error {
	quizID := c.Locals("quizID").(int)

	reqData, ok := c.Locals("validatedQuizUpdate").(*quizValidator.ReplaceQuestionsRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var quiz models.Quiz
	if err := db.First(&quiz, quizID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	raw, err := json.Marshal(reqData.Questions)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid question data!", nil)
	}

	updates := map[string]interface{}{"questions": raw}
	if reqData.Title != nil {
		updates["title"] = *reqData.Title
	}

	if err := db.Model(&quiz).Updates(updates).Error; err != nil {
		log.Printf("Error updating quiz %d: %v", quizID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz updated successfully!", quiz)
}

// GetQuiz returns a quiz with its questions stripped of answer fields, so
// learners cannot read the answer key out of the payload.
func GetQuiz(c *fiber.Ctx) error {
	quizID := c.Locals("quizID").(int)

	var quiz models.Quiz
	if err := database.Database.Db.First(&quiz, quizID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	var stored []scoring.StoredQuestion
	if len(quiz.Questions) > 0 {
		if err := json.Unmarshal(quiz.Questions, &stored); err != nil {
			log.Printf("Error decoding questions for quiz %d: %v", quiz.ID, err)
		}
	}

	type questionView struct {
		Question string   `json:"question"`
		Options  []string `json:"options"`
	}
	questions := make([]questionView, 0, len(stored))
	for _, q := range stored {
		questions = append(questions, questionView{Question: q.Question, Options: q.Options})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz fetched successfully!", fiber.Map{
		"id":        quiz.ID,
		"course_id": quiz.CourseID,
		"title":     quiz.Title,
		"questions": questions,
	})
}

func SubmitQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedSubmission").(*quizValidator.SubmitQuizRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	store := scoring.NewStore(database.Database.Db, config.AppConfig.QuizPassPercent)

	submission, err := store.SubmitQuiz(userID, reqData.QuizID, reqData.Answers)
	if err != nil {
		if errors.Is(err, scoring.ErrQuizNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
		}
		log.Printf("Error submitting quiz %d for user %d: %v", reqData.QuizID, userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Quiz submission failed, please retry!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz submitted successfully!", submission)
}

func GetSubmission(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	submissionID := c.Locals("quizID").(int) // reuses the :id param validator

	store := scoring.NewStore(database.Database.Db, config.AppConfig.QuizPassPercent)

	submission, err := store.GetSubmission(uint(submissionID))
	if err != nil {
		if errors.Is(err, scoring.ErrSubmissionNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Submission not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch submission!", nil)
	}

	role, _ := c.Locals("userRole").(string)
	if submission.UserID != userID && role != "ADMIN" {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this submission!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submission fetched successfully!", submission)
}

func QuizHistory(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	store := scoring.NewStore(database.Database.Db, config.AppConfig.QuizPassPercent)

	history, err := store.ListHistory(userID)
	if err != nil {
		log.Printf("Error fetching quiz history for user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quiz history!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz history fetched!", history)
}

func UserStats(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	store := scoring.NewStore(database.Database.Db, config.AppConfig.QuizPassPercent)

	stats, err := store.UserStats(userID)
	if err != nil {
		log.Printf("Error fetching quiz stats for user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quiz stats!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz stats fetched!", stats)
}

// GenerateQuiz creates a quiz for a course from AI-generated questions. The
// generation call is a narrow external dependency; generated questions go
// through the same normalization as hand-written ones at scoring time.
func GenerateQuiz(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedGenerate").(*quizValidator.GenerateQuizRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	questions, err := utils.GenerateQuizQuestions(reqData.Text, reqData.NumQuestions)
	if err != nil {
		log.Printf("Error generating quiz for course %d: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to generate quiz!", nil)
	}

	raw, err := json.Marshal(questions)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate quiz!", nil)
	}

	title := reqData.Title
	if title == "" {
		title = course.Title + " Quiz"
	}

	quiz := models.Quiz{CourseID: course.ID, Title: title, Questions: raw}
	if err := db.Create(&quiz).Error; err != nil {
		log.Printf("Error saving generated quiz: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save generated quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz generated successfully!", quiz)
}
