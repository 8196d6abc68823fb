package quizValidator

import (
	"fmt"
	"strconv"
	"strings"

	"learntrack/middleware"
	"learntrack/scoring"

	"github.com/gofiber/fiber/v2"
)

type CreateQuizRequest struct {
	CourseID  uint                     `json:"course_id"`
	Title     string                   `json:"title"`
	Questions []scoring.StoredQuestion `json:"questions"`
}

type ReplaceQuestionsRequest struct {
	Title     *string                  `json:"title"`
	Questions []scoring.StoredQuestion `json:"questions"`
}

type SubmitQuizRequest struct {
	QuizID  uint  `json:"quiz_id"`
	Answers []int `json:"answers"`
}

type GenerateQuizRequest struct {
	Title        string `json:"title"`
	Text         string `json:"text"`
	NumQuestions int    `json:"num_questions"`
}

func CreateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateQuizRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CourseID == 0 {
			errors["course_id"] = "Course ID is required!"
		}
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		validateQuestions(reqData.Questions, errors)

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}

// ReplaceQuestions validates the replace-whole-set quiz update. Partial
// question edits are not supported.
func ReplaceQuestions() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ReplaceQuestionsRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		validateQuestions(reqData.Questions, errors)

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuizUpdate", reqData)
		return c.Next()
	}
}

func SubmitQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SubmitQuizRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.QuizID == 0 {
			errors["quiz_id"] = "Quiz ID is required!"
		}
		if reqData.Answers == nil {
			errors["answers"] = "Answers field is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSubmission", reqData)
		return c.Next()
	}
}

// QuizID validates the :id route parameter
func QuizID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz ID!", nil)
		}

		c.Locals("quizID", id)
		return c.Next()
	}
}

func GenerateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(GenerateQuizRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Text) == "" {
			errors["text"] = "Source text is required!"
		}
		if reqData.NumQuestions < 1 || reqData.NumQuestions > 50 {
			errors["num_questions"] = "Number of questions must be between 1 and 50!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedGenerate", reqData)
		return c.Next()
	}
}

// validateQuestions checks the stored shape only: question text and exactly
// four options. Answer encodings are left to normalization, which degrades
// malformed entries instead of rejecting the quiz.
func validateQuestions(questions []scoring.StoredQuestion, errors map[string]string) {
	if len(questions) == 0 {
		errors["questions"] = "At least one question is required!"
		return
	}

	for i, q := range questions {
		if strings.TrimSpace(q.Question) == "" {
			errors[fmt.Sprintf("questions.%d.question", i)] = "Question text is required!"
		}
		if len(q.Options) != 4 {
			errors[fmt.Sprintf("questions.%d.options", i)] = "Exactly 4 options are required!"
		}
	}
}
