package progressValidator

import (
	"learntrack/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type UpdateProgressRequest struct {
	IsCompleted      bool    `json:"is_completed"`
	PlaybackPosition float64 `json:"playback_position" validate:"gte=0,lte=1"`
	Notes            string  `json:"notes"`
}

func UpdateProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateProgressRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			if verrs, ok := err.(validator.ValidationErrors); ok {
				for _, verr := range verrs {
					errors[verr.Field()] = "failed on the '" + verr.Tag() + "' rule"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}
