package userValidator

import (
	"strconv"

	"learntrack/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type UpdateUserRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,min=2"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Role     *string `json:"role" validate:"omitempty,oneof=LEARNER ADMIN"`
	IsActive *bool   `json:"is_active"`
}

func UpdateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateUserRequest)

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

		c.Locals("validatedUserUpdate", reqData)
		return c.Next()
	}
}

// UserID validates the :id route parameter
func UserID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user ID!", nil)
		}

		c.Locals("targetUserID", id)
		return c.Next()
	}
}
