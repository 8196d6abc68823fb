package authValidator

import (
	"learntrack/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type SignupRequest struct {
	FullName string `json:"full_name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func Signup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SignupRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedSignup", reqData)
		return c.Next()
	}
}

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}

// fieldErrors flattens validator errors into the field->message map used by
// ValidationErrorResponse
func fieldErrors(err error) map[string]string {
	errors := make(map[string]string)
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, verr := range verrs {
			errors[verr.Field()] = "failed on the '" + verr.Tag() + "' rule"
		}
	}
	return errors
}
