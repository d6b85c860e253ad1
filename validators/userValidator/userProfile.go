package userValidator

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"learnhub/middleware"
)

var validate = validator.New()

// EditProfileRequest is the profile update payload. All fields overwrite the
// stored values; email must be well-formed when supplied.
type EditProfileRequest struct {
	FirstName string `json:"first_name" validate:"omitempty,max=150"`
	LastName  string `json:"last_name" validate:"omitempty,max=150"`
	Email     string `json:"email" validate:"omitempty,email"`
}

// EditProfile validator middleware
func EditProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EditProfileRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "Email":
					errors["email"] = "Invalid email!"
				default:
					errors[strings.ToLower(fieldErr.Field())] = "Invalid value!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProfile", reqData)
		return c.Next()
	}
}
