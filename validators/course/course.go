package courseValidator

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"learnhub/middleware"
)

var validate = validator.New()

// courseIDParam validates the course id path parameter and stores it in Locals.
func courseIDParam(c *fiber.Ctx, param string) (int, bool) {
	idStr := strings.TrimSpace(c.Params(param))
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// GetCourseDetail validates the course detail request
func GetCourseDetail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := courseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}
		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// EnrollCourse validates the enrollment request
func EnrollCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := courseIDParam(c, "courseId")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}
		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// ReviewRequest is the review submission payload. Rating must sit in [1,5].
type ReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"omitempty,max=2000"`
}

// SubmitReview validates the review submission request
func SubmitReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := courseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		reqData := new(ReviewRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				if fieldErr.Field() == "Rating" {
					errors["rating"] = "Rating must be between 1 and 5!"
				} else {
					errors[strings.ToLower(fieldErr.Field())] = "Invalid value!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedReview", reqData)
		return c.Next()
	}
}
