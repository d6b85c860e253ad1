package paymentValidator

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"learnhub/middleware"
)

// CreateOrder validates the payment initiation request
func CreateOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("courseId"))
		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// PaymentSuccess validates the gateway return request. A missing payment_id
// aborts before anything is persisted; the response carries the catalog path
// for the client to fall back to.
func PaymentSuccess() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("courseId"))
		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		paymentID := strings.TrimSpace(c.Query("payment_id"))
		if paymentID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Payment failed: payment ID missing", fiber.Map{
				"redirect": "/courses",
			})
		}

		c.Locals("courseID", courseID)
		c.Locals("paymentID", paymentID)
		c.Locals("orderID", strings.TrimSpace(c.Query("order_id")))
		return c.Next()
	}
}
