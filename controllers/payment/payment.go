package paymentController

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"learnhub/gateway"
	"learnhub/middleware"
	"learnhub/models"
	"learnhub/repository"
)

const paymentStatusSuccess = "Success"

// PaymentController runs the two-step checkout flow. The gateway client is
// injected at construction; there is no process-wide gateway singleton.
type PaymentController struct {
	Gateway     gateway.Client
	Users       repository.UserRepository
	Courses     repository.CourseRepository
	Payments    repository.PaymentRepository
	Enrollments repository.EnrollmentRepository
	Progress    repository.ProgressRepository
}

func NewPaymentController(
	gw gateway.Client,
	users repository.UserRepository,
	courses repository.CourseRepository,
	payments repository.PaymentRepository,
	enrollments repository.EnrollmentRepository,
	progress repository.ProgressRepository,
) *PaymentController {
	return &PaymentController{
		Gateway:     gw,
		Users:       users,
		Courses:     courses,
		Payments:    payments,
		Enrollments: enrollments,
		Progress:    progress,
	}
}

// CreateOrder requests a gateway order for the course price and returns the
// order handle plus the public key for the client-side checkout widget.
func (ctrl *PaymentController) CreateOrder(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	if _, err := ctrl.Users.GetByID(userID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	course, err := ctrl.Courses.GetByID(uint(courseID))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	amountInPaise := int(course.Price * 100)

	order, err := ctrl.Gateway.CreateOrder(amountInPaise, uuid.NewString())
	if err != nil {
		log.Printf("Error creating gateway order for course %d: %v", course.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create payment order!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment order created!", fiber.Map{
		"course":          course,
		"order_id":        order.ID,
		"razorpay_key_id": ctrl.Gateway.KeyID(),
		"amount_in_paise": amountInPaise,
		"currency":        order.Currency,
	})
}

// PaymentSuccess finalizes a checkout: persists the Payment audit row and
// idempotently enrolls the user. The gateway-supplied payment_id is trusted
// as-is; no signature verification is performed. Anyone holding a course id
// can mark themselves enrolled by supplying an arbitrary payment_id — an
// inherited gap, kept intentionally. See DESIGN.md.
func (ctrl *PaymentController) PaymentSuccess(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	if _, err := ctrl.Users.GetByID(userID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)
	paymentID := c.Locals("paymentID").(string)
	orderID, _ := c.Locals("orderID").(string)

	course, err := ctrl.Courses.GetByID(uint(courseID))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	payment := models.Payment{
		UserID:    userID,
		CourseID:  course.ID,
		PaymentID: paymentID,
		OrderID:   orderID,
		Status:    paymentStatusSuccess,
	}
	if err := ctrl.Payments.Create(&payment); err != nil {
		log.Printf("Error saving payment for course %d: %v", course.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record payment!", nil)
	}

	enrollment, _, err := ctrl.Enrollments.GetOrCreate(userID, course.ID)
	if err != nil {
		log.Printf("Error enrolling user %d after payment: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Payment recorded but enrollment failed!", nil)
	}

	if _, _, err := ctrl.Progress.GetOrCreate(userID, course.ID); err != nil {
		log.Printf("Error creating progress for user %d after payment: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Payment recorded but enrollment failed!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment successful and course enrolled!", fiber.Map{
		"payment":    payment,
		"enrollment": enrollment,
	})
}
