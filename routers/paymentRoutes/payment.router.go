package paymentRoutes

import (
	"github.com/gofiber/fiber/v2"

	paymentControllers "learnhub/controllers/payment"
	"learnhub/middleware"
	paymentValidators "learnhub/validators/payment"
)

func SetupPaymentRoutes(app *fiber.App, ctrl *paymentControllers.PaymentController) {
	app.Get("/payment/:courseId", middleware.JWTMiddleware, paymentValidators.CreateOrder(), ctrl.CreateOrder)
	app.Get("/payment-success/:courseId", middleware.JWTMiddleware, paymentValidators.PaymentSuccess(), ctrl.PaymentSuccess)
}
