package authRoutes

import (
	"github.com/gofiber/fiber/v2"

	authControllers "learnhub/controllers/auth"
	authValidators "learnhub/validators/auth"
)

func SetupAuthRoutes(app *fiber.App, ctrl *authControllers.AuthController) {
	app.Post("/register", authValidators.Register(), ctrl.Register)
	app.Post("/login", authValidators.Login(), ctrl.Login)
	app.Post("/logout", ctrl.Logout)
}
