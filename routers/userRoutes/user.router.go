package userProfileRoutes

import (
	"github.com/gofiber/fiber/v2"

	userControllers "learnhub/controllers/userControllers"
	"learnhub/middleware"
	userValidators "learnhub/validators/userValidator"
)

func SetupUserRoutes(app *fiber.App, ctrl *userControllers.UserController) {
	app.Get("/dashboard", middleware.JWTMiddleware, ctrl.Dashboard)
	app.Get("/my-courses", middleware.JWTMiddleware, ctrl.MyCourses)
	app.Get("/profile", middleware.JWTMiddleware, ctrl.Profile)
	app.Put("/edit-profile", middleware.JWTMiddleware, userValidators.EditProfile(), ctrl.EditProfile)
}
