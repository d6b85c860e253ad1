package courseRoutes

import (
	"github.com/gofiber/fiber/v2"

	courseControllers "learnhub/controllers/course"
	"learnhub/middleware"
	courseValidators "learnhub/validators/course"
)

// SetupCourseRoutes sets up the catalog, enrollment and review routes
func SetupCourseRoutes(
	app *fiber.App,
	courses *courseControllers.CourseController,
	enrollments *courseControllers.EnrollmentController,
	reviews *courseControllers.ReviewController,
) {
	// Catalog (public; detail personalizes when a token is present)
	app.Get("/", courses.Home)
	app.Get("/courses", courses.GetAllCourses)
	app.Get("/course/:id", middleware.OptionalJWTMiddleware, courseValidators.GetCourseDetail(), courses.GetCourseDetails)

	// Free enrollment (the original accepted both verbs)
	app.Post("/enroll/:courseId", middleware.JWTMiddleware, courseValidators.EnrollCourse(), enrollments.EnrollInCourse)
	app.Get("/enroll/:courseId", middleware.JWTMiddleware, courseValidators.EnrollCourse(), enrollments.EnrollInCourse)

	// Reviews
	app.Post("/course/:id/review", middleware.JWTMiddleware, courseValidators.SubmitReview(), reviews.SubmitReview)
}
