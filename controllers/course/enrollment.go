package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"learnhub/middleware"
	"learnhub/repository"
	"learnhub/utils"
)

type EnrollmentController struct {
	Users       repository.UserRepository
	Courses     repository.CourseRepository
	Enrollments repository.EnrollmentRepository
	Progress    repository.ProgressRepository
}

func NewEnrollmentController(
	users repository.UserRepository,
	courses repository.CourseRepository,
	enrollments repository.EnrollmentRepository,
	progress repository.ProgressRepository,
) *EnrollmentController {
	return &EnrollmentController{Users: users, Courses: courses, Enrollments: enrollments, Progress: progress}
}

// EnrollInCourse idempotently enrolls the current user in a course. The
// Enrollment and UserCourseProgress rows are created together; repeating the
// call reports already-enrolled and changes nothing. Paid courses can be
// enrolled through this path too — no payment check is made here, matching
// the system this was ported from.
func (ctrl *EnrollmentController) EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	user, err := ctrl.Users.GetByID(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	course, err := ctrl.Courses.GetByID(uint(courseID))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	enrollment, created, err := ctrl.Enrollments.GetOrCreate(userID, course.ID)
	if err != nil {
		log.Printf("Error enrolling user %d in course %d: %v", userID, course.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	if _, _, err := ctrl.Progress.GetOrCreate(userID, course.ID); err != nil {
		log.Printf("Error creating progress for user %d in course %d: %v", userID, course.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	if !created {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "You are already enrolled in this course.", enrollment)
	}

	if user.Email != "" {
		go func(email, username, title string) {
			if err := utils.SendEnrollmentEmail(email, username, title); err != nil {
				log.Printf("Error sending enrollment email: %v", err)
			}
		}(user.Email, user.Username, course.Title)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Successfully enrolled!", enrollment)
}
