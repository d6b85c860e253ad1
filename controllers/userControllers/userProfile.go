package userController

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"

	"learnhub/middleware"
	courseModels "learnhub/models/course"
	"learnhub/repository"
	userValidator "learnhub/validators/userValidator"
)

type UserController struct {
	Users       repository.UserRepository
	Enrollments repository.EnrollmentRepository
	Progress    repository.ProgressRepository
}

func NewUserController(
	users repository.UserRepository,
	enrollments repository.EnrollmentRepository,
	progress repository.ProgressRepository,
) *UserController {
	return &UserController{Users: users, Enrollments: enrollments, Progress: progress}
}

// Profile returns the current user record
func (ctrl *UserController) Profile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	user, err := ctrl.Users.GetByID(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", user)
}

// EditProfile overwrites first name, last name and email on the current user
func (ctrl *UserController) EditProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	user, err := ctrl.Users.GetByID(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedProfile").(*userValidator.EditProfileRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	user.FirstName = reqData.FirstName
	user.LastName = reqData.LastName
	user.Email = reqData.Email

	if err := ctrl.Users.Update(&user); err != nil {
		log.Printf("Error updating profile for user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully", user)
}

// Dashboard aggregates the user's enrollments with per-course progress. A
// course without a progress row falls back to the fixed default percentage.
func (ctrl *UserController) Dashboard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	if _, err := ctrl.Users.GetByID(userID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	enrollments, err := ctrl.Enrollments.ListByUser(userID)
	if err != nil {
		log.Printf("Error fetching enrollments for user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	courses := make([]courseModels.Course, 0, len(enrollments))
	progressMap := make(map[uint]uint, len(enrollments))

	for _, enrollment := range enrollments {
		courses = append(courses, enrollment.Course)

		if progress, err := ctrl.Progress.Get(userID, enrollment.CourseID); err == nil {
			progressMap[enrollment.CourseID] = progress.ProgressPercentage
		} else {
			progressMap[enrollment.CourseID] = courseModels.DefaultProgressPercentage
		}
	}

	enrolledThisMonth, err := ctrl.Enrollments.CountSince(userID, now.BeginningOfMonth())
	if err != nil {
		log.Printf("Error counting recent enrollments for user %d: %v", userID, err)
		enrolledThisMonth = 0
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"courses":             courses,
		"progress":            progressMap,
		"enrolled_this_month": enrolledThisMonth,
	})
}

// MyCourses lists the user's enrollments with their courses
func (ctrl *UserController) MyCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	if _, err := ctrl.Users.GetByID(userID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	enrollments, err := ctrl.Enrollments.ListByUser(userID)
	if err != nil {
		log.Printf("Error fetching enrollments for user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": enrollments,
	})
}
