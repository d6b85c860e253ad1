package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"learnhub/middleware"
	courseModels "learnhub/models/course"
	"learnhub/repository"
	courseValidator "learnhub/validators/course"
)

type ReviewController struct {
	Courses repository.CourseRepository
	Reviews repository.ReviewRepository
}

func NewReviewController(courses repository.CourseRepository, reviews repository.ReviewRepository) *ReviewController {
	return &ReviewController{Courses: courses, Reviews: reviews}
}

// SubmitReview records a student's rating of a course. A student may review
// the same course more than once; each submission is a new row.
func (ctrl *ReviewController) SubmitReview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedReview").(*courseValidator.ReviewRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := ctrl.Courses.GetByID(uint(courseID))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	review := courseModels.Review{
		CourseID: course.ID,
		UserID:   userID,
		Rating:   reqData.Rating,
		Comment:  reqData.Comment,
	}

	if err := ctrl.Reviews.Create(&review); err != nil {
		log.Printf("Error saving review for course %d: %v", course.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit review!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Review submitted successfully!", review)
}
