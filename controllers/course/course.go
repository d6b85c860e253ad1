package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"learnhub/middleware"
	courseModels "learnhub/models/course"
	"learnhub/repository"
)

const homeCourseLimit = 4

type CourseController struct {
	Courses repository.CourseRepository
	Modules repository.ModuleRepository
	Videos  repository.VideoRepository
	Reviews repository.ReviewRepository
}

func NewCourseController(
	courses repository.CourseRepository,
	modules repository.ModuleRepository,
	videos repository.VideoRepository,
	reviews repository.ReviewRepository,
) *CourseController {
	return &CourseController{Courses: courses, Modules: modules, Videos: videos, Reviews: reviews}
}

// Home returns the home listing (first 4 courses)
func (ctrl *CourseController) Home(c *fiber.Ctx) error {
	courses, err := ctrl.Courses.List(homeCourseLimit)
	if err != nil {
		log.Printf("Error fetching home courses: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
	})
}

// GetAllCourses returns the full course listing
func (ctrl *CourseController) GetAllCourses(c *fiber.Ctx) error {
	courses, err := ctrl.Courses.List(0)
	if err != nil {
		log.Printf("Error fetching courses: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
	})
}

// videoView adds the resolved player and thumbnail URLs to a video record.
type videoView struct {
	courseModels.Video
	EmbedURL  string `json:"embed_url"`
	Thumbnail string `json:"thumbnail"`
}

type moduleView struct {
	courseModels.Module
	Videos []videoView `json:"videos"`
}

// GetCourseDetails returns a course with its modules, videos and reviews.
// When the request carries a valid token, the caller's own review rides along.
func (ctrl *CourseController) GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	course, err := ctrl.Courses.GetByID(uint(courseID))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	modules, err := ctrl.Modules.ListByCourse(course.ID)
	if err != nil {
		log.Printf("Error fetching modules for course %d: %v", course.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course modules!", nil)
	}

	moduleViews := make([]moduleView, len(modules))
	for i, module := range modules {
		videos, err := ctrl.Videos.ListByModule(module.ID)
		if err != nil {
			log.Printf("Error fetching videos for module %d: %v", module.ID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course videos!", nil)
		}

		videoViews := make([]videoView, len(videos))
		for j, video := range videos {
			videoViews[j] = videoView{
				Video:     video,
				EmbedURL:  video.EmbedURL(),
				Thumbnail: video.Thumbnail(),
			}
		}
		moduleViews[i] = moduleView{Module: module, Videos: videoViews}
	}

	reviews, err := ctrl.Reviews.ListByCourse(course.ID)
	if err != nil {
		log.Printf("Error fetching reviews for course %d: %v", course.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course reviews!", nil)
	}

	var userReview interface{}
	if userID, ok := c.Locals("userId").(uint); ok {
		if review, err := ctrl.Reviews.GetByUserAndCourse(userID, course.ID); err == nil {
			userReview = review
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", fiber.Map{
		"course":      course,
		"modules":     moduleViews,
		"reviews":     reviews,
		"user_review": userReview,
	})
}
