package repository

import (
	"gorm.io/gorm"

	courseModels "learnhub/models/course"
)

// ReviewRepository is the data access surface for course reviews.
type ReviewRepository interface {
	Create(review *courseModels.Review) error
	ListByCourse(courseID uint) ([]courseModels.Review, error)
	GetByUserAndCourse(userID, courseID uint) (courseModels.Review, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(review *courseModels.Review) error {
	return r.db.Create(review).Error
}

func (r *reviewRepository) ListByCourse(courseID uint) ([]courseModels.Review, error) {
	var reviews []courseModels.Review
	err := r.db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("created_at desc").Find(&reviews).Error
	return reviews, err
}

// GetByUserAndCourse returns the user's most recent review for the course.
func (r *reviewRepository) GetByUserAndCourse(userID, courseID uint) (courseModels.Review, error) {
	var review courseModels.Review
	err := r.db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).
		Order("created_at desc").First(&review).Error
	return review, err
}
