package repository

import (
	"time"

	"gorm.io/gorm"

	courseModels "learnhub/models/course"
)

// EnrollmentRepository is the data access surface for enrollments. GetOrCreate
// is the only race-sensitive operation in the system; the composite unique
// index on (user_id, course_id) makes the store reject a racing duplicate.
type EnrollmentRepository interface {
	GetOrCreate(userID, courseID uint) (courseModels.Enrollment, bool, error)
	ListByUser(userID uint) ([]courseModels.Enrollment, error)
	CountSince(userID uint, since time.Time) (int64, error)
}

// ProgressRepository is the data access surface for per-course progress rows.
type ProgressRepository interface {
	GetOrCreate(userID, courseID uint) (courseModels.UserCourseProgress, bool, error)
	Get(userID, courseID uint) (courseModels.UserCourseProgress, error)
}

type enrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

// GetOrCreate returns the enrollment for the pair, creating it when absent.
// The second result reports whether a new row was inserted.
func (r *enrollmentRepository) GetOrCreate(userID, courseID uint) (courseModels.Enrollment, bool, error) {
	enrollment := courseModels.Enrollment{UserID: userID, CourseID: courseID}
	result := r.db.Where("user_id = ? AND course_id = ?", userID, courseID).
		FirstOrCreate(&enrollment)
	if result.Error != nil {
		return enrollment, false, result.Error
	}
	return enrollment, result.RowsAffected > 0, nil
}

func (r *enrollmentRepository) ListByUser(userID uint) ([]courseModels.Enrollment, error) {
	var enrollments []courseModels.Enrollment
	err := r.db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Preload("Course").Order("created_at desc").Find(&enrollments).Error
	return enrollments, err
}

func (r *enrollmentRepository) CountSince(userID uint, since time.Time) (int64, error) {
	var total int64
	err := r.db.Model(&courseModels.Enrollment{}).
		Where("user_id = ? AND is_deleted = ? AND created_at >= ?", userID, false, since).
		Count(&total).Error
	return total, err
}

type progressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) GetOrCreate(userID, courseID uint) (courseModels.UserCourseProgress, bool, error) {
	progress := courseModels.UserCourseProgress{UserID: userID, CourseID: courseID}
	result := r.db.Where("user_id = ? AND course_id = ?", userID, courseID).
		FirstOrCreate(&progress)
	if result.Error != nil {
		return progress, false, result.Error
	}
	return progress, result.RowsAffected > 0, nil
}

func (r *progressRepository) Get(userID, courseID uint) (courseModels.UserCourseProgress, error) {
	var progress courseModels.UserCourseProgress
	err := r.db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).
		First(&progress).Error
	return progress, err
}
