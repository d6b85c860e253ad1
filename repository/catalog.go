package repository

import (
	"gorm.io/gorm"

	courseModels "learnhub/models/course"
)

// CourseRepository is the data access surface for the course catalog.
type CourseRepository interface {
	List(limit int) ([]courseModels.Course, error)
	GetByID(id uint) (courseModels.Course, error)
}

// ModuleRepository lists the modules of a course in display order.
type ModuleRepository interface {
	ListByCourse(courseID uint) ([]courseModels.Module, error)
}

// VideoRepository lists the videos of a module in display order.
type VideoRepository interface {
	ListByModule(moduleID uint) ([]courseModels.Video, error)
}

type courseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

// List returns courses newest-first. A limit <= 0 means no limit.
func (r *courseRepository) List(limit int) ([]courseModels.Course, error) {
	var courses []courseModels.Course
	db := r.db.Where("is_deleted = ?", false).Order("created_at desc")
	if limit > 0 {
		db = db.Limit(limit)
	}
	err := db.Find(&courses).Error
	return courses, err
}

func (r *courseRepository) GetByID(id uint) (courseModels.Course, error) {
	var course courseModels.Course
	err := r.db.Where("id = ? AND is_deleted = ?", id, false).First(&course).Error
	return course, err
}

type moduleRepository struct {
	db *gorm.DB
}

func NewModuleRepository(db *gorm.DB) ModuleRepository {
	return &moduleRepository{db: db}
}

func (r *moduleRepository) ListByCourse(courseID uint) ([]courseModels.Module, error) {
	var modules []courseModels.Module
	err := r.db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("order_index asc").Find(&modules).Error
	return modules, err
}

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) ListByModule(moduleID uint) ([]courseModels.Video, error) {
	var videos []courseModels.Video
	err := r.db.Where("module_id = ? AND is_deleted = ?", moduleID, false).
		Order("created_at asc").Find(&videos).Error
	return videos, err
}
