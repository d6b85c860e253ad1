package course

import "gorm.io/gorm"

// UserCourseProgress tracks a user's completion percentage for a course.
// One row per (user, course) pair, created together with the Enrollment.
type UserCourseProgress struct {
	gorm.Model
	UserID             uint `json:"user_id" gorm:"not null;uniqueIndex:idx_progress_user_course"`
	CourseID           uint `json:"course_id" gorm:"not null;uniqueIndex:idx_progress_user_course"`
	ProgressPercentage uint `json:"progress_percentage" gorm:"default:0"` // 0-100
	IsDeleted          bool `gorm:"default:false" json:"-"`
}
