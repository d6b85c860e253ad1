package course

import "gorm.io/gorm"

// Enrollment links a user to a course they have joined. The composite unique
// index is what makes a racing duplicate enroll fail at the store; enrollment
// creation goes through FirstOrCreate against this pair. CreatedAt doubles as
// the enrolled-at timestamp.
type Enrollment struct {
	gorm.Model
	UserID    uint `json:"user_id" gorm:"not null;uniqueIndex:idx_enrollment_user_course"`
	CourseID  uint `json:"course_id" gorm:"not null;uniqueIndex:idx_enrollment_user_course"`
	IsDeleted bool `gorm:"default:false" json:"-"`

	Course Course `json:"course" gorm:"foreignKey:CourseID"`
}
