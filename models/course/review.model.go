package course

import "gorm.io/gorm"

// Review is a student's rating of a course. No uniqueness constraint: a
// student may post more than one review for the same course.
type Review struct {
	gorm.Model
	CourseID  uint   `json:"course_id" gorm:"index;not null"`
	UserID    uint   `json:"user_id" gorm:"not null"`
	Rating    int    `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"` // 1–5 rating
	Comment   string `json:"comment" gorm:"type:text;default:''"`
	IsDeleted bool   `gorm:"default:false" json:"-"`
}
