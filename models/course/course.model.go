package course

import "gorm.io/gorm"

// DefaultProgressPercentage is returned for an enrolled course that has no
// progress row yet. Carried over from the source system, which never computed
// real progress from watched videos.
const DefaultProgressPercentage = 45

// Course represents a learning course
type Course struct {
	gorm.Model
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	IsPaid       bool    `json:"is_paid" gorm:"default:false"`
	Price        float64 `json:"price" gorm:"default:0"` // major currency units
	ThumbnailURL string  `json:"thumbnail_url"`
	IsDeleted    bool    `gorm:"default:false" json:"-"`
}
