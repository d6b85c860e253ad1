package models

import "gorm.io/gorm"

// Payment is an append-only audit record of gateway payments. There is no
// uniqueness constraint: every success callback inserts a new row.
type Payment struct {
	gorm.Model
	UserID    uint   `gorm:"index;not null" json:"user_id"`
	CourseID  uint   `gorm:"index;not null" json:"course_id"`
	PaymentID string `gorm:"not null" json:"payment_id"` // gateway payment reference
	OrderID   string `gorm:"default:''" json:"order_id"` // gateway order reference
	Status    string `gorm:"not null" json:"status"`     // Success, Failed
	IsDeleted bool   `gorm:"default:false" json:"-"`
}
