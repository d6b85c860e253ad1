package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Username  string `gorm:"unique;not null" json:"username"`
	Email     string `gorm:"default:''" json:"email"`
	FirstName string `gorm:"default:''" json:"first_name"`
	LastName  string `gorm:"default:''" json:"last_name"`
	Role      string `gorm:"default:'USER'" json:"role"` // USER, ADMIN
	Password  string `gorm:"not null" json:"-"`
	IsDeleted bool   `gorm:"default:false" json:"-"`
}
