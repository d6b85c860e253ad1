package repository

import (
	"gorm.io/gorm"

	"learnhub/models"
)

// UserRepository is the data access surface for user accounts.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (models.User, error)
	GetByUsername(username string) (models.User, error)
	Update(user *models.User) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) GetByID(id uint) (models.User, error) {
	var user models.User
	err := r.db.Where("id = ? AND is_deleted = ?", id, false).First(&user).Error
	return user, err
}

func (r *userRepository) GetByUsername(username string) (models.User, error) {
	var user models.User
	err := r.db.Where("username = ? AND is_deleted = ?", username, false).First(&user).Error
	return user, err
}

func (r *userRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}
