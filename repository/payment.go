package repository

import (
	"gorm.io/gorm"

	"learnhub/models"
)

// PaymentRepository appends gateway payment records. Insert-only audit log.
type PaymentRepository interface {
	Create(payment *models.Payment) error
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(payment *models.Payment) error {
	return r.db.Create(payment).Error
}
