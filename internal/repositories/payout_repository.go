package repositories

import (
	"brandmatch_backend/internal/models"

	"gorm.io/gorm"
)

type PayoutRepository interface {
	Create(payout *models.Payout) error
	ListByCreator(creatorID string) ([]models.Payout, error)
}

type PayoutRepositoryImpl struct {
	db *gorm.DB
}

func NewPayoutRepository(db *gorm.DB) PayoutRepository {
	return &PayoutRepositoryImpl{db: db}
}

func (r *PayoutRepositoryImpl) Create(payout *models.Payout) error {
	return r.db.Create(payout).Error
}

func (r *PayoutRepositoryImpl) ListByCreator(creatorID string) ([]models.Payout, error) {
	var payouts []models.Payout
	err := r.db.Where("creator_id = ?", creatorID).
		Preload("Campaign").
		Order("created_at DESC").
		Find(&payouts).Error
	return payouts, err
}
