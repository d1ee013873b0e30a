package repositories

import (
	"errors"
	"time"

	"brandmatch_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound = errors.New("user not found")
)

type UserRepository interface {
	FindByID(id string) (*models.User, error)
	FindByExternalID(externalID string) (*models.User, error)
	Create(user *models.User) error
	UpdateFields(userID string, fields map[string]interface{}) error
	CountCampaigns(userID string) (int64, error)
	CountApplications(userID string) (int64, error)
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByExternalID(externalID string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "external_id = ?", externalID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepositoryImpl) UpdateFields(userID string, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()

	result := r.db.Model(&models.User{}).Where("id = ?", userID).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) CountCampaigns(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Campaign{}).Where("brand_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *UserRepositoryImpl) CountApplications(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Application{}).Where("creator_id = ?", userID).Count(&count).Error
	return count, err
}
