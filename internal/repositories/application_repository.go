package repositories

import (
	"errors"
	"time"

	"brandmatch_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("application already exists for this campaign and creator")
)

// ApplicationFilter narrows application listings. CreatorID and BrandID are
// mutually exclusive scopes set by the service from the caller's role.
type ApplicationFilter struct {
	CreatorID  string
	BrandID    string
	CampaignID string
	Status     models.ApplicationStatus
}

type ApplicationRepository interface {
	Create(application *models.Application) error
	FindByID(id string) (*models.Application, error)
	FindByCampaignAndCreator(campaignID, creatorID string) (*models.Application, error)
	UpdateStatus(id string, status models.ApplicationStatus) error
	FindWithFilter(filter ApplicationFilter) ([]models.Application, error)
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) Create(application *models.Application) error {
	err := r.db.Create(application).Error
	if err != nil {
		// The composite unique index closes the race between the service
		// pre-check and the insert.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateApplication
		}
		return err
	}
	return nil
}

func (r *ApplicationRepositoryImpl) FindByID(id string) (*models.Application, error) {
	var application models.Application
	err := r.db.Preload("Creator").Preload("Campaign").Preload("Campaign.Brand").
		First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) FindByCampaignAndCreator(campaignID, creatorID string) (*models.Application, error) {
	var application models.Application
	err := r.db.First(&application, "campaign_id = ? AND creator_id = ?", campaignID, creatorID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) UpdateStatus(id string, status models.ApplicationStatus) error {
	result := r.db.Model(&models.Application{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepositoryImpl) FindWithFilter(filter ApplicationFilter) ([]models.Application, error) {
	query := r.db.Model(&models.Application{})

	if filter.CreatorID != "" {
		query = query.Where("applications.creator_id = ?", filter.CreatorID)
	}
	if filter.BrandID != "" {
		query = query.Joins("JOIN campaigns ON campaigns.id = applications.campaign_id").
			Where("campaigns.brand_id = ?", filter.BrandID)
	}
	if filter.CampaignID != "" {
		query = query.Where("applications.campaign_id = ?", filter.CampaignID)
	}
	if filter.Status != "" {
		query = query.Where("applications.status = ?", filter.Status)
	}

	var applications []models.Application
	err := query.Preload("Creator").Preload("Campaign").
		Order("applications.created_at DESC").Find(&applications).Error
	return applications, err
}
