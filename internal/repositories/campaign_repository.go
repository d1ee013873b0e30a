package repositories

import (
	"errors"

	"brandmatch_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCampaignNotFound = errors.New("campaign not found")
)

// CampaignFilter narrows campaign listings. Zero values mean "no filter".
type CampaignFilter struct {
	Status  models.CampaignStatus
	BrandID string
}

type CampaignRepository interface {
	Create(campaign *models.Campaign) error
	FindByID(id string) (*models.Campaign, error)
	Save(campaign *models.Campaign) error
	Delete(id string) error
	FindWithFilter(filter CampaignFilter) ([]models.Campaign, error)
	CountApplications(campaignID string) (int64, error)
	CountApplicationsFor(campaignIDs []string) (map[string]int64, error)
}

type CampaignRepositoryImpl struct {
	db *gorm.DB
}

func NewCampaignRepository(db *gorm.DB) CampaignRepository {
	return &CampaignRepositoryImpl{db: db}
}

func (r *CampaignRepositoryImpl) Create(campaign *models.Campaign) error {
	return r.db.Create(campaign).Error
}

func (r *CampaignRepositoryImpl) FindByID(id string) (*models.Campaign, error) {
	var campaign models.Campaign
	err := r.db.Preload("Brand").First(&campaign, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, err
	}
	return &campaign, nil
}

func (r *CampaignRepositoryImpl) Save(campaign *models.Campaign) error {
	return r.db.Save(campaign).Error
}

func (r *CampaignRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Campaign{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCampaignNotFound
	}
	return nil
}

func (r *CampaignRepositoryImpl) FindWithFilter(filter CampaignFilter) ([]models.Campaign, error) {
	query := r.db.Model(&models.Campaign{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.BrandID != "" {
		query = query.Where("brand_id = ?", filter.BrandID)
	}

	var campaigns []models.Campaign
	err := query.Preload("Brand").Order("created_at DESC").Find(&campaigns).Error
	return campaigns, err
}

func (r *CampaignRepositoryImpl) CountApplications(campaignID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Application{}).Where("campaign_id = ?", campaignID).Count(&count).Error
	return count, err
}

// CountApplicationsFor returns application counts keyed by campaign ID in a
// single grouped query.
func (r *CampaignRepositoryImpl) CountApplicationsFor(campaignIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(campaignIDs))
	if len(campaignIDs) == 0 {
		return counts, nil
	}

	type campaignCount struct {
		CampaignID string
		Count      int64
	}

	var rows []campaignCount
	err := r.db.Model(&models.Application{}).
		Select("campaign_id, COUNT(*) as count").
		Where("campaign_id IN ?", campaignIDs).
		Group("campaign_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.CampaignID] = row.Count
	}
	return counts, nil
}
