package services

import (
	"errors"

	"brandmatch_backend/internal/models"
	"brandmatch_backend/internal/repositories"
	"brandmatch_backend/internal/services/dto"
	"brandmatch_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type CampaignService interface {
	CreateCampaign(caller *models.User, req *dto.CreateCampaignRequest) (*dto.CampaignResponse, error)
	GetCampaign(campaignID string) (*dto.CampaignResponse, error)
	ListCampaigns(query *dto.ListCampaignsQuery) ([]dto.CampaignResponse, error)
	UpdateCampaign(caller *models.User, campaignID string, req *dto.UpdateCampaignRequest) (*dto.CampaignResponse, error)
	DeleteCampaign(caller *models.User, campaignID string) error
}

type CampaignServiceImpl struct {
	campaignRepo repositories.CampaignRepository
}

func NewCampaignService(campaignRepo repositories.CampaignRepository) CampaignService {
	return &CampaignServiceImpl{campaignRepo: campaignRepo}
}

func (s *CampaignServiceImpl) CreateCampaign(caller *models.User, req *dto.CreateCampaignRequest) (*dto.CampaignResponse, error) {
	if caller.Role != models.UserRoleBrand {
		return nil, apperrors.ErrOnlyBrandsCreateCampaigns
	}

	campaign := &models.Campaign{
		BrandID:     caller.ID,
		Title:       req.Title,
		Description: req.Description,
		Budget:      req.Budget,
		Currency:    req.Currency,
		Status:      models.CampaignStatusActive,
	}
	if req.Deliverables != nil {
		campaign.Deliverables = datatypes.JSON(req.Deliverables)
	}

	if err := s.campaignRepo.Create(campaign); err != nil {
		return nil, apperrors.InternalError(err)
	}

	campaign.Brand = caller
	resp := toCampaignResponse(campaign, 0)
	return &resp, nil
}

func (s *CampaignServiceImpl) GetCampaign(campaignID string) (*dto.CampaignResponse, error) {
	campaign, err := s.findCampaign(campaignID)
	if err != nil {
		return nil, err
	}
	count, err := s.campaignRepo.CountApplications(campaign.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := toCampaignResponse(campaign, count)
	return &resp, nil
}

func (s *CampaignServiceImpl) ListCampaigns(query *dto.ListCampaignsQuery) ([]dto.CampaignResponse, error) {
	filter := repositories.CampaignFilter{
		Status:  models.CampaignStatus(query.Status),
		BrandID: query.BrandID,
	}

	campaigns, err := s.campaignRepo.FindWithFilter(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	ids := make([]string, 0, len(campaigns))
	for _, c := range campaigns {
		ids = append(ids, c.ID)
	}
	counts, err := s.campaignRepo.CountApplicationsFor(ids)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.CampaignResponse, 0, len(campaigns))
	for i := range campaigns {
		responses = append(responses, toCampaignResponse(&campaigns[i], counts[campaigns[i].ID]))
	}
	return responses, nil
}

func (s *CampaignServiceImpl) UpdateCampaign(caller *models.User, campaignID string, req *dto.UpdateCampaignRequest) (*dto.CampaignResponse, error) {
	campaign, err := s.findCampaign(campaignID)
	if err != nil {
		return nil, err
	}
	if !canManageCampaign(caller, campaign) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if req.Status != nil {
		target := models.CampaignStatus(*req.Status)
		if !models.CanTransitionCampaign(campaign.Status, target) {
			return nil, apperrors.ErrInvalidCampaignTransition
		}
		campaign.Status = target
	}
	if req.Title != nil {
		campaign.Title = *req.Title
	}
	if req.Description != nil {
		campaign.Description = *req.Description
	}
	if req.Budget != nil {
		campaign.Budget = *req.Budget
	}
	if req.Currency != nil {
		campaign.Currency = *req.Currency
	}
	if req.Deliverables != nil {
		campaign.Deliverables = datatypes.JSON(req.Deliverables)
	}

	if err := s.campaignRepo.Save(campaign); err != nil {
		return nil, apperrors.InternalError(err)
	}

	count, err := s.campaignRepo.CountApplications(campaign.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := toCampaignResponse(campaign, count)
	return &resp, nil
}

func (s *CampaignServiceImpl) DeleteCampaign(caller *models.User, campaignID string) error {
	campaign, err := s.findCampaign(campaignID)
	if err != nil {
		return err
	}
	if !canManageCampaign(caller, campaign) {
		return apperrors.ErrInsufficientPermissions
	}
	if err := s.campaignRepo.Delete(campaign.ID); err != nil {
		if errors.Is(err, repositories.ErrCampaignNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *CampaignServiceImpl) findCampaign(campaignID string) (*models.Campaign, error) {
	campaign, err := s.campaignRepo.FindByID(campaignID)
	if err != nil {
		if errors.Is(err, repositories.ErrCampaignNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return campaign, nil
}

func canManageCampaign(caller *models.User, campaign *models.Campaign) bool {
	return campaign.BrandID == caller.ID || caller.Role == models.UserRoleAdmin
}

func toCampaignResponse(campaign *models.Campaign, applicationCount int64) dto.CampaignResponse {
	resp := dto.CampaignResponse{
		ID:               campaign.ID,
		Title:            campaign.Title,
		Description:      campaign.Description,
		Budget:           campaign.Budget,
		Currency:         campaign.Currency,
		Deliverables:     campaign.Deliverables,
		Status:           string(campaign.Status),
		CreatedAt:        campaign.CreatedAt,
		Brand:            dto.UserSummary{ID: campaign.BrandID},
		ApplicationCount: applicationCount,
	}
	if campaign.Brand != nil {
		resp.Brand = toUserSummary(campaign.Brand)
		resp.BrandBio = campaign.Brand.Bio
	}
	return resp
}

func toUserSummary(user *models.User) dto.UserSummary {
	return dto.UserSummary{
		ID:        user.ID,
		Name:      user.Name,
		AvatarURL: user.AvatarURL,
	}
}
