package services

import (
	"errors"
	"fmt"

	"brandmatch_backend/internal/email"
	"brandmatch_backend/internal/logger"
	"brandmatch_backend/internal/models"
	"brandmatch_backend/internal/repositories"
	"brandmatch_backend/internal/services/dto"
	"brandmatch_backend/pkg/apperrors"
)

type ApplicationService interface {
	// Apply submits the caller's application to an ACTIVE campaign.
	// One application per (campaign, creator) pair.
	Apply(caller *models.User, campaignID string, req *dto.CreateApplicationRequest) (*dto.ApplicationResponse, error)

	// UpdateStatus decides a PENDING application. Owner brand only.
	UpdateStatus(caller *models.User, applicationID string, req *dto.UpdateApplicationStatusRequest) (*dto.ApplicationResponse, error)

	GetApplication(caller *models.User, applicationID string) (*dto.ApplicationResponse, error)
	ListApplications(caller *models.User, query *dto.ListApplicationsQuery) ([]dto.ApplicationResponse, error)
}

type ApplicationServiceImpl struct {
	applicationRepo repositories.ApplicationRepository
	campaignRepo    repositories.CampaignRepository
	emailProvider   email.Provider
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	campaignRepo repositories.CampaignRepository,
	emailProvider email.Provider,
) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
		campaignRepo:    campaignRepo,
		emailProvider:   emailProvider,
	}
}

func (s *ApplicationServiceImpl) Apply(caller *models.User, campaignID string, req *dto.CreateApplicationRequest) (*dto.ApplicationResponse, error) {
	if caller.Role != models.UserRoleCreator {
		return nil, apperrors.ErrOnlyCreatorsApply
	}

	campaign, err := s.campaignRepo.FindByID(campaignID)
	if err != nil {
		if errors.Is(err, repositories.ErrCampaignNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if campaign.Status != models.CampaignStatusActive {
		return nil, apperrors.ErrCampaignNotAccepting
	}

	if _, err := s.applicationRepo.FindByCampaignAndCreator(campaign.ID, caller.ID); err == nil {
		return nil, apperrors.ErrAlreadyApplied
	} else if !errors.Is(err, repositories.ErrApplicationNotFound) {
		return nil, apperrors.InternalError(err)
	}

	application := &models.Application{
		CampaignID: campaign.ID,
		CreatorID:  caller.ID,
		Message:    req.Message,
		Status:     models.ApplicationStatusPending,
	}
	if err := s.applicationRepo.Create(application); err != nil {
		// The unique index catches submits that raced past the pre-check.
		if errors.Is(err, repositories.ErrDuplicateApplication) {
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, apperrors.InternalError(err)
	}

	return s.loadResponse(application.ID)
}

func (s *ApplicationServiceImpl) UpdateStatus(caller *models.User, applicationID string, req *dto.UpdateApplicationStatusRequest) (*dto.ApplicationResponse, error) {
	application, err := s.findApplication(applicationID)
	if err != nil {
		return nil, err
	}
	if !s.canDecide(caller, application) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	target := models.ApplicationStatus(req.Status)
	if !models.CanTransitionApplication(application.Status, target) {
		if application.Status != models.ApplicationStatusPending {
			return nil, apperrors.ErrApplicationDecided
		}
		return nil, apperrors.ErrInvalidStatus("applications",
			fmt.Sprintf("Cannot change application status to %s", target))
	}

	if err := s.applicationRepo.UpdateStatus(application.ID, target); err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	application.Status = target

	go s.notifyDecision(application, target)

	return s.loadResponse(application.ID)
}

func (s *ApplicationServiceImpl) GetApplication(caller *models.User, applicationID string) (*dto.ApplicationResponse, error) {
	application, err := s.findApplication(applicationID)
	if err != nil {
		return nil, err
	}
	if !s.canView(caller, application) {
		return nil, apperrors.ErrInsufficientPermissions
	}
	resp := toApplicationResponse(application)
	return &resp, nil
}

// ListApplications is always scoped to the caller: creators see their own
// submissions, brands see applications to their campaigns, admins see all.
func (s *ApplicationServiceImpl) ListApplications(caller *models.User, query *dto.ListApplicationsQuery) ([]dto.ApplicationResponse, error) {
	filter := repositories.ApplicationFilter{
		CampaignID: query.CampaignID,
		Status:     models.ApplicationStatus(query.Status),
	}
	switch caller.Role {
	case models.UserRoleCreator:
		filter.CreatorID = caller.ID
	case models.UserRoleBrand:
		filter.BrandID = caller.ID
	case models.UserRoleAdmin:
		// unscoped
	default:
		return nil, apperrors.ErrInsufficientPermissions
	}

	applications, err := s.applicationRepo.FindWithFilter(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.ApplicationResponse, 0, len(applications))
	for i := range applications {
		responses = append(responses, toApplicationResponse(&applications[i]))
	}
	return responses, nil
}

func (s *ApplicationServiceImpl) findApplication(applicationID string) (*models.Application, error) {
	application, err := s.applicationRepo.FindByID(applicationID)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return application, nil
}

func (s *ApplicationServiceImpl) loadResponse(applicationID string) (*dto.ApplicationResponse, error) {
	application, err := s.findApplication(applicationID)
	if err != nil {
		return nil, err
	}
	resp := toApplicationResponse(application)
	return &resp, nil
}

func (s *ApplicationServiceImpl) canDecide(caller *models.User, application *models.Application) bool {
	if caller.Role == models.UserRoleAdmin {
		return true
	}
	return caller.Role == models.UserRoleBrand &&
		application.Campaign != nil &&
		application.Campaign.BrandID == caller.ID
}

func (s *ApplicationServiceImpl) canView(caller *models.User, application *models.Application) bool {
	return caller.ID == application.CreatorID || s.canDecide(caller, application)
}

// notifyDecision emails the creator about an accept or reject. Best effort,
// runs off the request path.
func (s *ApplicationServiceImpl) notifyDecision(application *models.Application, status models.ApplicationStatus) {
	if s.emailProvider == nil {
		return
	}
	if application.Creator == nil || application.Creator.Email == nil || application.Campaign == nil {
		return
	}

	var subject, body string
	switch status {
	case models.ApplicationStatusAccepted:
		subject = "Your application was accepted"
		body = fmt.Sprintf("Good news, %s! Your application to %q was accepted. The brand may contact you in messages.",
			application.Creator.Name, application.Campaign.Title)
	case models.ApplicationStatusRejected:
		subject = "Update on your application"
		body = fmt.Sprintf("Hi %s, your application to %q was not selected this time.",
			application.Creator.Name, application.Campaign.Title)
	default:
		return
	}

	err := s.emailProvider.Send(&email.Email{
		To:      []string{*application.Creator.Email},
		Subject: subject,
		Body:    body,
	})
	if err != nil {
		logger.WithError(err).Warn("failed to send application decision email",
			"application_id", application.ID)
	}
}

func toApplicationResponse(application *models.Application) dto.ApplicationResponse {
	resp := dto.ApplicationResponse{
		ID:        application.ID,
		Message:   application.Message,
		Status:    string(application.Status),
		CreatedAt: application.CreatedAt,
		Creator: dto.ApplicationCreatorSummary{
			UserSummary: dto.UserSummary{ID: application.CreatorID},
		},
		Campaign: dto.ApplicationCampaignSummary{ID: application.CampaignID},
	}
	if application.Creator != nil {
		resp.Creator = dto.ApplicationCreatorSummary{
			UserSummary: toUserSummary(application.Creator),
			Bio:         application.Creator.Bio,
			Niche:       application.Creator.Niche,
		}
	}
	if application.Campaign != nil {
		resp.Campaign = dto.ApplicationCampaignSummary{
			ID:       application.Campaign.ID,
			Title:    application.Campaign.Title,
			Budget:   application.Campaign.Budget,
			Currency: application.Campaign.Currency,
			Status:   string(application.Campaign.Status),
		}
		if application.Campaign.Brand != nil {
			brand := toUserSummary(application.Campaign.Brand)
			resp.Campaign.Brand = &brand
		}
	}
	return resp
}
