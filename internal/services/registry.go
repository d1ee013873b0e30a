package services

import (
	"brandmatch_backend/internal/email"
	"brandmatch_backend/internal/repositories"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	UserService        UserService
	CampaignService    CampaignService
	ApplicationService ApplicationService
	MessageService     MessageService
	PayoutService      PayoutService
	EmailProvider      email.Provider
}

func NewServiceContainer(
	userRepo repositories.UserRepository,
	campaignRepo repositories.CampaignRepository,
	applicationRepo repositories.ApplicationRepository,
	messageRepo repositories.MessageRepository,
	payoutRepo repositories.PayoutRepository,
	emailProvider email.Provider,
) *ServiceContainer {
	return &ServiceContainer{
		UserService:        NewUserService(userRepo),
		CampaignService:    NewCampaignService(campaignRepo),
		ApplicationService: NewApplicationService(applicationRepo, campaignRepo, emailProvider),
		MessageService:     NewMessageService(messageRepo, userRepo),
		PayoutService:      NewPayoutService(payoutRepo, userRepo, campaignRepo),
		EmailProvider:      emailProvider,
	}
}
