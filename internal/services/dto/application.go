package dto

import (
	"time"
)

type CreateApplicationRequest struct {
	Message string `json:"message" validate:"required,min=10,max=2000"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,is-application-status"`
}

type ListApplicationsQuery struct {
	Status     string `form:"status" validate:"omitempty,is-application-status"`
	CampaignID string `form:"campaign_id" validate:"omitempty,uuid"`
}

// ApplicationCreatorSummary extends the user summary with the creator
// fields brands review applications by.
type ApplicationCreatorSummary struct {
	UserSummary
	Bio   *string `json:"bio"`
	Niche *string `json:"niche,omitempty"`
}

type ApplicationCampaignSummary struct {
	ID       string       `json:"id"`
	Title    string       `json:"title"`
	Budget   float64      `json:"budget"`
	Currency string       `json:"currency"`
	Status   string       `json:"status"`
	Brand    *UserSummary `json:"brand,omitempty"`
}

type ApplicationResponse struct {
	ID        string                     `json:"id"`
	Message   string                     `json:"message"`
	Status    string                     `json:"status"`
	CreatedAt time.Time                  `json:"created_at"`
	Creator   ApplicationCreatorSummary  `json:"creator"`
	Campaign  ApplicationCampaignSummary `json:"campaign"`
}
