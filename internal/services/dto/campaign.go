package dto

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

type CreateCampaignRequest struct {
	Title        string          `json:"title" validate:"required,min=3,max=200"`
	Description  string          `json:"description" validate:"required,min=10,max=5000"`
	Budget       float64         `json:"budget" validate:"required,gt=0"`
	Currency     string          `json:"currency" validate:"required,is-currency-code"`
	Deliverables json.RawMessage `json:"deliverables"`
}

// UpdateCampaignRequest has pointer fields for partial updates; absent
// fields stay untouched.
type UpdateCampaignRequest struct {
	Title        *string         `json:"title" validate:"omitempty,min=3,max=200"`
	Description  *string         `json:"description" validate:"omitempty,min=10,max=5000"`
	Budget       *float64        `json:"budget" validate:"omitempty,gt=0"`
	Currency     *string         `json:"currency" validate:"omitempty,is-currency-code"`
	Deliverables json.RawMessage `json:"deliverables"`
	Status       *string         `json:"status" validate:"omitempty,is-campaign-status"`
}

type ListCampaignsQuery struct {
	Status  string `form:"status" validate:"omitempty,is-campaign-status"`
	BrandID string `form:"brand_id" validate:"omitempty,uuid"`
}

type CampaignResponse struct {
	ID               string         `json:"id"`
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	Budget           float64        `json:"budget"`
	Currency         string         `json:"currency"`
	Deliverables     datatypes.JSON `json:"deliverables"`
	Status           string         `json:"status"`
	CreatedAt        time.Time      `json:"created_at"`
	Brand            UserSummary    `json:"brand"`
	BrandBio         *string        `json:"brand_bio,omitempty"`
	ApplicationCount int64          `json:"application_count"`
}
