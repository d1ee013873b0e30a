package dto

import (
	"time"
)

type PayoutCampaignRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type PayoutResponse struct {
	ID                string            `json:"id"`
	Amount            float64           `json:"amount"`
	Currency          string            `json:"currency"`
	Status            string            `json:"status"`
	ProviderPaymentID *string           `json:"provider_payment_id"`
	CreatedAt         time.Time         `json:"created_at"`
	Campaign          PayoutCampaignRef `json:"campaign"`
}

// PayoutSummary aggregates the creator's records; TotalEarned sums SUCCESS
// amounts only.
type PayoutSummary struct {
	TotalEarned float64 `json:"total_earned"`
	Pending     int     `json:"pending"`
	Successful  int     `json:"successful"`
	Failed      int     `json:"failed"`
}

type PayoutListResponse struct {
	Payouts []PayoutResponse `json:"payouts"`
	Summary PayoutSummary    `json:"summary"`
}

// RecordPayoutRequest is the payment-provider webhook payload.
type RecordPayoutRequest struct {
	CreatorID         string  `json:"creator_id" validate:"required,uuid"`
	CampaignID        string  `json:"campaign_id" validate:"required,uuid"`
	Amount            float64 `json:"amount" validate:"required,gt=0"`
	Currency          string  `json:"currency" validate:"required,is-currency-code"`
	Status            string  `json:"status" validate:"required,is-payout-status"`
	ProviderPaymentID *string `json:"provider_payment_id"`
}
