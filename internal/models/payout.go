package models

// Payout rows are written by the payment-provider webhook only; the API
// surface for creators is read-only.
type Payout struct {
	BaseModel
	CreatorID         string       `gorm:"type:uuid;not null;index" json:"creator_id"`
	CampaignID        string       `gorm:"type:uuid;not null;index" json:"campaign_id"`
	Amount            float64      `gorm:"not null" json:"amount"`
	Currency          string       `gorm:"type:varchar(3);not null" json:"currency"`
	Status            PayoutStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	ProviderPaymentID *string      `json:"provider_payment_id,omitempty"`

	// Relations
	Creator  *User     `gorm:"foreignKey:CreatorID" json:"-"`
	Campaign *Campaign `gorm:"foreignKey:CampaignID" json:"campaign,omitempty"`
}
