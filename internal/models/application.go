package models

type Application struct {
	BaseModel
	// The composite unique index backs the one-application-per-pair rule;
	// the service pre-check alone would race under concurrent submits.
	CampaignID string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_campaign_creator" json:"campaign_id"`
	CreatorID  string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_campaign_creator" json:"creator_id"`
	Message    string            `gorm:"not null" json:"message"`
	Status     ApplicationStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`

	// Relations
	Campaign *Campaign `gorm:"foreignKey:CampaignID" json:"campaign,omitempty"`
	Creator  *User     `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
}
