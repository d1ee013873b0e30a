package models

import (
	"gorm.io/datatypes"
)

type Campaign struct {
	BaseModel
	BrandID      string         `gorm:"type:uuid;not null;index" json:"brand_id"`
	Title        string         `gorm:"not null" json:"title"`
	Description  string         `gorm:"not null" json:"description"`
	Budget       float64        `gorm:"not null" json:"budget"`
	Currency     string         `gorm:"type:varchar(3);not null" json:"currency"`
	Deliverables datatypes.JSON `gorm:"type:jsonb" json:"deliverables,omitempty"`
	Status       CampaignStatus `gorm:"type:varchar(20);not null;default:'ACTIVE'" json:"status"`

	// Relations
	Brand        *User         `gorm:"foreignKey:BrandID" json:"brand,omitempty"`
	Applications []Application `gorm:"foreignKey:CampaignID;constraint:OnDelete:CASCADE" json:"-"`
}
