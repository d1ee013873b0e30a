package models

import (
	"gorm.io/datatypes"
)

type User struct {
	BaseModel
	// ExternalID is the identity-provider subject. One local user per subject.
	ExternalID string         `gorm:"uniqueIndex;not null" json:"external_id"`
	Name       string         `gorm:"not null" json:"name"`
	Email      *string        `json:"email,omitempty"`
	Role       UserRole       `gorm:"type:varchar(20);not null;default:'CREATOR'" json:"role"`
	Bio        *string        `json:"bio,omitempty"`
	Niche      *string        `json:"niche,omitempty"`
	AvatarURL  *string        `json:"avatar_url,omitempty"`
	Socials    datatypes.JSON `gorm:"type:jsonb" json:"socials,omitempty"`

	// Relations
	Campaigns    []Campaign    `gorm:"foreignKey:BrandID" json:"-"`
	Applications []Application `gorm:"foreignKey:CreatorID" json:"-"`
}
