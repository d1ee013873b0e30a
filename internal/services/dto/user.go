package dto

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// ProfileHints are the identity-provider profile fields used to seed or
// refresh a local user on sync.
type ProfileHints struct {
	FirstName string
	LastName  string
	AvatarURL string
	Email     string
}

// UserSummary is the public projection embedded in other payloads.
type UserSummary struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatar_url"`
}

type CurrentUserResponse struct {
	ID         string         `json:"id"`
	ExternalID string         `json:"external_id"`
	Name       string         `json:"name"`
	Role       string         `json:"role"`
	Bio        *string        `json:"bio"`
	Niche      *string        `json:"niche"`
	AvatarURL  *string        `json:"avatar_url"`
	Socials    datatypes.JSON `json:"socials"`
	CreatedAt  time.Time      `json:"created_at"`
}

type UpdateProfileRequest struct {
	Name      *string         `json:"name" validate:"omitempty,min=1,max=100"`
	Bio       *string         `json:"bio" validate:"omitempty,max=1000"`
	Niche     *string         `json:"niche" validate:"omitempty,max=100"`
	AvatarURL *string         `json:"avatar_url" validate:"omitempty,url"`
	Socials   json.RawMessage `json:"socials"`
}

// PublicProfileResponse is the profile page payload for any user.
type PublicProfileResponse struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Role             string         `json:"role"`
	Bio              *string        `json:"bio"`
	Niche            *string        `json:"niche"`
	AvatarURL        *string        `json:"avatar_url"`
	Socials          datatypes.JSON `json:"socials"`
	CreatedAt        time.Time      `json:"created_at"`
	CampaignCount    int64          `json:"campaign_count"`
	ApplicationCount int64          `json:"application_count"`
}
