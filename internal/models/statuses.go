package models

type UserRole string
type CampaignStatus string
type ApplicationStatus string
type PayoutStatus string

const (
	UserRoleCreator UserRole = "CREATOR"
	UserRoleBrand   UserRole = "BRAND"
	UserRoleAdmin   UserRole = "ADMIN"

	CampaignStatusActive    CampaignStatus = "ACTIVE"
	CampaignStatusClosed    CampaignStatus = "CLOSED"
	CampaignStatusCompleted CampaignStatus = "COMPLETED"

	ApplicationStatusPending  ApplicationStatus = "PENDING"
	ApplicationStatusAccepted ApplicationStatus = "ACCEPTED"
	ApplicationStatusRejected ApplicationStatus = "REJECTED"

	PayoutStatusPending PayoutStatus = "PENDING"
	PayoutStatusSuccess PayoutStatus = "SUCCESS"
	PayoutStatusFailed  PayoutStatus = "FAILED"
)

// CanTransitionCampaign reports whether a campaign status change is legal.
// Only ACTIVE campaigns may be closed or completed.
func CanTransitionCampaign(from, to CampaignStatus) bool {
	if from == to {
		return true
	}
	return from == CampaignStatusActive &&
		(to == CampaignStatusClosed || to == CampaignStatusCompleted)
}

// CanTransitionApplication reports whether an application status change is
// legal. Only PENDING applications may be accepted or rejected.
func CanTransitionApplication(from, to ApplicationStatus) bool {
	return from == ApplicationStatusPending &&
		(to == ApplicationStatusAccepted || to == ApplicationStatusRejected)
}
