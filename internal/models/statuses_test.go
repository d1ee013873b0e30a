package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionCampaign(t *testing.T) {
	cases := []struct {
		from, to CampaignStatus
		allowed  bool
	}{
		{CampaignStatusActive, CampaignStatusClosed, true},
		{CampaignStatusActive, CampaignStatusCompleted, true},
		{CampaignStatusActive, CampaignStatusActive, true},
		{CampaignStatusClosed, CampaignStatusActive, false},
		{CampaignStatusClosed, CampaignStatusCompleted, false},
		{CampaignStatusCompleted, CampaignStatusActive, false},
		{CampaignStatusCompleted, CampaignStatusClosed, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.allowed, CanTransitionCampaign(tc.from, tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestCanTransitionApplication(t *testing.T) {
	cases := []struct {
		from, to ApplicationStatus
		allowed  bool
	}{
		{ApplicationStatusPending, ApplicationStatusAccepted, true},
		{ApplicationStatusPending, ApplicationStatusRejected, true},
		{ApplicationStatusPending, ApplicationStatusPending, false},
		{ApplicationStatusAccepted, ApplicationStatusRejected, false},
		{ApplicationStatusAccepted, ApplicationStatusPending, false},
		{ApplicationStatusRejected, ApplicationStatusAccepted, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.allowed, CanTransitionApplication(tc.from, tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}
