package services

import (
	"errors"

	"brandmatch_backend/internal/models"
	"brandmatch_backend/internal/repositories"
	"brandmatch_backend/internal/services/dto"
	"brandmatch_backend/pkg/apperrors"
)

type PayoutService interface {
	// ListPayouts returns the caller's payout records with earnings totals.
	// Creator accounts only.
	ListPayouts(caller *models.User) (*dto.PayoutListResponse, error)

	// RecordPayout persists a payment-provider notification. Reached only
	// through the secret-guarded webhook, never by end users.
	RecordPayout(req *dto.RecordPayoutRequest) (*dto.PayoutResponse, error)
}

type PayoutServiceImpl struct {
	payoutRepo   repositories.PayoutRepository
	userRepo     repositories.UserRepository
	campaignRepo repositories.CampaignRepository
}

func NewPayoutService(
	payoutRepo repositories.PayoutRepository,
	userRepo repositories.UserRepository,
	campaignRepo repositories.CampaignRepository,
) PayoutService {
	return &PayoutServiceImpl{
		payoutRepo:   payoutRepo,
		userRepo:     userRepo,
		campaignRepo: campaignRepo,
	}
}

func (s *PayoutServiceImpl) ListPayouts(caller *models.User) (*dto.PayoutListResponse, error) {
	if caller.Role != models.UserRoleCreator {
		return nil, apperrors.ErrOnlyCreatorsHavePayouts
	}

	payouts, err := s.payoutRepo.ListByCreator(caller.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.PayoutListResponse{
		Payouts: make([]dto.PayoutResponse, 0, len(payouts)),
	}
	for i := range payouts {
		payout := &payouts[i]
		resp.Payouts = append(resp.Payouts, toPayoutResponse(payout))

		switch payout.Status {
		case models.PayoutStatusSuccess:
			resp.Summary.Successful++
			resp.Summary.TotalEarned += payout.Amount
		case models.PayoutStatusPending:
			resp.Summary.Pending++
		case models.PayoutStatusFailed:
			resp.Summary.Failed++
		}
	}
	return resp, nil
}

func (s *PayoutServiceImpl) RecordPayout(req *dto.RecordPayoutRequest) (*dto.PayoutResponse, error) {
	creator, err := s.userRepo.FindByID(req.CreatorID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if creator.Role != models.UserRoleCreator {
		return nil, apperrors.ErrPayoutTargetNotCreator
	}

	campaign, err := s.campaignRepo.FindByID(req.CampaignID)
	if err != nil {
		if errors.Is(err, repositories.ErrCampaignNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	payout := &models.Payout{
		CreatorID:         creator.ID,
		CampaignID:        campaign.ID,
		Amount:            req.Amount,
		Currency:          req.Currency,
		Status:            models.PayoutStatus(req.Status),
		ProviderPaymentID: req.ProviderPaymentID,
	}
	if err := s.payoutRepo.Create(payout); err != nil {
		return nil, apperrors.InternalError(err)
	}

	payout.Campaign = campaign
	resp := toPayoutResponse(payout)
	return &resp, nil
}

func toPayoutResponse(payout *models.Payout) dto.PayoutResponse {
	resp := dto.PayoutResponse{
		ID:                payout.ID,
		Amount:            payout.Amount,
		Currency:          payout.Currency,
		Status:            string(payout.Status),
		ProviderPaymentID: payout.ProviderPaymentID,
		CreatedAt:         payout.CreatedAt,
		Campaign:          dto.PayoutCampaignRef{ID: payout.CampaignID},
	}
	if payout.Campaign != nil {
		resp.Campaign.Title = payout.Campaign.Title
	}
	return resp
}
