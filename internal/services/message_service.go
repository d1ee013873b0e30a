package services

import (
	"errors"
	"sort"

	"brandmatch_backend/internal/logger"
	"brandmatch_backend/internal/models"
	"brandmatch_backend/internal/repositories"
	"brandmatch_backend/internal/services/dto"
	"brandmatch_backend/pkg/apperrors"
)

type MessageService interface {
	SendMessage(caller *models.User, req *dto.SendMessageRequest) (*dto.MessageResponse, error)

	// GetConversations lists the caller's partners, newest conversation
	// first.
	GetConversations(caller *models.User) ([]dto.ConversationResponse, error)

	// GetMessages returns the full caller-partner history, oldest first.
	GetMessages(caller *models.User, partnerID string) (*dto.MessageHistoryResponse, error)
}

type MessageServiceImpl struct {
	messageRepo repositories.MessageRepository
	userRepo    repositories.UserRepository
}

func NewMessageService(messageRepo repositories.MessageRepository, userRepo repositories.UserRepository) MessageService {
	return &MessageServiceImpl{messageRepo: messageRepo, userRepo: userRepo}
}

func (s *MessageServiceImpl) SendMessage(caller *models.User, req *dto.SendMessageRequest) (*dto.MessageResponse, error) {
	if req.ReceiverID == caller.ID {
		return nil, apperrors.ErrSelfMessage
	}

	receiver, err := s.userRepo.FindByID(req.ReceiverID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	message := &models.Message{
		SenderID:   caller.ID,
		ReceiverID: receiver.ID,
		Content:    req.Content,
	}
	if err := s.messageRepo.Create(message); err != nil {
		return nil, apperrors.InternalError(err)
	}

	message.Sender = caller
	message.Receiver = receiver
	resp := toMessageResponse(message)
	return &resp, nil
}

func (s *MessageServiceImpl) GetConversations(caller *models.User) ([]dto.ConversationResponse, error) {
	partnerIDs, err := s.messageRepo.DistinctPartnerIDs(caller.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	conversations := make([]dto.ConversationResponse, 0, len(partnerIDs))
	for _, partnerID := range partnerIDs {
		partner, err := s.userRepo.FindByID(partnerID)
		if err != nil {
			if errors.Is(err, repositories.ErrUserNotFound) {
				// Partner row gone, skip the thread rather than fail the list.
				logger.Warn("conversation partner missing", "partner_id", partnerID)
				continue
			}
			return nil, apperrors.InternalError(err)
		}

		latest, err := s.messageRepo.LatestBetween(caller.ID, partnerID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}

		conversation := dto.ConversationResponse{
			PartnerID: partnerID,
			Partner:   toUserSummary(partner),
		}
		if latest != nil {
			latestResp := toMessageResponse(latest)
			conversation.LatestMessage = &latestResp
		}
		conversations = append(conversations, conversation)
	}

	// Newest activity first, threads with no visible latest message last.
	sort.SliceStable(conversations, func(i, j int) bool {
		li, lj := conversations[i].LatestMessage, conversations[j].LatestMessage
		if li == nil {
			return false
		}
		if lj == nil {
			return true
		}
		return li.CreatedAt.After(lj.CreatedAt)
	})

	return conversations, nil
}

func (s *MessageServiceImpl) GetMessages(caller *models.User, partnerID string) (*dto.MessageHistoryResponse, error) {
	partner, err := s.userRepo.FindByID(partnerID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	messages, err := s.messageRepo.ListBetween(caller.ID, partnerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.MessageResponse, 0, len(messages))
	for i := range messages {
		responses = append(responses, toMessageResponse(&messages[i]))
	}

	return &dto.MessageHistoryResponse{
		Messages: responses,
		Partner: &dto.MessagePartnerProfile{
			UserSummary: toUserSummary(partner),
			Bio:         partner.Bio,
		},
		Total: len(responses),
	}, nil
}

func toMessageResponse(message *models.Message) dto.MessageResponse {
	resp := dto.MessageResponse{
		ID:         message.ID,
		SenderID:   message.SenderID,
		ReceiverID: message.ReceiverID,
		Content:    message.Content,
		CreatedAt:  message.CreatedAt,
		Sender:     dto.UserSummary{ID: message.SenderID},
		Receiver:   dto.UserSummary{ID: message.ReceiverID},
	}
	if message.Sender != nil {
		resp.Sender = toUserSummary(message.Sender)
	}
	if message.Receiver != nil {
		resp.Receiver = toUserSummary(message.Receiver)
	}
	return resp
}
