package dto

import (
	"time"
)

type SendMessageRequest struct {
	ReceiverID string `json:"receiver_id" validate:"required,uuid"`
	Content    string `json:"content" validate:"required,min=1,max=5000"`
}

type MessageResponse struct {
	ID         string      `json:"id"`
	SenderID   string      `json:"sender_id"`
	ReceiverID string      `json:"receiver_id"`
	Content    string      `json:"content"`
	CreatedAt  time.Time   `json:"created_at"`
	Sender     UserSummary `json:"sender"`
	Receiver   UserSummary `json:"receiver"`
}

// ConversationResponse summarizes one partner by the latest shared message.
type ConversationResponse struct {
	PartnerID     string           `json:"partner_id"`
	Partner       UserSummary      `json:"partner"`
	LatestMessage *MessageResponse `json:"latest_message"`
}

type MessagePartnerProfile struct {
	UserSummary
	Bio *string `json:"bio"`
}

type MessageHistoryResponse struct {
	Messages []MessageResponse      `json:"messages"`
	Partner  *MessagePartnerProfile `json:"partner"`
	Total    int                    `json:"total"`
}
