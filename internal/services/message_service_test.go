package services

import (
	"testing"
	"time"

	"brandmatch_backend/internal/models"
	"brandmatch_backend/internal/services/dto"
	"brandmatch_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMessageFixture(t *testing.T) (*fakeUserRepo, *fakeMessageRepo, MessageService) {
	t.Helper()
	userRepo := newFakeUserRepo()
	messageRepo := newFakeMessageRepo(userRepo)
	return userRepo, messageRepo, NewMessageService(messageRepo, userRepo)
}

func TestSendMessageRejectsSelf(t *testing.T) {
	userRepo, _, svc := newMessageFixture(t)
	caller := addUser(userRepo, newTestUser(models.UserRoleCreator))

	_, err := svc.SendMessage(caller, &dto.SendMessageRequest{
		ReceiverID: caller.ID,
		Content:    "hello me",
	})
	require.ErrorIs(t, err, apperrors.ErrSelfMessage)
}

func TestSendMessageUnknownReceiver(t *testing.T) {
	userRepo, _, svc := newMessageFixture(t)
	caller := addUser(userRepo, newTestUser(models.UserRoleCreator))

	_, err := svc.SendMessage(caller, &dto.SendMessageRequest{
		ReceiverID: "missing-user",
		Content:    "anyone there?",
	})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestSendMessage(t *testing.T) {
	userRepo, _, svc := newMessageFixture(t)
	creator := addUser(userRepo, newTestUser(models.UserRoleCreator))
	brand := addUser(userRepo, newTestUser(models.UserRoleBrand))

	resp, err := svc.SendMessage(creator, &dto.SendMessageRequest{
		ReceiverID: brand.ID,
		Content:    "Interested in your campaign.",
	})
	require.NoError(t, err)
	assert.Equal(t, creator.ID, resp.Sender.ID)
	assert.Equal(t, brand.Name, resp.Receiver.Name)
	assert.Equal(t, "Interested in your campaign.", resp.Content)
}

func seedMessage(t *testing.T, repo *fakeMessageRepo, sender, receiver string, at time.Time, content string) {
	t.Helper()
	require.NoError(t, repo.Create(&models.Message{
		BaseModel:  models.BaseModel{CreatedAt: at},
		SenderID:   sender,
		ReceiverID: receiver,
		Content:    content,
	}))
}

func TestGetConversationsOrdering(t *testing.T) {
	userRepo, messageRepo, svc := newMessageFixture(t)
	caller := addUser(userRepo, newTestUser(models.UserRoleCreator))
	first := addUser(userRepo, newTestUser(models.UserRoleBrand))
	second := addUser(userRepo, newTestUser(models.UserRoleBrand))

	base := time.Now()
	seedMessage(t, messageRepo, caller.ID, first.ID, base.Add(-2*time.Hour), "old thread")
	seedMessage(t, messageRepo, second.ID, caller.ID, base.Add(-time.Hour), "newer thread")
	seedMessage(t, messageRepo, first.ID, caller.ID, base, "old thread revived")

	conversations, err := svc.GetConversations(caller)
	require.NoError(t, err)
	require.Len(t, conversations, 2)

	// The revived thread with the first brand sorts to the top.
	assert.Equal(t, first.ID, conversations[0].PartnerID)
	require.NotNil(t, conversations[0].LatestMessage)
	assert.Equal(t, "old thread revived", conversations[0].LatestMessage.Content)
	assert.Equal(t, second.ID, conversations[1].PartnerID)
}

func TestGetConversationsEmpty(t *testing.T) {
	userRepo, _, svc := newMessageFixture(t)
	caller := addUser(userRepo, newTestUser(models.UserRoleCreator))

	conversations, err := svc.GetConversations(caller)
	require.NoError(t, err)
	assert.Empty(t, conversations)
}

func TestGetMessagesHistory(t *testing.T) {
	userRepo, messageRepo, svc := newMessageFixture(t)
	caller := addUser(userRepo, newTestUser(models.UserRoleCreator))
	partner := addUser(userRepo, newTestUser(models.UserRoleBrand))
	bystander := addUser(userRepo, newTestUser(models.UserRoleBrand))

	bio := "We make sneakers"
	partner.Bio = &bio
	addUser(userRepo, partner)

	base := time.Now()
	seedMessage(t, messageRepo, caller.ID, partner.ID, base.Add(-time.Hour), "hi")
	seedMessage(t, messageRepo, partner.ID, caller.ID, base.Add(-30*time.Minute), "hello back")
	seedMessage(t, messageRepo, caller.ID, bystander.ID, base, "different thread")

	history, err := svc.GetMessages(caller, partner.ID)
	require.NoError(t, err)
	require.Len(t, history.Messages, 2)
	assert.Equal(t, 2, history.Total)

	// Oldest first, other threads excluded.
	assert.Equal(t, "hi", history.Messages[0].Content)
	assert.Equal(t, "hello back", history.Messages[1].Content)

	require.NotNil(t, history.Partner)
	assert.Equal(t, partner.Name, history.Partner.Name)
	require.NotNil(t, history.Partner.Bio)
	assert.Equal(t, bio, *history.Partner.Bio)
}

func TestGetMessagesUnknownPartner(t *testing.T) {
	userRepo, _, svc := newMessageFixture(t)
	caller := addUser(userRepo, newTestUser(models.UserRoleCreator))

	_, err := svc.GetMessages(caller, "missing-user")
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}
