package handlers

import (
	"net/http"

	"brandmatch_backend/internal/middleware"
	"brandmatch_backend/internal/services"
	"brandmatch_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	*BaseHandler
	messageService services.MessageService
	jwtSecret      string
}

func NewMessageHandler(base *BaseHandler, messageService services.MessageService, jwtSecret string) *MessageHandler {
	return &MessageHandler{
		BaseHandler:    base,
		messageService: messageService,
		jwtSecret:      jwtSecret,
	}
}

func (h *MessageHandler) RegisterRoutes(r *gin.RouterGroup) {
	messages := r.Group("/messages")
	messages.Use(middleware.AuthMiddleware(h.jwtSecret))
	{
		messages.POST("", h.SendMessage)
		messages.GET("/conversations", h.GetConversations)
		messages.GET("/:partnerId", h.GetMessages)
	}
}

// @Summary Send a direct message
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SendMessageRequest true "Message"
// @Success 201 {object} dto.MessageResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /messages [post]
func (h *MessageHandler) SendMessage(c *gin.Context) {
	caller, ok := h.ResolveCaller(c)
	if !ok {
		return
	}

	var req dto.SendMessageRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.messageService.SendMessage(caller, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// @Summary List the caller's conversations
// @Description One entry per messaging partner, newest activity first.
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ConversationResponse
// @Router /messages/conversations [get]
func (h *MessageHandler) GetConversations(c *gin.Context) {
	caller, ok := h.ResolveCaller(c)
	if !ok {
		return
	}

	responses, err := h.messageService.GetConversations(caller)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Get the message history with one partner
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param partnerId path string true "Partner user ID"
// @Success 200 {object} dto.MessageHistoryResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /messages/{partnerId} [get]
func (h *MessageHandler) GetMessages(c *gin.Context) {
	caller, ok := h.ResolveCaller(c)
	if !ok {
		return
	}

	resp, err := h.messageService.GetMessages(caller, c.Param("partnerId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
