package handlers

// AppHandlers holds all HTTP handlers.
type AppHandlers struct {
	UserHandler        *UserHandler
	CampaignHandler    *CampaignHandler
	ApplicationHandler *ApplicationHandler
	MessageHandler     *MessageHandler
	PayoutHandler      *PayoutHandler
}
