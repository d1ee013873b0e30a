package handlers

import (
	"net/http"

	"brandmatch_backend/internal/middleware"
	"brandmatch_backend/internal/services"
	"brandmatch_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CampaignHandler struct {
	*BaseHandler
	campaignService services.CampaignService
	jwtSecret       string
}

func NewCampaignHandler(base *BaseHandler, campaignService services.CampaignService, jwtSecret string) *CampaignHandler {
	return &CampaignHandler{
		BaseHandler:     base,
		campaignService: campaignService,
		jwtSecret:       jwtSecret,
	}
}

func (h *CampaignHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Browsing campaigns is public.
	public := r.Group("/campaigns")
	{
		public.GET("", h.ListCampaigns)
		public.GET("/:campaignId", h.GetCampaign)
	}

	campaigns := r.Group("/campaigns")
	campaigns.Use(middleware.AuthMiddleware(h.jwtSecret))
	{
		campaigns.POST("", h.CreateCampaign)
		campaigns.PUT("/:campaignId", h.UpdateCampaign)
		campaigns.DELETE("/:campaignId", h.DeleteCampaign)
	}
}

// @Summary List campaigns
// @Tags campaigns
// @Produce json
// @Param status query string false "Filter by status" Enums(ACTIVE, CLOSED, COMPLETED)
// @Param brand_id query string false "Filter by brand"
// @Success 200 {array} dto.CampaignResponse
// @Router /campaigns [get]
func (h *CampaignHandler) ListCampaigns(c *gin.Context) {
	var query dto.ListCampaignsQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	responses, err := h.campaignService.ListCampaigns(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Get a campaign by ID
// @Tags campaigns
// @Produce json
// @Param campaignId path string true "Campaign ID"
// @Success 200 {object} dto.CampaignResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /campaigns/{campaignId} [get]
func (h *CampaignHandler) GetCampaign(c *gin.Context) {
	resp, err := h.campaignService.GetCampaign(c.Param("campaignId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Create a campaign
// @Description Brand accounts only. New campaigns always start ACTIVE.
// @Tags campaigns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCampaignRequest true "Campaign"
// @Success 201 {object} dto.CampaignResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Router /campaigns [post]
func (h *CampaignHandler) CreateCampaign(c *gin.Context) {
	caller, ok := h.ResolveCaller(c)
	if !ok {
		return
	}

	var req dto.CreateCampaignRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.campaignService.CreateCampaign(caller, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// @Summary Update a campaign
// @Description Owner brand only. Status may only move ACTIVE -> CLOSED or ACTIVE -> COMPLETED.
// @Tags campaigns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param campaignId path string true "Campaign ID"
// @Param request body dto.UpdateCampaignRequest true "Fields to update"
// @Success 200 {object} dto.CampaignResponse
// @Failure 409 {object} apperrors.ErrorResponse
// @Router /campaigns/{campaignId} [put]
func (h *CampaignHandler) UpdateCampaign(c *gin.Context) {
	caller, ok := h.ResolveCaller(c)
	if !ok {
		return
	}

	var req dto.UpdateCampaignRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.campaignService.UpdateCampaign(caller, c.Param("campaignId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Delete a campaign
// @Tags campaigns
// @Security BearerAuth
// @Param campaignId path string true "Campaign ID"
// @Success 204
// @Failure 403 {object} apperrors.ErrorResponse
// @Router /campaigns/{campaignId} [delete]
func (h *CampaignHandler) DeleteCampaign(c *gin.Context) {
	caller, ok := h.ResolveCaller(c)
	if !ok {
		return
	}

	if err := h.campaignService.DeleteCampaign(caller, c.Param("campaignId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
