package handlers

import (
	"net/http"

	"brandmatch_backend/internal/middleware"
	"brandmatch_backend/internal/services"
	"brandmatch_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
	jwtSecret          string
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService, jwtSecret string) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
		jwtSecret:          jwtSecret,
	}
}

func (h *ApplicationHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Apply lives under the campaign it targets.
	campaigns := r.Group("/campaigns")
	campaigns.Use(middleware.AuthMiddleware(h.jwtSecret))
	{
		campaigns.POST("/:campaignId/applications", h.Apply)
	}

	applications := r.Group("/applications")
	applications.Use(middleware.AuthMiddleware(h.jwtSecret))
	{
		applications.GET("", h.ListApplications)
		applications.GET("/:applicationId", h.GetApplication)
		applications.PUT("/:applicationId/status", h.UpdateStatus)
	}
}

// @Summary Apply to a campaign
// @Description Creator accounts only. One application per campaign.
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param campaignId path string true "Campaign ID"
// @Param request body dto.CreateApplicationRequest true "Application"
// @Success 201 {object} dto.ApplicationResponse
// @Failure 409 {object} apperrors.ErrorResponse
// @Router /campaigns/{campaignId}/applications [post]
func (h *ApplicationHandler) Apply(c *gin.Context) {
	caller, ok := h.ResolveCaller(c)
	if !ok {
		return
	}

	var req dto.CreateApplicationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.applicationService.Apply(caller, c.Param("campaignId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// @Summary List applications visible to the caller
// @Description Creators see their own applications, brands see applications to their campaigns.
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status" Enums(PENDING, ACCEPTED, REJECTED)
// @Param campaign_id query string false "Filter by campaign"
// @Success 200 {array} dto.ApplicationResponse
// @Router /applications [get]
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	caller, ok := h.ResolveCaller(c)
	if !ok {
		return
	}

	var query dto.ListApplicationsQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	responses, err := h.applicationService.ListApplications(caller, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Get an application by ID
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param applicationId path string true "Application ID"
// @Success 200 {object} dto.ApplicationResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Router /applications/{applicationId} [get]
func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	caller, ok := h.ResolveCaller(c)
	if !ok {
		return
	}

	resp, err := h.applicationService.GetApplication(caller, c.Param("applicationId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Accept or reject an application
// @Description Owner brand only. Only PENDING applications can be decided.
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param applicationId path string true "Application ID"
// @Param request body dto.UpdateApplicationStatusRequest true "Decision"
// @Success 200 {object} dto.ApplicationResponse
// @Failure 409 {object} apperrors.ErrorResponse
// @Router /applications/{applicationId}/status [put]
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	caller, ok := h.ResolveCaller(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.applicationService.UpdateStatus(caller, c.Param("applicationId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
