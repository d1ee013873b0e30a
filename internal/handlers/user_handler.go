package handlers

import (
	"net/http"

	"brandmatch_backend/internal/middleware"
	"brandmatch_backend/internal/services"
	"brandmatch_backend/internal/services/dto"
	"brandmatch_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
	jwtSecret   string
}

func NewUserHandler(base *BaseHandler, userService services.UserService, jwtSecret string) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
		jwtSecret:   jwtSecret,
	}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware(h.jwtSecret))
	{
		users.POST("/sync", h.SyncUser)
		users.GET("/me", h.GetCurrentUser)
		users.PUT("/me", h.UpdateProfile)
		users.GET("/:userId", h.GetProfile)
	}
}

// SyncUser upserts the local account for the token subject.
// @Summary Sync the authenticated user into the local database
// @Description Creates the local user on first login, refreshes provider-owned fields afterwards. Idempotent.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.CurrentUserResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /users/sync [post]
func (h *UserHandler) SyncUser(c *gin.Context) {
	externalID := middleware.GetExternalID(c)
	if externalID == "" {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("User not authenticated"))
		return
	}

	hints := dto.ProfileHints{}
	if claims := middleware.GetClaims(c); claims != nil {
		hints = dto.ProfileHints{
			FirstName: claims.FirstName,
			LastName:  claims.LastName,
			AvatarURL: claims.AvatarURL,
			Email:     claims.Email,
		}
	}

	user, err := h.userService.SyncUser(externalID, hints)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.userService.GetCurrentUser(user))
}

// @Summary Get the authenticated user's account
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.CurrentUserResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /users/me [get]
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	caller, ok := h.ResolveCaller(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.userService.GetCurrentUser(caller))
}

// @Summary Update the authenticated user's profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} dto.CurrentUserResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /users/me [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	caller, ok := h.ResolveCaller(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.userService.UpdateProfile(caller, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get a user's public profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Success 200 {object} dto.PublicProfileResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /users/{userId} [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	if _, ok := h.ResolveCaller(c); !ok {
		return
	}

	resp, err := h.userService.GetProfile(c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
