package services

import (
	"errors"
	"fmt"
	"strings"

	"brandmatch_backend/internal/models"
	"brandmatch_backend/internal/repositories"
	"brandmatch_backend/internal/services/dto"
	"brandmatch_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type UserService interface {
	// SyncUser upserts the local user for an identity-provider subject.
	// Safe to call on every login.
	SyncUser(externalID string, hints dto.ProfileHints) (*models.User, error)

	// GetByExternalID resolves a subject to its local user without creating
	// one. Used for per-request caller resolution.
	GetByExternalID(externalID string) (*models.User, error)

	GetCurrentUser(caller *models.User) *dto.CurrentUserResponse
	UpdateProfile(caller *models.User, req *dto.UpdateProfileRequest) (*dto.CurrentUserResponse, error)
	GetProfile(userID string) (*dto.PublicProfileResponse, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) SyncUser(externalID string, hints dto.ProfileHints) (*models.User, error) {
	user, err := s.userRepo.FindByExternalID(externalID)
	if err == nil {
		return s.refreshFromHints(user, hints)
	}
	if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}

	user = &models.User{
		ExternalID: externalID,
		Name:       displayName(hints),
		Role:       models.UserRoleCreator,
	}
	if hints.Email != "" {
		user.Email = &hints.Email
	}
	if hints.AvatarURL != "" {
		user.AvatarURL = &hints.AvatarURL
	}

	if err := s.userRepo.Create(user); err != nil {
		// Two concurrent first syncs can race on the external_id unique
		// index. The loser re-reads the winner's row.
		existing, findErr := s.userRepo.FindByExternalID(externalID)
		if findErr == nil {
			return existing, nil
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

// refreshFromHints keeps provider-owned fields (email, avatar) current on
// repeat syncs. Locally edited fields are never overwritten.
func (s *UserServiceImpl) refreshFromHints(user *models.User, hints dto.ProfileHints) (*models.User, error) {
	fields := map[string]interface{}{}
	if hints.Email != "" && (user.Email == nil || *user.Email != hints.Email) {
		fields["email"] = hints.Email
	}
	if hints.AvatarURL != "" && user.AvatarURL == nil {
		fields["avatar_url"] = hints.AvatarURL
	}
	if len(fields) == 0 {
		return user, nil
	}
	if err := s.userRepo.UpdateFields(user.ID, fields); err != nil {
		return nil, apperrors.InternalError(err)
	}
	refreshed, err := s.userRepo.FindByID(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return refreshed, nil
}

func (s *UserServiceImpl) GetByExternalID(externalID string) (*models.User, error) {
	user, err := s.userRepo.FindByExternalID(externalID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotSynced
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *UserServiceImpl) GetCurrentUser(caller *models.User) *dto.CurrentUserResponse {
	return &dto.CurrentUserResponse{
		ID:         caller.ID,
		ExternalID: caller.ExternalID,
		Name:       caller.Name,
		Role:       string(caller.Role),
		Bio:        caller.Bio,
		Niche:      caller.Niche,
		AvatarURL:  caller.AvatarURL,
		Socials:    caller.Socials,
		CreatedAt:  caller.CreatedAt,
	}
}

func (s *UserServiceImpl) UpdateProfile(caller *models.User, req *dto.UpdateProfileRequest) (*dto.CurrentUserResponse, error) {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}
	if req.Niche != nil {
		fields["niche"] = *req.Niche
	}
	if req.AvatarURL != nil {
		fields["avatar_url"] = *req.AvatarURL
	}
	if req.Socials != nil {
		fields["socials"] = datatypes.JSON(req.Socials)
	}

	if len(fields) > 0 {
		if err := s.userRepo.UpdateFields(caller.ID, fields); err != nil {
			if errors.Is(err, repositories.ErrUserNotFound) {
				return nil, apperrors.ErrNotFound(err)
			}
			return nil, apperrors.InternalError(err)
		}
	}

	updated, err := s.userRepo.FindByID(caller.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.GetCurrentUser(updated), nil
}

func (s *UserServiceImpl) GetProfile(userID string) (*dto.PublicProfileResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.PublicProfileResponse{
		ID:        user.ID,
		Name:      user.Name,
		Role:      string(user.Role),
		Bio:       user.Bio,
		Niche:     user.Niche,
		AvatarURL: user.AvatarURL,
		Socials:   user.Socials,
		CreatedAt: user.CreatedAt,
	}

	switch user.Role {
	case models.UserRoleBrand:
		count, err := s.userRepo.CountCampaigns(user.ID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		resp.CampaignCount = count
	case models.UserRoleCreator:
		count, err := s.userRepo.CountApplications(user.ID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		resp.ApplicationCount = count
	}
	return resp, nil
}

// displayName joins the provider's name hints, falling back to a
// placeholder so the not-null column is always satisfied.
func displayName(hints dto.ProfileHints) string {
	name := strings.TrimSpace(fmt.Sprintf("%s %s", hints.FirstName, hints.LastName))
	if name == "" {
		return "User"
	}
	return name
}
