package services

import (
	"testing"

	"brandmatch_backend/internal/models"
	"brandmatch_backend/internal/services/dto"
	"brandmatch_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncUserCreatesOnFirstLogin(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewUserService(userRepo)

	hints := dto.ProfileHints{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		AvatarURL: "https://cdn.example.com/jane.png",
	}

	user, err := svc.SyncUser("ext-subject-1", hints)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", user.Name)
	assert.Equal(t, models.UserRoleCreator, user.Role)
	require.NotNil(t, user.Email)
	assert.Equal(t, "jane@example.com", *user.Email)
	require.NotNil(t, user.AvatarURL)

	// Repeat sync resolves to the same row.
	again, err := svc.SyncUser("ext-subject-1", hints)
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)
}

func TestSyncUserNameFallback(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	user, err := svc.SyncUser("ext-anon", dto.ProfileHints{})
	require.NoError(t, err)
	assert.Equal(t, "User", user.Name)
}

func TestSyncUserRefreshesProviderFields(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewUserService(userRepo)

	user, err := svc.SyncUser("ext-2", dto.ProfileHints{FirstName: "Old", LastName: "Name"})
	require.NoError(t, err)
	require.Nil(t, user.Email)

	// A later login carries an email; the locally stored name stays.
	updated, err := svc.SyncUser("ext-2", dto.ProfileHints{
		FirstName: "New", LastName: "Name", Email: "late@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Old Name", updated.Name)
	require.NotNil(t, updated.Email)
	assert.Equal(t, "late@example.com", *updated.Email)
}

func TestGetByExternalIDRequiresSync(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.GetByExternalID("never-synced")
	require.ErrorIs(t, err, apperrors.ErrUserNotSynced)
}

func TestUpdateProfilePartial(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewUserService(userRepo)

	caller := addUser(userRepo, newTestUser(models.UserRoleCreator))

	bio := "Lifestyle creator"
	resp, err := svc.UpdateProfile(caller, &dto.UpdateProfileRequest{Bio: &bio})
	require.NoError(t, err)
	require.NotNil(t, resp.Bio)
	assert.Equal(t, bio, *resp.Bio)
	// Untouched fields survive.
	assert.Equal(t, caller.Name, resp.Name)
	assert.Nil(t, resp.Niche)
}

func TestGetProfileCountsByRole(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewUserService(userRepo)

	brand := addUser(userRepo, newTestUser(models.UserRoleBrand))
	creator := addUser(userRepo, newTestUser(models.UserRoleCreator))
	userRepo.campaignCounts[brand.ID] = 3
	userRepo.applicationCounts[creator.ID] = 7

	brandProfile, err := svc.GetProfile(brand.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), brandProfile.CampaignCount)
	assert.Zero(t, brandProfile.ApplicationCount)

	creatorProfile, err := svc.GetProfile(creator.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), creatorProfile.ApplicationCount)
}

func TestGetProfileNotFound(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.GetProfile("missing-id")
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}
