package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/mattherndon/Pet-Health-Monitoring-App-8869/internal/domain/entity"
	"github.com/mattherndon/Pet-Health-Monitoring-App-8869/internal/repository"
	"github.com/mattherndon/Pet-Health-Monitoring-App-8869/internal/service"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserSlot = "userProfile"

func TestUserProfile_DefaultsBeforeLoad(t *testing.T) {
	log, _ := test.NewNullLogger()
	uc := NewUserProfileUsecase(log, repository.NewMemorySlotRepository(), testUserSlot, service.NewAuditService(log))

	require.NoError(t, uc.Load(context.Background()))

	profile := uc.GetUserProfile(context.Background())
	assert.Equal(t, entity.DefaultUserProfile(), profile)
}

func TestUserProfile_UpdatePersistsAndReloads(t *testing.T) {
	ctx := context.Background()
	log, hook := test.NewNullLogger()
	repo := repository.NewMemorySlotRepository()
	uc := NewUserProfileUsecase(log, repo, testUserSlot, service.NewAuditService(log))

	updated, err := uc.UpdateUserProfile(ctx, entity.UserProfilePatch{
		Name:        strPtr("Alex Rivera"),
		Avatar:      strPtr("data:image/png;base64,AAA"),
		Preferences: &entity.Preferences{Notifications: false, SMSReminders: true},
	})
	require.NoError(t, err)
	assert.Equal(t, "Alex Rivera", updated.Name)
	assert.True(t, updated.Preferences.SMSReminders)

	data, err := repo.Read(ctx, testUserSlot)
	require.NoError(t, err)
	var stored map[string]any
	require.NoError(t, json.Unmarshal(data, &stored))
	assert.Equal(t, "Alex Rivera", stored["name"])
	assert.Contains(t, stored, "emergencyContact")

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, true, hook.LastEntry().Data["audit"])
	assert.Equal(t, entity.AuditActionUserProfileUpdate, hook.LastEntry().Data["action"])

	reloaded := NewUserProfileUsecase(log, repo, testUserSlot, service.NewAuditService(log))
	require.NoError(t, reloaded.Load(ctx))
	assert.Equal(t, updated, reloaded.GetUserProfile(ctx))
}

func TestUserProfile_PersistFailureKeepsPrevious(t *testing.T) {
	ctx := context.Background()
	log, _ := test.NewNullLogger()
	uc := NewUserProfileUsecase(log, &failingSlotRepository{err: errors.New("quota exceeded")}, testUserSlot, service.NewAuditService(log))

	_, err := uc.UpdateUserProfile(ctx, entity.UserProfilePatch{Name: strPtr("Alex")})
	require.Error(t, err)
	assert.Empty(t, uc.GetUserProfile(ctx).Name)
}
