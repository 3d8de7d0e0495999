package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/mattherndon/Pet-Health-Monitoring-App-8869/internal/domain/entity"
	"github.com/mattherndon/Pet-Health-Monitoring-App-8869/internal/domain/repository"
	"github.com/mattherndon/Pet-Health-Monitoring-App-8869/internal/service"

	"github.com/sirupsen/logrus"
)

// UserProfileUsecase owns the pet owner's profile, stored as a single document.
type UserProfileUsecase interface {
	Load(ctx context.Context) error
	GetUserProfile(ctx context.Context) entity.UserProfile
	UpdateUserProfile(ctx context.Context, patch entity.UserProfilePatch) (entity.UserProfile, error)
}

type userProfileUsecase struct {
	mu      sync.RWMutex
	profile entity.UserProfile

	log          *logrus.Logger
	slotRepo     repository.SlotRepository
	slot         string
	auditService service.AuditService
}

func NewUserProfileUsecase(
	log *logrus.Logger,
	slotRepo repository.SlotRepository,
	slot string,
	auditService service.AuditService,
) UserProfileUsecase {
	return &userProfileUsecase{
		profile:      entity.DefaultUserProfile(),
		log:          log,
		slotRepo:     slotRepo,
		slot:         slot,
		auditService: auditService,
	}
}

func (u *userProfileUsecase) Load(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	data, err := u.slotRepo.Read(ctx, u.slot)
	if err != nil {
		u.log.Warnf("Failed to read user profile: %+v", err)
		return fmt.Errorf("read user profile: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	profile := entity.DefaultUserProfile()
	if err := json.Unmarshal(data, &profile); err != nil {
		u.log.Warnf("Failed to decode user profile: %+v", err)
		return fmt.Errorf("decode user profile: %w", err)
	}
	profile.ID = entity.UserProfileID
	u.profile = profile

	return nil
}

func (u *userProfileUsecase) GetUserProfile(ctx context.Context) entity.UserProfile {
	u.mu.RLock()
	defer u.mu.RUnlock()

	return copyUserProfile(u.profile)
}

func (u *userProfileUsecase) UpdateUserProfile(ctx context.Context, patch entity.UserProfilePatch) (entity.UserProfile, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	old := u.profile
	updated := patch.Apply(old)

	data, err := json.Marshal(updated)
	if err != nil {
		u.log.Warnf("Failed to encode user profile: %+v", err)
		return entity.UserProfile{}, fmt.Errorf("encode user profile: %w", err)
	}
	if err := u.slotRepo.Write(ctx, u.slot, data); err != nil {
		u.log.Warnf("Failed to persist user profile: %+v", err)
		return entity.UserProfile{}, fmt.Errorf("persist user profile: %w", err)
	}
	u.profile = updated

	u.auditService.LogUpdate(ctx, entity.AuditActionUserProfileUpdate, "user_profile", entity.UserProfileID, old, updated)

	return copyUserProfile(updated), nil
}

func copyUserProfile(profile entity.UserProfile) entity.UserProfile {
	if profile.Avatar != nil {
		avatar := *profile.Avatar
		profile.Avatar = &avatar
	}
	return profile
}
