package converter

import (
	"github.com/mattherndon/Pet-Health-Monitoring-App-8869/internal/delivery/dto"
	"github.com/mattherndon/Pet-Health-Monitoring-App-8869/internal/domain/entity"
)

func UserProfileToResponse(profile entity.UserProfile) *dto.UserProfileResponse {
	return &dto.UserProfileResponse{
		ID:      profile.ID,
		Name:    profile.Name,
		Email:   profile.Email,
		Phone:   profile.Phone,
		Address: profile.Address,
		City:    profile.City,
		State:   profile.State,
		ZipCode: profile.ZipCode,
		EmergencyContact: dto.EmergencyContactDTO{
			Name:         profile.EmergencyContact.Name,
			Phone:        profile.EmergencyContact.Phone,
			Relationship: profile.EmergencyContact.Relationship,
		},
		Avatar: profile.Avatar,
		Preferences: dto.PreferencesDTO{
			Notifications:  profile.Preferences.Notifications,
			EmailReminders: profile.Preferences.EmailReminders,
			SMSReminders:   profile.Preferences.SMSReminders,
		},
	}
}

func UpdateUserProfileRequestToPatch(req *dto.UpdateUserProfileRequest) entity.UserProfilePatch {
	patch := entity.UserProfilePatch{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		City:    req.City,
		State:   req.State,
		ZipCode: req.ZipCode,
		Avatar:  req.Avatar,
	}
	if req.EmergencyContact != nil {
		patch.EmergencyContact = &entity.EmergencyContact{
			Name:         req.EmergencyContact.Name,
			Phone:        req.EmergencyContact.Phone,
			Relationship: req.EmergencyContact.Relationship,
		}
	}
	if req.Preferences != nil {
		patch.Preferences = &entity.Preferences{
			Notifications:  req.Preferences.Notifications,
			EmailReminders: req.Preferences.EmailReminders,
			SMSReminders:   req.Preferences.SMSReminders,
		}
	}
	return patch
}
