package converter

import (
	"github.com/mattherndon/Pet-Health-Monitoring-App-8869/internal/delivery/dto"
	"github.com/mattherndon/Pet-Health-Monitoring-App-8869/internal/domain/entity"
)

// VetProfileRequestToDraft converts a create request into a ProfileDraft
func VetProfileRequestToDraft(req *dto.VetProfileRequest) entity.ProfileDraft {
	return entity.ProfileDraft{
		IsClinic:       req.IsClinic,
		Name:           req.Name,
		Specialty:      req.Specialty,
		Position:       req.Position,
		ClinicID:       req.ClinicID,
		ClinicName:     req.ClinicName,
		Address:        req.Address,
		City:           req.City,
		State:          req.State,
		ZipCode:        req.ZipCode,
		Phone:          req.Phone,
		EmergencyPhone: req.EmergencyPhone,
		Email:          req.Email,
		Website:        req.Website,
		Hours:          req.Hours,
		Avatar:         req.Avatar,
		Notes:          req.Notes,
	}
}

// UpdateVetProfileRequestToPatch converts an update request into a ProfilePatch
func UpdateVetProfileRequestToPatch(req *dto.UpdateVetProfileRequest) entity.ProfilePatch {
	return entity.ProfilePatch{
		IsClinic:       req.IsClinic,
		Name:           req.Name,
		Specialty:      req.Specialty,
		Position:       req.Position,
		ClinicID:       req.ClinicID,
		ClinicName:     req.ClinicName,
		Address:        req.Address,
		City:           req.City,
		State:          req.State,
		ZipCode:        req.ZipCode,
		Phone:          req.Phone,
		EmergencyPhone: req.EmergencyPhone,
		Email:          req.Email,
		Website:        req.Website,
		Hours:          req.Hours,
		Avatar:         req.Avatar,
		Notes:          req.Notes,
	}
}

// VetProfileToResponse converts a VetProfile entity to VetProfileResponse DTO
func VetProfileToResponse(profile *entity.VetProfile) *dto.VetProfileResponse {
	if profile == nil {
		return nil
	}

	response := vetProfileToResponse(*profile)
	return &response
}

// VetProfilesToResponses converts a slice of VetProfile entities to slice of VetProfileResponse DTOs
func VetProfilesToResponses(profiles []entity.VetProfile) []dto.VetProfileResponse {
	responses := make([]dto.VetProfileResponse, len(profiles))
	for i, profile := range profiles {
		responses[i] = vetProfileToResponse(profile)
	}
	return responses
}

func SimilarProfilesToResponses(similar []entity.SimilarProfile) []dto.SimilarProfileResponse {
	responses := make([]dto.SimilarProfileResponse, len(similar))
	for i, match := range similar {
		responses[i] = dto.SimilarProfileResponse{
			Profile: vetProfileToResponse(match.Profile),
			Reasons: match.Reasons,
		}
	}
	return responses
}

func DuplicateGroupsToResponse(groups [][]entity.VetProfile) *dto.DuplicateGroupsResponse {
	responses := make([][]dto.VetProfileResponse, len(groups))
	for i, group := range groups {
		responses[i] = VetProfilesToResponses(group)
	}
	return &dto.DuplicateGroupsResponse{
		Groups: responses,
		Total:  len(groups),
	}
}

func vetProfileToResponse(profile entity.VetProfile) dto.VetProfileResponse {
	return dto.VetProfileResponse{
		ID:             profile.ID,
		IsClinic:       profile.IsClinic,
		Name:           profile.Name,
		Specialty:      profile.Specialty,
		Position:       profile.Position,
		ClinicID:       profile.ClinicID,
		ClinicName:     profile.ClinicName,
		Address:        profile.Address,
		City:           profile.City,
		State:          profile.State,
		ZipCode:        profile.ZipCode,
		Phone:          profile.Phone,
		EmergencyPhone: profile.EmergencyPhone,
		Email:          profile.Email,
		Website:        profile.Website,
		Hours:          profile.Hours,
		Avatar:         profile.Avatar,
		Notes:          profile.Notes,
		CreatedAt:      profile.CreatedAt,
	}
}
