package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/mattherndon/Pet-Health-Monitoring-App-8869/internal/converter"
	"github.com/mattherndon/Pet-Health-Monitoring-App-8869/internal/delivery/dto"
	"github.com/mattherndon/Pet-Health-Monitoring-App-8869/internal/domain/entity"
	"github.com/mattherndon/Pet-Health-Monitoring-App-8869/internal/usecase"
	"github.com/mattherndon/Pet-Health-Monitoring-App-8869/pkg/response"
	"github.com/mattherndon/Pet-Health-Monitoring-App-8869/pkg/validator"

	"github.com/gorilla/mux"
)

type VetProfileHandler struct {
	vetProfileUsecase usecase.VetProfileUsecase
	validator         *validator.CustomValidator
}

func NewVetProfileHandler(vetProfileUsecase usecase.VetProfileUsecase, validator *validator.CustomValidator) *VetProfileHandler {
	return &VetProfileHandler{
		vetProfileUsecase: vetProfileUsecase,
		validator:         validator,
	}
}

func (h *VetProfileHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var req dto.VetProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if errs := h.validateProfileRequest(&req, &req); len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	draft := converter.VetProfileRequestToDraft(&req)
	profile, err := h.vetProfileUsecase.AddProfile(r.Context(), draft)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDuplicateProfile):
			similar := h.vetProfileUsecase.FindSimilarProfiles(r.Context(), draft)
			response.Conflict(w, err.Error(), converter.SimilarProfilesToResponses(similar))
		case errors.Is(err, usecase.ErrClinicNotFound):
			response.Error(w, http.StatusBadRequest, "Clinic not found", nil)
		default:
			response.InternalServerError(w, "Failed to create profile")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Profile created successfully", converter.VetProfileToResponse(profile))
}

func (h *VetProfileHandler) GetAllProfiles(w http.ResponseWriter, r *http.Request) {
	query := dto.ListVetProfilesQuery{
		Variant: r.URL.Query().Get("variant"),
		Sort:    r.URL.Query().Get("sort"),
		Order:   r.URL.Query().Get("order"),
	}
	if err := h.validator.Validate(&query); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	filter := entity.ProfileFilter{
		Variant:    entity.ProfileVariant(query.Variant),
		SortField:  entity.ProfileSortField(query.Sort),
		Descending: query.Order == "desc",
	}
	profiles := h.vetProfileUsecase.ListProfiles(r.Context(), filter)

	response.Success(w, http.StatusOK, "Profiles retrieved successfully", &dto.VetProfileListResponse{
		Profiles: converter.VetProfilesToResponses(profiles),
		Total:    len(profiles),
	})
}

func (h *VetProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.vetProfileUsecase.GetProfile(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, usecase.ErrProfileNotFound) {
			response.NotFound(w, "Profile not found")
			return
		}
		response.InternalServerError(w, "Failed to get profile")
		return
	}

	response.Success(w, http.StatusOK, "Profile retrieved successfully", converter.VetProfileToResponse(profile))
}

func (h *VetProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req dto.UpdateVetProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patch := converter.UpdateVetProfileRequestToPatch(&req)
	profile, err := h.vetProfileUsecase.UpdateProfile(r.Context(), id, patch)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrProfileNotFound):
			response.NotFound(w, "Profile not found")
		case errors.Is(err, usecase.ErrDuplicateProfile):
			response.Conflict(w, err.Error(), converter.SimilarProfilesToResponses(h.similarForUpdate(r, id, patch)))
		case errors.Is(err, usecase.ErrClinicNotFound):
			response.Error(w, http.StatusBadRequest, "Clinic not found", nil)
		default:
			response.InternalServerError(w, "Failed to update profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile updated successfully", converter.VetProfileToResponse(profile))
}

func (h *VetProfileHandler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	err := h.vetProfileUsecase.DeleteProfile(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, usecase.ErrProfileNotFound) {
			response.NotFound(w, "Profile not found")
			return
		}
		response.InternalServerError(w, "Failed to delete profile")
		return
	}

	response.Success(w, http.StatusOK, "Profile deleted successfully", nil)
}

// CheckDuplicate runs the exact and similarity checks for a form draft
// without writing anything.
func (h *VetProfileHandler) CheckDuplicate(w http.ResponseWriter, r *http.Request) {
	var req dto.CheckDuplicateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if errs := h.validateProfileRequest(&req, &req.VetProfileRequest); len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	draft := converter.VetProfileRequestToDraft(&req.VetProfileRequest)
	result := &dto.DuplicateCheckResponse{
		IsDuplicate: h.vetProfileUsecase.IsDuplicate(r.Context(), draft, req.ExcludeID),
		Similar:     converter.SimilarProfilesToResponses(h.vetProfileUsecase.FindSimilarProfiles(r.Context(), draft)),
	}

	response.Success(w, http.StatusOK, "Duplicate check completed", result)
}

func (h *VetProfileHandler) GetDuplicateGroups(w http.ResponseWriter, r *http.Request) {
	groups := h.vetProfileUsecase.GetDuplicateGroups(r.Context())

	response.Success(w, http.StatusOK, "Duplicate groups retrieved successfully", converter.DuplicateGroupsToResponse(groups))
}

func (h *VetProfileHandler) DeleteDuplicates(w http.ResponseWriter, r *http.Request) {
	removed, err := h.vetProfileUsecase.DeleteDuplicates(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to delete duplicates")
		return
	}

	response.Success(w, http.StatusOK, "Duplicates deleted successfully", &dto.DeleteDuplicatesResponse{Removed: removed})
}

func (h *VetProfileHandler) GetClinics(w http.ResponseWriter, r *http.Request) {
	clinics := h.vetProfileUsecase.GetClinics(r.Context())

	response.Success(w, http.StatusOK, "Clinics retrieved successfully", &dto.VetProfileListResponse{
		Profiles: converter.VetProfilesToResponses(clinics),
		Total:    len(clinics),
	})
}

func (h *VetProfileHandler) GetClinic(w http.ResponseWriter, r *http.Request) {
	clinic, ok := h.vetProfileUsecase.GetClinic(r.Context(), mux.Vars(r)["id"])
	if !ok {
		response.NotFound(w, "Clinic not found")
		return
	}

	response.Success(w, http.StatusOK, "Clinic retrieved successfully", converter.VetProfileToResponse(clinic))
}

func (h *VetProfileHandler) GetClinicVets(w http.ResponseWriter, r *http.Request) {
	clinicID := mux.Vars(r)["id"]
	if _, ok := h.vetProfileUsecase.GetClinic(r.Context(), clinicID); !ok {
		response.NotFound(w, "Clinic not found")
		return
	}

	vets := h.vetProfileUsecase.GetClinicVets(r.Context(), clinicID)
	response.Success(w, http.StatusOK, "Clinic veterinarians retrieved successfully", &dto.VetProfileListResponse{
		Profiles: converter.VetProfilesToResponses(vets),
		Total:    len(vets),
	})
}

// validateProfileRequest runs tag validation on target and then the name
// rule: a practitioner needs a name unless it is linked to a clinic.
func (h *VetProfileHandler) validateProfileRequest(target interface{}, req *dto.VetProfileRequest) map[string]string {
	errs := map[string]string{}
	if err := h.validator.Validate(target); err != nil {
		errs = h.validator.FormatValidationErrors(err)
	}

	linked := req.ClinicID != nil && strings.TrimSpace(*req.ClinicID) != ""
	if !req.IsClinic && !linked && strings.TrimSpace(req.Name) == "" {
		errs["name"] = "name is required"
	}
	return errs
}

// similarForUpdate lists the profiles the patched record resembles, leaving
// out the record itself.
func (h *VetProfileHandler) similarForUpdate(r *http.Request, id string, patch entity.ProfilePatch) []entity.SimilarProfile {
	current, err := h.vetProfileUsecase.GetProfile(r.Context(), id)
	if err != nil {
		return []entity.SimilarProfile{}
	}

	merged := patch.Apply(*current)
	similar := []entity.SimilarProfile{}
	for _, match := range h.vetProfileUsecase.FindSimilarProfiles(r.Context(), merged.ProfileDraft) {
		if match.Profile.ID != id {
			similar = append(similar, match)
		}
	}
	return similar
}
