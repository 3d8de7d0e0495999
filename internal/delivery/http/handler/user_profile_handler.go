package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mattherndon/Pet-Health-Monitoring-App-8869/internal/converter"
	"github.com/mattherndon/Pet-Health-Monitoring-App-8869/internal/delivery/dto"
	"github.com/mattherndon/Pet-Health-Monitoring-App-8869/internal/usecase"
	"github.com/mattherndon/Pet-Health-Monitoring-App-8869/pkg/response"
	"github.com/mattherndon/Pet-Health-Monitoring-App-8869/pkg/validator"
)

type UserProfileHandler struct {
	userProfileUsecase usecase.UserProfileUsecase
	validator          *validator.CustomValidator
}

func NewUserProfileHandler(userProfileUsecase usecase.UserProfileUsecase, validator *validator.CustomValidator) *UserProfileHandler {
	return &UserProfileHandler{
		userProfileUsecase: userProfileUsecase,
		validator:          validator,
	}
}

func (h *UserProfileHandler) GetUserProfile(w http.ResponseWriter, r *http.Request) {
	profile := h.userProfileUsecase.GetUserProfile(r.Context())

	response.Success(w, http.StatusOK, "User profile retrieved successfully", converter.UserProfileToResponse(profile))
}

func (h *UserProfileHandler) UpdateUserProfile(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateUserProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	profile, err := h.userProfileUsecase.UpdateUserProfile(r.Context(), converter.UpdateUserProfileRequestToPatch(&req))
	if err != nil {
		response.InternalServerError(w, "Failed to update user profile")
		return
	}

	response.Success(w, http.StatusOK, "User profile updated successfully", converter.UserProfileToResponse(profile))
}
