package dto

import "time"

// Request DTOs

type VetProfileRequest struct {
	IsClinic       bool    `json:"is_clinic"`
	Name           string  `json:"name" validate:"max=200"`
	Specialty      string  `json:"specialty" validate:"max=200"`
	Position       string  `json:"position" validate:"max=200"`
	ClinicID       *string `json:"clinic_id" validate:"omitempty,max=100"`
	ClinicName     string  `json:"clinic_name" validate:"required_if=IsClinic true,max=200"`
	Address        string  `json:"address" validate:"max=300"`
	City           string  `json:"city" validate:"max=100"`
	State          string  `json:"state" validate:"max=100"`
	ZipCode        string  `json:"zip_code" validate:"max=20"`
	Phone          string  `json:"phone" validate:"max=40"`
	EmergencyPhone string  `json:"emergency_phone" validate:"max=40"`
	Email          string  `json:"email" validate:"omitempty,email"`
	Website        string  `json:"website" validate:"omitempty,url"`
	Hours          string  `json:"hours" validate:"max=500"`
	Avatar         string  `json:"avatar" validate:"max=2048"`
	Notes          string  `json:"notes" validate:"max=5000"`
}

type UpdateVetProfileRequest struct {
	IsClinic       *bool   `json:"is_clinic"`
	Name           *string `json:"name" validate:"omitempty,max=200"`
	Specialty      *string `json:"specialty" validate:"omitempty,max=200"`
	Position       *string `json:"position" validate:"omitempty,max=200"`
	ClinicID       *string `json:"clinic_id" validate:"omitempty,max=100"`
	ClinicName     *string `json:"clinic_name" validate:"omitempty,max=200"`
	Address        *string `json:"address" validate:"omitempty,max=300"`
	City           *string `json:"city" validate:"omitempty,max=100"`
	State          *string `json:"state" validate:"omitempty,max=100"`
	ZipCode        *string `json:"zip_code" validate:"omitempty,max=20"`
	Phone          *string `json:"phone" validate:"omitempty,max=40"`
	EmergencyPhone *string `json:"emergency_phone" validate:"omitempty,max=40"`
	Email          *string `json:"email" validate:"omitempty,email"`
	Website        *string `json:"website" validate:"omitempty,url"`
	Hours          *string `json:"hours" validate:"omitempty,max=500"`
	Avatar         *string `json:"avatar" validate:"omitempty,max=2048"`
	Notes          *string `json:"notes" validate:"omitempty,max=5000"`
}

type CheckDuplicateRequest struct {
	VetProfileRequest
	ExcludeID string `json:"exclude_id" validate:"omitempty,max=100"`
}

// Response DTOs

type VetProfileResponse struct {
	ID             string    `json:"id"`
	IsClinic       bool      `json:"is_clinic"`
	Name           string    `json:"name,omitempty"`
	Specialty      string    `json:"specialty,omitempty"`
	Position       string    `json:"position,omitempty"`
	ClinicID       *string   `json:"clinic_id"`
	ClinicName     string    `json:"clinic_name,omitempty"`
	Address        string    `json:"address,omitempty"`
	City           string    `json:"city,omitempty"`
	State          string    `json:"state,omitempty"`
	ZipCode        string    `json:"zip_code,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	EmergencyPhone string    `json:"emergency_phone,omitempty"`
	Email          string    `json:"email,omitempty"`
	Website        string    `json:"website,omitempty"`
	Hours          string    `json:"hours,omitempty"`
	Avatar         string    `json:"avatar,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type VetProfileListResponse struct {
	Profiles []VetProfileResponse `json:"profiles"`
	Total    int                  `json:"total"`
}

type SimilarProfileResponse struct {
	Profile VetProfileResponse `json:"profile"`
	Reasons []string           `json:"reasons"`
}

type DuplicateCheckResponse struct {
	IsDuplicate bool                     `json:"is_duplicate"`
	Similar     []SimilarProfileResponse `json:"similar"`
}

type DuplicateGroupsResponse struct {
	Groups [][]VetProfileResponse `json:"groups"`
	Total  int                    `json:"total"`
}

type DeleteDuplicatesResponse struct {
	Removed int `json:"removed"`
}

// Query DTOs

type ListVetProfilesQuery struct {
	Variant string `json:"variant" validate:"omitempty,oneof=all clinic vet independent"`
	Sort    string `json:"sort" validate:"omitempty,oneof=name date"`
	Order   string `json:"order" validate:"omitempty,oneof=asc desc"`
}
