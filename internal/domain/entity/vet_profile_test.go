package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestProfilePatchApply(t *testing.T) {
	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	profile := VetProfile{
		ID:        "v1",
		CreatedAt: created,
		ProfileDraft: ProfileDraft{
			Name:      "Jane Doe",
			Specialty: "Surgery",
			ClinicID:  strPtr("c1"),
			Phone:     "555-111-2222",
		},
	}

	merged := ProfilePatch{Specialty: strPtr("Dental"), Notes: strPtr("Prefers mornings")}.Apply(profile)

	assert.Equal(t, "v1", merged.ID)
	assert.Equal(t, created, merged.CreatedAt)
	assert.Equal(t, "Jane Doe", merged.Name)
	assert.Equal(t, "Dental", merged.Specialty)
	assert.Equal(t, "Prefers mornings", merged.Notes)
	assert.Equal(t, "555-111-2222", merged.Phone)
	require.NotNil(t, merged.ClinicID)
	assert.Equal(t, "c1", *merged.ClinicID)
	assert.Equal(t, "Surgery", profile.Specialty)
}

func TestProfilePatchApply_ClinicID(t *testing.T) {
	profile := VetProfile{ID: "v1", ProfileDraft: ProfileDraft{Name: "Sam", ClinicID: strPtr("c1")}}

	cleared := ProfilePatch{ClinicID: strPtr("")}.Apply(profile)
	assert.Nil(t, cleared.ClinicID)
	assert.False(t, cleared.HasClinic())

	moved := ProfilePatch{ClinicID: strPtr("c2")}.Apply(profile)
	require.NotNil(t, moved.ClinicID)
	assert.Equal(t, "c2", *moved.ClinicID)

	isClinic := true
	promoted := ProfilePatch{IsClinic: &isClinic, ClinicName: strPtr("Sam's Clinic")}.Apply(profile)
	assert.True(t, promoted.IsClinic)
	assert.Nil(t, promoted.ClinicID)
}

func TestUserProfilePatchApply(t *testing.T) {
	profile := DefaultUserProfile()
	profile.Avatar = strPtr("data:image/png;base64,AAA")

	merged := UserProfilePatch{
		Name:             strPtr("Alex"),
		EmergencyContact: &EmergencyContact{Name: "Jo", Phone: "555-0100", Relationship: "Sibling"},
		Avatar:           strPtr(""),
	}.Apply(profile)

	assert.Equal(t, UserProfileID, merged.ID)
	assert.Equal(t, "Alex", merged.Name)
	assert.Equal(t, "Jo", merged.EmergencyContact.Name)
	assert.Nil(t, merged.Avatar)
	assert.True(t, merged.Preferences.Notifications)
	assert.True(t, merged.Preferences.EmailReminders)
	assert.False(t, merged.Preferences.SMSReminders)
}
