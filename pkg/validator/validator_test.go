package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	IsClinic   bool   `json:"is_clinic"`
	Name       string `json:"name" validate:"required_if=IsClinic false,max=10"`
	ClinicName string `json:"clinic_name" validate:"required_if=IsClinic true"`
	Email      string `json:"email" validate:"omitempty,email"`
	Sort       string `json:"sort" validate:"omitempty,oneof=name date"`
}

func TestValidate_UsesJSONFieldNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&sampleRequest{Email: "nope", Sort: "size"})
	require.Error(t, err)

	messages := v.FormatValidationErrors(err)
	assert.Equal(t, "name is required", messages["name"])
	assert.Equal(t, "email must be a valid email address", messages["email"])
	assert.Equal(t, "sort must be one of: name date", messages["sort"])
	assert.NotContains(t, messages, "clinic_name")
}

func TestValidate_ConditionalRequirement(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(&sampleRequest{IsClinic: true, ClinicName: "Valley Vet"}))
	assert.NoError(t, v.Validate(&sampleRequest{Name: "Jane"}))

	messages := v.FormatValidationErrors(v.Validate(&sampleRequest{IsClinic: true}))
	assert.Equal(t, map[string]string{"clinic_name": "clinic_name is required"}, messages)
}

func TestFormatValidationErrors_NonValidationError(t *testing.T) {
	assert.Empty(t, NewValidator().FormatValidationErrors(errors.New("boom")))
}
