package dto

type EmergencyContactDTO struct {
	Name         string `json:"name" validate:"max=200"`
	Phone        string `json:"phone" validate:"max=40"`
	Relationship string `json:"relationship" validate:"max=100"`
}

type PreferencesDTO struct {
	Notifications  bool `json:"notifications"`
	EmailReminders bool `json:"email_reminders"`
	SMSReminders   bool `json:"sms_reminders"`
}

type UpdateUserProfileRequest struct {
	Name             *string              `json:"name" validate:"omitempty,max=200"`
	Email            *string              `json:"email" validate:"omitempty,email"`
	Phone            *string              `json:"phone" validate:"omitempty,max=40"`
	Address          *string              `json:"address" validate:"omitempty,max=300"`
	City             *string              `json:"city" validate:"omitempty,max=100"`
	State            *string              `json:"state" validate:"omitempty,max=100"`
	ZipCode          *string              `json:"zip_code" validate:"omitempty,max=20"`
	EmergencyContact *EmergencyContactDTO `json:"emergency_contact" validate:"omitempty"`
	Avatar           *string              `json:"avatar" validate:"omitempty,max=2048"`
	Preferences      *PreferencesDTO      `json:"preferences"`
}

type UserProfileResponse struct {
	ID               string              `json:"id"`
	Name             string              `json:"name"`
	Email            string              `json:"email"`
	Phone            string              `json:"phone"`
	Address          string              `json:"address"`
	City             string              `json:"city"`
	State            string              `json:"state"`
	ZipCode          string              `json:"zip_code"`
	EmergencyContact EmergencyContactDTO `json:"emergency_contact"`
	Avatar           *string             `json:"avatar"`
	Preferences      PreferencesDTO      `json:"preferences"`
}
