package entity

// UserProfileID is the fixed id of the pet owner's profile singleton.
const UserProfileID = "user-profile"

// UserProfile represents the pet owner using the application
type UserProfile struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Email            string           `json:"email"`
	Phone            string           `json:"phone"`
	Address          string           `json:"address"`
	City             string           `json:"city"`
	State            string           `json:"state"`
	ZipCode          string           `json:"zipCode"`
	EmergencyContact EmergencyContact `json:"emergencyContact"`
	Avatar           *string          `json:"avatar"`
	Preferences      Preferences      `json:"preferences"`
}

type EmergencyContact struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

type Preferences struct {
	Notifications  bool `json:"notifications"`
	EmailReminders bool `json:"emailReminders"`
	SMSReminders   bool `json:"smsReminders"`
}

// DefaultUserProfile returns the profile used before the owner saves anything.
func DefaultUserProfile() UserProfile {
	return UserProfile{
		ID: UserProfileID,
		Preferences: Preferences{
			Notifications:  true,
			EmailReminders: true,
			SMSReminders:   false,
		},
	}
}

// UserProfilePatch is a shallow update; nested groups are replaced whole.
type UserProfilePatch struct {
	Name             *string
	Email            *string
	Phone            *string
	Address          *string
	City             *string
	State            *string
	ZipCode          *string
	EmergencyContact *EmergencyContact
	Avatar           *string
	Preferences      *Preferences
}

// Apply returns a copy of profile with the patch merged on top.
// An Avatar pointing at an empty string removes the avatar.
func (p UserProfilePatch) Apply(profile UserProfile) UserProfile {
	merged := profile
	setString(&merged.Name, p.Name)
	setString(&merged.Email, p.Email)
	setString(&merged.Phone, p.Phone)
	setString(&merged.Address, p.Address)
	setString(&merged.City, p.City)
	setString(&merged.State, p.State)
	setString(&merged.ZipCode, p.ZipCode)

	if p.EmergencyContact != nil {
		merged.EmergencyContact = *p.EmergencyContact
	}
	if p.Preferences != nil {
		merged.Preferences = *p.Preferences
	}
	if p.Avatar != nil {
		if *p.Avatar == "" {
			merged.Avatar = nil
		} else {
			avatar := *p.Avatar
			merged.Avatar = &avatar
		}
	}
	merged.ID = UserProfileID

	return merged
}
