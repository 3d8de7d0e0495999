package entity

import "time"

// ProfileDraft is the input shape of a veterinarian or clinic profile,
// before an id and creation time have been assigned.
// IsClinic selects which identity fields are authoritative.
type ProfileDraft struct {
	IsClinic bool `json:"isClinic"`

	// Practitioner fields
	Name      string  `json:"name,omitempty"`
	Specialty string  `json:"specialty,omitempty"`
	Position  string  `json:"position,omitempty"`
	ClinicID  *string `json:"clinicId"`

	// Clinic fields (ClinicName is also the practitioner's free-text clinic)
	ClinicName     string `json:"clinicName,omitempty"`
	Address        string `json:"address,omitempty"`
	City           string `json:"city,omitempty"`
	State          string `json:"state,omitempty"`
	ZipCode        string `json:"zipCode,omitempty"`
	Phone          string `json:"phone,omitempty"`
	EmergencyPhone string `json:"emergencyPhone,omitempty"`
	Email          string `json:"email,omitempty"`
	Website        string `json:"website,omitempty"`
	Hours          string `json:"hours,omitempty"`

	Avatar string `json:"avatar,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

// VetProfile is a stored profile. ID and CreatedAt never change after creation.
type VetProfile struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	ProfileDraft
}

// HasClinic reports whether the practitioner points at a clinic profile.
func (p VetProfile) HasClinic() bool {
	return p.ClinicID != nil && *p.ClinicID != ""
}

// ProfilePatch holds a partial update. Nil fields are left untouched.
// A ClinicID pointing at an empty string clears the clinic reference.
type ProfilePatch struct {
	IsClinic       *bool
	Name           *string
	Specialty      *string
	Position       *string
	ClinicID       *string
	ClinicName     *string
	Address        *string
	City           *string
	State          *string
	ZipCode        *string
	Phone          *string
	EmergencyPhone *string
	Email          *string
	Website        *string
	Hours          *string
	Avatar         *string
	Notes          *string
}

// Apply returns a copy of profile with the patch merged on top.
func (p ProfilePatch) Apply(profile VetProfile) VetProfile {
	merged := profile
	setString(&merged.Name, p.Name)
	setString(&merged.Specialty, p.Specialty)
	setString(&merged.Position, p.Position)
	setString(&merged.ClinicName, p.ClinicName)
	setString(&merged.Address, p.Address)
	setString(&merged.City, p.City)
	setString(&merged.State, p.State)
	setString(&merged.ZipCode, p.ZipCode)
	setString(&merged.Phone, p.Phone)
	setString(&merged.EmergencyPhone, p.EmergencyPhone)
	setString(&merged.Email, p.Email)
	setString(&merged.Website, p.Website)
	setString(&merged.Hours, p.Hours)
	setString(&merged.Avatar, p.Avatar)
	setString(&merged.Notes, p.Notes)

	if p.IsClinic != nil {
		merged.IsClinic = *p.IsClinic
	}
	if p.ClinicID != nil {
		if *p.ClinicID == "" {
			merged.ClinicID = nil
		} else {
			id := *p.ClinicID
			merged.ClinicID = &id
		}
	}
	if merged.IsClinic {
		merged.ClinicID = nil
	}

	return merged
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// SimilarProfile is an advisory match returned by similarity search.
type SimilarProfile struct {
	Profile VetProfile `json:"profile"`
	Reasons []string   `json:"reasons"`
}

// ProfileVariant narrows a profile listing.
type ProfileVariant string

const (
	VariantAll         ProfileVariant = "all"
	VariantClinic      ProfileVariant = "clinic"
	VariantVet         ProfileVariant = "vet"
	VariantIndependent ProfileVariant = "independent"
)

// ProfileSortField selects the ordering of a profile listing.
type ProfileSortField string

const (
	SortByName ProfileSortField = "name"
	SortByDate ProfileSortField = "date"
)

// ProfileFilter describes a listing query over the registry.
type ProfileFilter struct {
	Variant    ProfileVariant
	SortField  ProfileSortField
	Descending bool
}
