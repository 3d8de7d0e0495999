package entity

import "strings"

// Similarity reasons surfaced to the user for review
const (
	ReasonSimilarClinicName   = "Similar clinic name"
	ReasonSamePhone           = "Same phone number"
	ReasonSameEmail           = "Same email address"
	ReasonSameVetName         = "Same veterinarian name"
	ReasonSameClinicSpecialty = "Same clinic and specialty"
)

const (
	clinicKeyPrefix = "clinic_"
	vetKeyPrefix    = "vet_"
)

// DuplicateKey derives the canonical identity key of a profile.
// Clinics are keyed on name, address and phone digits; practitioners on
// name, clinic name and specialty. The two prefixes never collide.
func (d ProfileDraft) DuplicateKey() string {
	if d.IsClinic {
		return clinicKeyPrefix + normalize(d.ClinicName) + "_" + normalize(d.Address) + "_" + digitsOnly(d.Phone)
	}
	return vetKeyPrefix + normalize(d.Name) + "_" + normalize(d.ClinicName) + "_" + normalize(d.Specialty)
}

// SimilarityReasons compares a candidate against an existing profile of the
// same variant and returns why they look alike. Empty means not similar.
//
// The clinic name check is a substring test in either direction, so an empty
// or very short name matches almost anything. It is meant for human review.
func (d ProfileDraft) SimilarityReasons(existing ProfileDraft) []string {
	if d.IsClinic != existing.IsClinic {
		return nil
	}

	var reasons []string
	if d.IsClinic {
		candidateName, existingName := normalize(d.ClinicName), normalize(existing.ClinicName)
		if strings.Contains(candidateName, existingName) || strings.Contains(existingName, candidateName) {
			reasons = append(reasons, ReasonSimilarClinicName)
		}
		if phone := digitsOnly(d.Phone); phone != "" && phone == digitsOnly(existing.Phone) {
			reasons = append(reasons, ReasonSamePhone)
		}
		if email := normalize(d.Email); email != "" && email == normalize(existing.Email) {
			reasons = append(reasons, ReasonSameEmail)
		}
		return reasons
	}

	if normalize(d.Name) == normalize(existing.Name) {
		reasons = append(reasons, ReasonSameVetName)
	}
	clinic := normalize(d.ClinicName)
	if clinic != "" && clinic == normalize(existing.ClinicName) && normalize(d.Specialty) == normalize(existing.Specialty) {
		reasons = append(reasons, ReasonSameClinicSpecialty)
	}
	return reasons
}

// FindSimilar returns every profile the candidate resembles, in collection order.
func FindSimilar(candidate ProfileDraft, profiles []VetProfile) []SimilarProfile {
	similar := []SimilarProfile{}
	for _, existing := range profiles {
		if reasons := candidate.SimilarityReasons(existing.ProfileDraft); len(reasons) > 0 {
			similar = append(similar, SimilarProfile{Profile: existing, Reasons: reasons})
		}
	}
	return similar
}

// HasDuplicate reports whether any profile other than excludeID shares the
// candidate's variant and canonical key.
func HasDuplicate(candidate ProfileDraft, profiles []VetProfile, excludeID string) bool {
	key := candidate.DuplicateKey()
	for _, existing := range profiles {
		if excludeID != "" && existing.ID == excludeID {
			continue
		}
		if existing.IsClinic != candidate.IsClinic {
			continue
		}
		if existing.DuplicateKey() == key {
			return true
		}
	}
	return false
}

// GroupDuplicates groups profiles by canonical key and returns the groups
// holding more than one profile, ordered by first appearance.
func GroupDuplicates(profiles []VetProfile) [][]VetProfile {
	var order []string
	groups := make(map[string][]VetProfile)
	for _, profile := range profiles {
		key := profile.DuplicateKey()
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], profile)
	}

	duplicates := [][]VetProfile{}
	for _, key := range order {
		if len(groups[key]) > 1 {
			duplicates = append(duplicates, groups[key])
		}
	}
	return duplicates
}

// RemoveDuplicates keeps the first profile seen for every canonical key.
// It returns the survivors and a map from each removed id to its survivor's id.
func RemoveDuplicates(profiles []VetProfile) ([]VetProfile, map[string]string) {
	survivors := make(map[string]string, len(profiles))
	kept := make([]VetProfile, 0, len(profiles))
	replaced := make(map[string]string)

	for _, profile := range profiles {
		key := profile.DuplicateKey()
		if survivorID, ok := survivors[key]; ok {
			replaced[profile.ID] = survivorID
			continue
		}
		survivors[key] = profile.ID
		kept = append(kept, profile)
	}
	return kept, replaced
}

// RelinkClinics rewrites practitioner clinic references using the replaced map
// produced by RemoveDuplicates.
func RelinkClinics(profiles []VetProfile, replaced map[string]string) {
	if len(replaced) == 0 {
		return
	}
	for i := range profiles {
		if !profiles[i].HasClinic() {
			continue
		}
		if survivorID, ok := replaced[*profiles[i].ClinicID]; ok {
			id := survivorID
			profiles[i].ClinicID = &id
		}
	}
}

// ClearDanglingClinics nulls practitioner clinic references that do not
// resolve to a clinic in profiles and returns how many were cleared.
func ClearDanglingClinics(profiles []VetProfile) int {
	clinics := make(map[string]struct{})
	for _, profile := range profiles {
		if profile.IsClinic {
			clinics[profile.ID] = struct{}{}
		}
	}

	cleared := 0
	for i := range profiles {
		if profiles[i].ClinicID == nil {
			continue
		}
		if _, ok := clinics[*profiles[i].ClinicID]; ok && !profiles[i].IsClinic {
			continue
		}
		profiles[i].ClinicID = nil
		cleared++
	}
	return cleared
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
