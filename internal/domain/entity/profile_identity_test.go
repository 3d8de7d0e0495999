package entity

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func clinic(id, name, address, phone string) VetProfile {
	return VetProfile{ID: id, ProfileDraft: ProfileDraft{IsClinic: true, ClinicName: name, Address: address, Phone: phone}}
}

func vet(id, name, clinicName, specialty string) VetProfile {
	return VetProfile{ID: id, ProfileDraft: ProfileDraft{Name: name, ClinicName: clinicName, Specialty: specialty}}
}

func TestDuplicateKey(t *testing.T) {
	tests := []struct {
		name  string
		draft ProfileDraft
		want  string
	}{
		{
			name:  "clinic normalizes case, whitespace and phone punctuation",
			draft: ProfileDraft{IsClinic: true, ClinicName: "  Valley Vet ", Address: "123 Main St", Phone: "(555) 111-2222"},
			want:  "clinic_valley vet_123 main st_5551112222",
		},
		{
			name:  "vet uses name, clinic name and specialty",
			draft: ProfileDraft{Name: "Jane Doe", ClinicName: "Valley Vet", Specialty: " Surgery"},
			want:  "vet_jane doe_valley vet_surgery",
		},
		{
			name:  "empty clinic",
			draft: ProfileDraft{IsClinic: true},
			want:  "clinic___",
		},
		{
			name:  "vet ignores phone and address",
			draft: ProfileDraft{Name: "Sam", Phone: "555", Address: "Elm"},
			want:  "vet_sam__",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.draft.DuplicateKey())
		})
	}
}

func TestHasDuplicate_ClinicNormalization(t *testing.T) {
	profiles := []VetProfile{clinic("a", "Valley Vet", "123 Main St", "555-111-2222")}
	candidate := ProfileDraft{IsClinic: true, ClinicName: "valley vet", Address: "123 main st", Phone: "(555) 111-2222"}

	assert.True(t, HasDuplicate(candidate, profiles, ""))
	assert.False(t, HasDuplicate(candidate, profiles, "a"))
}

func TestHasDuplicate_VariantIsolation(t *testing.T) {
	profiles := []VetProfile{clinic("a", "Smith", "", "")}
	candidate := ProfileDraft{Name: "Smith", ClinicName: "Smith"}

	assert.False(t, HasDuplicate(candidate, profiles, ""))
	assert.Empty(t, FindSimilar(candidate, profiles))
}

func TestFindSimilar_ClinicAndSpecialty(t *testing.T) {
	profiles := []VetProfile{vet("a", "Jane Doe", "Valley Vet", "Surgery")}
	candidate := ProfileDraft{Name: "J. Doe", ClinicName: "Valley Vet", Specialty: "Surgery"}

	assert.False(t, HasDuplicate(candidate, profiles, ""))

	similar := FindSimilar(candidate, profiles)
	require.Len(t, similar, 1)
	assert.Equal(t, "a", similar[0].Profile.ID)
	assert.Equal(t, []string{ReasonSameClinicSpecialty}, similar[0].Reasons)
}

func TestFindSimilar_ClinicReasons(t *testing.T) {
	profiles := []VetProfile{
		{ID: "a", ProfileDraft: ProfileDraft{IsClinic: true, ClinicName: "Valley Vet Clinic", Phone: "555-111-2222", Email: "Front@Valley.example"}},
		clinic("b", "Harbor Animal Hospital", "", ""),
	}
	candidate := ProfileDraft{IsClinic: true, ClinicName: "valley vet", Phone: "555.111.2222", Email: "front@valley.example "}

	similar := FindSimilar(candidate, profiles)
	require.Len(t, similar, 1)
	assert.Equal(t, []string{ReasonSimilarClinicName, ReasonSamePhone, ReasonSameEmail}, similar[0].Reasons)
}

func TestFindSimilar_EmptyPhoneAndEmailNeverMatch(t *testing.T) {
	profiles := []VetProfile{clinic("a", "North Paws", "", "")}
	candidate := ProfileDraft{IsClinic: true, ClinicName: "South Tails"}

	assert.Empty(t, FindSimilar(candidate, profiles))
}

func TestFindSimilar_ShortClinicNameIsPermissive(t *testing.T) {
	profiles := []VetProfile{clinic("a", "Valley Vet Clinic", "", "")}
	candidate := ProfileDraft{IsClinic: true, ClinicName: "Vet"}

	similar := FindSimilar(candidate, profiles)
	require.Len(t, similar, 1)
	assert.Contains(t, similar[0].Reasons, ReasonSimilarClinicName)
}

func TestFindSimilar_ReturnsEmptySlice(t *testing.T) {
	similar := FindSimilar(ProfileDraft{Name: "Nobody"}, nil)
	assert.NotNil(t, similar)
	assert.Empty(t, similar)
}

func TestGroupDuplicates(t *testing.T) {
	profiles := []VetProfile{
		clinic("c1", "Valley Vet", "123 Main St", "555-111-2222"),
		vet("v1", "Jane Doe", "Valley Vet", "Surgery"),
		clinic("c2", "VALLEY VET", "123 main st", "(555) 111 2222"),
		vet("v2", "Sam Lee", "", ""),
		clinic("c3", " valley vet ", "123 Main St ", "5551112222"),
		vet("v3", "jane doe", "valley vet", "surgery"),
	}

	groups := GroupDuplicates(profiles)
	require.Len(t, groups, 2)
	assert.Equal(t, []string{"c1", "c2", "c3"}, ids(groups[0]))
	assert.Equal(t, []string{"v1", "v3"}, ids(groups[1]))
}

func TestGroupDuplicates_None(t *testing.T) {
	groups := GroupDuplicates([]VetProfile{vet("a", "A", "", ""), vet("b", "B", "", "")})
	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}

func TestRemoveDuplicates_FirstSeenWins(t *testing.T) {
	profiles := []VetProfile{
		clinic("c1", "Valley Vet", "123 Main St", "555-111-2222"),
		clinic("c2", "valley vet", "123 main st", "5551112222"),
		clinic("c3", "Valley Vet", "123 Main St", "555 111 2222"),
	}

	kept, replaced := RemoveDuplicates(profiles)
	assert.Equal(t, []string{"c1"}, ids(kept))
	assert.Equal(t, map[string]string{"c2": "c1", "c3": "c1"}, replaced)
}

func TestRelinkClinics(t *testing.T) {
	c2 := "c2"
	other := "c9"
	profiles := []VetProfile{
		{ID: "v1", ProfileDraft: ProfileDraft{Name: "A", ClinicID: &c2}},
		{ID: "v2", ProfileDraft: ProfileDraft{Name: "B", ClinicID: &other}},
		{ID: "v3", ProfileDraft: ProfileDraft{Name: "C"}},
	}

	RelinkClinics(profiles, map[string]string{"c2": "c1"})

	require.NotNil(t, profiles[0].ClinicID)
	assert.Equal(t, "c1", *profiles[0].ClinicID)
	assert.Equal(t, "c9", *profiles[1].ClinicID)
	assert.Nil(t, profiles[2].ClinicID)
	assert.Equal(t, "c2", c2)
}

func TestClearDanglingClinics(t *testing.T) {
	c1, gone, vetID := "c1", "gone", "v2"
	profiles := []VetProfile{
		clinic("c1", "Valley Vet", "", ""),
		{ID: "v1", ProfileDraft: ProfileDraft{Name: "A", ClinicID: &c1}},
		{ID: "v2", ProfileDraft: ProfileDraft{Name: "B", ClinicID: &gone}},
		{ID: "v3", ProfileDraft: ProfileDraft{Name: "C", ClinicID: &vetID}},
		{ID: "v4", ProfileDraft: ProfileDraft{Name: "D"}},
	}

	assert.Equal(t, 2, ClearDanglingClinics(profiles))
	require.NotNil(t, profiles[1].ClinicID)
	assert.Equal(t, "c1", *profiles[1].ClinicID)
	assert.Nil(t, profiles[2].ClinicID)
	assert.Nil(t, profiles[3].ClinicID)
	assert.Nil(t, profiles[4].ClinicID)

	assert.Zero(t, ClearDanglingClinics(profiles))
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "5551112222", digitsOnly("+(555) 111-2222 ext."))
	assert.Equal(t, "", digitsOnly("n/a"))
}

func profileGen() *rapid.Generator[VetProfile] {
	names := rapid.SampledFrom([]string{"", "Valley Vet", "valley vet ", "Harbor", "Jane Doe", "JANE DOE", "Sam"})
	phones := rapid.SampledFrom([]string{"", "555-111-2222", "(555) 111 2222", "555-999-0000"})
	specialties := rapid.SampledFrom([]string{"", "Surgery", "surgery", "Dental"})

	return rapid.Custom(func(t *rapid.T) VetProfile {
		return VetProfile{
			ProfileDraft: ProfileDraft{
				IsClinic:   rapid.Bool().Draw(t, "isClinic"),
				Name:       names.Draw(t, "name"),
				ClinicName: names.Draw(t, "clinicName"),
				Address:    rapid.SampledFrom([]string{"", "123 Main St", "123 main st"}).Draw(t, "address"),
				Phone:      phones.Draw(t, "phone"),
				Specialty:  specialties.Draw(t, "specialty"),
			},
		}
	})
}

func profilesGen() *rapid.Generator[[]VetProfile] {
	return rapid.Custom(func(t *rapid.T) []VetProfile {
		profiles := rapid.SliceOfN(profileGen(), 0, 12).Draw(t, "profiles")
		for i := range profiles {
			profiles[i].ID = fmt.Sprintf("p%d", i)
		}
		return profiles
	})
}

func TestProperty_KeysNeverCrossVariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := profileGen().Draw(t, "a")
		b := profileGen().Draw(t, "b")
		if a.IsClinic != b.IsClinic {
			if a.DuplicateKey() == b.DuplicateKey() {
				t.Fatalf("clinic and vet share key %q", a.DuplicateKey())
			}
			if len(a.SimilarityReasons(b.ProfileDraft)) != 0 {
				t.Fatalf("clinic and vet reported similar")
			}
		}
	})
}

func TestProperty_DuplicateIsSymmetric(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := profileGen().Draw(t, "a")
		b := profileGen().Draw(t, "b")
		a.ID, b.ID = "a", "b"

		ab := HasDuplicate(a.ProfileDraft, []VetProfile{b}, "")
		ba := HasDuplicate(b.ProfileDraft, []VetProfile{a}, "")
		if ab != ba {
			t.Fatalf("HasDuplicate not symmetric: %v vs %v", ab, ba)
		}
	})
}

func TestProperty_RemoveDuplicatesIsIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		profiles := profilesGen().Draw(t, "profiles")

		once, _ := RemoveDuplicates(profiles)
		twice, replaced := RemoveDuplicates(once)

		if len(once) != len(twice) || len(replaced) != 0 {
			t.Fatalf("second pass removed %d profiles", len(once)-len(twice))
		}
		if len(GroupDuplicates(once)) != 0 {
			t.Fatalf("duplicates remain after removal")
		}
	})
}

func TestProperty_GroupsAccountForRemovals(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		profiles := profilesGen().Draw(t, "profiles")

		extra := 0
		for _, group := range GroupDuplicates(profiles) {
			key := group[0].DuplicateKey()
			for _, p := range group {
				if p.DuplicateKey() != key {
					t.Fatalf("group mixes keys %q and %q", key, p.DuplicateKey())
				}
			}
			extra += len(group) - 1
		}

		kept, replaced := RemoveDuplicates(profiles)
		if len(profiles)-len(kept) != extra || len(replaced) != extra {
			t.Fatalf("removed %d, groups imply %d", len(profiles)-len(kept), extra)
		}
	})
}

func ids(profiles []VetProfile) []string {
	out := make([]string, len(profiles))
	for i, p := range profiles {
		out[i] = p.ID
	}
	return out
}
