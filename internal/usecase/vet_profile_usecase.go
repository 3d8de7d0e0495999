package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mattherndon/Pet-Health-Monitoring-App-8869/internal/domain/entity"
	"github.com/mattherndon/Pet-Health-Monitoring-App-8869/internal/domain/repository"
	"github.com/mattherndon/Pet-Health-Monitoring-App-8869/internal/service"
	"github.com/mattherndon/Pet-Health-Monitoring-App-8869/pkg/metrics"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrDuplicateProfile = errors.New("duplicate profile")
	ErrProfileNotFound  = errors.New("profile not found")
	ErrClinicNotFound   = errors.New("clinic not found")
)

const (
	msgDuplicateOnAdd    = "A similar profile already exists. Please check for duplicates."
	msgDuplicateOnUpdate = "This update would create a duplicate profile. Please check for existing similar profiles."
)

// DuplicateProfileError is returned when a write would store a second profile
// with the same canonical identity key. It matches ErrDuplicateProfile.
type DuplicateProfileError struct {
	Message string
}

func (e *DuplicateProfileError) Error() string {
	return e.Message
}

func (e *DuplicateProfileError) Is(target error) bool {
	return target == ErrDuplicateProfile
}

// VetProfileUsecase is the registry of veterinarian and clinic profiles.
// Every successful mutation rewrites the whole collection to its slot.
type VetProfileUsecase interface {
	Load(ctx context.Context) (int, error)
	AddProfile(ctx context.Context, draft entity.ProfileDraft) (*entity.VetProfile, error)
	UpdateProfile(ctx context.Context, id string, patch entity.ProfilePatch) (*entity.VetProfile, error)
	DeleteProfile(ctx context.Context, id string) error
	GetProfile(ctx context.Context, id string) (*entity.VetProfile, error)
	ListProfiles(ctx context.Context, filter entity.ProfileFilter) []entity.VetProfile
	IsDuplicate(ctx context.Context, draft entity.ProfileDraft, excludeID string) bool
	FindSimilarProfiles(ctx context.Context, draft entity.ProfileDraft) []entity.SimilarProfile
	GetDuplicateGroups(ctx context.Context) [][]entity.VetProfile
	DeleteDuplicates(ctx context.Context) (int, error)
	GetClinicVets(ctx context.Context, clinicID string) []entity.VetProfile
	GetClinic(ctx context.Context, clinicID string) (*entity.VetProfile, bool)
	GetClinics(ctx context.Context) []entity.VetProfile
}

type vetProfileUsecase struct {
	mu       sync.RWMutex
	profiles []entity.VetProfile

	log          *logrus.Logger
	slotRepo     repository.SlotRepository
	slot         string
	auditService service.AuditService
	metrics      *metrics.Metrics

	newID func() string
	now   func() time.Time
}

func NewVetProfileUsecase(
	log *logrus.Logger,
	slotRepo repository.SlotRepository,
	slot string,
	auditService service.AuditService,
	metrics *metrics.Metrics,
) VetProfileUsecase {
	return &vetProfileUsecase{
		profiles:     []entity.VetProfile{},
		log:          log,
		slotRepo:     slotRepo,
		slot:         slot,
		auditService: auditService,
		metrics:      metrics,
		newID:        uuid.NewString,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Load replaces the in-memory collection with the stored one. Exact
// duplicates and clinic references to missing clinics left behind by older
// data are dropped and the cleaned collection is written back.
func (u *vetProfileUsecase) Load(ctx context.Context) (int, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	data, err := u.slotRepo.Read(ctx, u.slot)
	if err != nil {
		u.log.Warnf("Failed to read vet profiles: %+v", err)
		return 0, fmt.Errorf("read vet profiles: %w", err)
	}

	profiles := []entity.VetProfile{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &profiles); err != nil {
			u.log.Warnf("Failed to decode vet profiles: %+v", err)
			return 0, fmt.Errorf("decode vet profiles: %w", err)
		}
	}

	cleaned, replaced := entity.RemoveDuplicates(profiles)
	entity.RelinkClinics(cleaned, replaced)
	removed := len(profiles) - len(cleaned)
	unlinked := entity.ClearDanglingClinics(cleaned)

	if removed == 0 && unlinked == 0 {
		u.profiles = cleaned
		u.observe()
		return 0, nil
	}

	if err := u.commit(ctx, cleaned); err != nil {
		return 0, err
	}
	if unlinked > 0 {
		u.log.Infof("Cleared %d dangling clinic references", unlinked)
	}
	if removed > 0 {
		u.metrics.DuplicatesRemoved.Add(float64(removed))
		u.log.Infof("Removed %d duplicate vet profiles", removed)
	}

	return removed, nil
}

func (u *vetProfileUsecase) AddProfile(ctx context.Context, draft entity.ProfileDraft) (*entity.VetProfile, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	draft = sanitizeDraft(draft)

	if entity.HasDuplicate(draft, u.profiles, "") {
		u.metrics.DuplicateRejections.WithLabelValues("add").Inc()
		u.metrics.Operations.WithLabelValues("add", "duplicate").Inc()
		return nil, &DuplicateProfileError{Message: msgDuplicateOnAdd}
	}
	if err := u.checkClinicReference(draft); err != nil {
		u.metrics.Operations.WithLabelValues("add", "invalid").Inc()
		return nil, err
	}

	profile := entity.VetProfile{
		ID:           u.newID(),
		CreatedAt:    u.now(),
		ProfileDraft: draft,
	}

	next := append(cloneProfiles(u.profiles), profile)
	if err := u.commit(ctx, next); err != nil {
		u.metrics.Operations.WithLabelValues("add", "error").Inc()
		return nil, err
	}
	u.metrics.Operations.WithLabelValues("add", "ok").Inc()

	u.auditService.LogCreate(ctx, entity.AuditActionVetProfileCreate, "vet_profile", profile.ID, profile)

	result := cloneProfile(profile)
	return &result, nil
}

// UpdateProfile merges patch onto the stored profile. The merged record is
// checked against every other profile before anything is written.
func (u *vetProfileUsecase) UpdateProfile(ctx context.Context, id string, patch entity.ProfilePatch) (*entity.VetProfile, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	idx := u.indexOf(id)
	if idx < 0 {
		u.metrics.Operations.WithLabelValues("update", "not_found").Inc()
		return nil, ErrProfileNotFound
	}

	existing := u.profiles[idx]
	merged := patch.Apply(existing)
	merged.ProfileDraft = sanitizeDraft(merged.ProfileDraft)

	if entity.HasDuplicate(merged.ProfileDraft, u.profiles, id) {
		u.metrics.DuplicateRejections.WithLabelValues("update").Inc()
		u.metrics.Operations.WithLabelValues("update", "duplicate").Inc()
		return nil, &DuplicateProfileError{Message: msgDuplicateOnUpdate}
	}
	if err := u.checkClinicReferenceChange(patch, merged.ProfileDraft); err != nil {
		u.metrics.Operations.WithLabelValues("update", "invalid").Inc()
		return nil, err
	}

	next := cloneProfiles(u.profiles)
	next[idx] = merged
	if existing.IsClinic && !merged.IsClinic {
		clearClinicReferences(next, id)
	}

	if err := u.commit(ctx, next); err != nil {
		u.metrics.Operations.WithLabelValues("update", "error").Inc()
		return nil, err
	}
	u.metrics.Operations.WithLabelValues("update", "ok").Inc()

	u.auditService.LogUpdate(ctx, entity.AuditActionVetProfileUpdate, "vet_profile", id, existing, merged)

	result := cloneProfile(merged)
	return &result, nil
}

// DeleteProfile removes a profile. Practitioners that pointed at a deleted
// clinic are kept with their clinic reference cleared.
func (u *vetProfileUsecase) DeleteProfile(ctx context.Context, id string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	idx := u.indexOf(id)
	if idx < 0 {
		u.metrics.Operations.WithLabelValues("delete", "not_found").Inc()
		return ErrProfileNotFound
	}
	removed := u.profiles[idx]

	next := make([]entity.VetProfile, 0, len(u.profiles)-1)
	for i, profile := range u.profiles {
		if i != idx {
			next = append(next, cloneProfile(profile))
		}
	}
	if removed.IsClinic {
		clearClinicReferences(next, id)
	}

	if err := u.commit(ctx, next); err != nil {
		u.metrics.Operations.WithLabelValues("delete", "error").Inc()
		return err
	}
	u.metrics.Operations.WithLabelValues("delete", "ok").Inc()

	u.auditService.LogDelete(ctx, entity.AuditActionVetProfileDelete, "vet_profile", id, removed)

	return nil
}

func (u *vetProfileUsecase) GetProfile(ctx context.Context, id string) (*entity.VetProfile, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	idx := u.indexOf(id)
	if idx < 0 {
		return nil, ErrProfileNotFound
	}
	profile := cloneProfile(u.profiles[idx])
	return &profile, nil
}

func (u *vetProfileUsecase) ListProfiles(ctx context.Context, filter entity.ProfileFilter) []entity.VetProfile {
	u.mu.RLock()
	defer u.mu.RUnlock()

	profiles := []entity.VetProfile{}
	for _, profile := range u.profiles {
		if matchesVariant(profile, filter.Variant) {
			profiles = append(profiles, cloneProfile(profile))
		}
	}

	switch filter.SortField {
	case entity.SortByName:
		sort.SliceStable(profiles, func(i, j int) bool {
			a, b := strings.ToLower(displayName(profiles[i])), strings.ToLower(displayName(profiles[j]))
			if filter.Descending {
				return a > b
			}
			return a < b
		})
	case entity.SortByDate:
		sort.SliceStable(profiles, func(i, j int) bool {
			if filter.Descending {
				return profiles[i].CreatedAt.After(profiles[j].CreatedAt)
			}
			return profiles[i].CreatedAt.Before(profiles[j].CreatedAt)
		})
	}

	return profiles
}

func (u *vetProfileUsecase) IsDuplicate(ctx context.Context, draft entity.ProfileDraft, excludeID string) bool {
	u.mu.RLock()
	defer u.mu.RUnlock()

	return entity.HasDuplicate(draft, u.profiles, excludeID)
}

func (u *vetProfileUsecase) FindSimilarProfiles(ctx context.Context, draft entity.ProfileDraft) []entity.SimilarProfile {
	u.mu.RLock()
	defer u.mu.RUnlock()

	similar := entity.FindSimilar(draft, u.profiles)
	for i := range similar {
		similar[i].Profile = cloneProfile(similar[i].Profile)
	}
	return similar
}

func (u *vetProfileUsecase) GetDuplicateGroups(ctx context.Context) [][]entity.VetProfile {
	u.mu.RLock()
	defer u.mu.RUnlock()

	groups := entity.GroupDuplicates(u.profiles)
	for _, group := range groups {
		for i := range group {
			group[i] = cloneProfile(group[i])
		}
	}
	return groups
}

// DeleteDuplicates collapses every duplicate group to its first member and
// returns how many profiles were removed.
func (u *vetProfileUsecase) DeleteDuplicates(ctx context.Context) (int, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	cleaned, replaced := entity.RemoveDuplicates(cloneProfiles(u.profiles))
	removed := len(u.profiles) - len(cleaned)
	if removed == 0 {
		return 0, nil
	}
	entity.RelinkClinics(cleaned, replaced)

	if err := u.commit(ctx, cleaned); err != nil {
		u.metrics.Operations.WithLabelValues("dedupe", "error").Inc()
		return 0, err
	}
	u.metrics.Operations.WithLabelValues("dedupe", "ok").Inc()
	u.metrics.DuplicatesRemoved.Add(float64(removed))

	u.auditService.LogDelete(ctx, entity.AuditActionVetProfileDedupe, "vet_profile", "", replaced)
	u.log.Infof("Removed %d duplicate vet profiles", removed)

	return removed, nil
}

func (u *vetProfileUsecase) GetClinicVets(ctx context.Context, clinicID string) []entity.VetProfile {
	u.mu.RLock()
	defer u.mu.RUnlock()

	vets := []entity.VetProfile{}
	for _, profile := range u.profiles {
		if profile.HasClinic() && *profile.ClinicID == clinicID {
			vets = append(vets, cloneProfile(profile))
		}
	}
	return vets
}

func (u *vetProfileUsecase) GetClinic(ctx context.Context, clinicID string) (*entity.VetProfile, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	idx := u.indexOf(clinicID)
	if idx < 0 || !u.profiles[idx].IsClinic {
		return nil, false
	}
	clinic := cloneProfile(u.profiles[idx])
	return &clinic, true
}

func (u *vetProfileUsecase) GetClinics(ctx context.Context) []entity.VetProfile {
	return u.ListProfiles(ctx, entity.ProfileFilter{Variant: entity.VariantClinic})
}

// commit persists next and only then installs it as the live collection.
// Callers must hold the write lock.
func (u *vetProfileUsecase) commit(ctx context.Context, next []entity.VetProfile) error {
	data, err := json.Marshal(next)
	if err != nil {
		u.log.Warnf("Failed to encode vet profiles: %+v", err)
		return fmt.Errorf("encode vet profiles: %w", err)
	}
	if err := u.slotRepo.Write(ctx, u.slot, data); err != nil {
		u.log.Warnf("Failed to persist vet profiles: %+v", err)
		return fmt.Errorf("persist vet profiles: %w", err)
	}

	u.profiles = next
	u.observe()
	return nil
}

func (u *vetProfileUsecase) observe() {
	var clinics, vets int
	for _, profile := range u.profiles {
		if profile.IsClinic {
			clinics++
		} else {
			vets++
		}
	}
	u.metrics.ProfilesTotal.WithLabelValues("clinic").Set(float64(clinics))
	u.metrics.ProfilesTotal.WithLabelValues("vet").Set(float64(vets))
}

func (u *vetProfileUsecase) indexOf(id string) int {
	for i, profile := range u.profiles {
		if profile.ID == id {
			return i
		}
	}
	return -1
}

func (u *vetProfileUsecase) checkClinicReference(draft entity.ProfileDraft) error {
	if draft.IsClinic || draft.ClinicID == nil {
		return nil
	}
	idx := u.indexOf(*draft.ClinicID)
	if idx < 0 || !u.profiles[idx].IsClinic {
		return ErrClinicNotFound
	}
	return nil
}

// checkClinicReferenceChange validates the clinic reference only when the
// patch sets one, so unrelated edits never fail on it.
func (u *vetProfileUsecase) checkClinicReferenceChange(patch entity.ProfilePatch, merged entity.ProfileDraft) error {
	if patch.ClinicID == nil {
		return nil
	}
	return u.checkClinicReference(merged)
}

// sanitizeDraft drops clinic references that cannot apply to the variant.
func sanitizeDraft(draft entity.ProfileDraft) entity.ProfileDraft {
	if draft.IsClinic || (draft.ClinicID != nil && *draft.ClinicID == "") {
		draft.ClinicID = nil
	}
	return draft
}

func clearClinicReferences(profiles []entity.VetProfile, clinicID string) {
	for i := range profiles {
		if profiles[i].HasClinic() && *profiles[i].ClinicID == clinicID {
			profiles[i].ClinicID = nil
		}
	}
}

func matchesVariant(profile entity.VetProfile, variant entity.ProfileVariant) bool {
	switch variant {
	case entity.VariantClinic:
		return profile.IsClinic
	case entity.VariantVet:
		return !profile.IsClinic
	case entity.VariantIndependent:
		return !profile.IsClinic && !profile.HasClinic()
	default:
		return true
	}
}

func displayName(profile entity.VetProfile) string {
	if profile.IsClinic {
		return profile.ClinicName
	}
	return profile.Name
}

func cloneProfile(profile entity.VetProfile) entity.VetProfile {
	if profile.ClinicID != nil {
		id := *profile.ClinicID
		profile.ClinicID = &id
	}
	return profile
}

func cloneProfiles(profiles []entity.VetProfile) []entity.VetProfile {
	cloned := make([]entity.VetProfile, len(profiles))
	for i, profile := range profiles {
		cloned[i] = cloneProfile(profile)
	}
	return cloned
}
