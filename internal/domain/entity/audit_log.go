package entity

// Audit actions recorded for registry and user profile mutations
const (
	AuditActionVetProfileCreate  = "vet_profile.create"
	AuditActionVetProfileUpdate  = "vet_profile.update"
	AuditActionVetProfileDelete  = "vet_profile.delete"
	AuditActionVetProfileDedupe  = "vet_profile.dedupe"
	AuditActionUserProfileUpdate = "user_profile.update"
)
