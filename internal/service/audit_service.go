package service

import (
	"context"

	"github.com/sirupsen/logrus"
)

// AuditService records who-changed-what entries for profile mutations.
// Entries go to the structured log stream, tagged with audit=true.
type AuditService interface {
	LogCreate(ctx context.Context, action string, entityName string, entityID string, newValue interface{})
	LogUpdate(ctx context.Context, action string, entityName string, entityID string, oldValue, newValue interface{})
	LogDelete(ctx context.Context, action string, entityName string, entityID string, oldValue interface{})
}

type auditService struct {
	log *logrus.Logger
}

func NewAuditService(log *logrus.Logger) AuditService {
	return &auditService{log: log}
}

// LogCreate logs a create action
func (s *auditService) LogCreate(ctx context.Context, action string, entityName string, entityID string, newValue interface{}) {
	s.entry(ctx, action, entityName, entityID, nil, newValue).Info("audit")
}

// LogUpdate logs an update action with old and new values
func (s *auditService) LogUpdate(ctx context.Context, action string, entityName string, entityID string, oldValue, newValue interface{}) {
	s.entry(ctx, action, entityName, entityID, oldValue, newValue).Info("audit")
}

// LogDelete logs a delete action with old value
func (s *auditService) LogDelete(ctx context.Context, action string, entityName string, entityID string, oldValue interface{}) {
	s.entry(ctx, action, entityName, entityID, oldValue, nil).Info("audit")
}

func (s *auditService) entry(ctx context.Context, action, entityName, entityID string, oldValue, newValue interface{}) *logrus.Entry {
	return s.log.WithContext(ctx).WithFields(logrus.Fields{
		"audit":     true,
		"action":    action,
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": oldValue,
		"new_value": newValue,
	})
}
