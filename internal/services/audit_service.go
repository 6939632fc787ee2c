package services

import (
	"encoding/json"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"cfcs/internal/logger"
	"cfcs/internal/models"
)

// auditService handles audit log recording.
type auditService struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

// NewAuditService creates a new AuditServicer. Events always go to the
// "audit" logger; with a non-nil db they are also stored in audit_logs.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db, log: logger.Named("audit")}
}

// Log records an audit event. Errors are logged but never propagate
// to avoid disrupting the main operation.
func (s *auditService) Log(user models.User, action, resourceType string, resourceID int64, ipAddress string, changes map[string]interface{}) {
	var changesJSON string
	if changes != nil {
		data, err := json.Marshal(changes)
		if err != nil {
			s.log.Errorw("failed to marshal audit log changes", "error", err, "action", action)
			changesJSON = "{}"
		} else {
			changesJSON = string(data)
		}
	}

	s.log.Infow(action,
		"username", user.Username,
		"role", user.Role,
		"resource_type", resourceType,
		"resource_id", resourceID,
		"ip", ipAddress,
		"changes", changesJSON,
	)

	if s.db == nil {
		return
	}

	entry := &models.AuditLog{
		Username:     user.Username,
		Role:         user.Role,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		IPAddress:    ipAddress,
		Changes:      changesJSON,
	}

	if err := s.db.Create(entry).Error; err != nil {
		s.log.Errorw("failed to create audit log entry",
			"error", err,
			"username", user.Username,
			"action", action,
			"resource_type", resourceType,
			"resource_id", resourceID,
		)
	}
}
