package services

import (
	"encoding/json"

	"gorm.io/gorm"

	apperrors "personalfinance/internal/errors"
	"personalfinance/internal/logger"
	"personalfinance/internal/models"
	"personalfinance/internal/pagination"
)

// auditService handles audit log recording.
type auditService struct {
	db     *gorm.DB
	source string
}

// NewAuditService creates a new AuditServicer. source tags every entry with
// the entry point that produced it ("api", "cli"). With a nil db, entries
// are only written to the application log.
func NewAuditService(db *gorm.DB, source string) AuditServicer {
	return &auditService{db: db, source: source}
}

// Log records an audit event. Errors are logged but never propagate
// to avoid disrupting the main operation.
func (s *auditService) Log(action, resourceType, resourceID string, changes map[string]any) {
	var changesJSON string
	if changes != nil {
		data, err := json.Marshal(changes)
		if err != nil {
			logger.Get().Errorw("failed to marshal audit log changes", "error", err, "action", action)
			changesJSON = "{}"
		} else {
			changesJSON = string(data)
		}
	}

	if s.db == nil {
		logger.Get().Infow("audit",
			"action", action,
			"resource_type", resourceType,
			"resource_id", resourceID,
			"source", s.source,
			"changes", changesJSON,
		)
		return
	}

	entry := &models.AuditLog{
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Source:       s.source,
		Changes:      changesJSON,
	}

	if err := s.db.Create(entry).Error; err != nil {
		logger.Get().Errorw("failed to create audit log entry",
			"error", err,
			"action", action,
			"resource_type", resourceType,
			"resource_id", resourceID,
		)
	}
}

// List returns audit entries newest first.
func (s *auditService) List(page pagination.PageRequest) (*pagination.PageResponse[models.AuditLog], error) {
	page.Defaults()
	if s.db == nil {
		resp := pagination.NewPageResponse[models.AuditLog](nil, page.Page, page.PageSize, 0)
		return &resp, nil
	}

	var total int64
	if err := s.db.Model(&models.AuditLog{}).Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var entries []models.AuditLog
	if err := s.db.Scopes(pagination.Paginate(page)).Order("created_at DESC, id DESC").Find(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	resp := pagination.NewPageResponse(entries, page.Page, page.PageSize, total)
	return &resp, nil
}
