package services

import (
	"encoding/json"

	"gorm.io/gorm"

	apperrors "rentdesk/internal/errors"
	"rentdesk/internal/logger"
	"rentdesk/internal/models"
	"rentdesk/internal/pagination"
)

// auditService writes and reads the immutable audit trail.
type auditService struct {
	db     *gorm.DB
	access AccessServicer
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(db *gorm.DB, access AccessServicer) AuditServicer {
	return &auditService{db: db, access: access}
}

// Log records one audit entry. Failures are logged and swallowed; an
// audit write must never fail the operation it describes.
func (s *auditService) Log(entry AuditEntry) {
	userID := entry.Actor.UserID
	// An empty resource ID must become NULL: the column is a UUID and
	// postgres rejects the empty string.
	var resourceID *string
	if entry.ResourceID != "" {
		id := entry.ResourceID
		resourceID = &id
	}
	log := models.AuditLog{
		AccountID:    entry.Actor.AccountID,
		UserID:       &userID,
		BuildingID:   entry.BuildingID,
		Action:       entry.Action,
		ResourceType: entry.ResourceType,
		ResourceID:   resourceID,
		Description:  entry.Description,
		IPAddress:    entry.IPAddress,
		UserAgent:    entry.UserAgent,
	}
	if entry.Metadata != nil {
		data, err := json.Marshal(entry.Metadata)
		if err != nil {
			logger.Get().Warnw("audit metadata encode failed", "error", err)
		} else {
			log.Metadata = string(data)
		}
	}

	if err := s.db.Create(&log).Error; err != nil {
		logger.Get().Errorw("audit log write failed",
			"action", entry.Action, "resource", entry.ResourceType, "error", err)
	}
}

// ListLogs retrieves audit entries newest first. Owners see the whole
// account; managers see entries for their accessible buildings plus their
// own actions.
func (s *auditService) ListLogs(actor Actor, filter AuditFilter, page pagination.PageRequest) (*pagination.PageResponse[models.AuditLog], error) {
	page.Defaults()

	base := s.db.Model(&models.AuditLog{}).Where("account_id = ?", actor.AccountID)
	if !actor.IsOwner() {
		buildingIDs, err := s.access.AccessibleBuildingIDs(actor)
		if err != nil {
			return nil, err
		}
		if len(buildingIDs) > 0 {
			base = base.Where("building_id IN ? OR user_id = ?", buildingIDs, actor.UserID)
		} else {
			base = base.Where("user_id = ?", actor.UserID)
		}
	}
	if filter.Action != nil {
		base = base.Where("action = ?", *filter.Action)
	}
	if filter.ResourceType != nil {
		base = base.Where("resource_type = ?", *filter.ResourceType)
	}
	if filter.UserID != nil {
		base = base.Where("user_id = ?", *filter.UserID)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var logs []models.AuditLog
	if err := base.Order("created_at DESC").
		Scopes(pagination.Paginate(page)).
		Find(&logs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(logs, page.Page, page.PageSize, totalItems)
	return &result, nil
}
