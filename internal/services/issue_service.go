package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "rentdesk/internal/errors"
	"rentdesk/internal/models"
	"rentdesk/internal/pagination"
)

// issueService tracks maintenance issues raised against units.
type issueService struct {
	db     *gorm.DB
	access AccessServicer
}

// NewIssueService creates a new IssueServicer.
func NewIssueService(db *gorm.DB, access AccessServicer) IssueServicer {
	return &issueService{db: db, access: access}
}

// CreateIssue opens a new issue against a unit, optionally on behalf of a
// tenant.
func (s *issueService) CreateIssue(actor Actor, unitID string, tenantID *string, title, description string, priority models.IssuePriority) (*models.Issue, error) {
	if title == "" || description == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "title and description are required")
	}
	if priority == "" {
		priority = models.PriorityMedium
	}

	var unit models.Unit
	if err := s.db.Where("id = ? AND account_id = ?", unitID, actor.AccountID).
		First(&unit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUnitNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	ok, err := s.access.CanAccessBuilding(actor, unit.BuildingID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrUnitNotFound
	}

	if tenantID != nil {
		var count int64
		s.db.Model(&models.Tenant{}).
			Where("id = ? AND account_id = ?", *tenantID, actor.AccountID).
			Count(&count)
		if count == 0 {
			return nil, apperrors.ErrTenantNotFound
		}
	}

	issue := &models.Issue{
		UnitID:      unit.ID,
		TenantID:    tenantID,
		Title:       title,
		Description: description,
		Status:      models.IssueOpen,
		Priority:    priority,
	}
	if err := s.db.Create(issue).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	issue.Unit = &unit
	return issue, nil
}

// ListIssues retrieves issues in the actor's accessible buildings,
// optionally filtered by status and priority.
func (s *issueService) ListIssues(actor Actor, status *models.IssueStatus, priority *models.IssuePriority, page pagination.PageRequest) (*pagination.PageResponse[models.Issue], error) {
	page.Defaults()

	buildingIDs, err := s.access.AccessibleBuildingIDs(actor)
	if err != nil {
		return nil, err
	}
	if len(buildingIDs) == 0 {
		result := pagination.NewPageResponse([]models.Issue{}, page.Page, page.PageSize, 0)
		return &result, nil
	}

	base := s.db.Model(&models.Issue{}).
		Joins("JOIN units ON units.id = issues.unit_id").
		Where("units.building_id IN ?", buildingIDs)
	if status != nil {
		base = base.Where("issues.status = ?", *status)
	}
	if priority != nil {
		base = base.Where("issues.priority = ?", *priority)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var issues []models.Issue
	if err := base.Preload("Unit").Preload("Tenant").
		Order("issues.raised_date DESC").
		Scopes(pagination.Paginate(page)).
		Find(&issues).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(issues, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetIssueByID retrieves one issue with its unit and tenant.
func (s *issueService) GetIssueByID(actor Actor, issueID string) (*models.Issue, error) {
	var issue models.Issue
	if err := s.db.Preload("Unit").Preload("Tenant").
		Where("id = ?", issueID).
		First(&issue).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrIssueNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var unit models.Unit
	if err := s.db.Select("building_id, account_id").Where("id = ?", issue.UnitID).
		First(&unit).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if unit.AccountID != actor.AccountID {
		return nil, apperrors.ErrIssueNotFound
	}
	ok, err := s.access.CanAccessBuilding(actor, unit.BuildingID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrIssueNotFound
	}
	return &issue, nil
}

// UpdateIssue updates an issue's fields. Moving to RESOLVED stamps the
// resolved date; reopening clears it.
func (s *issueService) UpdateIssue(actor Actor, issueID string, fields IssueUpdateFields) (*models.Issue, error) {
	issue, err := s.GetIssueByID(actor, issueID)
	if err != nil {
		return nil, err
	}

	if fields.Title != nil && *fields.Title != "" {
		issue.Title = *fields.Title
	}
	if fields.Description != nil && *fields.Description != "" {
		issue.Description = *fields.Description
	}
	if fields.Status != nil {
		issue.Status = *fields.Status
	}
	if fields.Priority != nil {
		issue.Priority = *fields.Priority
	}
	if fields.AssignedTo != nil {
		issue.AssignedTo = *fields.AssignedTo
	}

	if err := s.db.Save(issue).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return issue, nil
}

// DeleteIssue soft-deletes an issue.
func (s *issueService) DeleteIssue(actor Actor, issueID string) error {
	issue, err := s.GetIssueByID(actor, issueID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(issue).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
