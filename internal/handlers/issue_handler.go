package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "rentdesk/internal/errors"
	"rentdesk/internal/models"
	"rentdesk/internal/services"
)

// IssueHandler handles maintenance issue tracking.
type IssueHandler struct {
	issues services.IssueServicer
	audit  services.AuditServicer
}

// NewIssueHandler creates a new IssueHandler
func NewIssueHandler(issues services.IssueServicer, audit services.AuditServicer) *IssueHandler {
	return &IssueHandler{issues: issues, audit: audit}
}

// CreateIssueRequest represents the issue creation payload.
type CreateIssueRequest struct {
	UnitID      string               `json:"unit_id" binding:"required,uuid"`
	TenantID    *string              `json:"tenant_id" binding:"omitempty,uuid"`
	Title       string               `json:"title" binding:"required,max=255"`
	Description string               `json:"description" binding:"required"`
	Priority    models.IssuePriority `json:"priority" binding:"omitempty,issue_priority"`
}

// UpdateIssueRequest represents the issue update payload.
type UpdateIssueRequest struct {
	Title       *string               `json:"title" binding:"omitempty,max=255"`
	Description *string               `json:"description"`
	Status      *models.IssueStatus   `json:"status" binding:"omitempty,issue_status"`
	Priority    *models.IssuePriority `json:"priority" binding:"omitempty,issue_priority"`
	AssignedTo  *string               `json:"assigned_to"`
}

// CreateIssue opens a new issue
// @Summary     Create issue
// @Description Open a maintenance issue against a unit
// @Tags        issues
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateIssueRequest true "Issue data"
// @Success     201 {object} models.Issue "Created issue"
// @Failure     404 {object} ErrorResponse "Unit not found"
// @Router      /issues [post]
func (h *IssueHandler) CreateIssue(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	issue, err := h.issues.CreateIssue(actor, req.UnitID, req.TenantID, req.Title, req.Description, req.Priority)
	if err != nil {
		respondWithError(c, err)
		return
	}

	entry := auditEntry(c, actor, models.AuditCreate, models.ResourceIssue, issue.ID, "Issue opened: "+issue.Title)
	entry.BuildingID = issueBuildingID(issue)
	h.audit.Log(entry)
	c.JSON(http.StatusCreated, gin.H{"issue": issue})
}

// ListIssues lists issues in accessible buildings
// @Summary     List issues
// @Description List issues, optionally filtered by status and priority
// @Tags        issues
// @Produce     json
// @Security    BearerAuth
// @Param       status query string false "OPEN, ASSIGNED, IN_PROGRESS, or RESOLVED"
// @Param       priority query string false "LOW, MEDIUM, HIGH, or URGENT"
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {object} pagination.PageResponse[models.Issue] "Issues"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /issues [get]
func (h *IssueHandler) ListIssues(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	page, err := getPage(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var status *models.IssueStatus
	if raw := c.Query("status"); raw != "" {
		s := models.IssueStatus(raw)
		status = &s
	}
	var priority *models.IssuePriority
	if raw := c.Query("priority"); raw != "" {
		p := models.IssuePriority(raw)
		priority = &p
	}

	issues, err := h.issues.ListIssues(actor, status, priority, page)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, issues)
}

// GetIssue returns one issue
// @Summary     Get issue
// @Description Get an issue by ID with its unit and tenant
// @Tags        issues
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Issue ID"
// @Success     200 {object} models.Issue "Issue"
// @Failure     404 {object} ErrorResponse "Issue not found"
// @Router      /issues/{id} [get]
func (h *IssueHandler) GetIssue(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	issue, err := h.issues.GetIssueByID(actor, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"issue": issue})
}

// UpdateIssue updates an issue
// @Summary     Update issue
// @Description Update issue fields; resolving stamps the resolved date
// @Tags        issues
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Issue ID"
// @Param       request body UpdateIssueRequest true "Fields to update"
// @Success     200 {object} models.Issue "Updated issue"
// @Failure     404 {object} ErrorResponse "Issue not found"
// @Router      /issues/{id} [patch]
func (h *IssueHandler) UpdateIssue(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	issue, err := h.issues.UpdateIssue(actor, c.Param("id"), services.IssueUpdateFields{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		AssignedTo:  req.AssignedTo,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	entry := auditEntry(c, actor, models.AuditUpdate, models.ResourceIssue, issue.ID, "Issue updated: "+issue.Title)
	entry.BuildingID = issueBuildingID(issue)
	h.audit.Log(entry)
	c.JSON(http.StatusOK, gin.H{"issue": issue})
}

// DeleteIssue deletes an issue
// @Summary     Delete issue
// @Description Delete an issue
// @Tags        issues
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Issue ID"
// @Success     200 {object} map[string]string "Deleted"
// @Failure     404 {object} ErrorResponse "Issue not found"
// @Router      /issues/{id} [delete]
func (h *IssueHandler) DeleteIssue(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	// Fetch before deleting so the audit entry can carry the building.
	issue, err := h.issues.GetIssueByID(actor, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	if err := h.issues.DeleteIssue(actor, issue.ID); err != nil {
		respondWithError(c, err)
		return
	}

	entry := auditEntry(c, actor, models.AuditDelete, models.ResourceIssue, issue.ID, "Issue deleted")
	entry.BuildingID = issueBuildingID(issue)
	h.audit.Log(entry)
	c.JSON(http.StatusOK, gin.H{"message": "issue deleted"})
}
