package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "rentdesk/internal/errors"
	"rentdesk/internal/models"
	"rentdesk/internal/services"
)

// OccupancyHandler handles the tenant move-in/notice/move-out lifecycle.
type OccupancyHandler struct {
	occupancies services.OccupancyServicer
	audit       services.AuditServicer
}

// NewOccupancyHandler creates a new OccupancyHandler
func NewOccupancyHandler(occupancies services.OccupancyServicer, audit services.AuditServicer) *OccupancyHandler {
	return &OccupancyHandler{occupancies: occupancies, audit: audit}
}

// AssignRequest represents the move-in payload. Exactly one of unit_id
// and bed_id must be set. Amounts are in minor currency units.
type AssignRequest struct {
	TenantID  string     `json:"tenant_id" binding:"required,uuid"`
	UnitID    *string    `json:"unit_id" binding:"omitempty,uuid"`
	BedID     *string    `json:"bed_id" binding:"omitempty,uuid"`
	Rent      int64      `json:"rent" binding:"required,min=1"`
	Deposit   int64      `json:"deposit" binding:"omitempty,min=0"`
	IsPrimary bool       `json:"is_primary"`
	StartDate *time.Time `json:"start_date"`
	Notes     string     `json:"notes"`
}

// ReassignRequest represents the transfer payload.
type ReassignRequest struct {
	UnitID *string `json:"unit_id" binding:"omitempty,uuid"`
	BedID  *string `json:"bed_id" binding:"omitempty,uuid"`
	Rent   *int64  `json:"rent" binding:"omitempty,min=1"`
}

// GiveNoticeRequest represents the notice payload.
type GiveNoticeRequest struct {
	NoticeDate *time.Time `json:"notice_date"`
	Reason     string     `json:"reason"`
}

// Assign moves a tenant into a unit or bed
// @Summary     Assign tenant
// @Description Move a tenant into a flat unit or PG bed
// @Tags        occupancies
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body AssignRequest true "Assignment data"
// @Success     201 {object} models.Occupancy "Created occupancy"
// @Failure     400 {object} ErrorResponse "Invalid target"
// @Failure     409 {object} ErrorResponse "Unit or bed already occupied"
// @Router      /occupancies [post]
func (h *OccupancyHandler) Assign(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	svcReq := services.AssignRequest{
		TenantID:  req.TenantID,
		UnitID:    req.UnitID,
		BedID:     req.BedID,
		Rent:      req.Rent,
		Deposit:   req.Deposit,
		IsPrimary: req.IsPrimary,
		Notes:     req.Notes,
	}
	if req.StartDate != nil {
		svcReq.StartDate = *req.StartDate
	}

	occupancy, err := h.occupancies.Assign(actor, svcReq)
	if err != nil {
		respondWithError(c, err)
		return
	}

	entry := auditEntry(c, actor, models.AuditAssignTenant, models.ResourceOccupancy, occupancy.ID, "Tenant assigned")
	entry.BuildingID = occupancyBuildingID(occupancy)
	h.audit.Log(entry)
	c.JSON(http.StatusCreated, gin.H{"occupancy": occupancy})
}

// ListOccupancies lists occupancies in accessible buildings
// @Summary     List occupancies
// @Description List occupancies, optionally filtered by active state
// @Tags        occupancies
// @Produce     json
// @Security    BearerAuth
// @Param       is_active query bool false "Filter by active state"
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {object} pagination.PageResponse[models.Occupancy] "Occupancies"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /occupancies [get]
func (h *OccupancyHandler) ListOccupancies(c *gin.Context) {
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

	var isActive *bool
	switch c.Query("is_active") {
	case "true":
		t := true
		isActive = &t
	case "false":
		f := false
		isActive = &f
	case "":
	default:
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "is_active must be true or false"))
		return
	}

	occupancies, err := h.occupancies.ListOccupancies(actor, isActive, page)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, occupancies)
}

// GetOccupancy returns one occupancy
// @Summary     Get occupancy
// @Description Get an occupancy by ID with tenant and location
// @Tags        occupancies
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Occupancy ID"
// @Success     200 {object} models.Occupancy "Occupancy"
// @Failure     404 {object} ErrorResponse "Occupancy not found"
// @Router      /occupancies/{id} [get]
func (h *OccupancyHandler) GetOccupancy(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	occupancy, err := h.occupancies.GetOccupancyByID(actor, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"occupancy": occupancy})
}

// Reassign transfers an occupancy to a different unit or bed
// @Summary     Reassign occupancy
// @Description Move an active occupancy to a different unit or bed
// @Tags        occupancies
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Occupancy ID"
// @Param       request body ReassignRequest true "New location"
// @Success     200 {object} models.Occupancy "Updated occupancy"
// @Failure     409 {object} ErrorResponse "Target already occupied"
// @Router      /occupancies/{id}/reassign [post]
func (h *OccupancyHandler) Reassign(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ReassignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	occupancy, err := h.occupancies.Reassign(actor, c.Param("id"), req.UnitID, req.BedID, req.Rent)
	if err != nil {
		respondWithError(c, err)
		return
	}

	entry := auditEntry(c, actor, models.AuditUpdate, models.ResourceOccupancy, occupancy.ID, "Tenant reassigned")
	entry.BuildingID = occupancyBuildingID(occupancy)
	h.audit.Log(entry)
	c.JSON(http.StatusOK, gin.H{"occupancy": occupancy})
}

// GiveNotice records a tenant's notice to vacate
// @Summary     Give notice
// @Description Record notice to vacate; the expected checkout date follows the building's notice period
// @Tags        occupancies
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Occupancy ID"
// @Param       request body GiveNoticeRequest true "Notice details"
// @Success     200 {object} models.Occupancy "Updated occupancy"
// @Failure     400 {object} ErrorResponse "Notice already given"
// @Router      /occupancies/{id}/notice [post]
func (h *OccupancyHandler) GiveNotice(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req GiveNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	noticeDate := time.Now()
	if req.NoticeDate != nil {
		noticeDate = *req.NoticeDate
	}

	occupancy, err := h.occupancies.GiveNotice(actor, c.Param("id"), noticeDate, req.Reason)
	if err != nil {
		respondWithError(c, err)
		return
	}

	entry := auditEntry(c, actor, models.AuditUpdate, models.ResourceOccupancy, occupancy.ID, "Notice recorded")
	entry.BuildingID = occupancyBuildingID(occupancy)
	h.audit.Log(entry)
	c.JSON(http.StatusOK, gin.H{"occupancy": occupancy})
}

// Vacate ends an occupancy
// @Summary     Vacate occupancy
// @Description End an active occupancy and free the unit or bed
// @Tags        occupancies
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Occupancy ID"
// @Success     200 {object} models.Occupancy "Ended occupancy"
// @Failure     400 {object} ErrorResponse "Occupancy already inactive"
// @Router      /occupancies/{id}/vacate [post]
func (h *OccupancyHandler) Vacate(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	occupancy, err := h.occupancies.Vacate(actor, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	entry := auditEntry(c, actor, models.AuditVacate, models.ResourceOccupancy, occupancy.ID, "Tenant vacated")
	entry.BuildingID = occupancyBuildingID(occupancy)
	h.audit.Log(entry)
	c.JSON(http.StatusOK, gin.H{"occupancy": occupancy})
}
