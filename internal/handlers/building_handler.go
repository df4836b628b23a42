package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "rentdesk/internal/errors"
	"rentdesk/internal/models"
	"rentdesk/internal/services"
)

// BuildingHandler handles building CRUD and manager access grants.
type BuildingHandler struct {
	buildings services.BuildingServicer
	audit     services.AuditServicer
}

// NewBuildingHandler creates a new BuildingHandler
func NewBuildingHandler(buildings services.BuildingServicer, audit services.AuditServicer) *BuildingHandler {
	return &BuildingHandler{buildings: buildings, audit: audit}
}

// CreateBuildingRequest represents the building creation payload.
type CreateBuildingRequest struct {
	Name             string `json:"name" binding:"required,max=255"`
	Address          string `json:"address" binding:"required"`
	TotalFloors      int    `json:"total_floors" binding:"omitempty,min=1"`
	NoticePeriodDays int    `json:"notice_period_days" binding:"omitempty,min=0,max=365"`
}

// UpdateBuildingRequest represents the building update payload.
type UpdateBuildingRequest struct {
	Name             *string `json:"name" binding:"omitempty,max=255"`
	Address          *string `json:"address"`
	TotalFloors      *int    `json:"total_floors" binding:"omitempty,min=1"`
	NoticePeriodDays *int    `json:"notice_period_days" binding:"omitempty,min=0,max=365"`
}

// GrantAccessRequest identifies the manager to grant building access to.
type GrantAccessRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

// CreateBuilding creates a building
// @Summary     Create building
// @Description Create a building in the caller's account (owner only)
// @Tags        buildings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateBuildingRequest true "Building data"
// @Success     201 {object} models.Building "Created building"
// @Failure     403 {object} ErrorResponse "Owner only or building limit reached"
// @Router      /buildings [post]
func (h *BuildingHandler) CreateBuilding(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateBuildingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	building, err := h.buildings.CreateBuilding(actor, req.Name, req.Address, req.TotalFloors, req.NoticePeriodDays)
	if err != nil {
		respondWithError(c, err)
		return
	}

	entry := auditEntry(c, actor, models.AuditCreate, models.ResourceBuilding, building.ID, "Building created: "+building.Name)
	entry.BuildingID = &building.ID
	h.audit.Log(entry)
	c.JSON(http.StatusCreated, gin.H{"building": building})
}

// ListBuildings lists the caller's accessible buildings
// @Summary     List buildings
// @Description List buildings the caller can access
// @Tags        buildings
// @Produce     json
// @Security    BearerAuth
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {object} pagination.PageResponse[models.Building] "Buildings"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /buildings [get]
func (h *BuildingHandler) ListBuildings(c *gin.Context) {
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

	buildings, err := h.buildings.ListBuildings(actor, page)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, buildings)
}

// GetBuilding returns one building
// @Summary     Get building
// @Description Get a building by ID
// @Tags        buildings
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Building ID"
// @Success     200 {object} models.Building "Building"
// @Failure     404 {object} ErrorResponse "Building not found"
// @Router      /buildings/{id} [get]
func (h *BuildingHandler) GetBuilding(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	building, err := h.buildings.GetBuildingByID(actor, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"building": building})
}

// UpdateBuilding updates a building
// @Summary     Update building
// @Description Update building fields (owner only)
// @Tags        buildings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Building ID"
// @Param       request body UpdateBuildingRequest true "Fields to update"
// @Success     200 {object} models.Building "Updated building"
// @Failure     404 {object} ErrorResponse "Building not found"
// @Router      /buildings/{id} [patch]
func (h *BuildingHandler) UpdateBuilding(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateBuildingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	building, err := h.buildings.UpdateBuilding(actor, c.Param("id"), req.Name, req.Address, req.TotalFloors, req.NoticePeriodDays)
	if err != nil {
		respondWithError(c, err)
		return
	}

	entry := auditEntry(c, actor, models.AuditUpdate, models.ResourceBuilding, building.ID, "Building updated: "+building.Name)
	entry.BuildingID = &building.ID
	h.audit.Log(entry)
	c.JSON(http.StatusOK, gin.H{"building": building})
}

// DeleteBuilding deletes a building
// @Summary     Delete building
// @Description Delete a building and its access grants (owner only)
// @Tags        buildings
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Building ID"
// @Success     200 {object} map[string]string "Deleted"
// @Failure     404 {object} ErrorResponse "Building not found"
// @Failure     409 {object} ErrorResponse "Building still has units"
// @Router      /buildings/{id} [delete]
func (h *BuildingHandler) DeleteBuilding(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	buildingID := c.Param("id")
	if err := h.buildings.DeleteBuilding(actor, buildingID); err != nil {
		respondWithError(c, err)
		return
	}

	entry := auditEntry(c, actor, models.AuditDelete, models.ResourceBuilding, buildingID, "Building deleted")
	entry.BuildingID = &buildingID
	h.audit.Log(entry)
	c.JSON(http.StatusOK, gin.H{"message": "building deleted"})
}

// GrantAccess grants a manager access to a building
// @Summary     Grant building access
// @Description Grant a manager access to a building (owner only)
// @Tags        buildings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Building ID"
// @Param       request body GrantAccessRequest true "Manager to grant"
// @Success     201 {object} models.BuildingAccess "Access grant"
// @Failure     400 {object} ErrorResponse "Cannot grant to an owner or across accounts"
// @Failure     409 {object} ErrorResponse "Access already granted"
// @Router      /buildings/{id}/access [post]
func (h *BuildingHandler) GrantAccess(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req GrantAccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	buildingID := c.Param("id")
	access, err := h.buildings.GrantAccess(actor, buildingID, req.UserID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	entry := auditEntry(c, actor, models.AuditGrantAccess, models.ResourceBuildingAccess, access.ID, "Building access granted")
	entry.BuildingID = &buildingID
	h.audit.Log(entry)
	c.JSON(http.StatusCreated, gin.H{"access": access})
}

// RevokeAccess revokes a manager's access to a building
// @Summary     Revoke building access
// @Description Revoke a manager's access to a building (owner only)
// @Tags        buildings
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Building ID"
// @Param       user_id path string true "User ID"
// @Success     200 {object} map[string]string "Revoked"
// @Failure     404 {object} ErrorResponse "Grant not found"
// @Router      /buildings/{id}/access/{user_id} [delete]
func (h *BuildingHandler) RevokeAccess(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	buildingID := c.Param("id")
	if err := h.buildings.RevokeAccess(actor, buildingID, c.Param("user_id")); err != nil {
		respondWithError(c, err)
		return
	}

	entry := auditEntry(c, actor, models.AuditRevokeAccess, models.ResourceBuildingAccess, "", "Building access revoked")
	entry.BuildingID = &buildingID
	h.audit.Log(entry)
	c.JSON(http.StatusOK, gin.H{"message": "access revoked"})
}

// ListAccess lists a building's access grants
// @Summary     List building access
// @Description List the managers with access to a building (owner only)
// @Tags        buildings
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Building ID"
// @Success     200 {array} models.BuildingAccess "Access grants"
// @Failure     404 {object} ErrorResponse "Building not found"
// @Router      /buildings/{id}/access [get]
func (h *BuildingHandler) ListAccess(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	grants, err := h.buildings.ListAccess(actor, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"access": grants})
}
