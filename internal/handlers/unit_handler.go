package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "rentdesk/internal/errors"
	"rentdesk/internal/models"
	"rentdesk/internal/services"
)

// UnitHandler handles units, PG rooms, and beds.
type UnitHandler struct {
	units services.UnitServicer
	audit services.AuditServicer
}

// NewUnitHandler creates a new UnitHandler
func NewUnitHandler(units services.UnitServicer, audit services.AuditServicer) *UnitHandler {
	return &UnitHandler{units: units, audit: audit}
}

// CreateUnitRequest represents the unit creation payload. Amounts are in
// minor currency units.
type CreateUnitRequest struct {
	UnitNumber   string          `json:"unit_number" binding:"required,max=50"`
	UnitType     models.UnitType `json:"unit_type" binding:"required,unit_type"`
	BHKType      string          `json:"bhk_type" binding:"max=10"`
	ExpectedRent int64           `json:"expected_rent" binding:"required,min=1"`
	Deposit      int64           `json:"deposit" binding:"omitempty,min=0"`
}

// UpdateUnitRequest represents the unit update payload.
type UpdateUnitRequest struct {
	UnitNumber   *string `json:"unit_number" binding:"omitempty,max=50"`
	BHKType      *string `json:"bhk_type" binding:"omitempty,max=10"`
	ExpectedRent *int64  `json:"expected_rent" binding:"omitempty,min=1"`
	Deposit      *int64  `json:"deposit" binding:"omitempty,min=0"`
}

// CreateRoomRequest represents the PG room creation payload. SharingType
// is the number of beds; they are created automatically.
type CreateRoomRequest struct {
	RoomNumber  string `json:"room_number" binding:"required,max=20"`
	SharingType int    `json:"sharing_type" binding:"required,min=1,max=12"`
}

// CreateBedRequest represents the bed creation payload.
type CreateBedRequest struct {
	BedNumber string `json:"bed_number" binding:"required,max=10"`
}

// CreateUnit creates a unit in a building
// @Summary     Create unit
// @Description Create a FLAT or PG unit in a building
// @Tags        units
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Building ID"
// @Param       request body CreateUnitRequest true "Unit data"
// @Success     201 {object} models.Unit "Created unit"
// @Failure     404 {object} ErrorResponse "Building not found"
// @Failure     409 {object} ErrorResponse "Duplicate unit number"
// @Router      /buildings/{id}/units [post]
func (h *UnitHandler) CreateUnit(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	buildingID := c.Param("id")
	unit, err := h.units.CreateUnit(actor, buildingID, req.UnitNumber, req.UnitType, req.BHKType, req.ExpectedRent, req.Deposit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	entry := auditEntry(c, actor, models.AuditCreate, models.ResourceUnit, unit.ID, "Unit created: "+unit.UnitNumber)
	entry.BuildingID = &buildingID
	h.audit.Log(entry)
	c.JSON(http.StatusCreated, gin.H{"unit": unit})
}

// ListUnits lists a building's units
// @Summary     List units
// @Description List units in a building, optionally filtered by status
// @Tags        units
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Building ID"
// @Param       status query string false "Filter by VACANT or OCCUPIED"
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {object} pagination.PageResponse[models.Unit] "Units"
// @Failure     404 {object} ErrorResponse "Building not found"
// @Router      /buildings/{id}/units [get]
func (h *UnitHandler) ListUnits(c *gin.Context) {
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

	var status *models.OccupancyStatus
	if raw := c.Query("status"); raw != "" {
		s := models.OccupancyStatus(raw)
		if s != models.StatusVacant && s != models.StatusOccupied {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "status must be VACANT or OCCUPIED"))
			return
		}
		status = &s
	}

	units, err := h.units.ListUnits(actor, c.Param("id"), status, page)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, units)
}

// GetUnit returns one unit with its rooms and beds
// @Summary     Get unit
// @Description Get a unit by ID, including PG rooms and beds
// @Tags        units
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Unit ID"
// @Success     200 {object} models.Unit "Unit"
// @Failure     404 {object} ErrorResponse "Unit not found"
// @Router      /units/{id} [get]
func (h *UnitHandler) GetUnit(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	unit, err := h.units.GetUnitByID(actor, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unit": unit})
}

// UpdateUnit updates a unit
// @Summary     Update unit
// @Description Update unit fields
// @Tags        units
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Unit ID"
// @Param       request body UpdateUnitRequest true "Fields to update"
// @Success     200 {object} models.Unit "Updated unit"
// @Failure     404 {object} ErrorResponse "Unit not found"
// @Router      /units/{id} [patch]
func (h *UnitHandler) UpdateUnit(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	unit, err := h.units.UpdateUnit(actor, c.Param("id"), services.UnitUpdateFields{
		UnitNumber:   req.UnitNumber,
		BHKType:      req.BHKType,
		ExpectedRent: req.ExpectedRent,
		Deposit:      req.Deposit,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	entry := auditEntry(c, actor, models.AuditUpdate, models.ResourceUnit, unit.ID, "Unit updated: "+unit.UnitNumber)
	entry.BuildingID = &unit.BuildingID
	h.audit.Log(entry)
	c.JSON(http.StatusOK, gin.H{"unit": unit})
}

// DeleteUnit deletes a unit
// @Summary     Delete unit
// @Description Delete a unit without active occupancies
// @Tags        units
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Unit ID"
// @Success     200 {object} map[string]string "Deleted"
// @Failure     409 {object} ErrorResponse "Unit has active occupancies"
// @Router      /units/{id} [delete]
func (h *UnitHandler) DeleteUnit(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	// Fetch before deleting so the audit entry can carry the building.
	unit, err := h.units.GetUnitByID(actor, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	if err := h.units.DeleteUnit(actor, unit.ID); err != nil {
		respondWithError(c, err)
		return
	}

	entry := auditEntry(c, actor, models.AuditDelete, models.ResourceUnit, unit.ID, "Unit deleted")
	entry.BuildingID = &unit.BuildingID
	h.audit.Log(entry)
	c.JSON(http.StatusOK, gin.H{"message": "unit deleted"})
}

// CreateRoom adds a room to a PG unit
// @Summary     Create PG room
// @Description Add a room to a PG unit; beds are created to match the sharing type
// @Tags        units
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Unit ID"
// @Param       request body CreateRoomRequest true "Room data"
// @Success     201 {object} models.PGRoom "Created room with beds"
// @Failure     400 {object} ErrorResponse "Not a PG unit"
// @Failure     409 {object} ErrorResponse "Duplicate room number"
// @Router      /units/{id}/rooms [post]
func (h *UnitHandler) CreateRoom(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	room, err := h.units.CreateRoom(actor, c.Param("id"), req.RoomNumber, req.SharingType)
	if err != nil {
		respondWithError(c, err)
		return
	}

	entry := auditEntry(c, actor, models.AuditCreate, models.ResourcePGRoom, room.ID, "PG room created: "+room.RoomNumber)
	if room.Unit != nil {
		entry.BuildingID = &room.Unit.BuildingID
	}
	h.audit.Log(entry)
	c.JSON(http.StatusCreated, gin.H{"room": room})
}

// ListRooms lists a PG unit's rooms
// @Summary     List PG rooms
// @Description List the rooms of a PG unit with their beds
// @Tags        units
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Unit ID"
// @Success     200 {array} models.PGRoom "Rooms"
// @Failure     404 {object} ErrorResponse "Unit not found"
// @Router      /units/{id}/rooms [get]
func (h *UnitHandler) ListRooms(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	rooms, err := h.units.ListRooms(actor, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rooms": rooms})
}

// CreateBed adds a bed to a PG room
// @Summary     Create bed
// @Description Add an extra bed to a PG room
// @Tags        units
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Room ID"
// @Param       request body CreateBedRequest true "Bed data"
// @Success     201 {object} models.Bed "Created bed"
// @Failure     409 {object} ErrorResponse "Duplicate bed number"
// @Router      /rooms/{id}/beds [post]
func (h *UnitHandler) CreateBed(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateBedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	bed, err := h.units.CreateBed(actor, c.Param("id"), req.BedNumber)
	if err != nil {
		respondWithError(c, err)
		return
	}

	entry := auditEntry(c, actor, models.AuditCreate, models.ResourceBed, bed.ID, "Bed created: "+bed.BedNumber)
	if bed.Room != nil && bed.Room.Unit != nil {
		entry.BuildingID = &bed.Room.Unit.BuildingID
	}
	h.audit.Log(entry)
	c.JSON(http.StatusCreated, gin.H{"bed": bed})
}

// ListBeds lists a PG room's beds
// @Summary     List beds
// @Description List the beds of a PG room
// @Tags        units
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Room ID"
// @Success     200 {array} models.Bed "Beds"
// @Failure     404 {object} ErrorResponse "Room not found"
// @Router      /rooms/{id}/beds [get]
func (h *UnitHandler) ListBeds(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	beds, err := h.units.ListBeds(actor, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"beds": beds})
}
