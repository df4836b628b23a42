package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "rentdesk/internal/errors"
	"rentdesk/internal/export"
	"rentdesk/internal/models"
	"rentdesk/internal/services"
)

// RentHandler handles the monthly rent ledger and report exports.
type RentHandler struct {
	rents services.RentServicer
	audit services.AuditServicer
}

// NewRentHandler creates a new RentHandler
func NewRentHandler(rents services.RentServicer, audit services.AuditServicer) *RentHandler {
	return &RentHandler{rents: rents, audit: audit}
}

// CreateRentRequest represents the manual ledger entry payload. Month
// accepts "YYYY-MM"; amounts are in minor currency units.
type CreateRentRequest struct {
	OccupancyID string `json:"occupancy_id" binding:"required,uuid"`
	Month       string `json:"month" binding:"required"`
	Amount      int64  `json:"amount" binding:"required,min=1"`
	Notes       string `json:"notes"`
}

// RecordPaymentRequest represents the payment payload.
type RecordPaymentRequest struct {
	Amount int64  `json:"amount" binding:"required,min=1"`
	Notes  string `json:"notes"`
}

// GenerateRentRequest optionally overrides the generation month.
type GenerateRentRequest struct {
	Month string `json:"month"`
}

func parseMonth(raw string) (time.Time, error) {
	month, err := time.Parse("2006-01", raw)
	if err != nil {
		return time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be in YYYY-MM format")
	}
	return month, nil
}

// rentFilter parses the shared month/status/building_id query filters.
func rentFilter(c *gin.Context) (services.RentFilter, error) {
	var filter services.RentFilter
	if raw := c.Query("month"); raw != "" {
		month, err := parseMonth(raw)
		if err != nil {
			return filter, err
		}
		filter.Month = &month
	}
	if raw := c.Query("status"); raw != "" {
		status := models.RentStatus(raw)
		switch status {
		case models.RentPaid, models.RentPartial, models.RentPending:
			filter.Status = &status
		default:
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "status must be PAID, PARTIAL, or PENDING")
		}
	}
	if raw := c.Query("building_id"); raw != "" {
		filter.BuildingID = &raw
	}
	return filter, nil
}

// CreateRent adds a manual ledger entry
// @Summary     Create rent entry
// @Description Add a rent ledger entry for an occupancy and month
// @Tags        rents
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateRentRequest true "Rent entry data"
// @Success     201 {object} models.Rent "Created entry"
// @Failure     409 {object} ErrorResponse "Entry already exists for the month"
// @Router      /rents [post]
func (h *RentHandler) CreateRent(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateRentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	month, err := parseMonth(req.Month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	rent, err := h.rents.CreateRent(actor, req.OccupancyID, month, req.Amount, req.Notes)
	if err != nil {
		respondWithError(c, err)
		return
	}

	entry := auditEntry(c, actor, models.AuditCreate, models.ResourceRent, rent.ID, "Rent entry created")
	entry.BuildingID = occupancyBuildingID(rent.Occupancy)
	h.audit.Log(entry)
	c.JSON(http.StatusCreated, gin.H{"rent": rent})
}

// ListRents lists ledger entries
// @Summary     List rent entries
// @Description List rent entries filtered by month, status, or building
// @Tags        rents
// @Produce     json
// @Security    BearerAuth
// @Param       month query string false "Month in YYYY-MM format"
// @Param       status query string false "PAID, PARTIAL, or PENDING"
// @Param       building_id query string false "Building ID"
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {object} pagination.PageResponse[models.Rent] "Rent entries"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /rents [get]
func (h *RentHandler) ListRents(c *gin.Context) {
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

	filter, err := rentFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	rents, err := h.rents.ListRents(actor, filter, page)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, rents)
}

// GetRent returns one ledger entry
// @Summary     Get rent entry
// @Description Get a rent entry by ID
// @Tags        rents
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Rent ID"
// @Success     200 {object} models.Rent "Rent entry"
// @Failure     404 {object} ErrorResponse "Rent entry not found"
// @Router      /rents/{id} [get]
func (h *RentHandler) GetRent(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	rent, err := h.rents.GetRentByID(actor, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rent": rent})
}

// RecordPayment records a payment against an entry
// @Summary     Record payment
// @Description Record a payment toward a month's rent; status is derived
// @Tags        rents
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Rent ID"
// @Param       request body RecordPaymentRequest true "Payment data"
// @Success     200 {object} models.Rent "Updated entry"
// @Failure     400 {object} ErrorResponse "Payment exceeds pending amount"
// @Router      /rents/{id}/pay [post]
func (h *RentHandler) RecordPayment(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	rent, err := h.rents.RecordPayment(actor, c.Param("id"), req.Amount, req.Notes)
	if err != nil {
		respondWithError(c, err)
		return
	}

	entry := auditEntry(c, actor, models.AuditPayRent, models.ResourceRent, rent.ID,
		fmt.Sprintf("Payment of %d recorded", req.Amount))
	entry.BuildingID = occupancyBuildingID(rent.Occupancy)
	h.audit.Log(entry)
	c.JSON(http.StatusOK, gin.H{"rent": rent})
}

// Generate runs the monthly generation for the caller's account
// @Summary     Generate rent entries
// @Description Create pending entries for all active occupancies this month (owner only, idempotent)
// @Tags        rents
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body GenerateRentRequest false "Optional month override"
// @Success     200 {object} services.GenerationResult "Generation summary"
// @Failure     403 {object} ErrorResponse "Owner only"
// @Router      /rents/generate [post]
func (h *RentHandler) Generate(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req GenerateRentRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	month := time.Now()
	if req.Month != "" {
		month, err = parseMonth(req.Month)
		if err != nil {
			respondWithError(c, err)
			return
		}
	}

	result, err := h.rents.GenerateForMonth(month, actor.AccountID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.audit.Log(auditEntry(c, actor, models.AuditCreate, models.ResourceRent, "",
		fmt.Sprintf("Rent generation for %s: %d created, %d skipped",
			result.Month.Format("2006-01"), result.Created, result.Skipped)))
	c.JSON(http.StatusOK, result)
}

// Export downloads the rent report
// @Summary     Export rent report
// @Description Download the filtered rent ledger as CSV or XLSX
// @Tags        rents
// @Produce     text/csv
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security    BearerAuth
// @Param       format query string false "csv (default) or xlsx"
// @Param       month query string false "Month in YYYY-MM format"
// @Param       status query string false "PAID, PARTIAL, or PENDING"
// @Param       building_id query string false "Building ID"
// @Success     200 {file} file "Report file"
// @Failure     400 {object} ErrorResponse "Invalid filter"
// @Router      /rents/export [get]
func (h *RentHandler) Export(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	filter, err := rentFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	rows, err := h.rents.ExportRows(actor, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	filename := "rent-report-" + time.Now().Format("2006-01-02")
	switch c.DefaultQuery("format", "csv") {
	case "csv":
		c.Header("Content-Disposition", `attachment; filename="`+filename+`.csv"`)
		c.Header("Content-Type", "text/csv")
		if err := export.WriteCSV(c.Writer, rows); err != nil {
			respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		}
	case "xlsx":
		c.Header("Content-Disposition", `attachment; filename="`+filename+`.xlsx"`)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := export.WriteXLSX(c.Writer, rows); err != nil {
			respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		}
	default:
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "format must be csv or xlsx"))
	}
}
