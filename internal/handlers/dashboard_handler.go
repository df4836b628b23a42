package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentdesk/internal/services"
)

// DashboardHandler serves role-aware dashboard metrics.
type DashboardHandler struct {
	dashboard services.DashboardServicer
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboard services.DashboardServicer) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Summary returns the headline metrics
// @Summary     Dashboard summary
// @Description Headline occupancy, rent, and issue metrics for accessible buildings
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Param       refresh query bool false "Drop the cached summary and recompute"
// @Success     200 {object} services.DashboardSummary "Summary metrics"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /dashboard/summary [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.dashboard.Summary(actor, c.Query("refresh") == "true")
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Detailed returns the per-building breakdown
// @Summary     Dashboard detailed metrics
// @Description Per-building occupancy and collection figures
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.DetailedMetrics "Detailed metrics"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /dashboard/detailed [get]
func (h *DashboardHandler) Detailed(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	metrics, err := h.dashboard.Detailed(actor)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}

// Activity returns the recent activity feed
// @Summary     Dashboard activity
// @Description Latest issues, move-ins, and payments
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.RecentActivity "Recent activity"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /dashboard/activity [get]
func (h *DashboardHandler) Activity(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	activity, err := h.dashboard.Activity(actor)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, activity)
}
