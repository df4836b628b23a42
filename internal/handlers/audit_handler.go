package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentdesk/internal/models"
	"rentdesk/internal/services"
)

// AuditHandler serves the read side of the audit trail.
type AuditHandler struct {
	audit services.AuditServicer
}

// NewAuditHandler creates a new AuditHandler
func NewAuditHandler(audit services.AuditServicer) *AuditHandler {
	return &AuditHandler{audit: audit}
}

// ListLogs lists audit entries
// @Summary     List audit logs
// @Description List audit entries newest first; managers see only their buildings and own actions
// @Tags        audit
// @Produce     json
// @Security    BearerAuth
// @Param       action query string false "Filter by action"
// @Param       resource_type query string false "Filter by resource type"
// @Param       user_id query string false "Filter by acting user"
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {object} pagination.PageResponse[models.AuditLog] "Audit entries"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /audit-logs [get]
func (h *AuditHandler) ListLogs(c *gin.Context) {
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

	var filter services.AuditFilter
	if raw := c.Query("action"); raw != "" {
		action := models.AuditAction(raw)
		filter.Action = &action
	}
	if raw := c.Query("resource_type"); raw != "" {
		filter.ResourceType = &raw
	}
	if raw := c.Query("user_id"); raw != "" {
		filter.UserID = &raw
	}

	logs, err := h.audit.ListLogs(actor, filter, page)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}
