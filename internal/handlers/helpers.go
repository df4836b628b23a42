package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "rentdesk/internal/errors"
	"rentdesk/internal/logger"
	"rentdesk/internal/middleware"
	"rentdesk/internal/models"
	"rentdesk/internal/pagination"
	"rentdesk/internal/services"
)

// getActor extracts the authenticated caller's identity from the Gin
// context. Returns ErrUnauthorized if the auth middleware did not run.
func getActor(c *gin.Context) (services.Actor, error) {
	userID, exists := c.Get(middleware.CtxUserID)
	if !exists {
		return services.Actor{}, apperrors.ErrUnauthorized
	}
	accountID, exists := c.Get(middleware.CtxAccountID)
	if !exists {
		return services.Actor{}, apperrors.ErrUnauthorized
	}
	role, exists := c.Get(middleware.CtxRole)
	if !exists {
		return services.Actor{}, apperrors.ErrUnauthorized
	}
	return services.Actor{
		UserID:    userID.(string),
		AccountID: accountID.(string),
		Role:      models.Role(role.(string)),
	}, nil
}

// getPage binds page/page_size query parameters.
func getPage(c *gin.Context) (pagination.PageRequest, error) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		return page, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	return page, nil
}

// auditEntry builds an AuditEntry from the request context.
func auditEntry(c *gin.Context, actor services.Actor, action models.AuditAction, resourceType, resourceID, description string) services.AuditEntry {
	return services.AuditEntry{
		Actor:        actor,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Description:  description,
		IPAddress:    c.ClientIP(),
		UserAgent:    c.Request.UserAgent(),
	}
}

// occupancyBuildingID reads the building of a loaded occupancy, through
// either its flat unit or its PG bed chain. Returns nil when the location
// associations are not loaded.
func occupancyBuildingID(o *models.Occupancy) *string {
	if o == nil {
		return nil
	}
	if o.Unit != nil {
		return &o.Unit.BuildingID
	}
	if o.Bed != nil && o.Bed.Room != nil && o.Bed.Room.Unit != nil {
		return &o.Bed.Room.Unit.BuildingID
	}
	return nil
}

// issueBuildingID reads the building of an issue whose unit is loaded.
func issueBuildingID(i *models.Issue) *string {
	if i == nil || i.Unit == nil {
		return nil
	}
	return &i.Unit.BuildingID
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
		"error": gin.H{
			"code":    apperrors.ErrInternalServer.Code,
			"message": apperrors.ErrInternalServer.Message,
		},
	})
}

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
