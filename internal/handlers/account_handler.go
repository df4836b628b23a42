package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "rentdesk/internal/errors"
	"rentdesk/internal/models"
	"rentdesk/internal/services"
)

// AccountHandler handles account profile and plan limit requests.
type AccountHandler struct {
	accounts services.AccountServicer
	audit    services.AuditServicer
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(accounts services.AccountServicer, audit services.AuditServicer) *AccountHandler {
	return &AccountHandler{accounts: accounts, audit: audit}
}

// UpdateAccountRequest represents the account update payload.
type UpdateAccountRequest struct {
	Name    *string `json:"name" binding:"omitempty,max=255"`
	Phone   *string `json:"phone" binding:"omitempty,max=15"`
	Address *string `json:"address"`
}

// GetAccount returns the caller's account
// @Summary     Get account
// @Description Get the caller's account profile and plan
// @Tags        account
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.Account "Account"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /account [get]
func (h *AccountHandler) GetAccount(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	account, err := h.accounts.GetAccount(actor)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"account": account})
}

// UpdateAccount updates the account profile
// @Summary     Update account
// @Description Update the account name, phone, or address (owner only)
// @Tags        account
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpdateAccountRequest true "Fields to update"
// @Success     200 {object} models.Account "Updated account"
// @Failure     403 {object} ErrorResponse "Owner only"
// @Router      /account [patch]
func (h *AccountHandler) UpdateAccount(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	account, err := h.accounts.UpdateAccount(actor, req.Name, req.Phone, req.Address)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.audit.Log(auditEntry(c, actor, models.AuditUpdate, models.ResourceAccount, account.ID, "Account updated"))
	c.JSON(http.StatusOK, gin.H{"account": account})
}

// GetLimits returns the account's plan limit usage
// @Summary     Get plan limits
// @Description Get building and manager limit usage for the account
// @Tags        account
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.AccountLimits "Limit usage"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /account/limits [get]
func (h *AccountHandler) GetLimits(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	limits, err := h.accounts.GetLimits(actor)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, limits)
}
