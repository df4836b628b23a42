package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "rentdesk/internal/errors"
	"rentdesk/internal/models"
	"rentdesk/internal/services"
)

// UserHandler handles manager administration within an account.
type UserHandler struct {
	users services.UserServicer
	audit services.AuditServicer
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(users services.UserServicer, audit services.AuditServicer) *UserHandler {
	return &UserHandler{users: users, audit: audit}
}

// CreateManagerRequest represents the manager creation payload.
type CreateManagerRequest struct {
	Email     string `json:"email" binding:"required,email,max=255"`
	Password  string `json:"password" binding:"required,min=8,max=128"`
	FirstName string `json:"first_name" binding:"max=100"`
	LastName  string `json:"last_name" binding:"max=100"`
	Phone     string `json:"phone" binding:"max=15"`
}

// CreateManager adds a manager to the account
// @Summary     Create manager
// @Description Create a manager user in the caller's account (owner only)
// @Tags        users
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateManagerRequest true "Manager data"
// @Success     201 {object} models.User "Created manager"
// @Failure     403 {object} ErrorResponse "Owner only or manager limit reached"
// @Failure     409 {object} ErrorResponse "Email already registered"
// @Router      /users [post]
func (h *UserHandler) CreateManager(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateManagerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.users.CreateManager(actor, req.Email, req.Password, req.FirstName, req.LastName, req.Phone)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.audit.Log(auditEntry(c, actor, models.AuditCreate, models.ResourceUser, user.ID, "Manager created: "+user.Email))
	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// ListUsers lists the account's users
// @Summary     List users
// @Description List all users in the caller's account
// @Tags        users
// @Produce     json
// @Security    BearerAuth
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {object} pagination.PageResponse[models.User] "Users"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
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

	users, err := h.users.ListUsers(actor, page)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// DeleteManager removes a manager from the account
// @Summary     Delete manager
// @Description Remove a manager and their building access grants (owner only)
// @Tags        users
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "User ID"
// @Success     200 {object} map[string]string "Deleted"
// @Failure     400 {object} ErrorResponse "Cannot delete an owner"
// @Failure     404 {object} ErrorResponse "User not found"
// @Router      /users/{id} [delete]
func (h *UserHandler) DeleteManager(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	userID := c.Param("id")
	if err := h.users.DeleteManager(actor, userID); err != nil {
		respondWithError(c, err)
		return
	}

	h.audit.Log(auditEntry(c, actor, models.AuditDelete, models.ResourceUser, userID, "Manager removed"))
	c.JSON(http.StatusOK, gin.H{"message": "manager removed"})
}
