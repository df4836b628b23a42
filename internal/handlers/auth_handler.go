package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "rentdesk/internal/errors"
	"rentdesk/internal/middleware"
	"rentdesk/internal/models"
	"rentdesk/internal/services"
)

// AuthHandler handles registration, login, and token refresh.
type AuthHandler struct {
	users services.UserServicer
	audit services.AuditServicer
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(users services.UserServicer, audit services.AuditServicer) *AuthHandler {
	return &AuthHandler{users: users, audit: audit}
}

// RegisterRequest represents the owner registration payload. Registration
// creates a new account with the caller as its owner.
type RegisterRequest struct {
	AccountName string `json:"account_name" binding:"required,max=255"`
	Email       string `json:"email" binding:"required,email,max=255"`
	Password    string `json:"password" binding:"required,min=8,max=128"`
	FirstName   string `json:"first_name" binding:"max=100"`
	LastName    string `json:"last_name" binding:"max=100"`
	Phone       string `json:"phone" binding:"max=15"`
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest carries a refresh token.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// AuthResponse represents the authentication response with both tokens.
type AuthResponse struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	User         models.User `json:"user"`
}

// issueTokens generates and persists a token pair for the user.
func (h *AuthHandler) issueTokens(user *models.User) (access, refresh string, err error) {
	access, err = middleware.GenerateAccessToken(user)
	if err != nil {
		return "", "", err
	}
	refresh, err = middleware.GenerateRefreshToken(user)
	if err != nil {
		return "", "", err
	}
	if err = h.users.StoreRefreshTokenHash(user.ID, middleware.HashToken(refresh)); err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// Register creates a new account and its owner user
// @Summary     Register a new account
// @Description Create an account on the FREE plan with the caller as owner
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body RegisterRequest true "Account registration data"
// @Success     201 {object} AuthResponse "Account created and tokens generated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Email already registered"
// @Router      /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.users.RegisterOwner(req.AccountName, req.Email, req.Password, req.FirstName, req.LastName, req.Phone)
	if err != nil {
		respondWithError(c, err)
		return
	}

	access, refresh, err := h.issueTokens(user)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	actor := services.Actor{UserID: user.ID, AccountID: user.AccountID, Role: user.Role}
	h.audit.Log(auditEntry(c, actor, models.AuditCreate, models.ResourceAccount, user.AccountID, "Account registered"))

	c.JSON(http.StatusCreated, AuthResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         *user,
	})
}

// Login authenticates a user
// @Summary     Login
// @Description Authenticate with email and password
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "Login credentials"
// @Success     200 {object} AuthResponse "Tokens generated"
// @Failure     401 {object} ErrorResponse "Invalid credentials"
// @Failure     423 {object} ErrorResponse "Account temporarily locked"
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.users.AttemptLogin(req.Email, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	access, refresh, err := h.issueTokens(user)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	actor := services.Actor{UserID: user.ID, AccountID: user.AccountID, Role: user.Role}
	h.audit.Log(auditEntry(c, actor, models.AuditLogin, models.ResourceUser, user.ID, "User logged in"))

	c.JSON(http.StatusOK, AuthResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         *user,
	})
}

// Refresh exchanges a refresh token for a new token pair
// @Summary     Refresh tokens
// @Description Rotate the refresh token and issue a new access token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body RefreshRequest true "Refresh token"
// @Success     200 {object} AuthResponse "New tokens generated"
// @Failure     401 {object} ErrorResponse "Invalid refresh token"
// @Router      /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	claims, err := middleware.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		respondWithError(c, apperrors.ErrUnauthorized)
		return
	}

	storedHash, err := h.users.GetRefreshTokenHash(claims.UserID)
	if err != nil || storedHash == "" || storedHash != middleware.HashToken(req.RefreshToken) {
		respondWithError(c, apperrors.ErrUnauthorized)
		return
	}

	user, err := h.users.GetUserByID(claims.UserID)
	if err != nil {
		respondWithError(c, apperrors.ErrUnauthorized)
		return
	}

	access, refresh, err := h.issueTokens(user)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         *user,
	})
}

// Logout invalidates the caller's refresh token
// @Summary     Logout
// @Description Invalidate the stored refresh token
// @Tags        auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]string "Logged out"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.users.StoreRefreshTokenHash(actor.UserID, ""); err != nil {
		respondWithError(c, err)
		return
	}

	h.audit.Log(auditEntry(c, actor, models.AuditLogout, models.ResourceUser, actor.UserID, "User logged out"))
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Me returns the caller's profile
// @Summary     Get current user
// @Description Get the authenticated user's profile and account
// @Tags        auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.User "Current user"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.users.GetUserByID(actor.UserID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
