package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "rentdesk/internal/errors"
	"rentdesk/internal/models"
	"rentdesk/internal/services"
)

// TenantHandler handles tenant profiles and their documents.
type TenantHandler struct {
	tenants services.TenantServicer
	audit   services.AuditServicer
}

// NewTenantHandler creates a new TenantHandler
func NewTenantHandler(tenants services.TenantServicer, audit services.AuditServicer) *TenantHandler {
	return &TenantHandler{tenants: tenants, audit: audit}
}

// CreateTenantRequest represents the tenant creation payload.
type CreateTenantRequest struct {
	Name             string `json:"name" binding:"required,max=255"`
	Phone            string `json:"phone" binding:"required,max=15"`
	Email            string `json:"email" binding:"omitempty,email"`
	IDProofType      string `json:"id_proof_type" binding:"max=50"`
	IDProofNumber    string `json:"id_proof_number" binding:"max=50"`
	Address          string `json:"address"`
	EmergencyContact string `json:"emergency_contact" binding:"max=15"`
}

// UpdateTenantRequest represents the tenant update payload.
type UpdateTenantRequest struct {
	Name             *string `json:"name" binding:"omitempty,max=255"`
	Phone            *string `json:"phone" binding:"omitempty,max=15"`
	Email            *string `json:"email" binding:"omitempty,email"`
	IDProofType      *string `json:"id_proof_type" binding:"omitempty,max=50"`
	IDProofNumber    *string `json:"id_proof_number" binding:"omitempty,max=50"`
	Address          *string `json:"address"`
	EmergencyContact *string `json:"emergency_contact" binding:"omitempty,max=15"`
}

// AddDocumentRequest represents the document creation payload.
type AddDocumentRequest struct {
	DocumentType   models.DocumentType `json:"document_type" binding:"required,document_type"`
	DocumentNumber string              `json:"document_number" binding:"max=50"`
	IssueDate      *time.Time          `json:"issue_date"`
	ExpiryDate     *time.Time          `json:"expiry_date"`
	Notes          string              `json:"notes"`
}

// VerifyDocumentRequest represents the document verification payload.
type VerifyDocumentRequest struct {
	Status models.VerificationStatus `json:"status" binding:"required,verification_status"`
	Notes  string                    `json:"notes"`
}

// CreateTenant creates a tenant
// @Summary     Create tenant
// @Description Create a tenant in the caller's account
// @Tags        tenants
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTenantRequest true "Tenant data"
// @Success     201 {object} models.Tenant "Created tenant"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /tenants [post]
func (h *TenantHandler) CreateTenant(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	tenant, err := h.tenants.CreateTenant(actor, req.Name, req.Phone, req.Email,
		req.IDProofType, req.IDProofNumber, req.Address, req.EmergencyContact)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.audit.Log(auditEntry(c, actor, models.AuditCreate, models.ResourceTenant, tenant.ID, "Tenant created: "+tenant.Name))
	c.JSON(http.StatusCreated, gin.H{"tenant": tenant})
}

// ListTenants lists the account's tenants
// @Summary     List tenants
// @Description List tenants, optionally filtered by a name or phone search
// @Tags        tenants
// @Produce     json
// @Security    BearerAuth
// @Param       search query string false "Name or phone search"
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {object} pagination.PageResponse[models.Tenant] "Tenants"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /tenants [get]
func (h *TenantHandler) ListTenants(c *gin.Context) {
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

	tenants, err := h.tenants.ListTenants(actor, c.Query("search"), page)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, tenants)
}

// GetTenant returns one tenant with documents
// @Summary     Get tenant
// @Description Get a tenant by ID with their documents
// @Tags        tenants
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Tenant ID"
// @Success     200 {object} models.Tenant "Tenant"
// @Failure     404 {object} ErrorResponse "Tenant not found"
// @Router      /tenants/{id} [get]
func (h *TenantHandler) GetTenant(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	tenant, err := h.tenants.GetTenantByID(actor, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tenant": tenant})
}

// UpdateTenant updates a tenant
// @Summary     Update tenant
// @Description Update tenant profile fields
// @Tags        tenants
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Tenant ID"
// @Param       request body UpdateTenantRequest true "Fields to update"
// @Success     200 {object} models.Tenant "Updated tenant"
// @Failure     404 {object} ErrorResponse "Tenant not found"
// @Router      /tenants/{id} [patch]
func (h *TenantHandler) UpdateTenant(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	tenant, err := h.tenants.UpdateTenant(actor, c.Param("id"), services.TenantUpdateFields{
		Name:             req.Name,
		Phone:            req.Phone,
		Email:            req.Email,
		IDProofType:      req.IDProofType,
		IDProofNumber:    req.IDProofNumber,
		Address:          req.Address,
		EmergencyContact: req.EmergencyContact,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.audit.Log(auditEntry(c, actor, models.AuditUpdate, models.ResourceTenant, tenant.ID, "Tenant updated: "+tenant.Name))
	c.JSON(http.StatusOK, gin.H{"tenant": tenant})
}

// DeleteTenant deletes a tenant
// @Summary     Delete tenant
// @Description Delete a tenant without an active occupancy
// @Tags        tenants
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Tenant ID"
// @Success     200 {object} map[string]string "Deleted"
// @Failure     409 {object} ErrorResponse "Tenant has an active occupancy"
// @Router      /tenants/{id} [delete]
func (h *TenantHandler) DeleteTenant(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	tenantID := c.Param("id")
	if err := h.tenants.DeleteTenant(actor, tenantID); err != nil {
		respondWithError(c, err)
		return
	}

	h.audit.Log(auditEntry(c, actor, models.AuditDelete, models.ResourceTenant, tenantID, "Tenant deleted"))
	c.JSON(http.StatusOK, gin.H{"message": "tenant deleted"})
}

// AddDocument records a document for a tenant
// @Summary     Add tenant document
// @Description Record a document for a tenant in PENDING state
// @Tags        tenants
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Tenant ID"
// @Param       request body AddDocumentRequest true "Document data"
// @Success     201 {object} models.TenantDocument "Created document"
// @Failure     404 {object} ErrorResponse "Tenant not found"
// @Router      /tenants/{id}/documents [post]
func (h *TenantHandler) AddDocument(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	doc, err := h.tenants.AddDocument(actor, c.Param("id"), req.DocumentType,
		req.DocumentNumber, req.Notes, req.IssueDate, req.ExpiryDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.audit.Log(auditEntry(c, actor, models.AuditCreate, models.ResourceTenant, doc.ID, "Tenant document added"))
	c.JSON(http.StatusCreated, gin.H{"document": doc})
}

// ListDocuments lists a tenant's documents
// @Summary     List tenant documents
// @Description List a tenant's documents, newest first
// @Tags        tenants
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Tenant ID"
// @Success     200 {array} models.TenantDocument "Documents"
// @Failure     404 {object} ErrorResponse "Tenant not found"
// @Router      /tenants/{id}/documents [get]
func (h *TenantHandler) ListDocuments(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	docs, err := h.tenants.ListDocuments(actor, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"documents": docs})
}

// VerifyDocument verifies or rejects a tenant document
// @Summary     Verify tenant document
// @Description Move a document to VERIFIED, REJECTED, or EXPIRED (owner only)
// @Tags        tenants
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Document ID"
// @Param       request body VerifyDocumentRequest true "New verification status"
// @Success     200 {object} models.TenantDocument "Updated document"
// @Failure     403 {object} ErrorResponse "Owner only"
// @Failure     404 {object} ErrorResponse "Document not found"
// @Router      /documents/{id}/verify [post]
func (h *TenantHandler) VerifyDocument(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req VerifyDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	doc, err := h.tenants.VerifyDocument(actor, c.Param("id"), req.Status, req.Notes)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.audit.Log(auditEntry(c, actor, models.AuditUpdate, models.ResourceTenant, doc.ID,
		"Tenant document marked "+string(req.Status)))
	c.JSON(http.StatusOK, gin.H{"document": doc})
}
