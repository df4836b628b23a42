package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "rentdesk/internal/errors"
	"rentdesk/internal/models"
	"rentdesk/internal/pagination"
)

// tenantService handles renters and their document records.
type tenantService struct {
	db *gorm.DB
}

// NewTenantService creates a new TenantServicer.
func NewTenantService(db *gorm.DB) TenantServicer {
	return &tenantService{db: db}
}

// CreateTenant creates a tenant in the actor's account. Tenants are
// account-wide and not building-scoped.
func (s *tenantService) CreateTenant(actor Actor, name, phone, email, idProofType, idProofNumber, address, emergencyContact string) (*models.Tenant, error) {
	if name == "" || phone == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "tenant name and phone are required")
	}

	tenant := &models.Tenant{
		AccountID:        actor.AccountID,
		Name:             name,
		Phone:            phone,
		Email:            email,
		IDProofType:      idProofType,
		IDProofNumber:    idProofNumber,
		Address:          address,
		EmergencyContact: emergencyContact,
	}
	if err := s.db.Create(tenant).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return tenant, nil
}

// ListTenants retrieves tenants in the actor's account, optionally
// filtered by a name/phone search term.
func (s *tenantService) ListTenants(actor Actor, search string, page pagination.PageRequest) (*pagination.PageResponse[models.Tenant], error) {
	page.Defaults()

	base := s.db.Model(&models.Tenant{}).Where("account_id = ?", actor.AccountID)
	if search != "" {
		like := "%" + search + "%"
		base = base.Where("name LIKE ? OR phone LIKE ?", like, like)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var tenants []models.Tenant
	if err := base.Order("name").Scopes(pagination.Paginate(page)).Find(&tenants).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(tenants, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetTenantByID retrieves a tenant with their documents.
func (s *tenantService) GetTenantByID(actor Actor, tenantID string) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := s.db.Preload("Documents").
		Where("id = ? AND account_id = ?", tenantID, actor.AccountID).
		First(&tenant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &tenant, nil
}

// UpdateTenant updates a tenant's profile fields.
func (s *tenantService) UpdateTenant(actor Actor, tenantID string, fields TenantUpdateFields) (*models.Tenant, error) {
	tenant, err := s.GetTenantByID(actor, tenantID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if fields.Name != nil && *fields.Name != "" {
		updates["name"] = *fields.Name
	}
	if fields.Phone != nil && *fields.Phone != "" {
		updates["phone"] = *fields.Phone
	}
	if fields.Email != nil {
		updates["email"] = *fields.Email
	}
	if fields.IDProofType != nil {
		updates["id_proof_type"] = *fields.IDProofType
	}
	if fields.IDProofNumber != nil {
		updates["id_proof_number"] = *fields.IDProofNumber
	}
	if fields.Address != nil {
		updates["address"] = *fields.Address
	}
	if fields.EmergencyContact != nil {
		updates["emergency_contact"] = *fields.EmergencyContact
	}

	if len(updates) > 0 {
		if err := s.db.Model(tenant).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := s.db.Where("id = ?", tenant.ID).First(tenant).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return tenant, nil
}

// DeleteTenant soft-deletes a tenant without an active occupancy.
func (s *tenantService) DeleteTenant(actor Actor, tenantID string) error {
	tenant, err := s.GetTenantByID(actor, tenantID)
	if err != nil {
		return err
	}

	var count int64
	s.db.Model(&models.Occupancy{}).
		Where("tenant_id = ? AND is_active = ?", tenant.ID, true).
		Count(&count)
	if count > 0 {
		return apperrors.ErrTenantHasOccupancy
	}

	if err := s.db.Delete(tenant).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// AddDocument records a document for a tenant in PENDING state.
func (s *tenantService) AddDocument(actor Actor, tenantID string, docType models.DocumentType, number, notes string, issueDate, expiryDate *time.Time) (*models.TenantDocument, error) {
	tenant, err := s.GetTenantByID(actor, tenantID)
	if err != nil {
		return nil, err
	}

	uploadedBy := actor.UserID
	doc := &models.TenantDocument{
		TenantID:           tenant.ID,
		DocumentType:       docType,
		DocumentNumber:     number,
		VerificationStatus: models.VerificationPending,
		IssueDate:          issueDate,
		ExpiryDate:         expiryDate,
		Notes:              notes,
		UploadedBy:         &uploadedBy,
	}
	if err := s.db.Create(doc).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return doc, nil
}

// ListDocuments retrieves a tenant's documents, newest first.
func (s *tenantService) ListDocuments(actor Actor, tenantID string) ([]models.TenantDocument, error) {
	tenant, err := s.GetTenantByID(actor, tenantID)
	if err != nil {
		return nil, err
	}

	var docs []models.TenantDocument
	if err := s.db.Where("tenant_id = ?", tenant.ID).
		Order("created_at DESC").
		Find(&docs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return docs, nil
}

// VerifyDocument moves a document to VERIFIED, REJECTED, or EXPIRED.
// Owner only; the verifier and time are recorded.
func (s *tenantService) VerifyDocument(actor Actor, documentID string, status models.VerificationStatus, notes string) (*models.TenantDocument, error) {
	if !actor.IsOwner() {
		return nil, apperrors.ErrOwnerOnly
	}
	if status == models.VerificationPending {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "cannot verify back to PENDING")
	}

	var doc models.TenantDocument
	if err := s.db.Joins("JOIN tenants ON tenants.id = tenant_documents.tenant_id").
		Where("tenant_documents.id = ? AND tenants.account_id = ?", documentID, actor.AccountID).
		First(&doc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDocumentNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	now := time.Now()
	verifiedBy := actor.UserID
	if err := s.db.Model(&doc).Updates(map[string]interface{}{
		"verification_status": status,
		"verified_by":         verifiedBy,
		"verified_at":         now,
		"verification_notes":  notes,
	}).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	doc.VerificationStatus = status
	doc.VerifiedBy = &verifiedBy
	doc.VerifiedAt = &now
	doc.VerificationNotes = notes
	return &doc, nil
}
