package models

import "time"

// Tenant represents a renter (the person occupying a flat or bed), not to
// be confused with a SaaS account.
type Tenant struct {
	Base
	AccountID        string `gorm:"type:uuid;not null;index:idx_tenants_account_name;index:idx_tenants_account_phone" json:"account_id"`
	Name             string `gorm:"not null;index:idx_tenants_account_name" json:"name"`
	Phone            string `gorm:"size:15;not null;index:idx_tenants_account_phone" json:"phone"`
	Email            string `json:"email,omitempty"`
	IDProofType      string `gorm:"size:50" json:"id_proof_type,omitempty"`
	IDProofNumber    string `gorm:"size:50" json:"id_proof_number,omitempty"`
	Address          string `json:"address,omitempty"`
	EmergencyContact string `gorm:"size:15" json:"emergency_contact,omitempty"`

	Documents []TenantDocument `gorm:"foreignKey:TenantID" json:"documents,omitempty"`
}

// DocumentType enumerates the identity and agreement documents tracked per tenant.
type DocumentType string

const (
	DocumentAadhaar            DocumentType = "AADHAAR"
	DocumentPAN                DocumentType = "PAN"
	DocumentPassport           DocumentType = "PASSPORT"
	DocumentDrivingLicense     DocumentType = "DRIVING_LICENSE"
	DocumentVoterID            DocumentType = "VOTER_ID"
	DocumentPoliceVerification DocumentType = "POLICE_VERIFICATION"
	DocumentRentAgreement      DocumentType = "RENT_AGREEMENT"
	DocumentPhoto              DocumentType = "PHOTO"
	DocumentAddressProof       DocumentType = "ADDRESS_PROOF"
	DocumentEmploymentProof    DocumentType = "EMPLOYMENT_PROOF"
	DocumentOther              DocumentType = "OTHER"
)

// VerificationStatus is the review state of a tenant document.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "PENDING"
	VerificationVerified VerificationStatus = "VERIFIED"
	VerificationRejected VerificationStatus = "REJECTED"
	VerificationExpired  VerificationStatus = "EXPIRED"
)

// TenantDocument records a tenant's identity or agreement document and its
// verification state. Only metadata is stored; binary files are out of scope.
type TenantDocument struct {
	Base
	TenantID       string       `gorm:"type:uuid;not null;index:idx_docs_tenant_type;index:idx_docs_tenant_status" json:"tenant_id"`
	DocumentType   DocumentType `gorm:"size:30;not null;index:idx_docs_tenant_type" json:"document_type"`
	DocumentNumber string       `gorm:"size:50" json:"document_number,omitempty"`

	VerificationStatus VerificationStatus `gorm:"size:20;not null;default:'PENDING';index:idx_docs_tenant_status" json:"verification_status"`
	VerifiedBy         *string            `gorm:"type:uuid" json:"verified_by,omitempty"`
	VerifiedAt         *time.Time         `json:"verified_at,omitempty"`
	VerificationNotes  string             `json:"verification_notes,omitempty"`

	IssueDate  *time.Time `json:"issue_date,omitempty"`
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`
	Notes      string     `json:"notes,omitempty"`
	UploadedBy *string    `gorm:"type:uuid" json:"uploaded_by,omitempty"`

	Tenant *Tenant `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
}

// IsExpired reports whether the document's expiry date has passed.
func (d *TenantDocument) IsExpired() bool {
	return d.ExpiryDate != nil && d.ExpiryDate.Before(time.Now())
}
