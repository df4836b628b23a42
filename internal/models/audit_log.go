package models

// AuditAction enumerates the auditable actions.
type AuditAction string

const (
	AuditCreate       AuditAction = "CREATE"
	AuditUpdate       AuditAction = "UPDATE"
	AuditDelete       AuditAction = "DELETE"
	AuditView         AuditAction = "VIEW"
	AuditLogin        AuditAction = "LOGIN"
	AuditLogout       AuditAction = "LOGOUT"
	AuditGrantAccess  AuditAction = "GRANT_ACCESS"
	AuditRevokeAccess AuditAction = "REVOKE_ACCESS"
	AuditPayRent      AuditAction = "PAY_RENT"
	AuditAssignTenant AuditAction = "ASSIGN_TENANT"
	AuditVacate       AuditAction = "VACATE"
)

// Audit resource types.
const (
	ResourceAccount        = "Account"
	ResourceUser           = "User"
	ResourceBuilding       = "Building"
	ResourceBuildingAccess = "BuildingAccess"
	ResourceUnit           = "Unit"
	ResourcePGRoom         = "PGRoom"
	ResourceBed            = "Bed"
	ResourceTenant         = "Tenant"
	ResourceOccupancy      = "Occupancy"
	ResourceRent           = "Rent"
	ResourceIssue          = "Issue"
)

// AuditLog records every sensitive operation in an account. Entries are
// immutable: the service layer only ever creates them and no update or
// delete path exists.
type AuditLog struct {
	Base
	AccountID string  `gorm:"type:uuid;not null;index:idx_audit_account_time" json:"account_id"`
	UserID    *string `gorm:"type:uuid;index:idx_audit_user_time" json:"user_id,omitempty"`
	// BuildingID scopes the entry for manager visibility when the action
	// touched building-derived data.
	BuildingID *string `gorm:"type:uuid;index" json:"building_id,omitempty"`

	Action       AuditAction `gorm:"size:20;not null;index:idx_audit_action" json:"action"`
	ResourceType string      `gorm:"size:50;not null;index:idx_audit_resource" json:"resource_type"`
	// ResourceID is NULL for actions without a single subject row, such
	// as a bulk rent generation.
	ResourceID  *string `gorm:"type:uuid;index:idx_audit_resource" json:"resource_id,omitempty"`
	Description string  `gorm:"not null" json:"description"`

	IPAddress string `gorm:"size:45" json:"ip_address,omitempty"`
	UserAgent string `gorm:"size:500" json:"user_agent,omitempty"`
	// Metadata is a JSON-encoded map of additional context.
	Metadata string `json:"metadata,omitempty"`
}
