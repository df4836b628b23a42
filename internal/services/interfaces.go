package services

import (
	"time"

	"rentdesk/internal/models"
	"rentdesk/internal/pagination"
)

// Actor identifies the authenticated caller of a service method. Every
// query a service runs is scoped to the actor's account, and for managers
// additionally to their accessible buildings.
type Actor struct {
	UserID    string
	AccountID string
	Role      models.Role
}

// IsOwner reports whether the actor has the OWNER role.
func (a Actor) IsOwner() bool { return a.Role == models.RoleOwner }

// UserServicer defines the contract for user and authentication logic.
type UserServicer interface {
	RegisterOwner(accountName, email, password, firstName, lastName, phone string) (*models.User, error)
	CreateManager(actor Actor, email, password, firstName, lastName, phone string) (*models.User, error)
	ListUsers(actor Actor, page pagination.PageRequest) (*pagination.PageResponse[models.User], error)
	DeleteManager(actor Actor, userID string) error
	GetUserByID(id string) (*models.User, error)
	AttemptLogin(email, password string) (*models.User, error)
	StoreRefreshTokenHash(userID, tokenHash string) error
	GetRefreshTokenHash(userID string) (string, error)
}

// LimitUsage reports current vs maximum usage of a limited resource.
type LimitUsage struct {
	Current   int  `json:"current"`
	Max       int  `json:"max"`
	Unlimited bool `json:"unlimited"`
	CanAdd    bool `json:"can_add"`
}

// AccountLimits summarizes an account's plan limits.
type AccountLimits struct {
	Buildings LimitUsage `json:"buildings"`
	Managers  LimitUsage `json:"managers"`
}

// AccountServicer defines the contract for account management.
type AccountServicer interface {
	GetAccount(actor Actor) (*models.Account, error)
	UpdateAccount(actor Actor, name, phone, address *string) (*models.Account, error)
	GetLimits(actor Actor) (*AccountLimits, error)
	CheckBuildingLimit(accountID string) error
	CheckManagerLimit(accountID string) error
}

// AccessServicer answers building-level access questions.
//
// Rules: owners can access every building in their account; managers only
// the buildings granted to them via BuildingAccess.
type AccessServicer interface {
	AccessibleBuildingIDs(actor Actor) ([]string, error)
	CanAccessBuilding(actor Actor, buildingID string) (bool, error)
}

// BuildingServicer defines the contract for building CRUD and access grants.
type BuildingServicer interface {
	CreateBuilding(actor Actor, name, address string, totalFloors, noticePeriodDays int) (*models.Building, error)
	ListBuildings(actor Actor, page pagination.PageRequest) (*pagination.PageResponse[models.Building], error)
	GetBuildingByID(actor Actor, buildingID string) (*models.Building, error)
	UpdateBuilding(actor Actor, buildingID string, name, address *string, totalFloors, noticePeriodDays *int) (*models.Building, error)
	DeleteBuilding(actor Actor, buildingID string) error
	GrantAccess(actor Actor, buildingID, userID string) (*models.BuildingAccess, error)
	RevokeAccess(actor Actor, buildingID, userID string) error
	ListAccess(actor Actor, buildingID string) ([]models.BuildingAccess, error)
}

// UnitUpdateFields holds optional fields for updating a unit.
type UnitUpdateFields struct {
	UnitNumber   *string
	BHKType      *string
	ExpectedRent *int64
	Deposit      *int64
}

// UnitServicer defines the contract for units, PG rooms, and beds.
type UnitServicer interface {
	CreateUnit(actor Actor, buildingID, unitNumber string, unitType models.UnitType, bhkType string, expectedRent, deposit int64) (*models.Unit, error)
	ListUnits(actor Actor, buildingID string, status *models.OccupancyStatus, page pagination.PageRequest) (*pagination.PageResponse[models.Unit], error)
	GetUnitByID(actor Actor, unitID string) (*models.Unit, error)
	UpdateUnit(actor Actor, unitID string, fields UnitUpdateFields) (*models.Unit, error)
	DeleteUnit(actor Actor, unitID string) error
	CreateRoom(actor Actor, unitID, roomNumber string, sharingType int) (*models.PGRoom, error)
	ListRooms(actor Actor, unitID string) ([]models.PGRoom, error)
	CreateBed(actor Actor, roomID, bedNumber string) (*models.Bed, error)
	ListBeds(actor Actor, roomID string) ([]models.Bed, error)
}

// TenantUpdateFields holds optional fields for updating a tenant.
type TenantUpdateFields struct {
	Name             *string
	Phone            *string
	Email            *string
	IDProofType      *string
	IDProofNumber    *string
	Address          *string
	EmergencyContact *string
}

// TenantServicer defines the contract for tenants and their documents.
type TenantServicer interface {
	CreateTenant(actor Actor, name, phone, email, idProofType, idProofNumber, address, emergencyContact string) (*models.Tenant, error)
	ListTenants(actor Actor, search string, page pagination.PageRequest) (*pagination.PageResponse[models.Tenant], error)
	GetTenantByID(actor Actor, tenantID string) (*models.Tenant, error)
	UpdateTenant(actor Actor, tenantID string, fields TenantUpdateFields) (*models.Tenant, error)
	DeleteTenant(actor Actor, tenantID string) error
	AddDocument(actor Actor, tenantID string, docType models.DocumentType, number, notes string, issueDate, expiryDate *time.Time) (*models.TenantDocument, error)
	ListDocuments(actor Actor, tenantID string) ([]models.TenantDocument, error)
	VerifyDocument(actor Actor, documentID string, status models.VerificationStatus, notes string) (*models.TenantDocument, error)
}

// AssignRequest carries the parameters for assigning a tenant to a unit or bed.
type AssignRequest struct {
	TenantID  string
	UnitID    *string
	BedID     *string
	Rent      int64
	Deposit   int64
	IsPrimary bool
	StartDate time.Time
	Notes     string
}

// OccupancyServicer defines the contract for occupancy lifecycle management.
//
// Assign and Reassign prevent double booking: the target unit/bed row is
// locked for the duration of the transaction and a conflicting active
// occupancy aborts with a 409-mapped error.
type OccupancyServicer interface {
	Assign(actor Actor, req AssignRequest) (*models.Occupancy, error)
	ListOccupancies(actor Actor, isActive *bool, page pagination.PageRequest) (*pagination.PageResponse[models.Occupancy], error)
	GetOccupancyByID(actor Actor, occupancyID string) (*models.Occupancy, error)
	Reassign(actor Actor, occupancyID string, unitID, bedID *string, rent *int64) (*models.Occupancy, error)
	GiveNotice(actor Actor, occupancyID string, noticeDate time.Time, reason string) (*models.Occupancy, error)
	Vacate(actor Actor, occupancyID string) (*models.Occupancy, error)
}

// RentFilter holds optional filters for listing rent entries.
type RentFilter struct {
	Month      *time.Time
	Status     *models.RentStatus
	BuildingID *string
}

// GenerationResult summarizes a monthly rent generation run.
type GenerationResult struct {
	Month   time.Time `json:"month"`
	Created int       `json:"created"`
	Skipped int       `json:"skipped"`
}

// RentServicer defines the contract for the monthly rent ledger.
type RentServicer interface {
	CreateRent(actor Actor, occupancyID string, month time.Time, amount int64, notes string) (*models.Rent, error)
	ListRents(actor Actor, filter RentFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Rent], error)
	GetRentByID(actor Actor, rentID string) (*models.Rent, error)
	RecordPayment(actor Actor, rentID string, amount int64, notes string) (*models.Rent, error)
	GenerateForMonth(month time.Time, accountID string) (*GenerationResult, error)
	GenerateForAllAccounts(month time.Time) (*GenerationResult, error)
	ExportRows(actor Actor, filter RentFilter) ([]RentReportRow, error)
}

// RentReportRow is one line of a rent report export.
type RentReportRow struct {
	Month      string
	TenantName string
	Location   string
	Expected   int64
	Paid       int64
	Pending    int64
	Status     string
	PaidDate   string
}

// IssueUpdateFields holds optional fields for updating an issue.
type IssueUpdateFields struct {
	Title       *string
	Description *string
	Status      *models.IssueStatus
	Priority    *models.IssuePriority
	AssignedTo  *string
}

// IssueServicer defines the contract for issue tracking.
type IssueServicer interface {
	CreateIssue(actor Actor, unitID string, tenantID *string, title, description string, priority models.IssuePriority) (*models.Issue, error)
	ListIssues(actor Actor, status *models.IssueStatus, priority *models.IssuePriority, page pagination.PageRequest) (*pagination.PageResponse[models.Issue], error)
	GetIssueByID(actor Actor, issueID string) (*models.Issue, error)
	UpdateIssue(actor Actor, issueID string, fields IssueUpdateFields) (*models.Issue, error)
	DeleteIssue(actor Actor, issueID string) error
}

// DashboardSummary holds the headline metrics for the caller's accessible buildings.
type DashboardSummary struct {
	TotalBuildings       int     `json:"total_buildings"`
	TotalUnits           int     `json:"total_units"`
	OccupiedUnits        int     `json:"occupied_units"`
	VacantUnits          int     `json:"vacant_units"`
	OccupancyRate        float64 `json:"occupancy_rate"`
	TotalTenants         int     `json:"total_tenants"`
	ActiveTenants        int     `json:"active_tenants"`
	ExpectedMonthlyRent  int64   `json:"expected_monthly_rent"`
	CollectedMonthlyRent int64   `json:"collected_monthly_rent"`
	PendingRent          int64   `json:"pending_rent"`
	CollectionRate       float64 `json:"collection_rate"`
	OpenIssues           int     `json:"open_issues"`
	UrgentIssues         int     `json:"urgent_issues"`
	UserRole             string  `json:"user_role"`
	AccessibleBuildings  int     `json:"accessible_buildings_count"`
	CurrentMonth         string  `json:"current_month"`
}

// BuildingMetrics holds per-building dashboard figures.
type BuildingMetrics struct {
	BuildingID     string  `json:"building_id"`
	BuildingName   string  `json:"building_name"`
	TotalUnits     int     `json:"total_units"`
	OccupiedUnits  int     `json:"occupied_units"`
	VacantUnits    int     `json:"vacant_units"`
	ExpectedRent   int64   `json:"expected_rent"`
	CollectedRent  int64   `json:"collected_rent"`
	CollectionRate float64 `json:"collection_rate"`
	OpenIssues     int     `json:"open_issues"`
}

// DetailedMetrics is the per-building breakdown plus account totals.
type DetailedMetrics struct {
	Buildings []BuildingMetrics `json:"buildings"`
	Summary   struct {
		TotalBuildings        int     `json:"total_buildings"`
		TotalExpectedRent     int64   `json:"total_expected_rent"`
		TotalCollectedRent    int64   `json:"total_collected_rent"`
		OverallCollectionRate float64 `json:"overall_collection_rate"`
	} `json:"summary"`
	UserRole     string `json:"user_role"`
	CurrentMonth string `json:"current_month"`
}

// ActivityItem is one row of the recent-activity feed.
type ActivityItem struct {
	ID       string    `json:"id"`
	Kind     string    `json:"kind"`
	Title    string    `json:"title"`
	Building string    `json:"building,omitempty"`
	Unit     string    `json:"unit,omitempty"`
	Amount   int64     `json:"amount,omitempty"`
	When     time.Time `json:"when"`
}

// RecentActivity groups the latest issues, move-ins, and payments.
type RecentActivity struct {
	RecentIssues   []ActivityItem `json:"recent_issues"`
	RecentTenants  []ActivityItem `json:"recent_tenants"`
	RecentPayments []ActivityItem `json:"recent_payments"`
}

// DashboardServicer defines the contract for role-aware dashboard metrics.
type DashboardServicer interface {
	Summary(actor Actor, refresh bool) (*DashboardSummary, error)
	Detailed(actor Actor) (*DetailedMetrics, error)
	Activity(actor Actor) (*RecentActivity, error)
}

// AuditEntry carries the parameters for one audit log write.
type AuditEntry struct {
	Actor        Actor
	BuildingID   *string
	Action       models.AuditAction
	ResourceType string
	ResourceID   string
	Description  string
	IPAddress    string
	UserAgent    string
	Metadata     map[string]interface{}
}

// AuditFilter holds optional filters for listing audit logs.
type AuditFilter struct {
	Action       *models.AuditAction
	ResourceType *string
	UserID       *string
}

// AuditServicer defines the contract for the immutable audit trail.
// Entries can only be created and read; there is deliberately no update
// or delete operation.
type AuditServicer interface {
	Log(entry AuditEntry)
	ListLogs(actor Actor, filter AuditFilter, page pagination.PageRequest) (*pagination.PageResponse[models.AuditLog], error)
}
