package models

// Plan represents the subscription plan of an account.
type Plan string

const (
	PlanFree       Plan = "FREE"
	PlanBasic      Plan = "BASIC"
	PlanPro        Plan = "PRO"
	PlanEnterprise Plan = "ENTERPRISE"
)

// planBuildingLimits maps each plan to its default building limit (0 = unlimited).
var planBuildingLimits = map[Plan]int{
	PlanFree:       2,
	PlanBasic:      5,
	PlanPro:        20,
	PlanEnterprise: 0,
}

// planManagerLimits maps each plan to its default manager limit (0 = unlimited).
var planManagerLimits = map[Plan]int{
	PlanFree:       1,
	PlanBasic:      3,
	PlanPro:        10,
	PlanEnterprise: 0,
}

// Account represents a SaaS customer account. All domain data hangs off
// an account and is never visible across account boundaries.
type Account struct {
	Base
	Name     string `gorm:"not null" json:"name"`
	Plan     Plan   `gorm:"not null;default:'FREE'" json:"plan"`
	IsActive bool   `gorm:"default:true" json:"is_active"`
	Phone    string `gorm:"size:15" json:"phone"`
	Address  string `json:"address"`

	// Per-account overrides. Nil means use the plan default, 0 means unlimited.
	MaxBuildings *int `json:"max_buildings,omitempty"`
	MaxManagers  *int `json:"max_managers,omitempty"`

	Users     []User     `gorm:"foreignKey:AccountID" json:"users,omitempty"`
	Buildings []Building `gorm:"foreignKey:AccountID" json:"buildings,omitempty"`
	Tenants   []Tenant   `gorm:"foreignKey:AccountID" json:"tenants,omitempty"`
}

// BuildingLimit returns the effective building limit for the account (0 = unlimited).
func (a *Account) BuildingLimit() int {
	if a.MaxBuildings != nil {
		return *a.MaxBuildings
	}
	return planBuildingLimits[a.Plan]
}

// ManagerLimit returns the effective manager limit for the account (0 = unlimited).
func (a *Account) ManagerLimit() int {
	if a.MaxManagers != nil {
		return *a.MaxManagers
	}
	return planManagerLimits[a.Plan]
}
