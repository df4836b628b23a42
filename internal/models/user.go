package models

import "time"

// Role represents a user's role within an account.
type Role string

const (
	RoleOwner   Role = "OWNER"
	RoleManager Role = "MANAGER"
)

// User represents an owner or manager belonging to an account.
type User struct {
	Base
	AccountID           string     `gorm:"type:uuid;not null;index" json:"account_id"`
	Email               string     `gorm:"uniqueIndex;not null" json:"email"`
	Password            string     `gorm:"not null" json:"-"`
	FirstName           string     `json:"first_name"`
	LastName            string     `json:"last_name"`
	Role                Role       `gorm:"not null;default:'OWNER'" json:"role"`
	Phone               string     `gorm:"size:15" json:"phone"`
	IsActive            bool       `gorm:"default:true" json:"is_active"`
	RefreshTokenHash    string     `gorm:"size:64" json:"-"`
	FailedLoginAttempts int        `gorm:"default:0" json:"-"`
	LockedUntil         *time.Time `json:"-"`
	LastLoginAt         *time.Time `json:"last_login_at,omitempty"`

	Account          *Account         `gorm:"foreignKey:AccountID" json:"account,omitempty"`
	BuildingAccesses []BuildingAccess `gorm:"foreignKey:UserID" json:"building_accesses,omitempty"`
}

// IsOwner reports whether the user has the OWNER role.
func (u *User) IsOwner() bool { return u.Role == RoleOwner }
