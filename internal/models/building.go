package models

// Building represents a building owned by an account.
type Building struct {
	Base
	AccountID        string `gorm:"type:uuid;not null;index:idx_buildings_account_name" json:"account_id"`
	Name             string `gorm:"not null;index:idx_buildings_account_name" json:"name"`
	Address          string `gorm:"not null" json:"address"`
	TotalFloors      int    `gorm:"default:1" json:"total_floors"`
	NoticePeriodDays int    `gorm:"default:30" json:"notice_period_days"`

	Units []Unit `gorm:"foreignKey:BuildingID" json:"units,omitempty"`
}

// BuildingAccess grants a manager access to one building.
//
// Owners automatically have access to all buildings in their account and
// never appear here.
type BuildingAccess struct {
	Base
	UserID     string  `gorm:"type:uuid;not null;uniqueIndex:idx_access_user_building" json:"user_id"`
	BuildingID string  `gorm:"type:uuid;not null;uniqueIndex:idx_access_user_building;index" json:"building_id"`
	CreatedBy  *string `gorm:"type:uuid" json:"created_by,omitempty"`

	User     *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Building *Building `gorm:"foreignKey:BuildingID" json:"building,omitempty"`
}
