package models

import "time"

// NoticeStatus describes where an occupancy stands in its notice period.
type NoticeStatus string

const (
	NoticeNone     NoticeStatus = "NO_NOTICE"
	NoticeInPeriod NoticeStatus = "IN_NOTICE_PERIOD"
	NoticeEligible NoticeStatus = "ELIGIBLE"
)

// Occupancy links a tenant to a flat unit or a PG bed. Exactly one of
// UnitID and BedID is set: UnitID for flats, BedID for PGs.
type Occupancy struct {
	Base
	TenantID string  `gorm:"type:uuid;not null;index:idx_occupancies_tenant_active" json:"tenant_id"`
	UnitID   *string `gorm:"type:uuid;index:idx_occupancies_unit_active" json:"unit_id,omitempty"`
	BedID    *string `gorm:"type:uuid;index:idx_occupancies_bed_active" json:"bed_id,omitempty"`

	// Amounts in minor currency units.
	Rent    int64 `gorm:"not null" json:"rent"`
	Deposit int64 `gorm:"not null;default:0" json:"deposit"`

	// Only the primary tenant of a shared flat gets rent ledger entries.
	IsPrimary bool `gorm:"default:false" json:"is_primary"`

	StartDate time.Time  `gorm:"not null" json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	IsActive  bool       `gorm:"default:true;index:idx_occupancies_tenant_active;index:idx_occupancies_unit_active;index:idx_occupancies_bed_active" json:"is_active"`

	NoticeDate           *time.Time `json:"notice_date,omitempty"`
	ExpectedCheckoutDate *time.Time `json:"expected_checkout_date,omitempty"`
	NoticeReason         string     `json:"notice_reason,omitempty"`
	// NoticeState is derived from NoticeDate and the building's notice
	// period on read; it is never persisted.
	NoticeState NoticeStatus `gorm:"-" json:"notice_status,omitempty"`

	Notes string `json:"notes,omitempty"`

	Tenant *Tenant `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
	Unit   *Unit   `gorm:"foreignKey:UnitID" json:"unit,omitempty"`
	Bed    *Bed    `gorm:"foreignKey:BedID" json:"bed,omitempty"`
}

// HasGivenNotice reports whether the tenant has served notice to vacate.
func (o *Occupancy) HasGivenNotice() bool { return o.NoticeDate != nil }

// NoticeStatus returns the occupancy's position in the notice period given
// the building's required notice days.
func (o *Occupancy) NoticeStatus(requiredDays int, now time.Time) NoticeStatus {
	if o.NoticeDate == nil {
		return NoticeNone
	}
	daysSince := int(now.Sub(*o.NoticeDate).Hours() / 24)
	if daysSince >= requiredDays {
		return NoticeEligible
	}
	return NoticeInPeriod
}
