package models

import (
	"time"

	"gorm.io/gorm"
)

// RentStatus is the payment state of a monthly rent entry.
type RentStatus string

const (
	RentPaid    RentStatus = "PAID"
	RentPartial RentStatus = "PARTIAL"
	RentPending RentStatus = "PENDING"
)

// Rent is one row of the monthly rent ledger: the expected and collected
// amount for an occupancy in a given month. Month is normalized to the
// first day of the month.
type Rent struct {
	Base
	OccupancyID string    `gorm:"type:uuid;not null;uniqueIndex:idx_rents_occupancy_month;index:idx_rents_occupancy_status" json:"occupancy_id"`
	Month       time.Time `gorm:"not null;uniqueIndex:idx_rents_occupancy_month;index:idx_rents_month_status" json:"month"`

	// Amounts in minor currency units.
	Amount     int64 `gorm:"not null" json:"amount"`
	PaidAmount int64 `gorm:"not null;default:0" json:"paid_amount"`

	Status   RentStatus `gorm:"size:20;not null;default:'PENDING';index:idx_rents_occupancy_status;index:idx_rents_month_status" json:"status"`
	PaidDate *time.Time `json:"paid_date,omitempty"`
	Notes    string     `json:"notes,omitempty"`

	Occupancy *Occupancy `gorm:"foreignKey:OccupancyID" json:"occupancy,omitempty"`
}

// BeforeSave derives the status from paid vs expected amount and stamps
// the paid date when the rent becomes fully paid.
func (r *Rent) BeforeSave(tx *gorm.DB) error {
	switch {
	case r.PaidAmount >= r.Amount && r.Amount > 0:
		r.Status = RentPaid
		if r.PaidDate == nil {
			now := time.Now()
			r.PaidDate = &now
		}
	case r.PaidAmount > 0:
		r.Status = RentPartial
	default:
		r.Status = RentPending
	}
	return nil
}

// PendingAmount returns the outstanding amount for the month.
func (r *Rent) PendingAmount() int64 {
	if r.Amount <= r.PaidAmount {
		return 0
	}
	return r.Amount - r.PaidAmount
}

// MonthStart normalizes a time to midnight UTC on the first of its month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
