package models

import (
	"time"

	"gorm.io/gorm"
)

// IssueStatus is the workflow state of a maintenance issue.
type IssueStatus string

const (
	IssueOpen       IssueStatus = "OPEN"
	IssueAssigned   IssueStatus = "ASSIGNED"
	IssueInProgress IssueStatus = "IN_PROGRESS"
	IssueResolved   IssueStatus = "RESOLVED"
)

// IssuePriority ranks how urgent an issue is.
type IssuePriority string

const (
	PriorityLow    IssuePriority = "LOW"
	PriorityMedium IssuePriority = "MEDIUM"
	PriorityHigh   IssuePriority = "HIGH"
	PriorityUrgent IssuePriority = "URGENT"
)

// Issue tracks a complaint or maintenance request against a unit,
// optionally raised by a specific tenant.
type Issue struct {
	Base
	UnitID   string  `gorm:"type:uuid;not null;index:idx_issues_unit_status" json:"unit_id"`
	TenantID *string `gorm:"type:uuid;index:idx_issues_tenant_status" json:"tenant_id,omitempty"`

	Title       string        `gorm:"not null" json:"title"`
	Description string        `gorm:"not null" json:"description"`
	Status      IssueStatus   `gorm:"size:20;not null;default:'OPEN';index:idx_issues_unit_status;index:idx_issues_tenant_status" json:"status"`
	Priority    IssuePriority `gorm:"size:20;not null;default:'MEDIUM'" json:"priority"`
	// AssignedTo is free text, e.g. "Plumber", "Electrician".
	AssignedTo string `json:"assigned_to,omitempty"`

	RaisedDate   time.Time  `gorm:"not null;index" json:"raised_date"`
	ResolvedDate *time.Time `json:"resolved_date,omitempty"`

	Unit   *Unit   `gorm:"foreignKey:UnitID" json:"unit,omitempty"`
	Tenant *Tenant `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
}

// BeforeSave manages the resolved timestamp: set when the issue reaches
// RESOLVED, cleared when it moves back into an open state.
func (i *Issue) BeforeSave(tx *gorm.DB) error {
	if i.Status == IssueResolved {
		if i.ResolvedDate == nil {
			now := time.Now()
			i.ResolvedDate = &now
		}
	} else {
		i.ResolvedDate = nil
	}
	return nil
}

// BeforeCreate stamps the raised date on new issues.
func (i *Issue) BeforeCreate(tx *gorm.DB) error {
	if err := i.Base.BeforeCreate(tx); err != nil {
		return err
	}
	if i.RaisedDate.IsZero() {
		i.RaisedDate = time.Now()
	}
	return nil
}
