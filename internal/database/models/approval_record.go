package models

import (
	"time"

	"github.com/google/uuid"
)

// ApprovalRecord is one level of a request's approval chain
type ApprovalRecord struct {
	BaseModel
	RequestID    uuid.UUID        `json:"request_id" gorm:"type:uuid;not null;uniqueIndex:idx_approval_request_level"`
	Level        int              `json:"level" gorm:"not null;uniqueIndex:idx_approval_request_level"`
	ApproverID   string           `json:"approver_id" gorm:"size:100;not null;index"`
	ApproverRole string           `json:"approver_role" gorm:"size:50;not null"`
	Decision     ApprovalDecision `json:"decision" gorm:"type:varchar(20);not null;default:'pending';index"`
	Comments     string           `json:"comments" gorm:"type:text"`
	DecidedBy    string           `json:"decided_by" gorm:"size:100"`
	DecidedAt    *time.Time       `json:"decided_at"`
}

// TableName returns the table name for ApprovalRecord
func (ApprovalRecord) TableName() string {
	return "approval_records"
}

// IsPending reports whether the record still awaits a decision
func (a *ApprovalRecord) IsPending() bool {
	return a.Decision == ApprovalDecisionPending
}
