package models

import (
	"time"

	"github.com/google/uuid"
)

// AssignmentHistory is one observed field mutation of a request
type AssignmentHistory struct {
	BaseModel
	RequestID uuid.UUID `json:"request_id" gorm:"type:uuid;not null;uniqueIndex:idx_history_request_seq"`
	Sequence  int       `json:"sequence" gorm:"not null;uniqueIndex:idx_history_request_seq"`
	FieldName string    `json:"field_name" gorm:"size:50;not null;index"`
	OldValue  *string   `json:"old_value"`
	NewValue  string    `json:"new_value" gorm:"not null"`
	Reason    string    `json:"reason" gorm:"type:text"`
	ActorID   string    `json:"actor_id" gorm:"size:100;not null"`
	ChangedAt time.Time `json:"changed_at" gorm:"not null;index"`
}

// TableName returns the table name for AssignmentHistory
func (AssignmentHistory) TableName() string {
	return "assignment_history"
}
