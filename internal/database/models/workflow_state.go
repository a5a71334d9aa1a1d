package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// WorkflowState is an append-only entry of a request's state machine; the highest Sequence is current
type WorkflowState struct {
	BaseModel
	RequestID    uuid.UUID       `json:"request_id" gorm:"type:uuid;not null;uniqueIndex:idx_workflow_request_seq"`
	Sequence     int             `json:"sequence" gorm:"not null;uniqueIndex:idx_workflow_request_seq"`
	CurrentState string          `json:"current_state" gorm:"size:50;not null"`
	StateData    json.RawMessage `json:"state_data" gorm:"type:jsonb"`
	ActorID      string          `json:"actor_id" gorm:"size:100;not null"`
}

// TableName returns the table name for WorkflowState
func (WorkflowState) TableName() string {
	return "workflow_states"
}
