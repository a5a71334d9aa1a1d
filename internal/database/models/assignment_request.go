package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AssignmentRequest asks for a role to be staffed from a crew over a time window
type AssignmentRequest struct {
	BaseModel
	RequesterID         string           `json:"requester_id" gorm:"size:100;not null;index"`
	AssignmentType      AssignmentType   `json:"assignment_type" gorm:"type:varchar(20);not null;index"`
	PriorityLevel       int              `json:"priority_level" gorm:"not null;default:3"`
	RequestedRole       string           `json:"requested_role" gorm:"size:100;not null"`
	ProjectID           *uuid.UUID       `json:"project_id" gorm:"type:uuid;index"`
	TeamID              *uuid.UUID       `json:"team_id" gorm:"type:uuid;index"`
	CrewID              *uuid.UUID       `json:"crew_id" gorm:"type:uuid;index"`
	Region              string           `json:"region" gorm:"size:50"`
	StartDate           time.Time        `json:"start_date" gorm:"not null;index"`
	EndDate             *time.Time       `json:"end_date"`
	Description         string           `json:"description" gorm:"type:text;not null"`
	Requirements        json.RawMessage  `json:"requirements" gorm:"type:jsonb"`
	RequiredCapacityPct *int             `json:"required_capacity_pct"`
	Status              AssignmentStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	Comments            string           `json:"comments" gorm:"type:text"`
	ApprovedAt          *time.Time       `json:"approved_at"`
	Version             int              `json:"version" gorm:"not null;default:1"`

	// Relationships
	Approvals   []ApprovalRecord     `json:"approvals,omitempty" gorm:"foreignKey:RequestID;constraint:OnDelete:RESTRICT"`
	Allocations []CapacityAllocation `json:"allocations,omitempty" gorm:"foreignKey:RequestID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for AssignmentRequest
func (AssignmentRequest) TableName() string {
	return "assignment_requests"
}

// WindowEnd returns the end of the requested window, defaulting to start+fallback
func (r *AssignmentRequest) WindowEnd(fallback time.Duration) time.Time {
	if r.EndDate != nil {
		return *r.EndDate
	}
	return r.StartDate.Add(fallback)
}
