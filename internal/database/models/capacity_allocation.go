package models

import (
	"time"

	"github.com/google/uuid"
)

// CapacityAllocation reserves a share of a crew for a request's window
type CapacityAllocation struct {
	BaseModel
	RequestID            uuid.UUID  `json:"request_id" gorm:"type:uuid;not null;index"`
	CrewID               uuid.UUID  `json:"crew_id" gorm:"type:uuid;not null;index:idx_allocation_crew_window"`
	AllocatedUnits       int        `json:"allocated_units" gorm:"not null;default:1"`
	AllocationPercentage int        `json:"allocation_percentage" gorm:"not null"`
	StartDate            time.Time  `json:"start_date" gorm:"not null;index:idx_allocation_crew_window"`
	EndDate              time.Time  `json:"end_date" gorm:"not null;index:idx_allocation_crew_window"`
	Confirmed            bool       `json:"confirmed" gorm:"not null;default:false"`
	ConfirmedAt          *time.Time `json:"confirmed_at"`
	Overbooked           bool       `json:"overbooked" gorm:"not null;default:false"`
	ReleasedAt           *time.Time `json:"released_at,omitempty" gorm:"index"`
}

// TableName returns the table name for CapacityAllocation
func (CapacityAllocation) TableName() string {
	return "capacity_allocations"
}

// Released reports whether the allocation no longer holds capacity
func (c *CapacityAllocation) Released() bool {
	return c.ReleasedAt != nil
}

// Overlaps uses the strict half-open test: a.start < end && a.end > start
func (c *CapacityAllocation) Overlaps(start, end time.Time) bool {
	return c.StartDate.Before(end) && c.EndDate.After(start)
}
