package service

import (
	"time"

	"assignment-workflow-backend/internal/database/models"

	"github.com/google/uuid"
)

// CreateAssignmentRequest is a draft submitted by a requester
type CreateAssignmentRequest struct {
	AssignmentType      models.AssignmentType  `json:"assignment_type" validate:"required,oneof=emergency standard scheduled"`
	PriorityLevel       int                    `json:"priority_level" validate:"required,min=1,max=5"`
	RequestedRole       string                 `json:"requested_role" validate:"required,min=1,max=100"`
	ProjectID           *uuid.UUID             `json:"project_id,omitempty"`
	TeamID              *uuid.UUID             `json:"team_id,omitempty"`
	CrewID              *uuid.UUID             `json:"crew_id,omitempty"`
	Region              string                 `json:"region,omitempty" validate:"max=50"`
	StartDate           time.Time              `json:"start_date" validate:"required"`
	EndDate             *time.Time             `json:"end_date,omitempty"`
	Description         string                 `json:"description" validate:"required,min=10,max=2000"`
	Requirements        map[string]interface{} `json:"requirements,omitempty"`
	RequiredCapacityPct *int                   `json:"required_capacity_pct,omitempty" validate:"omitempty,min=1,max=100"`
	Comments            string                 `json:"comments,omitempty" validate:"max=1000"`
}

// UpdateAssignmentRequest is a partial edit of a pending request; nil fields are left alone
type UpdateAssignmentRequest struct {
	PriorityLevel       *int                   `json:"priority_level,omitempty"`
	RequestedRole       *string                `json:"requested_role,omitempty"`
	ProjectID           *uuid.UUID             `json:"project_id,omitempty"`
	TeamID              *uuid.UUID             `json:"team_id,omitempty"`
	CrewID              *uuid.UUID             `json:"crew_id,omitempty"`
	Region              *string                `json:"region,omitempty"`
	StartDate           *time.Time             `json:"start_date,omitempty"`
	EndDate             *time.Time             `json:"end_date,omitempty"`
	Description         *string                `json:"description,omitempty"`
	Requirements        map[string]interface{} `json:"requirements,omitempty"`
	RequiredCapacityPct *int                   `json:"required_capacity_pct,omitempty"`
	Comments            *string                `json:"comments,omitempty"`
	Reason              string                 `json:"reason,omitempty"`
}

// touchesCapacity reports whether the patch changes what was reserved
func (u *UpdateAssignmentRequest) touchesCapacity() bool {
	return u.CrewID != nil || u.StartDate != nil || u.EndDate != nil || u.RequiredCapacityPct != nil
}

// DecisionRequest is an approver's verdict on the pending level
type DecisionRequest struct {
	Decision models.ApprovalDecision `json:"decision" validate:"required,oneof=approved rejected"`
	Comments string                  `json:"comments,omitempty" validate:"max=1000"`
}

// LifecycleRequest carries the optional reason for cancel/schedule/start/complete
type LifecycleRequest struct {
	Reason string `json:"reason,omitempty" validate:"max=1000"`
}

// ListRequestsParams filters and pages ListRequests
type ListRequestsParams struct {
	Status        *models.AssignmentStatus
	Type          *models.AssignmentType
	PriorityLevel *int
	RequesterID   string
	ProjectID     *uuid.UUID
	TeamID        *uuid.UUID
	CrewID        *uuid.UUID
	StartFrom     *time.Time
	StartTo       *time.Time
	CreatedFrom   *time.Time
	CreatedTo     *time.Time
	SortBy        string
	SortOrder     string
	Page          int
	PageSize      int
}

// AssignmentRequestView is the read projection of a request with directory names resolved
type AssignmentRequestView struct {
	ID                  uuid.UUID               `json:"id"`
	RequesterID         string                  `json:"requester_id"`
	AssignmentType      models.AssignmentType   `json:"assignment_type"`
	PriorityLevel       int                     `json:"priority_level"`
	RequestedRole       string                  `json:"requested_role"`
	ProjectID           *uuid.UUID              `json:"project_id"`
	ProjectName         string                  `json:"project_name,omitempty"`
	TeamID              *uuid.UUID              `json:"team_id"`
	TeamName            string                  `json:"team_name,omitempty"`
	CrewID              *uuid.UUID              `json:"crew_id"`
	CrewName            string                  `json:"crew_name,omitempty"`
	Region              string                  `json:"region,omitempty"`
	StartDate           time.Time               `json:"start_date"`
	EndDate             *time.Time              `json:"end_date"`
	Description         string                  `json:"description"`
	Requirements        map[string]interface{}  `json:"requirements,omitempty"`
	RequiredCapacityPct *int                    `json:"required_capacity_pct,omitempty"`
	Status              models.AssignmentStatus `json:"status"`
	CurrentState        string                  `json:"current_state,omitempty"`
	Comments            string                  `json:"comments,omitempty"`
	ApprovedAt          *time.Time              `json:"approved_at,omitempty"`
	CreatedAt           time.Time               `json:"created_at"`
	UpdatedAt           time.Time               `json:"updated_at"`
}

// AssignmentListResponse is a page of request views
type AssignmentListResponse struct {
	Requests []AssignmentRequestView `json:"requests"`
	Total    int64                   `json:"total"`
	Page     int                     `json:"page"`
	PageSize int                     `json:"page_size"`
}

// BulkCreateError reports why the draft at Index was not created
type BulkCreateError struct {
	Index int    `json:"index"`
	Error string `json:"error"`
}

// BulkCreateResult lists what a bulk create produced
type BulkCreateResult struct {
	Created []AssignmentRequestView `json:"created"`
	Errors  []BulkCreateError       `json:"errors"`
}

// NextApprover identifies who the pending level waits on
type NextApprover struct {
	ApproverID string `json:"approver_id"`
	Role       string `json:"role"`
	Level      int    `json:"level"`
}

// WorkflowStatus is the full workflow picture of one request
type WorkflowStatus struct {
	Request      AssignmentRequestView   `json:"request"`
	CurrentState string                  `json:"current_state"`
	History      []models.WorkflowState  `json:"history"`
	Approvals    []models.ApprovalRecord `json:"approvals"`
	NextApprover *NextApprover           `json:"next_approver,omitempty"`
}

// PendingApprovalsResponse is a page of approvals waiting on one approver
type PendingApprovalsResponse struct {
	Approvals []models.ApprovalRecord `json:"approvals"`
	Total     int64                   `json:"total"`
	Page      int                     `json:"page"`
	PageSize  int                     `json:"page_size"`
}

// CapacityResult answers an availability query
type CapacityResult struct {
	CrewID                uuid.UUID `json:"crew_id"`
	StartDate             time.Time `json:"start_date"`
	EndDate               time.Time `json:"end_date"`
	Available             bool      `json:"available"`
	AvailablePct          int       `json:"available_pct"`
	CurrentUtilizationPct int       `json:"current_utilization_pct"`
	ConflictCount         int       `json:"conflict_count"`
}

// ForecastDay is the utilization of one UTC calendar day
type ForecastDay struct {
	Date              string `json:"date"`
	UtilizationPct    int    `json:"utilization_pct"`
	TotalAllocatedPct int    `json:"total_allocated_pct"`
	AvailablePct      int    `json:"available_pct"`
	IsOverbooked      bool   `json:"is_overbooked"`
	AssignmentCount   int    `json:"assignment_count"`
}

// ForecastSummary aggregates a forecast series
type ForecastSummary struct {
	AverageUtilization float64 `json:"average_utilization"`
	PeakUtilization    int     `json:"peak_utilization"`
	OverbookedDays     int     `json:"overbooked_days"`
}

// ForecastResult is a per-day capacity series
type ForecastResult struct {
	CrewID   *uuid.UUID      `json:"crew_id,omitempty"`
	Days     int             `json:"days"`
	Forecast []ForecastDay   `json:"forecast"`
	Summary  ForecastSummary `json:"summary"`
}

// CrewUtilization summarizes confirmed work of one crew
type CrewUtilization struct {
	CrewID                uuid.UUID `json:"crew_id"`
	CrewName              string    `json:"crew_name"`
	CurrentUtilizationPct int       `json:"current_utilization_pct"`
	AverageAllocationPct  float64   `json:"average_allocation_pct"`
	PeakAllocationPct     int       `json:"peak_allocation_pct"`
	TotalAssignments      int64     `json:"total_assignments"`
	CompletedAssignments  int64     `json:"completed_assignments"`
}

// StatisticsResponse aggregates requests over a creation window
type StatisticsResponse struct {
	Total                int64            `json:"total"`
	ByStatus             map[string]int64 `json:"by_status"`
	ByType               map[string]int64 `json:"by_type"`
	AverageApprovalHours float64          `json:"average_approval_hours"`
}
