package service

import (
	"context"
	"time"

	"assignment-workflow-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// AssignmentServiceInterface defines the operations exposed by the assignment engine
type AssignmentServiceInterface interface {
	CreateRequest(ctx context.Context, draft *CreateAssignmentRequest, requesterID string) (*AssignmentRequestView, error)
	BulkCreate(ctx context.Context, drafts []CreateAssignmentRequest, requesterID string) (*BulkCreateResult, error)
	GetRequest(ctx context.Context, id uuid.UUID) (*AssignmentRequestView, error)
	ListRequests(ctx context.Context, params *ListRequestsParams) (*AssignmentListResponse, error)
	UpdateRequest(ctx context.Context, id uuid.UUID, patch *UpdateAssignmentRequest, actorID string) (*AssignmentRequestView, error)
	SubmitDecision(ctx context.Context, requestID uuid.UUID, approverID string, decision *DecisionRequest) (*models.ApprovalRecord, error)
	GetPendingApprovals(ctx context.Context, approverID string, page, pageSize int) (*PendingApprovalsResponse, error)
	GetWorkflowStatus(ctx context.Context, id uuid.UUID) (*WorkflowStatus, error)
	GetHistory(ctx context.Context, id uuid.UUID) ([]models.AssignmentHistory, error)
	CancelRequest(ctx context.Context, id uuid.UUID, actorID, reason string) (*AssignmentRequestView, error)
	ScheduleRequest(ctx context.Context, id uuid.UUID, actorID, reason string) (*AssignmentRequestView, error)
	StartRequest(ctx context.Context, id uuid.UUID, actorID, reason string) (*AssignmentRequestView, error)
	CompleteRequest(ctx context.Context, id uuid.UUID, actorID, reason string) (*AssignmentRequestView, error)
	CheckCapacity(ctx context.Context, crewID uuid.UUID, start, end time.Time) (*CapacityResult, error)
	GetForecast(ctx context.Context, crewID *uuid.UUID, days int) (*ForecastResult, error)
	GetCrewUtilization(ctx context.Context, crewIDs []uuid.UUID) ([]CrewUtilization, error)
	GetStatistics(ctx context.Context, from, to *time.Time) (*StatisticsResponse, error)
}
