package repository

import (
	"context"
	"time"

	"assignment-workflow-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// AssignmentRequestRepositoryInterface defines the interface for assignment request persistence
type AssignmentRequestRepositoryInterface interface {
	Create(request *models.AssignmentRequest) error
	GetByID(id uuid.UUID) (*models.AssignmentRequest, error)
	List(filter RequestFilter, limit, offset int) ([]models.AssignmentRequest, int64, error)
	Update(request *models.AssignmentRequest) error
	CountByStatus(from, to *time.Time) (map[string]int64, error)
	CountByType(from, to *time.Time) (map[string]int64, error)
	CountByCrew(crewID uuid.UUID, status *models.AssignmentStatus) (int64, error)
	AverageApprovalHours(from, to *time.Time) (float64, error)
}

// ApprovalRecordRepositoryInterface defines the interface for approval record persistence
type ApprovalRecordRepositoryInterface interface {
	Create(record *models.ApprovalRecord) error
	GetByID(id uuid.UUID) (*models.ApprovalRecord, error)
	GetByRequestID(requestID uuid.UUID) ([]models.ApprovalRecord, error)
	GetPendingByRequestID(requestID uuid.UUID) (*models.ApprovalRecord, error)
	GetPendingByApprover(approverID string, limit, offset int) ([]models.ApprovalRecord, int64, error)
	CountByRequestID(requestID uuid.UUID) (int64, error)
	Decide(record *models.ApprovalRecord) error
}

// WorkflowStateRepositoryInterface defines the interface for the append-only state log
type WorkflowStateRepositoryInterface interface {
	Append(state *models.WorkflowState) error
	GetCurrent(requestID uuid.UUID) (*models.WorkflowState, error)
	GetByRequestID(requestID uuid.UUID) ([]models.WorkflowState, error)
}

// CapacityAllocationRepositoryInterface defines the interface for capacity allocation persistence
type CapacityAllocationRepositoryInterface interface {
	Create(allocation *models.CapacityAllocation) error
	GetByRequestID(requestID uuid.UUID) ([]models.CapacityAllocation, error)
	FindOverlapping(crewID *uuid.UUID, start, end time.Time, confirmedOnly bool) ([]models.CapacityAllocation, error)
	GetConfirmedByCrew(crewID uuid.UUID) ([]models.CapacityAllocation, error)
	Confirm(requestID uuid.UUID, at time.Time) (int64, error)
	MarkOverbooked(ids []uuid.UUID) error
	ReleaseByRequestID(requestID uuid.UUID, at time.Time) (int64, error)
	GetReleasedByRequestID(requestID uuid.UUID) ([]models.CapacityAllocation, error)
}

// AssignmentHistoryRepositoryInterface defines the interface for the audit trail
type AssignmentHistoryRepositoryInterface interface {
	Append(entry *models.AssignmentHistory) error
	GetByRequestID(requestID uuid.UUID) ([]models.AssignmentHistory, error)
}

// StoreInterface hands out repositories, optionally bound to one transaction
type StoreInterface interface {
	Repositories(ctx context.Context) *Repositories
	Transaction(ctx context.Context, fn func(repos *Repositories) error) error
}
