package repository

import (
	"assignment-workflow-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkflowStateRepository handles the append-only workflow state log
type WorkflowStateRepository struct {
	db *gorm.DB
}

// NewWorkflowStateRepository creates a new workflow state repository
func NewWorkflowStateRepository(db *gorm.DB) *WorkflowStateRepository {
	return &WorkflowStateRepository{db: db}
}

// Append stores a new state with the next per-request sequence number
func (r *WorkflowStateRepository) Append(state *models.WorkflowState) error {
	var last int
	err := r.db.Model(&models.WorkflowState{}).
		Where("request_id = ?", state.RequestID).
		Select("COALESCE(MAX(sequence), 0)").
		Scan(&last).Error
	if err != nil {
		return err
	}
	state.Sequence = last + 1
	return r.db.Create(state).Error
}

// GetCurrent retrieves the most recent state of a request
func (r *WorkflowStateRepository) GetCurrent(requestID uuid.UUID) (*models.WorkflowState, error) {
	var state models.WorkflowState
	err := r.db.Where("request_id = ?", requestID).Order("sequence DESC").First(&state).Error
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// GetByRequestID retrieves the full state log of a request, oldest first
func (r *WorkflowStateRepository) GetByRequestID(requestID uuid.UUID) ([]models.WorkflowState, error) {
	var states []models.WorkflowState
	err := r.db.Where("request_id = ?", requestID).Order("sequence ASC").Find(&states).Error
	return states, err
}
