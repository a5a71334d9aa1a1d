package repository

import (
	"assignment-workflow-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentHistoryRepository handles the append-only audit trail
type AssignmentHistoryRepository struct {
	db *gorm.DB
}

// NewAssignmentHistoryRepository creates a new assignment history repository
func NewAssignmentHistoryRepository(db *gorm.DB) *AssignmentHistoryRepository {
	return &AssignmentHistoryRepository{db: db}
}

// Append stores a history entry with the next per-request sequence number
func (r *AssignmentHistoryRepository) Append(entry *models.AssignmentHistory) error {
	var last int
	err := r.db.Model(&models.AssignmentHistory{}).
		Where("request_id = ?", entry.RequestID).
		Select("COALESCE(MAX(sequence), 0)").
		Scan(&last).Error
	if err != nil {
		return err
	}
	entry.Sequence = last + 1
	return r.db.Create(entry).Error
}

// GetByRequestID retrieves the history of a request ordered by change time
func (r *AssignmentHistoryRepository) GetByRequestID(requestID uuid.UUID) ([]models.AssignmentHistory, error) {
	var entries []models.AssignmentHistory
	err := r.db.Where("request_id = ?", requestID).Order("changed_at ASC, sequence ASC").Find(&entries).Error
	return entries, err
}
