package repository

import (
	"assignment-workflow-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ApprovalRecordRepository handles database operations for approval records
type ApprovalRecordRepository struct {
	db *gorm.DB
}

// NewApprovalRecordRepository creates a new approval record repository
func NewApprovalRecordRepository(db *gorm.DB) *ApprovalRecordRepository {
	return &ApprovalRecordRepository{db: db}
}

// Create creates a new approval record
func (r *ApprovalRecordRepository) Create(record *models.ApprovalRecord) error {
	return r.db.Create(record).Error
}

// GetByID retrieves an approval record by ID
func (r *ApprovalRecordRepository) GetByID(id uuid.UUID) (*models.ApprovalRecord, error) {
	var record models.ApprovalRecord
	err := r.db.First(&record, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetByRequestID retrieves the approval chain of a request ordered by level
func (r *ApprovalRecordRepository) GetByRequestID(requestID uuid.UUID) ([]models.ApprovalRecord, error) {
	var records []models.ApprovalRecord
	err := r.db.Where("request_id = ?", requestID).Order("level ASC").Find(&records).Error
	return records, err
}

// GetPendingByRequestID retrieves the single undecided record of a request
func (r *ApprovalRecordRepository) GetPendingByRequestID(requestID uuid.UUID) (*models.ApprovalRecord, error) {
	var record models.ApprovalRecord
	err := r.db.Where("request_id = ? AND decision = ?", requestID, models.ApprovalDecisionPending).
		Order("level DESC").
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetPendingByApprover retrieves undecided records assigned to an approver on pending requests
func (r *ApprovalRecordRepository) GetPendingByApprover(approverID string, limit, offset int) ([]models.ApprovalRecord, int64, error) {
	var records []models.ApprovalRecord
	var total int64

	query := r.db.Model(&models.ApprovalRecord{}).
		Joins("JOIN assignment_requests ON assignment_requests.id = approval_records.request_id").
		Where("approval_records.approver_id = ?", approverID).
		Where("approval_records.decision = ?", models.ApprovalDecisionPending).
		Where("assignment_requests.status = ?", models.AssignmentStatusPending)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Select("approval_records.*").
		Order("approval_records.created_at ASC").
		Limit(limit).Offset(offset).
		Find(&records).Error
	return records, total, err
}

// CountByRequestID counts the approval records created for a request
func (r *ApprovalRecordRepository) CountByRequestID(requestID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.ApprovalRecord{}).Where("request_id = ?", requestID).Count(&count).Error
	return count, err
}

// Decide stores the decision if the record is still pending
func (r *ApprovalRecordRepository) Decide(record *models.ApprovalRecord) error {
	res := r.db.Model(&models.ApprovalRecord{}).
		Where("id = ? AND decision = ?", record.ID, models.ApprovalDecisionPending).
		Updates(map[string]interface{}{
			"decision":   record.Decision,
			"comments":   record.Comments,
			"decided_by": record.DecidedBy,
			"decided_at": record.DecidedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrVersionConflict
	}
	return nil
}
