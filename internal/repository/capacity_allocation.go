package repository

import (
	"time"

	"assignment-workflow-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CapacityAllocationRepository handles database operations for capacity allocations
type CapacityAllocationRepository struct {
	db *gorm.DB
}

// NewCapacityAllocationRepository creates a new capacity allocation repository
func NewCapacityAllocationRepository(db *gorm.DB) *CapacityAllocationRepository {
	return &CapacityAllocationRepository{db: db}
}

// Create creates a new capacity allocation
func (r *CapacityAllocationRepository) Create(allocation *models.CapacityAllocation) error {
	return r.db.Create(allocation).Error
}

// GetByRequestID retrieves the allocations of a request that still hold capacity
func (r *CapacityAllocationRepository) GetByRequestID(requestID uuid.UUID) ([]models.CapacityAllocation, error) {
	var allocations []models.CapacityAllocation
	err := r.db.Where("request_id = ? AND released_at IS NULL", requestID).Order("start_date ASC").Find(&allocations).Error
	return allocations, err
}

// FindOverlapping retrieves allocations whose window strictly overlaps [start, end).
// A nil crewID matches every crew.
func (r *CapacityAllocationRepository) FindOverlapping(crewID *uuid.UUID, start, end time.Time, confirmedOnly bool) ([]models.CapacityAllocation, error) {
	var allocations []models.CapacityAllocation

	query := r.db.Where("released_at IS NULL AND start_date < ? AND end_date > ?", end, start)
	if crewID != nil {
		query = query.Where("crew_id = ?", *crewID)
	}
	if confirmedOnly {
		query = query.Where("confirmed = ?", true)
	}

	err := query.Order("start_date ASC").Find(&allocations).Error
	return allocations, err
}

// GetConfirmedByCrew retrieves every confirmed, unreleased allocation of a crew
func (r *CapacityAllocationRepository) GetConfirmedByCrew(crewID uuid.UUID) ([]models.CapacityAllocation, error) {
	var allocations []models.CapacityAllocation
	err := r.db.Where("crew_id = ? AND confirmed = ? AND released_at IS NULL", crewID, true).Find(&allocations).Error
	return allocations, err
}

// Confirm marks every unconfirmed allocation of a request as confirmed
func (r *CapacityAllocationRepository) Confirm(requestID uuid.UUID, at time.Time) (int64, error) {
	res := r.db.Model(&models.CapacityAllocation{}).
		Where("request_id = ? AND confirmed = ? AND released_at IS NULL", requestID, false).
		Updates(map[string]interface{}{"confirmed": true, "confirmed_at": at})
	return res.RowsAffected, res.Error
}

// MarkOverbooked flags allocations that pushed their crew above full capacity
func (r *CapacityAllocationRepository) MarkOverbooked(ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Model(&models.CapacityAllocation{}).Where("id IN ?", ids).Update("overbooked", true).Error
}

// ReleaseByRequestID stamps released_at on the request's active allocations.
// Released rows stay in the table for audit.
func (r *CapacityAllocationRepository) ReleaseByRequestID(requestID uuid.UUID, at time.Time) (int64, error) {
	res := r.db.Model(&models.CapacityAllocation{}).
		Where("request_id = ? AND released_at IS NULL", requestID).
		Update("released_at", at)
	return res.RowsAffected, res.Error
}

// GetReleasedByRequestID retrieves the allocations a request has given back
func (r *CapacityAllocationRepository) GetReleasedByRequestID(requestID uuid.UUID) ([]models.CapacityAllocation, error) {
	var allocations []models.CapacityAllocation
	err := r.db.Where("request_id = ? AND released_at IS NOT NULL", requestID).Order("released_at ASC").Find(&allocations).Error
	return allocations, err
}
