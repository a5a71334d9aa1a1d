package repository

import (
	"errors"
	"time"

	"assignment-workflow-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrVersionConflict is returned when an optimistic update loses to a concurrent writer
var ErrVersionConflict = errors.New("row version conflict")

// RequestFilter narrows List results; nil/empty fields are ignored
type RequestFilter struct {
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
}

var sortColumns = map[string]string{
	"created_at":     "created_at",
	"start_date":     "start_date",
	"priority_level": "priority_level",
	"status":         "status",
}

// AssignmentRequestRepository handles database operations for assignment requests
type AssignmentRequestRepository struct {
	db *gorm.DB
}

// NewAssignmentRequestRepository creates a new assignment request repository
func NewAssignmentRequestRepository(db *gorm.DB) *AssignmentRequestRepository {
	return &AssignmentRequestRepository{db: db}
}

// Create creates a new assignment request
func (r *AssignmentRequestRepository) Create(request *models.AssignmentRequest) error {
	if request.Version == 0 {
		request.Version = 1
	}
	return r.db.Create(request).Error
}

// GetByID retrieves an assignment request by ID
func (r *AssignmentRequestRepository) GetByID(id uuid.UUID) (*models.AssignmentRequest, error) {
	var request models.AssignmentRequest
	err := r.db.First(&request, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// List retrieves assignment requests matching the filter
func (r *AssignmentRequestRepository) List(filter RequestFilter, limit, offset int) ([]models.AssignmentRequest, int64, error) {
	var requests []models.AssignmentRequest
	var total int64

	query := applyRequestFilter(r.db.Model(&models.AssignmentRequest{}), filter)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order(orderClause(filter)).Limit(limit).Offset(offset).Find(&requests).Error
	return requests, total, err
}

func applyRequestFilter(query *gorm.DB, f RequestFilter) *gorm.DB {
	if f.Status != nil {
		query = query.Where("status = ?", *f.Status)
	}
	if f.Type != nil {
		query = query.Where("assignment_type = ?", *f.Type)
	}
	if f.PriorityLevel != nil {
		query = query.Where("priority_level = ?", *f.PriorityLevel)
	}
	if f.RequesterID != "" {
		query = query.Where("requester_id = ?", f.RequesterID)
	}
	if f.ProjectID != nil {
		query = query.Where("project_id = ?", *f.ProjectID)
	}
	if f.TeamID != nil {
		query = query.Where("team_id = ?", *f.TeamID)
	}
	if f.CrewID != nil {
		query = query.Where("crew_id = ?", *f.CrewID)
	}
	if f.StartFrom != nil {
		query = query.Where("start_date >= ?", *f.StartFrom)
	}
	if f.StartTo != nil {
		query = query.Where("start_date <= ?", *f.StartTo)
	}
	if f.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *f.CreatedFrom)
	}
	if f.CreatedTo != nil {
		query = query.Where("created_at <= ?", *f.CreatedTo)
	}
	return query
}

func orderClause(f RequestFilter) string {
	column, ok := sortColumns[f.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if f.SortOrder == "asc" {
		direction = "ASC"
	}
	// id breaks ties so pages are stable
	return column + " " + direction + ", id " + direction
}

// Update saves every column if the stored version still matches, then bumps the version
func (r *AssignmentRequestRepository) Update(request *models.AssignmentRequest) error {
	expected := request.Version
	request.Version = expected + 1

	res := r.db.Model(request).
		Where("version = ?", expected).
		Select("*").
		Omit("id", "created_at", clause.Associations).
		Updates(request)
	if res.Error != nil {
		request.Version = expected
		return res.Error
	}
	if res.RowsAffected == 0 {
		request.Version = expected
		return ErrVersionConflict
	}
	return nil
}

func createdRange(query *gorm.DB, from, to *time.Time) *gorm.DB {
	if from != nil {
		query = query.Where("created_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("created_at <= ?", *to)
	}
	return query
}

// CountByStatus returns request counts keyed by status
func (r *AssignmentRequestRepository) CountByStatus(from, to *time.Time) (map[string]int64, error) {
	return r.countBy("status", from, to)
}

// CountByType returns request counts keyed by assignment type
func (r *AssignmentRequestRepository) CountByType(from, to *time.Time) (map[string]int64, error) {
	return r.countBy("assignment_type", from, to)
}

func (r *AssignmentRequestRepository) countBy(column string, from, to *time.Time) (map[string]int64, error) {
	stats := make(map[string]int64)

	var results []struct {
		Key   string
		Count int64
	}

	err := createdRange(r.db.Model(&models.AssignmentRequest{}), from, to).
		Select(column + " AS key, COUNT(*) AS count").
		Group(column).
		Find(&results).Error
	if err != nil {
		return nil, err
	}

	var total int64
	for _, result := range results {
		stats[result.Key] = result.Count
		total += result.Count
	}
	stats["total"] = total

	return stats, nil
}

// CountByCrew counts requests for a crew, optionally restricted to one status
func (r *AssignmentRequestRepository) CountByCrew(crewID uuid.UUID, status *models.AssignmentStatus) (int64, error) {
	var count int64
	query := r.db.Model(&models.AssignmentRequest{}).Where("crew_id = ?", crewID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	err := query.Count(&count).Error
	return count, err
}

// AverageApprovalHours averages the time from creation to the final approving decision
func (r *AssignmentRequestRepository) AverageApprovalHours(from, to *time.Time) (float64, error) {
	var avg *float64

	final := r.db.Model(&models.ApprovalRecord{}).
		Select("request_id, MAX(decided_at) AS decided_at").
		Where("decision = ?", models.ApprovalDecisionApproved).
		Group("request_id")

	query := r.db.Table("assignment_requests AS r").
		Select("AVG(EXTRACT(EPOCH FROM (a.decided_at - r.created_at)) / 3600.0)").
		Joins("JOIN (?) AS a ON a.request_id = r.id", final).
		Where("r.status IN ?", []models.AssignmentStatus{
			models.AssignmentStatusApproved,
			models.AssignmentStatusInProgress,
			models.AssignmentStatusCompleted,
		})
	if from != nil {
		query = query.Where("r.created_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("r.created_at <= ?", *to)
	}

	if err := query.Scan(&avg).Error; err != nil {
		return 0, err
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}
