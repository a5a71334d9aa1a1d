package service

import (
	"fmt"
	"strconv"
	"time"

	"assignment-workflow-backend/internal/database/models"
	"assignment-workflow-backend/internal/repository"

	"github.com/google/uuid"
)

// Audited field names
const (
	FieldStatus        = "status"
	FieldPriorityLevel = "priority_level"
	FieldRequestedRole = "requested_role"
	FieldCrewID        = "crew_id"
	FieldStartDate     = "start_date"
	FieldEndDate       = "end_date"
	FieldCapacityPct   = "required_capacity_pct"
	FieldOverbooked    = "overbooked"
)

// AuditTrail appends field-level changes of requests
type AuditTrail struct {
	now func() time.Time
}

// NewAuditTrail creates an audit trail
func NewAuditTrail() *AuditTrail {
	return &AuditTrail{now: time.Now}
}

// Append records one field change
func (a *AuditTrail) Append(repos *repository.Repositories, requestID uuid.UUID, field string, oldValue *string, newValue, reason, actorID string) (*models.AssignmentHistory, error) {
	entry := &models.AssignmentHistory{
		RequestID: requestID,
		FieldName: field,
		OldValue:  oldValue,
		NewValue:  newValue,
		Reason:    reason,
		ActorID:   actorID,
		ChangedAt: a.now(),
	}
	if err := repos.History.Append(entry); err != nil {
		return nil, fmt.Errorf("failed to record %s change: %w", field, err)
	}
	return entry, nil
}

// RecordChanges appends an entry for every tracked field that differs between before and after
func (a *AuditTrail) RecordChanges(repos *repository.Repositories, before, after *models.AssignmentRequest, reason, actorID string) error {
	for _, f := range trackedFields {
		oldValue, newValue := f.value(before), f.value(after)
		if oldValue == newValue {
			continue
		}
		old := oldValue
		if _, err := a.Append(repos, after.ID, f.name, &old, newValue, reason, actorID); err != nil {
			return err
		}
	}
	return nil
}

// History returns a request's changes in the order they happened
func (a *AuditTrail) History(repos *repository.Repositories, requestID uuid.UUID) ([]models.AssignmentHistory, error) {
	entries, err := repos.History.GetByRequestID(requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	return entries, nil
}

type trackedField struct {
	name  string
	value func(*models.AssignmentRequest) string
}

var trackedFields = []trackedField{
	{FieldStatus, func(r *models.AssignmentRequest) string { return string(r.Status) }},
	{FieldPriorityLevel, func(r *models.AssignmentRequest) string { return strconv.Itoa(r.PriorityLevel) }},
	{FieldRequestedRole, func(r *models.AssignmentRequest) string { return r.RequestedRole }},
	{FieldCrewID, func(r *models.AssignmentRequest) string { return uuidString(r.CrewID) }},
	{FieldStartDate, func(r *models.AssignmentRequest) string { return r.StartDate.UTC().Format(time.RFC3339) }},
	{FieldEndDate, func(r *models.AssignmentRequest) string { return timeString(r.EndDate) }},
	{FieldCapacityPct, func(r *models.AssignmentRequest) string { return intString(r.RequiredCapacityPct) }},
}

func uuidString(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}

func timeString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func intString(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
