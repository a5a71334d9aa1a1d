package service_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"assignment-workflow-backend/internal/database/models"
	"assignment-workflow-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// memStore is an in-memory repository.StoreInterface. Transactions are
// serialized and roll back every table when fn fails.
type memStore struct {
	txMu sync.Mutex
	mu   sync.RWMutex
	now  func() time.Time

	requests    map[uuid.UUID]models.AssignmentRequest
	approvals   []models.ApprovalRecord
	states      []models.WorkflowState
	allocations []models.CapacityAllocation
	history     []models.AssignmentHistory
}

func newMemStore(now func() time.Time) *memStore {
	return &memStore{now: now, requests: make(map[uuid.UUID]models.AssignmentRequest)}
}

func (s *memStore) Repositories(context.Context) *repository.Repositories {
	return &repository.Repositories{
		Requests:    &memRequests{s},
		Approvals:   &memApprovals{s},
		States:      &memStates{s},
		Allocations: &memAllocations{s},
		History:     &memHistory{s},
	}
}

func (s *memStore) Transaction(ctx context.Context, fn func(repos *repository.Repositories) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	requests := make(map[uuid.UUID]models.AssignmentRequest, len(s.requests))
	for k, v := range s.requests {
		requests[k] = v
	}
	approvals := append([]models.ApprovalRecord(nil), s.approvals...)
	states := append([]models.WorkflowState(nil), s.states...)
	allocations := append([]models.CapacityAllocation(nil), s.allocations...)
	history := append([]models.AssignmentHistory(nil), s.history...)
	s.mu.RUnlock()

	if err := fn(s.Repositories(ctx)); err != nil {
		s.mu.Lock()
		s.requests, s.approvals, s.states, s.allocations, s.history = requests, approvals, states, allocations, history
		s.mu.Unlock()
		return err
	}
	return nil
}

// pending returns the approvals of a request still awaiting a decision
func (s *memStore) pending(requestID uuid.UUID) []models.ApprovalRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.ApprovalRecord
	for _, a := range s.approvals {
		if a.RequestID == requestID && a.IsPending() {
			out = append(out, a)
		}
	}
	return out
}

func (s *memStore) allocationsOf(requestID uuid.UUID) []models.CapacityAllocation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.CapacityAllocation
	for _, a := range s.allocations {
		if a.RequestID == requestID && !a.Released() {
			out = append(out, a)
		}
	}
	return out
}

func (s *memStore) releasedOf(requestID uuid.UUID) []models.CapacityAllocation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.CapacityAllocation
	for _, a := range s.allocations {
		if a.RequestID == requestID && a.Released() {
			out = append(out, a)
		}
	}
	return out
}

func (s *memStore) approvalsOf(requestID uuid.UUID) []models.ApprovalRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.ApprovalRecord
	for _, a := range s.approvals {
		if a.RequestID == requestID {
			out = append(out, a)
		}
	}
	return out
}

// seedAllocation inserts a confirmed allocation owned by a synthetic request
func (s *memStore) seedAllocation(crewID uuid.UUID, pct int, start, end time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	at := s.now()
	a := models.CapacityAllocation{
		RequestID:            uuid.New(),
		CrewID:               crewID,
		AllocatedUnits:       1,
		AllocationPercentage: pct,
		StartDate:            start,
		EndDate:              end,
		Confirmed:            true,
		ConfirmedAt:          &at,
	}
	a.ID = uuid.New()
	s.allocations = append(s.allocations, a)
}

type memRequests struct{ s *memStore }

func (r *memRequests) Create(req *models.AssignmentRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	if req.Version == 0 {
		req.Version = 1
	}
	req.CreatedAt = r.s.now()
	req.UpdatedAt = req.CreatedAt
	r.s.requests[req.ID] = *req
	return nil
}

func (r *memRequests) GetByID(id uuid.UUID) (*models.AssignmentRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	req, ok := r.s.requests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &req, nil
}

func (r *memRequests) List(filter repository.RequestFilter, limit, offset int) ([]models.AssignmentRequest, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []models.AssignmentRequest
	for _, req := range r.s.requests {
		if filter.Status != nil && req.Status != *filter.Status {
			continue
		}
		if filter.Type != nil && req.AssignmentType != *filter.Type {
			continue
		}
		if filter.RequesterID != "" && req.RequesterID != filter.RequesterID {
			continue
		}
		if filter.CrewID != nil && (req.CrewID == nil || *req.CrewID != *filter.CrewID) {
			continue
		}
		out = append(out, req)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.String() < out[j].ID.String() })
	total := int64(len(out))
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, total, nil
}

func (r *memRequests) Update(req *models.AssignmentRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.requests[req.ID]
	if !ok || stored.Version != req.Version {
		return repository.ErrVersionConflict
	}
	req.Version++
	req.UpdatedAt = r.s.now()
	r.s.requests[req.ID] = *req
	return nil
}

func (r *memRequests) countBy(key func(models.AssignmentRequest) string) map[string]int64 {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := map[string]int64{}
	for _, req := range r.s.requests {
		out[key(req)]++
		out["total"]++
	}
	return out
}

func (r *memRequests) CountByStatus(from, to *time.Time) (map[string]int64, error) {
	return r.countBy(func(req models.AssignmentRequest) string { return string(req.Status) }), nil
}

func (r *memRequests) CountByType(from, to *time.Time) (map[string]int64, error) {
	return r.countBy(func(req models.AssignmentRequest) string { return string(req.AssignmentType) }), nil
}

func (r *memRequests) CountByCrew(crewID uuid.UUID, status *models.AssignmentStatus) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var n int64
	for _, req := range r.s.requests {
		if req.CrewID != nil && *req.CrewID == crewID && (status == nil || req.Status == *status) {
			n++
		}
	}
	return n, nil
}

func (r *memRequests) AverageApprovalHours(from, to *time.Time) (float64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var sum float64
	var n int
	for _, req := range r.s.requests {
		if req.ApprovedAt != nil {
			sum += req.ApprovedAt.Sub(req.CreatedAt).Hours()
			n++
		}
	}
	if n == 0 {
		return 0, nil
	}
	return sum / float64(n), nil
}

type memApprovals struct{ s *memStore }

func (r *memApprovals) Create(record *models.ApprovalRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range r.s.approvals {
		if a.RequestID == record.RequestID && a.Level == record.Level {
			return errors.New("duplicate key value violates unique constraint \"idx_approval_request_level\"")
		}
	}
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	record.CreatedAt = r.s.now()
	r.s.approvals = append(r.s.approvals, *record)
	return nil
}

func (r *memApprovals) GetByID(id uuid.UUID) (*models.ApprovalRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, a := range r.s.approvals {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memApprovals) GetByRequestID(requestID uuid.UUID) ([]models.ApprovalRecord, error) {
	out := r.s.approvalsOf(requestID)
	sort.Slice(out, func(i, j int) bool { return out[i].Level < out[j].Level })
	return out, nil
}

func (r *memApprovals) GetPendingByRequestID(requestID uuid.UUID) (*models.ApprovalRecord, error) {
	pending := r.s.pending(requestID)
	if len(pending) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &pending[len(pending)-1], nil
}

func (r *memApprovals) GetPendingByApprover(approverID string, limit, offset int) ([]models.ApprovalRecord, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []models.ApprovalRecord
	for _, a := range r.s.approvals {
		req := r.s.requests[a.RequestID]
		if a.ApproverID == approverID && a.IsPending() && req.Status == models.AssignmentStatusPending {
			out = append(out, a)
		}
	}
	return out, int64(len(out)), nil
}

func (r *memApprovals) CountByRequestID(requestID uuid.UUID) (int64, error) {
	return int64(len(r.s.approvalsOf(requestID))), nil
}

func (r *memApprovals) Decide(record *models.ApprovalRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, a := range r.s.approvals {
		if a.ID == record.ID {
			if !a.IsPending() {
				return repository.ErrVersionConflict
			}
			r.s.approvals[i].Decision = record.Decision
			r.s.approvals[i].Comments = record.Comments
			r.s.approvals[i].DecidedBy = record.DecidedBy
			r.s.approvals[i].DecidedAt = record.DecidedAt
			return nil
		}
	}
	return repository.ErrVersionConflict
}

type memStates struct{ s *memStore }

func (r *memStates) Append(state *models.WorkflowState) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	seq := 0
	for _, st := range r.s.states {
		if st.RequestID == state.RequestID && st.Sequence > seq {
			seq = st.Sequence
		}
	}
	state.Sequence = seq + 1
	state.ID = uuid.New()
	state.CreatedAt = r.s.now()
	r.s.states = append(r.s.states, *state)
	return nil
}

func (r *memStates) GetCurrent(requestID uuid.UUID) (*models.WorkflowState, error) {
	states, _ := r.GetByRequestID(requestID)
	if len(states) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &states[len(states)-1], nil
}

func (r *memStates) GetByRequestID(requestID uuid.UUID) ([]models.WorkflowState, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []models.WorkflowState
	for _, st := range r.s.states {
		if st.RequestID == requestID {
			out = append(out, st)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Sequence < out[j].Sequence })
	return out, nil
}

type memAllocations struct{ s *memStore }

func (r *memAllocations) Create(a *models.CapacityAllocation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	a.CreatedAt = r.s.now()
	r.s.allocations = append(r.s.allocations, *a)
	return nil
}

func (r *memAllocations) GetByRequestID(requestID uuid.UUID) ([]models.CapacityAllocation, error) {
	return r.s.allocationsOf(requestID), nil
}

func (r *memAllocations) FindOverlapping(crewID *uuid.UUID, start, end time.Time, confirmedOnly bool) ([]models.CapacityAllocation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []models.CapacityAllocation
	for _, a := range r.s.allocations {
		if a.Released() || (crewID != nil && a.CrewID != *crewID) {
			continue
		}
		if confirmedOnly && !a.Confirmed {
			continue
		}
		if a.Overlaps(start, end) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memAllocations) GetConfirmedByCrew(crewID uuid.UUID) ([]models.CapacityAllocation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []models.CapacityAllocation
	for _, a := range r.s.allocations {
		if a.CrewID == crewID && a.Confirmed && !a.Released() {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memAllocations) Confirm(requestID uuid.UUID, at time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for i, a := range r.s.allocations {
		if a.RequestID == requestID && !a.Confirmed && !a.Released() {
			r.s.allocations[i].Confirmed = true
			r.s.allocations[i].ConfirmedAt = &at
			n++
		}
	}
	return n, nil
}

func (r *memAllocations) MarkOverbooked(ids []uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, id := range ids {
		for i, a := range r.s.allocations {
			if a.ID == id {
				r.s.allocations[i].Overbooked = true
			}
		}
	}
	return nil
}

func (r *memAllocations) ReleaseByRequestID(requestID uuid.UUID, at time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for i, a := range r.s.allocations {
		if a.RequestID == requestID && !a.Released() {
			released := at
			r.s.allocations[i].ReleasedAt = &released
			n++
		}
	}
	return n, nil
}

func (r *memAllocations) GetReleasedByRequestID(requestID uuid.UUID) ([]models.CapacityAllocation, error) {
	return r.s.releasedOf(requestID), nil
}

type memHistory struct{ s *memStore }

func (r *memHistory) Append(entry *models.AssignmentHistory) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	seq := 0
	for _, h := range r.s.history {
		if h.RequestID == entry.RequestID && h.Sequence > seq {
			seq = h.Sequence
		}
	}
	entry.Sequence = seq + 1
	entry.ID = uuid.New()
	r.s.history = append(r.s.history, *entry)
	return nil
}

func (r *memHistory) GetByRequestID(requestID uuid.UUID) ([]models.AssignmentHistory, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []models.AssignmentHistory
	for _, h := range r.s.history {
		if h.RequestID == requestID {
			out = append(out, h)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].ChangedAt.Equal(out[j].ChangedAt) {
			return out[i].ChangedAt.Before(out[j].ChangedAt)
		}
		return out[i].Sequence < out[j].Sequence
	})
	return out, nil
}
