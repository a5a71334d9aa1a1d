package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"assignment-workflow-backend/internal/database/models"
	"assignment-workflow-backend/internal/directory"
	apperrors "assignment-workflow-backend/internal/errors"
	"assignment-workflow-backend/internal/lock"
	"assignment-workflow-backend/internal/logger"
	"assignment-workflow-backend/internal/notify"
	"assignment-workflow-backend/internal/observability"
	"assignment-workflow-backend/internal/repository"
	"assignment-workflow-backend/internal/workflow"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"
)

// AssignmentService composes validation, capacity admission, routing and the
// workflow engine into the request lifecycle
type AssignmentService struct {
	store      repository.StoreInterface
	validator  *Validator
	planner    *CapacityPlanner
	router     *ApprovalRouter
	engine     *WorkflowEngine
	audit      *AuditTrail
	identities directory.IdentityDirectory
	resources  directory.ResourceDirectory
	locker     lock.Locker
	events     *notify.Dispatcher
	cfg        workflow.Config
}

var _ AssignmentServiceInterface = (*AssignmentService)(nil)

// Option customizes an AssignmentService
type Option func(*AssignmentService)

// WithClock replaces the time source of every component
func WithClock(now func() time.Time) Option {
	return func(s *AssignmentService) {
		s.validator.now = now
		s.planner.now = now
		s.engine.now = now
		s.audit.now = now
	}
}

// NewAssignmentService creates the orchestrator. cfg must pass workflow.Config.Validate.
func NewAssignmentService(
	store repository.StoreInterface,
	identities directory.IdentityDirectory,
	resources directory.ResourceDirectory,
	locker lock.Locker,
	events *notify.Dispatcher,
	cfg workflow.Config,
	validate *validator.Validate,
	opts ...Option,
) *AssignmentService {
	machine := workflow.NewMachine(cfg)
	planner := NewCapacityPlanner(cfg)
	router := NewApprovalRouter(machine, identities)
	audit := NewAuditTrail()

	s := &AssignmentService{
		store:      store,
		validator:  NewValidator(validate, resources),
		planner:    planner,
		router:     router,
		engine:     NewWorkflowEngine(machine, router, planner, audit),
		audit:      audit,
		identities: identities,
		resources:  resources,
		locker:     locker,
		events:     events,
		cfg:        cfg,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateRequest validates a draft, admits it against crew capacity and opens
// its approval chain. Request, allocation, first approval and initial state
// commit together.
func (s *AssignmentService) CreateRequest(ctx context.Context, draft *CreateAssignmentRequest, requesterID string) (view *AssignmentRequestView, err error) {
	ctx, span := observability.StartSpan(ctx, "assignment.create",
		attribute.String("assignment.type", string(draft.AssignmentType)))
	defer func() { observability.EndSpan(span, err) }()

	if requesterID == "" {
		return nil, apperrors.ErrActorMissing
	}

	verrs, err := s.validator.Validate(ctx, draft)
	if err != nil {
		return nil, err
	}
	if len(verrs) > 0 {
		return nil, verrs
	}

	var requirements json.RawMessage
	if draft.Requirements != nil {
		if requirements, err = json.Marshal(draft.Requirements); err != nil {
			return nil, fmt.Errorf("failed to marshal requirements: %w", err)
		}
	}

	if draft.CrewID != nil {
		unlock, err := s.locker.Acquire(ctx, lock.CrewKey(draft.CrewID.String()))
		if err != nil {
			return nil, err
		}
		defer unlock()
	}

	var req *models.AssignmentRequest
	var state *models.WorkflowState
	err = s.store.Transaction(ctx, func(repos *repository.Repositories) error {
		req = &models.AssignmentRequest{
			RequesterID:         requesterID,
			AssignmentType:      draft.AssignmentType,
			PriorityLevel:       draft.PriorityLevel,
			RequestedRole:       draft.RequestedRole,
			ProjectID:           draft.ProjectID,
			TeamID:              draft.TeamID,
			CrewID:              draft.CrewID,
			Region:              draft.Region,
			StartDate:           draft.StartDate,
			EndDate:             draft.EndDate,
			Description:         draft.Description,
			Requirements:        requirements,
			RequiredCapacityPct: draft.RequiredCapacityPct,
			Status:              models.AssignmentStatusPending,
			Comments:            draft.Comments,
		}

		if err := s.planner.Admit(repos, req); err != nil {
			return err
		}
		if err := repos.Requests.Create(req); err != nil {
			return fmt.Errorf("failed to create assignment request: %w", err)
		}
		if _, err := s.audit.Append(repos, req.ID, FieldStatus, nil, string(req.Status), "request created", requesterID); err != nil {
			return err
		}
		if _, err := s.planner.Reserve(repos, req); err != nil {
			return err
		}
		var err error
		state, _, err = s.engine.Initialize(ctx, repos, req, requesterID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.publish(state)
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"request_id": req.ID.String(),
		"type":       string(req.AssignmentType),
		"state":      state.CurrentState,
	}).Info("assignment request created")

	return s.view(ctx, req, state.CurrentState), nil
}

// BulkCreate creates each draft independently and reports per-draft failures
func (s *AssignmentService) BulkCreate(ctx context.Context, drafts []CreateAssignmentRequest, requesterID string) (*BulkCreateResult, error) {
	if len(drafts) == 0 {
		return nil, apperrors.NewValidationError("requests", "at least one request is required")
	}
	if len(drafts) > s.cfg.MaxBulkCreate {
		return nil, apperrors.ErrBulkLimitExceeded
	}

	result := &BulkCreateResult{Created: []AssignmentRequestView{}, Errors: []BulkCreateError{}}
	for i := range drafts {
		view, err := s.CreateRequest(ctx, &drafts[i], requesterID)
		if err != nil {
			result.Errors = append(result.Errors, BulkCreateError{Index: i, Error: err.Error()})
			continue
		}
		result.Created = append(result.Created, *view)
	}
	return result, nil
}

// GetRequest returns the view of one request
func (s *AssignmentService) GetRequest(ctx context.Context, id uuid.UUID) (*AssignmentRequestView, error) {
	repos := s.store.Repositories(ctx)
	req, err := s.loadRequest(repos, id)
	if err != nil {
		return nil, err
	}
	current := ""
	if state, err := repos.States.GetCurrent(id); err == nil {
		current = state.CurrentState
	}
	return s.view(ctx, req, current), nil
}

// ListRequests searches requests with filters, sorting and paging
func (s *AssignmentService) ListRequests(ctx context.Context, params *ListRequestsParams) (*AssignmentListResponse, error) {
	page, pageSize := normalizePage(params.Page, params.PageSize)
	repos := s.store.Repositories(ctx)

	filter := repository.RequestFilter{
		Status:        params.Status,
		Type:          params.Type,
		PriorityLevel: params.PriorityLevel,
		RequesterID:   params.RequesterID,
		ProjectID:     params.ProjectID,
		TeamID:        params.TeamID,
		CrewID:        params.CrewID,
		StartFrom:     params.StartFrom,
		StartTo:       params.StartTo,
		CreatedFrom:   params.CreatedFrom,
		CreatedTo:     params.CreatedTo,
		SortBy:        params.SortBy,
		SortOrder:     params.SortOrder,
	}

	requests, total, err := repos.Requests.List(filter, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignment requests: %w", err)
	}

	views := make([]AssignmentRequestView, 0, len(requests))
	for i := range requests {
		views = append(views, *s.view(ctx, &requests[i], ""))
	}

	return &AssignmentListResponse{Requests: views, Total: total, Page: page, PageSize: pageSize}, nil
}

// UpdateRequest edits a pending request. Changes to crew, window or required
// capacity re-run admission and replace the reservation.
func (s *AssignmentService) UpdateRequest(ctx context.Context, id uuid.UUID, patch *UpdateAssignmentRequest, actorID string) (view *AssignmentRequestView, err error) {
	ctx, span := observability.StartSpan(ctx, "assignment.update", attribute.String("assignment.id", id.String()))
	defer func() { observability.EndSpan(span, err) }()

	if actorID == "" {
		return nil, apperrors.ErrActorMissing
	}

	unlock, err := s.locker.Acquire(ctx, lock.RequestKey(id.String()))
	if err != nil {
		return nil, err
	}
	defer unlock()

	existing, err := s.loadRequest(s.store.Repositories(ctx), id)
	if err != nil {
		return nil, err
	}
	crewID := existing.CrewID
	if patch.CrewID != nil {
		crewID = patch.CrewID
	}
	if patch.touchesCapacity() && crewID != nil {
		unlockCrew, err := s.locker.Acquire(ctx, lock.CrewKey(crewID.String()))
		if err != nil {
			return nil, err
		}
		defer unlockCrew()
	}

	var req *models.AssignmentRequest
	err = s.store.Transaction(ctx, func(repos *repository.Repositories) error {
		var err error
		if req, err = s.loadRequest(repos, id); err != nil {
			return err
		}
		if req.Status != models.AssignmentStatusPending {
			return apperrors.NewStateError("update", string(req.Status))
		}
		if err := s.authorize(ctx, actorID, req.RequesterID, directory.ActionManageRequest, apperrors.ErrNotRequester); err != nil {
			return err
		}

		var requirements map[string]interface{}
		if len(req.Requirements) > 0 {
			if err := json.Unmarshal(req.Requirements, &requirements); err != nil {
				return fmt.Errorf("failed to decode requirements: %w", err)
			}
		}
		draft := draftFrom(req, requirements)
		applyPatch(draft, patch)

		verrs, err := s.validator.validateDraft(ctx, draft, patch.StartDate != nil)
		if err != nil {
			return err
		}
		if len(verrs) > 0 {
			return verrs
		}

		before := *req
		req.PriorityLevel = draft.PriorityLevel
		req.RequestedRole = draft.RequestedRole
		req.ProjectID = draft.ProjectID
		req.TeamID = draft.TeamID
		req.CrewID = draft.CrewID
		req.Region = draft.Region
		req.StartDate = draft.StartDate
		req.EndDate = draft.EndDate
		req.Description = draft.Description
		req.RequiredCapacityPct = draft.RequiredCapacityPct
		req.Comments = draft.Comments
		if patch.Requirements != nil {
			if req.Requirements, err = json.Marshal(draft.Requirements); err != nil {
				return fmt.Errorf("failed to marshal requirements: %w", err)
			}
		}

		if patch.touchesCapacity() {
			if _, err := s.planner.Release(repos, req.ID); err != nil {
				return err
			}
			if err := s.planner.Admit(repos, req); err != nil {
				return err
			}
			if _, err := s.planner.Reserve(repos, req); err != nil {
				return err
			}
		}

		if err := repos.Requests.Update(req); err != nil {
			if errors.Is(err, repository.ErrVersionConflict) {
				return apperrors.NewStaleStateError("assignment request", id.String())
			}
			return fmt.Errorf("failed to update assignment request: %w", err)
		}

		reason := patch.Reason
		if reason == "" {
			reason = "request updated"
		}
		return s.audit.RecordChanges(repos, &before, req, reason, actorID)
	})
	if err != nil {
		return nil, err
	}

	return s.GetRequest(ctx, req.ID)
}

// SubmitDecision records a decision on the pending approval level of a request
func (s *AssignmentService) SubmitDecision(ctx context.Context, requestID uuid.UUID, approverID string, decision *DecisionRequest) (approval *models.ApprovalRecord, err error) {
	ctx, span := observability.StartSpan(ctx, "assignment.decide",
		attribute.String("assignment.id", requestID.String()),
		attribute.String("approval.decision", string(decision.Decision)))
	defer func() { observability.EndSpan(span, err) }()

	if approverID == "" {
		return nil, apperrors.ErrActorMissing
	}
	if !decision.Decision.IsValid() {
		return nil, apperrors.ErrInvalidDecision
	}
	if err := s.validator.ValidateStruct(decision); err != nil {
		return nil, err
	}

	unlock, err := s.locker.Acquire(ctx, lock.RequestKey(requestID.String()))
	if err != nil {
		return nil, err
	}
	defer unlock()

	existing, err := s.loadRequest(s.store.Repositories(ctx), requestID)
	if err != nil {
		return nil, err
	}
	if existing.CrewID != nil {
		unlockCrew, err := s.locker.Acquire(ctx, lock.CrewKey(existing.CrewID.String()))
		if err != nil {
			return nil, err
		}
		defer unlockCrew()
	}

	var result *TransitionResult
	err = s.store.Transaction(ctx, func(repos *repository.Repositories) error {
		req, err := s.loadRequest(repos, requestID)
		if err != nil {
			return err
		}
		if req.Status != models.AssignmentStatusPending {
			return apperrors.NewStateError("decide", string(req.Status))
		}

		pending, err := repos.Approvals.GetPendingByRequestID(requestID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewStateError("decide", "without a pending approval")
			}
			return fmt.Errorf("failed to load pending approval: %w", err)
		}
		if pending.ApproverID != approverID {
			if err := s.authorize(ctx, approverID, "", directory.ActionApprove(pending.ApproverRole), apperrors.ErrNotAssignedActor); err != nil {
				return err
			}
		}

		result, err = s.engine.Transition(ctx, repos, req, pending, decision, approverID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.publish(result.State)
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"request_id": requestID.String(),
		"level":      result.Approval.Level,
		"decision":   string(decision.Decision),
		"state":      result.State.CurrentState,
	})
	if len(result.Overbooked) > 0 {
		log = log.WithField("overbooked_allocations", len(result.Overbooked))
	}
	log.Info("approval decided")

	return result.Approval, nil
}

// GetPendingApprovals lists the approvals waiting on approverID
func (s *AssignmentService) GetPendingApprovals(ctx context.Context, approverID string, page, pageSize int) (*PendingApprovalsResponse, error) {
	if approverID == "" {
		return nil, apperrors.ErrActorMissing
	}
	page, pageSize = normalizePage(page, pageSize)

	approvals, total, err := s.store.Repositories(ctx).Approvals.GetPendingByApprover(approverID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending approvals: %w", err)
	}
	if approvals == nil {
		approvals = []models.ApprovalRecord{}
	}
	return &PendingApprovalsResponse{Approvals: approvals, Total: total, Page: page, PageSize: pageSize}, nil
}

// GetWorkflowStatus returns the request with its state log, approvals and the approver it waits on
func (s *AssignmentService) GetWorkflowStatus(ctx context.Context, id uuid.UUID) (*WorkflowStatus, error) {
	repos := s.store.Repositories(ctx)
	req, err := s.loadRequest(repos, id)
	if err != nil {
		return nil, err
	}

	states, err := repos.States.GetByRequestID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load workflow history: %w", err)
	}
	approvals, err := repos.Approvals.GetByRequestID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load approvals: %w", err)
	}

	status := &WorkflowStatus{History: states, Approvals: approvals}
	if len(states) > 0 {
		status.CurrentState = states[len(states)-1].CurrentState
	}
	status.Request = *s.view(ctx, req, status.CurrentState)

	if req.Status == models.AssignmentStatusPending {
		for _, a := range approvals {
			if a.IsPending() {
				status.NextApprover = &NextApprover{ApproverID: a.ApproverID, Role: a.ApproverRole, Level: a.Level}
				break
			}
		}
	}
	return status, nil
}

// GetHistory returns the audit trail of a request
func (s *AssignmentService) GetHistory(ctx context.Context, id uuid.UUID) ([]models.AssignmentHistory, error) {
	repos := s.store.Repositories(ctx)
	if _, err := s.loadRequest(repos, id); err != nil {
		return nil, err
	}
	return s.audit.History(repos, id)
}

// CancelRequest cancels a pending or approved request and releases its capacity atomically
func (s *AssignmentService) CancelRequest(ctx context.Context, id uuid.UUID, actorID, reason string) (*AssignmentRequestView, error) {
	return s.moveLifecycle(ctx, id, actorID, reason, workflow.StateCancelled, "cancel",
		directory.ActionCancelRequest,
		models.AssignmentStatusPending, models.AssignmentStatusApproved)
}

// ScheduleRequest moves an approved scheduled-type request to scheduled
func (s *AssignmentService) ScheduleRequest(ctx context.Context, id uuid.UUID, actorID, reason string) (*AssignmentRequestView, error) {
	return s.moveLifecycle(ctx, id, actorID, reason, workflow.StateScheduled, "schedule",
		directory.ActionManageRequest, models.AssignmentStatusApproved)
}

// StartRequest moves an approved or scheduled request to in_progress
func (s *AssignmentService) StartRequest(ctx context.Context, id uuid.UUID, actorID, reason string) (*AssignmentRequestView, error) {
	return s.moveLifecycle(ctx, id, actorID, reason, workflow.StateInProgress, "start",
		directory.ActionManageRequest, models.AssignmentStatusApproved)
}

// CompleteRequest finishes an in-progress request
func (s *AssignmentService) CompleteRequest(ctx context.Context, id uuid.UUID, actorID, reason string) (*AssignmentRequestView, error) {
	return s.moveLifecycle(ctx, id, actorID, reason, workflow.StateCompleted, "complete",
		directory.ActionManageRequest, models.AssignmentStatusInProgress)
}

func (s *AssignmentService) moveLifecycle(ctx context.Context, id uuid.UUID, actorID, reason, to, operation, action string, allowed ...models.AssignmentStatus) (view *AssignmentRequestView, err error) {
	ctx, span := observability.StartSpan(ctx, "assignment."+operation, attribute.String("assignment.id", id.String()))
	defer func() { observability.EndSpan(span, err) }()

	if actorID == "" {
		return nil, apperrors.ErrActorMissing
	}

	unlock, err := s.locker.Acquire(ctx, lock.RequestKey(id.String()))
	if err != nil {
		return nil, err
	}
	defer unlock()

	var req *models.AssignmentRequest
	var state *models.WorkflowState
	err = s.store.Transaction(ctx, func(repos *repository.Repositories) error {
		var err error
		if req, err = s.loadRequest(repos, id); err != nil {
			return err
		}
		if !statusIn(req.Status, allowed) {
			return apperrors.NewStateError(operation, string(req.Status))
		}
		if err := s.authorize(ctx, actorID, req.RequesterID, action, apperrors.ErrNotRequester); err != nil {
			return err
		}
		state, err = s.engine.Move(repos, req, to, operation, reason, actorID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.publish(state)
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"request_id": id.String(),
		"state":      state.CurrentState,
	}).Info("assignment request " + operation)

	return s.view(ctx, req, state.CurrentState), nil
}

// CheckCapacity reports crew availability for a window
func (s *AssignmentService) CheckCapacity(ctx context.Context, crewID uuid.UUID, start, end time.Time) (*CapacityResult, error) {
	ok, err := s.resources.Exists(ctx, directory.KindCrew, crewID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify crew: %w", err)
	}
	if !ok {
		return nil, apperrors.ErrTradeCrewNotFound
	}
	return s.planner.CheckAvailability(s.store.Repositories(ctx), crewID, start, end)
}

// GetForecast returns the daily utilization series of one crew, or of all crews
func (s *AssignmentService) GetForecast(ctx context.Context, crewID *uuid.UUID, days int) (*ForecastResult, error) {
	if crewID != nil {
		ok, err := s.resources.Exists(ctx, directory.KindCrew, *crewID)
		if err != nil {
			return nil, fmt.Errorf("failed to verify crew: %w", err)
		}
		if !ok {
			return nil, apperrors.ErrTradeCrewNotFound
		}
	}
	return s.planner.Forecast(s.store.Repositories(ctx), crewID, days)
}

// GetCrewUtilization summarizes the given crews, or every active crew when none are given
func (s *AssignmentService) GetCrewUtilization(ctx context.Context, crewIDs []uuid.UUID) ([]CrewUtilization, error) {
	if len(crewIDs) == 0 {
		ids, err := s.resources.ActiveCrewIDs(ctx)
		if err != nil {
			return nil, err
		}
		crewIDs = ids
	}

	repos := s.store.Repositories(ctx)
	out := make([]CrewUtilization, 0, len(crewIDs))
	for _, crewID := range crewIDs {
		util, err := s.planner.CrewUtilization(repos, crewID)
		if err != nil {
			return nil, err
		}
		if name, err := s.resources.Name(ctx, directory.KindCrew, crewID); err == nil {
			util.CrewName = name
		} else if !apperrors.IsNotFound(err) {
			return nil, err
		}
		out = append(out, *util)
	}
	return out, nil
}

// GetStatistics aggregates requests created within [from, to]
func (s *AssignmentService) GetStatistics(ctx context.Context, from, to *time.Time) (*StatisticsResponse, error) {
	if from != nil && to != nil && to.Before(*from) {
		return nil, apperrors.ErrInvalidTimeRange
	}
	repos := s.store.Repositories(ctx)

	byStatus, err := repos.Requests.CountByStatus(from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to count requests by status: %w", err)
	}
	byType, err := repos.Requests.CountByType(from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to count requests by type: %w", err)
	}
	avg, err := repos.Requests.AverageApprovalHours(from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to compute approval time: %w", err)
	}

	total := byStatus["total"]
	delete(byStatus, "total")
	delete(byType, "total")

	return &StatisticsResponse{
		Total:                total,
		ByStatus:             byStatus,
		ByType:               byType,
		AverageApprovalHours: round2(avg),
	}, nil
}

func (s *AssignmentService) loadRequest(repos *repository.Repositories, id uuid.UUID) (*models.AssignmentRequest, error) {
	req, err := repos.Requests.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssignmentRequestNotFound
		}
		return nil, fmt.Errorf("failed to get assignment request: %w", err)
	}
	return req, nil
}

// authorize passes when actorID is owner or the directory grants action
func (s *AssignmentService) authorize(ctx context.Context, actorID, owner, action string, denied error) error {
	if owner != "" && actorID == owner {
		return nil
	}
	ok, err := s.identities.IsAuthorized(ctx, actorID, action)
	if err != nil {
		return fmt.Errorf("failed to check authorization: %w", err)
	}
	if !ok {
		return denied
	}
	return nil
}

func (s *AssignmentService) publish(state *models.WorkflowState) {
	if state == nil {
		return
	}
	s.events.Publish(notify.Event{
		RequestID:  state.RequestID,
		State:      state.CurrentState,
		ActorID:    state.ActorID,
		OccurredAt: state.CreatedAt,
	})
}

// view projects a request for display; directory names are best effort
func (s *AssignmentService) view(ctx context.Context, req *models.AssignmentRequest, currentState string) *AssignmentRequestView {
	v := &AssignmentRequestView{
		ID:                  req.ID,
		RequesterID:         req.RequesterID,
		AssignmentType:      req.AssignmentType,
		PriorityLevel:       req.PriorityLevel,
		RequestedRole:       req.RequestedRole,
		ProjectID:           req.ProjectID,
		TeamID:              req.TeamID,
		CrewID:              req.CrewID,
		Region:              req.Region,
		StartDate:           req.StartDate,
		EndDate:             req.EndDate,
		Description:         req.Description,
		RequiredCapacityPct: req.RequiredCapacityPct,
		Status:              req.Status,
		CurrentState:        currentState,
		Comments:            req.Comments,
		ApprovedAt:          req.ApprovedAt,
		CreatedAt:           req.CreatedAt,
		UpdatedAt:           req.UpdatedAt,
	}
	if len(req.Requirements) > 0 {
		if err := json.Unmarshal(req.Requirements, &v.Requirements); err != nil {
			v.Requirements = nil
			logger.WithContext(ctx).WithError(err).WithField("request_id", req.ID.String()).Warn("stored requirements are not valid JSON")
		}
	}

	names := []struct {
		kind directory.ResourceKind
		id   *uuid.UUID
		dst  *string
	}{
		{directory.KindCrew, req.CrewID, &v.CrewName},
		{directory.KindTeam, req.TeamID, &v.TeamName},
		{directory.KindProject, req.ProjectID, &v.ProjectName},
	}
	for _, n := range names {
		if n.id == nil {
			continue
		}
		name, err := s.resources.Name(ctx, n.kind, *n.id)
		if err != nil {
			logger.WithContext(ctx).WithError(err).WithField("id", n.id.String()).Debug("could not resolve " + string(n.kind) + " name")
			continue
		}
		*n.dst = name
	}
	return v
}

func statusIn(status models.AssignmentStatus, allowed []models.AssignmentStatus) bool {
	for _, a := range allowed {
		if status == a {
			return true
		}
	}
	return false
}

// normalizePage applies the same bounds the list endpoints use
func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
