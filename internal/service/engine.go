package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"assignment-workflow-backend/internal/database/models"
	apperrors "assignment-workflow-backend/internal/errors"
	"assignment-workflow-backend/internal/repository"
	"assignment-workflow-backend/internal/workflow"

	"gorm.io/gorm"
)

// WorkflowEngine drives a request through its approval chain and lifecycle.
// Every method expects repos bound to the caller's transaction.
type WorkflowEngine struct {
	machine *workflow.Machine
	router  *ApprovalRouter
	planner *CapacityPlanner
	audit   *AuditTrail
	now     func() time.Time
}

// NewWorkflowEngine wires the engine to its collaborators
func NewWorkflowEngine(machine *workflow.Machine, router *ApprovalRouter, planner *CapacityPlanner, audit *AuditTrail) *WorkflowEngine {
	return &WorkflowEngine{machine: machine, router: router, planner: planner, audit: audit, now: time.Now}
}

// TransitionResult is what one approval decision produced
type TransitionResult struct {
	Step         workflow.Step
	State        *models.WorkflowState
	Approval     *models.ApprovalRecord
	NextApproval *models.ApprovalRecord
	Overbooked   []OverbookedAllocation
	Released     int64
}

// Initialize routes level 1 and records the initial state
func (e *WorkflowEngine) Initialize(ctx context.Context, repos *repository.Repositories, req *models.AssignmentRequest, actorID string) (*models.WorkflowState, *models.ApprovalRecord, error) {
	initial, err := e.machine.InitialState(req.AssignmentType)
	if err != nil {
		return nil, nil, apperrors.NewValidationError("assignment_type", err.Error())
	}

	approval, err := e.openApproval(ctx, repos, req, 0)
	if err != nil {
		return nil, nil, err
	}

	state, err := e.appendState(repos, req, initial, actorID, map[string]interface{}{
		"level":       approval.Level,
		"approver_id": approval.ApproverID,
	})
	if err != nil {
		return nil, nil, err
	}
	return state, approval, nil
}

// Transition applies a decision on the pending approval of req
func (e *WorkflowEngine) Transition(ctx context.Context, repos *repository.Repositories, req *models.AssignmentRequest, approval *models.ApprovalRecord, decision *DecisionRequest, actorID string) (*TransitionResult, error) {
	current, err := e.currentState(repos, req)
	if err != nil {
		return nil, err
	}

	step, err := e.machine.Decide(req.AssignmentType, current, approval.Level, decision.Decision)
	if err != nil {
		return nil, apperrors.NewStateError(fmt.Sprintf("decide level %d", approval.Level), current)
	}

	decidedAt := e.now()
	approval.Decision = decision.Decision
	approval.Comments = decision.Comments
	approval.DecidedBy = actorID
	approval.DecidedAt = &decidedAt
	if err := repos.Approvals.Decide(approval); err != nil {
		if errors.Is(err, repository.ErrVersionConflict) {
			return nil, apperrors.NewStaleStateError("approval record", approval.ID.String())
		}
		return nil, fmt.Errorf("failed to record decision: %w", err)
	}

	result := &TransitionResult{Step: step, Approval: approval}
	data := map[string]interface{}{"level": approval.Level, "decision": string(decision.Decision)}
	reason := fmt.Sprintf("level %d %s", approval.Level, decision.Decision)

	switch step.Outcome {
	case workflow.OutcomeAdvance:
		next, err := e.openApproval(ctx, repos, req, approval.Level)
		if err != nil {
			return nil, err
		}
		result.NextApproval = next
		data["next_level"] = next.Level
		data["next_approver_id"] = next.ApproverID

	case workflow.OutcomeApproved:
		if err := e.planner.CheckConfirm(repos, req); err != nil {
			return nil, err
		}
		approvedAt := e.now()
		req.ApprovedAt = &approvedAt
		if err := e.setStatus(repos, req, models.AssignmentStatusApproved, reason, actorID); err != nil {
			return nil, err
		}
		overbooked, err := e.planner.Confirm(repos, req.ID)
		if err != nil {
			return nil, err
		}
		for _, o := range overbooked {
			msg := fmt.Sprintf("crew %s at %d%% for %s - %s", o.Allocation.CrewID, o.UtilizationPct,
				o.Allocation.StartDate.UTC().Format(time.RFC3339), o.Allocation.EndDate.UTC().Format(time.RFC3339))
			if _, err := e.audit.Append(repos, req.ID, FieldOverbooked, nil, strconv.Itoa(o.UtilizationPct), msg, actorID); err != nil {
				return nil, err
			}
		}
		result.Overbooked = overbooked

	case workflow.OutcomeRejected:
		if err := e.setStatus(repos, req, models.AssignmentStatusRejected, reason, actorID); err != nil {
			return nil, err
		}
		released, err := e.planner.Release(repos, req.ID)
		if err != nil {
			return nil, err
		}
		result.Released = released
	}

	if result.State, err = e.appendState(repos, req, step.To, actorID, data); err != nil {
		return nil, err
	}
	return result, nil
}

// Move performs a lifecycle transition outside the approval chain, such as
// approved -> in_progress. Moving to cancelled releases capacity.
func (e *WorkflowEngine) Move(repos *repository.Repositories, req *models.AssignmentRequest, to, operation, reason, actorID string) (*models.WorkflowState, error) {
	current, err := e.currentState(repos, req)
	if err != nil {
		return nil, err
	}
	if _, err := e.machine.Move(req.AssignmentType, current, to); err != nil {
		return nil, apperrors.NewStateError(operation, current)
	}

	if status := workflow.StatusFor(to); status != req.Status {
		if err := e.setStatus(repos, req, status, reason, actorID); err != nil {
			return nil, err
		}
	}

	data := map[string]interface{}{"from": current}
	if reason != "" {
		data["reason"] = reason
	}
	if to == workflow.StateCancelled {
		released, err := e.planner.Release(repos, req.ID)
		if err != nil {
			return nil, err
		}
		data["released_allocations"] = released
	}

	return e.appendState(repos, req, to, actorID, data)
}

// currentState returns the latest state label of req
func (e *WorkflowEngine) currentState(repos *repository.Repositories, req *models.AssignmentRequest) (string, error) {
	state, err := repos.States.GetCurrent(req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrWorkflowStateNotFound
		}
		return "", fmt.Errorf("failed to load workflow state: %w", err)
	}
	return state.CurrentState, nil
}

func (e *WorkflowEngine) openApproval(ctx context.Context, repos *repository.Repositories, req *models.AssignmentRequest, existing int) (*models.ApprovalRecord, error) {
	routed, err := e.router.NextApprover(ctx, req, existing)
	if err != nil {
		return nil, err
	}

	approval := &models.ApprovalRecord{
		RequestID:    req.ID,
		Level:        routed.Level,
		ApproverID:   routed.ID,
		ApproverRole: routed.Role,
		Decision:     models.ApprovalDecisionPending,
	}
	if err := repos.Approvals.Create(approval); err != nil {
		return nil, fmt.Errorf("failed to create approval record: %w", err)
	}
	return approval, nil
}

func (e *WorkflowEngine) appendState(repos *repository.Repositories, req *models.AssignmentRequest, label, actorID string, data map[string]interface{}) (*models.WorkflowState, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal state data: %w", err)
	}
	state := &models.WorkflowState{
		RequestID:    req.ID,
		CurrentState: label,
		StateData:    raw,
		ActorID:      actorID,
	}
	if err := repos.States.Append(state); err != nil {
		return nil, fmt.Errorf("failed to append workflow state: %w", err)
	}
	return state, nil
}

// setStatus persists a status change under the version check and audits it
func (e *WorkflowEngine) setStatus(repos *repository.Repositories, req *models.AssignmentRequest, status models.AssignmentStatus, reason, actorID string) error {
	old := string(req.Status)
	req.Status = status
	if err := repos.Requests.Update(req); err != nil {
		req.Status = models.AssignmentStatus(old)
		if errors.Is(err, repository.ErrVersionConflict) {
			return apperrors.NewStaleStateError("assignment request", req.ID.String())
		}
		return fmt.Errorf("failed to update request status: %w", err)
	}
	_, err := e.audit.Append(repos, req.ID, FieldStatus, &old, string(status), reason, actorID)
	return err
}
