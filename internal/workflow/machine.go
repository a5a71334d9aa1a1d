package workflow

import (
	"errors"
	"fmt"
	"strings"

	"assignment-workflow-backend/internal/database/models"
)

var (
	ErrUnknownType       = errors.New("unknown assignment type")
	ErrNotPendingState   = errors.New("state does not await an approval")
	ErrLevelMismatch     = errors.New("approval level does not match workflow state")
	ErrTransitionInvalid = errors.New("transition not allowed")
)

// Outcome classifies the effect of an approval decision
type Outcome int

const (
	// OutcomeAdvance moves to the next approval level
	OutcomeAdvance Outcome = iota
	// OutcomeApproved finishes the chain
	OutcomeApproved
	// OutcomeRejected stops the chain
	OutcomeRejected
)

// Step is the result of applying one decision to the current state
type Step struct {
	From      string
	To        string
	Outcome   Outcome
	NextLevel int
	NextRole  string
}

// Machine answers transition questions from a Config; it holds no per-request state
type Machine struct {
	cfg Config
}

// NewMachine creates a state machine over the given policy
func NewMachine(cfg Config) *Machine {
	return &Machine{cfg: cfg}
}

// Config returns the policy the machine was built with
func (m *Machine) Config() Config {
	return m.cfg
}

// InitialState returns the first pending state for the type
func (m *Machine) InitialState(t models.AssignmentType) (string, error) {
	roles, ok := m.cfg.Roles[t]
	if !ok || len(roles) == 0 {
		return "", fmt.Errorf("%w: %s", ErrUnknownType, t)
	}
	return PendingState(roles[0]), nil
}

// Levels returns the number of approvals the chain requires
func (m *Machine) Levels(t models.AssignmentType) int {
	return len(m.cfg.Roles[t])
}

// RoleForLevel maps a 1-based approval level to its role
func (m *Machine) RoleForLevel(t models.AssignmentType, level int) (string, bool) {
	roles := m.cfg.Roles[t]
	if level < 1 || level > len(roles) {
		return "", false
	}
	return roles[level-1], true
}

// IsPendingState reports whether the label waits on an approver
func IsPendingState(state string) bool {
	return strings.HasPrefix(state, "pending_") && strings.HasSuffix(state, "_approval")
}

// Decide applies an approver's decision at the given level
func (m *Machine) Decide(t models.AssignmentType, current string, level int, decision models.ApprovalDecision) (Step, error) {
	table, ok := m.cfg.Transitions[t]
	if !ok {
		return Step{}, fmt.Errorf("%w: %s", ErrUnknownType, t)
	}
	if !IsPendingState(current) {
		return Step{}, fmt.Errorf("%w: %s", ErrNotPendingState, current)
	}
	role, ok := m.RoleForLevel(t, level)
	if !ok || PendingState(role) != current {
		return Step{}, fmt.Errorf("%w: level %d at %s", ErrLevelMismatch, level, current)
	}

	switch decision {
	case models.ApprovalDecisionRejected:
		return Step{From: current, To: StateRejected, Outcome: OutcomeRejected}, nil
	case models.ApprovalDecisionApproved:
	default:
		return Step{}, fmt.Errorf("%w: decision %q", ErrTransitionInvalid, decision)
	}

	next := table[current]
	if len(next) == 0 {
		return Step{}, fmt.Errorf("%w: %s has no approve path", ErrTransitionInvalid, current)
	}
	if next[0] == StateApproved {
		return Step{From: current, To: StateApproved, Outcome: OutcomeApproved}, nil
	}

	nextRole, ok := m.RoleForLevel(t, level+1)
	if !ok || PendingState(nextRole) != next[0] {
		return Step{}, fmt.Errorf("%w: %s -> %s", ErrLevelMismatch, current, next[0])
	}
	return Step{From: current, To: next[0], Outcome: OutcomeAdvance, NextLevel: level + 1, NextRole: nextRole}, nil
}

// CanMove reports whether the table allows from -> to outside of an approval decision
func (m *Machine) CanMove(t models.AssignmentType, from, to string) bool {
	for _, s := range m.cfg.Transitions[t][from] {
		if s == to {
			return true
		}
	}
	return false
}

// Move validates a lifecycle transition such as approved -> in_progress
func (m *Machine) Move(t models.AssignmentType, from, to string) (Step, error) {
	if _, ok := m.cfg.Transitions[t]; !ok {
		return Step{}, fmt.Errorf("%w: %s", ErrUnknownType, t)
	}
	if !m.CanMove(t, from, to) {
		return Step{}, fmt.Errorf("%w: %s -> %s", ErrTransitionInvalid, from, to)
	}
	return Step{From: from, To: to}, nil
}

// StatusFor maps a workflow state label onto the request status
func StatusFor(state string) models.AssignmentStatus {
	switch state {
	case StateApproved, StateScheduled:
		return models.AssignmentStatusApproved
	case StateRejected:
		return models.AssignmentStatusRejected
	case StateInProgress:
		return models.AssignmentStatusInProgress
	case StateCompleted:
		return models.AssignmentStatusCompleted
	case StateCancelled:
		return models.AssignmentStatusCancelled
	}
	return models.AssignmentStatusPending
}
