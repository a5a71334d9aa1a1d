package workflow

import (
	"testing"

	"assignment-workflow-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestConfigValidate_DetectsBrokenChain(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Transitions[models.AssignmentTypeStandard][StatePendingSupervisor] = []string{StateApproved, StateRejected}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "expected pending_coordinator_approval")
}

func TestConfigValidate_DefaultAllocationRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DefaultAllocationPct[models.AssignmentTypeEmergency] = 0
	assert.Error(t, cfg.Validate())
}

func TestInitialState(t *testing.T) {
	m := NewMachine(DefaultConfig())
	for _, typ := range []models.AssignmentType{
		models.AssignmentTypeEmergency, models.AssignmentTypeStandard, models.AssignmentTypeScheduled,
	} {
		state, err := m.InitialState(typ)
		require.NoError(t, err)
		assert.Equal(t, StatePendingSupervisor, state)
	}

	_, err := m.InitialState("urgent")
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestLevelsAndRoles(t *testing.T) {
	m := NewMachine(DefaultConfig())
	assert.Equal(t, 1, m.Levels(models.AssignmentTypeEmergency))
	assert.Equal(t, 2, m.Levels(models.AssignmentTypeStandard))
	assert.Equal(t, 3, m.Levels(models.AssignmentTypeScheduled))

	role, ok := m.RoleForLevel(models.AssignmentTypeScheduled, 3)
	assert.True(t, ok)
	assert.Equal(t, RoleManager, role)

	_, ok = m.RoleForLevel(models.AssignmentTypeEmergency, 2)
	assert.False(t, ok)
}

func TestDecide_ApprovePaths(t *testing.T) {
	m := NewMachine(DefaultConfig())

	testCases := []struct {
		name      string
		typ       models.AssignmentType
		current   string
		level     int
		wantTo    string
		outcome   Outcome
		nextLevel int
		nextRole  string
	}{
		{"emergency supervisor approves", models.AssignmentTypeEmergency, StatePendingSupervisor, 1, StateApproved, OutcomeApproved, 0, ""},
		{"standard supervisor advances", models.AssignmentTypeStandard, StatePendingSupervisor, 1, StatePendingCoordinator, OutcomeAdvance, 2, RoleCoordinator},
		{"standard coordinator approves", models.AssignmentTypeStandard, StatePendingCoordinator, 2, StateApproved, OutcomeApproved, 0, ""},
		{"scheduled coordinator advances", models.AssignmentTypeScheduled, StatePendingCoordinator, 2, StatePendingManager, OutcomeAdvance, 3, RoleManager},
		{"scheduled manager approves", models.AssignmentTypeScheduled, StatePendingManager, 3, StateApproved, OutcomeApproved, 0, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			step, err := m.Decide(tc.typ, tc.current, tc.level, models.ApprovalDecisionApproved)
			require.NoError(t, err)
			assert.Equal(t, tc.current, step.From)
			assert.Equal(t, tc.wantTo, step.To)
			assert.Equal(t, tc.outcome, step.Outcome)
			assert.Equal(t, tc.nextLevel, step.NextLevel)
			assert.Equal(t, tc.nextRole, step.NextRole)
		})
	}
}

func TestDecide_RejectStopsAtAnyLevel(t *testing.T) {
	m := NewMachine(DefaultConfig())

	step, err := m.Decide(models.AssignmentTypeScheduled, StatePendingSupervisor, 1, models.ApprovalDecisionRejected)
	require.NoError(t, err)
	assert.Equal(t, StateRejected, step.To)
	assert.Equal(t, OutcomeRejected, step.Outcome)
	assert.Zero(t, step.NextLevel)
}

func TestDecide_Errors(t *testing.T) {
	m := NewMachine(DefaultConfig())

	_, err := m.Decide(models.AssignmentTypeStandard, StateApproved, 1, models.ApprovalDecisionApproved)
	assert.ErrorIs(t, err, ErrNotPendingState)

	_, err = m.Decide(models.AssignmentTypeStandard, StatePendingCoordinator, 1, models.ApprovalDecisionApproved)
	assert.ErrorIs(t, err, ErrLevelMismatch)

	_, err = m.Decide(models.AssignmentTypeEmergency, StatePendingCoordinator, 2, models.ApprovalDecisionApproved)
	assert.ErrorIs(t, err, ErrLevelMismatch)

	_, err = m.Decide(models.AssignmentTypeStandard, StatePendingSupervisor, 1, models.ApprovalDecisionPending)
	assert.ErrorIs(t, err, ErrTransitionInvalid)

	_, err = m.Decide("urgent", StatePendingSupervisor, 1, models.ApprovalDecisionApproved)
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestMove(t *testing.T) {
	m := NewMachine(DefaultConfig())

	_, err := m.Move(models.AssignmentTypeScheduled, StateApproved, StateScheduled)
	assert.NoError(t, err)

	_, err = m.Move(models.AssignmentTypeScheduled, StateApproved, StateInProgress)
	assert.ErrorIs(t, err, ErrTransitionInvalid)

	_, err = m.Move(models.AssignmentTypeStandard, StateApproved, StateInProgress)
	assert.NoError(t, err)

	_, err = m.Move(models.AssignmentTypeStandard, StateInProgress, StateCompleted)
	assert.NoError(t, err)

	assert.True(t, m.CanMove(models.AssignmentTypeEmergency, StateRejected, StateCancelled))
	assert.False(t, m.CanMove(models.AssignmentTypeEmergency, StateCompleted, StateCancelled))
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, models.AssignmentStatusPending, StatusFor(StatePendingManager))
	assert.Equal(t, models.AssignmentStatusApproved, StatusFor(StateScheduled))
	assert.Equal(t, models.AssignmentStatusRejected, StatusFor(StateRejected))
	assert.Equal(t, models.AssignmentStatusInProgress, StatusFor(StateInProgress))
	assert.Equal(t, models.AssignmentStatusCompleted, StatusFor(StateCompleted))
	assert.Equal(t, models.AssignmentStatusCancelled, StatusFor(StateCancelled))
}

func TestIsPendingState(t *testing.T) {
	assert.True(t, IsPendingState(PendingState(RoleCoordinator)))
	assert.False(t, IsPendingState(StateApproved))
}
