package workflow

import (
	"fmt"
	"time"

	"assignment-workflow-backend/internal/database/models"
)

// State labels used in the transition tables
const (
	StatePendingSupervisor  = "pending_supervisor_approval"
	StatePendingCoordinator = "pending_coordinator_approval"
	StatePendingManager     = "pending_manager_approval"
	StateApproved           = "approved"
	StateRejected           = "rejected"
	StateScheduled          = "scheduled"
	StateInProgress         = "in_progress"
	StateCompleted          = "completed"
	StateCancelled          = "cancelled"
)

// Approver roles, in chain order
const (
	RoleSupervisor  = "supervisor"
	RoleCoordinator = "coordinator"
	RoleManager     = "manager"
)

// Config is the per-deployment policy handed to the engine, router and planner.
// Transitions maps type -> state -> allowed next states; the first entry of a
// pending state is its approve path.
type Config struct {
	Transitions          map[models.AssignmentType]map[string][]string
	Roles                map[models.AssignmentType][]string
	DefaultAllocationPct map[models.AssignmentType]int
	DefaultWindow        time.Duration
	DefaultForecastDays  int
	MaxForecastDays      int
	MaxBulkCreate        int
}

// DefaultConfig returns the standard three-chain policy
func DefaultConfig() Config {
	return Config{
		Transitions: map[models.AssignmentType]map[string][]string{
			models.AssignmentTypeEmergency: {
				StatePendingSupervisor: {StateApproved, StateRejected, StateCancelled},
				StateApproved:          {StateInProgress, StateCancelled},
				StateRejected:          {StateCancelled},
				StateInProgress:        {StateCompleted},
				StateCompleted:         {},
				StateCancelled:         {},
			},
			models.AssignmentTypeStandard: {
				StatePendingSupervisor:  {StatePendingCoordinator, StateRejected, StateCancelled},
				StatePendingCoordinator: {StateApproved, StateRejected, StateCancelled},
				StateApproved:           {StateInProgress, StateCancelled},
				StateRejected:           {StateCancelled},
				StateInProgress:         {StateCompleted},
				StateCompleted:          {},
				StateCancelled:          {},
			},
			models.AssignmentTypeScheduled: {
				StatePendingSupervisor:  {StatePendingCoordinator, StateRejected, StateCancelled},
				StatePendingCoordinator: {StatePendingManager, StateRejected, StateCancelled},
				StatePendingManager:     {StateApproved, StateRejected, StateCancelled},
				StateApproved:           {StateScheduled, StateCancelled},
				StateScheduled:          {StateInProgress, StateCancelled},
				StateRejected:           {StateCancelled},
				StateInProgress:         {StateCompleted},
				StateCompleted:          {},
				StateCancelled:          {},
			},
		},
		Roles: map[models.AssignmentType][]string{
			models.AssignmentTypeEmergency: {RoleSupervisor},
			models.AssignmentTypeStandard:  {RoleSupervisor, RoleCoordinator},
			models.AssignmentTypeScheduled: {RoleSupervisor, RoleCoordinator, RoleManager},
		},
		DefaultAllocationPct: map[models.AssignmentType]int{
			models.AssignmentTypeEmergency: 50,
			models.AssignmentTypeStandard:  25,
			models.AssignmentTypeScheduled: 20,
		},
		DefaultWindow:       8 * time.Hour,
		DefaultForecastDays: 30,
		MaxForecastDays:     90,
		MaxBulkCreate:       50,
	}
}

// PendingState returns the state label that waits on the given role
func PendingState(role string) string {
	return "pending_" + role + "_approval"
}

// Validate checks that every chain's pending states line up with its roles
func (c Config) Validate() error {
	for _, t := range []models.AssignmentType{
		models.AssignmentTypeEmergency, models.AssignmentTypeStandard, models.AssignmentTypeScheduled,
	} {
		table, ok := c.Transitions[t]
		if !ok {
			return fmt.Errorf("no transition table for %s", t)
		}
		roles := c.Roles[t]
		if len(roles) == 0 {
			return fmt.Errorf("no approver roles for %s", t)
		}
		for i, role := range roles {
			next, ok := table[PendingState(role)]
			if !ok || len(next) == 0 {
				return fmt.Errorf("%s: missing state %s", t, PendingState(role))
			}
			want := StateApproved
			if i+1 < len(roles) {
				want = PendingState(roles[i+1])
			}
			if next[0] != want {
				return fmt.Errorf("%s: %s approves to %s, expected %s", t, PendingState(role), next[0], want)
			}
		}
		if pct := c.DefaultAllocationPct[t]; pct < 1 || pct > 100 {
			return fmt.Errorf("%s: default allocation %d out of range", t, pct)
		}
	}
	if c.DefaultWindow <= 0 {
		return fmt.Errorf("default window must be positive")
	}
	if c.MaxForecastDays < 1 {
		return fmt.Errorf("max forecast days must be positive")
	}
	return nil
}
