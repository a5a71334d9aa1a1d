package service_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"assignment-workflow-backend/internal/database/models"
	"assignment-workflow-backend/internal/directory"
	apperrors "assignment-workflow-backend/internal/errors"
	"assignment-workflow-backend/internal/lock"
	"assignment-workflow-backend/internal/mocks"
	"assignment-workflow-backend/internal/notify"
	"assignment-workflow-backend/internal/service"
	"assignment-workflow-backend/internal/workflow"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

func intPtr(v int) *int { return &v }

func stringPtr(v string) *string { return &v }

// recordingHook captures published events on a channel
type recordingHook struct {
	events chan notify.Event
}

func (h *recordingHook) Notify(_ context.Context, event notify.Event) error {
	h.events <- event
	return nil
}

// AssignmentServiceTestSuite drives the orchestrator over an in-memory store
type AssignmentServiceTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	resources  *mocks.MockResourceDirectory
	identities *directory.StaticDirectory
	store      *memStore
	hook       *recordingHook
	svc        *service.AssignmentService
	ctx        context.Context
	crewX      uuid.UUID
}

func (suite *AssignmentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.resources = mocks.NewMockResourceDirectory(suite.ctrl)
	suite.resources.EXPECT().Exists(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil).AnyTimes()
	suite.resources.EXPECT().Name(gomock.Any(), gomock.Any(), gomock.Any()).Return("North Electrical", nil).AnyTimes()

	suite.identities = directory.NewStaticDirectory([]directory.StaticIdentity{
		{ID: "sup-1", Name: "Sam Supervisor", Roles: []string{directory.RoleSupervisor}},
		{ID: "coord-1", Name: "Casey Coordinator", Roles: []string{directory.RoleCoordinator}},
		{ID: "mgr-1", Name: "Morgan Manager", Roles: []string{directory.RoleManager}},
		{ID: "admin-1", Name: "Alex Admin", Roles: []string{directory.RoleAdmin}},
	})

	suite.store = newMemStore(func() time.Time { return fixedNow })
	suite.hook = &recordingHook{events: make(chan notify.Event, 64)}
	suite.svc = service.NewAssignmentService(
		suite.store,
		suite.identities,
		suite.resources,
		lock.NewMemoryLocker(),
		notify.NewDispatcher(suite.hook),
		workflow.DefaultConfig(),
		validator.New(),
		service.WithClock(func() time.Time { return fixedNow }),
	)
	suite.ctx = context.Background()
	suite.crewX = uuid.New()
}

func (suite *AssignmentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AssignmentServiceTestSuite) window() (time.Time, time.Time) {
	start := fixedNow.Add(24 * time.Hour)
	return start, start.Add(8 * time.Hour)
}

func (suite *AssignmentServiceTestSuite) draft(t models.AssignmentType, priority int) *service.CreateAssignmentRequest {
	start, end := suite.window()
	crew := suite.crewX
	return &service.CreateAssignmentRequest{
		AssignmentType: t,
		PriorityLevel:  priority,
		RequestedRole:  "electrician",
		CrewID:         &crew,
		StartDate:      start,
		EndDate:        &end,
		Description:    "Rewire the substation control panel",
	}
}

func (suite *AssignmentServiceTestSuite) create(t models.AssignmentType, priority int) *service.AssignmentRequestView {
	view, err := suite.svc.CreateRequest(suite.ctx, suite.draft(t, priority), "req-1")
	suite.Require().NoError(err)
	return view
}

func (suite *AssignmentServiceTestSuite) decide(id uuid.UUID, approver string, decision models.ApprovalDecision) *models.ApprovalRecord {
	approval, err := suite.svc.SubmitDecision(suite.ctx, id, approver, &service.DecisionRequest{Decision: decision})
	suite.Require().NoError(err)
	return approval
}

func (suite *AssignmentServiceTestSuite) TestStandardRequestApprovedThroughTwoLevels() {
	view := suite.create(models.AssignmentTypeStandard, 3)

	suite.Equal(models.AssignmentStatusPending, view.Status)
	suite.Equal(workflow.StatePendingSupervisor, view.CurrentState)
	suite.Equal("North Electrical", view.CrewName)

	allocations := suite.store.allocationsOf(view.ID)
	suite.Require().Len(allocations, 1)
	suite.Equal(25, allocations[0].AllocationPercentage)
	suite.False(allocations[0].Confirmed)

	pending := suite.store.pending(view.ID)
	suite.Require().Len(pending, 1)
	suite.Equal("sup-1", pending[0].ApproverID)
	suite.Equal(1, pending[0].Level)

	first := suite.decide(view.ID, "sup-1", models.ApprovalDecisionApproved)
	suite.Equal(models.ApprovalDecisionApproved, first.Decision)

	status, err := suite.svc.GetWorkflowStatus(suite.ctx, view.ID)
	suite.Require().NoError(err)
	suite.Equal(workflow.StatePendingCoordinator, status.CurrentState)
	suite.Require().NotNil(status.NextApprover)
	suite.Equal("coord-1", status.NextApprover.ApproverID)
	suite.Equal(2, status.NextApprover.Level)
	suite.Len(status.Approvals, 2)

	suite.decide(view.ID, "coord-1", models.ApprovalDecisionApproved)

	status, err = suite.svc.GetWorkflowStatus(suite.ctx, view.ID)
	suite.Require().NoError(err)
	suite.Equal(workflow.StateApproved, status.CurrentState)
	suite.Equal(models.AssignmentStatusApproved, status.Request.Status)
	suite.NotNil(status.Request.ApprovedAt)
	suite.Nil(status.NextApprover)
	suite.Empty(suite.store.pending(view.ID))

	allocations = suite.store.allocationsOf(view.ID)
	suite.Require().Len(allocations, 1)
	suite.True(allocations[0].Confirmed)
	suite.False(allocations[0].Overbooked)

	states := make([]string, 0, len(status.History))
	for _, s := range status.History {
		states = append(states, s.CurrentState)
	}
	suite.Equal([]string{workflow.StatePendingSupervisor, workflow.StatePendingCoordinator, workflow.StateApproved}, states)
}

func (suite *AssignmentServiceTestSuite) TestFullCrewRejectsStandardButAdmitsEmergency() {
	start, end := suite.window()
	suite.store.seedAllocation(suite.crewX, 100, start, end)

	_, err := suite.svc.CreateRequest(suite.ctx, suite.draft(models.AssignmentTypeStandard, 3), "req-1")
	suite.Require().Error(err)
	var conflict *apperrors.CapacityConflictError
	suite.Require().ErrorAs(err, &conflict)
	suite.Equal(0, conflict.AvailablePct)
	suite.Equal(100, conflict.UtilizationPct)

	emergency := suite.create(models.AssignmentTypeEmergency, 1)
	suite.decide(emergency.ID, "sup-1", models.ApprovalDecisionApproved)

	allocations := suite.store.allocationsOf(emergency.ID)
	suite.Require().Len(allocations, 1)
	suite.True(allocations[0].Confirmed)
	suite.True(allocations[0].Overbooked)

	capacity, err := suite.svc.CheckCapacity(suite.ctx, suite.crewX, start, end)
	suite.Require().NoError(err)
	suite.Equal(150, capacity.CurrentUtilizationPct)
	suite.False(capacity.Available)
	suite.Equal(0, capacity.AvailablePct)

	forecast, err := suite.svc.GetForecast(suite.ctx, &suite.crewX, 3)
	suite.Require().NoError(err)
	suite.Require().Len(forecast.Forecast, 3)
	day := forecast.Forecast[1]
	suite.Equal("2026-03-03", day.Date)
	suite.True(day.IsOverbooked)
	suite.Equal(150, day.TotalAllocatedPct)
	suite.Equal(100, day.UtilizationPct)
	suite.Equal(1, forecast.Summary.OverbookedDays)
	suite.Equal(150, forecast.Summary.PeakUtilization)

	history, err := suite.svc.GetHistory(suite.ctx, emergency.ID)
	suite.Require().NoError(err)
	var overbooked []models.AssignmentHistory
	for _, h := range history {
		if h.FieldName == service.FieldOverbooked {
			overbooked = append(overbooked, h)
		}
	}
	suite.Require().Len(overbooked, 1)
	suite.Equal("150", overbooked[0].NewValue)
}

func (suite *AssignmentServiceTestSuite) TestStandardCannotOverbookAtFinalApproval() {
	start, end := suite.window()
	suite.store.seedAllocation(suite.crewX, 90, start, end)

	view := suite.create(models.AssignmentTypeStandard, 3)
	suite.decide(view.ID, "sup-1", models.ApprovalDecisionApproved)

	_, err := suite.svc.SubmitDecision(suite.ctx, view.ID, "coord-1", &service.DecisionRequest{Decision: models.ApprovalDecisionApproved})
	suite.Require().Error(err)
	var conflict *apperrors.CapacityConflictError
	suite.Require().ErrorAs(err, &conflict)
	suite.Equal(10, conflict.AvailablePct)
	suite.Equal(90, conflict.UtilizationPct)

	got, err := suite.svc.GetRequest(suite.ctx, view.ID)
	suite.Require().NoError(err)
	suite.Equal(models.AssignmentStatusPending, got.Status)
	suite.Equal(workflow.StatePendingCoordinator, got.CurrentState)

	pending := suite.store.pending(view.ID)
	suite.Require().Len(pending, 1)
	suite.Equal(2, pending[0].Level)

	allocations := suite.store.allocationsOf(view.ID)
	suite.Require().Len(allocations, 1)
	suite.False(allocations[0].Confirmed)

	capacity, err := suite.svc.CheckCapacity(suite.ctx, suite.crewX, start, end)
	suite.Require().NoError(err)
	suite.Equal(90, capacity.CurrentUtilizationPct)
}

func (suite *AssignmentServiceTestSuite) TestStandardConfirmsWhenItStillFits() {
	start, end := suite.window()
	suite.store.seedAllocation(suite.crewX, 75, start, end)

	view := suite.create(models.AssignmentTypeStandard, 3)
	suite.decide(view.ID, "sup-1", models.ApprovalDecisionApproved)
	suite.decide(view.ID, "coord-1", models.ApprovalDecisionApproved)

	allocations := suite.store.allocationsOf(view.ID)
	suite.Require().Len(allocations, 1)
	suite.True(allocations[0].Confirmed)
	suite.False(allocations[0].Overbooked)

	capacity, err := suite.svc.CheckCapacity(suite.ctx, suite.crewX, start, end)
	suite.Require().NoError(err)
	suite.Equal(100, capacity.CurrentUtilizationPct)
	suite.False(capacity.Available)
}

func (suite *AssignmentServiceTestSuite) TestCorruptRequirementsAreLoggedNotFatal() {
	view := suite.create(models.AssignmentTypeStandard, 3)

	suite.store.mu.Lock()
	stored := suite.store.requests[view.ID]
	stored.Requirements = json.RawMessage(`{"tools": [`)
	suite.store.requests[view.ID] = stored
	suite.store.mu.Unlock()

	hook := logtest.NewGlobal()
	defer hook.Reset()

	got, err := suite.svc.GetRequest(suite.ctx, view.ID)
	suite.Require().NoError(err)
	suite.Nil(got.Requirements)

	var warned bool
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel && entry.Message == "stored requirements are not valid JSON" {
			warned = true
			suite.Equal(view.ID.String(), entry.Data["request_id"])
		}
	}
	suite.True(warned)
}

func (suite *AssignmentServiceTestSuite) TestScheduledRejectedAtFirstLevel() {
	view := suite.create(models.AssignmentTypeScheduled, 4)
	suite.Len(suite.store.allocationsOf(view.ID), 1)

	suite.decide(view.ID, "sup-1", models.ApprovalDecisionRejected)

	got, err := suite.svc.GetRequest(suite.ctx, view.ID)
	suite.Require().NoError(err)
	suite.Equal(models.AssignmentStatusRejected, got.Status)
	suite.Equal(workflow.StateRejected, got.CurrentState)

	approvals := suite.store.approvalsOf(view.ID)
	suite.Require().Len(approvals, 1)
	suite.Equal(1, approvals[0].Level)
	suite.Equal(models.ApprovalDecisionRejected, approvals[0].Decision)

	suite.Empty(suite.store.allocationsOf(view.ID))
	released := suite.store.releasedOf(view.ID)
	suite.Require().Len(released, 1)
	suite.Equal(fixedNow, *released[0].ReleasedAt)

	_, err = suite.svc.SubmitDecision(suite.ctx, view.ID, "coord-1", &service.DecisionRequest{Decision: models.ApprovalDecisionApproved})
	suite.True(apperrors.IsState(err))
}

func (suite *AssignmentServiceTestSuite) TestScheduledLifecycle() {
	view := suite.create(models.AssignmentTypeScheduled, 3)
	suite.decide(view.ID, "sup-1", models.ApprovalDecisionApproved)
	suite.decide(view.ID, "coord-1", models.ApprovalDecisionApproved)
	suite.decide(view.ID, "mgr-1", models.ApprovalDecisionApproved)

	_, err := suite.svc.CompleteRequest(suite.ctx, view.ID, "req-1", "")
	suite.True(apperrors.IsState(err))

	scheduled, err := suite.svc.ScheduleRequest(suite.ctx, view.ID, "req-1", "crew booked")
	suite.Require().NoError(err)
	suite.Equal(workflow.StateScheduled, scheduled.CurrentState)
	suite.Equal(models.AssignmentStatusApproved, scheduled.Status)

	started, err := suite.svc.StartRequest(suite.ctx, view.ID, "req-1", "")
	suite.Require().NoError(err)
	suite.Equal(models.AssignmentStatusInProgress, started.Status)

	completed, err := suite.svc.CompleteRequest(suite.ctx, view.ID, "req-1", "")
	suite.Require().NoError(err)
	suite.Equal(models.AssignmentStatusCompleted, completed.Status)
	suite.Equal(workflow.StateCompleted, completed.CurrentState)

	// the status timeline is reconstructable from the audit trail alone
	history, err := suite.svc.GetHistory(suite.ctx, view.ID)
	suite.Require().NoError(err)
	var timeline []string
	for _, h := range history {
		if h.FieldName == service.FieldStatus {
			timeline = append(timeline, h.NewValue)
		}
	}
	suite.Equal([]string{"pending", "approved", "in_progress", "completed"}, timeline)
}

func (suite *AssignmentServiceTestSuite) TestStandardCannotBeScheduled() {
	view := suite.create(models.AssignmentTypeStandard, 3)
	suite.decide(view.ID, "sup-1", models.ApprovalDecisionApproved)
	suite.decide(view.ID, "coord-1", models.ApprovalDecisionApproved)

	_, err := suite.svc.ScheduleRequest(suite.ctx, view.ID, "req-1", "")
	suite.True(apperrors.IsState(err))

	started, err := suite.svc.StartRequest(suite.ctx, view.ID, "req-1", "")
	suite.Require().NoError(err)
	suite.Equal(workflow.StateInProgress, started.CurrentState)
}

func (suite *AssignmentServiceTestSuite) TestCancelReleasesCapacity() {
	view := suite.create(models.AssignmentTypeStandard, 3)

	_, err := suite.svc.CancelRequest(suite.ctx, view.ID, "someone-else", "")
	suite.ErrorIs(err, apperrors.ErrNotRequester)

	cancelled, err := suite.svc.CancelRequest(suite.ctx, view.ID, "req-1", "no longer needed")
	suite.Require().NoError(err)
	suite.Equal(models.AssignmentStatusCancelled, cancelled.Status)
	suite.Equal(workflow.StateCancelled, cancelled.CurrentState)
	suite.Empty(suite.store.allocationsOf(view.ID))

	_, err = suite.svc.CancelRequest(suite.ctx, view.ID, "req-1", "")
	suite.True(apperrors.IsState(err))

	// an admin may cancel on behalf of the requester
	other := suite.create(models.AssignmentTypeStandard, 3)
	_, err = suite.svc.CancelRequest(suite.ctx, other.ID, "admin-1", "")
	suite.NoError(err)
}

func (suite *AssignmentServiceTestSuite) TestDecisionAuthorization() {
	view := suite.create(models.AssignmentTypeStandard, 3)

	_, err := suite.svc.SubmitDecision(suite.ctx, view.ID, "coord-1", &service.DecisionRequest{Decision: models.ApprovalDecisionApproved})
	suite.ErrorIs(err, apperrors.ErrNotAssignedActor)
	suite.Len(suite.store.pending(view.ID), 1)

	_, err = suite.svc.SubmitDecision(suite.ctx, view.ID, "", &service.DecisionRequest{Decision: models.ApprovalDecisionApproved})
	suite.ErrorIs(err, apperrors.ErrActorMissing)

	_, err = suite.svc.SubmitDecision(suite.ctx, view.ID, "sup-1", &service.DecisionRequest{Decision: models.ApprovalDecisionPending})
	suite.ErrorIs(err, apperrors.ErrInvalidDecision)

	approval := suite.decide(view.ID, "admin-1", models.ApprovalDecisionApproved)
	suite.Equal("admin-1", approval.DecidedBy)
	suite.Equal("sup-1", approval.ApproverID)
}

func (suite *AssignmentServiceTestSuite) TestRoutingFailureRollsBackDecision() {
	suite.identities = directory.NewStaticDirectory([]directory.StaticIdentity{
		{ID: "sup-1", Roles: []string{directory.RoleSupervisor}},
	})
	suite.svc = service.NewAssignmentService(suite.store, suite.identities, suite.resources,
		lock.NewMemoryLocker(), notify.NewDispatcher(nil), workflow.DefaultConfig(), validator.New(),
		service.WithClock(func() time.Time { return fixedNow }))

	view := suite.create(models.AssignmentTypeStandard, 3)

	_, err := suite.svc.SubmitDecision(suite.ctx, view.ID, "sup-1", &service.DecisionRequest{Decision: models.ApprovalDecisionApproved})
	var routing *apperrors.RoutingError
	suite.Require().ErrorAs(err, &routing)
	suite.Equal(directory.RoleCoordinator, routing.Role)
	suite.Equal(2, routing.Level)

	pending := suite.store.pending(view.ID)
	suite.Require().Len(pending, 1)
	suite.Equal(1, pending[0].Level)

	got, err := suite.svc.GetRequest(suite.ctx, view.ID)
	suite.Require().NoError(err)
	suite.Equal(workflow.StatePendingSupervisor, got.CurrentState)
}

func (suite *AssignmentServiceTestSuite) TestCreateWithoutApproverPersistsNothing() {
	suite.svc = service.NewAssignmentService(suite.store, directory.NewStaticDirectory(nil), suite.resources,
		lock.NewMemoryLocker(), notify.NewDispatcher(nil), workflow.DefaultConfig(), validator.New(),
		service.WithClock(func() time.Time { return fixedNow }))

	_, err := suite.svc.CreateRequest(suite.ctx, suite.draft(models.AssignmentTypeStandard, 3), "req-1")
	suite.True(apperrors.IsRouting(err))

	list, err := suite.svc.ListRequests(suite.ctx, &service.ListRequestsParams{})
	suite.Require().NoError(err)
	suite.Zero(list.Total)
	suite.Empty(suite.store.allocations)
}

func (suite *AssignmentServiceTestSuite) TestCreateValidation() {
	draft := suite.draft(models.AssignmentTypeEmergency, 4)
	draft.Description = "short"

	_, err := suite.svc.CreateRequest(suite.ctx, draft, "req-1")
	var verrs apperrors.ValidationErrors
	suite.Require().ErrorAs(err, &verrs)
	fields := map[string]bool{}
	for _, v := range verrs {
		fields[v.Field] = true
	}
	suite.True(fields["priority_level"])
	suite.True(fields["description"])

	_, err = suite.svc.CreateRequest(suite.ctx, suite.draft(models.AssignmentTypeStandard, 3), "")
	suite.ErrorIs(err, apperrors.ErrActorMissing)
}

func (suite *AssignmentServiceTestSuite) TestUpdatePendingRequest() {
	view := suite.create(models.AssignmentTypeStandard, 3)

	_, err := suite.svc.UpdateRequest(suite.ctx, view.ID, &service.UpdateAssignmentRequest{PriorityLevel: intPtr(1)}, "intruder")
	suite.ErrorIs(err, apperrors.ErrNotRequester)

	updated, err := suite.svc.UpdateRequest(suite.ctx, view.ID, &service.UpdateAssignmentRequest{
		PriorityLevel:       intPtr(2),
		RequiredCapacityPct: intPtr(60),
		Comments:            stringPtr("needs a lift"),
		Reason:              "site survey",
	}, "req-1")
	suite.Require().NoError(err)
	suite.Equal(2, updated.PriorityLevel)
	suite.Equal("needs a lift", updated.Comments)

	allocations := suite.store.allocationsOf(view.ID)
	suite.Require().Len(allocations, 1)
	suite.Equal(60, allocations[0].AllocationPercentage)

	history, err := suite.svc.GetHistory(suite.ctx, view.ID)
	suite.Require().NoError(err)
	changed := map[string]models.AssignmentHistory{}
	for _, h := range history {
		changed[h.FieldName] = h
	}
	suite.Require().Contains(changed, service.FieldPriorityLevel)
	suite.Equal("3", *changed[service.FieldPriorityLevel].OldValue)
	suite.Equal("2", changed[service.FieldPriorityLevel].NewValue)
	suite.Equal("site survey", changed[service.FieldPriorityLevel].Reason)
	suite.Contains(changed, service.FieldCapacityPct)

	suite.decide(view.ID, "sup-1", models.ApprovalDecisionApproved)
	suite.decide(view.ID, "coord-1", models.ApprovalDecisionApproved)
	_, err = suite.svc.UpdateRequest(suite.ctx, view.ID, &service.UpdateAssignmentRequest{PriorityLevel: intPtr(1)}, "req-1")
	suite.True(apperrors.IsState(err))
}

func (suite *AssignmentServiceTestSuite) TestUpdateMovingToFullCrewIsRejected() {
	view := suite.create(models.AssignmentTypeStandard, 3)

	crewY := uuid.New()
	start, end := suite.window()
	suite.store.seedAllocation(crewY, 100, start, end)

	_, err := suite.svc.UpdateRequest(suite.ctx, view.ID, &service.UpdateAssignmentRequest{CrewID: &crewY}, "req-1")
	suite.True(apperrors.IsCapacityConflict(err))

	allocations := suite.store.allocationsOf(view.ID)
	suite.Require().Len(allocations, 1)
	suite.Equal(suite.crewX, allocations[0].CrewID)
}

func (suite *AssignmentServiceTestSuite) TestBulkCreate() {
	bad := suite.draft(models.AssignmentTypeStandard, 9)
	result, err := suite.svc.BulkCreate(suite.ctx, []service.CreateAssignmentRequest{
		*suite.draft(models.AssignmentTypeStandard, 3),
		*bad,
		*suite.draft(models.AssignmentTypeScheduled, 2),
	}, "req-1")
	suite.Require().NoError(err)
	suite.Len(result.Created, 2)
	suite.Require().Len(result.Errors, 1)
	suite.Equal(1, result.Errors[0].Index)

	_, err = suite.svc.BulkCreate(suite.ctx, make([]service.CreateAssignmentRequest, 51), "req-1")
	suite.ErrorIs(err, apperrors.ErrBulkLimitExceeded)

	_, err = suite.svc.BulkCreate(suite.ctx, nil, "req-1")
	suite.True(apperrors.IsValidation(err))
}

func (suite *AssignmentServiceTestSuite) TestPendingApprovalsAndStatistics() {
	first := suite.create(models.AssignmentTypeStandard, 3)
	suite.create(models.AssignmentTypeEmergency, 1)
	suite.decide(first.ID, "sup-1", models.ApprovalDecisionRejected)

	pending, err := suite.svc.GetPendingApprovals(suite.ctx, "sup-1", 0, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(1), pending.Total)
	suite.Equal(1, pending.Page)
	suite.Equal(20, pending.PageSize)

	stats, err := suite.svc.GetStatistics(suite.ctx, nil, nil)
	suite.Require().NoError(err)
	suite.Equal(int64(2), stats.Total)
	suite.Equal(int64(1), stats.ByStatus["rejected"])
	suite.Equal(int64(1), stats.ByType["emergency"])
	suite.NotContains(stats.ByStatus, "total")

	from, to := fixedNow, fixedNow.Add(-time.Hour)
	_, err = suite.svc.GetStatistics(suite.ctx, &from, &to)
	suite.ErrorIs(err, apperrors.ErrInvalidTimeRange)
}

func (suite *AssignmentServiceTestSuite) TestUnknownRequest() {
	_, err := suite.svc.GetRequest(suite.ctx, uuid.New())
	suite.ErrorIs(err, apperrors.ErrAssignmentRequestNotFound)

	_, err = suite.svc.SubmitDecision(suite.ctx, uuid.New(), "sup-1", &service.DecisionRequest{Decision: models.ApprovalDecisionApproved})
	suite.ErrorIs(err, apperrors.ErrAssignmentRequestNotFound)
}

func (suite *AssignmentServiceTestSuite) TestEventsPublishedAfterCommit() {
	view := suite.create(models.AssignmentTypeEmergency, 1)
	suite.decide(view.ID, "sup-1", models.ApprovalDecisionApproved)

	var states []string
	for len(states) < 2 {
		select {
		case ev := <-suite.hook.events:
			suite.Equal(view.ID, ev.RequestID)
			states = append(states, ev.State)
		case <-time.After(2 * time.Second):
			suite.FailNow("timed out waiting for events")
		}
	}
	suite.ElementsMatch([]string{workflow.StatePendingSupervisor, workflow.StateApproved}, states)
}

func (suite *AssignmentServiceTestSuite) TestConcurrentDecisionsOnOneLevel() {
	view := suite.create(models.AssignmentTypeStandard, 3)

	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := suite.svc.SubmitDecision(suite.ctx, view.ID, "sup-1", &service.DecisionRequest{Decision: models.ApprovalDecisionApproved})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
		}
	}
	suite.Equal(1, succeeded)

	approvals := suite.store.approvalsOf(view.ID)
	suite.Len(approvals, 2)
	suite.Len(suite.store.pending(view.ID), 1)
}

func (suite *AssignmentServiceTestSuite) TestCrewUtilization() {
	start := fixedNow.Add(-time.Hour)
	suite.store.seedAllocation(suite.crewX, 40, start, start.Add(4*time.Hour))

	suite.resources.EXPECT().ActiveCrewIDs(gomock.Any()).Return([]uuid.UUID{suite.crewX}, nil)

	utils, err := suite.svc.GetCrewUtilization(suite.ctx, nil)
	suite.Require().NoError(err)
	suite.Require().Len(utils, 1)
	suite.Equal(suite.crewX, utils[0].CrewID)
	suite.Equal("North Electrical", utils[0].CrewName)
	suite.Equal(40, utils[0].CurrentUtilizationPct)
	suite.Equal(40, utils[0].PeakAllocationPct)
}

func TestAssignmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentServiceTestSuite))
}

func TestCheckCapacityUnknownCrew(t *testing.T) {
	ctrl := gomock.NewController(t)
	resources := mocks.NewMockResourceDirectory(ctrl)
	store := mocks.NewMockStoreInterface(ctrl)

	crewID := uuid.New()
	resources.EXPECT().Exists(gomock.Any(), directory.KindCrew, crewID).Return(false, nil)

	svc := service.NewAssignmentService(store, directory.NewStaticDirectory(nil), resources,
		lock.NewMemoryLocker(), notify.NewDispatcher(nil), workflow.DefaultConfig(), validator.New())

	_, err := svc.CheckCapacity(context.Background(), crewID, fixedNow, fixedNow.Add(time.Hour))
	assert.ErrorIs(t, err, apperrors.ErrTradeCrewNotFound)
}
