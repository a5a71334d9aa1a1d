package service_test

import (
	"testing"
	"time"

	"assignment-workflow-backend/internal/database/models"
	apperrors "assignment-workflow-backend/internal/errors"
	"assignment-workflow-backend/internal/mocks"
	"assignment-workflow-backend/internal/repository"
	"assignment-workflow-backend/internal/service"
	"assignment-workflow-backend/internal/workflow"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// CapacityPlannerTestSuite exercises the planner against a mocked allocation repository
type CapacityPlannerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	allocations *mocks.MockCapacityAllocationRepositoryInterface
	requests    *mocks.MockAssignmentRequestRepositoryInterface
	repos       *repository.Repositories
	planner     *service.CapacityPlanner
	crewID      uuid.UUID
	start       time.Time
	end         time.Time
}

func (suite *CapacityPlannerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.allocations = mocks.NewMockCapacityAllocationRepositoryInterface(suite.ctrl)
	suite.requests = mocks.NewMockAssignmentRequestRepositoryInterface(suite.ctrl)
	suite.repos = &repository.Repositories{Allocations: suite.allocations, Requests: suite.requests}
	suite.planner = service.NewCapacityPlanner(workflow.DefaultConfig())
	suite.crewID = uuid.New()
	suite.start = time.Now().Add(48 * time.Hour).Truncate(time.Hour)
	suite.end = suite.start.Add(8 * time.Hour)
}

func (suite *CapacityPlannerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CapacityPlannerTestSuite) allocation(pct int) models.CapacityAllocation {
	a := models.CapacityAllocation{
		CrewID:               suite.crewID,
		AllocationPercentage: pct,
		StartDate:            suite.start,
		EndDate:              suite.end,
		Confirmed:            true,
	}
	a.ID = uuid.New()
	a.RequestID = uuid.New()
	return a
}

func (suite *CapacityPlannerTestSuite) TestCheckAvailability() {
	testCases := []struct {
		name          string
		existing      []int
		wantAvailable bool
		wantPct       int
		wantUtil      int
	}{
		{"idle crew", nil, true, 100, 0},
		{"partially booked", []int{30, 45}, true, 25, 75},
		{"exactly full", []int{60, 40}, false, 0, 100},
		{"already overbooked", []int{100, 50}, false, 0, 150},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			var existing []models.CapacityAllocation
			for _, pct := range tc.existing {
				existing = append(existing, suite.allocation(pct))
			}
			suite.allocations.EXPECT().
				FindOverlapping(&suite.crewID, suite.start, suite.end, true).
				Return(existing, nil)

			result, err := suite.planner.CheckAvailability(suite.repos, suite.crewID, suite.start, suite.end)
			suite.Require().NoError(err)
			suite.Equal(tc.wantAvailable, result.Available)
			suite.Equal(tc.wantPct, result.AvailablePct)
			suite.Equal(tc.wantUtil, result.CurrentUtilizationPct)
			suite.Equal(len(tc.existing), result.ConflictCount)
		})
	}
}

func (suite *CapacityPlannerTestSuite) TestCheckAvailabilityInvalidRange() {
	_, err := suite.planner.CheckAvailability(suite.repos, suite.crewID, suite.end, suite.start)
	suite.ErrorIs(err, apperrors.ErrInvalidTimeRange)

	_, err = suite.planner.CheckAvailability(suite.repos, suite.crewID, suite.start, suite.start)
	suite.ErrorIs(err, apperrors.ErrInvalidTimeRange)
}

func (suite *CapacityPlannerTestSuite) TestAdmit() {
	req := &models.AssignmentRequest{
		AssignmentType: models.AssignmentTypeStandard,
		CrewID:         &suite.crewID,
		StartDate:      suite.start,
		EndDate:        &suite.end,
	}

	suite.Run("full crew conflicts", func() {
		suite.allocations.EXPECT().
			FindOverlapping(&suite.crewID, suite.start, suite.end, true).
			Return([]models.CapacityAllocation{suite.allocation(100)}, nil)

		err := suite.planner.Admit(suite.repos, req)
		var conflict *apperrors.CapacityConflictError
		suite.Require().ErrorAs(err, &conflict)
		suite.Equal(suite.crewID.String(), conflict.CrewID)
		suite.Equal(0, conflict.AvailablePct)
	})

	suite.Run("emergency bypasses admission", func() {
		emergency := *req
		emergency.AssignmentType = models.AssignmentTypeEmergency
		suite.NoError(suite.planner.Admit(suite.repos, &emergency))
	})

	suite.Run("no crew nothing to admit", func() {
		unassigned := *req
		unassigned.CrewID = nil
		suite.NoError(suite.planner.Admit(suite.repos, &unassigned))
	})
}

func (suite *CapacityPlannerTestSuite) TestReserveUsesTypeDefaults() {
	req := &models.AssignmentRequest{
		AssignmentType: models.AssignmentTypeScheduled,
		CrewID:         &suite.crewID,
		StartDate:      suite.start,
	}
	req.ID = uuid.New()

	suite.allocations.EXPECT().Create(gomock.Any()).DoAndReturn(func(a *models.CapacityAllocation) error {
		suite.Equal(20, a.AllocationPercentage)
		suite.Equal(suite.start.Add(8*time.Hour), a.EndDate)
		suite.False(a.Confirmed)
		return nil
	})

	allocation, err := suite.planner.Reserve(suite.repos, req)
	suite.Require().NoError(err)
	suite.Equal(req.ID, allocation.RequestID)

	req.RequiredCapacityPct = intPtr(70)
	suite.Equal(70, suite.planner.AllocationPct(req))

	req.CrewID = nil
	allocation, err = suite.planner.Reserve(suite.repos, req)
	suite.NoError(err)
	suite.Nil(allocation)
}

func (suite *CapacityPlannerTestSuite) TestConfirmFlagsOverbooking() {
	requestID := uuid.New()
	mine := suite.allocation(50)
	mine.RequestID = requestID

	gomock.InOrder(
		suite.allocations.EXPECT().Confirm(requestID, gomock.Any()).Return(int64(1), nil),
		suite.allocations.EXPECT().GetByRequestID(requestID).Return([]models.CapacityAllocation{mine}, nil),
		suite.allocations.EXPECT().
			FindOverlapping(&suite.crewID, suite.start, suite.end, true).
			Return([]models.CapacityAllocation{mine, suite.allocation(100)}, nil),
		suite.allocations.EXPECT().MarkOverbooked([]uuid.UUID{mine.ID}).Return(nil),
	)

	overbooked, err := suite.planner.Confirm(suite.repos, requestID)
	suite.Require().NoError(err)
	suite.Require().Len(overbooked, 1)
	suite.Equal(150, overbooked[0].UtilizationPct)
	suite.True(overbooked[0].Allocation.Overbooked)
}

func (suite *CapacityPlannerTestSuite) TestCheckConfirm() {
	testCases := []struct {
		name      string
		assign    models.AssignmentType
		mine      int
		existing  []int
		wantError bool
	}{
		{"fits", models.AssignmentTypeStandard, 25, []int{50}, false},
		{"fills exactly", models.AssignmentTypeScheduled, 20, []int{80}, false},
		{"would overbook", models.AssignmentTypeStandard, 25, []int{90}, true},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			req := &models.AssignmentRequest{AssignmentType: tc.assign}
			req.ID = uuid.New()
			mine := suite.allocation(tc.mine)
			mine.RequestID = req.ID
			mine.Confirmed = false

			existing := make([]models.CapacityAllocation, 0, len(tc.existing))
			for _, pct := range tc.existing {
				existing = append(existing, suite.allocation(pct))
			}
			suite.allocations.EXPECT().GetByRequestID(req.ID).Return([]models.CapacityAllocation{mine}, nil)
			suite.allocations.EXPECT().
				FindOverlapping(&suite.crewID, suite.start, suite.end, true).
				Return(existing, nil)

			err := suite.planner.CheckConfirm(suite.repos, req)
			if tc.wantError {
				var conflict *apperrors.CapacityConflictError
				suite.Require().ErrorAs(err, &conflict)
				suite.Equal(suite.crewID.String(), conflict.CrewID)
				return
			}
			suite.NoError(err)
		})
	}
}

func (suite *CapacityPlannerTestSuite) TestCheckConfirmLetsEmergencyOverbook() {
	req := &models.AssignmentRequest{AssignmentType: models.AssignmentTypeEmergency}
	req.ID = uuid.New()

	suite.NoError(suite.planner.CheckConfirm(suite.repos, req))
}

func (suite *CapacityPlannerTestSuite) TestConfirmTwiceIsNoop() {
	requestID := uuid.New()
	suite.allocations.EXPECT().Confirm(requestID, gomock.Any()).Return(int64(0), nil)

	overbooked, err := suite.planner.Confirm(suite.repos, requestID)
	suite.NoError(err)
	suite.Empty(overbooked)
}

func (suite *CapacityPlannerTestSuite) TestRelease() {
	requestID := uuid.New()
	suite.allocations.EXPECT().ReleaseByRequestID(requestID, gomock.Any()).Return(int64(1), nil)
	suite.allocations.EXPECT().ReleaseByRequestID(requestID, gomock.Any()).Return(int64(0), nil)

	n, err := suite.planner.Release(suite.repos, requestID)
	suite.NoError(err)
	suite.Equal(int64(1), n)

	n, err = suite.planner.Release(suite.repos, requestID)
	suite.NoError(err)
	suite.Zero(n)
}

func (suite *CapacityPlannerTestSuite) TestForecastEmptyCrew() {
	suite.allocations.EXPECT().
		FindOverlapping(&suite.crewID, gomock.Any(), gomock.Any(), true).
		Return(nil, nil)

	result, err := suite.planner.Forecast(suite.repos, &suite.crewID, 0)
	suite.Require().NoError(err)
	suite.Equal(30, result.Days)
	suite.Len(result.Forecast, 30)
	for _, day := range result.Forecast {
		suite.Zero(day.UtilizationPct)
		suite.Equal(100, day.AvailablePct)
		suite.False(day.IsOverbooked)
	}
	suite.Zero(result.Summary.AverageUtilization)
	suite.Zero(result.Summary.OverbookedDays)
	suite.Equal(time.Now().UTC().Format("2006-01-02"), result.Forecast[0].Date)
}

func (suite *CapacityPlannerTestSuite) TestForecastBusiestCrewPerDay() {
	other := uuid.New()
	busy := suite.allocation(80)
	quiet := suite.allocation(30)
	quiet.CrewID = other

	suite.allocations.EXPECT().
		FindOverlapping(nil, gomock.Any(), gomock.Any(), true).
		Return([]models.CapacityAllocation{busy, quiet}, nil)

	result, err := suite.planner.Forecast(suite.repos, nil, 5)
	suite.Require().NoError(err)

	peakDay := suite.start.UTC().Format("2006-01-02")
	found := false
	for _, day := range result.Forecast {
		if day.Date == peakDay {
			found = true
			suite.Equal(80, day.TotalAllocatedPct)
			suite.Equal(2, day.AssignmentCount)
		}
	}
	suite.True(found)
	suite.Equal(80, result.Summary.PeakUtilization)
}

func (suite *CapacityPlannerTestSuite) TestForecastRejectsHorizon() {
	_, err := suite.planner.Forecast(suite.repos, &suite.crewID, 91)
	suite.True(apperrors.IsValidation(err))

	_, err = suite.planner.Forecast(suite.repos, &suite.crewID, -1)
	suite.True(apperrors.IsValidation(err))
}

func (suite *CapacityPlannerTestSuite) TestCrewUtilization() {
	now := time.Now()
	current := suite.allocation(60)
	current.StartDate = now.Add(-time.Hour)
	current.EndDate = now.Add(time.Hour)
	future := suite.allocation(20)

	suite.allocations.EXPECT().GetConfirmedByCrew(suite.crewID).Return([]models.CapacityAllocation{current, future}, nil)
	suite.requests.EXPECT().CountByCrew(suite.crewID, nil).Return(int64(4), nil)
	suite.requests.EXPECT().CountByCrew(suite.crewID, gomock.Any()).Return(int64(1), nil)

	util, err := suite.planner.CrewUtilization(suite.repos, suite.crewID)
	suite.Require().NoError(err)
	suite.Equal(60, util.CurrentUtilizationPct)
	suite.Equal(40.0, util.AverageAllocationPct)
	suite.Equal(60, util.PeakAllocationPct)
	suite.Equal(int64(4), util.TotalAssignments)
	suite.Equal(int64(1), util.CompletedAssignments)
}

func TestCapacityPlannerTestSuite(t *testing.T) {
	suite.Run(t, new(CapacityPlannerTestSuite))
}
