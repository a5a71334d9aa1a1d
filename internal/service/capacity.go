package service

import (
	"fmt"
	"math"
	"time"

	"assignment-workflow-backend/internal/database/models"
	apperrors "assignment-workflow-backend/internal/errors"
	"assignment-workflow-backend/internal/repository"
	"assignment-workflow-backend/internal/workflow"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const fullCapacityPct = 100

// CapacityPlanner tracks how much of each crew is committed over time
type CapacityPlanner struct {
	cfg workflow.Config
	now func() time.Time
}

// NewCapacityPlanner creates a planner over the given policy
func NewCapacityPlanner(cfg workflow.Config) *CapacityPlanner {
	return &CapacityPlanner{cfg: cfg, now: time.Now}
}

// OverbookedAllocation is a confirmed allocation whose window now exceeds full capacity
type OverbookedAllocation struct {
	Allocation     models.CapacityAllocation
	UtilizationPct int
}

// CheckAvailability sums confirmed allocations of crewID overlapping [start, end)
func (p *CapacityPlanner) CheckAvailability(repos *repository.Repositories, crewID uuid.UUID, start, end time.Time) (*CapacityResult, error) {
	if !end.After(start) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	allocations, err := repos.Allocations.FindOverlapping(&crewID, start, end, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load crew allocations: %w", err)
	}

	utilization := 0
	for _, a := range allocations {
		utilization += a.AllocationPercentage
	}

	return &CapacityResult{
		CrewID:                crewID,
		StartDate:             start,
		EndDate:               end,
		Available:             utilization < fullCapacityPct,
		AvailablePct:          maxInt(0, fullCapacityPct-utilization),
		CurrentUtilizationPct: utilization,
		ConflictCount:         len(allocations),
	}, nil
}

// Admit enforces the admission rule for a request about to reserve capacity.
// Emergency requests are always admitted.
func (p *CapacityPlanner) Admit(repos *repository.Repositories, req *models.AssignmentRequest) error {
	if req.CrewID == nil || req.AssignmentType == models.AssignmentTypeEmergency {
		return nil
	}
	result, err := p.CheckAvailability(repos, *req.CrewID, req.StartDate, req.WindowEnd(p.cfg.DefaultWindow))
	if err != nil {
		return err
	}
	if !result.Available {
		return &apperrors.CapacityConflictError{
			CrewID:         req.CrewID.String(),
			AvailablePct:   result.AvailablePct,
			UtilizationPct: result.CurrentUtilizationPct,
		}
	}
	return nil
}

// AllocationPct is the share a request reserves: its explicit requirement or the type default
func (p *CapacityPlanner) AllocationPct(req *models.AssignmentRequest) int {
	if req.RequiredCapacityPct != nil {
		return *req.RequiredCapacityPct
	}
	return p.cfg.DefaultAllocationPct[req.AssignmentType]
}

// Reserve creates the unconfirmed allocation of a request. Requests without a crew reserve nothing.
func (p *CapacityPlanner) Reserve(repos *repository.Repositories, req *models.AssignmentRequest) (*models.CapacityAllocation, error) {
	if req.CrewID == nil {
		return nil, nil
	}

	allocation := &models.CapacityAllocation{
		RequestID:            req.ID,
		CrewID:               *req.CrewID,
		AllocatedUnits:       1,
		AllocationPercentage: p.AllocationPct(req),
		StartDate:            req.StartDate,
		EndDate:              req.WindowEnd(p.cfg.DefaultWindow),
	}
	if err := repos.Allocations.Create(allocation); err != nil {
		return nil, fmt.Errorf("failed to reserve capacity: %w", err)
	}
	return allocation, nil
}

// CheckConfirm fails with a capacity conflict when confirming req's pending
// allocations would push its crew above full capacity. Only emergency requests
// may overbook, so they always pass.
func (p *CapacityPlanner) CheckConfirm(repos *repository.Repositories, req *models.AssignmentRequest) error {
	if req.AssignmentType == models.AssignmentTypeEmergency {
		return nil
	}

	allocations, err := repos.Allocations.GetByRequestID(req.ID)
	if err != nil {
		return fmt.Errorf("failed to load request allocations: %w", err)
	}

	for _, a := range allocations {
		if a.Confirmed {
			continue
		}
		crewID := a.CrewID
		result, err := p.CheckAvailability(repos, crewID, a.StartDate, a.EndDate)
		if err != nil {
			return err
		}
		if result.CurrentUtilizationPct+a.AllocationPercentage > fullCapacityPct {
			return &apperrors.CapacityConflictError{
				CrewID:         crewID.String(),
				AvailablePct:   result.AvailablePct,
				UtilizationPct: result.CurrentUtilizationPct,
			}
		}
	}
	return nil
}

// Confirm marks the request's allocations confirmed and flags any that push
// their crew above full capacity. Calling it again is a no-op.
func (p *CapacityPlanner) Confirm(repos *repository.Repositories, requestID uuid.UUID) ([]OverbookedAllocation, error) {
	confirmed, err := repos.Allocations.Confirm(requestID, p.now())
	if err != nil {
		return nil, fmt.Errorf("failed to confirm capacity: %w", err)
	}
	if confirmed == 0 {
		return nil, nil
	}

	allocations, err := repos.Allocations.GetByRequestID(requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to load request allocations: %w", err)
	}

	var overbooked []OverbookedAllocation
	var ids []uuid.UUID
	for _, a := range allocations {
		crewID := a.CrewID
		overlapping, err := repos.Allocations.FindOverlapping(&crewID, a.StartDate, a.EndDate, true)
		if err != nil {
			return nil, fmt.Errorf("failed to load crew allocations: %w", err)
		}
		sum := 0
		for _, o := range overlapping {
			sum += o.AllocationPercentage
		}
		if sum > fullCapacityPct {
			a.Overbooked = true
			overbooked = append(overbooked, OverbookedAllocation{Allocation: a, UtilizationPct: sum})
			ids = append(ids, a.ID)
			logrus.WithFields(logrus.Fields{
				"request_id":      requestID.String(),
				"crew_id":         crewID.String(),
				"utilization_pct": sum,
			}).Warn("crew overbooked by confirmed allocation")
		}
	}

	if err := repos.Allocations.MarkOverbooked(ids); err != nil {
		return nil, fmt.Errorf("failed to flag overbooked allocations: %w", err)
	}
	return overbooked, nil
}

// Release gives back every active allocation of a request. The rows are
// stamped released rather than removed; releasing twice is harmless.
func (p *CapacityPlanner) Release(repos *repository.Repositories, requestID uuid.UUID) (int64, error) {
	n, err := repos.Allocations.ReleaseByRequestID(requestID, p.now())
	if err != nil {
		return 0, fmt.Errorf("failed to release capacity: %w", err)
	}
	if n > 0 {
		logrus.WithFields(logrus.Fields{
			"request_id":  requestID.String(),
			"allocations": n,
		}).Info("capacity released")
	}
	return n, nil
}

// Forecast reports confirmed utilization for each UTC day starting today.
// Without a crew every day reports its busiest crew.
func (p *CapacityPlanner) Forecast(repos *repository.Repositories, crewID *uuid.UUID, days int) (*ForecastResult, error) {
	if days == 0 {
		days = p.cfg.DefaultForecastDays
	}
	if days < 1 || days > p.cfg.MaxForecastDays {
		return nil, apperrors.NewValidationError("days", fmt.Sprintf("must be between 1 and %d", p.cfg.MaxForecastDays))
	}

	today := p.now().UTC().Truncate(24 * time.Hour)
	horizonEnd := today.AddDate(0, 0, days)

	allocations, err := repos.Allocations.FindOverlapping(crewID, today, horizonEnd, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load allocations: %w", err)
	}

	result := &ForecastResult{CrewID: crewID, Days: days, Forecast: make([]ForecastDay, 0, days)}
	totalUtilization := 0

	for i := 0; i < days; i++ {
		dayStart := today.AddDate(0, 0, i)
		dayEnd := dayStart.Add(24 * time.Hour)

		perCrew := make(map[uuid.UUID]int)
		count := 0
		for j := range allocations {
			if allocations[j].Overlaps(dayStart, dayEnd) {
				perCrew[allocations[j].CrewID] += allocations[j].AllocationPercentage
				count++
			}
		}

		sum := 0
		for _, pct := range perCrew {
			if pct > sum {
				sum = pct
			}
		}

		day := ForecastDay{
			Date:              dayStart.Format("2006-01-02"),
			UtilizationPct:    minInt(sum, fullCapacityPct),
			TotalAllocatedPct: sum,
			AvailablePct:      maxInt(0, fullCapacityPct-sum),
			IsOverbooked:      sum > fullCapacityPct,
			AssignmentCount:   count,
		}
		result.Forecast = append(result.Forecast, day)

		totalUtilization += day.UtilizationPct
		if sum > result.Summary.PeakUtilization {
			result.Summary.PeakUtilization = sum
		}
		if day.IsOverbooked {
			result.Summary.OverbookedDays++
		}
	}
	result.Summary.AverageUtilization = round2(float64(totalUtilization) / float64(days))

	return result, nil
}

// CrewUtilization summarizes a crew's confirmed allocations and assignment counts
func (p *CapacityPlanner) CrewUtilization(repos *repository.Repositories, crewID uuid.UUID) (*CrewUtilization, error) {
	allocations, err := repos.Allocations.GetConfirmedByCrew(crewID)
	if err != nil {
		return nil, fmt.Errorf("failed to load crew allocations: %w", err)
	}

	now := p.now()
	util := &CrewUtilization{CrewID: crewID}
	current, total := 0, 0
	for _, a := range allocations {
		if !a.StartDate.After(now) && a.EndDate.After(now) {
			current += a.AllocationPercentage
		}
		total += a.AllocationPercentage
		if a.AllocationPercentage > util.PeakAllocationPct {
			util.PeakAllocationPct = a.AllocationPercentage
		}
	}
	util.CurrentUtilizationPct = minInt(current, fullCapacityPct)
	if len(allocations) > 0 {
		util.AverageAllocationPct = round2(float64(total) / float64(len(allocations)))
	}

	if util.TotalAssignments, err = repos.Requests.CountByCrew(crewID, nil); err != nil {
		return nil, fmt.Errorf("failed to count crew assignments: %w", err)
	}
	completed := models.AssignmentStatusCompleted
	if util.CompletedAssignments, err = repos.Requests.CountByCrew(crewID, &completed); err != nil {
		return nil, fmt.Errorf("failed to count completed assignments: %w", err)
	}

	return util, nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
