package testutils

import (
	"fmt"
	"time"

	"assignment-workflow-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TradeTeamFactory provides methods to create test TradeTeam data
type TradeTeamFactory struct{}

// NewTradeTeamFactory creates a new TradeTeamFactory
func NewTradeTeamFactory() *TradeTeamFactory {
	return &TradeTeamFactory{}
}

// Create creates a test TradeTeam with default values
func (f *TradeTeamFactory) Create() *models.TradeTeam {
	id := uuid.New()
	return &models.TradeTeam{
		DirectoryModel: models.DirectoryModel{
			BaseModel: models.BaseModel{
				ID:        id,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			},
			Name:        "team-" + id.String()[:8],
			Title:       "Test Trade Team",
			Description: "A test trade team",
		},
		Region: "north",
	}
}

// TradeCrewFactory provides methods to create test TradeCrew data
type TradeCrewFactory struct{}

// NewTradeCrewFactory creates a new TradeCrewFactory
func NewTradeCrewFactory() *TradeCrewFactory {
	return &TradeCrewFactory{}
}

// Create creates a test TradeCrew with default values
func (f *TradeCrewFactory) Create() *models.TradeCrew {
	id := uuid.New()
	return &models.TradeCrew{
		DirectoryModel: models.DirectoryModel{
			BaseModel: models.BaseModel{
				ID:        id,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			},
			Name:  "crew-" + id.String()[:8],
			Title: "Test Crew",
		},
		Region: "north",
		Size:   4,
		Active: true,
	}
}

// WithTeam sets the team the crew belongs to
func (f *TradeCrewFactory) WithTeam(teamID uuid.UUID) *models.TradeCrew {
	crew := f.Create()
	crew.TeamID = &teamID
	return crew
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project with default values
func (f *ProjectFactory) Create() *models.Project {
	id := uuid.New()
	return &models.Project{
		DirectoryModel: models.DirectoryModel{
			BaseModel: models.BaseModel{
				ID:        id,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			},
			Name:  "project-" + id.String()[:8],
			Title: "Test Project",
		},
		Status: models.ProjectStatusActive,
		Region: "north",
	}
}

// WithStatus sets a custom status for the project
func (f *ProjectFactory) WithStatus(status models.ProjectStatus) *models.Project {
	project := f.Create()
	project.Status = status
	return project
}

// AssignmentRequestFactory provides methods to create test AssignmentRequest data
type AssignmentRequestFactory struct{}

// NewAssignmentRequestFactory creates a new AssignmentRequestFactory
func NewAssignmentRequestFactory() *AssignmentRequestFactory {
	return &AssignmentRequestFactory{}
}

// Create creates a pending standard request starting tomorrow
func (f *AssignmentRequestFactory) Create() *models.AssignmentRequest {
	start := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Hour)
	end := start.Add(8 * time.Hour)
	return &models.AssignmentRequest{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		RequesterID:    "requester-1",
		AssignmentType: models.AssignmentTypeStandard,
		PriorityLevel:  3,
		RequestedRole:  "electrician",
		StartDate:      start,
		EndDate:        &end,
		Description:    "Rewire the north annex switchboard",
		Status:         models.AssignmentStatusPending,
		Version:        1,
	}
}

// WithCrew sets the crew the request draws capacity from
func (f *AssignmentRequestFactory) WithCrew(crewID uuid.UUID) *models.AssignmentRequest {
	req := f.Create()
	req.CrewID = &crewID
	return req
}

// WithStatus sets a custom status for the request
func (f *AssignmentRequestFactory) WithStatus(status models.AssignmentStatus) *models.AssignmentRequest {
	req := f.Create()
	req.Status = status
	return req
}

// CapacityAllocationFactory provides methods to create test CapacityAllocation data
type CapacityAllocationFactory struct{}

// NewCapacityAllocationFactory creates a new CapacityAllocationFactory
func NewCapacityAllocationFactory() *CapacityAllocationFactory {
	return &CapacityAllocationFactory{}
}

// Create creates an unconfirmed allocation for the request's window
func (f *CapacityAllocationFactory) Create(req *models.AssignmentRequest, pct int) *models.CapacityAllocation {
	alloc := &models.CapacityAllocation{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		RequestID:            req.ID,
		AllocatedUnits:       1,
		AllocationPercentage: pct,
		StartDate:            req.StartDate,
		EndDate:              req.WindowEnd(8 * time.Hour),
	}
	if req.CrewID != nil {
		alloc.CrewID = *req.CrewID
	}
	return alloc
}

// Factories persists factory output through a shared DB handle
type Factories struct {
	db          *gorm.DB
	Teams       *TradeTeamFactory
	Crews       *TradeCrewFactory
	Projects    *ProjectFactory
	Requests    *AssignmentRequestFactory
	Allocations *CapacityAllocationFactory
}

// NewFactories creates factories that save into db
func NewFactories(db *gorm.DB) *Factories {
	return &Factories{
		db:          db,
		Teams:       NewTradeTeamFactory(),
		Crews:       NewTradeCrewFactory(),
		Projects:    NewProjectFactory(),
		Requests:    NewAssignmentRequestFactory(),
		Allocations: NewCapacityAllocationFactory(),
	}
}

// Save inserts every given row, stopping at the first failure
func (f *Factories) Save(rows ...interface{}) error {
	for _, row := range rows {
		if err := f.db.Create(row).Error; err != nil {
			return fmt.Errorf("save %T: %w", row, err)
		}
	}
	return nil
}

// SavedCrew inserts a team and one of its crews
func (f *Factories) SavedCrew() (*models.TradeCrew, error) {
	team := f.Teams.Create()
	crew := f.Crews.WithTeam(team.ID)
	if err := f.Save(team, crew); err != nil {
		return nil, err
	}
	return crew, nil
}
