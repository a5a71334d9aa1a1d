package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCapacityAllocationOverlaps(t *testing.T) {
	base := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	alloc := &CapacityAllocation{StartDate: base, EndDate: base.Add(8 * time.Hour)}

	testCases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"identical window", base, base.Add(8 * time.Hour), true},
		{"contained window", base.Add(time.Hour), base.Add(2 * time.Hour), true},
		{"partial overlap at start", base.Add(-time.Hour), base.Add(time.Hour), true},
		{"touching at end is not overlap", base.Add(8 * time.Hour), base.Add(9 * time.Hour), false},
		{"touching at start is not overlap", base.Add(-time.Hour), base, false},
		{"disjoint", base.Add(24 * time.Hour), base.Add(30 * time.Hour), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, alloc.Overlaps(tc.start, tc.end))
		})
	}
}

func TestAssignmentRequestWindowEnd(t *testing.T) {
	start := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	req := &AssignmentRequest{StartDate: start}
	assert.Equal(t, start.Add(8*time.Hour), req.WindowEnd(8*time.Hour))

	end := start.Add(2 * time.Hour)
	req.EndDate = &end
	assert.Equal(t, end, req.WindowEnd(8*time.Hour))
}

func TestEnums(t *testing.T) {
	assert.True(t, AssignmentTypeScheduled.IsValid())
	assert.False(t, AssignmentType("urgent").IsValid())

	assert.True(t, AssignmentStatusInProgress.IsValid())
	assert.False(t, AssignmentStatusPending.IsTerminal())
	assert.True(t, AssignmentStatusApproved.IsTerminal())

	assert.True(t, ApprovalDecisionRejected.IsValid())
	assert.False(t, ApprovalDecisionPending.IsValid())
}

func TestBeforeCreateAssignsID(t *testing.T) {
	m := &BaseModel{}
	assert.NoError(t, m.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, m.ID)

	existing := uuid.New()
	m = &BaseModel{ID: existing}
	assert.NoError(t, m.BeforeCreate(nil))
	assert.Equal(t, existing, m.ID)
}

func TestDirectoryModelDisplayName(t *testing.T) {
	assert.Equal(t, "North Electrical", DirectoryModel{Name: "north-elec", Title: "North Electrical"}.DisplayName())
	assert.Equal(t, "north-elec", DirectoryModel{Name: "north-elec"}.DisplayName())
}

func TestCapacityAllocationReleased(t *testing.T) {
	alloc := &CapacityAllocation{}
	assert.False(t, alloc.Released())

	at := time.Now()
	alloc.ReleasedAt = &at
	assert.True(t, alloc.Released())
}
