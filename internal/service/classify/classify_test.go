package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"workhistory/internal/storage"
)

func strPtr(s string) *string { return &s }

func TestOverrunHours(t *testing.T) {
	assert.Equal(t, 3.0, OverrunHours(storage.Operation{PlannedHours: 5, ActualHours: 8}))
	assert.Equal(t, 0.0, OverrunHours(storage.Operation{PlannedHours: 5, ActualHours: 5}))
	// Underruns never go negative.
	assert.Equal(t, 0.0, OverrunHours(storage.Operation{PlannedHours: 5, ActualHours: 2}))
}

func TestIsGhost(t *testing.T) {
	assert.True(t, IsGhost(storage.Operation{PlannedHours: 4, ActualHours: 0}))
	assert.False(t, IsGhost(storage.Operation{PlannedHours: 4, ActualHours: 0.5}))
	assert.False(t, IsGhost(storage.Operation{PlannedHours: 0, ActualHours: 0}))
}

func TestGhostHours(t *testing.T) {
	assert.Equal(t, 4.0, GhostHours(storage.Operation{PlannedHours: 4, ActualHours: 0}))
	assert.Equal(t, 0.0, GhostHours(storage.Operation{PlannedHours: 4, ActualHours: 1}))
}

func TestIsNCR_CaseInsensitive(t *testing.T) {
	assert.True(t, IsNCR(storage.Operation{WorkCenter: "NCR"}))
	assert.True(t, IsNCR(storage.Operation{WorkCenter: "ncr"}))
	assert.True(t, IsNCR(storage.Operation{WorkCenter: " Ncr "}))
	assert.False(t, IsNCR(storage.Operation{WorkCenter: "CNC"}))
}

func TestIsIdle(t *testing.T) {
	// Planned, unstarted, not complete: idle.
	assert.True(t, IsIdle(storage.Operation{
		PlannedHours: 4, ActualHours: 0, Status: strPtr("Released"),
	}))

	// Complete status is never idle.
	assert.False(t, IsIdle(storage.Operation{
		PlannedHours: 4, ActualHours: 0, Status: strPtr("Complete"),
	}))

	// Work started means not idle.
	assert.False(t, IsIdle(storage.Operation{
		PlannedHours: 4, ActualHours: 1, Status: strPtr("Released"),
	}))

	// File-ingested rows carry no status and are never idle.
	assert.False(t, IsIdle(storage.Operation{
		PlannedHours: 4, ActualHours: 0, Status: nil,
	}))

	// Nothing planned, nothing idle.
	assert.False(t, IsIdle(storage.Operation{
		PlannedHours: 0, ActualHours: 0, Status: strPtr("Released"),
	}))
}

func TestIsDNITask(t *testing.T) {
	assert.True(t, IsDNITask(storage.Operation{TaskDescription: "Dismantling & Inspection"}))
	assert.True(t, IsDNITask(storage.Operation{TaskDescription: "Full dismantling & inspection of rotor"}))
	assert.False(t, IsDNITask(storage.Operation{TaskDescription: "Inspection only"}))
}

func TestIsDNIJob(t *testing.T) {
	dni := storage.Operation{PartName: "Dismantling & Inspection", PlannedHours: 2, ActualHours: 1}
	shop := storage.Operation{PartName: "Impeller", PlannedHours: 5, ActualHours: 4}

	// Every part is the D&I label.
	assert.True(t, IsDNIJob([]storage.Operation{dni, dni}))

	// A planned production part makes it a production job.
	assert.False(t, IsDNIJob([]storage.Operation{dni, shop}))

	// A part with no planned hours counts as D&I work.
	assert.True(t, IsDNIJob([]storage.Operation{
		{PartName: "Impeller", PlannedHours: 0, ActualHours: 3},
	}))

	// The rule is per part: a D&I part plus an unplanned part is still
	// a D&I job, even though the job total is nonzero.
	assert.True(t, IsDNIJob([]storage.Operation{
		dni,
		{PartName: "Widget", PlannedHours: 0, ActualHours: 1},
	}))

	// The per-part sum spans all of the part's operations.
	assert.False(t, IsDNIJob([]storage.Operation{
		{PartName: "Impeller", PlannedHours: 0, ActualHours: 1},
		{PartName: "Impeller", PlannedHours: 3, ActualHours: 2},
	}))

	assert.False(t, IsDNIJob(nil))
}
