// Package classify holds the operation predicates every aggregation
// shares. All of them are pure functions over a single operation.
package classify

import (
	"strings"

	"workhistory/internal/constants"
	"workhistory/internal/storage"
)

// OverrunHours is actual minus planned, floored at zero. Underruns do not
// offset overruns anywhere in the engine.
func OverrunHours(op storage.Operation) float64 {
	if op.ActualHours > op.PlannedHours {
		return op.ActualHours - op.PlannedHours
	}
	return 0
}

func IsOverrun(op storage.Operation) bool {
	return op.ActualHours > op.PlannedHours
}

// IsGhost reports a planned operation that never recorded any work.
func IsGhost(op storage.Operation) bool {
	return op.ActualHours == 0 && op.PlannedHours > 0
}

// GhostHours is the planned time of a ghost operation, else zero.
func GhostHours(op storage.Operation) float64 {
	if IsGhost(op) {
		return op.PlannedHours
	}
	return 0
}

// IsNCR matches the rework work center, case-insensitively.
func IsNCR(op storage.Operation) bool {
	return strings.EqualFold(strings.TrimSpace(op.WorkCenter), constants.NCRWorkCenter)
}

// IsIdle reports a planned, unstarted operation whose status says it is
// not complete. Rows without a status are never idle: file ingest leaves
// status NULL and those rows are history, not live work.
func IsIdle(op storage.Operation) bool {
	if op.Status == nil {
		return false
	}
	return op.ActualHours == 0 && op.PlannedHours > 0 && *op.Status != constants.StatusComplete
}

// IsDNITask matches task descriptions that contain the
// dismantling-and-inspection label, case-insensitively.
func IsDNITask(op storage.Operation) bool {
	return strings.Contains(
		strings.ToLower(op.TaskDescription),
		strings.ToLower(constants.DNIPartLabel),
	)
}

// IsDNIPart matches part names that contain the dismantling-and-inspection
// label, case-insensitively.
func IsDNIPart(op storage.Operation) bool {
	return strings.Contains(
		strings.ToLower(op.PartName),
		strings.ToLower(constants.DNIPartLabel),
	)
}

// IsDNIJob classifies a whole job as dismantling-and-inspection work:
// every distinct part either carries the D&I label or has zero planned
// hours summed over that part's operations. One production part with a
// plan keeps the whole job active.
func IsDNIJob(ops []storage.Operation) bool {
	if len(ops) == 0 {
		return false
	}

	plannedByPart := make(map[string]float64)
	for _, op := range ops {
		name := strings.TrimSpace(op.PartName)
		if name == "" {
			continue
		}
		plannedByPart[name] += op.PlannedHours
	}

	for name, planned := range plannedByPart {
		if strings.EqualFold(name, constants.DNIPartLabel) {
			continue
		}
		if planned != 0 {
			return false
		}
	}
	return true
}
