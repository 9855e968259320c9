// Package costing turns labor hours into burdened dollars. The policy is
// pure and deterministic: same inputs, same cost, no clock or store access.
package costing

import (
	"strings"

	"workhistory/internal/constants"
)

// Policy carries the two burden rates. The reduced rate applies to
// engineering and administrative labor that carries no shop overhead.
type Policy struct {
	DefaultRate float64
	ReducedRate float64
}

func NewPolicy(defaultRate, reducedRate float64) Policy {
	return Policy{DefaultRate: defaultRate, ReducedRate: reducedRate}
}

// Default returns the standard shop policy.
func Default() Policy {
	return NewPolicy(constants.DefaultBurdenRate, constants.ReducedBurdenRate)
}

// Rate selects the burden rate for one operation. The reduced rate wins
// when any of the three signals says the time is engineering or admin.
func (p Policy) Rate(partName, workCenter, taskDescription string) float64 {
	if constants.ReducedRateParts[strings.TrimSpace(partName)] {
		return p.ReducedRate
	}
	if strings.TrimSpace(workCenter) == constants.EngineeringWorkCenter {
		return p.ReducedRate
	}
	if strings.TrimSpace(taskDescription) == constants.EngineeringTaskLabel {
		return p.ReducedRate
	}
	return p.DefaultRate
}

// Cost is hours times the selected rate. Negative hours never occur after
// normalization; the guard keeps a stray caller from producing a negative
// dollar figure.
func (p Policy) Cost(hours float64, partName, workCenter, taskDescription string) float64 {
	if hours <= 0 {
		return 0
	}
	return hours * p.Rate(partName, workCenter, taskDescription)
}

// FlatCost prices hours at the default rate, for totals that have no
// per-operation attribution (projected cost, goods-adjusted projections).
func (p Policy) FlatCost(hours float64) float64 {
	if hours <= 0 {
		return 0
	}
	return hours * p.DefaultRate
}
