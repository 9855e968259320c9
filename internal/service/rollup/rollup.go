// Package rollup computes every multi-operation aggregate: yearly and
// quarterly totals, work-center, customer and part breakdowns, overrun
// rankings, NCR summaries and norm adjustment suggestions.
//
// All functions here are pure: they fold over one operation snapshot and
// return fresh aggregates. Partitioning a snapshot and summing the
// partial rollups gives the same totals as rolling up the whole snapshot.
package rollup

import (
	"fmt"
	"sort"
	"strings"

	"workhistory/internal/constants"
	"workhistory/internal/service/classify"
	"workhistory/internal/service/costing"
	"workhistory/internal/storage"
)

// opYear extracts the rollup year. Operations without a finish date have
// no year and stay out of time-bucketed aggregates; they still count in
// dimension aggregates (work center, customer, part).
func opYear(op storage.Operation) (int, bool) {
	if op.FinishDate == nil {
		return 0, false
	}
	return op.FinishDate.Year(), true
}

// YearlySummaries folds the snapshot into per-year totals, ascending.
func YearlySummaries(ops []storage.Operation, p costing.Policy) []storage.YearlySummary {
	type yearAcc struct {
		storage.YearlySummary
		jobs      map[string]bool
		customers map[string]bool
		parts     map[string]bool
	}

	byYear := make(map[int]*yearAcc)
	for _, op := range ops {
		year, ok := opYear(op)
		if !ok {
			continue
		}
		acc := byYear[year]
		if acc == nil {
			acc = &yearAcc{
				jobs:      make(map[string]bool),
				customers: make(map[string]bool),
				parts:     make(map[string]bool),
			}
			acc.Year = year
			byYear[year] = acc
		}
		acc.PlannedHours += op.PlannedHours
		acc.ActualHours += op.ActualHours
		acc.OverrunHours += classify.OverrunHours(op)
		acc.GhostHours += classify.GhostHours(op)
		if classify.IsNCR(op) {
			acc.NCRHours += op.ActualHours
		}
		acc.PlannedCost += p.Cost(op.PlannedHours, op.PartName, op.WorkCenter, op.TaskDescription)
		acc.ActualCost += p.Cost(op.ActualHours, op.PartName, op.WorkCenter, op.TaskDescription)
		acc.OperationCount++
		acc.jobs[op.JobNumber] = true
		acc.customers[op.CustomerName] = true
		acc.parts[op.PartName] = true
	}

	out := make([]storage.YearlySummary, 0, len(byYear))
	for _, acc := range byYear {
		s := acc.YearlySummary
		s.JobCount = len(acc.jobs)
		s.CustomerCount = len(acc.customers)
		s.PartCount = len(acc.parts)
		s.PlannedHours = storage.Round2(s.PlannedHours)
		s.ActualHours = storage.Round2(s.ActualHours)
		s.OverrunHours = storage.Round2(s.OverrunHours)
		s.GhostHours = storage.Round2(s.GhostHours)
		s.NCRHours = storage.Round2(s.NCRHours)
		s.PlannedCost = storage.Round2(s.PlannedCost)
		s.ActualCost = storage.Round2(s.ActualCost)
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })

	return out
}

// QuarterlySummaries buckets dated operations by calendar quarter,
// chronologically. Callers scope the snapshot to a year first when they
// want a single year's quarters.
func QuarterlySummaries(ops []storage.Operation, p costing.Policy) []storage.QuarterlySummary {
	type quarterAcc struct {
		storage.QuarterlySummary
		year, quarter int
		jobs          map[string]bool
	}

	byQuarter := make(map[[2]int]*quarterAcc)
	for _, op := range ops {
		year, ok := opYear(op)
		if !ok {
			continue
		}
		quarter := (int(op.FinishDate.Month())-1)/3 + 1
		key := [2]int{year, quarter}
		acc := byQuarter[key]
		if acc == nil {
			acc = &quarterAcc{year: year, quarter: quarter, jobs: make(map[string]bool)}
			acc.Quarter = fmt.Sprintf("Q%d %d", quarter, year)
			byQuarter[key] = acc
		}
		acc.PlannedHours += op.PlannedHours
		acc.ActualHours += op.ActualHours
		overrun := classify.OverrunHours(op)
		acc.OverrunHours += overrun
		acc.OverrunCost += p.Cost(overrun, op.PartName, op.WorkCenter, op.TaskDescription)
		acc.jobs[op.JobNumber] = true
	}

	accs := make([]*quarterAcc, 0, len(byQuarter))
	for _, acc := range byQuarter {
		accs = append(accs, acc)
	}
	sort.Slice(accs, func(i, j int) bool {
		if accs[i].year != accs[j].year {
			return accs[i].year < accs[j].year
		}
		return accs[i].quarter < accs[j].quarter
	})

	out := make([]storage.QuarterlySummary, 0, len(accs))
	for _, acc := range accs {
		s := acc.QuarterlySummary
		s.TotalJobs = len(acc.jobs)
		s.PlannedHours = storage.Round2(s.PlannedHours)
		s.ActualHours = storage.Round2(s.ActualHours)
		s.OverrunHours = storage.Round2(s.OverrunHours)
		s.OverrunCost = storage.Round2(s.OverrunCost)
		out = append(out, s)
	}

	return out
}

// WorkCenterSummaries folds the snapshot per work center, busiest first.
// Undated operations are included: a work center's load does not depend
// on whether the row carries a finish date.
func WorkCenterSummaries(ops []storage.Operation, p costing.Policy) []storage.WorkCenterSummary {
	type wcAcc struct {
		storage.WorkCenterSummary
		jobs map[string]bool
	}

	byWC := make(map[string]*wcAcc)
	for _, op := range ops {
		acc := byWC[op.WorkCenter]
		if acc == nil {
			acc = &wcAcc{jobs: make(map[string]bool)}
			acc.WorkCenter = op.WorkCenter
			byWC[op.WorkCenter] = acc
		}
		acc.Operations++
		acc.PlannedHours += op.PlannedHours
		acc.ActualHours += op.ActualHours
		overrun := classify.OverrunHours(op)
		acc.OverrunHours += overrun
		acc.OverrunCost += p.Cost(overrun, op.PartName, op.WorkCenter, op.TaskDescription)
		acc.jobs[op.JobNumber] = true
	}

	out := make([]storage.WorkCenterSummary, 0, len(byWC))
	for _, acc := range byWC {
		s := acc.WorkCenterSummary
		s.JobCount = len(acc.jobs)
		s.PlannedHours = storage.Round2(s.PlannedHours)
		s.ActualHours = storage.Round2(s.ActualHours)
		s.OverrunHours = storage.Round2(s.OverrunHours)
		s.OverrunCost = storage.Round2(s.OverrunCost)
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ActualHours > out[j].ActualHours })

	return out
}

// CustomerSummaries folds the snapshot per customer with the hour
// efficiency profitability proxy. Efficiency is planned over actual; a
// customer with no actual hours scores a neutral 1.0, one with no planned
// hours scores 0.
func CustomerSummaries(ops []storage.Operation) []storage.CustomerSummary {
	type custAcc struct {
		storage.CustomerSummary
		jobs map[string]bool
	}

	byCustomer := make(map[string]*custAcc)
	for _, op := range ops {
		acc := byCustomer[op.CustomerName]
		if acc == nil {
			acc = &custAcc{jobs: make(map[string]bool)}
			acc.CustomerName = op.CustomerName
			acc.ListName = AbbreviateName(op.CustomerName)
			byCustomer[op.CustomerName] = acc
		}
		acc.PlannedHours += op.PlannedHours
		acc.ActualHours += op.ActualHours
		acc.OverrunHours += classify.OverrunHours(op)
		acc.jobs[op.JobNumber] = true
	}

	out := make([]storage.CustomerSummary, 0, len(byCustomer))
	for _, acc := range byCustomer {
		s := acc.CustomerSummary
		s.JobCount = len(acc.jobs)

		efficiency := 1.0
		switch {
		case s.PlannedHours == 0:
			efficiency = 0
		case s.ActualHours != 0:
			efficiency = s.PlannedHours / s.ActualHours
		}
		s.Profitability = storage.Round2((efficiency - 0.8) * 100)

		s.PlannedHours = storage.Round2(s.PlannedHours)
		s.ActualHours = storage.Round2(s.ActualHours)
		s.OverrunHours = storage.Round2(s.OverrunHours)
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ActualHours > out[j].ActualHours })

	return out
}

// PartSummaries folds the snapshot per part. ROI is planned cost minus
// actual cost: positive when the shop beat the norm.
func PartSummaries(ops []storage.Operation, p costing.Policy) []storage.PartSummary {
	type partAcc struct {
		storage.PartSummary
		jobs map[string]bool
	}

	byPart := make(map[string]*partAcc)
	for _, op := range ops {
		acc := byPart[op.PartName]
		if acc == nil {
			acc = &partAcc{jobs: make(map[string]bool)}
			acc.PartName = op.PartName
			byPart[op.PartName] = acc
		}
		acc.PlannedHours += op.PlannedHours
		acc.ActualHours += op.ActualHours
		acc.OverrunHours += classify.OverrunHours(op)
		acc.ROI += p.Cost(op.PlannedHours, op.PartName, op.WorkCenter, op.TaskDescription) -
			p.Cost(op.ActualHours, op.PartName, op.WorkCenter, op.TaskDescription)
		acc.jobs[op.JobNumber] = true
	}

	out := make([]storage.PartSummary, 0, len(byPart))
	for _, acc := range byPart {
		s := acc.PartSummary
		s.JobCount = len(acc.jobs)
		s.PlannedHours = storage.Round2(s.PlannedHours)
		s.ActualHours = storage.Round2(s.ActualHours)
		s.OverrunHours = storage.Round2(s.OverrunHours)
		s.ROI = storage.Round2(s.ROI)
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ActualHours > out[j].ActualHours })

	return out
}

// TopOverruns ranks overrun operations by overrun cost, ties broken by
// overrun hours. Dismantling and inspection tasks stay out: their plans
// are placeholders, not norms.
func TopOverruns(ops []storage.Operation, p costing.Policy, limit int) []storage.OverrunRecord {
	var records []storage.OverrunRecord
	for _, op := range ops {
		if !classify.IsOverrun(op) || classify.IsDNITask(op) {
			continue
		}
		overrun := classify.OverrunHours(op)
		records = append(records, storage.OverrunRecord{
			JobNumber:       op.JobNumber,
			PartName:        op.PartName,
			WorkCenter:      op.WorkCenter,
			TaskDescription: op.TaskDescription,
			PlannedHours:    storage.Round2(op.PlannedHours),
			ActualHours:     storage.Round2(op.ActualHours),
			OverrunHours:    storage.Round2(overrun),
			OverrunCost:     storage.Round2(p.Cost(overrun, op.PartName, op.WorkCenter, op.TaskDescription)),
		})
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].OverrunCost != records[j].OverrunCost {
			return records[i].OverrunCost > records[j].OverrunCost
		}
		return records[i].OverrunHours > records[j].OverrunHours
	})

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records
}

// NCRSummaryByPart aggregates rework operations per part, heaviest first.
func NCRSummaryByPart(ops []storage.Operation, p costing.Policy) []storage.NCRPartSummary {
	byPart := make(map[string]*storage.NCRPartSummary)
	for _, op := range ops {
		if !classify.IsNCR(op) {
			continue
		}
		acc := byPart[op.PartName]
		if acc == nil {
			acc = &storage.NCRPartSummary{PartName: op.PartName}
			byPart[op.PartName] = acc
		}
		acc.TotalNCRHours += op.ActualHours
		acc.TotalNCRCost += p.Cost(op.ActualHours, op.PartName, op.WorkCenter, op.TaskDescription)
		acc.NCROccurrences++
	}

	out := make([]storage.NCRPartSummary, 0, len(byPart))
	for _, acc := range byPart {
		acc.TotalNCRHours = storage.Round2(acc.TotalNCRHours)
		acc.TotalNCRCost = storage.Round2(acc.TotalNCRCost)
		out = append(out, *acc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TotalNCRHours > out[j].TotalNCRHours })

	return out
}

// RepeatNCRs lists parts whose rework spans more than one job. A part
// reworked many times inside a single job is a one-off, not a repeat
// failure.
func RepeatNCRs(ops []storage.Operation) []storage.RepeatNCR {
	type repeatAcc struct {
		hours float64
		jobs  map[string]bool
	}

	byPart := make(map[string]*repeatAcc)
	for _, op := range ops {
		if !classify.IsNCR(op) {
			continue
		}
		acc := byPart[op.PartName]
		if acc == nil {
			acc = &repeatAcc{jobs: make(map[string]bool)}
			byPart[op.PartName] = acc
		}
		acc.hours += op.ActualHours
		acc.jobs[op.JobNumber] = true
	}

	var out []storage.RepeatNCR
	for part, acc := range byPart {
		if len(acc.jobs) <= 1 {
			continue
		}
		out = append(out, storage.RepeatNCR{
			PartName:       part,
			RepeatNCRHours: storage.Round2(acc.hours),
			TotalNCRJobs:   len(acc.jobs),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RepeatNCRHours > out[j].RepeatNCRHours })

	return out
}

// NCRAveragesAllTime averages rework cost and affected part count over
// the distinct years present in the snapshot. Undated rework rows carry
// no year and stay out.
func NCRAveragesAllTime(ops []storage.Operation, p costing.Policy) storage.NCRAverages {
	costByYear := make(map[int]float64)
	partsByYear := make(map[int]map[string]bool)
	for _, op := range ops {
		if !classify.IsNCR(op) {
			continue
		}
		year, ok := opYear(op)
		if !ok {
			continue
		}
		costByYear[year] += p.Cost(op.ActualHours, op.PartName, op.WorkCenter, op.TaskDescription)
		if partsByYear[year] == nil {
			partsByYear[year] = make(map[string]bool)
		}
		partsByYear[year][op.PartName] = true
	}

	if len(costByYear) == 0 {
		return storage.NCRAverages{}
	}

	var totalCost float64
	var totalParts int
	for year, cost := range costByYear {
		totalCost += cost
		totalParts += len(partsByYear[year])
	}
	years := float64(len(costByYear))

	return storage.NCRAverages{
		AvgNCRCostPerYear:      storage.Round2(totalCost / years),
		AvgPartsWithNCRPerYear: storage.Round2(float64(totalParts) / years),
	}
}

// NCRJobDetails lists per-job rework hours for one part.
func NCRJobDetails(ops []storage.Operation, partName string) []storage.NCRJobDetail {
	type key struct{ job, workOrder string }

	byJob := make(map[key]float64)
	for _, op := range ops {
		if !classify.IsNCR(op) || !strings.EqualFold(op.PartName, partName) {
			continue
		}
		byJob[key{op.JobNumber, op.WorkOrderNumber}] += op.ActualHours
	}

	out := make([]storage.NCRJobDetail, 0, len(byJob))
	for k, hours := range byJob {
		out = append(out, storage.NCRJobDetail{
			JobNumber:       k.job,
			WorkOrderNumber: k.workOrder,
			NCRHours:        storage.Round2(hours),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NCRHours > out[j].NCRHours })

	return out
}

// JobAdjustments suggests per-job norm increases. Only jobs that ran over
// plan get a suggestion; the suggested hours reprice the plan at the
// observed ratio.
func JobAdjustments(ops []storage.Operation) []storage.JobAdjustment {
	type jobAcc struct{ planned, actual float64 }

	byJob := make(map[string]*jobAcc)
	for _, op := range ops {
		acc := byJob[op.JobNumber]
		if acc == nil {
			acc = &jobAcc{}
			byJob[op.JobNumber] = acc
		}
		acc.planned += op.PlannedHours
		acc.actual += op.ActualHours
	}

	var out []storage.JobAdjustment
	for job, acc := range byJob {
		if acc.planned <= 0 || acc.actual <= acc.planned {
			continue
		}
		pct := (acc.actual/acc.planned - 1) * 100
		out = append(out, storage.JobAdjustment{
			JobNumber:         job,
			PlannedHours:      storage.Round2(acc.planned),
			ActualHours:       storage.Round2(acc.actual),
			SuggestedHours:    storage.Round2(acc.planned * (1 + pct/100)),
			AdjustmentPercent: storage.Round1(pct),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].AdjustmentPercent > out[j].AdjustmentPercent
	})

	return out
}

// partAdjustmentLimit bounds the part overrun listing.
const partAdjustmentLimit = 20

// PartAdjustments folds only the overrunning operations per part and
// suggests the percent increase that would have absorbed the overrun.
func PartAdjustments(ops []storage.Operation) []storage.PartAdjustment {
	type partAcc struct {
		storage.PartAdjustment
		jobs map[string]bool
	}

	byPart := make(map[string]*partAcc)
	for _, op := range ops {
		if !classify.IsOverrun(op) {
			continue
		}
		acc := byPart[op.PartName]
		if acc == nil {
			acc = &partAcc{jobs: make(map[string]bool)}
			acc.PartName = op.PartName
			byPart[op.PartName] = acc
		}
		acc.PlannedHours += op.PlannedHours
		acc.ActualHours += op.ActualHours
		acc.OverrunHours += classify.OverrunHours(op)
		acc.jobs[op.JobNumber] = true
	}

	out := make([]storage.PartAdjustment, 0, len(byPart))
	for _, acc := range byPart {
		s := acc.PartAdjustment
		s.JobCount = len(acc.jobs)
		pct := 0.0
		if s.PlannedHours > 0 {
			pct = s.OverrunHours / s.PlannedHours * 100
		}
		s.AdjustmentPercent = storage.Round1(pct)
		s.SuggestedHours = storage.Round2(s.PlannedHours * (1 + pct/100))
		s.PlannedHours = storage.Round2(s.PlannedHours)
		s.ActualHours = storage.Round2(s.ActualHours)
		s.OverrunHours = storage.Round2(s.OverrunHours)
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OverrunHours > out[j].OverrunHours })

	if len(out) > partAdjustmentLimit {
		out = out[:partAdjustmentLimit]
	}
	return out
}

// PartTaskDetails breaks the listed parts' overruns down by task.
func PartTaskDetails(ops []storage.Operation, parts []storage.PartAdjustment) []storage.PartTaskDetail {
	tracked := make(map[string]bool, len(parts))
	for _, p := range parts {
		tracked[p.PartName] = true
	}

	type taskKey struct{ part, task string }
	type taskAcc struct{ planned, actual, overrun float64 }

	byTask := make(map[taskKey]*taskAcc)
	for _, op := range ops {
		if !tracked[op.PartName] || !classify.IsOverrun(op) {
			continue
		}
		key := taskKey{op.PartName, op.TaskDescription}
		acc := byTask[key]
		if acc == nil {
			acc = &taskAcc{}
			byTask[key] = acc
		}
		acc.planned += op.PlannedHours
		acc.actual += op.ActualHours
		acc.overrun += classify.OverrunHours(op)
	}

	out := make([]storage.PartTaskDetail, 0, len(byTask))
	for key, acc := range byTask {
		pct := 0.0
		if acc.planned > 0 {
			pct = acc.overrun / acc.planned * 100
		}
		out = append(out, storage.PartTaskDetail{
			PartName:          key.part,
			TaskDescription:   key.task,
			PlannedHours:      storage.Round2(acc.planned),
			ActualHours:       storage.Round2(acc.actual),
			OverrunHours:      storage.Round2(acc.overrun),
			AdjustmentPercent: storage.Round1(pct),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].PartName != out[j].PartName {
			return out[i].PartName < out[j].PartName
		}
		return out[i].OverrunHours > out[j].OverrunHours
	})

	return out
}

// YearTotals heads the year detail page. Opportunity hours are overrun
// plus ghost hours; the recommended buffer scales their share of the plan
// by 1.2 and caps at the policy ceiling.
func YearTotals(ops []storage.Operation, p costing.Policy, year int) storage.YearSummaryTotals {
	t := storage.YearSummaryTotals{Year: year}

	jobs := make(map[string]bool)
	customers := make(map[string]bool)
	parts := make(map[string]bool)

	var opportunityCost float64
	for _, op := range ops {
		t.TotalPlannedHours += op.PlannedHours
		t.TotalActualHours += op.ActualHours
		overrun := classify.OverrunHours(op)
		ghost := classify.GhostHours(op)
		t.TotalOverrunHours += overrun
		t.GhostHours += ghost
		opportunityCost += p.Cost(overrun+ghost, op.PartName, op.WorkCenter, op.TaskDescription)
		if classify.IsNCR(op) {
			t.TotalNCRHours += op.ActualHours
		}
		t.TotalPlannedCost += p.Cost(op.PlannedHours, op.PartName, op.WorkCenter, op.TaskDescription)
		t.TotalActualCost += p.Cost(op.ActualHours, op.PartName, op.WorkCenter, op.TaskDescription)
		t.TotalOperations++
		jobs[op.JobNumber] = true
		customers[op.CustomerName] = true
		parts[op.PartName] = true
	}

	t.OpportunityHours = t.TotalOverrunHours + t.GhostHours
	t.OpportunityCostDollars = storage.Round2(opportunityCost)

	buffer := 0.0
	if t.TotalPlannedHours > 0 {
		buffer = t.OpportunityHours / t.TotalPlannedHours * 100 * 1.2
		if buffer > constants.BufferCapPercent {
			buffer = constants.BufferCapPercent
		}
	}
	t.RecommendedBufferPercent = storage.Round1(buffer)

	t.TotalJobs = len(jobs)
	t.TotalCustomers = len(customers)
	t.TotalUniqueParts = len(parts)

	t.TotalPlannedHours = storage.Round2(t.TotalPlannedHours)
	t.TotalActualHours = storage.Round2(t.TotalActualHours)
	t.TotalOverrunHours = storage.Round2(t.TotalOverrunHours)
	t.GhostHours = storage.Round2(t.GhostHours)
	t.OpportunityHours = storage.Round2(t.OpportunityHours)
	t.TotalNCRHours = storage.Round2(t.TotalNCRHours)
	t.TotalPlannedCost = storage.Round2(t.TotalPlannedCost)
	t.TotalActualCost = storage.Round2(t.TotalActualCost)

	return t
}

// FullSummary folds the whole snapshot, with the yearly and work-center
// breakdowns attached.
func FullSummary(ops []storage.Operation, p costing.Policy) storage.FullSummary {
	s := storage.FullSummary{}

	jobs := make(map[string]bool)
	customers := make(map[string]bool)
	parts := make(map[string]bool)
	for _, op := range ops {
		s.TotalPlannedHours += op.PlannedHours
		s.TotalActualHours += op.ActualHours
		s.TotalOverrunHours += classify.OverrunHours(op)
		if classify.IsNCR(op) {
			s.TotalNCRHours += op.ActualHours
		}
		s.TotalPlannedCost += p.Cost(op.PlannedHours, op.PartName, op.WorkCenter, op.TaskDescription)
		s.TotalActualCost += p.Cost(op.ActualHours, op.PartName, op.WorkCenter, op.TaskDescription)
		s.TotalOperations++
		jobs[op.JobNumber] = true
		customers[op.CustomerName] = true
		parts[op.PartName] = true
	}

	s.TotalJobs = len(jobs)
	s.TotalCustomers = len(customers)
	s.TotalUniqueParts = len(parts)
	s.TotalPlannedHours = storage.Round2(s.TotalPlannedHours)
	s.TotalActualHours = storage.Round2(s.TotalActualHours)
	s.TotalOverrunHours = storage.Round2(s.TotalOverrunHours)
	s.TotalNCRHours = storage.Round2(s.TotalNCRHours)
	s.TotalPlannedCost = storage.Round2(s.TotalPlannedCost)
	s.TotalActualCost = storage.Round2(s.TotalActualCost)

	s.YearlyBreakdown = YearlySummaries(ops, p)
	s.WorkCenterBreakdown = WorkCenterSummaries(ops, p)

	return s
}

// AbbreviateName shortens a customer name for list columns. Long names
// compact to dotted leading fragments of their first two words; short
// names pass through.
func AbbreviateName(name string) string {
	name = strings.TrimSpace(name)
	if len(name) <= 12 {
		return name
	}

	words := strings.Fields(name)
	if len(words) == 1 {
		if len(words[0]) > 10 {
			return words[0][:10] + "."
		}
		return words[0]
	}

	first := words[0]
	if len(first) > 4 {
		first = first[:4]
	}
	second := words[1]
	if len(second) > 3 {
		second = second[:3]
	}
	return first + "." + second + "."
}
