package profit

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"workhistory/internal/constants"
	"workhistory/internal/service/classify"
	"workhistory/internal/service/rollup"
	"workhistory/internal/storage"
)

// ActiveJobsReport splits the dashboard into production jobs and
// dismantling-and-inspection jobs, with totals over the production side.
type ActiveJobsReport struct {
	ActiveJobs []storage.ActiveJobRow  `json:"active_jobs"`
	DNIJobs    []storage.ActiveJobRow  `json:"dni_jobs"`
	Totals     storage.ActiveJobTotals `json:"totals"`
}

// ActiveJobs builds the manager dashboard. One operation snapshot is
// grouped by job; purchase orders load concurrently per job with a
// bounded fan-out.
func (s *Service) ActiveJobs(ctx context.Context) (*ActiveJobsReport, error) {
	const op = "profit.ActiveJobs"

	ops, err := s.storage.GetOperations(ctx, storage.OperationFilter{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	byJob := make(map[string][]storage.Operation)
	var jobOrder []string
	for _, o := range ops {
		if _, ok := byJob[o.JobNumber]; !ok {
			jobOrder = append(jobOrder, o.JobNumber)
		}
		byJob[o.JobNumber] = append(byJob[o.JobNumber], o)
	}

	var mu sync.Mutex
	goodsByJob := make(map[string]goodsTotals, len(jobOrder))
	now := time.Now()

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(poFetchLimit)
	for _, job := range jobOrder {
		job := job
		g.Go(func() error {
			pos, err := s.storage.GetPurchaseOrdersByJob(gCtx, job)
			if err != nil {
				return err
			}
			mu.Lock()
			goodsByJob[job] = foldGoods(pos, now)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	report := &ActiveJobsReport{}
	var marginSum float64
	var marginCount int

	for _, job := range jobOrder {
		jobOps := dedupe(byJob[job])
		row := s.jobRow(job, jobOps, goodsByJob[job])

		if classify.IsDNIJob(jobOps) {
			report.DNIJobs = append(report.DNIJobs, row)
			continue
		}
		report.ActiveJobs = append(report.ActiveJobs, row)

		t := &report.Totals
		t.TotalJobs++
		t.TotalPlannedHours += row.TotalPlannedHours
		t.TotalActualHours += row.TotalActualHours
		t.TotalProjectedHours += row.ProjectedHours
		t.TotalPlannedCost += row.TotalPlannedCost
		t.TotalActualCost += row.TotalActualCost
		t.TotalProjectedCost += row.ProjectedCost
		if row.OrderValue.Valid {
			t.TotalOrderValue += row.OrderValue.Value
		}
		if row.ProfitValue.Valid {
			t.TotalProfitValue += row.ProfitValue.Value
		}
		if row.ProfitMargin.Valid {
			marginSum += row.ProfitMargin.Value
			marginCount++
		}
	}

	sortByDueDate(report.ActiveJobs)
	sortByDueDate(report.DNIJobs)

	t := &report.Totals
	t.TotalPlannedHours = storage.Round2(t.TotalPlannedHours)
	t.TotalActualHours = storage.Round2(t.TotalActualHours)
	t.TotalProjectedHours = storage.Round2(t.TotalProjectedHours)
	t.TotalPlannedCost = storage.Round2(t.TotalPlannedCost)
	t.TotalActualCost = storage.Round2(t.TotalActualCost)
	t.TotalProjectedCost = storage.Round2(t.TotalProjectedCost)
	t.TotalOrderValue = storage.Round2(t.TotalOrderValue)
	t.TotalProfitValue = storage.Round2(t.TotalProfitValue)
	if marginCount > 0 {
		t.AverageProfitMargin = storage.Number(marginSum / float64(marginCount))
	} else {
		t.AverageProfitMargin = storage.NA()
	}

	return report, nil
}

func (s *Service) jobRow(job string, ops []storage.Operation, goods goodsTotals) storage.ActiveJobRow {
	row := storage.ActiveJobRow{JobNumber: job}

	var planned, actual, remaining float64
	var plannedLabor, actualLabor float64
	for _, o := range ops {
		planned += o.PlannedHours
		actual += o.ActualHours
		if o.RemainingWork != nil {
			remaining += *o.RemainingWork
		}
		plannedLabor += s.policy.Cost(o.PlannedHours, o.PartName, o.WorkCenter, o.TaskDescription)
		actualLabor += s.policy.Cost(o.ActualHours, o.PartName, o.WorkCenter, o.TaskDescription)
		if row.Customer == "" || row.Customer == "N/A" {
			row.Customer = o.CustomerName
		}
	}

	row.OrderValue = s.orderValue(job)
	warranty := 0.0
	if row.OrderValue.Valid {
		warranty = row.OrderValue.Value * constants.WarrantyRate
	}

	projectedHours := actual + remaining
	projectedCost := s.policy.FlatCost(projectedHours) + goods.total + warranty
	actualTotal := actualLabor + goods.received + warranty

	row.TotalPlannedHours = storage.Round2(planned)
	row.TotalActualHours = storage.Round2(actual)
	row.ProjectedHours = storage.Round2(projectedHours)
	row.TotalPlannedCost = storage.Round2(plannedLabor + goods.total + warranty)
	row.TotalActualCost = storage.Round2(actualTotal)
	row.ProjectedCost = storage.Round2(projectedCost)

	// Profit reads against actual cost to date, not the projection.
	if row.OrderValue.Valid {
		profit := row.OrderValue.Value - actualTotal
		row.ProfitValue = storage.Number(profit)
		row.ProfitMargin = storage.Number(profit / row.OrderValue.Value * 100)
	} else {
		row.ProfitValue = storage.NA()
		row.ProfitMargin = storage.NA()
	}

	if name, ok := s.refNames.Get(job); ok {
		row.ReferenceName = name
	}
	if due, ok := s.dueDates.Get(job); ok {
		row.DueDate = due
		if t, err := time.Parse(dueDateLayout, due); err == nil {
			row.DueDateFormatted = t.Format("Jan 2, 2006")
		}
	}

	return row
}

// sortByDueDate orders rows by due date ascending; jobs without a due
// date sink to the bottom.
func sortByDueDate(rows []storage.ActiveJobRow) {
	far := time.Date(9999, 1, 1, 0, 0, 0, 0, time.UTC)
	due := func(r storage.ActiveJobRow) time.Time {
		t, err := time.Parse(dueDateLayout, r.DueDate)
		if err != nil {
			return far
		}
		return t
	}
	sort.SliceStable(rows, func(i, j int) bool {
		ti, tj := due(rows[i]), due(rows[j])
		if !ti.Equal(tj) {
			return ti.Before(tj)
		}
		return rows[i].JobNumber < rows[j].JobNumber
	})
}

// CustomerProfitability heads the customer analysis page with the hour
// efficiency proxy from the customer rollups.
func (s *Service) CustomerProfitability(ctx context.Context) (*storage.CustomerProfitability, error) {
	const op = "profit.CustomerProfitability"

	ops, err := s.storage.GetOperations(ctx, storage.OperationFilter{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	summaries := rollup.CustomerSummaries(ops)
	out := &storage.CustomerProfitability{ProfitData: summaries}
	if len(summaries) == 0 {
		return out, nil
	}

	var marginSum float64
	repeat := 0
	top, overrun := summaries[0], summaries[0]
	for _, c := range summaries {
		marginSum += c.Profitability
		if c.JobCount > 1 {
			repeat++
		}
		if c.Profitability > top.Profitability {
			top = c
		}
		if c.OverrunHours > overrun.OverrunHours {
			overrun = c
		}
	}

	out.TopCustomer = top.CustomerName
	out.TopCustomerListName = top.ListName
	out.OverrunCustomer = overrun.CustomerName
	out.OverrunCustomerListName = overrun.ListName
	out.RepeatRate = storage.Round2(float64(repeat) / float64(len(summaries)) * 100)
	out.AvgMargin = storage.Round2(marginSum / float64(len(summaries)))

	return out, nil
}
