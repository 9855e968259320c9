// Package profit computes per-job economics: labor and goods cost
// bundles, projections against order values, the active jobs dashboard
// and the customer profitability view.
package profit

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"workhistory/internal/constants"
	"workhistory/internal/service/classify"
	"workhistory/internal/service/costing"
	"workhistory/internal/storage"
)

const dueDateLayout = "2006-01-02"

// poFetchLimit bounds concurrent per-job purchase order reads when the
// dashboard fans out over every job.
const poFetchLimit = 8

type JobStorage interface {
	GetOperations(ctx context.Context, filter storage.OperationFilter) ([]storage.Operation, error)
	GetPurchaseOrdersByJob(ctx context.Context, jobNumber string) ([]storage.PurchaseOrder, error)
}

// StringStore and NumberStore are the side-store lookups the dashboard
// reads: reference names and due dates keyed by job, order values keyed
// by job.
type StringStore interface {
	Get(jobNumber string) (string, bool)
	All() map[string]string
}

type NumberStore interface {
	Get(jobNumber string) (float64, bool)
	All() map[string]float64
}

type Service struct {
	log         *slog.Logger
	storage     JobStorage
	policy      costing.Policy
	refNames    StringStore
	dueDates    StringStore
	orderValues NumberStore
}

func New(
	log *slog.Logger,
	st JobStorage,
	policy costing.Policy,
	refNames StringStore,
	dueDates StringStore,
	orderValues NumberStore,
) *Service {
	return &Service{
		log:         log,
		storage:     st,
		policy:      policy,
		refNames:    refNames,
		dueDates:    dueDates,
		orderValues: orderValues,
	}
}

// dedupe drops repeated rows of the same work order, operation number and
// task before job-scoped math; re-uploads can leave such near-duplicates
// behind when job numbers were corrected between files.
func dedupe(ops []storage.Operation) []storage.Operation {
	seen := make(map[storage.BatchIdentity]bool, len(ops))
	out := ops[:0:0]
	for _, op := range ops {
		id := storage.BatchIdentity{
			WorkOrderNumber: op.WorkOrderNumber,
			OperationNumber: op.OperationNumber,
			TaskDescription: op.TaskDescription,
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, op)
	}
	return out
}

// goodsTotals folds the purchase orders of one job.
type goodsTotals struct {
	total       float64
	received    float64
	pending     float64
	qtyPending  float64
	qtyReceived float64
	delayed     []storage.DelayedPO
}

func foldGoods(pos []storage.PurchaseOrder, now time.Time) goodsTotals {
	var g goodsTotals
	for _, po := range pos {
		g.total += po.NetPrice * po.OrderQuantity
		g.pending += po.PendingValue
		g.qtyPending += po.PendingQuantity
		g.qtyReceived += po.OrderQuantity - po.PendingQuantity

		if po.ExpectedDelivery != nil && po.PendingQuantity > 0 && po.ExpectedDelivery.Before(now) {
			g.delayed = append(g.delayed, storage.DelayedPO{
				PONumber:         po.PONumber,
				Description:      po.Description,
				ExpectedDelivery: po.ExpectedDelivery,
				DaysLate:         int(now.Sub(*po.ExpectedDelivery).Hours() / 24),
				PendingValue:     storage.Round2(po.PendingValue),
			})
		}
	}
	g.received = g.total - g.pending
	return g
}

// orderValue reads the job's order value. A missing or zero entry counts
// as no order value, and every ratio built on it renders "N/A".
func (s *Service) orderValue(jobNumber string) storage.NullNumber {
	v, ok := s.orderValues.Get(jobNumber)
	if !ok || v == 0 {
		return storage.NA()
	}
	return storage.Number(v)
}

// JobKPI assembles the per-job bundle. Operations and purchase orders
// load concurrently, then everything else is pure folding over the two
// snapshots.
func (s *Service) JobKPI(ctx context.Context, jobNumber string) (*storage.JobKPI, error) {
	const op = "profit.JobKPI"

	var (
		ops []storage.Operation
		pos []storage.PurchaseOrder
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ops, err = s.storage.GetOperations(gCtx, storage.OperationFilter{JobNumber: jobNumber})
		return err
	})
	g.Go(func() error {
		var err error
		pos, err = s.storage.GetPurchaseOrdersByJob(gCtx, jobNumber)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: job=%s: %w", op, jobNumber, err)
	}

	if len(ops) == 0 {
		return nil, fmt.Errorf("%s: job=%s: %w", op, jobNumber, storage.ErrJobNotFound)
	}

	ops = dedupe(ops)
	goods := foldGoods(pos, time.Now())

	kpi := &storage.JobKPI{
		JobNumber:      jobNumber,
		CustomerName:   ops[0].CustomerName,
		PurchaseOrders: pos,
		DelayedPOs:     goods.delayed,
	}
	if due, ok := s.dueDates.Get(jobNumber); ok {
		kpi.DueDate = due
	}

	var (
		plannedLabor, actualLabor float64
		remaining                 float64
	)
	parts := make(map[string]bool)
	wcHours := make(map[string]*storage.WorkCenterHours)
	var wcOrder []string

	for _, o := range ops {
		kpi.TotalPlannedHours += o.PlannedHours
		kpi.TotalActualHours += o.ActualHours
		if o.RemainingWork != nil {
			remaining += *o.RemainingWork
		}
		plannedLabor += s.policy.Cost(o.PlannedHours, o.PartName, o.WorkCenter, o.TaskDescription)
		actualLabor += s.policy.Cost(o.ActualHours, o.PartName, o.WorkCenter, o.TaskDescription)
		parts[o.PartName] = true

		wc := wcHours[o.WorkCenter]
		if wc == nil {
			wc = &storage.WorkCenterHours{WorkCenter: o.WorkCenter}
			wcHours[o.WorkCenter] = wc
			wcOrder = append(wcOrder, o.WorkCenter)
		}
		wc.PlannedHours += o.PlannedHours
		wc.ActualHours += o.ActualHours

		if classify.IsOverrun(o) {
			kpi.OverHours = append(kpi.OverHours, o)
			extra := classify.OverrunHours(o)
			kpi.TotalOverrunHours += extra
			kpi.TotalOverrunCost += s.policy.Cost(extra, o.PartName, o.WorkCenter, o.TaskDescription)
			kpi.OverrunDetails = append(kpi.OverrunDetails, storage.OverrunDetail{
				Part:            o.PartName,
				WorkCenter:      o.WorkCenter,
				TaskDescription: o.TaskDescription,
				ExtraHours:      storage.Round1(extra),
				ExtraCost:       storage.Round2(s.policy.Cost(extra, o.PartName, o.WorkCenter, o.TaskDescription)),
			})
		} else if o.ActualHours < o.PlannedHours {
			// Exactly-on-plan operations appear in neither list.
			kpi.UnderHours = append(kpi.UnderHours, o)
		}

		if classify.IsIdle(o) {
			kpi.IdleOperations = append(kpi.IdleOperations, o)
		}

		kpi.TaskCosts = append(kpi.TaskCosts, storage.TaskCost{
			Task:        o.TaskDescription,
			Part:        o.PartName,
			WorkCenter:  o.WorkCenter,
			PlannedCost: storage.Round2(s.policy.Cost(o.PlannedHours, o.PartName, o.WorkCenter, o.TaskDescription)),
			ActualCost:  storage.Round2(s.policy.Cost(o.ActualHours, o.PartName, o.WorkCenter, o.TaskDescription)),
		})
	}

	sort.Strings(wcOrder)
	for _, name := range wcOrder {
		wc := wcHours[name]
		wc.PlannedHours = storage.Round2(wc.PlannedHours)
		wc.ActualHours = storage.Round2(wc.ActualHours)
		kpi.WorkCenterSummary = append(kpi.WorkCenterSummary, *wc)
	}

	// Task costs rank highest actual spend first.
	sort.Slice(kpi.TaskCosts, func(i, j int) bool {
		return kpi.TaskCosts[i].ActualCost > kpi.TaskCosts[j].ActualCost
	})

	kpi.UniqueParts = len(parts)
	kpi.OverHoursCount = len(kpi.OverHours)
	kpi.OnTargetCount = len(ops) - kpi.OverHoursCount
	kpi.ProjectedHours = kpi.TotalActualHours + remaining

	kpi.OrderValue = s.orderValue(jobNumber)

	warranty := 0.0
	if kpi.OrderValue.Valid {
		warranty = kpi.OrderValue.Value * constants.WarrantyRate
	}

	kpi.TotalPlannedLaborCost = storage.Round2(plannedLabor)
	kpi.TotalActualLaborCost = storage.Round2(actualLabor)
	kpi.TotalGoodsCost = storage.Round2(goods.total)
	kpi.CostGoodsReceived = storage.Round2(goods.received)
	kpi.CostGoodsPending = storage.Round2(goods.pending)
	kpi.QuantityGoodsPending = storage.Round2(goods.qtyPending)
	kpi.QuantityGoodsReceived = storage.Round2(goods.qtyReceived)
	kpi.WarrantyCost = storage.Round2(warranty)
	actualTotal := actualLabor + goods.received + warranty
	kpi.TotalPlannedCost = storage.Round2(plannedLabor + goods.total + warranty)
	kpi.TotalActualCost = storage.Round2(actualTotal)

	projected := s.policy.FlatCost(kpi.ProjectedHours) + goods.total + warranty
	kpi.ProjectedCost = storage.Round2(projected)

	// Profit is measured against the actual cost to date, not the
	// projection; the projection is an outlook figure only.
	if kpi.OrderValue.Valid {
		profit := kpi.OrderValue.Value - actualTotal
		kpi.ProfitValue = storage.Number(profit)
		kpi.ProfitMargin = storage.Number(profit / kpi.OrderValue.Value * 100)
	} else {
		kpi.ProfitValue = storage.NA()
		kpi.ProfitMargin = storage.NA()
	}

	kpi.TopCostDrivers, kpi.DriverTotalCost = topCostDrivers(ops, s.policy)
	if kpi.TotalOverrunCost > 0 {
		kpi.DriverCostPct = storage.Round1(kpi.DriverTotalCost / kpi.TotalOverrunCost * 100)
	}
	if plannedLabor > 0 {
		kpi.LaborCostPctOver = storage.Round1((actualLabor - plannedLabor) / plannedLabor * 100)
	}

	kpi.TotalPlannedHours = storage.Round2(kpi.TotalPlannedHours)
	kpi.TotalActualHours = storage.Round2(kpi.TotalActualHours)
	kpi.ProjectedHours = storage.Round2(kpi.ProjectedHours)
	kpi.TotalOverrunHours = storage.Round2(kpi.TotalOverrunHours)
	kpi.TotalOverrunCost = storage.Round2(kpi.TotalOverrunCost)

	kpi.Flags = jobFlags(kpi)

	return kpi, nil
}

// topCostDrivers ranks overrun aggregates by part, task and work center.
// Operations with no plan, dismantling-and-inspection parts and the DNI
// work center stay out; their overruns are expected, not norm failures.
func topCostDrivers(ops []storage.Operation, p costing.Policy) ([]storage.TopCostDriver, float64) {
	const limit = 4

	type key struct{ part, task, wc string }

	partPlanned := make(map[string]float64)
	partActual := make(map[string]float64)
	for _, o := range ops {
		partPlanned[o.PartName] += p.Cost(o.PlannedHours, o.PartName, o.WorkCenter, o.TaskDescription)
		partActual[o.PartName] += p.Cost(o.ActualHours, o.PartName, o.WorkCenter, o.TaskDescription)
	}

	byDriver := make(map[key]*storage.TopCostDriver)
	for _, o := range ops {
		if !classify.IsOverrun(o) || o.PlannedHours == 0 {
			continue
		}
		if classify.IsDNIPart(o) || o.WorkCenter == constants.DNIWorkCenter {
			continue
		}
		k := key{o.PartName, o.TaskDescription, o.WorkCenter}
		d := byDriver[k]
		if d == nil {
			d = &storage.TopCostDriver{Part: o.PartName, Task: o.TaskDescription, WorkCenter: o.WorkCenter}
			byDriver[k] = d
		}
		extra := classify.OverrunHours(o)
		d.PlannedHours += o.PlannedHours
		d.ActualHours += o.ActualHours
		d.ExtraHours += extra
		d.CostOverrun += p.Cost(extra, o.PartName, o.WorkCenter, o.TaskDescription)
	}

	drivers := make([]storage.TopCostDriver, 0, len(byDriver))
	for _, d := range byDriver {
		d.PlannedHours = storage.Round2(d.PlannedHours)
		d.ActualHours = storage.Round2(d.ActualHours)
		d.ExtraHours = storage.Round1(d.ExtraHours)
		d.CostOverrun = storage.Round2(d.CostOverrun)
		d.TotalPartPlannedCost = storage.Round2(partPlanned[d.Part])
		d.TotalPartActualCost = storage.Round2(partActual[d.Part])
		drivers = append(drivers, *d)
	}
	sort.Slice(drivers, func(i, j int) bool { return drivers[i].CostOverrun > drivers[j].CostOverrun })
	if len(drivers) > limit {
		drivers = drivers[:limit]
	}

	var total float64
	for _, d := range drivers {
		total += d.CostOverrun
	}
	return drivers, storage.Round2(total)
}

func jobFlags(kpi *storage.JobKPI) []string {
	var flags []string
	if kpi.ProfitMargin.Valid && kpi.ProfitMargin.Value < 0 {
		flags = append(flags, "Profit margin negative")
	}
	for _, d := range kpi.OverrunDetails {
		if d.ExtraHours > 2 {
			flags = append(flags, "Significant labor overrun")
			break
		}
	}
	if len(kpi.DelayedPOs) > 0 {
		flags = append(flags, "Delayed purchase orders affecting job timeline")
	}
	if len(kpi.IdleOperations) > 0 {
		flags = append(flags, "Idle operations with no recorded progress")
	}
	return flags
}
