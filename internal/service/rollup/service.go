package rollup

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"workhistory/internal/service/costing"
	"workhistory/internal/storage"
)

// DefaultTopOverruns bounds the year detail overrun listing when the
// caller does not ask for more.
const DefaultTopOverruns = 10

type SnapshotStorage interface {
	GetOperations(ctx context.Context, filter storage.OperationFilter) ([]storage.Operation, error)
}

// Service answers aggregate queries over operation snapshots. Each call
// reads one snapshot and folds it, so the sub-totals inside a response
// are internally consistent even while ingest appends.
type Service struct {
	log     *slog.Logger
	storage SnapshotStorage
	policy  costing.Policy
}

func New(log *slog.Logger, st SnapshotStorage, policy costing.Policy) *Service {
	return &Service{log: log, storage: st, policy: policy}
}

func (s *Service) Policy() costing.Policy {
	return s.policy
}

// Operations exposes filtered snapshot reads for the explorer endpoints.
func (s *Service) Operations(ctx context.Context, filter storage.OperationFilter) ([]storage.Operation, error) {
	const op = "rollup.Operations"

	ops, err := s.storage.GetOperations(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ops, nil
}

func (s *Service) YearlySummaries(ctx context.Context) ([]storage.YearlySummary, error) {
	const op = "rollup.YearlySummaries"

	ops, err := s.storage.GetOperations(ctx, storage.OperationFilter{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return YearlySummaries(ops, s.policy), nil
}

func (s *Service) FullSummary(ctx context.Context) (*storage.FullSummary, error) {
	const op = "rollup.FullSummary"

	ops, err := s.storage.GetOperations(ctx, storage.OperationFilter{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	summary := FullSummary(ops, s.policy)
	return &summary, nil
}

func (s *Service) CustomerSummaries(ctx context.Context) ([]storage.CustomerSummary, error) {
	const op = "rollup.CustomerSummaries"

	ops, err := s.storage.GetOperations(ctx, storage.OperationFilter{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return CustomerSummaries(ops), nil
}

func (s *Service) PartSummaries(ctx context.Context) ([]storage.PartSummary, error) {
	const op = "rollup.PartSummaries"

	ops, err := s.storage.GetOperations(ctx, storage.OperationFilter{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return PartSummaries(ops, s.policy), nil
}

func (s *Service) WorkCenterSummaries(ctx context.Context) ([]storage.WorkCenterSummary, error) {
	const op = "rollup.WorkCenterSummaries"

	ops, err := s.storage.GetOperations(ctx, storage.OperationFilter{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return WorkCenterSummaries(ops, s.policy), nil
}

// YearDetail assembles the full year bundle. The year-scoped snapshot
// and the all-time snapshot (for the NCR per-year averages) load
// concurrently; everything after that is pure folding.
func (s *Service) YearDetail(ctx context.Context, year, limit int) (*storage.YearDetail, error) {
	const op = "rollup.YearDetail"

	if limit <= 0 {
		limit = DefaultTopOverruns
	}

	var yearOps, allOps []storage.Operation

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		yearOps, err = s.storage.GetOperations(gCtx, storage.OperationFilter{Year: year})
		return err
	})
	g.Go(func() error {
		var err error
		allOps, err = s.storage.GetOperations(gCtx, storage.OperationFilter{})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	partOverruns := PartAdjustments(yearOps)

	detail := &storage.YearDetail{
		Summary:           YearTotals(yearOps, s.policy, year),
		QuarterlySummary:  QuarterlySummaries(yearOps, s.policy),
		TopOverruns:       TopOverruns(yearOps, s.policy, limit),
		NCRSummary:        NCRSummaryByPart(yearOps, s.policy),
		WorkCenterSummary: WorkCenterSummaries(yearOps, s.policy),
		RepeatNCRFailures: RepeatNCRs(yearOps),
		JobAdjustments:    JobAdjustments(yearOps),
		PartOverruns:      partOverruns,
		PartTaskDetails:   PartTaskDetails(yearOps, partOverruns),
		NCRAverages:       NCRAveragesAllTime(allOps, s.policy),
	}

	s.log.Debug("year detail assembled",
		slog.Int("year", year),
		slog.Int("operations", len(yearOps)),
	)

	return detail, nil
}

// NCRJobDetails lists per-job rework hours for one part, optionally
// scoped to a year.
func (s *Service) NCRJobDetails(ctx context.Context, year int, partName string) ([]storage.NCRJobDetail, error) {
	const op = "rollup.NCRJobDetails"

	ops, err := s.storage.GetOperations(ctx, storage.OperationFilter{Year: year})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return NCRJobDetails(ops, partName), nil
}
