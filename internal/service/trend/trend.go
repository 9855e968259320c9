// Package trend derives yearly metric series from the rollups and
// estimates direction, strength and cross-metric correlations.
//
// The correlation figures come from a fixed heuristic table keyed on
// metric kinds, not from a statistical fit. They are advisory.
package trend

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"

	"workhistory/internal/constants"
	"workhistory/internal/service/classify"
	"workhistory/internal/storage"
)

type SnapshotStorage interface {
	GetOperations(ctx context.Context, filter storage.OperationFilter) ([]storage.Operation, error)
}

type YearlySource interface {
	YearlySummaries(ctx context.Context) ([]storage.YearlySummary, error)
}

type Service struct {
	log     *slog.Logger
	storage SnapshotStorage
	rollups YearlySource
}

func New(log *slog.Logger, st SnapshotStorage, rollups YearlySource) *Service {
	return &Service{log: log, storage: st, rollups: rollups}
}

// MetricSeries projects one metric out of the yearly summaries,
// chronologically.
func MetricSeries(yearly []storage.YearlySummary, metric string) []storage.MetricPoint {
	points := make([]storage.MetricPoint, 0, len(yearly))
	for _, y := range yearly {
		points = append(points, storage.MetricPoint{
			Year:  y.Year,
			Value: storage.Round2(metricValue(y, metric)),
		})
	}
	return points
}

func metricValue(y storage.YearlySummary, metric string) float64 {
	switch metric {
	case constants.MetricPlannedHours:
		return y.PlannedHours
	case constants.MetricActualHours:
		return y.ActualHours
	case constants.MetricOverrunHours:
		return y.OverrunHours
	case constants.MetricOverrunPercent:
		if y.PlannedHours == 0 {
			return 0
		}
		return y.OverrunHours / y.PlannedHours * 100
	case constants.MetricNCRHours:
		return y.NCRHours
	case constants.MetricPlannedCost:
		return y.PlannedCost
	case constants.MetricActualCost:
		return y.ActualCost
	case constants.MetricOverrunCost:
		return y.ActualCost - y.PlannedCost
	case constants.MetricAvgCostPerHour:
		if y.ActualHours == 0 {
			return 0
		}
		return y.ActualCost / y.ActualHours
	case constants.MetricTotalJobs:
		return float64(y.JobCount)
	case constants.MetricTotalOperations:
		return float64(y.OperationCount)
	case constants.MetricTotalCustomers:
		return float64(y.CustomerCount)
	}
	return 0
}

// Summarize folds a yearly series into totals, the latest year-over-year
// change and a direction estimate against the first year.
func Summarize(points []storage.MetricPoint) storage.TrendSummary {
	s := storage.TrendSummary{TrendDirection: "Stable", TrendStrength: "Weak"}
	if len(points) == 0 {
		return s
	}

	var total float64
	for _, p := range points {
		total += p.Value
	}
	s.Total = storage.Round2(total)
	s.YearlyAvg = storage.Round2(total / float64(len(points)))

	latest := points[len(points)-1].Value
	if len(points) >= 2 {
		previous := points[len(points)-2].Value
		if previous != 0 {
			s.YoYChange = storage.Round2((latest/previous - 1) * 100)
		}
	}

	first := points[0].Value
	switch {
	case latest > first:
		s.TrendDirection = "Increasing"
	case latest < first:
		s.TrendDirection = "Decreasing"
	}

	if first != 0 {
		shift := math.Abs(latest/first - 1)
		switch {
		case shift > 0.3:
			s.TrendStrength = "Strong"
		case shift > 0.1:
			s.TrendStrength = "Moderate"
		}
	} else if latest != 0 {
		s.TrendStrength = "Strong"
	}

	return s
}

// Correlations returns the advisory cross-metric estimates for one
// metric against every other metric in the catalog, strongest first.
func Correlations(metric string) []storage.Correlation {
	var out []storage.Correlation
	for _, m := range constants.MetricCatalog {
		if m.Name == metric {
			continue
		}
		c := pairEstimate(metric, m.Name)
		out = append(out, storage.Correlation{
			Metric:      m.Display,
			Correlation: c,
			Strength:    correlationStrength(c),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return math.Abs(out[i].Correlation) > math.Abs(out[j].Correlation)
	})
	return out
}

// pairEstimate is the fixed heuristic table. Planned and actual hours
// track each other near-perfectly in this shop; overrun hours define
// overrun cost; everything else correlates loosely by kind.
func pairEstimate(a, b string) float64 {
	if (a == constants.MetricPlannedHours && b == constants.MetricActualHours) ||
		(a == constants.MetricActualHours && b == constants.MetricPlannedHours) {
		return 0.95
	}
	if (a == constants.MetricOverrunHours && b == constants.MetricOverrunCost) ||
		(a == constants.MetricOverrunCost && b == constants.MetricOverrunHours) {
		return 0.99
	}
	if (a == constants.MetricNCRHours && isOverrunMetric(b)) ||
		(b == constants.MetricNCRHours && isOverrunMetric(a)) {
		return 0.75
	}
	if isCostMetric(a) && isHourMetric(b) || isHourMetric(a) && isCostMetric(b) {
		return 0.85
	}
	if isTotalMetric(a) && isTotalMetric(b) {
		return 0.70
	}
	if isHourMetric(a) && isHourMetric(b) {
		return 0.65
	}
	if isCostMetric(a) && isCostMetric(b) {
		return 0.70
	}
	return 0.40
}

func isHourMetric(m string) bool  { return strings.HasSuffix(m, "_hours") }
func isCostMetric(m string) bool  { return strings.HasSuffix(m, "_cost") || m == constants.MetricAvgCostPerHour }
func isTotalMetric(m string) bool { return strings.HasPrefix(m, "total_") }
func isOverrunMetric(m string) bool {
	return strings.HasPrefix(m, "overrun_")
}

func correlationStrength(c float64) string {
	abs := math.Abs(c)
	switch {
	case abs >= 0.8:
		return "Strong"
	case abs >= 0.5:
		return "Moderate"
	case abs >= 0.3:
		return "Weak"
	}
	return "Very Weak"
}

// MetricDetail assembles the drill-down bundle: series, trend summary,
// correlations and the operation rows most relevant to the metric.
func (s *Service) MetricDetail(ctx context.Context, metric string, rowLimit int) (*storage.MetricDetail, error) {
	const op = "trend.MetricDetail"

	if !constants.ValidMetric(metric) {
		return nil, fmt.Errorf("%s: %q: %w", op, metric, storage.ErrUnknownMetric)
	}

	yearly, err := s.rollups.YearlySummaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ops, err := s.storage.GetOperations(ctx, storage.OperationFilter{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	rows := metricRows(ops, metric)
	if rowLimit > 0 && len(rows) > rowLimit {
		rows = rows[:rowLimit]
	}

	points := MetricSeries(yearly, metric)
	detail := &storage.MetricDetail{
		Metric:       metric,
		Summary:      Summarize(points),
		YearlyData:   points,
		Correlations: Correlations(metric),
		RowCount:     len(rows),
		Rows:         rows,
	}

	return detail, nil
}

// metricRows filters the snapshot to the rows that contribute to a
// metric, so the drill-down table shows the evidence, not the whole
// history.
func metricRows(ops []storage.Operation, metric string) []storage.Operation {
	keep := func(storage.Operation) bool { return true }
	switch metric {
	case constants.MetricNCRHours:
		keep = classify.IsNCR
	case constants.MetricPlannedHours, constants.MetricPlannedCost:
		keep = func(o storage.Operation) bool { return o.PlannedHours > 0 }
	case constants.MetricActualHours, constants.MetricActualCost, constants.MetricAvgCostPerHour:
		keep = func(o storage.Operation) bool { return o.ActualHours > 0 }
	case constants.MetricOverrunHours, constants.MetricOverrunPercent, constants.MetricOverrunCost:
		keep = classify.IsOverrun
	}

	var out []storage.Operation
	for _, o := range ops {
		if keep(o) {
			out = append(out, o)
		}
	}
	return out
}
