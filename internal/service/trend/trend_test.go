package trend

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"workhistory/internal/constants"
	"workhistory/internal/storage"
)

type MockSnapshotStorage struct {
	mock.Mock
}

func (m *MockSnapshotStorage) GetOperations(ctx context.Context, filter storage.OperationFilter) ([]storage.Operation, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.Operation), args.Error(1)
}

type MockYearlySource struct {
	mock.Mock
}

func (m *MockYearlySource) YearlySummaries(ctx context.Context) ([]storage.YearlySummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.YearlySummary), args.Error(1)
}

func TestMetricSeries_ProjectsValues(t *testing.T) {
	yearly := []storage.YearlySummary{
		{Year: 2021, OverrunHours: 100, PlannedHours: 1000},
		{Year: 2022, OverrunHours: 150, PlannedHours: 1000},
	}

	points := MetricSeries(yearly, constants.MetricOverrunHours)
	require.Len(t, points, 2)
	assert.Equal(t, 100.0, points[0].Value)
	assert.Equal(t, 150.0, points[1].Value)

	pct := MetricSeries(yearly, constants.MetricOverrunPercent)
	assert.Equal(t, 10.0, pct[0].Value)
	assert.Equal(t, 15.0, pct[1].Value)
}

func TestMetricSeries_ZeroDenominators(t *testing.T) {
	yearly := []storage.YearlySummary{{Year: 2021, PlannedHours: 0, ActualHours: 0, ActualCost: 0}}

	assert.Equal(t, 0.0, MetricSeries(yearly, constants.MetricOverrunPercent)[0].Value)
	assert.Equal(t, 0.0, MetricSeries(yearly, constants.MetricAvgCostPerHour)[0].Value)
}

func TestSummarize_YoY(t *testing.T) {
	s := Summarize([]storage.MetricPoint{
		{Year: 2021, Value: 100},
		{Year: 2022, Value: 120},
	})

	assert.Equal(t, 20.0, s.YoYChange)
	assert.Equal(t, 220.0, s.Total)
	assert.Equal(t, 110.0, s.YearlyAvg)
}

func TestSummarize_YoYZeroPrevious(t *testing.T) {
	s := Summarize([]storage.MetricPoint{
		{Year: 2021, Value: 0},
		{Year: 2022, Value: 50},
	})

	assert.Equal(t, 0.0, s.YoYChange)
}

func TestSummarize_DirectionAndStrength(t *testing.T) {
	up := Summarize([]storage.MetricPoint{
		{Year: 2021, Value: 100},
		{Year: 2022, Value: 110},
		{Year: 2023, Value: 150},
	})
	assert.Equal(t, "Increasing", up.TrendDirection)
	assert.Equal(t, "Strong", up.TrendStrength)

	down := Summarize([]storage.MetricPoint{
		{Year: 2021, Value: 100},
		{Year: 2023, Value: 80},
	})
	assert.Equal(t, "Decreasing", down.TrendDirection)
	assert.Equal(t, "Moderate", down.TrendStrength)

	flat := Summarize([]storage.MetricPoint{
		{Year: 2021, Value: 100},
		{Year: 2023, Value: 100},
	})
	assert.Equal(t, "Stable", flat.TrendDirection)

	assert.Equal(t, "Stable", Summarize(nil).TrendDirection)
}

func TestCorrelations_DeterministicTable(t *testing.T) {
	first := Correlations(constants.MetricOverrunHours)
	second := Correlations(constants.MetricOverrunHours)
	assert.Equal(t, first, second)

	// The subject metric never correlates with itself.
	for _, c := range first {
		assert.NotEqual(t, "Overrun Hours", c.Metric)
	}

	byMetric := map[string]storage.Correlation{}
	for _, c := range first {
		byMetric[c.Metric] = c
	}
	assert.Equal(t, 0.99, byMetric["Overrun Cost"].Correlation)
	assert.Equal(t, "Strong", byMetric["Overrun Cost"].Strength)

	// Strongest pair leads the list.
	assert.Equal(t, "Overrun Cost", first[0].Metric)
}

func TestMetricDetail_UnknownMetric(t *testing.T) {
	svc := New(slog.Default(), new(MockSnapshotStorage), new(MockYearlySource))

	_, err := svc.MetricDetail(context.Background(), "bogus", 0)

	assert.ErrorIs(t, err, storage.ErrUnknownMetric)
}

func TestMetricDetail_FiltersRows(t *testing.T) {
	mockStorage := new(MockSnapshotStorage)
	mockRollups := new(MockYearlySource)

	mockRollups.On("YearlySummaries", mock.Anything).Return([]storage.YearlySummary{
		{Year: 2023, NCRHours: 5},
	}, nil)
	mockStorage.On("GetOperations", mock.Anything, storage.OperationFilter{}).Return([]storage.Operation{
		{JobNumber: "J1", WorkCenter: "NCR", ActualHours: 5},
		{JobNumber: "J2", WorkCenter: "CNC", ActualHours: 3},
	}, nil)

	svc := New(slog.Default(), mockStorage, mockRollups)

	detail, err := svc.MetricDetail(context.Background(), constants.MetricNCRHours, 0)

	require.NoError(t, err)
	require.Len(t, detail.Rows, 1)
	assert.Equal(t, "J1", detail.Rows[0].JobNumber)
	assert.Equal(t, 1, detail.RowCount)
	mockStorage.AssertExpectations(t)
}

func TestMetricDetail_StorageError(t *testing.T) {
	mockStorage := new(MockSnapshotStorage)
	mockRollups := new(MockYearlySource)

	mockRollups.On("YearlySummaries", mock.Anything).Return(nil, errors.New("db down"))

	svc := New(slog.Default(), mockStorage, mockRollups)

	_, err := svc.MetricDetail(context.Background(), constants.MetricActualHours, 0)

	assert.Error(t, err)
}
