package rollup

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"workhistory/internal/service/costing"
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

func TestYearDetail_AssemblesBundle(t *testing.T) {
	mockStorage := new(MockSnapshotStorage)

	finish := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	yearOps := []storage.Operation{
		{JobNumber: "J1", WorkOrderNumber: "WO-1", PartName: "Impeller", WorkCenter: "CNC",
			TaskDescription: "milling", PlannedHours: 100, ActualHours: 120, FinishDate: &finish,
			CustomerName: "Acme"},
		{JobNumber: "J2", WorkOrderNumber: "WO-2", PartName: "Shaft", WorkCenter: "NCR",
			TaskDescription: "rework", PlannedHours: 0, ActualHours: 6, FinishDate: &finish,
			CustomerName: "Acme"},
	}

	mockStorage.On("GetOperations", mock.Anything, storage.OperationFilter{Year: 2023}).
		Return(yearOps, nil)
	mockStorage.On("GetOperations", mock.Anything, storage.OperationFilter{}).
		Return(yearOps, nil)

	svc := New(slog.Default(), mockStorage, costing.Default())

	detail, err := svc.YearDetail(context.Background(), 2023, 0)
	require.NoError(t, err)

	assert.Equal(t, 2023, detail.Summary.Year)
	assert.Equal(t, 100.0, detail.Summary.TotalPlannedHours)
	assert.Equal(t, 126.0, detail.Summary.TotalActualHours)
	assert.Equal(t, 6.0, detail.Summary.TotalNCRHours)
	require.Len(t, detail.QuarterlySummary, 1)
	assert.Equal(t, "Q2 2023", detail.QuarterlySummary[0].Quarter)
	require.Len(t, detail.TopOverruns, 2)
	require.Len(t, detail.NCRSummary, 1)
	assert.NotZero(t, detail.NCRAverages.AvgNCRCostPerYear)
	mockStorage.AssertExpectations(t)
}

func TestYearDetail_StorageError(t *testing.T) {
	mockStorage := new(MockSnapshotStorage)
	mockStorage.On("GetOperations", mock.Anything, mock.Anything).
		Return(nil, errors.New("connection timeout"))

	svc := New(slog.Default(), mockStorage, costing.Default())

	_, err := svc.YearDetail(context.Background(), 2023, 0)
	assert.Error(t, err)
}

func TestYearlySummaries_Service(t *testing.T) {
	mockStorage := new(MockSnapshotStorage)

	finish := time.Date(2022, 2, 1, 0, 0, 0, 0, time.UTC)
	mockStorage.On("GetOperations", mock.Anything, storage.OperationFilter{}).
		Return([]storage.Operation{
			{JobNumber: "J1", PartName: "Impeller", WorkCenter: "CNC",
				PlannedHours: 10, ActualHours: 8, FinishDate: &finish, CustomerName: "Acme"},
		}, nil)

	svc := New(slog.Default(), mockStorage, costing.Default())

	yearly, err := svc.YearlySummaries(context.Background())
	require.NoError(t, err)
	require.Len(t, yearly, 1)
	assert.Equal(t, 2022, yearly[0].Year)
}
