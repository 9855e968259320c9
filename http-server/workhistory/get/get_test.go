package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"workhistory/internal/storage"
)

type MockSummaryProvider struct {
	mock.Mock
}

func (m *MockSummaryProvider) YearlySummaries(ctx context.Context) ([]storage.YearlySummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.YearlySummary), args.Error(1)
}

func (m *MockSummaryProvider) FullSummary(ctx context.Context) (*storage.FullSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.FullSummary), args.Error(1)
}

func (m *MockSummaryProvider) YearDetail(ctx context.Context, year, limit int) (*storage.YearDetail, error) {
	args := m.Called(ctx, year, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.YearDetail), args.Error(1)
}

func (m *MockSummaryProvider) CustomerSummaries(ctx context.Context) ([]storage.CustomerSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.CustomerSummary), args.Error(1)
}

func (m *MockSummaryProvider) PartSummaries(ctx context.Context) ([]storage.PartSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.PartSummary), args.Error(1)
}

func (m *MockSummaryProvider) WorkCenterSummaries(ctx context.Context) ([]storage.WorkCenterSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.WorkCenterSummary), args.Error(1)
}

func (m *MockSummaryProvider) NCRJobDetails(ctx context.Context, year int, partName string) ([]storage.NCRJobDetail, error) {
	args := m.Called(ctx, year, partName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.NCRJobDetail), args.Error(1)
}

func (m *MockSummaryProvider) Operations(ctx context.Context, filter storage.OperationFilter) ([]storage.Operation, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.Operation), args.Error(1)
}

func TestGetYearlySummary_Success(t *testing.T) {
	mockRollups := new(MockSummaryProvider)

	mockRollups.On("YearlySummaries", mock.Anything).Return([]storage.YearlySummary{
		{Year: 2022, PlannedHours: 100, ActualHours: 110},
		{Year: 2023, PlannedHours: 120, ActualHours: 115},
	}, nil)

	handler := GetYearlySummary(slog.Default(), mockRollups)

	req := httptest.NewRequest(http.MethodGet, "/api/summary/yearly", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp []storage.YearlySummary
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, 2022, resp[0].Year)
	mockRollups.AssertExpectations(t)
}

func TestGetYearlySummary_StorageError(t *testing.T) {
	mockRollups := new(MockSummaryProvider)
	mockRollups.On("YearlySummaries", mock.Anything).Return(nil, errors.New("connection timeout"))

	handler := GetYearlySummary(slog.Default(), mockRollups)

	req := httptest.NewRequest(http.MethodGet, "/api/summary/yearly", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func yearRequest(year string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/summary/year/"+year, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("year", year)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestGetYearDetail_Success(t *testing.T) {
	mockRollups := new(MockSummaryProvider)

	mockRollups.On("YearDetail", mock.Anything, 2023, 0).Return(&storage.YearDetail{
		Summary: storage.YearSummaryTotals{Year: 2023, TotalPlannedHours: 100},
	}, nil)

	handler := GetYearDetail(slog.Default(), mockRollups)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, yearRequest("2023"))

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp storage.YearDetail
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	require.NoError(t, err)
	assert.Equal(t, 2023, resp.Summary.Year)
}

func TestGetYearDetail_InvalidYear(t *testing.T) {
	mockRollups := new(MockSummaryProvider)
	handler := GetYearDetail(slog.Default(), mockRollups)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, yearRequest("not-a-year"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockRollups.AssertNotCalled(t, "YearDetail")
}

func TestFilterOperations_PassesFilter(t *testing.T) {
	mockRollups := new(MockSummaryProvider)

	expected := storage.OperationFilter{Year: 2023, Customer: "Acme", Limit: 50}
	mockRollups.On("Operations", mock.Anything, expected).Return([]storage.Operation{
		{JobNumber: "J1"},
	}, nil)

	handler := FilterOperations(slog.Default(), mockRollups)

	req := httptest.NewRequest(http.MethodGet, "/api/operations?year=2023&customer=Acme&limit=50", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	mockRollups.AssertExpectations(t)
}

func TestFilterOperations_DefaultLimit(t *testing.T) {
	mockRollups := new(MockSummaryProvider)

	expected := storage.OperationFilter{Limit: 1000}
	mockRollups.On("Operations", mock.Anything, expected).Return([]storage.Operation{}, nil)

	handler := FilterOperations(slog.Default(), mockRollups)

	req := httptest.NewRequest(http.MethodGet, "/api/operations", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	mockRollups.AssertExpectations(t)
}

func TestFilterOperations_InvalidLimit(t *testing.T) {
	mockRollups := new(MockSummaryProvider)
	handler := FilterOperations(slog.Default(), mockRollups)

	req := httptest.NewRequest(http.MethodGet, "/api/operations?limit=-5", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetNCRDetails_RequiresPart(t *testing.T) {
	mockRollups := new(MockSummaryProvider)
	handler := GetNCRDetails(slog.Default(), mockRollups)

	req := httptest.NewRequest(http.MethodGet, "/api/ncr/details", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockRollups.AssertNotCalled(t, "NCRJobDetails")
}
