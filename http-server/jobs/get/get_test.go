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

	"workhistory/internal/service/profit"
	"workhistory/internal/storage"
)

type MockJobProvider struct {
	mock.Mock
}

func (m *MockJobProvider) JobKPI(ctx context.Context, jobNumber string) (*storage.JobKPI, error) {
	args := m.Called(ctx, jobNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.JobKPI), args.Error(1)
}

func (m *MockJobProvider) ActiveJobs(ctx context.Context) (*profit.ActiveJobsReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profit.ActiveJobsReport), args.Error(1)
}

func (m *MockJobProvider) CustomerProfitability(ctx context.Context) (*storage.CustomerProfitability, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.CustomerProfitability), args.Error(1)
}

func jobRequest(jobNumber string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/jobs/"+jobNumber, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("jobNumber", jobNumber)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestGetJobKPI_Success(t *testing.T) {
	mockJobs := new(MockJobProvider)

	mockJobs.On("JobKPI", mock.Anything, "J100").Return(&storage.JobKPI{
		JobNumber:         "J100",
		TotalPlannedHours: 280,
		TotalActualHours:  300,
		ProfitMargin:      storage.Number(18.5),
	}, nil)

	handler := GetJobKPI(slog.Default(), mockJobs)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, jobRequest("J100"))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"job_number":"J100"`)
	assert.Contains(t, rr.Body.String(), `"profit_margin":18.5`)
	mockJobs.AssertExpectations(t)
}

func TestGetJobKPI_MarginRendersNA(t *testing.T) {
	mockJobs := new(MockJobProvider)

	mockJobs.On("JobKPI", mock.Anything, "J200").Return(&storage.JobKPI{
		JobNumber:    "J200",
		OrderValue:   storage.NA(),
		ProfitValue:  storage.NA(),
		ProfitMargin: storage.NA(),
	}, nil)

	handler := GetJobKPI(slog.Default(), mockJobs)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, jobRequest("J200"))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"profit_margin":"N/A"`)
}

func TestGetJobKPI_NotFound(t *testing.T) {
	mockJobs := new(MockJobProvider)
	mockJobs.On("JobKPI", mock.Anything, "NOPE").
		Return(nil, storage.ErrJobNotFound)

	handler := GetJobKPI(slog.Default(), mockJobs)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, jobRequest("NOPE"))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetJobKPI_StorageError(t *testing.T) {
	mockJobs := new(MockJobProvider)
	mockJobs.On("JobKPI", mock.Anything, "J300").
		Return(nil, errors.New("connection timeout"))

	handler := GetJobKPI(slog.Default(), mockJobs)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, jobRequest("J300"))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestGetActiveJobs_Success(t *testing.T) {
	mockJobs := new(MockJobProvider)

	mockJobs.On("ActiveJobs", mock.Anything).Return(&profit.ActiveJobsReport{
		ActiveJobs: []storage.ActiveJobRow{{JobNumber: "J1"}},
		Totals:     storage.ActiveJobTotals{TotalJobs: 1, AverageProfitMargin: storage.NA()},
	}, nil)

	handler := GetActiveJobs(slog.Default(), mockJobs)

	req := httptest.NewRequest(http.MethodGet, "/api/jobs/active", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp profit.ActiveJobsReport
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	require.NoError(t, err)
	require.Len(t, resp.ActiveJobs, 1)
	// Empty D&I list marshals as [], not null.
	assert.Contains(t, rr.Body.String(), `"dni_jobs":[]`)
}
