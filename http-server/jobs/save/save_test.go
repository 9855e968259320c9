package save

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Put(jobNumber, value string) error {
	args := m.Called(jobNumber, value)
	return args.Error(0)
}

func TestSaveReferenceName_Success(t *testing.T) {
	mockStore := new(MockStore)
	mockStore.On("Put", "J100", "Rotor overhaul").Return(nil)

	handler := SaveReferenceName(slog.Default(), mockStore)

	body := `{"job_number":"J100","reference_name":"Rotor overhaul"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/jobs/reference_name", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":"saved"`)
	mockStore.AssertExpectations(t)
}

func TestSaveReferenceName_MissingJobNumber(t *testing.T) {
	mockStore := new(MockStore)
	handler := SaveReferenceName(slog.Default(), mockStore)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/jobs/reference_name",
		strings.NewReader(`{"reference_name":"x"}`))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockStore.AssertNotCalled(t, "Put")
}

func TestSaveReferenceName_BadJSON(t *testing.T) {
	mockStore := new(MockStore)
	handler := SaveReferenceName(slog.Default(), mockStore)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/jobs/reference_name",
		strings.NewReader("{not json"))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSaveDueDate_Success(t *testing.T) {
	mockStore := new(MockStore)
	mockStore.On("Put", "J100", "2030-06-01").Return(nil)

	handler := SaveDueDate(slog.Default(), mockStore)

	body := `{"job_number":"J100","due_date":"2030-06-01"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/jobs/due_date", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	mockStore.AssertExpectations(t)
}

func TestSaveDueDate_RejectsBadFormat(t *testing.T) {
	mockStore := new(MockStore)
	handler := SaveDueDate(slog.Default(), mockStore)

	body := `{"job_number":"J100","due_date":"06/01/2030"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/jobs/due_date", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockStore.AssertNotCalled(t, "Put")
}

func TestSaveDueDate_EmptyClearsDate(t *testing.T) {
	mockStore := new(MockStore)
	mockStore.On("Put", "J100", "").Return(nil)

	handler := SaveDueDate(slog.Default(), mockStore)

	body := `{"job_number":"J100","due_date":""}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/jobs/due_date", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	mockStore.AssertExpectations(t)
}
