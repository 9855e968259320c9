package upload

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"workhistory/internal/storage"
)

type MockIngester struct {
	mock.Mock
}

func (m *MockIngester) IngestWorkbook(ctx context.Context, r io.Reader) (storage.IngestResult, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(storage.IngestResult), args.Error(1)
}

func multipartRequest(t *testing.T, field, filename string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadWorkHistory_Success(t *testing.T) {
	mockIngester := new(MockIngester)
	mockIngester.On("IngestWorkbook", mock.Anything, mock.Anything).
		Return(storage.IngestResult{TotalRows: 10, Inserted: 8, SkippedDuplicates: 2}, nil)

	handler := UploadWorkHistory(slog.Default(), mockIngester)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, multipartRequest(t, "file", "history.xlsx", []byte("fake xlsx bytes")))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"inserted":8`)
	assert.Contains(t, rr.Body.String(), `"skipped_duplicates":2`)
	mockIngester.AssertExpectations(t)
}

func TestUploadWorkHistory_MissingFileField(t *testing.T) {
	mockIngester := new(MockIngester)
	handler := UploadWorkHistory(slog.Default(), mockIngester)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, multipartRequest(t, "wrong_field", "history.xlsx", []byte("x")))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockIngester.AssertNotCalled(t, "IngestWorkbook")
}

func TestUploadWorkHistory_RejectsNonXLSX(t *testing.T) {
	mockIngester := new(MockIngester)
	handler := UploadWorkHistory(slog.Default(), mockIngester)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, multipartRequest(t, "file", "history.csv", []byte("a,b,c")))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockIngester.AssertNotCalled(t, "IngestWorkbook")
}

func TestUploadWorkHistory_IngestFailure(t *testing.T) {
	mockIngester := new(MockIngester)
	mockIngester.On("IngestWorkbook", mock.Anything, mock.Anything).
		Return(storage.IngestResult{}, errors.New("open workbook: corrupt"))

	handler := UploadWorkHistory(slog.Default(), mockIngester)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, multipartRequest(t, "file", "history.xlsx", []byte("bad")))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
