package upload

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/render"

	"workhistory/internal/storage"
)

// maxUploadBytes caps a work-history workbook at 32 MB.
const maxUploadBytes = 32 << 20

type WorkbookIngester interface {
	IngestWorkbook(ctx context.Context, r io.Reader) (storage.IngestResult, error)
}

// UploadWorkHistory accepts a multipart xlsx under the "file" field,
// normalizes it and appends the rows the store does not already hold.
func UploadWorkHistory(log *slog.Logger, ingester WorkbookIngester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.workhistory.UploadWorkHistory"

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).
				Error("Failed to parse multipart form")
			http.Error(w, "Invalid multipart form", http.StatusBadRequest)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "Missing file field 'file'", http.StatusBadRequest)
			return
		}
		defer file.Close()

		if !strings.HasSuffix(strings.ToLower(header.Filename), ".xlsx") {
			http.Error(w, "Only .xlsx files are accepted", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
		defer cancel()

		result, err := ingester.IngestWorkbook(ctx, file)
		if err != nil {
			log.With(
				slog.String("op", op),
				slog.String("filename", header.Filename),
				slog.String("error", err.Error()),
			).Error("Failed to ingest workbook")
			http.Error(w, "Failed to process file", http.StatusInternalServerError)
			return
		}

		log.With(
			slog.String("op", op),
			slog.String("filename", header.Filename),
			slog.Int("inserted", result.Inserted),
		).Info("Workbook ingested")

		render.JSON(w, r, result)
	}
}
