package save

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// ReferenceStore and DueDateStore are the side-store writers behind the
// dashboard edit dialogs. Writes are whole-file and last-writer-wins.
type ReferenceStore interface {
	Put(jobNumber string, value string) error
}

type DueDateStore interface {
	Put(jobNumber string, value string) error
}

func SaveReferenceName(log *slog.Logger, refs ReferenceStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.jobs.SaveReferenceName"

		var req struct {
			JobNumber     string `json:"job_number"`
			ReferenceName string `json:"reference_name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON body", http.StatusBadRequest)
			return
		}
		if req.JobNumber == "" {
			http.Error(w, "Missing job_number", http.StatusBadRequest)
			return
		}

		if err := refs.Put(req.JobNumber, req.ReferenceName); err != nil {
			log.With(
				slog.String("op", op),
				slog.String("job", req.JobNumber),
				slog.String("error", err.Error()),
			).Error("Failed to save reference name")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "saved"})
	}
}

func SaveDueDate(log *slog.Logger, dueDates DueDateStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.jobs.SaveDueDate"

		var req struct {
			JobNumber string `json:"job_number"`
			DueDate   string `json:"due_date"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON body", http.StatusBadRequest)
			return
		}
		if req.JobNumber == "" {
			http.Error(w, "Missing job_number", http.StatusBadRequest)
			return
		}
		if req.DueDate != "" {
			if _, err := time.Parse("2006-01-02", req.DueDate); err != nil {
				http.Error(w, "Invalid due_date, expected YYYY-MM-DD", http.StatusBadRequest)
				return
			}
		}

		if err := dueDates.Put(req.JobNumber, req.DueDate); err != nil {
			log.With(
				slog.String("op", op),
				slog.String("job", req.JobNumber),
				slog.String("error", err.Error()),
			).Error("Failed to save due date")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "saved"})
	}
}
