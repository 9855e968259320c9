package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"workhistory/internal/service/profit"
	"workhistory/internal/storage"
)

type JobProvider interface {
	JobKPI(ctx context.Context, jobNumber string) (*storage.JobKPI, error)
	ActiveJobs(ctx context.Context) (*profit.ActiveJobsReport, error)
	CustomerProfitability(ctx context.Context) (*storage.CustomerProfitability, error)
}

func GetActiveJobs(log *slog.Logger, jobs JobProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.jobs.GetActiveJobs"

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		report, err := jobs.ActiveJobs(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).
				Error("Failed to build active jobs report")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		if report.ActiveJobs == nil {
			report.ActiveJobs = []storage.ActiveJobRow{}
		}
		if report.DNIJobs == nil {
			report.DNIJobs = []storage.ActiveJobRow{}
		}

		render.JSON(w, r, report)
	}
}

func GetJobKPI(log *slog.Logger, jobs JobProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.jobs.GetJobKPI"

		jobNumber := chi.URLParam(r, "jobNumber")
		if jobNumber == "" {
			http.Error(w, "Missing job number", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		kpi, err := jobs.JobKPI(ctx, jobNumber)
		if err != nil {
			if errors.Is(err, storage.ErrJobNotFound) {
				log.With(slog.String("op", op), slog.String("job", jobNumber)).
					Warn("Job not found")
				http.Error(w, "Job not found", http.StatusNotFound)
				return
			}

			log.With(
				slog.String("op", op),
				slog.String("job", jobNumber),
				slog.String("error", err.Error()),
			).Error("Failed to build job KPI")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, kpi)
	}
}

func GetCustomerProfitability(log *slog.Logger, jobs JobProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.jobs.GetCustomerProfitability"

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		report, err := jobs.CustomerProfitability(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).
				Error("Failed to build customer profitability")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, report)
	}
}
