package get

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"workhistory/internal/storage"
)

type SummaryProvider interface {
	YearlySummaries(ctx context.Context) ([]storage.YearlySummary, error)
	FullSummary(ctx context.Context) (*storage.FullSummary, error)
	YearDetail(ctx context.Context, year, limit int) (*storage.YearDetail, error)
	CustomerSummaries(ctx context.Context) ([]storage.CustomerSummary, error)
	PartSummaries(ctx context.Context) ([]storage.PartSummary, error)
	WorkCenterSummaries(ctx context.Context) ([]storage.WorkCenterSummary, error)
	NCRJobDetails(ctx context.Context, year int, partName string) ([]storage.NCRJobDetail, error)
	Operations(ctx context.Context, filter storage.OperationFilter) ([]storage.Operation, error)
}

func GetYearlySummary(log *slog.Logger, rollups SummaryProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.workhistory.GetYearlySummary"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		summaries, err := rollups.YearlySummaries(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).
				Error("Failed to build yearly summary")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		if summaries == nil {
			summaries = []storage.YearlySummary{}
		}

		render.JSON(w, r, summaries)
	}
}

func GetFullSummary(log *slog.Logger, rollups SummaryProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.workhistory.GetFullSummary"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		summary, err := rollups.FullSummary(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).
				Error("Failed to build full summary")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, summary)
	}
}

func GetYearDetail(log *slog.Logger, rollups SummaryProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.workhistory.GetYearDetail"

		yearStr := chi.URLParam(r, "year")
		year, err := strconv.Atoi(yearStr)
		if err != nil || year < 1990 || year > 2100 {
			log.With(slog.String("op", op), slog.String("year", yearStr)).
				Error("Invalid year parameter")
			http.Error(w, "Invalid year", http.StatusBadRequest)
			return
		}

		limit := 0
		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			limit, err = strconv.Atoi(limitStr)
			if err != nil || limit < 0 {
				http.Error(w, "Invalid limit", http.StatusBadRequest)
				return
			}
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		detail, err := rollups.YearDetail(ctx, year, limit)
		if err != nil {
			log.With(
				slog.String("op", op),
				slog.Int("year", year),
				slog.String("error", err.Error()),
			).Error("Failed to build year detail")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, detail)
	}
}

func GetCustomerSummary(log *slog.Logger, rollups SummaryProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.workhistory.GetCustomerSummary"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		summaries, err := rollups.CustomerSummaries(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).
				Error("Failed to build customer summary")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		if summaries == nil {
			summaries = []storage.CustomerSummary{}
		}

		render.JSON(w, r, summaries)
	}
}

func GetPartSummary(log *slog.Logger, rollups SummaryProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.workhistory.GetPartSummary"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		summaries, err := rollups.PartSummaries(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).
				Error("Failed to build part summary")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		if summaries == nil {
			summaries = []storage.PartSummary{}
		}

		render.JSON(w, r, summaries)
	}
}

func GetWorkCenterSummary(log *slog.Logger, rollups SummaryProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.workhistory.GetWorkCenterSummary"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		summaries, err := rollups.WorkCenterSummaries(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).
				Error("Failed to build work center summary")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		if summaries == nil {
			summaries = []storage.WorkCenterSummary{}
		}

		render.JSON(w, r, summaries)
	}
}

// GetNCRDetails lists per-job rework hours for one part, scoped to a
// year when the query carries one.
func GetNCRDetails(log *slog.Logger, rollups SummaryProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.workhistory.GetNCRDetails"

		partName := r.URL.Query().Get("part")
		if partName == "" {
			http.Error(w, "Missing required query parameter 'part'", http.StatusBadRequest)
			return
		}

		year := 0
		if yearStr := r.URL.Query().Get("year"); yearStr != "" {
			var err error
			year, err = strconv.Atoi(yearStr)
			if err != nil {
				http.Error(w, "Invalid year", http.StatusBadRequest)
				return
			}
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		details, err := rollups.NCRJobDetails(ctx, year, partName)
		if err != nil {
			log.With(
				slog.String("op", op),
				slog.String("part", partName),
				slog.String("error", err.Error()),
			).Error("Failed to build NCR details")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		if details == nil {
			details = []storage.NCRJobDetail{}
		}

		render.JSON(w, r, details)
	}
}

// defaultFilterLimit caps explorer queries that do not ask for a limit.
const defaultFilterLimit = 1000

// FilterOperations exposes the raw snapshot behind the explorer table.
// All filters are optional and combine with AND.
func FilterOperations(log *slog.Logger, rollups SummaryProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.workhistory.FilterOperations"

		filter := storage.OperationFilter{Limit: defaultFilterLimit}
		q := r.URL.Query()

		if yearStr := q.Get("year"); yearStr != "" {
			year, err := strconv.Atoi(yearStr)
			if err != nil {
				http.Error(w, "Invalid year", http.StatusBadRequest)
				return
			}
			filter.Year = year
		}
		if limitStr := q.Get("limit"); limitStr != "" {
			limit, err := strconv.Atoi(limitStr)
			if err != nil || limit < 0 {
				http.Error(w, "Invalid limit", http.StatusBadRequest)
				return
			}
			filter.Limit = limit
		}
		filter.Customer = q.Get("customer")
		filter.Part = q.Get("part")
		filter.WorkCenter = q.Get("work_center")
		filter.JobNumber = q.Get("job")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		ops, err := rollups.Operations(ctx, filter)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).
				Error("Failed to filter operations")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		if ops == nil {
			ops = []storage.Operation{}
		}

		render.JSON(w, r, map[string]any{
			"count": len(ops),
			"rows":  ops,
		})
	}
}
