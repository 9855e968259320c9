package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"workhistory/internal/storage"
)

// defaultMetricRows bounds the drill-down evidence table.
const defaultMetricRows = 500

type MetricProvider interface {
	MetricDetail(ctx context.Context, metric string, rowLimit int) (*storage.MetricDetail, error)
}

func GetMetricDetail(log *slog.Logger, trends MetricProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.workhistory.GetMetricDetail"

		metric := chi.URLParam(r, "metric")

		limit := defaultMetricRows
		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			var err error
			limit, err = strconv.Atoi(limitStr)
			if err != nil || limit < 0 {
				http.Error(w, "Invalid limit", http.StatusBadRequest)
				return
			}
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		detail, err := trends.MetricDetail(ctx, metric, limit)
		if err != nil {
			if errors.Is(err, storage.ErrUnknownMetric) {
				log.With(slog.String("op", op), slog.String("metric", metric)).
					Warn("Unknown metric requested")
				http.Error(w, "Unknown metric", http.StatusNotFound)
				return
			}

			log.With(
				slog.String("op", op),
				slog.String("metric", metric),
				slog.String("error", err.Error()),
			).Error("Failed to build metric detail")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, detail)
	}
}
