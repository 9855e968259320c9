package main

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	generate_excel "workhistory/http-server/generate-report/generate-excel"
	getjobs "workhistory/http-server/jobs/get"
	savejobs "workhistory/http-server/jobs/save"
	"workhistory/http-server/workhistory/get"
	"workhistory/http-server/workhistory/upload"
	"workhistory/internal/config"
	"workhistory/internal/middleware/auth"
	generate_excel2 "workhistory/internal/service/generate-excel"
	"workhistory/internal/service/normalize"
	"workhistory/internal/service/profit"
	"workhistory/internal/service/rollup"
	"workhistory/internal/service/trend"
	"workhistory/internal/storage/jsonstore"
)

type routeServices struct {
	ingest   *normalize.Service
	rollups  *rollup.Service
	profit   *profit.Service
	trends   *trend.Service
	excel    *generate_excel2.GenerateExcelService
	refNames *jsonstore.Store[string]
	dueDates *jsonstore.Store[string]
}

func routes(cfg config.Config, log *slog.Logger, svc routeServices) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8081", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// Work history summaries.
	router.Get("/api/summary", get.GetFullSummary(log, svc.rollups))
	router.Get("/api/summary/yearly", get.GetYearlySummary(log, svc.rollups))
	router.Get("/api/summary/year/{year}", get.GetYearDetail(log, svc.rollups))
	router.Get("/api/summary/customers", get.GetCustomerSummary(log, svc.rollups))
	router.Get("/api/summary/parts", get.GetPartSummary(log, svc.rollups))
	router.Get("/api/summary/workcenters", get.GetWorkCenterSummary(log, svc.rollups))
	router.Get("/api/ncr/details", get.GetNCRDetails(log, svc.rollups))

	// Raw operation explorer.
	router.Get("/api/operations", get.FilterOperations(log, svc.rollups))

	// Metric drill-down with trend and correlation estimates.
	router.Get("/api/metric/{metric}", get.GetMetricDetail(log, svc.trends))

	// Job economics.
	router.Get("/api/jobs/active", getjobs.GetActiveJobs(log, svc.profit))
	router.Get("/api/jobs/{jobNumber}", getjobs.GetJobKPI(log, svc.profit))
	router.Get("/api/customers/profitability", getjobs.GetCustomerProfitability(log, svc.profit))

	// Excel export.
	router.Get("/api/report/excel", generate_excel.GenerateReportExcel(log, svc.excel))

	// Mutating endpoints behind basic auth.
	adminRouter := chi.NewRouter()
	adminRouter.Use(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass))

	adminRouter.Post("/upload", upload.UploadWorkHistory(log, svc.ingest))
	adminRouter.Post("/jobs/reference_name", savejobs.SaveReferenceName(log, svc.refNames))
	adminRouter.Post("/jobs/due_date", savejobs.SaveDueDate(log, svc.dueDates))

	router.Mount("/api/admin", adminRouter)

	return router
}
