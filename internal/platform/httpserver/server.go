package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"

	dashboardservice "tensio/contexts/vitals/dashboard-service"
	dashboardhttp "tensio/contexts/vitals/dashboard-service/adapters/http"
	ingestionservice "tensio/contexts/vitals/ingestion-service"
	ingestionhttp "tensio/contexts/vitals/ingestion-service/adapters/http"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "tensio/internal/platform/httpserver/docs"
)

type Server struct {
	mux       *http.ServeMux
	logger    *slog.Logger
	addr      string
	ingestion ingestionservice.Module
	dashboard dashboardservice.Module
}

func New(
	ingestion ingestionservice.Module,
	dashboard dashboardservice.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:       http.NewServeMux(),
		logger:    logger,
		addr:      addr,
		ingestion: ingestion,
		dashboard: dashboard,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the mux for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("GET /healthz", s.handleHealthz)
	s.mux.HandleFunc("GET /{$}", s.handleDashboardPage)

	s.mux.HandleFunc("POST /api/v1/refresh", s.handleRefresh)
	s.mux.HandleFunc("GET /api/v1/measurements", s.handleListMeasurements)
	s.mux.HandleFunc("GET /api/v1/snapshots", s.handleListSnapshots)

	s.mux.HandleFunc("GET /api/v1/summary", s.handleSummary)
	s.mux.HandleFunc("GET /api/v1/charts", s.handleListCharts)
	s.mux.HandleFunc("GET /api/v1/charts/{chart_name}", s.handleChart)
	s.mux.HandleFunc("GET /api/v1/charts/{chart_name}/png", s.handleChartPNG)
	s.mux.HandleFunc("POST /api/v1/export", s.handleExport)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	resp, err := s.ingestion.Handler.RefreshHandler(r.Context())
	if err != nil {
		writeIngestionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListMeasurements(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	params := ingestionhttp.MeasurementQueryParams{
		From:     query.Get("from"),
		To:       query.Get("to"),
		Category: query.Get("category"),
		Limit:    query.Get("limit"),
	}
	resp, err := s.ingestion.Handler.ListMeasurementsHandler(r.Context(), params)
	if err != nil {
		writeIngestionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListSnapshots(w http.ResponseWriter, r *http.Request) {
	resp, err := s.ingestion.Handler.ListSnapshotsHandler(r.Context())
	if err != nil {
		writeIngestionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	resp, err := s.dashboard.Handler.SummaryHandler(r.Context())
	if err != nil {
		writeDashboardDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListCharts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.dashboard.Handler.ListChartsHandler(r.Context()))
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	resp, err := s.dashboard.Handler.ChartHandler(
		r.Context(),
		r.PathValue("chart_name"),
		dashboardhttp.ChartQueryParams{
			Column: query.Get("column"),
			Group:  query.Get("group"),
			Style:  query.Get("style"),
		},
	)
	if err != nil {
		writeDashboardDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleChartPNG(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("chart_name")
	dataset, err := s.dashboard.Service.Datasets.Dataset(r.Context())
	if err != nil {
		writeDashboardDomainError(w, err)
		return
	}
	image, err := s.dashboard.PNG.Render(name, dataset)
	if err != nil {
		writeDashboardDomainError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`.png"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(image)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	resp, err := s.dashboard.Handler.ExportHandler(r.Context())
	if err != nil {
		writeDashboardDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
