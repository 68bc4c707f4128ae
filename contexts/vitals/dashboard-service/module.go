package dashboardservice

import (
	"log/slog"

	httpadapter "tensio/contexts/vitals/dashboard-service/adapters/http"
	"tensio/contexts/vitals/dashboard-service/adapters/memory"
	"tensio/contexts/vitals/dashboard-service/adapters/png"
	"tensio/contexts/vitals/dashboard-service/application"
	"tensio/contexts/vitals/dashboard-service/ports"
)

// Module is the composition surface for the dashboard. Runtime wiring
// consumes Handler, Service and the PNG renderer; Provider is exposed
// for tests.
type Module struct {
	Handler  httpadapter.Handler
	Service  application.Service
	PNG      png.Renderer
	Provider *memory.Provider
}

type Dependencies struct {
	Datasets ports.DatasetProvider
	Reports  ports.ReportWriter
	Clock    ports.Clock
	Logger   *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Datasets: deps.Datasets,
		Reports:  deps.Reports,
		Clock:    deps.Clock,
		Logger:   deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
		Service: service,
		PNG:     png.Renderer{},
	}
}

// NewInMemoryModule wires the dashboard against a fixed dataset and an
// in-memory report sink for tests and local runs.
func NewInMemoryModule(dataset ports.Dataset, logger *slog.Logger) Module {
	provider := memory.NewProvider(dataset)
	module := NewModule(Dependencies{
		Datasets: provider,
		Reports:  memory.NewReportSink(),
		Clock:    memory.FixedClock{Instant: dataset.RefreshedAt},
		Logger:   logger,
	})
	module.Provider = provider
	return module
}
