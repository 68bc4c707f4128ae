package ingestionservice

import (
	"log/slog"

	httpadapter "tensio/contexts/vitals/ingestion-service/adapters/http"
	"tensio/contexts/vitals/ingestion-service/adapters/memory"
	"tensio/contexts/vitals/ingestion-service/application"
	"tensio/contexts/vitals/ingestion-service/ports"
)

// Module is the composition surface for measurement ingestion. Runtime
// wiring consumes Handler and Service; Store is exposed for tests.
type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Source       ports.SourceReader
	Snapshots    ports.SnapshotStore
	Archive      ports.ArchiveRepository
	Publisher    ports.EventPublisher
	Clock        ports.Clock
	IDGenerator  ports.IDGenerator
	SnapshotKeep int
	Logger       *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Source:       deps.Source,
		Snapshots:    deps.Snapshots,
		Archive:      deps.Archive,
		Publisher:    deps.Publisher,
		Clock:        deps.Clock,
		IDGen:        deps.IDGenerator,
		SnapshotKeep: deps.SnapshotKeep,
		Status:       &application.RefreshStatus{},
		Logger:       deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
		Service: service,
	}
}

// NewInMemoryModule wires the pipeline against an in-memory source and
// snapshot store for tests and local runs without files.
func NewInMemoryModule(table ports.RawTable, logger *slog.Logger) Module {
	store := memory.NewStore()
	source := memory.NewSource(table)
	module := NewModule(Dependencies{
		Source:       source,
		Snapshots:    store,
		Clock:        store,
		IDGenerator:  store,
		SnapshotKeep: 10,
		Logger:       logger,
	})
	module.Store = store
	return module
}
