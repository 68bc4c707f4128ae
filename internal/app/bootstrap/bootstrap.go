package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	dashboardservice "tensio/contexts/vitals/dashboard-service"
	"tensio/contexts/vitals/dashboard-service/adapters/report"
	dashboardports "tensio/contexts/vitals/dashboard-service/ports"
	ingestionservice "tensio/contexts/vitals/ingestion-service"
	"tensio/contexts/vitals/ingestion-service/adapters/csvfile"
	postgresadapter "tensio/contexts/vitals/ingestion-service/adapters/postgres"
	"tensio/contexts/vitals/ingestion-service/adapters/sheet"
	"tensio/contexts/vitals/ingestion-service/adapters/snapshot"
	"tensio/contexts/vitals/ingestion-service/adapters/xlsxfile"
	ingestionapp "tensio/contexts/vitals/ingestion-service/application"
	ingestionworkers "tensio/contexts/vitals/ingestion-service/application/workers"
	ingestionports "tensio/contexts/vitals/ingestion-service/ports"
	"tensio/internal/platform/config"
	"tensio/internal/platform/db"
	"tensio/internal/platform/httpserver"
	"tensio/internal/platform/messaging"
	"tensio/internal/shared/events"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

type WorkerApp struct {
	postgres    *db.Postgres
	bus         *messaging.Bus
	refresher   ingestionworkers.Refresher
	pruner      *ingestionworkers.Pruner
	autoRefresh bool
	logger      *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")

	ingestion, pg, err := buildIngestion(cfg, logger, nil)
	if err != nil {
		return nil, err
	}

	dashboard := dashboardservice.NewModule(dashboardservice.Dependencies{
		Datasets: datasetBridge{service: ingestion.Service},
		Reports:  report.Writer{Dir: cfg.ExportDir},
		Clock:    report.SystemClock{},
		Logger:   logger,
	})

	server := httpserver.New(ingestion, dashboard, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")

	bus := messaging.NewBus(logger)
	ingestion, pg, err := buildIngestion(cfg, logger, &envelopePublisher{
		bus:     bus,
		service: cfg.ServiceName,
	})
	if err != nil {
		return nil, err
	}

	app := &WorkerApp{
		postgres: pg,
		bus:      bus,
		refresher: ingestionworkers.Refresher{
			Service:  ingestion.Service,
			Interval: cfg.RefreshInterval,
			Logger:   logger,
		},
		autoRefresh: cfg.EnableAutoRefresh,
		logger:      logger,
	}
	if cfg.EnableSnapshotPrune {
		app.pruner = &ingestionworkers.Pruner{
			Snapshots: snapshot.NewStore(cfg.CacheDir),
			Keep:      cfg.SnapshotKeep,
			Logger:    logger,
		}
	}
	return app, nil
}

// buildIngestion wires the ingestion module from config: source adapter,
// snapshot cache and the optional postgres archive.
func buildIngestion(
	cfg config.Config,
	logger *slog.Logger,
	publisher ingestionports.EventPublisher,
) (ingestionservice.Module, *db.Postgres, error) {
	source, err := buildSource(cfg)
	if err != nil {
		return ingestionservice.Module{}, nil, err
	}

	var pg *db.Postgres
	var archive ingestionports.ArchiveRepository
	if cfg.EnableArchive {
		if strings.TrimSpace(cfg.PostgresDSN) == "" {
			return ingestionservice.Module{}, nil, errors.New("POSTGRES_DSN is required when ENABLE_ARCHIVE is on")
		}
		pg, err = db.Connect(cfg.PostgresDSN)
		if err != nil {
			return ingestionservice.Module{}, nil, err
		}
		repo := postgresadapter.NewRepository(pg.DB, logger)
		if err := repo.Migrate(); err != nil {
			_ = pg.Close()
			return ingestionservice.Module{}, nil, err
		}
		archive = repo
	}

	module := ingestionservice.NewModule(ingestionservice.Dependencies{
		Source:       source,
		Snapshots:    snapshot.NewStore(cfg.CacheDir),
		Archive:      archive,
		Publisher:    publisher,
		Clock:        snapshot.SystemClock{},
		IDGenerator:  snapshot.UUIDGenerator{},
		SnapshotKeep: cfg.SnapshotKeep,
		Logger:       logger,
	})
	return module, pg, nil
}

func buildSource(cfg config.Config) (ingestionports.SourceReader, error) {
	if strings.TrimSpace(cfg.SheetURL) != "" {
		return &sheet.Client{URL: cfg.SheetURL, APIKey: cfg.SheetAPIKey}, nil
	}
	file := strings.TrimSpace(cfg.DataFile)
	if file == "" {
		return nil, errors.New("either SHEET_URL or DATA_FILE is required")
	}
	switch strings.ToLower(filepath.Ext(file)) {
	case ".xlsx", ".xlsm":
		return xlsxfile.Reader{Path: file}, nil
	default:
		return csvfile.Reader{Path: file}, nil
	}
}

// datasetBridge adapts the ingestion read side to the dashboard's
// DatasetProvider port.
type datasetBridge struct {
	service ingestionapp.Service
}

func (b datasetBridge) Dataset(ctx context.Context) (dashboardports.Dataset, error) {
	dataset, err := b.service.Dataset(ctx)
	if err != nil {
		return dashboardports.Dataset{}, err
	}
	out := dashboardports.Dataset{
		Measurements: make([]dashboardports.Measurement, 0, len(dataset.Measurements)),
		Source:       dataset.Source,
		RefreshedAt:  dataset.RefreshedAt,
		Stale:        b.service.Status.Stale(),
	}
	for _, m := range dataset.Measurements {
		out.Measurements = append(out.Measurements, dashboardports.Measurement{
			Timestamp: m.Timestamp,
			SYS:       m.SYS,
			DIA:       m.DIA,
			PUL:       m.PUL,
			MAP:       m.MAP,
			PP:        m.PP,
			Hour:      m.Hour,
			Day:       m.Day,
			Slot:      m.Slot,
			DayType:   string(m.DayType),
			Category:  string(m.Category),
		})
	}
	return out, nil
}

// envelopePublisher wraps refresh reports in the shared event envelope
// before they hit the bus.
type envelopePublisher struct {
	bus     *messaging.Bus
	service string
}

func (p *envelopePublisher) Publish(ctx context.Context, topic string, payload any) error {
	return p.bus.Publish(ctx, topic, events.Envelope{
		EventID:        uuid.NewString(),
		EventType:      topic,
		SourceService:  p.service,
		OccurredAtUTC:  time.Now().UTC(),
		EntityType:     "dataset",
		PayloadVersion: 1,
		Payload:        payload,
	})
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func (w *WorkerApp) Run(ctx context.Context) error {
	if w.pruner != nil {
		err := w.bus.Subscribe(ctx, ingestionapp.TopicRefreshCompleted, "tensio-snapshot-prune-cg",
			func(ctx context.Context, event events.Envelope) error {
				return w.pruner.HandleRefreshCompleted(ctx, event.Payload)
			})
		if err != nil {
			return err
		}
	}

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"auto_refresh", w.autoRefresh,
		"refresh_interval", w.refresher.Interval.String(),
	)
	if !w.autoRefresh {
		<-ctx.Done()
		return ctx.Err()
	}
	return w.refresher.Run(ctx)
}

func (w *WorkerApp) Close() error {
	if w.postgres != nil {
		return w.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
