package application

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"tensio/contexts/vitals/ingestion-service/domain/entities"
	domainerrors "tensio/contexts/vitals/ingestion-service/domain/errors"
	"tensio/contexts/vitals/ingestion-service/ports"
)

// TopicRefreshCompleted is published after every successful refresh.
const TopicRefreshCompleted = "vitals.refresh.completed"

type Service struct {
	Source       ports.SourceReader
	Snapshots    ports.SnapshotStore
	Archive      ports.ArchiveRepository // nil when no archive is configured
	Publisher    ports.EventPublisher    // nil outside worker wiring
	Clock        ports.Clock
	IDGen        ports.IDGenerator
	SnapshotKeep int
	Status       *RefreshStatus // nil-safe; records the last refresh outcome
	Logger       *slog.Logger
}

// Refresh runs the full pipeline: read raw rows, validate the header, drop
// incomplete rows, derive and classify, snapshot the result. When the
// source read fails and a snapshot exists, the last good snapshot is
// returned with Stale set instead of an error.
func (s Service) Refresh(ctx context.Context) (ports.Dataset, ports.RefreshReport, error) {
	logger := ResolveLogger(s.Logger)

	table, err := s.Source.Read(ctx)
	if err != nil {
		return s.fallback(ctx, err)
	}

	dataset, report, err := s.process(table)
	if err != nil {
		return ports.Dataset{}, ports.RefreshReport{}, err
	}

	snapshotID, err := s.newID(ctx)
	if err != nil {
		return ports.Dataset{}, ports.RefreshReport{}, err
	}
	report.SnapshotID = snapshotID

	meta := ports.SnapshotMeta{
		SnapshotID: snapshotID,
		Source:     dataset.Source,
		CreatedAt:  report.RefreshedAt,
		Loaded:     report.Loaded,
		Dropped:    report.Dropped,
	}
	if err := s.Snapshots.Save(ctx, meta, dataset); err != nil {
		return ports.Dataset{}, ports.RefreshReport{}, err
	}
	if s.SnapshotKeep > 0 {
		if _, err := s.Snapshots.Prune(ctx, s.SnapshotKeep); err != nil {
			logger.Warn("snapshot prune failed",
				"event", "ingestion_snapshot_prune_failed",
				"module", "vitals/ingestion-service",
				"layer", "application",
				"error", err.Error(),
			)
		}
	}

	if s.Archive != nil {
		stored, err := s.Archive.UpsertMeasurements(ctx, dataset.Measurements)
		if err != nil {
			logger.Error("archive upsert failed",
				"event", "ingestion_archive_upsert_failed",
				"module", "vitals/ingestion-service",
				"layer", "application",
				"error", err.Error(),
			)
		} else {
			logger.Info("archive updated",
				"event", "ingestion_archive_updated",
				"module", "vitals/ingestion-service",
				"layer", "application",
				"stored", stored,
			)
		}
	}

	if s.Publisher != nil {
		if err := s.Publisher.Publish(ctx, TopicRefreshCompleted, report); err != nil {
			logger.Warn("refresh event publish failed",
				"event", "ingestion_refresh_publish_failed",
				"module", "vitals/ingestion-service",
				"layer", "application",
				"error", err.Error(),
			)
		}
	}

	s.Status.record(false, "", report.RefreshedAt)
	logger.Info("refresh completed",
		"event", "ingestion_refresh_completed",
		"module", "vitals/ingestion-service",
		"layer", "application",
		"source", report.Source,
		"loaded", report.Loaded,
		"dropped", report.Dropped,
		"snapshot_id", report.SnapshotID,
	)
	return dataset, report, nil
}

// Dataset returns the newest cached dataset, refreshing once when the cache
// is still empty.
func (s Service) Dataset(ctx context.Context) (ports.Dataset, error) {
	_, dataset, err := s.Snapshots.Latest(ctx)
	if err == nil {
		return dataset, nil
	}
	dataset, _, err = s.Refresh(ctx)
	if err != nil {
		return ports.Dataset{}, err
	}
	return dataset, nil
}

// Measurements filters the current dataset.
func (s Service) Measurements(ctx context.Context, query ports.MeasurementQuery) ([]entities.Measurement, error) {
	if query.Category != "" && !query.Category.Valid() {
		return nil, domainerrors.ErrInvalidRequest
	}
	dataset, err := s.Dataset(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]entities.Measurement, 0, len(dataset.Measurements))
	for _, m := range dataset.Measurements {
		if query.From != nil && m.Timestamp.Before(*query.From) {
			continue
		}
		if query.To != nil && m.Timestamp.After(*query.To) {
			continue
		}
		if query.Category != "" && m.Category != query.Category {
			continue
		}
		items = append(items, m)
		if query.Limit > 0 && len(items) >= query.Limit {
			break
		}
	}
	return items, nil
}

func (s Service) ListSnapshots(ctx context.Context) ([]ports.SnapshotMeta, error) {
	return s.Snapshots.List(ctx)
}

func (s Service) process(table ports.RawTable) (ports.Dataset, ports.RefreshReport, error) {
	index, err := columnIndex(table.Header)
	if err != nil {
		return ports.Dataset{}, ports.RefreshReport{}, err
	}

	now := s.now()
	parsed := make([]parsedRow, 0, len(table.Rows))
	dropped := 0
	for _, row := range table.Rows {
		if blankRow(row) {
			continue
		}
		p, ok := parseRow(row, index)
		if !ok {
			dropped++
			continue
		}
		parsed = append(parsed, p)
	}
	sortParsed(parsed)

	measurements := make([]entities.Measurement, 0, len(parsed))
	for _, p := range parsed {
		m := entities.Measurement{Timestamp: p.timestamp, SYS: p.sys, DIA: p.dia, PUL: p.pul}
		if !m.Plausible() {
			dropped++
			continue
		}
		m.Derive()
		measurements = append(measurements, m)
	}

	dataset := ports.Dataset{
		Measurements: measurements,
		Source:       s.Source.Name(),
		RefreshedAt:  now,
	}
	report := ports.RefreshReport{
		Source:      dataset.Source,
		Loaded:      len(measurements),
		Dropped:     dropped,
		RefreshedAt: now,
	}
	return dataset, report, nil
}

// fallback serves the last good snapshot when the source cannot be read.
func (s Service) fallback(ctx context.Context, sourceErr error) (ports.Dataset, ports.RefreshReport, error) {
	logger := ResolveLogger(s.Logger)

	meta, dataset, err := s.Snapshots.Latest(ctx)
	if err != nil {
		logger.Error("source read failed with no snapshot to fall back on",
			"event", "ingestion_refresh_failed",
			"module", "vitals/ingestion-service",
			"layer", "application",
			"error", sourceErr.Error(),
		)
		return ports.Dataset{}, ports.RefreshReport{}, sourceErr
	}

	logger.Warn("source read failed, serving last good snapshot",
		"event", "ingestion_refresh_stale",
		"module", "vitals/ingestion-service",
		"layer", "application",
		"snapshot_id", meta.SnapshotID,
		"error", sourceErr.Error(),
	)
	report := ports.RefreshReport{
		Source:      meta.Source,
		SnapshotID:  meta.SnapshotID,
		Loaded:      meta.Loaded,
		Dropped:     meta.Dropped,
		RefreshedAt: meta.CreatedAt,
		Stale:       true,
		Warning:     sourceErr.Error(),
	}
	s.Status.record(true, report.Warning, report.RefreshedAt)
	return dataset, report, nil
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}

func (s Service) newID(ctx context.Context) (string, error) {
	if s.IDGen == nil {
		return "", errors.New("ingestion service requires an id generator")
	}
	return s.IDGen.NewID(ctx)
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if len(cell) > 0 {
			return false
		}
	}
	return true
}
