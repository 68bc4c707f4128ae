package workers

import (
	"context"
	"log/slog"
	"time"

	"tensio/contexts/vitals/ingestion-service/application"
)

// Refresher re-runs the ingestion pipeline on a fixed interval so the
// dashboard keeps tracking the sheet without manual refreshes.
type Refresher struct {
	Service  application.Service
	Interval time.Duration
	Logger   *slog.Logger
}

func (r Refresher) Run(ctx context.Context) error {
	logger := application.ResolveLogger(r.Logger)
	interval := r.Interval
	if interval <= 0 {
		interval = 15 * time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	if err := r.runOnce(ctx, logger); err != nil && ctx.Err() != nil {
		return ctx.Err()
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := r.runOnce(ctx, logger); err != nil && ctx.Err() != nil {
				return ctx.Err()
			}
		}
	}
}

func (r Refresher) runOnce(ctx context.Context, logger *slog.Logger) error {
	_, report, err := r.Service.Refresh(ctx)
	if err != nil {
		logger.Error("scheduled refresh failed",
			"event", "ingestion_scheduled_refresh_failed",
			"module", "vitals/ingestion-service",
			"layer", "worker",
			"error", err.Error(),
		)
		return err
	}
	logger.Info("scheduled refresh completed",
		"event", "ingestion_scheduled_refresh_completed",
		"module", "vitals/ingestion-service",
		"layer", "worker",
		"loaded", report.Loaded,
		"dropped", report.Dropped,
		"stale", report.Stale,
	)
	return nil
}
