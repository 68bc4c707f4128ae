package workers

import (
	"context"
	"log/slog"

	"tensio/contexts/vitals/ingestion-service/application"
	"tensio/contexts/vitals/ingestion-service/ports"
)

// Pruner trims the snapshot cache after each completed refresh. It is
// driven by the refresh-completed event so it never races a running save.
type Pruner struct {
	Snapshots ports.SnapshotStore
	Keep      int
	Logger    *slog.Logger
}

func (p Pruner) HandleRefreshCompleted(ctx context.Context, _ any) error {
	logger := application.ResolveLogger(p.Logger)
	removed, err := p.Snapshots.Prune(ctx, p.Keep)
	if err != nil {
		logger.Error("snapshot prune failed",
			"event", "ingestion_prune_failed",
			"module", "vitals/ingestion-service",
			"layer", "worker",
			"error", err.Error(),
		)
		return err
	}
	if removed > 0 {
		logger.Info("snapshot prune completed",
			"event", "ingestion_prune_completed",
			"module", "vitals/ingestion-service",
			"layer", "worker",
			"removed", removed,
		)
	}
	return nil
}
