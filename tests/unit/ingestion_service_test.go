package unit

import (
	"context"
	"errors"
	"testing"

	ingestionservice "tensio/contexts/vitals/ingestion-service"
	httpadapter "tensio/contexts/vitals/ingestion-service/adapters/http"
	domainerrors "tensio/contexts/vitals/ingestion-service/domain/errors"
	"tensio/contexts/vitals/ingestion-service/ports"
)

func measurementTable() ports.RawTable {
	return ports.RawTable{
		Header: []string{"Date", "Time", "SYS", "DIA", "PUL"},
		Rows: [][]string{
			{"2026-08-14", "10:00", "118", "76", "64"},
			{"2026-08-14", "22:00", "142", "92", "72"},
			{"2026-08-15", "10:00", "185", "85", "70"},
			{"2026-08-15", "22:00", "abc", "88", "70"},
		},
	}
}

func TestIngestionRefreshProcessesTable(t *testing.T) {
	module := ingestionservice.NewInMemoryModule(measurementTable(), nil)
	ctx := context.Background()

	resp, err := module.Handler.RefreshHandler(ctx)
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if resp.Data.Loaded != 3 || resp.Data.Dropped != 1 {
		t.Fatalf("loaded = %d dropped = %d", resp.Data.Loaded, resp.Data.Dropped)
	}
	if resp.Data.Stale {
		t.Fatalf("fresh refresh marked stale")
	}
	if resp.Data.SnapshotID == "" {
		t.Fatalf("expected snapshot id")
	}
}

func TestIngestionMeasurementsFilterByCategory(t *testing.T) {
	module := ingestionservice.NewInMemoryModule(measurementTable(), nil)
	ctx := context.Background()

	if _, err := module.Handler.RefreshHandler(ctx); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}

	resp, err := module.Handler.ListMeasurementsHandler(ctx, httpadapter.MeasurementQueryParams{
		Category: "Isolated Systolic Hypertension",
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if resp.Data.Total != 1 {
		t.Fatalf("expected one isolated systolic reading, got %d", resp.Data.Total)
	}
	if got := resp.Data.Items[0].SYS; got != 185 {
		t.Fatalf("filtered reading sys = %v", got)
	}
}

func TestIngestionMeasurementsRejectBadParams(t *testing.T) {
	module := ingestionservice.NewInMemoryModule(measurementTable(), nil)
	ctx := context.Background()

	_, err := module.Handler.ListMeasurementsHandler(ctx, httpadapter.MeasurementQueryParams{Limit: "-5"})
	if !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected invalid request, got %v", err)
	}
	_, err = module.Handler.ListMeasurementsHandler(ctx, httpadapter.MeasurementQueryParams{From: "last tuesday"})
	if !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected invalid request, got %v", err)
	}
}

func TestIngestionSnapshotListNewestFirst(t *testing.T) {
	module := ingestionservice.NewInMemoryModule(measurementTable(), nil)
	ctx := context.Background()

	first, err := module.Handler.RefreshHandler(ctx)
	if err != nil {
		t.Fatalf("first refresh failed: %v", err)
	}
	second, err := module.Handler.RefreshHandler(ctx)
	if err != nil {
		t.Fatalf("second refresh failed: %v", err)
	}

	resp, err := module.Handler.ListSnapshotsHandler(ctx)
	if err != nil {
		t.Fatalf("list snapshots failed: %v", err)
	}
	if len(resp.Data.Items) != 2 {
		t.Fatalf("expected two snapshots, got %d", len(resp.Data.Items))
	}
	if resp.Data.Items[0].SnapshotID != second.Data.SnapshotID {
		t.Fatalf("expected newest snapshot first, got %s", resp.Data.Items[0].SnapshotID)
	}
	if resp.Data.Items[1].SnapshotID != first.Data.SnapshotID {
		t.Fatalf("expected oldest snapshot last, got %s", resp.Data.Items[1].SnapshotID)
	}
}
