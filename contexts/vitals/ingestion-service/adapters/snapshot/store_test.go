package snapshot

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tensio/contexts/vitals/ingestion-service/domain/entities"
	domainerrors "tensio/contexts/vitals/ingestion-service/domain/errors"
	"tensio/contexts/vitals/ingestion-service/ports"
)

func sampleDataset(stamp time.Time) ports.Dataset {
	m := entities.Measurement{Timestamp: stamp, SYS: 120, DIA: 80, PUL: 70}
	m.Derive()
	return ports.Dataset{
		Measurements: []entities.Measurement{m},
		Source:       "csv:pomiary.csv",
		RefreshedAt:  stamp,
	}
}

func save(t *testing.T, store *Store, id string, createdAt time.Time) {
	t.Helper()
	meta := ports.SnapshotMeta{
		SnapshotID: id,
		Source:     "csv:pomiary.csv",
		CreatedAt:  createdAt,
		Loaded:     1,
	}
	if err := store.Save(context.Background(), meta, sampleDataset(createdAt)); err != nil {
		t.Fatalf("save %s: %v", id, err)
	}
}

func TestSaveAndLatest(t *testing.T) {
	store := NewStore(t.TempDir())
	base := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)

	save(t, store, "snap_1", base)
	save(t, store, "snap_2", base.Add(time.Hour))

	meta, dataset, err := store.Latest(context.Background())
	if err != nil {
		t.Fatalf("latest failed: %v", err)
	}
	if meta.SnapshotID != "snap_2" {
		t.Fatalf("latest = %q, want snap_2", meta.SnapshotID)
	}
	if len(dataset.Measurements) != 1 || dataset.Measurements[0].SYS != 120 {
		t.Fatalf("dataset did not round-trip: %+v", dataset)
	}
}

func TestLatestSkipsCorruptFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	base := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)

	save(t, store, "snap_1", base)

	// A newer file that never finished writing.
	corrupt := filepath.Join(dir, "snapshot_20260815_120000_snap_2.json")
	if err := os.WriteFile(corrupt, []byte("{truncated"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	meta, _, err := store.Latest(context.Background())
	if err != nil {
		t.Fatalf("latest failed: %v", err)
	}
	if meta.SnapshotID != "snap_1" {
		t.Fatalf("corrupt snapshot should be skipped, got %q", meta.SnapshotID)
	}
}

func TestLatestEmptyDir(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "never-created"))
	_, _, err := store.Latest(context.Background())
	if !errors.Is(err, domainerrors.ErrSnapshotNotFound) {
		t.Fatalf("expected snapshot not found, got %v", err)
	}
}

func TestListNewestFirst(t *testing.T) {
	store := NewStore(t.TempDir())
	base := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)

	save(t, store, "snap_1", base)
	save(t, store, "snap_2", base.Add(time.Hour))
	save(t, store, "snap_3", base.Add(2*time.Hour))

	metas, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(metas) != 3 {
		t.Fatalf("expected 3 snapshots, got %d", len(metas))
	}
	if metas[0].SnapshotID != "snap_3" || metas[2].SnapshotID != "snap_1" {
		t.Fatalf("list should be newest first: %+v", metas)
	}
}

func TestPruneKeepsNewest(t *testing.T) {
	store := NewStore(t.TempDir())
	base := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		save(t, store, string(rune('a'+i)), base.Add(time.Duration(i)*time.Hour))
	}

	removed, err := store.Prune(context.Background(), 2)
	if err != nil {
		t.Fatalf("prune failed: %v", err)
	}
	if removed != 3 {
		t.Fatalf("removed = %d, want 3", removed)
	}

	metas, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(metas) != 2 {
		t.Fatalf("expected 2 left, got %d", len(metas))
	}
	if metas[0].SnapshotID != "e" {
		t.Fatalf("newest snapshot should survive, got %q", metas[0].SnapshotID)
	}
}

func TestPruneZeroKeepIsNoop(t *testing.T) {
	store := NewStore(t.TempDir())
	save(t, store, "snap_1", time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC))

	removed, err := store.Prune(context.Background(), 0)
	if err != nil {
		t.Fatalf("prune failed: %v", err)
	}
	if removed != 0 {
		t.Fatalf("keep=0 must remove nothing")
	}
}
