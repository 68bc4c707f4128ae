package csvfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	domainerrors "tensio/contexts/vitals/ingestion-service/domain/errors"
)

func TestReadWithBOMAndRaggedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pomiary.csv")
	content := "\xEF\xBB\xBFdate,time,sys,dia,pul\n" +
		"2026-08-14,10:00,118,76,68\n" +
		"2026-08-14,22:00,142,88,74,extra\n" +
		"2026-08-15,10:00,135,95\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	table, err := Reader{Path: path}.Read(context.Background())
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if table.Header[0] != "date" {
		t.Fatalf("BOM not stripped, header[0] = %q", table.Header[0])
	}
	if len(table.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(table.Rows))
	}
	if len(table.Rows[1]) != 6 || len(table.Rows[2]) != 4 {
		t.Fatalf("ragged rows should survive: %v", table.Rows)
	}
}

func TestReadMissingFile(t *testing.T) {
	_, err := Reader{Path: filepath.Join(t.TempDir(), "absent.csv")}.Read(context.Background())
	if !errors.Is(err, domainerrors.ErrSourceUnavailable) {
		t.Fatalf("expected source unavailable, got %v", err)
	}
}

func TestName(t *testing.T) {
	r := Reader{Path: "/data/exports/pomiary.csv"}
	if r.Name() != "csv:pomiary.csv" {
		t.Fatalf("name = %q", r.Name())
	}
}
