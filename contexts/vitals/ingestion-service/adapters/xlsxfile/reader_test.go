package xlsxfile

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	domainerrors "tensio/contexts/vitals/ingestion-service/domain/errors"
)

func writeWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()
	book := excelize.NewFile()
	defer book.Close()

	sheet := book.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := book.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}

	path := filepath.Join(t.TempDir(), "pomiary.xlsx")
	if err := book.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

func TestReadWorkbook(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"date", "time", "sys", "dia", "pul"},
		{"2026-08-14", "10:00", 118, 76, 68},
		{"2026-08-14", "22:00", 142, 88, 74},
	})

	table, err := Reader{Path: path}.Read(context.Background())
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(table.Header) != 5 || table.Header[2] != "sys" {
		t.Fatalf("unexpected header: %v", table.Header)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(table.Rows))
	}
	if table.Rows[0][2] != "118" {
		t.Fatalf("numeric cell should come back as string: %v", table.Rows[0])
	}
}

func TestReadMissingWorkbook(t *testing.T) {
	_, err := Reader{Path: filepath.Join(t.TempDir(), "absent.xlsx")}.Read(context.Background())
	if !errors.Is(err, domainerrors.ErrSourceUnavailable) {
		t.Fatalf("expected source unavailable, got %v", err)
	}
}
