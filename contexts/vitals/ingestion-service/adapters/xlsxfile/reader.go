package xlsxfile

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	domainerrors "tensio/contexts/vitals/ingestion-service/domain/errors"
	"tensio/contexts/vitals/ingestion-service/ports"
)

// Reader reads the measurement table from the first sheet of an XLSX
// workbook. Row one is the header.
type Reader struct {
	Path string
}

func (r Reader) Name() string {
	return "xlsx:" + filepath.Base(r.Path)
}

func (r Reader) Read(_ context.Context) (ports.RawTable, error) {
	book, err := excelize.OpenFile(r.Path)
	if err != nil {
		return ports.RawTable{}, fmt.Errorf("%w: open %s: %v", domainerrors.ErrSourceUnavailable, r.Path, err)
	}
	defer book.Close()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return ports.RawTable{}, fmt.Errorf("%w: workbook has no sheets", domainerrors.ErrInvalidSource)
	}

	rows, err := book.GetRows(sheets[0])
	if err != nil {
		return ports.RawTable{}, fmt.Errorf("%w: read sheet %s: %v", domainerrors.ErrInvalidSource, sheets[0], err)
	}
	if len(rows) == 0 {
		return ports.RawTable{}, fmt.Errorf("%w: sheet %s is empty", domainerrors.ErrInvalidSource, sheets[0])
	}
	return ports.RawTable{Header: rows[0], Rows: rows[1:]}, nil
}
