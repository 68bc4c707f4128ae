package csvfile

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	domainerrors "tensio/contexts/vitals/ingestion-service/domain/errors"
	"tensio/contexts/vitals/ingestion-service/ports"
)

// Reader reads the measurement table from a local CSV export.
type Reader struct {
	Path string
}

func (r Reader) Name() string {
	return "csv:" + filepath.Base(r.Path)
}

func (r Reader) Read(_ context.Context) (ports.RawTable, error) {
	file, err := os.Open(r.Path)
	if err != nil {
		return ports.RawTable{}, fmt.Errorf("%w: open %s: %v", domainerrors.ErrSourceUnavailable, r.Path, err)
	}
	defer file.Close()

	buffered := bufio.NewReaderSize(file, 64*1024)

	// Sheet exports often carry a UTF-8 BOM.
	if bom, err := buffered.Peek(3); err == nil && len(bom) == 3 &&
		bom[0] == 0xEF && bom[1] == 0xBB && bom[2] == 0xBF {
		_, _ = buffered.Discard(3)
	}

	reader := csv.NewReader(buffered)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return ports.RawTable{}, fmt.Errorf("%w: read header: %v", domainerrors.ErrInvalidSource, err)
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return ports.RawTable{}, fmt.Errorf("%w: read row: %v", domainerrors.ErrInvalidSource, err)
		}
		rows = append(rows, record)
	}
	return ports.RawTable{Header: header, Rows: rows}, nil
}
