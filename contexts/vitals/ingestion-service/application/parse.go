package application

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	domainerrors "tensio/contexts/vitals/ingestion-service/domain/errors"
)

var requiredColumns = []string{"date", "time", "sys", "dia", "pul"}

// Sheet exports disagree on date/time formatting, so parsing tries the
// layouts seen in real files before giving up on a row.
var dateLayouts = []string{"2006-01-02", "02.01.2006", "2006/01/02", "01/02/2006"}
var timeLayouts = []string{"15:04:05", "15:04", "15"}

type parsedRow struct {
	timestamp time.Time
	sys       float64
	dia       float64
	pul       float64
}

// columnIndex validates the header and maps required column names to their
// positions. Header cells are matched case-insensitively after trimming.
func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		if _, ok := index[key]; !ok {
			index[key] = i
		}
	}
	var missing []string
	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing columns %s", domainerrors.ErrInvalidSource, strings.Join(missing, ", "))
	}
	return index, nil
}

// parseRow converts one raw row. ok=false means the row is incomplete or
// malformed and must be dropped (and counted), not failed on.
func parseRow(row []string, index map[string]int) (parsedRow, bool) {
	cell := func(name string) string {
		i := index[name]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	sys, ok := parseValue(cell("sys"))
	if !ok {
		return parsedRow{}, false
	}
	dia, ok := parseValue(cell("dia"))
	if !ok {
		return parsedRow{}, false
	}
	pul, ok := parseValue(cell("pul"))
	if !ok {
		return parsedRow{}, false
	}
	ts, ok := parseTimestamp(cell("date"), cell("time"))
	if !ok {
		return parsedRow{}, false
	}
	return parsedRow{timestamp: ts, sys: sys, dia: dia, pul: pul}, true
}

func parseValue(raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}
	raw = strings.ReplaceAll(raw, ",", ".")
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

func parseTimestamp(date, clock string) (time.Time, bool) {
	if date == "" {
		return time.Time{}, false
	}
	var day time.Time
	var err error
	for _, layout := range dateLayouts {
		if day, err = time.ParseInLocation(layout, date, time.UTC); err == nil {
			break
		}
	}
	if err != nil {
		return time.Time{}, false
	}
	if clock == "" {
		return day, true
	}
	for _, layout := range timeLayouts {
		if t, terr := time.Parse(layout, clock); terr == nil {
			return time.Date(day.Year(), day.Month(), day.Day(),
				t.Hour(), t.Minute(), t.Second(), 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

func sortParsed(rows []parsedRow) {
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].timestamp.Before(rows[j].timestamp)
	})
}
