package ports

import (
	"context"
	"time"

	"tensio/contexts/vitals/ingestion-service/domain/entities"
)

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// RawTable is a spreadsheet as read from a source adapter: one header row
// plus data rows, all values still strings.
type RawTable struct {
	Header []string
	Rows   [][]string
}

// SourceReader pulls the raw measurement table from wherever the data
// lives (local CSV/XLSX file, remote sheet export).
type SourceReader interface {
	Read(ctx context.Context) (RawTable, error)
	// Name identifies the source in reports and logs ("csv:pomiary.csv",
	// "sheet:https://...").
	Name() string
}

// Dataset is a fully processed set of measurements, sorted ascending by
// timestamp.
type Dataset struct {
	Measurements []entities.Measurement `json:"measurements"`
	Source       string                 `json:"source"`
	RefreshedAt  time.Time              `json:"refreshed_at"`
}

func (d Dataset) Empty() bool { return len(d.Measurements) == 0 }

// SnapshotMeta describes one cached dataset on disk.
type SnapshotMeta struct {
	SnapshotID string    `json:"snapshot_id"`
	Source     string    `json:"source"`
	CreatedAt  time.Time `json:"created_at"`
	Loaded     int       `json:"loaded"`
	Dropped    int       `json:"dropped"`
}

// SnapshotStore is the time-stamped local cache. Latest returns the newest
// readable snapshot; implementations skip corrupt files instead of failing.
type SnapshotStore interface {
	Save(ctx context.Context, meta SnapshotMeta, dataset Dataset) error
	Latest(ctx context.Context) (SnapshotMeta, Dataset, error)
	List(ctx context.Context) ([]SnapshotMeta, error)
	Prune(ctx context.Context, keep int) (int, error)
}

// ArchiveRepository persists measurements long-term. Upsert keyed by
// timestamp so repeated refreshes stay idempotent.
type ArchiveRepository interface {
	UpsertMeasurements(ctx context.Context, items []entities.Measurement) (int, error)
	ListMeasurements(ctx context.Context, query MeasurementQuery) ([]entities.Measurement, error)
}

// EventPublisher announces completed refreshes to interested workers.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, payload any) error
}

// MeasurementQuery filters a dataset or archive listing.
type MeasurementQuery struct {
	From     *time.Time
	To       *time.Time
	Category entities.Category
	Limit    int
}

// RefreshReport summarizes one refresh run, including the stale-cache
// fallback path.
type RefreshReport struct {
	Source      string    `json:"source"`
	SnapshotID  string    `json:"snapshot_id"`
	Loaded      int       `json:"loaded"`
	Dropped     int       `json:"dropped"`
	RefreshedAt time.Time `json:"refreshed_at"`
	Stale       bool      `json:"stale"`
	Warning     string    `json:"warning,omitempty"`
}
