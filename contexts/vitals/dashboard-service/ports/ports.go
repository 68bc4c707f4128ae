package ports

import (
	"context"
	"time"
)

type Clock interface {
	Now() time.Time
}

// Measurement is the dashboard's read-model of one processed reading, as
// produced by the ingestion pipeline.
type Measurement struct {
	Timestamp time.Time `json:"timestamp"`
	SYS       float64   `json:"sys"`
	DIA       float64   `json:"dia"`
	PUL       float64   `json:"pul"`
	MAP       float64   `json:"map"`
	PP        float64   `json:"pp"`
	Hour      int       `json:"hour"`
	Day       string    `json:"day"`
	Slot      string    `json:"slot,omitempty"`
	DayType   string    `json:"day_type"`
	Category  string    `json:"category"`
}

// Dataset is the current processed dataset plus its provenance.
type Dataset struct {
	Measurements []Measurement
	Source       string
	RefreshedAt  time.Time
	Stale        bool
}

func (d Dataset) Empty() bool { return len(d.Measurements) == 0 }

// DatasetProvider hands the dashboard the latest processed dataset. The
// composition root bridges this to the ingestion module.
type DatasetProvider interface {
	Dataset(ctx context.Context) (Dataset, error)
}

// ReportWriter persists an exported report and returns its file name.
type ReportWriter interface {
	Write(ctx context.Context, name string, content []byte) (string, error)
}

// Summary is the KPI block of the overview tab.
type Summary struct {
	Count       int     `json:"count"`
	AvgSYS      float64 `json:"avg_sys"`
	AvgDIA      float64 `json:"avg_dia"`
	MaxReading  string  `json:"max_reading"`
	NormPercent float64 `json:"norm_percent"`
}
