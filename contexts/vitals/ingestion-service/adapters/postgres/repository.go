package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tensio/contexts/vitals/ingestion-service/domain/entities"
	"tensio/contexts/vitals/ingestion-service/ports"
)

// Repository is the long-term measurement archive. The snapshot files stay
// the source of truth for the dashboard; the archive keeps history across
// cache pruning.
type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{db: db, logger: logger}
}

type measurementModel struct {
	MeasuredAt time.Time `gorm:"column:measured_at;primaryKey"`
	SYS        float64   `gorm:"column:sys"`
	DIA        float64   `gorm:"column:dia"`
	PUL        float64   `gorm:"column:pul"`
	MAP        float64   `gorm:"column:map"`
	PP         float64   `gorm:"column:pp"`
	Hour       int       `gorm:"column:hour"`
	Day        string    `gorm:"column:day"`
	Slot       string    `gorm:"column:slot"`
	DayType    string    `gorm:"column:day_type"`
	Category   string    `gorm:"column:category"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (measurementModel) TableName() string { return "measurements" }

func (m measurementModel) toEntity() entities.Measurement {
	return entities.Measurement{
		Timestamp: m.MeasuredAt,
		SYS:       m.SYS,
		DIA:       m.DIA,
		PUL:       m.PUL,
		MAP:       m.MAP,
		PP:        m.PP,
		Hour:      m.Hour,
		Day:       m.Day,
		Slot:      m.Slot,
		DayType:   entities.DayType(m.DayType),
		Category:  entities.Category(m.Category),
	}
}

func toModel(m entities.Measurement, now time.Time) measurementModel {
	return measurementModel{
		MeasuredAt: m.Timestamp.UTC(),
		SYS:        m.SYS,
		DIA:        m.DIA,
		PUL:        m.PUL,
		MAP:        m.MAP,
		PP:         m.PP,
		Hour:       m.Hour,
		Day:        m.Day,
		Slot:       m.Slot,
		DayType:    string(m.DayType),
		Category:   string(m.Category),
		UpdatedAt:  now,
	}
}

// UpsertMeasurements writes the refreshed dataset keyed by measured_at, so
// re-running a refresh over the same sheet never duplicates rows.
func (r *Repository) UpsertMeasurements(ctx context.Context, items []entities.Measurement) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	now := time.Now().UTC()
	models := make([]measurementModel, 0, len(items))
	for _, item := range items {
		models = append(models, toModel(item, now))
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "measured_at"}},
			UpdateAll: true,
		}).
		CreateInBatches(models, 200).
		Error
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			r.logger.Error("measurement upsert rejected",
				"event", "ingestion_archive_pg_error",
				"module", "vitals/ingestion-service",
				"layer", "adapter",
				"pg_code", pgErr.Code,
			)
		}
		return 0, err
	}
	return len(models), nil
}

func (r *Repository) ListMeasurements(ctx context.Context, query ports.MeasurementQuery) ([]entities.Measurement, error) {
	tx := r.db.WithContext(ctx).Model(&measurementModel{})
	if query.From != nil {
		tx = tx.Where("measured_at >= ?", query.From.UTC())
	}
	if query.To != nil {
		tx = tx.Where("measured_at <= ?", query.To.UTC())
	}
	if query.Category != "" {
		tx = tx.Where("category = ?", string(query.Category))
	}
	tx = tx.Order("measured_at ASC")
	if query.Limit > 0 {
		tx = tx.Limit(query.Limit)
	}

	var rows []measurementModel
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]entities.Measurement, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

// Migrate creates the measurements table when the archive is enabled.
func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(&measurementModel{})
}
