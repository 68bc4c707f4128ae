package httpadapter

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"tensio/contexts/vitals/ingestion-service/application"
	"tensio/contexts/vitals/ingestion-service/domain/entities"
	domainerrors "tensio/contexts/vitals/ingestion-service/domain/errors"
	"tensio/contexts/vitals/ingestion-service/ports"
	httptransport "tensio/contexts/vitals/ingestion-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) RefreshHandler(ctx context.Context) (httptransport.RefreshResponse, error) {
	_, report, err := h.Service.Refresh(ctx)
	if err != nil {
		return httptransport.RefreshResponse{}, err
	}
	resp := httptransport.RefreshResponse{Status: "success"}
	resp.Data.Source = report.Source
	resp.Data.SnapshotID = report.SnapshotID
	resp.Data.Loaded = report.Loaded
	resp.Data.Dropped = report.Dropped
	resp.Data.RefreshedAt = report.RefreshedAt.UTC().Format(time.RFC3339)
	resp.Data.Stale = report.Stale
	resp.Data.Warning = report.Warning
	return resp, nil
}

// MeasurementQueryParams are the raw query-string values; the handler owns
// parsing so the application layer only sees typed filters.
type MeasurementQueryParams struct {
	From     string
	To       string
	Category string
	Limit    string
}

func (h Handler) ListMeasurementsHandler(ctx context.Context, params MeasurementQueryParams) (httptransport.MeasurementsResponse, error) {
	query := ports.MeasurementQuery{
		Category: entities.Category(strings.TrimSpace(params.Category)),
	}
	if ts, ok, err := parseOptionalTime(params.From); err != nil {
		return httptransport.MeasurementsResponse{}, domainerrors.ErrInvalidRequest
	} else if ok {
		query.From = &ts
	}
	if ts, ok, err := parseOptionalTime(params.To); err != nil {
		return httptransport.MeasurementsResponse{}, domainerrors.ErrInvalidRequest
	} else if ok {
		query.To = &ts
	}
	if raw := strings.TrimSpace(params.Limit); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return httptransport.MeasurementsResponse{}, domainerrors.ErrInvalidRequest
		}
		query.Limit = limit
	}

	items, err := h.Service.Measurements(ctx, query)
	if err != nil {
		return httptransport.MeasurementsResponse{}, err
	}

	resp := httptransport.MeasurementsResponse{Status: "success"}
	resp.Data.Items = make([]httptransport.MeasurementDTO, 0, len(items))
	for _, m := range items {
		resp.Data.Items = append(resp.Data.Items, toMeasurementDTO(m))
	}
	resp.Data.Total = len(resp.Data.Items)
	return resp, nil
}

func (h Handler) ListSnapshotsHandler(ctx context.Context) (httptransport.SnapshotsResponse, error) {
	metas, err := h.Service.ListSnapshots(ctx)
	if err != nil {
		return httptransport.SnapshotsResponse{}, err
	}
	resp := httptransport.SnapshotsResponse{Status: "success"}
	resp.Data.Items = make([]httptransport.SnapshotDTO, 0, len(metas))
	for _, meta := range metas {
		resp.Data.Items = append(resp.Data.Items, httptransport.SnapshotDTO{
			SnapshotID: meta.SnapshotID,
			Source:     meta.Source,
			CreatedAt:  meta.CreatedAt.UTC().Format(time.RFC3339),
			Loaded:     meta.Loaded,
			Dropped:    meta.Dropped,
		})
	}
	return resp, nil
}

func toMeasurementDTO(m entities.Measurement) httptransport.MeasurementDTO {
	return httptransport.MeasurementDTO{
		Timestamp: m.Timestamp.UTC().Format(time.RFC3339),
		SYS:       m.SYS,
		DIA:       m.DIA,
		PUL:       m.PUL,
		MAP:       m.MAP,
		PP:        m.PP,
		Hour:      m.Hour,
		Day:       m.Day,
		Slot:      m.Slot,
		DayType:   string(m.DayType),
		Category:  string(m.Category),
	}
}

func parseOptionalTime(raw string) (time.Time, bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts.UTC(), true, nil
		}
	}
	return time.Time{}, false, domainerrors.ErrInvalidRequest
}
