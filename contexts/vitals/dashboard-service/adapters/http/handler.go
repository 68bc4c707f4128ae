package httpadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"tensio/contexts/vitals/dashboard-service/application"
	domainerrors "tensio/contexts/vitals/dashboard-service/domain/errors"
	httptransport "tensio/contexts/vitals/dashboard-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// ChartQueryParams are the raw query-string values for a chart request.
type ChartQueryParams struct {
	Column string
	Group  string
	Style  string
}

func (h Handler) ChartHandler(ctx context.Context, name string, params ChartQueryParams) (httptransport.ChartResponse, error) {
	fig, err := h.Service.Chart(ctx, application.ChartQuery{
		Name:   name,
		Column: params.Column,
		Group:  params.Group,
		Style:  params.Style,
	})
	if err != nil {
		return httptransport.ChartResponse{}, err
	}
	raw, err := json.Marshal(fig)
	if err != nil {
		return httptransport.ChartResponse{}, fmt.Errorf("%w: encode figure: %v", domainerrors.ErrExportFailed, err)
	}
	resp := httptransport.ChartResponse{Status: "success"}
	resp.Data.Chart = name
	resp.Data.Figure = raw
	return resp, nil
}

func (h Handler) ListChartsHandler(_ context.Context) httptransport.ChartListResponse {
	resp := httptransport.ChartListResponse{Status: "success"}
	resp.Data.Charts = append(resp.Data.Charts, application.ChartKinds...)
	return resp
}

func (h Handler) SummaryHandler(ctx context.Context) (httptransport.SummaryResponse, error) {
	summary, pie, err := h.Service.Summary(ctx)
	if err != nil {
		return httptransport.SummaryResponse{}, err
	}
	raw, err := json.Marshal(pie)
	if err != nil {
		return httptransport.SummaryResponse{}, fmt.Errorf("%w: encode figure: %v", domainerrors.ErrExportFailed, err)
	}
	resp := httptransport.SummaryResponse{Status: "success"}
	resp.Data.Count = summary.Count
	resp.Data.AvgSYS = summary.AvgSYS
	resp.Data.AvgDIA = summary.AvgDIA
	resp.Data.MaxReading = summary.MaxReading
	resp.Data.NormPercent = summary.NormPercent
	resp.Data.Pie = raw
	return resp, nil
}

func (h Handler) ExportHandler(ctx context.Context) (httptransport.ExportResponse, error) {
	file, err := h.Service.Export(ctx)
	if err != nil {
		return httptransport.ExportResponse{}, err
	}
	resp := httptransport.ExportResponse{Status: "success"}
	resp.Data.File = file
	return resp, nil
}
