package unit

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	dashboardservice "tensio/contexts/vitals/dashboard-service"
	httpadapter "tensio/contexts/vitals/dashboard-service/adapters/http"
	"tensio/contexts/vitals/dashboard-service/application"
	domainerrors "tensio/contexts/vitals/dashboard-service/domain/errors"
	"tensio/contexts/vitals/dashboard-service/ports"
)

func dashboardDataset() ports.Dataset {
	refreshed := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	readings := []struct {
		day      string
		hour     int
		sys, dia float64
		category string
	}{
		{"2026-08-13", 10, 115, 65, "Optimal"},
		{"2026-08-13", 22, 128, 82, "Elevated"},
		{"2026-08-14", 10, 118, 76, "Normal"},
		{"2026-08-14", 22, 145, 85, "Isolated Systolic Hypertension"},
		{"2026-08-15", 10, 136, 92, "Hypertension Grade 1"},
	}
	dataset := ports.Dataset{Source: "memory", RefreshedAt: refreshed}
	for _, r := range readings {
		day, _ := time.Parse("2006-01-02", r.day)
		stamp := day.Add(time.Duration(r.hour) * time.Hour)
		dayType := "workday"
		if wd := stamp.Weekday(); wd == time.Saturday || wd == time.Sunday {
			dayType = "weekend"
		}
		dataset.Measurements = append(dataset.Measurements, ports.Measurement{
			Timestamp: stamp,
			SYS:       r.sys,
			DIA:       r.dia,
			PUL:       70,
			MAP:       (r.sys + 2*r.dia) / 3,
			PP:        r.sys - r.dia,
			Hour:      r.hour,
			Day:       r.day,
			Slot:      stamp.Format("15:04"),
			DayType:   dayType,
			Category:  r.category,
		})
	}
	return dataset
}

func TestDashboardServesEveryChart(t *testing.T) {
	module := dashboardservice.NewInMemoryModule(dashboardDataset(), nil)
	ctx := context.Background()

	for _, kind := range application.ChartKinds {
		resp, err := module.Handler.ChartHandler(ctx, kind, httpadapter.ChartQueryParams{})
		if err != nil {
			t.Fatalf("chart %q failed: %v", kind, err)
		}
		if resp.Data.Chart != kind {
			t.Fatalf("chart name = %q, want %q", resp.Data.Chart, kind)
		}
		var figure struct {
			Data []json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(resp.Data.Figure, &figure); err != nil {
			t.Fatalf("chart %q figure is not valid json: %v", kind, err)
		}
		if len(figure.Data) == 0 {
			t.Fatalf("chart %q has no traces", kind)
		}
	}
}

func TestDashboardRejectsUnknownChart(t *testing.T) {
	module := dashboardservice.NewInMemoryModule(dashboardDataset(), nil)
	_, err := module.Handler.ChartHandler(context.Background(), "sparkline", httpadapter.ChartQueryParams{})
	if !errors.Is(err, domainerrors.ErrUnknownChart) {
		t.Fatalf("expected unknown chart, got %v", err)
	}
}

func TestDashboardRejectsBadChartOptions(t *testing.T) {
	module := dashboardservice.NewInMemoryModule(dashboardDataset(), nil)
	ctx := context.Background()

	_, err := module.Handler.ChartHandler(ctx, "histogram", httpadapter.ChartQueryParams{Column: "BMI"})
	if !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected invalid request for bad column, got %v", err)
	}
	_, err = module.Handler.ChartHandler(ctx, "comparison", httpadapter.ChartQueryParams{Style: "scatter"})
	if !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected invalid request for bad style, got %v", err)
	}
}

func TestDashboardSummaryKPIs(t *testing.T) {
	module := dashboardservice.NewInMemoryModule(dashboardDataset(), nil)

	resp, err := module.Handler.SummaryHandler(context.Background())
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if resp.Data.Count != 5 {
		t.Fatalf("count = %d", resp.Data.Count)
	}
	if resp.Data.MaxReading != "145 / 85" {
		t.Fatalf("max reading = %q", resp.Data.MaxReading)
	}
	if resp.Data.NormPercent != 60.0 {
		t.Fatalf("norm percent = %v", resp.Data.NormPercent)
	}
	if len(resp.Data.Pie) == 0 {
		t.Fatalf("expected embedded pie figure")
	}
}

func TestDashboardExportProducesReport(t *testing.T) {
	module := dashboardservice.NewInMemoryModule(dashboardDataset(), nil)

	resp, err := module.Handler.ExportHandler(context.Background())
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !strings.HasPrefix(resp.Data.File, "bp_report_") || !strings.HasSuffix(resp.Data.File, ".html") {
		t.Fatalf("export file = %q", resp.Data.File)
	}
}
