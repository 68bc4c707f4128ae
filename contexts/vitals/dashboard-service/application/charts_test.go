package application

import (
	"strings"
	"testing"
	"time"

	"tensio/contexts/vitals/dashboard-service/domain/guideline"
	"tensio/contexts/vitals/dashboard-service/ports"
)

func reading(day string, hour int, sys, dia, pul float64) ports.Measurement {
	ts, _ := time.Parse("2006-01-02", day)
	ts = time.Date(ts.Year(), ts.Month(), ts.Day(), hour, 0, 0, 0, time.UTC)
	m := ports.Measurement{
		Timestamp: ts,
		SYS:       sys,
		DIA:       dia,
		PUL:       pul,
		MAP:       (sys + 2*dia) / 3,
		PP:        sys - dia,
		Hour:      hour,
		Day:       day,
		DayType:   "workday",
	}
	if ts.Weekday() == time.Saturday || ts.Weekday() == time.Sunday {
		m.DayType = "weekend"
	}
	for _, h := range []int{10, 13, 16, 19, 22} {
		if hour == h {
			m.Slot = ts.Format("15:04")
		}
	}
	switch {
	case sys >= 140 && dia < 90:
		m.Category = guideline.ISH
	case sys >= 140 || dia >= 90:
		m.Category = guideline.Grade1
	case sys >= 130 || dia >= 80:
		m.Category = guideline.Elevated
	case sys >= 120 || dia >= 70:
		m.Category = guideline.Normal
	default:
		m.Category = guideline.Optimal
	}
	return m
}

func sampleDataset() ports.Dataset {
	return ports.Dataset{
		Measurements: []ports.Measurement{
			reading("2026-08-13", 10, 115, 65, 62),
			reading("2026-08-13", 22, 128, 82, 70),
			reading("2026-08-14", 10, 118, 76, 68),
			reading("2026-08-14", 22, 145, 85, 74),
			reading("2026-08-15", 10, 136, 92, 71),
		},
		Source:      "csv:pomiary.csv",
		RefreshedAt: time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC),
	}
}

func TestTrendChart(t *testing.T) {
	fig := TrendChart(sampleDataset())
	if len(fig.Data) != 5 {
		t.Fatalf("expected 5 series, got %d", len(fig.Data))
	}
	if fig.Data[0].Name != "SYS (systolic)" {
		t.Fatalf("first series = %q", fig.Data[0].Name)
	}
	if len(fig.Layout.Shapes) != 2 {
		t.Fatalf("expected 2 threshold lines, got %d", len(fig.Layout.Shapes))
	}
	if got := fig.Data[0].X; len(got) != 5 {
		t.Fatalf("expected 5 x values, got %d", len(got))
	}
}

func TestTrendChartEmpty(t *testing.T) {
	fig := TrendChart(ports.Dataset{})
	if len(fig.Data) != 0 {
		t.Fatalf("empty dataset should yield placeholder")
	}
	if fig.Layout.Title == nil || fig.Layout.Title.Text != "No data to display" {
		t.Fatalf("placeholder title missing")
	}
}

func TestCircadianChart(t *testing.T) {
	fig := CircadianChart(sampleDataset())
	// Legend stand-in + (band + mean) per parameter.
	if len(fig.Data) != 5 {
		t.Fatalf("expected 5 traces, got %d", len(fig.Data))
	}
	mean := fig.Data[2]
	if mean.Name != "Mean DIA" {
		t.Fatalf("trace 2 = %q, want Mean DIA", mean.Name)
	}
	ys, ok := mean.Y.([]float64)
	if !ok || len(ys) != 2 {
		t.Fatalf("expected per-hour means for 2 hours, got %v", mean.Y)
	}
	// Hour 10: DIA 65, 76, 92.
	want := (65.0 + 76.0 + 92.0) / 3
	if diff := ys[0] - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("mean DIA at 10:00 = %v, want %v", ys[0], want)
	}
}

func TestCorrelationChartRegression(t *testing.T) {
	fig := CorrelationChart(sampleDataset())
	if len(fig.Data) != 2 {
		t.Fatalf("expected scatter + fit, got %d traces", len(fig.Data))
	}
	fit := fig.Data[1]
	if !strings.HasPrefix(fit.Name, "Linear fit") {
		t.Fatalf("fit trace name = %q", fit.Name)
	}
	if !strings.Contains(fit.Name, "r = ") || !strings.Contains(fit.Name, "p = ") {
		t.Fatalf("fit name should carry r and p: %q", fit.Name)
	}
}

func TestCorrelationChartTooFewPoints(t *testing.T) {
	dataset := sampleDataset()
	dataset.Measurements = dataset.Measurements[:2]
	fig := CorrelationChart(dataset)
	if len(fig.Data) != 1 {
		t.Fatalf("fewer than 3 points must not fit a line, got %d traces", len(fig.Data))
	}
}

func TestHeatmapChart(t *testing.T) {
	fig := HeatmapChart(sampleDataset())
	if len(fig.Data) != 1 || fig.Data[0].Type != "heatmap" {
		t.Fatalf("expected one heatmap trace")
	}
	if !fig.Data[0].ReverseScale {
		t.Fatalf("heatmap must reverse the colorscale so high pressure reads red")
	}
	z := fig.Data[0].Z
	if len(z) != 3 {
		t.Fatalf("expected 3 day rows, got %d", len(z))
	}
	if len(z[0]) != 2 {
		t.Fatalf("expected 2 hour columns, got %d", len(z[0]))
	}
	// 2026-08-13 10:00 has SYS 115.
	if z[0][0] == nil || *z[0][0] != 115 {
		t.Fatalf("z[0][0] = %v, want 115", z[0][0])
	}
	// 2026-08-15 has no 22:00 reading; the cell must stay a gap, not 0.
	if z[2][1] != nil {
		t.Fatalf("empty cell should be a gap, got %v", *z[2][1])
	}
}

func TestHeatmapChartNeedsSpread(t *testing.T) {
	dataset := ports.Dataset{
		Measurements: []ports.Measurement{
			reading("2026-08-13", 10, 115, 65, 62),
			reading("2026-08-13", 22, 128, 82, 70),
		},
	}
	fig := HeatmapChart(dataset)
	if fig.Layout.Title == nil || fig.Layout.Title.Text != "Not enough data to build the heatmap" {
		t.Fatalf("single-day dataset should yield placeholder, got %+v", fig.Layout.Title)
	}
}

func TestHistogramChart(t *testing.T) {
	fig := HistogramChart(sampleDataset(), "SYS")
	if len(fig.Data) != 1 || fig.Data[0].Type != "histogram" {
		t.Fatalf("expected one histogram trace")
	}
	if fig.Data[0].NBinsX != 20 {
		t.Fatalf("nbinsx = %d, want 20", fig.Data[0].NBinsX)
	}
	// Mean line plus 5 guideline thresholds.
	if len(fig.Layout.Shapes) != 6 {
		t.Fatalf("expected 6 vertical lines, got %d", len(fig.Layout.Shapes))
	}
}

func TestHistogramChartPulseHasNoThresholds(t *testing.T) {
	fig := HistogramChart(sampleDataset(), "PUL")
	if len(fig.Layout.Shapes) != 1 {
		t.Fatalf("pulse histogram should only have the mean line, got %d", len(fig.Layout.Shapes))
	}
}

func TestMatrixChart(t *testing.T) {
	fig := MatrixChart(sampleDataset())
	if len(fig.Layout.Shapes) != 12 {
		t.Fatalf("expected 12 classification zones, got %d", len(fig.Layout.Shapes))
	}
	if len(fig.Data) != 1 || fig.Data[0].Mode != "markers" {
		t.Fatalf("expected one scatter trace")
	}
	if len(fig.Data[0].HoverText) != 5 {
		t.Fatalf("every reading needs hover text")
	}
}

func TestCategoryBarChart(t *testing.T) {
	fig := CategoryBarChart(sampleDataset())
	if len(fig.Data) != 1 || fig.Data[0].Type != "bar" {
		t.Fatalf("expected one bar trace")
	}
	// One reading each of Optimal, Normal, Elevated, Grade 1 and ISH.
	if len(fig.Data[0].X) != 5 {
		t.Fatalf("expected 5 categories, got %v", fig.Data[0].X)
	}
	if !strings.Contains(fig.Data[0].Text[0], "%") {
		t.Fatalf("bar labels should carry percentages: %v", fig.Data[0].Text)
	}
}

func TestCategoryPieChart(t *testing.T) {
	fig := CategoryPieChart(sampleDataset())
	if len(fig.Data) != 1 || fig.Data[0].Type != "pie" {
		t.Fatalf("expected one pie trace")
	}
	var total float64
	for _, v := range fig.Data[0].Values {
		total += v
	}
	if total != 5 {
		t.Fatalf("pie values should cover all readings, got %v", total)
	}
}

func TestComparisonChart(t *testing.T) {
	fig := ComparisonChart(sampleDataset(), GroupSlot, "box")
	if len(fig.Data) != 2 {
		t.Fatalf("expected SYS and DIA traces, got %d", len(fig.Data))
	}
	if fig.Data[0].Type != "box" || fig.Layout.BoxMode != "group" {
		t.Fatalf("expected grouped box plot")
	}

	fig = ComparisonChart(sampleDataset(), GroupCategory, "violin")
	if fig.Data[0].Type != "violin" || fig.Layout.ViolinMode != "group" {
		t.Fatalf("expected grouped violin plot")
	}
	if fig.Data[0].Box == nil || !fig.Data[0].Box.Visible {
		t.Fatalf("violin should show inner box")
	}
}

func TestHemodynamicsChart(t *testing.T) {
	fig := HemodynamicsChart(sampleDataset())
	if len(fig.Data) != 2 {
		t.Fatalf("expected MAP and PP traces, got %d", len(fig.Data))
	}
	if fig.Data[1].Name != "PP" {
		t.Fatalf("second trace = %q", fig.Data[1].Name)
	}
	if len(fig.Layout.Shapes) != 2 {
		t.Fatalf("expected 2 reference lines, got %d", len(fig.Layout.Shapes))
	}
}
