package application

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	domainerrors "tensio/contexts/vitals/dashboard-service/domain/errors"
	"tensio/contexts/vitals/dashboard-service/ports"
)

type testProvider struct {
	dataset ports.Dataset
	err     error
}

func (p testProvider) Dataset(_ context.Context) (ports.Dataset, error) {
	if p.err != nil {
		return ports.Dataset{}, p.err
	}
	return p.dataset, nil
}

type testSink struct {
	names    []string
	contents [][]byte
}

func (s *testSink) Write(_ context.Context, name string, content []byte) (string, error) {
	s.names = append(s.names, name)
	s.contents = append(s.contents, content)
	return name, nil
}

type testClock struct {
	instant time.Time
}

func (c testClock) Now() time.Time { return c.instant }

func newTestService(dataset ports.Dataset, sink *testSink) Service {
	return Service{
		Datasets: testProvider{dataset: dataset},
		Reports:  sink,
		Clock:    testClock{instant: time.Date(2026, 8, 15, 12, 30, 45, 0, time.UTC)},
	}
}

func TestChartDispatch(t *testing.T) {
	service := newTestService(sampleDataset(), nil)
	for _, kind := range ChartKinds {
		fig, err := service.Chart(context.Background(), ChartQuery{Name: kind})
		if err != nil {
			t.Fatalf("chart %q failed: %v", kind, err)
		}
		if len(fig.Data) == 0 && fig.Layout.Title == nil {
			t.Fatalf("chart %q produced nothing", kind)
		}
		if fig.Layout.Template != PlotTemplate {
			t.Fatalf("chart %q template = %q, want %q", kind, fig.Layout.Template, PlotTemplate)
		}
	}
}

func TestChartUnknownKind(t *testing.T) {
	service := newTestService(sampleDataset(), nil)
	_, err := service.Chart(context.Background(), ChartQuery{Name: "sparkline"})
	if !errors.Is(err, domainerrors.ErrUnknownChart) {
		t.Fatalf("expected unknown chart, got %v", err)
	}
}

func TestChartInvalidOptions(t *testing.T) {
	service := newTestService(sampleDataset(), nil)

	_, err := service.Chart(context.Background(), ChartQuery{Name: "histogram", Column: "BMI"})
	if !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected invalid request for column, got %v", err)
	}
	_, err = service.Chart(context.Background(), ChartQuery{Name: "comparison", Group: "phase"})
	if !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected invalid request for group, got %v", err)
	}
	_, err = service.Chart(context.Background(), ChartQuery{Name: "comparison", Style: "scatter"})
	if !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected invalid request for style, got %v", err)
	}
}

func TestChartProviderError(t *testing.T) {
	service := Service{Datasets: testProvider{err: errors.New("source down")}}
	_, err := service.Chart(context.Background(), ChartQuery{Name: "trend"})
	if err == nil {
		t.Fatalf("provider errors must propagate")
	}
}

func TestSummary(t *testing.T) {
	service := newTestService(sampleDataset(), nil)
	summary, pie, err := service.Summary(context.Background())
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if summary.Count != 5 {
		t.Fatalf("count = %d", summary.Count)
	}
	// Mean SYS of 115, 128, 118, 145, 136 is 128.4, rounded to 128.
	if summary.AvgSYS != 128 {
		t.Fatalf("avg sys = %v, want 128", summary.AvgSYS)
	}
	if summary.MaxReading != "145 / 85" {
		t.Fatalf("max reading = %q", summary.MaxReading)
	}
	// 3 of 5 in norm.
	if summary.NormPercent != 60.0 {
		t.Fatalf("norm percent = %v, want 60.0", summary.NormPercent)
	}
	if len(pie.Data) != 1 {
		t.Fatalf("summary should carry the pie figure")
	}
	if pie.Layout.Template != PlotTemplate {
		t.Fatalf("pie template = %q, want %q", pie.Layout.Template, PlotTemplate)
	}
}

func TestSummaryEmptyDataset(t *testing.T) {
	service := newTestService(ports.Dataset{}, nil)
	summary, pie, err := service.Summary(context.Background())
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if summary.Count != 0 {
		t.Fatalf("empty dataset should give zero summary")
	}
	if pie.Layout.Title == nil || pie.Layout.Title.Text != "No data to display" {
		t.Fatalf("expected placeholder pie")
	}
}

func TestExport(t *testing.T) {
	sink := &testSink{}
	service := newTestService(sampleDataset(), sink)

	name, err := service.Export(context.Background())
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if name != "bp_report_20260815_123045.html" {
		t.Fatalf("report name = %q", name)
	}
	if len(sink.contents) != 1 {
		t.Fatalf("expected one stored report")
	}

	html := string(sink.contents[0])
	if !strings.Contains(html, "plotly") {
		t.Fatalf("report should load plotly")
	}
	if !strings.Contains(html, "145 / 85") {
		t.Fatalf("report should carry the KPI block")
	}
	for i := range reportCharts {
		if !strings.Contains(html, "chart-"+string(rune('0'+i))) {
			t.Fatalf("report missing section %d", i)
		}
	}
}

func TestExportWithoutWriter(t *testing.T) {
	service := Service{Datasets: testProvider{dataset: sampleDataset()}}
	_, err := service.Export(context.Background())
	if !errors.Is(err, domainerrors.ErrExportFailed) {
		t.Fatalf("expected export failed, got %v", err)
	}
}
