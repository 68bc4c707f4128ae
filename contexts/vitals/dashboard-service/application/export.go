package application

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"time"

	"tensio/contexts/vitals/dashboard-service/domain/figure"
	domainerrors "tensio/contexts/vitals/dashboard-service/domain/errors"
	"tensio/contexts/vitals/dashboard-service/ports"
)

// reportCharts lists every section of the exported report, in page order.
var reportCharts = []struct {
	kind  string
	title string
}{
	{"trend", "Pressure trend"},
	{"circadian", "Circadian profile"},
	{"correlation", "SYS / DIA correlation"},
	{"heatmap", "Systolic heatmap"},
	{"histogram", "Distribution"},
	{"matrix", "Classification matrix"},
	{"categories", "Readings per category"},
	{"comparison", "Time-of-day comparison"},
	{"hemodynamics", "Hemodynamics"},
	{"pie", "Category share"},
}

type reportSection struct {
	ID     string
	Title  string
	Figure template.JS
}

type reportData struct {
	GeneratedAt string
	Source      string
	RefreshedAt string
	Stale       bool
	Summary     ports.Summary
	Sections    []reportSection
}

// Export renders every chart plus the KPI block into a standalone HTML
// report and hands it to the report writer. Returns the stored file name.
func (s Service) Export(ctx context.Context) (string, error) {
	if s.Reports == nil {
		return "", fmt.Errorf("%w: no report writer configured", domainerrors.ErrExportFailed)
	}
	dataset, err := s.Datasets.Dataset(ctx)
	if err != nil {
		return "", err
	}

	summary, _, err := s.Summary(ctx)
	if err != nil {
		return "", err
	}

	data := reportData{
		GeneratedAt: s.now().Format("2006-01-02 15:04:05"),
		Source:      dataset.Source,
		RefreshedAt: dataset.RefreshedAt.Format("2006-01-02 15:04:05"),
		Stale:       dataset.Stale,
		Summary:     summary,
	}
	for i, c := range reportCharts {
		fig, err := s.Chart(ctx, ChartQuery{Name: c.kind})
		if err != nil {
			return "", fmt.Errorf("%w: chart %s: %v", domainerrors.ErrExportFailed, c.kind, err)
		}
		encoded, err := encodeFigure(fig)
		if err != nil {
			return "", fmt.Errorf("%w: chart %s: %v", domainerrors.ErrExportFailed, c.kind, err)
		}
		data.Sections = append(data.Sections, reportSection{
			ID:     fmt.Sprintf("chart-%d", i),
			Title:  c.title,
			Figure: encoded,
		})
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", domainerrors.ErrExportFailed, err)
	}

	name := "bp_report_" + s.now().Format("20060102_150405") + ".html"
	stored, err := s.Reports.Write(ctx, name, buf.Bytes())
	if err != nil {
		return "", fmt.Errorf("%w: %v", domainerrors.ErrExportFailed, err)
	}
	s.logger().Info("report exported",
		slog.String("event", "dashboard.report.exported"),
		slog.String("file", stored),
		slog.Int("readings", summary.Count),
	)
	return stored, nil
}

func (s Service) now() time.Time {
	if s.Clock != nil {
		return s.Clock.Now()
	}
	return time.Now().UTC()
}

func (s Service) logger() *slog.Logger {
	return ResolveLogger(s.Logger)
}

func encodeFigure(fig figure.Figure) (template.JS, error) {
	raw, err := json.Marshal(fig)
	if err != nil {
		return "", err
	}
	return template.JS(raw), nil
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Blood pressure report</title>
<script src="https://cdn.plot.ly/plotly-2.32.0.min.js"></script>
<style>
body { font-family: system-ui, sans-serif; margin: 2rem auto; max-width: 1100px; color: #222; }
h1 { margin-bottom: 0; }
.meta { color: #666; margin-bottom: 2rem; }
.kpis { display: flex; gap: 2rem; margin-bottom: 2rem; }
.kpi { background: #f5f5f5; border-radius: 8px; padding: 1rem 1.5rem; }
.kpi .value { font-size: 1.6rem; font-weight: 600; }
.kpi .label { color: #666; font-size: 0.85rem; }
.chart { margin-bottom: 2.5rem; }
.stale { color: #b00; }
</style>
</head>
<body>
<h1>Blood pressure report</h1>
<p class="meta">Generated {{.GeneratedAt}} &middot; source {{.Source}} &middot; data from {{.RefreshedAt}}{{if .Stale}} <span class="stale">(stale)</span>{{end}}</p>
<div class="kpis">
  <div class="kpi"><div class="value">{{.Summary.Count}}</div><div class="label">Readings</div></div>
  <div class="kpi"><div class="value">{{printf "%.0f / %.0f" .Summary.AvgSYS .Summary.AvgDIA}}</div><div class="label">Average SYS / DIA</div></div>
  <div class="kpi"><div class="value">{{.Summary.MaxReading}}</div><div class="label">Highest reading</div></div>
  <div class="kpi"><div class="value">{{printf "%.1f%%" .Summary.NormPercent}}</div><div class="label">In norm</div></div>
</div>
{{range .Sections}}
<div class="chart">
  <h2>{{.Title}}</h2>
  <div id="{{.ID}}"></div>
  <script>Plotly.newPlot({{.ID}}, {{.Figure}});</script>
</div>
{{end}}
</body>
</html>
`))
