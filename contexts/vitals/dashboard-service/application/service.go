package application

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"tensio/contexts/vitals/dashboard-service/domain/figure"
	domainerrors "tensio/contexts/vitals/dashboard-service/domain/errors"
	"tensio/contexts/vitals/dashboard-service/domain/guideline"
	"tensio/contexts/vitals/dashboard-service/ports"
)

// ChartKinds enumerates every chart the dashboard can render.
var ChartKinds = []string{
	"trend", "circadian", "correlation", "heatmap", "histogram",
	"matrix", "categories", "comparison", "hemodynamics", "pie",
}

// ChartQuery selects a chart and its options. Column applies to histogram,
// Group and Style to comparison.
type ChartQuery struct {
	Name   string
	Column string
	Group  string
	Style  string
}

type Service struct {
	Datasets ports.DatasetProvider
	Reports  ports.ReportWriter
	Clock    ports.Clock
	Logger   *slog.Logger
}

// PlotTemplate is applied to every served figure.
const PlotTemplate = "plotly_white"

// Chart builds the requested figure from the current dataset. An empty
// dataset yields the placeholder figure, not an error, so a fresh install
// still renders every tab.
func (s Service) Chart(ctx context.Context, query ChartQuery) (figure.Figure, error) {
	dataset, err := s.Datasets.Dataset(ctx)
	if err != nil {
		return figure.Figure{}, err
	}
	fig, err := buildChart(dataset, query)
	if err != nil {
		return figure.Figure{}, err
	}
	fig.Layout.Template = PlotTemplate
	return fig, nil
}

func buildChart(dataset ports.Dataset, query ChartQuery) (figure.Figure, error) {
	switch strings.ToLower(strings.TrimSpace(query.Name)) {
	case "trend":
		return TrendChart(dataset), nil
	case "circadian":
		return CircadianChart(dataset), nil
	case "correlation":
		return CorrelationChart(dataset), nil
	case "heatmap":
		return HeatmapChart(dataset), nil
	case "histogram":
		column, err := histogramColumn(query.Column)
		if err != nil {
			return figure.Figure{}, err
		}
		return HistogramChart(dataset, column), nil
	case "matrix":
		return MatrixChart(dataset), nil
	case "categories":
		return CategoryBarChart(dataset), nil
	case "comparison":
		group, style, err := comparisonOptions(query.Group, query.Style)
		if err != nil {
			return figure.Figure{}, err
		}
		return ComparisonChart(dataset, group, style), nil
	case "hemodynamics":
		return HemodynamicsChart(dataset), nil
	case "pie":
		return CategoryPieChart(dataset), nil
	default:
		return figure.Figure{}, fmt.Errorf("%w: %q", domainerrors.ErrUnknownChart, query.Name)
	}
}

// Summary computes the KPI block: mean SYS/DIA, the highest reading and
// the share of readings below 140/90.
func (s Service) Summary(ctx context.Context) (ports.Summary, figure.Figure, error) {
	dataset, err := s.Datasets.Dataset(ctx)
	if err != nil {
		return ports.Summary{}, figure.Figure{}, err
	}
	if dataset.Empty() {
		pie := figure.Empty("")
		pie.Layout.Template = PlotTemplate
		return ports.Summary{}, pie, nil
	}

	var sumSYS, sumDIA float64
	maxIdx := 0
	inNorm := 0
	for i, m := range dataset.Measurements {
		sumSYS += m.SYS
		sumDIA += m.DIA
		if m.SYS > dataset.Measurements[maxIdx].SYS {
			maxIdx = i
		}
		if guideline.InNorm(m.Category) {
			inNorm++
		}
	}
	n := float64(len(dataset.Measurements))
	maxRow := dataset.Measurements[maxIdx]

	summary := ports.Summary{
		Count:       len(dataset.Measurements),
		AvgSYS:      math.Round(sumSYS / n),
		AvgDIA:      math.Round(sumDIA / n),
		MaxReading:  fmt.Sprintf("%.0f / %.0f", maxRow.SYS, maxRow.DIA),
		NormPercent: math.Round(float64(inNorm)/n*1000) / 10,
	}
	pie := CategoryPieChart(dataset)
	pie.Layout.Template = PlotTemplate
	return summary, pie, nil
}

func histogramColumn(raw string) (string, error) {
	column := strings.ToUpper(strings.TrimSpace(raw))
	if column == "" {
		return "SYS", nil
	}
	switch column {
	case "SYS", "DIA", "PUL", "MAP", "PP":
		return column, nil
	}
	return "", fmt.Errorf("%w: histogram column %q", domainerrors.ErrInvalidRequest, raw)
}

func comparisonOptions(group, style string) (string, string, error) {
	group = strings.ToLower(strings.TrimSpace(group))
	if group == "" {
		group = GroupSlot
	}
	switch group {
	case GroupSlot, GroupDayType, GroupCategory:
	default:
		return "", "", fmt.Errorf("%w: comparison group %q", domainerrors.ErrInvalidRequest, group)
	}

	style = strings.ToLower(strings.TrimSpace(style))
	if style == "" {
		style = "box"
	}
	if style != "box" && style != "violin" {
		return "", "", fmt.Errorf("%w: comparison style %q", domainerrors.ErrInvalidRequest, style)
	}
	return group, style, nil
}
