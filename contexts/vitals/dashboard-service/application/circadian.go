package application

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"tensio/contexts/vitals/dashboard-service/domain/figure"
	"tensio/contexts/vitals/dashboard-service/domain/guideline"
	"tensio/contexts/vitals/dashboard-service/ports"
)

// CircadianChart shows the daily pressure rhythm: per-hour mean with a
// ±1 standard deviation band for SYS and DIA.
func CircadianChart(dataset ports.Dataset) figure.Figure {
	if dataset.Empty() {
		return figure.Empty("")
	}

	byHour := make(map[int][]ports.Measurement)
	for _, m := range dataset.Measurements {
		byHour[m.Hour] = append(byHour[m.Hour], m)
	}
	hours := make([]int, 0, len(byHour))
	for h := range byHour {
		hours = append(hours, h)
	}
	sort.Ints(hours)

	labels := make([]any, 0, len(hours))
	for _, h := range hours {
		labels = append(labels, fmt.Sprintf("%02d:00", h))
	}

	fig := figure.Figure{}

	// Legend entry standing in for both deviation bands.
	fig.Data = append(fig.Data, figure.Trace{
		Type: "scatter",
		Mode: "lines",
		Name: "Range ± 1 std dev",
		X:    []any{nil},
		Y:    []float64{0},
		Line: &figure.Line{Width: 10, Color: "rgba(128, 128, 128, 0.4)"},
		ShowLegend: figure.Bool(true),
	})

	bands := []struct {
		column string
		fill   string
	}{
		{"DIA", "rgba(0, 0, 255, 0.2)"},
		{"SYS", "rgba(255, 0, 0, 0.2)"},
	}
	for _, band := range bands {
		means := make([]float64, 0, len(hours))
		stds := make([]float64, 0, len(hours))
		for _, h := range hours {
			values := make([]float64, 0, len(byHour[h]))
			for _, m := range byHour[h] {
				values = append(values, columnValue(m, band.column))
			}
			means = append(means, stat.Mean(values, nil))
			if len(values) > 1 {
				stds = append(stds, stat.StdDev(values, nil))
			} else {
				stds = append(stds, 0)
			}
		}

		// Upper bound forward, lower bound reversed, filled to itself.
		bandX := make([]any, 0, 2*len(hours))
		bandY := make([]float64, 0, 2*len(hours))
		for i := range hours {
			bandX = append(bandX, labels[i])
			bandY = append(bandY, means[i]+stds[i])
		}
		for i := len(hours) - 1; i >= 0; i-- {
			bandX = append(bandX, labels[i])
			bandY = append(bandY, means[i]-stds[i])
		}
		fig.Data = append(fig.Data, figure.Trace{
			Type:       "scatter",
			X:          bandX,
			Y:          bandY,
			Fill:       "toself",
			FillColor:  band.fill,
			Line:       &figure.Line{Color: "rgba(255,255,255,0)"},
			HoverInfo:  "skip",
			ShowLegend: figure.Bool(false),
		})
		fig.Data = append(fig.Data, figure.Trace{
			Type: "scatter",
			Mode: "lines+markers",
			Name: "Mean " + band.column,
			X:    labels,
			Y:    means,
			Line: &figure.Line{Color: guideline.ParameterColors[band.column]},
		})
	}

	fig.Layout = figure.Layout{
		Title:  &figure.Title{Text: "Circadian Pressure Rhythm (mean ± standard deviation)"},
		XAxis:  &figure.Axis{Title: "Measurement hour", Type: "category"},
		YAxis:  &figure.Axis{Title: "Pressure [mmHg]"},
		Legend: &figure.Legend{TraceOrder: "reversed"},
	}
	return fig
}
