package png

import (
	"bytes"
	"fmt"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	domainerrors "tensio/contexts/vitals/dashboard-service/domain/errors"
	"tensio/contexts/vitals/dashboard-service/ports"
)

// Renderer rasterizes the time-series charts for download. Only the two
// timeline charts have a PNG form; the interactive ones stay plotly-only.
type Renderer struct {
	Width  int
	Height int
}

var seriesColors = map[string]drawing.Color{
	"SYS": chart.ColorRed,
	"DIA": chart.ColorBlue,
	"PUL": chart.ColorGreen,
	"MAP": drawing.ColorFromHex("ffa500"),
	"PP":  drawing.ColorFromHex("800080"),
}

func (r Renderer) Render(kind string, dataset ports.Dataset) ([]byte, error) {
	if dataset.Empty() {
		return nil, domainerrors.ErrNoData
	}

	var title string
	var columns []string
	switch kind {
	case "trend":
		title = "Blood pressure trend"
		columns = []string{"SYS", "DIA", "PUL"}
	case "hemodynamics":
		title = "Hemodynamic indicators"
		columns = []string{"MAP", "PP"}
	default:
		return nil, fmt.Errorf("%w: no PNG form for %q", domainerrors.ErrUnknownChart, kind)
	}

	times := make([]time.Time, 0, len(dataset.Measurements))
	for _, m := range dataset.Measurements {
		times = append(times, m.Timestamp)
	}

	series := make([]chart.Series, 0, len(columns))
	for _, col := range columns {
		values := make([]float64, 0, len(dataset.Measurements))
		for _, m := range dataset.Measurements {
			values = append(values, columnValue(m, col))
		}
		xs, ys := padSingle(times, values)
		series = append(series, chart.TimeSeries{
			Name:    col,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: seriesColors[col],
				StrokeWidth: 2,
			},
		})
	}

	width := r.Width
	if width == 0 {
		width = 1200
	}
	height := r.Height
	if height == 0 {
		height = 500
	}

	graph := chart.Chart{
		Title:      title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 24, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.XAxis{Name: "Date"},
		YAxis:      chart.YAxis{Name: "mmHg / bpm"},
		Series:     series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render %s png: %w", kind, err)
	}
	return buf.Bytes(), nil
}

// padSingle duplicates a lone point one minute later; the renderer needs
// at least two x values.
func padSingle(times []time.Time, values []float64) ([]time.Time, []float64) {
	if len(times) != 1 {
		return times, values
	}
	return []time.Time{times[0], times[0].Add(time.Minute)},
		[]float64{values[0], values[0]}
}

func columnValue(m ports.Measurement, name string) float64 {
	switch name {
	case "SYS":
		return m.SYS
	case "DIA":
		return m.DIA
	case "PUL":
		return m.PUL
	case "MAP":
		return m.MAP
	case "PP":
		return m.PP
	}
	return 0
}
