package application

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"tensio/contexts/vitals/dashboard-service/domain/figure"
	"tensio/contexts/vitals/dashboard-service/ports"
)

// CorrelationChart plots DIA against SYS colored by pulse, with a
// least-squares regression line annotated with r and its two-sided p-value.
func CorrelationChart(dataset ports.Dataset) figure.Figure {
	if dataset.Empty() {
		return figure.Empty("")
	}

	dia := column(dataset.Measurements, "DIA")
	sys := column(dataset.Measurements, "SYS")
	pul := column(dataset.Measurements, "PUL")

	xs := make([]any, len(dia))
	for i, v := range dia {
		xs[i] = v
	}

	fig := figure.Figure{
		Data: []figure.Trace{{
			Type: "scatter",
			Mode: "markers",
			Name: "Readings",
			X:    xs,
			Y:    sys,
			Marker: &figure.Marker{
				Color:      pul,
				Size:       10,
				ColorScale: "Viridis",
				ShowScale:  true,
				ColorBar:   &figure.ColorBar{Title: "Pulse (bpm)"},
			},
			ShowLegend: figure.Bool(false),
		}},
	}

	if len(dia) >= 3 {
		intercept, slope := stat.LinearRegression(dia, sys, nil, false)
		r := stat.Correlation(dia, sys, nil)
		p := regressionPValue(r, len(dia))

		minX, maxX := dia[0], dia[0]
		for _, v := range dia {
			minX = math.Min(minX, v)
			maxX = math.Max(maxX, v)
		}
		lineX := []any{minX, maxX}
		lineY := []float64{intercept + slope*minX, intercept + slope*maxX}

		fig.Data = append(fig.Data, figure.Trace{
			Type:       "scatter",
			Mode:       "lines",
			Name:       fmt.Sprintf("Linear fit<br>r = %.2f, p = %.3f", r, p),
			X:          lineX,
			Y:          lineY,
			Line:       &figure.Line{Color: "red", Width: 2, Dash: "dash"},
			ShowLegend: figure.Bool(true),
		})
	}

	fig.Layout = figure.Layout{
		Title: &figure.Title{Text: "SYS vs DIA (color = pulse) with regression line"},
		XAxis: &figure.Axis{Title: "Diastolic pressure (mmHg)"},
		YAxis: &figure.Axis{Title: "Systolic pressure (mmHg)"},
		Legend: &figure.Legend{
			X: 0.01, Y: 0.99,
			XAnchor: "left", YAnchor: "top",
			BgColor: "rgba(255, 255, 255, 0.7)",
		},
	}
	return fig
}

// regressionPValue is the two-sided p-value of the correlation coefficient
// under the t distribution with n-2 degrees of freedom.
func regressionPValue(r float64, n int) float64 {
	if n <= 2 {
		return 1
	}
	df := float64(n - 2)
	denom := 1 - r*r
	if denom <= 0 {
		return 0
	}
	t := math.Abs(r) * math.Sqrt(df/denom)
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return 2 * dist.Survival(t)
}
