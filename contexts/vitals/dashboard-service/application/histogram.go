package application

import (
	"fmt"

	"tensio/contexts/vitals/dashboard-service/domain/figure"
	"tensio/contexts/vitals/dashboard-service/domain/guideline"
	"tensio/contexts/vitals/dashboard-service/ports"
)

type thresholdLine struct {
	value float64
	color string
	label string
}

var histogramThresholds = map[string][]thresholdLine{
	"SYS": {
		{guideline.OptimalSYS, "green", "Optimal (120)"},
		{guideline.NormalSYS, "lightgreen", "Normal (130)"},
		{guideline.ElevatedSYS, "orange", "Elevated (140)"},
		{guideline.Grade1SYS, "orangered", "Grade 1 (160)"},
		{guideline.Grade2SYS, "red", "Grade 2 (180)"},
	},
	"DIA": {
		{guideline.OptimalDIA, "green", "Optimal (70)"},
		{guideline.NormalDIA, "lightgreen", "Normal (80)"},
		{guideline.ElevatedDIA, "orange", "Elevated (90)"},
		{guideline.Grade1DIA, "orangered", "Grade 1 (100)"},
		{guideline.Grade2DIA, "red", "Grade 2 (110)"},
	},
}

// HistogramChart bins one column into 20 buckets and overlays the mean
// plus, for SYS and DIA, the guideline thresholds.
func HistogramChart(dataset ports.Dataset, col string) figure.Figure {
	if dataset.Empty() {
		return figure.Empty("")
	}

	values := column(dataset.Measurements, col)

	var mean float64
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	layout := figure.Layout{
		Title:      &figure.Title{Text: fmt.Sprintf("%s distribution", col)},
		XAxis:      &figure.Axis{Title: col},
		YAxis:      &figure.Axis{Title: "Count"},
		ShowLegend: figure.Bool(false),
	}

	shape, note := figure.VLine(mean, "black", "dash", fmt.Sprintf("Mean: %.1f", mean))
	layout.Shapes = append(layout.Shapes, shape)
	layout.Annotations = append(layout.Annotations, *note)

	for _, t := range histogramThresholds[col] {
		shape, note := figure.VLine(t.value, t.color, "dot", t.label)
		layout.Shapes = append(layout.Shapes, shape)
		layout.Annotations = append(layout.Annotations, *note)
	}

	xs := make([]any, 0, len(values))
	for _, v := range values {
		xs = append(xs, v)
	}

	return figure.Figure{
		Data: []figure.Trace{{
			Type:   "histogram",
			X:      xs,
			NBinsX: 20,
			Marker: &figure.Marker{Color: guideline.ParameterColors[col], Opacity: 0.75},
		}},
		Layout: layout,
	}
}
