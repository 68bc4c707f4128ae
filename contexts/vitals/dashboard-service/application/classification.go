package application

import (
	"fmt"

	"tensio/contexts/vitals/dashboard-service/domain/figure"
	"tensio/contexts/vitals/dashboard-service/domain/guideline"
	"tensio/contexts/vitals/dashboard-service/ports"
)

// Matrix plot bounds, wide enough for any plausible reading.
const (
	matrixDIAMin = 40.0
	matrixDIAMax = 120.0
	matrixSYSMin = 60.0
	matrixSYSMax = 220.0
)

type matrixZone struct {
	category               string
	dia0, dia1, sys0, sys1 float64
}

// matrixZones tiles the DIA x SYS plane with the severity bands. The
// L-shaped bands need two rectangles each; ISH and Optimal need one.
var matrixZones = []matrixZone{
	{guideline.Optimal, matrixDIAMin, guideline.OptimalDIA, matrixSYSMin, guideline.OptimalSYS},
	{guideline.Normal, matrixDIAMin, guideline.NormalDIA, guideline.OptimalSYS, guideline.NormalSYS},
	{guideline.Normal, guideline.OptimalDIA, guideline.NormalDIA, matrixSYSMin, guideline.OptimalSYS},
	{guideline.Elevated, matrixDIAMin, guideline.ElevatedDIA, guideline.NormalSYS, guideline.ElevatedSYS},
	{guideline.Elevated, guideline.NormalDIA, guideline.ElevatedDIA, matrixSYSMin, guideline.NormalSYS},
	{guideline.Grade1, guideline.ElevatedDIA, guideline.Grade1DIA, guideline.ElevatedSYS, guideline.Grade1SYS},
	{guideline.Grade1, guideline.ElevatedDIA, guideline.Grade1DIA, matrixSYSMin, guideline.ElevatedSYS},
	{guideline.Grade2, guideline.ElevatedDIA, guideline.Grade2DIA, guideline.Grade1SYS, guideline.Grade2SYS},
	{guideline.Grade2, guideline.Grade1DIA, guideline.Grade2DIA, matrixSYSMin, guideline.Grade1SYS},
	{guideline.Grade3, guideline.Grade2DIA, matrixDIAMax, matrixSYSMin, matrixSYSMax},
	{guideline.Grade3, guideline.ElevatedDIA, guideline.Grade2DIA, guideline.Grade2SYS, matrixSYSMax},
	{guideline.ISH, matrixDIAMin, guideline.ElevatedDIA, guideline.ElevatedSYS, matrixSYSMax},
}

// MatrixChart scatters readings over the classification plane, with the
// band boundaries drawn as tinted background zones.
func MatrixChart(dataset ports.Dataset) figure.Figure {
	if dataset.Empty() {
		return figure.Empty("")
	}

	layout := figure.Layout{
		Title: &figure.Title{Text: "Classification matrix"},
		XAxis: &figure.Axis{Title: "DIA (mmHg)", Range: []float64{matrixDIAMin, matrixDIAMax}},
		YAxis: &figure.Axis{Title: "SYS (mmHg)", Range: []float64{matrixSYSMin, matrixSYSMax}},
	}
	for _, z := range matrixZones {
		layout.Shapes = append(layout.Shapes, figure.Shape{
			Type:      "rect",
			X0:        z.dia0, X1: z.dia1,
			Y0:        z.sys0, Y1: z.sys1,
			FillColor: guideline.Colors[z.category],
			Opacity:   0.25,
			Layer:     "below",
			Line:      &figure.Line{Width: 0},
		})
	}

	dia := make([]any, 0, len(dataset.Measurements))
	sys := make([]float64, 0, len(dataset.Measurements))
	colors := make([]string, 0, len(dataset.Measurements))
	hover := make([]string, 0, len(dataset.Measurements))
	for _, m := range dataset.Measurements {
		dia = append(dia, m.DIA)
		sys = append(sys, m.SYS)
		colors = append(colors, guideline.Colors[m.Category])
		hover = append(hover, fmt.Sprintf("%s<br>%.0f/%.0f mmHg<br>%s",
			formatStamp(m.Timestamp), m.SYS, m.DIA, m.Category))
	}

	return figure.Figure{
		Data: []figure.Trace{{
			Type:      "scatter",
			Mode:      "markers",
			Name:      "Readings",
			X:         dia,
			Y:         sys,
			HoverText: hover,
			HoverInfo: "text",
			Marker: &figure.Marker{
				Color:   colors,
				Size:    9,
				Opacity: 0.9,
				Line:    &figure.Line{Color: "black", Width: 0.5},
			},
		}},
		Layout: layout,
	}
}

// CategoryBarChart counts readings per severity band, labelled with both
// the count and its share.
func CategoryBarChart(dataset ports.Dataset) figure.Figure {
	if dataset.Empty() {
		return figure.Empty("")
	}

	counts := categoryCounts(dataset.Measurements)
	total := float64(len(dataset.Measurements))

	labels := make([]any, 0, len(guideline.Order))
	values := make([]float64, 0, len(guideline.Order))
	colors := make([]string, 0, len(guideline.Order))
	text := make([]string, 0, len(guideline.Order))
	for _, category := range guideline.Order {
		n := counts[category]
		if n == 0 {
			continue
		}
		labels = append(labels, category)
		values = append(values, float64(n))
		colors = append(colors, guideline.Colors[category])
		text = append(text, fmt.Sprintf("%d (%.1f%%)", n, float64(n)/total*100))
	}

	return figure.Figure{
		Data: []figure.Trace{{
			Type:         "bar",
			X:            labels,
			Y:            values,
			Text:         text,
			TextPosition: "outside",
			Marker:       &figure.Marker{Color: colors},
		}},
		Layout: figure.Layout{
			Title:      &figure.Title{Text: "Readings per category"},
			XAxis:      &figure.Axis{Title: "Category"},
			YAxis:      &figure.Axis{Title: "Count"},
			ShowLegend: figure.Bool(false),
		},
	}
}

// CategoryPieChart shows the share of each severity band.
func CategoryPieChart(dataset ports.Dataset) figure.Figure {
	if dataset.Empty() {
		return figure.Empty("")
	}

	counts := categoryCounts(dataset.Measurements)

	labels := make([]string, 0, len(guideline.Order))
	values := make([]float64, 0, len(guideline.Order))
	colors := make([]string, 0, len(guideline.Order))
	for _, category := range guideline.Order {
		n := counts[category]
		if n == 0 {
			continue
		}
		labels = append(labels, category)
		values = append(values, float64(n))
		colors = append(colors, guideline.Colors[category])
	}

	return figure.Figure{
		Data: []figure.Trace{{
			Type:   "pie",
			Labels: labels,
			Values: values,
			Hole:   0.4,
			Marker: &figure.Marker{Colors: colors},
		}},
		Layout: figure.Layout{
			Title: &figure.Title{Text: "Category share"},
		},
	}
}

func categoryCounts(items []ports.Measurement) map[string]int {
	counts := make(map[string]int)
	for _, m := range items {
		counts[m.Category]++
	}
	return counts
}
