package application

import (
	"tensio/contexts/vitals/dashboard-service/domain/figure"
	"tensio/contexts/vitals/dashboard-service/domain/guideline"
	"tensio/contexts/vitals/dashboard-service/ports"
)

// HemodynamicsChart plots mean arterial pressure and pulse pressure over
// time, with the usual pulse-pressure reference band (40 to 60 mmHg).
func HemodynamicsChart(dataset ports.Dataset) figure.Figure {
	if dataset.Empty() {
		return figure.Empty("")
	}

	xs := timeAxis(dataset.Measurements)

	layout := figure.Layout{
		Title:     &figure.Title{Text: "Hemodynamic indicators"},
		XAxis:     &figure.Axis{Title: "Date", Type: "date"},
		YAxis:     &figure.Axis{Title: "mmHg"},
		HoverMode: "x unified",
	}
	for _, ref := range []struct {
		value float64
		label string
	}{
		{guideline.NormalPP, "PP normal (40)"},
		{guideline.ElevatedPP, "PP elevated (60)"},
	} {
		shape, note := figure.HLine(ref.value, "gray", "dot", ref.label)
		layout.Shapes = append(layout.Shapes, shape)
		layout.Annotations = append(layout.Annotations, *note)
	}

	return figure.Figure{
		Data: []figure.Trace{
			{
				Type: "scatter",
				Mode: "lines+markers",
				Name: "MAP",
				X:    xs,
				Y:    column(dataset.Measurements, "MAP"),
				Line: &figure.Line{Color: guideline.ParameterColors["MAP"], Width: 2},
			},
			{
				Type: "scatter",
				Mode: "lines+markers",
				Name: "PP",
				X:    xs,
				Y:    column(dataset.Measurements, "PP"),
				Line: &figure.Line{Color: guideline.ParameterColors["PP"], Width: 2},
			},
		},
		Layout: layout,
	}
}
