package application

import (
	"tensio/contexts/vitals/dashboard-service/domain/figure"
	"tensio/contexts/vitals/dashboard-service/domain/guideline"
	"tensio/contexts/vitals/dashboard-service/ports"
)

// TrendChart plots every parameter over time plus the optimal/elevated SYS
// threshold lines.
func TrendChart(dataset ports.Dataset) figure.Figure {
	if dataset.Empty() {
		return figure.Empty("")
	}

	xs := timeAxis(dataset.Measurements)
	series := []struct {
		column string
		name   string
		mode   string
		dash   string
	}{
		{"SYS", "SYS (systolic)", "lines+markers", ""},
		{"DIA", "DIA (diastolic)", "lines+markers", ""},
		{"PUL", "Pulse", "lines+markers", ""},
		{"MAP", "MAP (mean arterial pressure)", "lines", "dot"},
		{"PP", "PP (pulse pressure)", "lines", "dash"},
	}

	fig := figure.Figure{}
	for _, s := range series {
		fig.Data = append(fig.Data, figure.Trace{
			Type: "scatter",
			Mode: s.mode,
			Name: s.name,
			X:    xs,
			Y:    column(dataset.Measurements, s.column),
			Line: &figure.Line{Color: guideline.ParameterColors[s.column], Dash: s.dash},
		})
	}

	var shapes []figure.Shape
	var annotations []figure.Annotation
	for _, ref := range []struct {
		y     float64
		color string
		label string
	}{
		{guideline.OptimalSYS, "green", "Optimal SYS (120)"},
		{guideline.ElevatedSYS, "orange", "Elevated SYS (140)"},
	} {
		shape, annotation := figure.HLine(ref.y, ref.color, "dot", ref.label)
		shapes = append(shapes, shape)
		if annotation != nil {
			annotations = append(annotations, *annotation)
		}
	}

	fig.Layout = figure.Layout{
		Title:       &figure.Title{Text: "Blood pressure and pulse over time"},
		XAxis:       &figure.Axis{Title: "Date and time"},
		YAxis:       &figure.Axis{Title: "Value"},
		Shapes:      shapes,
		Annotations: annotations,
		HoverMode:   "x unified",
	}
	return fig
}
