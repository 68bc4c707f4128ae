package application

import (
	"sort"

	"tensio/contexts/vitals/dashboard-service/domain/figure"
	"tensio/contexts/vitals/dashboard-service/domain/guideline"
	"tensio/contexts/vitals/dashboard-service/ports"
)

// Comparison groupings.
const (
	GroupSlot     = "slot"
	GroupDayType  = "day_type"
	GroupCategory = "category"
)

// ComparisonChart draws grouped box or violin plots of SYS and DIA, one
// pair of distributions per group. Readings outside the protocol hours
// carry no slot and are skipped when grouping by slot.
func ComparisonChart(dataset ports.Dataset, group, style string) figure.Figure {
	if dataset.Empty() {
		return figure.Empty("")
	}

	type point struct {
		label string
		m     ports.Measurement
	}
	points := make([]point, 0, len(dataset.Measurements))
	for _, m := range dataset.Measurements {
		label := groupLabel(m, group)
		if label == "" {
			continue
		}
		points = append(points, point{label: label, m: m})
	}
	if len(points) == 0 {
		return figure.Empty("")
	}

	traces := make([]figure.Trace, 0, 2)
	for _, param := range []string{"SYS", "DIA"} {
		xs := make([]any, 0, len(points))
		ys := make([]float64, 0, len(points))
		for _, p := range points {
			xs = append(xs, p.label)
			ys = append(ys, columnValue(p.m, param))
		}
		trace := figure.Trace{
			Type:   style,
			Name:   param,
			X:      xs,
			Y:      ys,
			Marker: &figure.Marker{Color: guideline.ParameterColors[param]},
		}
		if style == "violin" {
			trace.Box = &figure.BoxOptions{Visible: true}
		} else {
			trace.BoxPoints = "outliers"
		}
		traces = append(traces, trace)
	}

	labels := make([]string, 0, len(points))
	for _, p := range points {
		labels = append(labels, p.label)
	}

	layout := figure.Layout{
		Title: &figure.Title{Text: "Pressure by " + groupTitle(group)},
		XAxis: &figure.Axis{
			Title:         groupTitle(group),
			CategoryOrder: "array",
			CategoryArray: groupOrder(labels, group),
		},
		YAxis: &figure.Axis{Title: "Pressure (mmHg)"},
	}
	if style == "violin" {
		layout.ViolinMode = "group"
	} else {
		layout.BoxMode = "group"
	}

	return figure.Figure{Data: traces, Layout: layout}
}

func groupLabel(m ports.Measurement, group string) string {
	switch group {
	case GroupDayType:
		return m.DayType
	case GroupCategory:
		return m.Category
	default:
		return m.Slot
	}
}

func groupTitle(group string) string {
	switch group {
	case GroupDayType:
		return "day type"
	case GroupCategory:
		return "category"
	default:
		return "time of day"
	}
}

func groupOrder(labels []string, group string) []string {
	if group == GroupCategory {
		return guideline.Order
	}
	if group == GroupDayType {
		return []string{"workday", "weekend"}
	}
	seen := make(map[string]bool)
	distinct := make([]string, 0, 8)
	for _, label := range labels {
		if !seen[label] {
			seen[label] = true
			distinct = append(distinct, label)
		}
	}
	sort.Strings(distinct)
	return distinct
}
