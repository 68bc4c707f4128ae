package application

import (
	"fmt"
	"sort"

	"tensio/contexts/vitals/dashboard-service/domain/figure"
	"tensio/contexts/vitals/dashboard-service/ports"
)

// HeatmapChart pivots mean SYS by day and hour. It needs at least two
// distinct days and two distinct hours to say anything useful.
func HeatmapChart(dataset ports.Dataset) figure.Figure {
	if dataset.Empty() {
		return figure.Empty("")
	}

	type cell struct {
		sum   float64
		count int
	}
	cells := make(map[string]map[int]*cell)
	hourSet := make(map[int]bool)
	for _, m := range dataset.Measurements {
		if cells[m.Day] == nil {
			cells[m.Day] = make(map[int]*cell)
		}
		if cells[m.Day][m.Hour] == nil {
			cells[m.Day][m.Hour] = &cell{}
		}
		cells[m.Day][m.Hour].sum += m.SYS
		cells[m.Day][m.Hour].count++
		hourSet[m.Hour] = true
	}
	if len(cells) < 2 || len(hourSet) < 2 {
		return figure.Empty("Not enough data to build the heatmap")
	}

	days := make([]string, 0, len(cells))
	for day := range cells {
		days = append(days, day)
	}
	sort.Strings(days)
	hours := make([]int, 0, len(hourSet))
	for h := range hourSet {
		hours = append(hours, h)
	}
	sort.Ints(hours)

	// Cells without readings stay nil so plotly leaves a gap instead of
	// painting a phantom 0 mmHg value.
	z := make([][]*float64, 0, len(days))
	for _, day := range days {
		row := make([]*float64, 0, len(hours))
		for _, h := range hours {
			if c := cells[day][h]; c != nil && c.count > 0 {
				mean := c.sum / float64(c.count)
				row = append(row, &mean)
			} else {
				row = append(row, nil)
			}
		}
		z = append(z, row)
	}

	hourLabels := make([]any, 0, len(hours))
	for _, h := range hours {
		hourLabels = append(hourLabels, fmt.Sprintf("%02d:00", h))
	}

	return figure.Figure{
		Data: []figure.Trace{{
			Type:          "heatmap",
			X:             hourLabels,
			Y:             days,
			Z:             z,
			ColorScale:    "RdYlBu",
			ReverseScale:  true,
			HoverTemplate: "Day: %{y}<br>Hour: %{x}<br>SYS: %{z:.0f}<extra></extra>",
		}},
		Layout: figure.Layout{
			Title: &figure.Title{Text: "Systolic pressure heatmap (day x hour)"},
			XAxis: &figure.Axis{Title: "Hour"},
			YAxis: &figure.Axis{Title: "Day"},
		},
	}
}
