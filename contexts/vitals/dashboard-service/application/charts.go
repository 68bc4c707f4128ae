package application

import (
	"time"

	"tensio/contexts/vitals/dashboard-service/ports"
)

const plotTimeLayout = "2006-01-02 15:04:05"

// timeAxis renders timestamps the way plotly parses date axes.
func timeAxis(items []ports.Measurement) []any {
	xs := make([]any, 0, len(items))
	for _, m := range items {
		xs = append(xs, m.Timestamp.Format(plotTimeLayout))
	}
	return xs
}

func column(items []ports.Measurement, name string) []float64 {
	ys := make([]float64, 0, len(items))
	for _, m := range items {
		ys = append(ys, columnValue(m, name))
	}
	return ys
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

func formatStamp(ts time.Time) string {
	return ts.Format("2006-01-02 15:04")
}
