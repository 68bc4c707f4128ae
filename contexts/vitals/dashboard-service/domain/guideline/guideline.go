// Package guideline carries the presentation-side view of the severity
// bands: display order, colors and the threshold lines charts draw. The
// ingestion side owns classification; this package only styles its output.
package guideline

// Band names as emitted by the ingestion pipeline.
const (
	Optimal  = "Optimal"
	Normal   = "Normal"
	Elevated = "Elevated"
	Grade1   = "Hypertension Grade 1"
	Grade2   = "Hypertension Grade 2"
	Grade3   = "Hypertension Grade 3"
	ISH      = "Isolated Systolic Hypertension"
)

// Order is the canonical category order for bars, pies and legends.
var Order = []string{Optimal, Normal, Elevated, Grade1, Grade2, Grade3, ISH}

// Colors per band, shared by every chart so the palette stays consistent.
var Colors = map[string]string{
	Optimal:  "#2ca02c",
	Normal:   "#90EE90",
	Elevated: "#FFD700",
	Grade1:   "#FFA500",
	Grade2:   "#FF6347",
	Grade3:   "#8B0000",
	ISH:      "#9370DB",
}

// ParameterColors for the measured/derived series.
var ParameterColors = map[string]string{
	"SYS": "red",
	"DIA": "blue",
	"PUL": "green",
	"MAP": "orange",
	"PP":  "purple",
}

// Band lower bounds, mirrored from the classification table for drawing
// threshold lines and the classification-matrix zones.
const (
	OptimalSYS  = 120.0
	OptimalDIA  = 70.0
	NormalSYS   = 130.0
	NormalDIA   = 80.0
	ElevatedSYS = 140.0
	ElevatedDIA = 90.0
	Grade1SYS   = 160.0
	Grade1DIA   = 100.0
	Grade2SYS   = 180.0
	Grade2DIA   = 110.0
)

// Pulse-pressure reference values for the hemodynamics chart.
const (
	NormalPP   = 40.0
	ElevatedPP = 60.0
)

// InNorm reports whether a band counts as an uncomplicated reading
// (below 140/90).
func InNorm(category string) bool {
	switch category {
	case Optimal, Normal, Elevated:
		return true
	}
	return false
}
