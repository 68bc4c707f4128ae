package entities

// Category is the guideline severity band a reading falls into.
type Category string

const (
	CategoryOptimal  Category = "Optimal"
	CategoryNormal   Category = "Normal"
	CategoryElevated Category = "Elevated"
	CategoryGrade1   Category = "Hypertension Grade 1"
	CategoryGrade2   Category = "Hypertension Grade 2"
	CategoryGrade3   Category = "Hypertension Grade 3"
	CategoryISH      Category = "Isolated Systolic Hypertension"
)

// CategoryOrder is the display/sort order used by charts and summaries.
var CategoryOrder = []Category{
	CategoryOptimal,
	CategoryNormal,
	CategoryElevated,
	CategoryGrade1,
	CategoryGrade2,
	CategoryGrade3,
	CategoryISH,
}

// Guideline thresholds are the LOWER bound of each band; the upper bound of
// a band is the lower bound of the next one.
const (
	ThresholdOptimalSYS  = 120.0
	ThresholdOptimalDIA  = 70.0
	ThresholdNormalSYS   = 130.0
	ThresholdNormalDIA   = 80.0
	ThresholdElevatedSYS = 140.0
	ThresholdElevatedDIA = 90.0
	ThresholdGrade1SYS   = 160.0
	ThresholdGrade1DIA   = 100.0
	ThresholdGrade2SYS   = 180.0
	ThresholdGrade2DIA   = 110.0
)

// Classify maps a SYS/DIA pair onto a guideline band. Ambiguous pairs (SYS
// in one band, DIA in another) resolve to the HIGHER band, so every rule
// below the isolated-systolic check uses OR, not AND.
func Classify(sys, dia float64) Category {
	switch {
	case sys >= ThresholdElevatedSYS && dia < ThresholdElevatedDIA:
		return CategoryISH
	case sys >= ThresholdGrade2SYS || dia >= ThresholdGrade2DIA:
		return CategoryGrade3
	case sys >= ThresholdGrade1SYS || dia >= ThresholdGrade1DIA:
		return CategoryGrade2
	case sys >= ThresholdElevatedSYS || dia >= ThresholdElevatedDIA:
		return CategoryGrade1
	case sys >= ThresholdNormalSYS || dia >= ThresholdNormalDIA:
		return CategoryElevated
	case sys >= ThresholdOptimalSYS || dia >= ThresholdOptimalDIA:
		return CategoryNormal
	default:
		return CategoryOptimal
	}
}

// InNorm reports whether the band is considered uncomplicated under the
// guideline (reading below 140/90).
func (c Category) InNorm() bool {
	switch c {
	case CategoryOptimal, CategoryNormal, CategoryElevated:
		return true
	}
	return false
}

// Valid reports whether c is one of the known bands.
func (c Category) Valid() bool {
	for _, known := range CategoryOrder {
		if c == known {
			return true
		}
	}
	return false
}
