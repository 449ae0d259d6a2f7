package domain

import "math"

// AngleBand names one of the four generated angle rasters.
type AngleBand string

// Angle bands in canonical output order.
const (
	AngleBandSolarZenith  AngleBand = "solar_zenith"
	AngleBandSolarAzimuth AngleBand = "solar_azimuth"
	AngleBandViewZenith   AngleBand = "view_zenith"
	AngleBandViewAzimuth  AngleBand = "view_azimuth"
)

// AngleBands lists every band in canonical order.
var AngleBands = []AngleBand{
	AngleBandSolarZenith,
	AngleBandSolarAzimuth,
	AngleBandViewZenith,
	AngleBandViewAzimuth,
}

// String returns the string representation.
func (b AngleBand) String() string {
	return string(b)
}

// Description returns a human-readable label for the band.
func (b AngleBand) Description() string {
	switch b {
	case AngleBandSolarZenith:
		return "solar zenith"
	case AngleBandSolarAzimuth:
		return "solar azimuth"
	case AngleBandViewZenith:
		return "view zenith"
	case AngleBandViewAzimuth:
		return "view azimuth"
	default:
		return unknownDescription
	}
}

// IsAzimuth reports whether the band holds azimuths, which wrap at 360 degrees.
func (b AngleBand) IsAzimuth() bool {
	return b == AngleBandSolarAzimuth || b == AngleBandViewAzimuth
}

// AngleBandResult holds the paths of the four generated angle band files.
type AngleBandResult struct {
	SolarZenith  string
	SolarAzimuth string
	ViewZenith   string
	ViewAzimuth  string
}

// Paths returns the four paths in canonical order.
func (r AngleBandResult) Paths() []string {
	return []string{r.SolarZenith, r.SolarAzimuth, r.ViewZenith, r.ViewAzimuth}
}

// Path returns the path generated for a band.
func (r AngleBandResult) Path(band AngleBand) string {
	switch band {
	case AngleBandSolarZenith:
		return r.SolarZenith
	case AngleBandSolarAzimuth:
		return r.SolarAzimuth
	case AngleBandViewZenith:
		return r.ViewZenith
	case AngleBandViewAzimuth:
		return r.ViewAzimuth
	default:
		return ""
	}
}

// AngleGrid is a regular grid of angles in degrees.
// Missing cells hold NaN. Values are stored row-major.
type AngleGrid struct {
	Rows    int
	Cols    int
	RowStep float64 // metres between grid rows
	ColStep float64 // metres between grid columns
	Values  []float64
}

// NewAngleGrid allocates a grid with every cell set to NaN.
func NewAngleGrid(rows, cols int, rowStep, colStep float64) *AngleGrid {
	values := make([]float64, rows*cols)
	for i := range values {
		values[i] = math.NaN()
	}
	return &AngleGrid{
		Rows:    rows,
		Cols:    cols,
		RowStep: rowStep,
		ColStep: colStep,
		Values:  values,
	}
}

// At returns the value at row r, column c.
func (g *AngleGrid) At(r, c int) float64 {
	return g.Values[r*g.Cols+c]
}

// Set stores a value at row r, column c.
func (g *AngleGrid) Set(r, c int, v float64) {
	g.Values[r*g.Cols+c] = v
}

// ValidCount returns the number of cells that are not NaN.
func (g *AngleGrid) ValidCount() int {
	n := 0
	for _, v := range g.Values {
		if !math.IsNaN(v) {
			n++
		}
	}
	return n
}

// SameShape reports whether two grids have identical dimensions and spacing.
func (g *AngleGrid) SameShape(other *AngleGrid) bool {
	return g.Rows == other.Rows && g.Cols == other.Cols &&
		g.RowStep == other.RowStep && g.ColStep == other.ColStep
}
