package sentinel2

import (
	"math"

	"github.com/custodia-labs/s2angs/internal/core/domain"
	"github.com/custodia-labs/s2angs/internal/core/ports/driven"
)

// Ensure gridRaster implements the interface.
var _ driven.AngleRaster = (*gridRaster)(nil)

// gridRaster bilinearly interpolates a coarse angle grid onto the tile
// raster. The first grid value sits on the tile's upper-left corner and
// pixels are sampled at their centres.
type gridRaster struct {
	grid       *domain.AngleGrid
	width      int
	height     int
	resolution float64
	azimuth    bool

	// unit vector components, only for azimuth grids
	sin, cos []float64
}

func newGridRaster(grid *domain.AngleGrid, geo domain.TileGeocoding, azimuth bool) *gridRaster {
	r := &gridRaster{
		grid:       grid,
		width:      geo.Cols,
		height:     geo.Rows,
		resolution: float64(geo.Resolution),
		azimuth:    azimuth,
	}
	if azimuth {
		r.sin = make([]float64, len(grid.Values))
		r.cos = make([]float64, len(grid.Values))
		for i, v := range grid.Values {
			r.sin[i] = math.Sin(v * deg2rad)
			r.cos[i] = math.Cos(v * deg2rad)
		}
	}
	return r
}

func (r *gridRaster) Size() (int, int) {
	return r.width, r.height
}

func (r *gridRaster) At(x, y int) float64 {
	gx := (float64(x) + 0.5) * r.resolution / r.grid.ColStep
	gy := (float64(y) + 0.5) * r.resolution / r.grid.RowStep

	c0, c1, fx := bracket(gx, r.grid.Cols)
	r0, r1, fy := bracket(gy, r.grid.Rows)

	i00 := r0*r.grid.Cols + c0
	i01 := r0*r.grid.Cols + c1
	i10 := r1*r.grid.Cols + c0
	i11 := r1*r.grid.Cols + c1

	if !r.azimuth {
		v := r.grid.Values
		return bilinear(v[i00], v[i01], v[i10], v[i11], fx, fy)
	}

	s := bilinear(r.sin[i00], r.sin[i01], r.sin[i10], r.sin[i11], fx, fy)
	c := bilinear(r.cos[i00], r.cos[i01], r.cos[i10], r.cos[i11], fx, fy)
	return normalizeAzimuth(math.Atan2(s, c) * rad2deg)
}

// bracket returns the grid indices either side of pos and the fractional
// distance from the lower one, clamped to the grid.
func bracket(pos float64, n int) (lo, hi int, frac float64) {
	if pos <= 0 || n == 1 {
		return 0, 0, 0
	}
	if pos >= float64(n-1) {
		return n - 1, n - 1, 0
	}
	lo = int(pos)
	return lo, lo + 1, pos - float64(lo)
}

func bilinear(v00, v01, v10, v11, fx, fy float64) float64 {
	top := v00 + (v01-v00)*fx
	bottom := v10 + (v11-v10)*fx
	return top + (bottom-top)*fy
}
