package sentinel2

import (
	"fmt"
	"math"

	"github.com/custodia-labs/s2angs/internal/core/domain"
)

const (
	deg2rad = math.Pi / 180
	rad2deg = 180 / math.Pi
)

// fillMissing returns a copy of g where every NaN cell takes the value of the
// nearest valid cell (4-connected breadth-first order). Grids without any
// valid cell are rejected.
func fillMissing(g *domain.AngleGrid) (*domain.AngleGrid, error) {
	if g.ValidCount() == 0 {
		return nil, fmt.Errorf("%w: angle grid has no valid values", domain.ErrMetadataMalformed)
	}

	out := domain.NewAngleGrid(g.Rows, g.Cols, g.RowStep, g.ColStep)
	copy(out.Values, g.Values)

	queue := make([]int, 0, len(out.Values))
	for i, v := range out.Values {
		if !math.IsNaN(v) {
			queue = append(queue, i)
		}
	}

	for head := 0; head < len(queue); head++ {
		i := queue[head]
		r, c := i/out.Cols, i%out.Cols
		for _, n := range [4][2]int{{r - 1, c}, {r + 1, c}, {r, c - 1}, {r, c + 1}} {
			nr, nc := n[0], n[1]
			if nr < 0 || nr >= out.Rows || nc < 0 || nc >= out.Cols {
				continue
			}
			j := nr*out.Cols + nc
			if math.IsNaN(out.Values[j]) {
				out.Values[j] = out.Values[i]
				queue = append(queue, j)
			}
		}
	}

	return out, nil
}

// combineViewing merges the per band and detector viewing grids into one
// zenith and one azimuth grid. Each cell is the mean of all valid values;
// azimuths use the circular mean so 359 and 1 average to 0, not 180.
func combineViewing(template *domain.AngleGrid, grids []domain.ViewingGrid) (zenith, azimuth *domain.AngleGrid) {
	zenith = domain.NewAngleGrid(template.Rows, template.Cols, template.RowStep, template.ColStep)
	azimuth = domain.NewAngleGrid(template.Rows, template.Cols, template.RowStep, template.ColStep)

	for i := range zenith.Values {
		var zSum, sinSum, cosSum float64
		var zN, aN int
		for _, vg := range grids {
			if z := vg.Zenith.Values[i]; !math.IsNaN(z) {
				zSum += z
				zN++
			}
			if a := vg.Azimuth.Values[i]; !math.IsNaN(a) {
				sinSum += math.Sin(a * deg2rad)
				cosSum += math.Cos(a * deg2rad)
				aN++
			}
		}
		if zN > 0 {
			zenith.Values[i] = zSum / float64(zN)
		}
		if aN > 0 {
			azimuth.Values[i] = normalizeAzimuth(math.Atan2(sinSum, cosSum) * rad2deg)
		}
	}

	return zenith, azimuth
}

// normalizeAzimuth maps an angle in degrees onto [0, 360).
func normalizeAzimuth(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}
