package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAngleBandResult_Paths(t *testing.T) {
	result := AngleBandResult{
		SolarZenith:  "sza.tif",
		SolarAzimuth: "saa.tif",
		ViewZenith:   "vza.tif",
		ViewAzimuth:  "vaa.tif",
	}

	assert.Equal(t, []string{"sza.tif", "saa.tif", "vza.tif", "vaa.tif"}, result.Paths())
	for i, band := range AngleBands {
		assert.Equal(t, result.Paths()[i], result.Path(band))
	}
	assert.Empty(t, result.Path(AngleBand("other")))
}

func TestAngleBand_IsAzimuth(t *testing.T) {
	assert.False(t, AngleBandSolarZenith.IsAzimuth())
	assert.True(t, AngleBandSolarAzimuth.IsAzimuth())
	assert.False(t, AngleBandViewZenith.IsAzimuth())
	assert.True(t, AngleBandViewAzimuth.IsAzimuth())
}

func TestNewAngleGrid(t *testing.T) {
	g := NewAngleGrid(2, 3, 5000, 5000)

	assert.Len(t, g.Values, 6)
	assert.Equal(t, 0, g.ValidCount())
	assert.True(t, math.IsNaN(g.At(1, 2)))

	g.Set(1, 2, 42.5)
	assert.Equal(t, 42.5, g.At(1, 2))
	assert.Equal(t, 1, g.ValidCount())
}

func TestAngleGrid_SameShape(t *testing.T) {
	a := NewAngleGrid(23, 23, 5000, 5000)

	assert.True(t, a.SameShape(NewAngleGrid(23, 23, 5000, 5000)))
	assert.False(t, a.SameShape(NewAngleGrid(22, 23, 5000, 5000)))
	assert.False(t, a.SameShape(NewAngleGrid(23, 23, 2500, 5000)))
}
