package raster

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/tiff"
)

// constRaster implements driven.AngleRaster with a function of the pixel.
type constRaster struct {
	w, h int
	f    func(x, y int) float64
}

func (r constRaster) Size() (int, int)    { return r.w, r.h }
func (r constRaster) At(x, y int) float64 { return r.f(x, y) }

func TestQuantize(t *testing.T) {
	tests := []struct {
		name     string
		deg      float64
		expected uint16
	}{
		{"zero", 0, 0},
		{"rounds", 45.678, 4568},
		{"full circle edge", 359.99, 35999},
		{"nan", math.NaN(), NoData},
		{"negative", -1, NoData},
		{"too large", 1000, NoData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Quantize(tt.deg))
		})
	}
}

func TestEncode(t *testing.T) {
	img := Encode(constRaster{w: 3, h: 2, f: func(x, y int) float64 { return float64(10*y + x) }})

	assert.Equal(t, 3, img.Bounds().Dx())
	assert.Equal(t, 2, img.Bounds().Dy())
	assert.Equal(t, uint16(0), img.Gray16At(0, 0).Y)
	assert.Equal(t, uint16(200), img.Gray16At(2, 0).Y)
	assert.Equal(t, uint16(1200), img.Gray16At(2, 1).Y)
}

func TestTIFFWriter_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "T23KMQ_sza.tif")
	w := NewTIFFWriter()

	err := w.Write(path, constRaster{w: 4, h: 4, f: func(x, y int) float64 { return 30.25 }})
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := tiff.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dx())
	r, _, _, _ := img.At(1, 1).RGBA()
	assert.Equal(t, uint32(3025), r)
}

func TestTIFFWriter_Extension(t *testing.T) {
	assert.Equal(t, ".tif", NewTIFFWriter().Extension())
}

func TestTIFFWriter_Write_BadPath(t *testing.T) {
	w := NewTIFFWriter()

	err := w.Write(filepath.Join(t.TempDir(), "missing", "x.tif"), constRaster{w: 1, h: 1, f: func(int, int) float64 { return 0 }})

	assert.Error(t, err)
}
