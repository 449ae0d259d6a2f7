// Package raster writes angle bands to image files.
package raster

import (
	"fmt"
	"image"
	"math"
	"os"

	"golang.org/x/image/tiff"

	"github.com/custodia-labs/s2angs/internal/core/ports/driven"
)

// Ensure TIFFWriter implements the interface.
var _ driven.AngleRasterWriter = (*TIFFWriter)(nil)

const (
	// Scale converts degrees to stored integer values.
	Scale = 100

	// NoData is stored for pixels without an angle.
	NoData = math.MaxUint16
)

// TIFFWriter stores angle rasters as deflate-compressed 16-bit grayscale
// TIFF files holding round(degrees * Scale).
type TIFFWriter struct{}

// NewTIFFWriter creates a new TIFF writer.
func NewTIFFWriter() *TIFFWriter {
	return &TIFFWriter{}
}

// Extension returns ".tif".
func (w *TIFFWriter) Extension() string {
	return ".tif"
}

// Write encodes raster to path.
func (w *TIFFWriter) Write(path string, raster driven.AngleRaster) error {
	img := Encode(raster)

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := tiff.Encode(f, img, &tiff.Options{Compression: tiff.Deflate}); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// Encode converts raster to a scaled 16-bit image.
func Encode(raster driven.AngleRaster) *image.Gray16 {
	width, height := raster.Size()
	img := image.NewGray16(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < width; x++ {
			v := Quantize(raster.At(x, y))
			row[2*x] = uint8(v >> 8)
			row[2*x+1] = uint8(v)
		}
	}
	return img
}

// Quantize maps an angle in degrees to its stored value.
// NaN and values outside the storable range become NoData.
func Quantize(deg float64) uint16 {
	if math.IsNaN(deg) {
		return NoData
	}
	v := math.Round(deg * Scale)
	if v < 0 || v >= NoData {
		return NoData
	}
	return uint16(v)
}
