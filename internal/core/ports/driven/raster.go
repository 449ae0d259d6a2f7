package driven

// AngleRaster is a full-resolution angle band ready to be written.
// Pixels are produced on demand so a 10 m tile never has to be held
// as floating point in memory.
type AngleRaster interface {
	// Size returns the raster width and height in pixels.
	Size() (width, height int)

	// At returns the angle in degrees at pixel (x, y), or NaN for no data.
	At(x, y int) float64
}

// AngleRasterWriter persists angle rasters.
type AngleRasterWriter interface {
	// Write stores raster at path, replacing any existing file.
	Write(path string, raster AngleRaster) error

	// Extension returns the file extension used by the writer, including the dot.
	Extension() string
}
