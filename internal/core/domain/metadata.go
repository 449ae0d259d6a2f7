package domain

import "time"

// TileGeocoding describes the raster size of a tile at one resolution.
type TileGeocoding struct {
	Resolution int // pixel size in metres
	Rows       int
	Cols       int
}

// ViewingGrid is one viewing incidence grid for a band and detector.
type ViewingGrid struct {
	BandID     int
	DetectorID int
	Zenith     *AngleGrid
	Azimuth    *AngleGrid
}

// TileMetadata is the content of MTD_TL.xml needed to build angle bands.
type TileMetadata struct {
	TileID      string
	SensingTime time.Time
	CRSName     string
	CRSCode     string
	Geocodings  []TileGeocoding
	SunZenith   *AngleGrid
	SunAzimuth  *AngleGrid
	Viewing     []ViewingGrid
}

// Geocoding returns the tile layout at the given resolution.
func (m *TileMetadata) Geocoding(resolution int) (TileGeocoding, bool) {
	for _, g := range m.Geocodings {
		if g.Resolution == resolution {
			return g, true
		}
	}
	return TileGeocoding{}, false
}
