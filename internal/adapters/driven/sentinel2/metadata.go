package sentinel2

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/s2angs/internal/core/domain"
	"github.com/custodia-labs/s2angs/internal/core/ports/driven"
)

// Ensure MetadataParser implements the interface.
var _ driven.TileMetadataParser = (*MetadataParser)(nil)

// MetadataFileName is the tile metadata file inside each granule.
const MetadataFileName = "MTD_TL.xml"

// Element names are matched on their local part, so the L1C and L2A
// namespaces decode alike.
type tileDocument struct {
	GeneralInfo struct {
		TileID      string `xml:"TILE_ID"`
		SensingTime string `xml:"SENSING_TIME"`
	} `xml:"General_Info"`
	GeometricInfo struct {
		Geocoding struct {
			CSName string `xml:"HORIZONTAL_CS_NAME"`
			CSCode string `xml:"HORIZONTAL_CS_CODE"`
			Sizes  []struct {
				Resolution int `xml:"resolution,attr"`
				Rows       int `xml:"NROWS"`
				Cols       int `xml:"NCOLS"`
			} `xml:"Size"`
		} `xml:"Tile_Geocoding"`
		Angles struct {
			Sun struct {
				Zenith  gridElement `xml:"Zenith"`
				Azimuth gridElement `xml:"Azimuth"`
			} `xml:"Sun_Angles_Grid"`
			Viewing []struct {
				BandID     int         `xml:"bandId,attr"`
				DetectorID int         `xml:"detectorId,attr"`
				Zenith     gridElement `xml:"Zenith"`
				Azimuth    gridElement `xml:"Azimuth"`
			} `xml:"Viewing_Incidence_Angles_Grids"`
		} `xml:"Tile_Angles"`
	} `xml:"Geometric_Info"`
}

type gridElement struct {
	ColStep float64  `xml:"COL_STEP"`
	RowStep float64  `xml:"ROW_STEP"`
	Rows    []string `xml:"Values_List>VALUES"`
}

// MetadataParser decodes MTD_TL.xml documents.
type MetadataParser struct{}

// NewMetadataParser creates a new tile metadata parser.
func NewMetadataParser() *MetadataParser {
	return &MetadataParser{}
}

// Parse reads an MTD_TL.xml document into domain.TileMetadata.
func (p *MetadataParser) Parse(r io.Reader) (*domain.TileMetadata, error) {
	var doc tileDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMetadataMalformed, err)
	}

	tileID := strings.TrimSpace(doc.GeneralInfo.TileID)
	if tileID == "" {
		return nil, fmt.Errorf("%w: missing TILE_ID", domain.ErrMetadataMalformed)
	}

	meta := &domain.TileMetadata{
		TileID:  tileID,
		CRSName: strings.TrimSpace(doc.GeometricInfo.Geocoding.CSName),
		CRSCode: strings.TrimSpace(doc.GeometricInfo.Geocoding.CSCode),
	}

	if s := strings.TrimSpace(doc.GeneralInfo.SensingTime); s != "" {
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return nil, fmt.Errorf("%w: SENSING_TIME %q: %v", domain.ErrMetadataMalformed, s, err)
		}
		meta.SensingTime = t
	}

	geo := doc.GeometricInfo.Geocoding
	for _, size := range geo.Sizes {
		meta.Geocodings = append(meta.Geocodings, domain.TileGeocoding{
			Resolution: size.Resolution,
			Rows:       size.Rows,
			Cols:       size.Cols,
		})
	}

	angles := doc.GeometricInfo.Angles
	var err error
	if meta.SunZenith, err = angles.Sun.Zenith.toGrid(); err != nil {
		return nil, fmt.Errorf("sun zenith grid: %w", err)
	}
	if meta.SunAzimuth, err = angles.Sun.Azimuth.toGrid(); err != nil {
		return nil, fmt.Errorf("sun azimuth grid: %w", err)
	}
	if !meta.SunZenith.SameShape(meta.SunAzimuth) {
		return nil, fmt.Errorf("%w: sun zenith and azimuth grids differ in shape", domain.ErrMetadataMalformed)
	}

	for _, v := range angles.Viewing {
		vg := domain.ViewingGrid{BandID: v.BandID, DetectorID: v.DetectorID}
		if vg.Zenith, err = v.Zenith.toGrid(); err != nil {
			return nil, fmt.Errorf("viewing zenith grid band %d detector %d: %w", v.BandID, v.DetectorID, err)
		}
		if vg.Azimuth, err = v.Azimuth.toGrid(); err != nil {
			return nil, fmt.Errorf("viewing azimuth grid band %d detector %d: %w", v.BandID, v.DetectorID, err)
		}
		if !vg.Zenith.SameShape(meta.SunZenith) || !vg.Azimuth.SameShape(meta.SunZenith) {
			return nil, fmt.Errorf("%w: viewing grid band %d detector %d does not match the sun grid",
				domain.ErrMetadataMalformed, v.BandID, v.DetectorID)
		}
		meta.Viewing = append(meta.Viewing, vg)
	}
	if len(meta.Viewing) == 0 {
		return nil, fmt.Errorf("%w: no viewing incidence angle grids", domain.ErrMetadataMalformed)
	}

	return meta, nil
}

func (g gridElement) toGrid() (*domain.AngleGrid, error) {
	if len(g.Rows) == 0 {
		return nil, fmt.Errorf("%w: empty grid", domain.ErrMetadataMalformed)
	}
	if g.RowStep <= 0 || g.ColStep <= 0 {
		return nil, fmt.Errorf("%w: grid step must be positive", domain.ErrMetadataMalformed)
	}

	cols := len(strings.Fields(g.Rows[0]))
	grid := domain.NewAngleGrid(len(g.Rows), cols, g.RowStep, g.ColStep)
	for r, row := range g.Rows {
		fields := strings.Fields(row)
		if len(fields) != cols {
			return nil, fmt.Errorf("%w: grid row %d has %d values, want %d",
				domain.ErrMetadataMalformed, r, len(fields), cols)
		}
		for c, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: grid row %d: %v", domain.ErrMetadataMalformed, r, err)
			}
			grid.Set(r, c, v)
		}
	}
	return grid, nil
}
