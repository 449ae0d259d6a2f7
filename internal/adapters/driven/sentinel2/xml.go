package sentinel2

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/s2angs/internal/core/domain"
	"github.com/custodia-labs/s2angs/internal/core/ports/driven"
	"github.com/custodia-labs/s2angs/internal/logger"
)

// Ensure XMLGenerator implements the interface.
var _ driven.AngleBandGenerator = (*XMLGenerator)(nil)

// bandSuffixes names the output file of each band.
var bandSuffixes = map[domain.AngleBand]string{
	domain.AngleBandSolarZenith:  "sza",
	domain.AngleBandSolarAzimuth: "saa",
	domain.AngleBandViewZenith:   "vza",
	domain.AngleBandViewAzimuth:  "vaa",
}

// XMLGenerator builds angle bands from a tile metadata file.
type XMLGenerator struct {
	parser     driven.TileMetadataParser
	writer     driven.AngleRasterWriter
	resolution int
}

// NewXMLGenerator creates a generator writing rasters at the given
// resolution in metres.
func NewXMLGenerator(parser driven.TileMetadataParser, writer driven.AngleRasterWriter, resolution int) *XMLGenerator {
	return &XMLGenerator{
		parser:     parser,
		writer:     writer,
		resolution: resolution,
	}
}

// Generate writes the four angle bands for the metadata file at reference.
// With no outputDir, files are written next to the metadata file.
func (g *XMLGenerator) Generate(ctx context.Context, reference, outputDir string) (domain.AngleBandResult, error) {
	logger.Section("Angle bands")

	meta, err := g.readMetadata(reference)
	if err != nil {
		return domain.AngleBandResult{}, err
	}
	logger.Info("tile %s sensed %s (%s, %s)", meta.TileID,
		meta.SensingTime.Format("2006-01-02T15:04:05Z"), meta.CRSCode, meta.CRSName)

	geo, ok := meta.Geocoding(g.resolution)
	if !ok {
		return domain.AngleBandResult{}, fmt.Errorf("%w: no %d m geocoding in %s",
			domain.ErrMetadataMalformed, g.resolution, reference)
	}

	rasters, err := g.buildRasters(meta, geo)
	if err != nil {
		return domain.AngleBandResult{}, fmt.Errorf("%s: %w", reference, err)
	}

	if outputDir == "" {
		outputDir = filepath.Dir(reference)
	}

	var result domain.AngleBandResult
	paths := map[domain.AngleBand]*string{
		domain.AngleBandSolarZenith:  &result.SolarZenith,
		domain.AngleBandSolarAzimuth: &result.SolarAzimuth,
		domain.AngleBandViewZenith:   &result.ViewZenith,
		domain.AngleBandViewAzimuth:  &result.ViewAzimuth,
	}
	for _, band := range domain.AngleBands {
		if err := ctx.Err(); err != nil {
			return domain.AngleBandResult{}, err
		}
		path := filepath.Join(outputDir, meta.TileID+"_"+bandSuffixes[band]+g.writer.Extension())
		logger.Debug("writing %s to %s", band.Description(), path)
		if err := g.writer.Write(path, rasters[band]); err != nil {
			return domain.AngleBandResult{}, fmt.Errorf("write %s band: %w", band.Description(), err)
		}
		*paths[band] = path
	}

	return result, nil
}

func (g *XMLGenerator) readMetadata(reference string) (*domain.TileMetadata, error) {
	f, err := os.Open(reference)
	if err != nil {
		return nil, fmt.Errorf("open tile metadata: %w", err)
	}
	defer f.Close()

	meta, err := g.parser.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", reference, err)
	}
	return meta, nil
}

func (g *XMLGenerator) buildRasters(
	meta *domain.TileMetadata,
	geo domain.TileGeocoding,
) (map[domain.AngleBand]driven.AngleRaster, error) {
	viewZenith, viewAzimuth := combineViewing(meta.SunZenith, meta.Viewing)

	grids := map[domain.AngleBand]*domain.AngleGrid{
		domain.AngleBandSolarZenith:  meta.SunZenith,
		domain.AngleBandSolarAzimuth: meta.SunAzimuth,
		domain.AngleBandViewZenith:   viewZenith,
		domain.AngleBandViewAzimuth:  viewAzimuth,
	}

	rasters := make(map[domain.AngleBand]driven.AngleRaster, len(grids))
	for band, grid := range grids {
		filled, err := fillMissing(grid)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", band.Description(), err)
		}
		rasters[band] = newGridRaster(filled, geo, band.IsAzimuth())
	}
	return rasters, nil
}
